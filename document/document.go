package document

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.yaml.in/yaml/v4"

	"github.com/418sec/gson-pointer/pointer"
	"github.com/418sec/gson-pointer/walker"
)

// MaxFileSize is the default maximum size (in bytes) allowed for loaded
// files. This prevents resource exhaustion from arbitrarily large inputs.
// Set to 10MB which is sufficient for most configuration documents.
const MaxFileSize = 10 * 1024 * 1024 // 10MB

// Format identifies the serialization format of a document.
type Format string

// Supported document formats.
const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// Option configures Load, Parse, and New.
type Option func(*config)

type config struct {
	logger      Logger
	format      Format
	maxFileSize int64
}

func newConfig(opts []Option) *config {
	cfg := &config{
		logger:      NopLogger{},
		maxFileSize: MaxFileSize,
	}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// WithLogger sets the logger used by the document. The default discards
// all output.
func WithLogger(logger Logger) Option {
	return func(c *config) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithFormat forces the document format instead of detecting it from the
// file extension or content.
func WithFormat(format Format) Option {
	return func(c *config) {
		c.format = format
	}
}

// WithMaxFileSize overrides the file size ceiling enforced by Load.
// A non-positive value disables the check.
func WithMaxFileSize(limit int64) Option {
	return func(c *config) {
		c.maxFileSize = limit
	}
}

// Document is a JSON or YAML document addressed by JSON Pointers.
// The root is the generic map[string]any / []any tree produced by
// unmarshaling.
type Document struct {
	root   any
	path   string
	format Format
	logger Logger
}

// Load reads and parses a JSON or YAML file. The format is detected from
// the file extension (content sniffing is the fallback) unless forced
// with WithFormat.
func Load(path string, opts ...Option) (*Document, error) {
	cfg := newConfig(opts)

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	if cfg.maxFileSize > 0 && int64(len(data)) > cfg.maxFileSize {
		return nil, &ResourceLimitError{
			ResourceType: "file_size",
			Limit:        cfg.maxFileSize,
			Actual:       int64(len(data)),
			Message:      path,
		}
	}

	doc, err := parse(data, path, cfg)
	if err != nil {
		return nil, err
	}
	cfg.logger.Debug("document loaded", "path", path, "format", doc.format, "bytes", len(data))
	return doc, nil
}

// Parse parses raw JSON or YAML content. The format is detected from the
// content unless forced with WithFormat.
func Parse(data []byte, opts ...Option) (*Document, error) {
	return parse(data, "", newConfig(opts))
}

// New wraps an existing data tree in a Document. A zero-value format
// defaults to YAML.
func New(root any, opts ...Option) *Document {
	cfg := newConfig(opts)
	format := cfg.format
	if format == "" {
		format = FormatYAML
	}
	return &Document{root: root, format: format, logger: cfg.logger}
}

func parse(data []byte, path string, cfg *config) (*Document, error) {
	format := cfg.format
	if format == "" {
		format = detectFormat(path, data)
	}

	// The YAML parser handles both YAML and JSON input.
	var root any
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, &ParseError{Path: path, Cause: err}
	}

	return &Document{
		root:   root,
		path:   path,
		format: format,
		logger: cfg.logger,
	}, nil
}

// detectFormat picks the document format from the file extension, falling
// back to content sniffing: JSON documents start with '{' or '['.
func detectFormat(path string, data []byte) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON
	case ".yaml", ".yml":
		return FormatYAML
	}
	trimmed := bytes.TrimLeft(data, " \t\r\n")
	if len(trimmed) > 0 && (trimmed[0] == '{' || trimmed[0] == '[') {
		return FormatJSON
	}
	return FormatYAML
}

// Root returns the document's data tree.
func (d *Document) Root() any {
	return d.root
}

// Path returns the file path the document was loaded from, if any.
func (d *Document) Path() string {
	return d.path
}

// Format returns the document's serialization format.
func (d *Document) Format() Format {
	return d.format
}

// Get resolves a pointer against the document.
func (d *Document) Get(ptr string) (any, bool) {
	v, ok := pointer.Get(d.root, ptr)
	d.logger.Debug("pointer get", "pointer", ptr, "found", ok)
	return v, ok
}

// Has reports whether a pointer resolves against the document.
func (d *Document) Has(ptr string) bool {
	_, ok := pointer.Get(d.root, ptr)
	return ok
}

// Set writes a value at the pointer's location, creating intermediate
// containers as needed. The document root is updated when the mutation
// had to replace it.
func (d *Document) Set(ptr string, value any) {
	d.root = pointer.Set(d.root, ptr, value)
	d.logger.Debug("pointer set", "pointer", ptr)
}

// Delete removes the pointer's location from the document. Paths that do
// not resolve are a silent no-op.
func (d *Document) Delete(ptr string) {
	d.root = pointer.Delete(d.root, ptr)
	d.logger.Debug("pointer delete", "pointer", ptr)
}

// Pointers returns the pointer of every location in the document in
// sorted order, root included.
func (d *Document) Pointers() []string {
	ptrs := walker.Pointers(d.root)
	walker.SortPointers(ptrs)
	return ptrs
}

// Leaves returns the pointer of every scalar location in the document in
// sorted order.
func (d *Document) Leaves() []string {
	ptrs := walker.Leaves(d.root)
	walker.SortPointers(ptrs)
	return ptrs
}

// Marshal serializes the document in its format: indented JSON or YAML.
func (d *Document) Marshal() ([]byte, error) {
	switch d.format {
	case FormatJSON:
		data, err := json.MarshalIndent(d.root, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("failed to marshal JSON: %w", err)
		}
		return append(data, '\n'), nil
	default:
		data, err := yaml.Marshal(d.root)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal YAML: %w", err)
		}
		return data, nil
	}
}

// Save serializes the document and writes it to path with restrictive
// 0600 permissions. An empty path reuses the path the document was
// loaded from.
func (d *Document) Save(path string) error {
	if path == "" {
		path = d.path
	}
	if path == "" {
		return fmt.Errorf("no path to save to")
	}
	data, err := d.Marshal()
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	d.logger.Debug("document saved", "path", path, "bytes", len(data))
	return nil
}
