package mcpserver

import (
	"fmt"

	"github.com/418sec/gson-pointer/document"
)

// docInput represents the two ways a document can be provided to a tool.
// Exactly one of File or Content must be set.
type docInput struct {
	File    string `json:"file,omitempty"    jsonschema:"Path to a JSON or YAML file on disk"`
	Content string `json:"content,omitempty" jsonschema:"Inline document content (JSON or YAML)"`
}

// resolve loads the document described by the input.
func (in docInput) resolve() (*document.Document, error) {
	switch {
	case in.File != "" && in.Content != "":
		return nil, fmt.Errorf("provide only one of file or content")
	case in.File != "":
		return document.Load(in.File, document.WithMaxFileSize(cfg.MaxFileSize))
	case in.Content != "":
		return document.Parse([]byte(in.Content))
	default:
		return nil, fmt.Errorf("one of file or content is required")
	}
}
