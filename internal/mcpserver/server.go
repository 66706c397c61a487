// Package mcpserver implements an MCP (Model Context Protocol) server
// that exposes JSON Pointer operations as MCP tools over stdio.
package mcpserver

import (
	"context"
	"regexp"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	gsonpointer "github.com/418sec/gson-pointer"
)

const serverInstructions = `gson-pointer MCP server: resolves, mutates, and lists JSON Pointer (RFC 6901) locations in JSON and YAML documents.

Configuration: defaults are configurable via GSONPTR_* environment variables set in your MCP client config.

Key settings:
- GSONPTR_LIST_LIMIT (default: 100): default result limit for ptr_list
- GSONPTR_MAX_LIMIT (default: 1000): hard cap on result limits
- GSONPTR_MAX_FILE_SIZE (default: 10485760): maximum document file size in bytes

Documents can be given as a file path or as inline content. Mutating tools (ptr_set, ptr_delete) never modify the input file unless an output path is given; by default they return the updated document inline.`

// Run starts the MCP server over stdio and blocks until the client
// disconnects or the context is cancelled.
func Run(ctx context.Context) error {
	server := mcp.NewServer(
		&mcp.Implementation{Name: "gson-pointer", Version: gsonpointer.Version()},
		&mcp.ServerOptions{
			Instructions: serverInstructions,
		},
	)
	registerAllTools(server)
	return server.Run(ctx, &mcp.StdioTransport{})
}

func registerAllTools(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "ptr_get",
		Description: "Resolve a JSON Pointer against a JSON or YAML document and return the addressed value. Paths that do not resolve return found=false rather than an error. Supports RFC 6901 pointers and the URI fragment form (#/...).",
	}, handleGet)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "ptr_set",
		Description: "Set a value at a JSON Pointer location, creating intermediate containers as needed. The append marker [] grows arrays: /list/[]/name appends a new element. The value is parsed as JSON; unparsable values are treated as plain strings. Returns the updated document, or writes it to output when given.",
	}, handleSet)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "ptr_delete",
		Description: "Delete the value at a JSON Pointer location. Array elements are spliced out (no holes). Paths that do not resolve are a no-op. Returns the updated document, or writes it to output when given.",
	}, handleDelete)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "ptr_list",
		Description: "List every JSON Pointer in a document in sorted order. Use leaves_only=true to list only scalar locations, and prefix to restrict to a subtree. Use offset/limit to paginate; the default limit is configurable via GSONPTR_LIST_LIMIT.",
	}, handleList)
}

// paginate applies offset/limit pagination to a slice, returning the
// requested page. A non-positive limit defaults to cfg.ListLimit.
func paginate[T any](items []T, offset, limit int) []T {
	if limit <= 0 {
		limit = cfg.ListLimit
	}
	if limit > cfg.MaxLimit {
		limit = cfg.MaxLimit
	}
	if offset < 0 || offset >= len(items) {
		return nil
	}
	end := offset + limit
	if end < offset || end > len(items) { // overflow or beyond slice
		end = len(items)
	}
	return items[offset:end]
}

// sanitizeError strips absolute filesystem paths from error messages
// to prevent leaking internal directory structure to MCP clients.
var pathPattern = regexp.MustCompile(`(?:/(?:home|tmp|var|Users|etc|opt|usr|private|root|mnt|srv|run|snap|nix)[a-zA-Z0-9._/-]*)`)

func sanitizeError(err error) string {
	if err == nil {
		return ""
	}
	return pathPattern.ReplaceAllString(err.Error(), "<path>")
}

// errResult creates an MCP error result from an error.
func errResult(err error) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		IsError: true,
		Content: []mcp.Content{&mcp.TextContent{Text: sanitizeError(err)}},
	}
}
