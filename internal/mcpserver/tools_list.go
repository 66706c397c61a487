package mcpserver

import (
	"context"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type listInput struct {
	Doc        docInput `json:"doc"                   jsonschema:"The document to list pointers from"`
	Prefix     string   `json:"prefix,omitempty"      jsonschema:"Only list pointers at or below this pointer"`
	LeavesOnly bool     `json:"leaves_only,omitempty" jsonschema:"List only scalar locations"`
	Offset     int      `json:"offset,omitempty"      jsonschema:"Pagination offset"`
	Limit      int      `json:"limit,omitempty"       jsonschema:"Pagination limit; defaults to GSONPTR_LIST_LIMIT"`
}

type listOutput struct {
	Pointers []string `json:"pointers"`
	Total    int      `json:"total"`
}

func handleList(_ context.Context, _ *mcp.CallToolRequest, input listInput) (*mcp.CallToolResult, listOutput, error) {
	doc, err := input.Doc.resolve()
	if err != nil {
		return errResult(err), listOutput{}, nil
	}

	var ptrs []string
	if input.LeavesOnly {
		ptrs = doc.Leaves()
	} else {
		ptrs = doc.Pointers()
	}

	if input.Prefix != "" {
		filtered := ptrs[:0]
		for _, ptr := range ptrs {
			if ptr == input.Prefix || strings.HasPrefix(ptr, input.Prefix+"/") {
				filtered = append(filtered, ptr)
			}
		}
		ptrs = filtered
	}

	return nil, listOutput{
		Pointers: paginate(ptrs, input.Offset, input.Limit),
		Total:    len(ptrs),
	}, nil
}
