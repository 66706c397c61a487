package mcpserver

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type deleteInput struct {
	Doc     docInput `json:"doc"              jsonschema:"The document to modify"`
	Pointer string   `json:"pointer"          jsonschema:"The JSON Pointer to delete"`
	Output  string   `json:"output,omitempty" jsonschema:"File path to write the updated document to; omitted returns it inline"`
}

type deleteOutput struct {
	Existed   bool   `json:"existed"`
	Document  string `json:"document,omitempty"`
	WrittenTo string `json:"written_to,omitempty"`
}

func handleDelete(_ context.Context, _ *mcp.CallToolRequest, input deleteInput) (*mcp.CallToolResult, deleteOutput, error) {
	doc, err := input.Doc.resolve()
	if err != nil {
		return errResult(err), deleteOutput{}, nil
	}

	existed := doc.Has(input.Pointer)
	doc.Delete(input.Pointer)

	result, out, err := writeResult(doc, input.Output)
	return result, deleteOutput{
		Existed:   existed,
		Document:  out.Document,
		WrittenTo: out.WrittenTo,
	}, err
}
