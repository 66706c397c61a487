package mcpserver

import (
	"context"
	"encoding/json"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/418sec/gson-pointer/document"
)

type setInput struct {
	Doc     docInput `json:"doc"              jsonschema:"The document to modify"`
	Pointer string   `json:"pointer"          jsonschema:"The JSON Pointer to write at; [] as final segment appends to an array"`
	Value   string   `json:"value"            jsonschema:"The value to write, as JSON; unparsable input is treated as a plain string"`
	Output  string   `json:"output,omitempty" jsonschema:"File path to write the updated document to; omitted returns it inline"`
}

type setOutput struct {
	Document  string `json:"document,omitempty"`
	WrittenTo string `json:"written_to,omitempty"`
}

func handleSet(_ context.Context, _ *mcp.CallToolRequest, input setInput) (*mcp.CallToolResult, setOutput, error) {
	doc, err := input.Doc.resolve()
	if err != nil {
		return errResult(err), setOutput{}, nil
	}

	doc.Set(input.Pointer, decodeValue(input.Value))

	return writeResult(doc, input.Output)
}

// decodeValue parses a tool value argument as JSON, falling back to the
// raw string so bare words don't force clients to double-quote.
func decodeValue(raw string) any {
	var value any
	if err := json.Unmarshal([]byte(raw), &value); err != nil {
		return raw
	}
	return value
}

// writeResult returns the updated document inline, or writes it to the
// given output path.
func writeResult(doc *document.Document, output string) (*mcp.CallToolResult, setOutput, error) {
	if output != "" {
		if err := doc.Save(output); err != nil {
			return errResult(err), setOutput{}, nil
		}
		return nil, setOutput{WrittenTo: output}, nil
	}
	data, err := doc.Marshal()
	if err != nil {
		return errResult(err), setOutput{}, nil
	}
	return nil, setOutput{Document: string(data)}, nil
}
