package mcpserver

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type getInput struct {
	Doc     docInput `json:"doc"     jsonschema:"The document to resolve against"`
	Pointer string   `json:"pointer" jsonschema:"The JSON Pointer to resolve, e.g. /users/0/name"`
}

type getOutput struct {
	Found bool   `json:"found"`
	Value string `json:"value,omitempty"`
}

func handleGet(_ context.Context, _ *mcp.CallToolRequest, input getInput) (*mcp.CallToolResult, getOutput, error) {
	doc, err := input.Doc.resolve()
	if err != nil {
		return errResult(err), getOutput{}, nil
	}

	value, ok := doc.Get(input.Pointer)
	if !ok {
		return nil, getOutput{Found: false}, nil
	}

	encoded, err := json.Marshal(value)
	if err != nil {
		return errResult(fmt.Errorf("failed to encode value: %w", err)), getOutput{}, nil
	}
	return nil, getOutput{Found: true, Value: string(encoded)}, nil
}
