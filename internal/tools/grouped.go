package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"slices"

	"fmpmcp"
	"fmpmcp/internal/fmp"
)

// newGroupedTool builds a pass-through tool for one family of stable-API
// endpoints: a selector field picks the endpoint, and an open-ended params
// object is forwarded as query parameters. Built on NewRawTool because the
// params object has no fixed shape a struct could describe.
func newGroupedTool(c *fmp.Client, name, description, field, fieldDesc string, endpoints map[string]string) (fmpmcp.Tool, error) {
	values := make([]string, 0, len(endpoints))
	for v := range endpoints {
		values = append(values, v)
	}
	slices.Sort(values)
	enum := make([]any, len(values))
	for i, v := range values {
		enum[i] = v
	}

	schema := map[string]any{
		"type": "object",
		"properties": map[string]any{
			field: map[string]any{
				"type":        "string",
				"enum":        enum,
				"description": fieldDesc,
			},
			"params": map[string]any{
				"type":                 "object",
				"additionalProperties": map[string]any{"type": "string"},
				"description":          "Extra query parameters passed through to the endpoint, e.g. symbol",
			},
		},
		"required": []any{field},
	}

	return fmpmcp.NewRawTool(name, description, schema, func(ctx context.Context, argsJSON []byte) ([]byte, error) {
		var args map[string]json.RawMessage
		if err := json.Unmarshal(argsJSON, &args); err != nil {
			return nil, err
		}
		var selector string
		if err := json.Unmarshal(args[field], &selector); err != nil {
			return nil, fmt.Errorf("decode %s: %w", field, err)
		}
		params := map[string]string{}
		if raw, ok := args["params"]; ok {
			if err := json.Unmarshal(raw, &params); err != nil {
				return nil, fmt.Errorf("decode params: %w", err)
			}
		}
		return c.Get(ctx, "stable/"+endpoints[selector], queryValues(params))
	})
}
