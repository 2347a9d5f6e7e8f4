// Package fmpmcp is the tool engine behind the Financial Modeling Prep MCP
// server. It turns JSON tool calls into concrete Go function calls:
// unmarshal → validate (against the same JSON Schema advertised to the host) →
// execute → marshal result, or return a clear error for the host to relay.
//
// # Key concepts
//
//   - Single Source of Truth: one set of struct tags drives both the schema
//     shown over the protocol and the validation of incoming arguments.
//   - Deterministic catalog: Registry rejects duplicate names and lists tools
//     in sorted order, so the advertised catalog never depends on map order.
//   - Self-Correction: ClientError carries human-readable messages back to the
//     caller; SystemError hides internal detail but keeps the cause for logs.
//
// See Tool, ToolCall, ExecutionResult for the core types, and NewTool /
// NewRegistry for setup. Handlers that wrap the upstream HTTP API live in
// internal/tools; the stdio protocol loop lives in internal/mcp.
//
// # Example
//
//	type Args struct { Symbol string `json:"symbol" description:"Ticker symbol"` }
//	type Out  struct { Price float64 `json:"price"` }
//	tool, err := fmpmcp.NewTool("get_quote", "Get a quote", func(_ context.Context, a Args) (Out, error) {
//	    return Out{Price: 190.1}, nil
//	})
//	if err != nil { ... }
//	reg := fmpmcp.NewRegistry()
//	if err := reg.Register(tool); err != nil { ... }
//	res := reg.Execute(ctx, fmpmcp.ToolCall{ID: "1", ToolName: "get_quote", Args: []byte(`{"symbol":"AAPL"}`)})
package fmpmcp
