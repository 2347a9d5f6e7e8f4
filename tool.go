package fmpmcp

import (
	"context"
	"encoding/json"
	"time"
)

// Tool is the contract for a host-callable instrument. It is protocol-agnostic:
// the MCP layer in internal/mcp exposes it, but nothing here knows about JSON-RPC.
type Tool interface {
	Name() string
	Description() string
	// Parameters returns a valid JSON Schema as map (compatible with MCP inputSchema).
	Parameters() map[string]any
	// Execute parses and validates argsJSON, runs the handler, and returns the
	// marshaled result. Errors are ClientError (bad input) or SystemError
	// (handler/upstream failure); see errors.go.
	Execute(ctx context.Context, argsJSON []byte) ([]byte, error)
}

// ToolTimeout is implemented by tools created with NewTool and NewRawTool.
// Registry uses it to override the default execution timeout when set.
type ToolTimeout interface {
	Timeout() time.Duration
}

// ToolCall is a single dispatch request as produced by the host.
type ToolCall struct {
	ID       string
	ToolName string
	Args     json.RawMessage // JSON payload of arguments
}

// ExecutionResult is the outcome of one dispatch. Exactly one of Result and
// Error is meaningful; Duration is always set.
type ExecutionResult struct {
	CallID   string
	ToolName string
	Result   json.RawMessage
	Error    error
	Duration time.Duration
}
