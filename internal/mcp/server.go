// Package mcp serves the tool registry over the Model Context Protocol:
// newline-delimited JSON-RPC 2.0 messages, normally on stdin/stdout. The
// package knows nothing about the upstream API; it only translates protocol
// messages into Registry dispatches.
package mcp

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sync"

	"github.com/oklog/ulid/v2"

	"fmpmcp"
)

// maxLineSize bounds one incoming JSON-RPC message (4 MB).
const maxLineSize = 4 << 20

// Server dispatches MCP requests against a Registry.
type Server struct {
	name    string
	version string
	reg     *fmpmcp.Registry
	log     *slog.Logger

	writeMu sync.Mutex
}

// NewServer creates a Server. logger falls back to slog.Default when nil.
func NewServer(name, version string, reg *fmpmcp.Registry, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	return &Server{
		name:    name,
		version: version,
		reg:     reg,
		log:     logger,
	}
}

// Run reads newline-delimited JSON-RPC messages from r and writes responses to
// w until r is exhausted or ctx is cancelled. Per-call errors are answered,
// never fatal; the loop only stops on transport-level failure.
func (s *Server) Run(ctx context.Context, r io.Reader, w io.Writer) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), maxLineSize)

	for scanner.Scan() {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}

		var req request
		if err := json.Unmarshal(line, &req); err != nil {
			s.log.Warn("unparseable message", "error", err)
			if werr := s.write(w, errorResponse(nil, codeParseError, "parse error: "+err.Error())); werr != nil {
				return werr
			}
			continue
		}

		resp, reply := s.handle(ctx, &req)
		if !reply {
			continue
		}
		if err := s.write(w, resp); err != nil {
			return err
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read loop: %w", err)
	}
	return nil
}

// handle routes one request. The second return value is false for
// notifications, which get no response.
func (s *Server) handle(ctx context.Context, req *request) (response, bool) {
	if req.isNotification() {
		// notifications/initialized and cancellations need no action here.
		s.log.Debug("notification", "method", req.Method)
		return response{}, false
	}

	switch req.Method {
	case "initialize":
		return okResponse(req.ID, initializeResult{
			ProtocolVersion: protocolVersion,
			Capabilities:    capabilities{Tools: toolsCapability{ListChanged: false}},
			ServerInfo:      serverInfo{Name: s.name, Version: s.version},
		}), true
	case "ping":
		return okResponse(req.ID, struct{}{}), true
	case "tools/list":
		return okResponse(req.ID, s.listTools()), true
	case "tools/call":
		return s.callTool(ctx, req), true
	default:
		return errorResponse(req.ID, codeMethodNotFound, "method not found: "+req.Method), true
	}
}

func (s *Server) listTools() listToolsResult {
	all := s.reg.GetAllTools()
	out := listToolsResult{Tools: make([]toolDescriptor, 0, len(all))}
	for _, t := range all {
		out.Tools = append(out.Tools, toolDescriptor{
			Name:        t.Name(),
			Description: t.Description(),
			InputSchema: t.Parameters(),
		})
	}
	return out
}

func (s *Server) callTool(ctx context.Context, req *request) response {
	var params callToolParams
	if err := json.Unmarshal(req.Params, &params); err != nil {
		return errorResponse(req.ID, codeInvalidParams, "invalid tools/call params: "+err.Error())
	}
	if params.Name == "" {
		return errorResponse(req.ID, codeInvalidParams, "tool name is required")
	}
	args := params.Arguments
	if len(args) == 0 {
		args = json.RawMessage(`{}`)
	}

	// ULID per dispatch so one call can be followed across logs and hooks.
	call := fmpmcp.ToolCall{ID: ulid.Make().String(), ToolName: params.Name, Args: args}
	res := s.reg.Execute(ctx, call)
	if res.Error != nil {
		if errors.Is(res.Error, fmpmcp.ErrToolNotFound) {
			return errorResponse(req.ID, codeInvalidParams, res.Error.Error())
		}
		s.log.Error("tool call failed", "call", call.ID, "tool", params.Name, "duration", res.Duration, "error", res.Error)
		return okResponse(req.ID, textResult(res.Error.Error(), true))
	}
	s.log.Info("tool call done", "call", call.ID, "tool", params.Name, "duration", res.Duration, "bytes", len(res.Result))
	return okResponse(req.ID, textResult(string(res.Result), false))
}

func (s *Server) write(w io.Writer, resp response) error {
	data, err := json.Marshal(resp)
	if err != nil {
		return fmt.Errorf("marshal response: %w", err)
	}
	s.writeMu.Lock()
	defer s.writeMu.Unlock()
	if _, err := w.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("write response: %w", err)
	}
	return nil
}

func okResponse(id json.RawMessage, result any) response {
	return response{JSONRPC: "2.0", ID: normalizeID(id), Result: result}
}

func errorResponse(id json.RawMessage, code int, message string) response {
	return response{JSONRPC: "2.0", ID: normalizeID(id), Error: &rpcError{Code: code, Message: message}}
}

// normalizeID keeps the ID field serializable as explicit null when absent.
func normalizeID(id json.RawMessage) json.RawMessage {
	if len(id) == 0 {
		return json.RawMessage("null")
	}
	return id
}
