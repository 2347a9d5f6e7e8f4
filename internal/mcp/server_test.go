package mcp

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"fmpmcp"
	"fmpmcp/testutil"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func newTestServer(t *testing.T, tools ...fmpmcp.Tool) *Server {
	t.Helper()
	reg := testutil.NewTestRegistry(tools...)
	t.Cleanup(func() { _ = reg.Shutdown(context.Background()) })
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewServer("fmpmcp-test", "0.0.1", reg, logger)
}

// roundTrip runs the server over in-memory pipes and returns one response line
// per request line.
func roundTrip(t *testing.T, s *Server, lines ...string) []response {
	t.Helper()
	in := strings.NewReader(strings.Join(lines, "\n") + "\n")
	var out bytes.Buffer
	require.NoError(t, s.Run(context.Background(), in, &out))

	var resps []response
	for _, line := range strings.Split(strings.TrimSpace(out.String()), "\n") {
		if line == "" {
			continue
		}
		var resp response
		require.NoError(t, json.Unmarshal([]byte(line), &resp))
		resps = append(resps, resp)
	}
	return resps
}

// echoTool returns its arguments verbatim.
func echoTool() fmpmcp.Tool {
	return &testutil.MockTool{
		NameVal: "echo",
		DescVal: "Echoes arguments",
		ParamsVal: map[string]any{
			"type":       "object",
			"properties": map[string]any{"v": map[string]any{"type": "string"}},
		},
		ExecuteFn: func(_ context.Context, args []byte) ([]byte, error) {
			return args, nil
		},
	}
}

func resultAs[T any](t *testing.T, resp response) T {
	t.Helper()
	data, err := json.Marshal(resp.Result)
	require.NoError(t, err)
	var out T
	require.NoError(t, json.Unmarshal(data, &out))
	return out
}

func TestServer_Initialize(t *testing.T) {
	s := newTestServer(t)
	resps := roundTrip(t, s, `{"jsonrpc":"2.0","id":1,"method":"initialize","params":{"protocolVersion":"2024-11-05"}}`)
	require.Len(t, resps, 1)
	require.Nil(t, resps[0].Error)
	assert.Equal(t, "1", string(resps[0].ID))

	init := resultAs[initializeResult](t, resps[0])
	assert.Equal(t, protocolVersion, init.ProtocolVersion)
	assert.Equal(t, "fmpmcp-test", init.ServerInfo.Name)
	assert.Equal(t, "0.0.1", init.ServerInfo.Version)
}

func TestServer_Ping(t *testing.T) {
	s := newTestServer(t)
	resps := roundTrip(t, s, `{"jsonrpc":"2.0","id":7,"method":"ping"}`)
	require.Len(t, resps, 1)
	assert.Nil(t, resps[0].Error)
}

func TestServer_NotificationGetsNoResponse(t *testing.T) {
	s := newTestServer(t)
	resps := roundTrip(t, s,
		`{"jsonrpc":"2.0","method":"notifications/initialized"}`,
		`{"jsonrpc":"2.0","id":2,"method":"ping"}`,
	)
	// Only the ping is answered.
	require.Len(t, resps, 1)
	assert.Equal(t, "2", string(resps[0].ID))
}

func TestServer_ToolsList(t *testing.T) {
	s := newTestServer(t,
		&testutil.MockTool{NameVal: "zeta", DescVal: "Z tool"},
		&testutil.MockTool{NameVal: "alpha", DescVal: "A tool"},
	)
	resps := roundTrip(t, s, `{"jsonrpc":"2.0","id":1,"method":"tools/list"}`)
	require.Len(t, resps, 1)

	list := resultAs[listToolsResult](t, resps[0])
	require.Len(t, list.Tools, 2)
	assert.Equal(t, "alpha", list.Tools[0].Name)
	assert.Equal(t, "zeta", list.Tools[1].Name)
	assert.Equal(t, "A tool", list.Tools[0].Description)
	assert.NotNil(t, list.Tools[0].InputSchema)
}

func TestServer_ToolsCall(t *testing.T) {
	s := newTestServer(t, echoTool())
	resps := roundTrip(t, s, `{"jsonrpc":"2.0","id":1,"method":"tools/call","params":{"name":"echo","arguments":{"v":"hi"}}}`)
	require.Len(t, resps, 1)
	require.Nil(t, resps[0].Error)

	res := resultAs[callToolResult](t, resps[0])
	require.Len(t, res.Content, 1)
	assert.Equal(t, "text", res.Content[0].Type)
	assert.JSONEq(t, `{"v":"hi"}`, res.Content[0].Text)
	assert.False(t, res.IsError)
}

func TestServer_ToolsCall_NoArguments(t *testing.T) {
	s := newTestServer(t, echoTool())
	resps := roundTrip(t, s, `{"jsonrpc":"2.0","id":1,"method":"tools/call","params":{"name":"echo"}}`)
	require.Len(t, resps, 1)

	res := resultAs[callToolResult](t, resps[0])
	require.Len(t, res.Content, 1)
	assert.JSONEq(t, `{}`, res.Content[0].Text)
}

func TestServer_ToolsCall_FailureIsToolResult(t *testing.T) {
	failing := &testutil.MockTool{
		NameVal: "fail",
		ExecuteFn: func(_ context.Context, _ []byte) ([]byte, error) {
			return nil, &fmpmcp.ClientError{Reason: "symbol is required", Err: fmpmcp.ErrValidation}
		},
	}
	s := newTestServer(t, failing)
	resps := roundTrip(t, s, `{"jsonrpc":"2.0","id":1,"method":"tools/call","params":{"name":"fail","arguments":{}}}`)
	require.Len(t, resps, 1)
	// A tool failure is a result with isError, not a JSON-RPC error.
	require.Nil(t, resps[0].Error)

	res := resultAs[callToolResult](t, resps[0])
	assert.True(t, res.IsError)
	require.Len(t, res.Content, 1)
	assert.Contains(t, res.Content[0].Text, "symbol is required")
}

func TestServer_ToolsCall_UnknownTool(t *testing.T) {
	s := newTestServer(t)
	resps := roundTrip(t, s, `{"jsonrpc":"2.0","id":1,"method":"tools/call","params":{"name":"nope","arguments":{}}}`)
	require.Len(t, resps, 1)
	require.NotNil(t, resps[0].Error)
	assert.Equal(t, codeInvalidParams, resps[0].Error.Code)
	assert.Contains(t, resps[0].Error.Message, "nope")
}

func TestServer_ToolsCall_MissingName(t *testing.T) {
	s := newTestServer(t)
	resps := roundTrip(t, s, `{"jsonrpc":"2.0","id":1,"method":"tools/call","params":{}}`)
	require.Len(t, resps, 1)
	require.NotNil(t, resps[0].Error)
	assert.Equal(t, codeInvalidParams, resps[0].Error.Code)
}

func TestServer_ParseError(t *testing.T) {
	s := newTestServer(t)
	resps := roundTrip(t, s, `{"jsonrpc":`)
	require.Len(t, resps, 1)
	require.NotNil(t, resps[0].Error)
	assert.Equal(t, codeParseError, resps[0].Error.Code)
	assert.Equal(t, "null", string(resps[0].ID))
}

func TestServer_MethodNotFound(t *testing.T) {
	s := newTestServer(t)
	resps := roundTrip(t, s, `{"jsonrpc":"2.0","id":1,"method":"resources/list"}`)
	require.Len(t, resps, 1)
	require.NotNil(t, resps[0].Error)
	assert.Equal(t, codeMethodNotFound, resps[0].Error.Code)
}

func TestServer_EmptyLinesSkipped(t *testing.T) {
	s := newTestServer(t)
	in := strings.NewReader("\n\n" + `{"jsonrpc":"2.0","id":1,"method":"ping"}` + "\n\n")
	var out bytes.Buffer
	require.NoError(t, s.Run(context.Background(), in, &out))
	assert.Equal(t, 1, strings.Count(strings.TrimSpace(out.String()), "\n")+1)
}

func TestIsNotification(t *testing.T) {
	req := &request{}
	assert.True(t, req.isNotification())
	req.ID = json.RawMessage("null")
	assert.True(t, req.isNotification())
	req.ID = json.RawMessage("3")
	assert.False(t, req.isNotification())
	req.ID = json.RawMessage(`"abc"`)
	assert.False(t, req.isNotification())
}
