package fmpmcp

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClientError(t *testing.T) {
	err := &ClientError{Reason: "symbol is required", Err: ErrValidation}
	assert.Equal(t, "invalid tool input: symbol is required", err.Error())
	assert.ErrorIs(t, err, ErrValidation)
	assert.True(t, IsClientError(err))
	assert.False(t, IsSystemError(err))

	// Wrapped chains still detect.
	wrapped := fmt.Errorf("execute: %w", err)
	assert.True(t, IsClientError(wrapped))
	assert.ErrorIs(t, wrapped, ErrValidation)
}

func TestSystemError(t *testing.T) {
	cause := errors.New("connection refused")
	err := &SystemError{Err: cause}
	// The message never leaks the cause; it stays reachable via Unwrap.
	assert.Equal(t, "tool execution failed", err.Error())
	assert.ErrorIs(t, err, cause)
	assert.True(t, IsSystemError(err))
	assert.False(t, IsClientError(err))
}

func TestWrapJSONParseError(t *testing.T) {
	err := wrapJSONParseError(errors.New("unexpected end of JSON input"))
	require.Error(t, err)
	assert.True(t, IsClientError(err))
	assert.Contains(t, err.Error(), "json parse error")
}

func TestPanicError(t *testing.T) {
	err := &panicError{p: "boom"}
	assert.Equal(t, "panic: boom", err.Error())
}
