package fmpmcp

import (
	"errors"
	"fmt"
)

// Sentinel errors for the tool engine. Use errors.Is to check.
var (
	ErrToolNotFound  = errors.New("unknown tool")
	ErrDuplicateTool = errors.New("tool already registered")
	ErrValidation    = errors.New("validation failed")
	ErrTimeout       = errors.New("tool execution timeout")
	ErrShutdown      = errors.New("registry is shutting down")
)

// ClientError is an error caused by the caller's input (invalid JSON, schema
// violation, bad enum value). The message is safe to relay verbatim so the
// caller can correct the arguments and retry. Err optionally wraps a sentinel
// (e.g. ErrValidation) for errors.Is/errors.As.
type ClientError struct {
	Reason string
	Err    error
}

func (e *ClientError) Error() string {
	return fmt.Sprintf("invalid tool input: %s", e.Reason)
}

// Unwrap supports errors.Is/errors.As on wrapped chains (e.g. errors.Is(err, ErrValidation)).
func (e *ClientError) Unwrap() error { return e.Err }

// SystemError represents a failure inside a handler (upstream HTTP error,
// panic, marshaling failure). The caller sees a generic message; the cause
// stays reachable via Unwrap for logging.
type SystemError struct {
	Err error
}

func (e *SystemError) Error() string {
	return "tool execution failed"
}

func (e *SystemError) Unwrap() error { return e.Err }

// IsClientError returns true if err is or wraps a ClientError.
func IsClientError(err error) bool {
	var ce *ClientError
	return errors.As(err, &ce)
}

// IsSystemError returns true if err is or wraps a SystemError.
func IsSystemError(err error) bool {
	var se *SystemError
	return errors.As(err, &se)
}

// wrapJSONParseError returns a ClientError for JSON unmarshal failures, so
// parse errors look the same from Extractor.ParseAndValidate and NewRawTool.
func wrapJSONParseError(err error) error {
	return &ClientError{Reason: "json parse error: " + err.Error()}
}
