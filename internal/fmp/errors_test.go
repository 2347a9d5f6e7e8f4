package fmp

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTransportError_Unwrap(t *testing.T) {
	err := &TransportError{Err: context.DeadlineExceeded}
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Contains(t, err.Error(), "transport error")
}

func TestStatusError_Message(t *testing.T) {
	err := &StatusError{Code: 403, Body: `{"Error Message":"Invalid API KEY"}`}
	assert.Contains(t, err.Error(), "403")
	assert.Contains(t, err.Error(), "Invalid API KEY")
}

func TestDecodeError_Unwrap(t *testing.T) {
	cause := errors.New("invalid JSON")
	err := &DecodeError{Err: cause}
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "malformed response")
}
