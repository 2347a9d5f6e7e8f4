package fmpmcp

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestToolOptions(t *testing.T) {
	var o toolOptions
	WithStrict()(&o)
	WithTimeout(3 * time.Second)(&o)
	assert.True(t, o.strict)
	assert.Equal(t, 3*time.Second, o.timeout)
}

func TestRegistryOptions(t *testing.T) {
	var o registryOptions
	WithDefaultTimeout(7 * time.Second)(&o)
	WithMaxConcurrency(3)(&o)
	WithRecoverPanics(true)(&o)
	WithOnBeforeExecute(func(context.Context, ToolCall) {})(&o)
	WithOnAfterExecute(func(context.Context, ExecutionResult) {})(&o)

	assert.Equal(t, 7*time.Second, o.timeout)
	assert.Equal(t, 3, o.maxConcurrency)
	assert.True(t, o.recoverPanics)
	assert.NotNil(t, o.onBefore)
	assert.NotNil(t, o.onAfter)
}

func TestWithTimeout_ExposedViaToolTimeout(t *testing.T) {
	tool := newGreetTool(t, WithTimeout(42*time.Second))
	tm, ok := tool.(ToolTimeout)
	assert.True(t, ok)
	assert.Equal(t, 42*time.Second, tm.Timeout())
}
