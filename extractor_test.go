package fmpmcp

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type rangeArgs struct {
	Start string `json:"start" description:"Range start, YYYY-MM-DD"`
	End   string `json:"end,omitempty" description:"Range end, YYYY-MM-DD"`
}

func (a rangeArgs) Validate() error {
	if a.End != "" && a.End < a.Start {
		return fmt.Errorf("end %q is before start %q", a.End, a.Start)
	}
	return nil
}

func TestExtractor_ParseAndValidate(t *testing.T) {
	ext, err := NewExtractor[rangeArgs](false)
	require.NoError(t, err)

	args, err := ext.ParseAndValidate(raw(`{"start": "2024-01-01", "end": "2024-06-30"}`))
	require.NoError(t, err)
	assert.Equal(t, "2024-01-01", args.Start)
	assert.Equal(t, "2024-06-30", args.End)
}

func TestExtractor_CustomValidation(t *testing.T) {
	ext, err := NewExtractor[rangeArgs](false)
	require.NoError(t, err)

	_, err = ext.ParseAndValidate(raw(`{"start": "2024-06-30", "end": "2024-01-01"}`))
	require.Error(t, err)
	assert.True(t, IsClientError(err))
	assert.ErrorIs(t, err, ErrValidation)
	assert.Contains(t, err.Error(), "before start")
}

func TestExtractor_MalformedJSON(t *testing.T) {
	ext, err := NewExtractor[rangeArgs](false)
	require.NoError(t, err)

	_, err = ext.ParseAndValidate(raw(`{`))
	require.Error(t, err)
	assert.True(t, IsClientError(err))
}

func TestExtractor_DefaultsValidatedAgainstSchema(t *testing.T) {
	ext, err := NewExtractor[greetArgs](false)
	require.NoError(t, err)

	args, err := ext.ParseAndValidate(raw(`{"name": "Ada"}`))
	require.NoError(t, err)
	assert.Equal(t, "casual", args.Tone)

	// Explicit values are never overwritten by a default.
	args, err = ext.ParseAndValidate(raw(`{"name": "Ada", "tone": "formal"}`))
	require.NoError(t, err)
	assert.Equal(t, "formal", args.Tone)
}

func TestExtractor_SchemaIsCopied(t *testing.T) {
	ext, err := NewExtractor[rangeArgs](false)
	require.NoError(t, err)

	s1 := ext.Schema()
	s1["type"] = "mutated"
	s2 := ext.Schema()
	assert.Equal(t, "object", s2["type"])
}
