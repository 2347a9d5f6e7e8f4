package fmpmcp

import (
	"encoding/json"
	"maps"

	"github.com/google/jsonschema-go/jsonschema"
)

// Extractor provides JSON Schema generation and two-layer validation
// (schema + Validatable) for type T without binding to the Tool interface.
type Extractor[T any] struct {
	schemaMap map[string]any
	resolved  *jsonschema.Resolved
	defaults  map[string]any
}

// NewExtractor creates an Extractor for type T. When strict is true, the
// generated schema has additionalProperties: false for all objects and all
// properties required.
func NewExtractor[T any](strict bool) (*Extractor[T], error) {
	schemaMap, resolved, err := generateSchema[T](strict)
	if err != nil {
		return nil, err
	}
	return &Extractor[T]{
		schemaMap: schemaMap,
		resolved:  resolved,
		defaults:  propertyDefaults(schemaMap),
	}, nil
}

// Schema returns a shallow copy of the JSON Schema (top-level keys only).
// Nested maps are shared; callers must not mutate them.
func (e *Extractor[T]) Schema() map[string]any {
	return maps.Clone(e.schemaMap)
}

// ParseAndValidate deserializes argsJSON into T, fills absent optional
// parameters with their declared defaults, runs schema validation, and then
// Validatable.Validate() if T implements it. Returns ClientError for invalid
// JSON or validation failures so the caller can relay the message.
func (e *Extractor[T]) ParseAndValidate(argsJSON []byte) (T, error) {
	var zero T
	var v any
	if err := json.Unmarshal(argsJSON, &v); err != nil {
		return zero, wrapJSONParseError(err)
	}
	if obj, ok := v.(map[string]any); ok && len(e.defaults) > 0 {
		filled := false
		for key, def := range e.defaults {
			if _, present := obj[key]; !present {
				obj[key] = def
				filled = true
			}
		}
		if filled {
			b, err := json.Marshal(obj)
			if err != nil {
				return zero, &SystemError{Err: err}
			}
			argsJSON = b
		}
	}
	if err := validateAgainstSchema(e.resolved, v); err != nil {
		return zero, err
	}
	var args T
	if err := json.Unmarshal(argsJSON, &args); err != nil {
		return zero, wrapJSONParseError(err)
	}
	if err := validateCustom(any(args)); err != nil {
		if IsClientError(err) {
			return zero, err
		}
		return zero, &ClientError{Reason: err.Error(), Err: ErrValidation}
	}
	return args, nil
}
