package fmp

import "fmt"

// TransportError is a network-level failure (timeout, DNS, connection
// refused, cancelled context). The request never produced an HTTP response.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("fmp: transport error: %v", e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// StatusError is a non-success HTTP status from the provider. Body carries the
// upstream-supplied message so the caller can see what the provider said.
type StatusError struct {
	Code int
	Body string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("fmp: upstream status %d: %s", e.Code, e.Body)
}

// DecodeError is a success response whose body could not be parsed as JSON.
type DecodeError struct {
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("fmp: malformed response: %v", e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }
