package option

import (
	"errors"
	"fmt"
)

var (
	// ErrNoSuchField is returned when a name matches no declared field or
	// delegate, even after fuzzy correction.
	ErrNoSuchField = errors.New("option: no such field")
	// ErrRawMode is returned when a raw node is addressed by field name.
	ErrRawMode = errors.New("option: node is in raw mode")
	// ErrNotRaw is returned by raw-value helpers on object or array nodes.
	ErrNotRaw = errors.New("option: node is not in raw mode")
	// ErrNoElement is returned when a field is read through an empty array.
	ErrNoElement = errors.New("option: array has no elements")
	// ErrPairs is returned when key/value arguments are malformed.
	ErrPairs = errors.New("option: key/value arguments must be string/value pairs")
)

// FieldError reports a failed field access.
type FieldError struct {
	Schema string
	Name   string
	Err    error
}

func (e *FieldError) Error() string {
	schema := e.Schema
	if schema == "" {
		schema = "option"
	}
	return fmt.Sprintf("option: %s.%s: %v", schema, e.Name, unprefixed(e.Err))
}

func (e *FieldError) Unwrap() error { return e.Err }

func unprefixed(err error) string {
	if err == nil {
		return "unknown error"
	}
	msg := err.Error()
	const prefix = "option: "
	if len(msg) > len(prefix) && msg[:len(prefix)] == prefix {
		return msg[len(prefix):]
	}
	return msg
}
