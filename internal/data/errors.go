package data

import (
	"errors"
	"fmt"
)

// Sentinel causes carried inside a LoadError.
var (
	ErrUnexpectedStatus = errors.New("unexpected http status")
	ErrUnknownShape     = errors.New("unrecognised dataset shape")
	ErrBadTime          = errors.New("time is not M:SS")
	ErrBadMonth         = errors.New("month out of range 1..12")
)

// LoadError reports a failed dataset load. Op is one of fetch, status,
// read, decode or schema.
type LoadError struct {
	Source string
	Op     string
	Err    error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("load %s: %s: %v", e.Source, e.Op, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

func loadErr(source, op string, err error) error {
	return &LoadError{Source: source, Op: op, Err: err}
}
