// Package errors defines the failures a save conversion can end with.
package errors

import (
	"errors"
	"fmt"
)

var (
	ErrRead   = errors.New("❌ read failed")
	ErrDecode = errors.New("❌ base64 decode failed")
	ErrWrite  = errors.New("❌ write failed")
)

// ReadError reports an input file that could not be read
type ReadError struct {
	Path string
	Err  error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("failed to read input file %q: %v", e.Path, e.Err)
}

func (e *ReadError) Unwrap() error { return e.Err }

func (e *ReadError) Is(target error) bool { return target == ErrRead }

// DecodeError reports save text that is not valid standard base64
type DecodeError struct {
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("failed to decode base64: %v", e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

func (e *DecodeError) Is(target error) bool { return target == ErrDecode }

// WriteError reports an output file that could not be written
type WriteError struct {
	Path string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("failed to write to output file %q: %v", e.Path, e.Err)
}

func (e *WriteError) Unwrap() error { return e.Err }

func (e *WriteError) Is(target error) bool { return target == ErrWrite }
