package problems

import (
	"errors"
	"fmt"
)

var (
	ErrDocumentNotFound  = errors.New("problem document not found")
	ErrMalformedDocument = errors.New("malformed problem document")
	ErrInvalidID         = errors.New("invalid problem id")
)

// DocumentNotFoundError reports a problem file that does not exist.
type DocumentNotFoundError struct {
	Path string
	Err  error
}

func (e *DocumentNotFoundError) Error() string {
	return fmt.Sprintf("%s: %s", ErrDocumentNotFound, e.Path)
}

func (e *DocumentNotFoundError) Unwrap() error { return e.Err }

func (e *DocumentNotFoundError) Is(target error) bool { return target == ErrDocumentNotFound }

// MalformedDocumentError reports a file that is not JSON or lacks a field the
// prompts and tools dereference unconditionally.
type MalformedDocumentError struct {
	Path   string
	Reason string
	Err    error
}

func (e *MalformedDocumentError) Error() string {
	if e.Reason == "" {
		return fmt.Sprintf("%s: %s", ErrMalformedDocument, e.Path)
	}
	return fmt.Sprintf("%s: %s: %s", ErrMalformedDocument, e.Path, e.Reason)
}

func (e *MalformedDocumentError) Unwrap() error { return e.Err }

func (e *MalformedDocumentError) Is(target error) bool { return target == ErrMalformedDocument }
