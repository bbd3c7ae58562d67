package core

import (
	"errors"
	"fmt"
)

// ErrRendererNotFound is matched by every *NotFoundError.
var ErrRendererNotFound = errors.New("renderer not found")

// NotFoundError reports that no registered renderer handles MimeType.
type NotFoundError struct {
	MimeType string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("Renderer for mimetype %s not found.", e.MimeType)
}

// Is makes errors.Is(err, ErrRendererNotFound) hold.
func (e *NotFoundError) Is(target error) bool {
	return target == ErrRendererNotFound
}

// PanicError wraps a value recovered from a panicking renderer.
type PanicError struct {
	MimeType string
	Value    any
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("renderer for mimetype %s panicked: %v", e.MimeType, e.Value)
}

// Unwrap returns the panic value when it was itself an error.
func (e *PanicError) Unwrap() error {
	if err, ok := e.Value.(error); ok {
		return err
	}
	return nil
}
