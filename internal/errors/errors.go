// Package errors provides centralized error definitions for the web IDE.
// It defines sentinel errors for the editor bridge and runner subsystems,
// a context-carrying EditorError wrapper, and re-exports the standard
// library helpers so callers import only this package for error handling.
package errors

import (
	"errors"
	"fmt"
)

// Re-export standard library functions for convenience.
var (
	Is     = errors.Is
	As     = errors.As
	Unwrap = errors.Unwrap
	New    = errors.New
	Join   = errors.Join
)

// Editor-related sentinel errors
var (
	// ErrFieldNotFound indicates that the host form field a bridge was asked
	// to bind does not exist in the document.
	ErrFieldNotFound = New("host form field not found")
	// ErrNotInitialized indicates that a bridge operation requiring a live
	// widget was called before a successful Init.
	ErrNotInitialized = New("editor not initialized")
	// ErrWidgetConstruction indicates that the widget factory failed.
	ErrWidgetConstruction = New("widget construction failed")
)

// Runner-related sentinel errors
var (
	// ErrEmptyProgram indicates that a run was requested with no program text.
	ErrEmptyProgram = New("program is empty")
	// ErrRunCanceled indicates that a run was canceled via its context.
	ErrRunCanceled = New("run canceled")
)

// EditorError is an error from the editor bridge, carrying the host form
// field ID the bridge was operating on.
type EditorError struct {
	Msg     string
	FieldID string
	Err     error
}

// NewEditorError creates an EditorError wrapping an underlying cause.
func NewEditorError(msg string, err error) *EditorError {
	return &EditorError{Msg: msg, Err: err}
}

// WithFieldID attaches the host form field ID to the error.
func (e *EditorError) WithFieldID(fieldID string) *EditorError {
	e.FieldID = fieldID
	return e
}

// Error implements the error interface.
func (e *EditorError) Error() string {
	if e.FieldID != "" {
		return fmt.Sprintf("editor [field %s]: %s: %v", e.FieldID, e.Msg, e.Err)
	}
	if e.Err != nil {
		return fmt.Sprintf("editor: %s: %v", e.Msg, e.Err)
	}
	return fmt.Sprintf("editor: %s", e.Msg)
}

// Unwrap returns the underlying error for errors.Is / errors.As.
func (e *EditorError) Unwrap() error {
	return e.Err
}
