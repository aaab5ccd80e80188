// Package errors provides structured error types for rp with a small
// taxonomy distinguishing missing files, permission failures, encoding
// problems, and malformed list files. All fatal error paths in the
// assembler surface one of these types so the CLI layer can report a
// consistent diagnostic and exit status.
package errors

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
)

// ErrorType represents different categories of errors.
type ErrorType string

const (
	ErrorTypeRead       ErrorType = "read"
	ErrorTypePermission ErrorType = "permission"
	ErrorTypeEncoding   ErrorType = "encoding"
	ErrorTypeListFile   ErrorType = "listfile"
	ErrorTypeConfig     ErrorType = "config"
	ErrorTypeIO         ErrorType = "io"
)

// RPError is a structured error type carrying the failing path and an
// underlying cause.
type RPError struct {
	Type    ErrorType
	Message string
	Path    string
	Cause   error
}

// Error implements the error interface.
func (e *RPError) Error() string {
	var parts []string

	parts = append(parts, fmt.Sprintf("[%s]", e.Type))

	if e.Path != "" {
		parts = append(parts, e.Path+":")
	}

	parts = append(parts, e.Message)

	result := strings.Join(parts, " ")

	if e.Cause != nil {
		result += fmt.Sprintf(": %v", e.Cause)
	}

	return result
}

// Unwrap returns the underlying cause error.
func (e *RPError) Unwrap() error {
	return e.Cause
}

// Is matches errors of the same type, so callers can compare against a
// bare &RPError{Type: ...} sentinel.
func (e *RPError) Is(target error) bool {
	var t *RPError
	if errors.As(target, &t) {
		return e.Type == t.Type
	}

	return false
}

// NewReadError reports a file that does not exist or could not be opened.
func NewReadError(path string, cause error) *RPError {
	return &RPError{
		Type:    ErrorTypeRead,
		Message: "file does not exist or is not accessible",
		Path:    path,
		Cause:   cause,
	}
}

// NewPermissionError reports a file that exists but cannot be read.
func NewPermissionError(path string, cause error) *RPError {
	return &RPError{
		Type:    ErrorTypePermission,
		Message: "permission denied",
		Path:    path,
		Cause:   cause,
	}
}

// NewListFileError reports a list file that could not be resolved into
// path lines.
func NewListFileError(path, message string, cause error) *RPError {
	return &RPError{
		Type:    ErrorTypeListFile,
		Message: message,
		Path:    path,
		Cause:   cause,
	}
}

// NewConfigError reports invalid configuration.
func NewConfigError(message string, cause error) *RPError {
	return &RPError{
		Type:    ErrorTypeConfig,
		Message: message,
		Cause:   cause,
	}
}

// NewIOError reports a failure writing the assembled output.
func NewIOError(path, message string, cause error) *RPError {
	return &RPError{
		Type:    ErrorTypeIO,
		Message: message,
		Path:    path,
		Cause:   cause,
	}
}

// FromOpenError maps an os open/read failure onto the taxonomy:
// permission failures keep their own type, everything else is a read
// error.
func FromOpenError(path string, err error) *RPError {
	if errors.Is(err, os.ErrPermission) || errors.Is(err, fs.ErrPermission) {
		return NewPermissionError(path, err)
	}

	return NewReadError(path, err)
}

// IsType reports whether err is an RPError of the given type.
func IsType(err error, t ErrorType) bool {
	var e *RPError
	if errors.As(err, &e) {
		return e.Type == t
	}

	return false
}
