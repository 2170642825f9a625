package errors

import (
	stderrors "errors"
	"fmt"
)

// Kind represents the category of a pipeline failure.
type Kind string

const (
	KindDecode        Kind = "decode"
	KindShape         Kind = "shape"
	KindShapeMismatch Kind = "shape_mismatch"
	KindConfig        Kind = "config"
	KindIO            Kind = "io"
	KindInternal      Kind = "internal"
)

// Error is a categorized error. Path is set when the failure concerns a file.
type Error struct {
	Kind    Kind
	Message string
	Path    string
	Cause   error
}

// Error implements the error interface
func (e *Error) Error() string {
	msg := e.Message
	if e.Path != "" {
		msg = fmt.Sprintf("%s: %s", e.Path, msg)
	}
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, msg, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Kind, msg)
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// NewDecodeError reports a file that is missing, unreadable or not a supported image.
func NewDecodeError(path, message string, cause error) *Error {
	return &Error{Kind: KindDecode, Message: message, Path: path, Cause: cause}
}

// NewShapeError reports an unexpected channel count.
func NewShapeError(message string) *Error {
	return &Error{Kind: KindShape, Message: message}
}

// NewShapeMismatchError reports two images whose dimensions differ.
func NewShapeMismatchError(aw, ah, bw, bh int) *Error {
	return &Error{
		Kind:    KindShapeMismatch,
		Message: fmt.Sprintf("image dimensions differ: %dx%d vs %dx%d", aw, ah, bw, bh),
	}
}

// NewConfigError reports an invalid option value.
func NewConfigError(message string, cause error) *Error {
	return &Error{Kind: KindConfig, Message: message, Cause: cause}
}

// NewIOError reports a failure writing an output file.
func NewIOError(path, message string, cause error) *Error {
	return &Error{Kind: KindIO, Message: message, Path: path, Cause: cause}
}

// NewInternalError creates a new internal error
func NewInternalError(message string, cause error) *Error {
	return &Error{Kind: KindInternal, Message: message, Cause: cause}
}

// IsKind reports whether any error in err's chain is an *Error of the given kind.
func IsKind(err error, kind Kind) bool {
	var e *Error
	if stderrors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}

// ExitCode maps an error to the process exit status.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	var e *Error
	if !stderrors.As(err, &e) {
		return 1
	}
	switch e.Kind {
	case KindDecode:
		return 2
	case KindShape:
		return 3
	case KindShapeMismatch:
		return 4
	case KindConfig:
		return 5
	case KindIO:
		return 6
	default:
		return 1
	}
}
