package record

import (
	"errors"
	"fmt"
)

// InversionErrorCode categorizes invalid inversion inputs.
type InversionErrorCode string

const (
	// ErrCodeNilInput indicates a nil inversion argument.
	ErrCodeNilInput InversionErrorCode = "NIL_INPUT"

	// ErrCodeBareCallable indicates a function value passed without
	// first expanding it into operations.
	ErrCodeBareCallable InversionErrorCode = "BARE_CALLABLE"

	// ErrCodeNotIterable indicates an argument that is neither an
	// operation nor a sequence of operations.
	ErrCodeNotIterable InversionErrorCode = "NOT_ITERABLE"

	// ErrCodeNotOperation indicates a sequence element that is not an
	// operation.
	ErrCodeNotOperation InversionErrorCode = "NOT_OPERATION"
)

// InversionError reports an invalid argument to Invert. It is raised
// before any recording context is mutated.
type InversionError struct {
	Code    InversionErrorCode
	Message string
}

// Error implements the error interface.
func (e *InversionError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// NewInversionError creates an InversionError with a formatted message.
func NewInversionError(code InversionErrorCode, format string, args ...any) *InversionError {
	return &InversionError{Code: code, Message: fmt.Sprintf(format, args...)}
}

// IsInversionError reports whether err is (or wraps) an InversionError.
func IsInversionError(err error) bool {
	var ie *InversionError
	return errors.As(err, &ie)
}

// InversionCode extracts the code of a wrapped InversionError, or ""
// when err is of a different taxonomy.
func InversionCode(err error) InversionErrorCode {
	var ie *InversionError
	if errors.As(err, &ie) {
		return ie.Code
	}
	return ""
}
