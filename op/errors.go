package op

import (
	"errors"
	"fmt"
)

// ConstructionErrorCode categorizes operation-construction failures.
type ConstructionErrorCode string

const (
	// ErrCodeParamArity indicates a parameter count mismatch.
	ErrCodeParamArity ConstructionErrorCode = "PARAM_ARITY"

	// ErrCodeWireArity indicates a wire count mismatch.
	ErrCodeWireArity ConstructionErrorCode = "WIRE_ARITY"

	// ErrCodeDuplicateWires indicates a repeated wire identifier.
	ErrCodeDuplicateWires ConstructionErrorCode = "DUPLICATE_WIRES"

	// ErrCodeBadPauliWord indicates a malformed Pauli word.
	ErrCodeBadPauliWord ConstructionErrorCode = "BAD_PAULI_WORD"

	// ErrCodeBadControlString indicates a malformed control-values bit string.
	ErrCodeBadControlString ConstructionErrorCode = "BAD_CONTROL_STRING"

	// ErrCodeBadShape indicates a matrix or vector of the wrong shape
	// for the declared wires.
	ErrCodeBadShape ConstructionErrorCode = "BAD_SHAPE"

	// ErrCodeNotUnitary indicates a user-supplied operator that fails
	// the unitarity check.
	ErrCodeNotUnitary ConstructionErrorCode = "NOT_UNITARY"

	// ErrCodeNotHermitian indicates a user-supplied observable that
	// fails the Hermiticity check.
	ErrCodeNotHermitian ConstructionErrorCode = "NOT_HERMITIAN"
)

// ConstructionError reports an invalid operation construction. It is
// raised synchronously at the point of violation and never silently
// recovered inside the library.
type ConstructionError struct {
	// Code identifies the violation category.
	Code ConstructionErrorCode

	// Kind names the gate kind being constructed.
	Kind string

	// Message is a human-readable description.
	Message string
}

// Error implements the error interface.
func (e *ConstructionError) Error() string {
	if e.Kind != "" {
		return fmt.Sprintf("%s: %s: %s", e.Kind, e.Code, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// NewConstructionError creates a ConstructionError with a formatted message.
func NewConstructionError(code ConstructionErrorCode, kind, format string, args ...any) *ConstructionError {
	return &ConstructionError{
		Code:    code,
		Kind:    kind,
		Message: fmt.Sprintf(format, args...),
	}
}

// IsConstructionError reports whether err is (or wraps) a ConstructionError.
func IsConstructionError(err error) bool {
	var ce *ConstructionError
	return errors.As(err, &ce)
}

// ConstructionCode extracts the code of a wrapped ConstructionError, or
// "" when err is of a different taxonomy.
func ConstructionCode(err error) ConstructionErrorCode {
	var ce *ConstructionError
	if errors.As(err, &ce) {
		return ce.Code
	}
	return ""
}

// NotAdjointableError reports an adjoint request on a kind that has no
// valid adjoint, such as the state-preparation kinds.
type NotAdjointableError struct {
	// Kind names the offending gate kind.
	Kind string
}

// Error implements the error interface.
func (e *NotAdjointableError) Error() string {
	return fmt.Sprintf("no adjoint exists for %s operations", e.Kind)
}

// IsNotAdjointable reports whether err is (or wraps) a NotAdjointableError.
func IsNotAdjointable(err error) bool {
	var ae *NotAdjointableError
	return errors.As(err, &ae)
}

// UnsupportedError reports a request for a capability a kind does not
// provide, such as eigenvalues, a decomposition, or a generator.
type UnsupportedError struct {
	// Kind names the gate kind.
	Kind string

	// Capability names the missing feature.
	Capability string
}

// Error implements the error interface.
func (e *UnsupportedError) Error() string {
	return fmt.Sprintf("op: no %s defined for %s", e.Capability, e.Kind)
}

// IsUnsupported reports whether err is (or wraps) an UnsupportedError.
func IsUnsupported(err error) bool {
	var ue *UnsupportedError
	return errors.As(err, &ue)
}
