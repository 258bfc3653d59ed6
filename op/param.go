package op

import (
	"fmt"
	"strconv"

	"github.com/qbitlabs/circuitkit/linalg"
)

// Param is a sealed interface over the operand types a gate kind can
// take. Only Angle, Word, Bits, Vector and Mat implement it.
type Param interface {
	param() // sealed
	String() string
}

// Angle is a real scalar parameter, typically a rotation angle.
type Angle float64

func (Angle) param() {}

func (a Angle) String() string {
	return strconv.FormatFloat(float64(a), 'g', -1, 64)
}

// Word is a Pauli-word parameter over the alphabet I, X, Y, Z.
type Word string

func (Word) param() {}

func (w Word) String() string { return strconv.Quote(string(w)) }

// Bits is a computational-basis bit string with entries 0 or 1.
type Bits []int

func (Bits) param() {}

func (b Bits) String() string {
	s := make([]byte, len(b))
	for i, bit := range b {
		s[i] = byte('0' + bit)
	}
	return "bits[" + string(s) + "]"
}

// Vector is a complex vector parameter: a state vector or the diagonal
// of a diagonal unitary.
type Vector []complex128

func (Vector) param() {}

func (v Vector) String() string { return fmt.Sprintf("vec[%d]", len(v)) }

// Mat is a complex matrix parameter: an arbitrary unitary or a
// Hermitian observable.
type Mat linalg.Matrix

func (Mat) param() {}

func (m Mat) String() string {
	return fmt.Sprintf("mat[%dx%d]", linalg.Matrix(m).Rows(), linalg.Matrix(m).Cols())
}

// ParamEqual reports bit-identical equality of two parameters. Angles
// compare with ==, so this is exact, not tolerance-based: double
// inversion is required to reproduce parameters bit for bit.
func ParamEqual(a, b Param) bool {
	switch x := a.(type) {
	case Angle:
		y, ok := b.(Angle)
		return ok && x == y
	case Word:
		y, ok := b.(Word)
		return ok && x == y
	case Bits:
		y, ok := b.(Bits)
		if !ok || len(x) != len(y) {
			return false
		}
		for i := range x {
			if x[i] != y[i] {
				return false
			}
		}
		return true
	case Vector:
		y, ok := b.(Vector)
		if !ok || len(x) != len(y) {
			return false
		}
		for i := range x {
			if x[i] != y[i] {
				return false
			}
		}
		return true
	case Mat:
		y, ok := b.(Mat)
		if !ok || len(x) != len(y) {
			return false
		}
		for i := range x {
			if len(x[i]) != len(y[i]) {
				return false
			}
			for j := range x[i] {
				if x[i][j] != y[i][j] {
					return false
				}
			}
		}
		return true
	default:
		return false
	}
}

// ParamsEqual reports element-wise ParamEqual over two parameter lists.
func ParamsEqual(a, b []Param) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !ParamEqual(a[i], b[i]) {
			return false
		}
	}
	return true
}

// Angles extracts the leading float values of a parameter list. It is a
// convenience for kinds whose parameters are all angles.
func Angles(params []Param) []float64 {
	out := make([]float64, 0, len(params))
	for _, p := range params {
		if a, ok := p.(Angle); ok {
			out = append(out, float64(a))
		}
	}
	return out
}
