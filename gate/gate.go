package gate

import (
	"math"
	"math/cmplx"

	"github.com/qbitlabs/circuitkit/linalg"
	"github.com/qbitlabs/circuitkit/op"
)

func expi(phi float64) complex128 {
	return cmplx.Exp(complex(0, phi))
}

// must unwraps constructor results that cannot fail for valid wire
// counts, such as single-wire gates.
func must(o *op.Operation, err error) *op.Operation {
	if err != nil {
		panic(err)
	}
	return o
}

func angles(vals ...float64) []op.Param {
	params := make([]op.Param, len(vals))
	for i, v := range vals {
		params[i] = op.Angle(v)
	}
	return params
}

// negated maps each angle parameter to its negation, the involution
// shared by every rotation kind.
func negated(params []op.Param) []op.Param {
	out := make([]op.Param, len(params))
	for i, p := range params {
		out[i] = -p.(op.Angle)
	}
	return out
}

// controlledBlock places u on the basis states whose control bits match
// controlInt and the identity everywhere else. Control wires precede
// target wires, with the first wire the most significant bit.
func controlledBlock(u linalg.Matrix, numControls, controlInt int) linalg.Matrix {
	blockDim := u.Rows()
	dim := blockDim << numControls
	out := linalg.Eye(dim)
	offset := controlInt * blockDim
	for i := 0; i < blockDim; i++ {
		for j := 0; j < blockDim; j++ {
			out[offset+i][offset+j] = u[i][j]
		}
	}
	return out
}

// parseControlValues validates a control bit string against the control
// wires and returns it as a bit parameter.
func parseControlValues(kind string, controlValues string, numControls int) (op.Bits, error) {
	if controlValues == "" {
		controlValues = allOnes(numControls)
	}
	if len(controlValues) != numControls {
		return nil, op.NewConstructionError(op.ErrCodeBadControlString, kind,
			"length of control bit string must equal number of control wires")
	}
	bits := make(op.Bits, len(controlValues))
	for i := 0; i < len(controlValues); i++ {
		switch controlValues[i] {
		case '0':
			bits[i] = 0
		case '1':
			bits[i] = 1
		default:
			return nil, op.NewConstructionError(op.ErrCodeBadControlString, kind,
				"string of control values can contain only '0' or '1'")
		}
	}
	return bits, nil
}

func allOnes(n int) string {
	s := make([]byte, n)
	for i := range s {
		s[i] = '1'
	}
	return string(s)
}

func controlInt(bits op.Bits) int {
	v := 0
	for _, b := range bits {
		v = v<<1 | b
	}
	return v
}

func halfAngle(theta float64) (c, s float64) {
	return math.Cos(theta / 2), math.Sin(theta / 2)
}
