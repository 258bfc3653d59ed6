package gate

import (
	"math"

	"github.com/qbitlabs/circuitkit/linalg"
	"github.com/qbitlabs/circuitkit/op"
)

func init() {
	op.Register(basisStateKind{})
	op.Register(qubitStateVectorKind{})
}

type basisStateKind struct{}

func (basisStateKind) Name() string    { return "BasisState" }
func (basisStateKind) NumParams() int  { return 1 }
func (basisStateKind) NumWires() int   { return op.AnyWires }
func (basisStateKind) NonAdjointable() {}

func (basisStateKind) Validate(params []op.Param, wires []int) error {
	bits, ok := params[0].(op.Bits)
	if !ok {
		return op.NewConstructionError(op.ErrCodeBadShape, "BasisState",
			"parameter must be a bit string")
	}
	if len(bits) != len(wires) {
		return op.NewConstructionError(op.ErrCodeBadShape, "BasisState",
			"bit string length %d does not match %d wires", len(bits), len(wires))
	}
	for _, b := range bits {
		if b != 0 && b != 1 {
			return op.NewConstructionError(op.ErrCodeBadShape, "BasisState",
				"parameter must consist of 0 or 1 integers")
		}
	}
	return nil
}

func (basisStateKind) Matrix(_ []op.Param, _ int) (linalg.Matrix, error) {
	return nil, op.NewConstructionError(op.ErrCodeBadShape, "BasisState",
		"state preparations have no matrix form")
}

func (basisStateKind) Decompose(params []op.Param, wires []int) ([]*op.Operation, error) {
	bits := params[0].(op.Bits)
	var ops []*op.Operation
	for i, b := range bits {
		if b == 1 {
			ops = append(ops, PauliX(wires[i]))
		}
	}
	return ops, nil
}

// BasisState prepares the computational basis state named by bits.
func BasisState(bits []int, wires ...int) (*op.Operation, error) {
	return op.New(basisStateKind{}, []op.Param{op.Bits(bits)}, wires)
}

type qubitStateVectorKind struct{}

func (qubitStateVectorKind) Name() string    { return "QubitStateVector" }
func (qubitStateVectorKind) NumParams() int  { return 1 }
func (qubitStateVectorKind) NumWires() int   { return op.AnyWires }
func (qubitStateVectorKind) NonAdjointable() {}

func (qubitStateVectorKind) Validate(params []op.Param, wires []int) error {
	state, ok := params[0].(op.Vector)
	if !ok {
		return op.NewConstructionError(op.ErrCodeBadShape, "QubitStateVector",
			"parameter must be a state vector")
	}
	if want := 1 << len(wires); len(state) != want {
		return op.NewConstructionError(op.ErrCodeBadShape, "QubitStateVector",
			"state vector must be of length %d for %d wires", want, len(wires))
	}
	var norm float64
	for _, z := range state {
		norm += real(z)*real(z) + imag(z)*imag(z)
	}
	if math.Abs(norm-1) > linalg.DefaultTol {
		return op.NewConstructionError(op.ErrCodeBadShape, "QubitStateVector",
			"sum of amplitudes-squared does not equal one")
	}
	return nil
}

func (qubitStateVectorKind) Matrix(_ []op.Param, _ int) (linalg.Matrix, error) {
	return nil, op.NewConstructionError(op.ErrCodeBadShape, "QubitStateVector",
		"state preparations have no matrix form")
}

// QubitStateVector prepares the given normalized state in the
// computational basis of the wires.
func QubitStateVector(state []complex128, wires ...int) (*op.Operation, error) {
	return op.New(qubitStateVectorKind{}, []op.Param{op.Vector(state)}, wires)
}
