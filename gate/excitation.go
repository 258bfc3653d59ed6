package gate

import (
	"github.com/qbitlabs/circuitkit/linalg"
	"github.com/qbitlabs/circuitkit/op"
)

func init() {
	op.Register(singleExcitationKind{})
	op.Register(singleExcitationPlusKind{})
	op.Register(singleExcitationMinusKind{})
	op.Register(doubleExcitationKind{})
	op.Register(doubleExcitationPlusKind{})
	op.Register(doubleExcitationMinusKind{})
}

// singleExcitationMatrix rotates the {|01⟩, |10⟩} subspace and applies
// phase to the remaining basis states.
func singleExcitationMatrix(theta float64, phase complex128) linalg.Matrix {
	c, s := halfAngle(theta)
	return linalg.Matrix{
		{phase, 0, 0, 0},
		{0, complex(c, 0), complex(-s, 0), 0},
		{0, complex(s, 0), complex(c, 0), 0},
		{0, 0, 0, phase},
	}
}

type singleExcitationKind struct{}

func (singleExcitationKind) Name() string   { return "SingleExcitation" }
func (singleExcitationKind) NumParams() int { return 1 }
func (singleExcitationKind) NumWires() int  { return 2 }

func (singleExcitationKind) Matrix(params []op.Param, _ int) (linalg.Matrix, error) {
	return singleExcitationMatrix(float64(params[0].(op.Angle)), 1), nil
}

func (singleExcitationKind) InverseParams(params []op.Param) []op.Param { return negated(params) }

func (singleExcitationKind) Generator(_ []op.Param, _ int) (linalg.Matrix, float64, error) {
	return linalg.Matrix{
		{0, 0, 0, 0},
		{0, 0, -1i, 0},
		{0, 1i, 0, 0},
		{0, 0, 0, 0},
	}, -0.5, nil
}

func (singleExcitationKind) Decompose(params []op.Param, wires []int) ([]*op.Operation, error) {
	theta := float64(params[0].(op.Angle))
	plus, err := SingleExcitationPlus(theta/2, wires[0], wires[1])
	if err != nil {
		return nil, err
	}
	minus, err := SingleExcitationMinus(theta/2, wires[0], wires[1])
	if err != nil {
		return nil, err
	}
	return []*op.Operation{plus, minus}, nil
}

// SingleExcitation rotates the {|01⟩, |10⟩} subspace by θ.
func SingleExcitation(theta float64, wire1, wire2 int) (*op.Operation, error) {
	return op.New(singleExcitationKind{}, angles(theta), []int{wire1, wire2})
}

type singleExcitationPlusKind struct{}

func (singleExcitationPlusKind) Name() string   { return "SingleExcitationPlus" }
func (singleExcitationPlusKind) NumParams() int { return 1 }
func (singleExcitationPlusKind) NumWires() int  { return 2 }

func (singleExcitationPlusKind) Matrix(params []op.Param, _ int) (linalg.Matrix, error) {
	theta := float64(params[0].(op.Angle))
	return singleExcitationMatrix(theta, expi(theta/2)), nil
}

func (singleExcitationPlusKind) InverseParams(params []op.Param) []op.Param {
	return negated(params)
}

func (singleExcitationPlusKind) Generator(_ []op.Param, _ int) (linalg.Matrix, float64, error) {
	return linalg.Matrix{
		{-1, 0, 0, 0},
		{0, 0, -1i, 0},
		{0, 1i, 0, 0},
		{0, 0, 0, -1},
	}, -0.5, nil
}

// SingleExcitationPlus is the single excitation rotation with a
// positive phase on the states outside the rotation subspace.
func SingleExcitationPlus(theta float64, wire1, wire2 int) (*op.Operation, error) {
	return op.New(singleExcitationPlusKind{}, angles(theta), []int{wire1, wire2})
}

type singleExcitationMinusKind struct{}

func (singleExcitationMinusKind) Name() string   { return "SingleExcitationMinus" }
func (singleExcitationMinusKind) NumParams() int { return 1 }
func (singleExcitationMinusKind) NumWires() int  { return 2 }

func (singleExcitationMinusKind) Matrix(params []op.Param, _ int) (linalg.Matrix, error) {
	theta := float64(params[0].(op.Angle))
	return singleExcitationMatrix(theta, expi(-theta/2)), nil
}

func (singleExcitationMinusKind) InverseParams(params []op.Param) []op.Param {
	return negated(params)
}

func (singleExcitationMinusKind) Generator(_ []op.Param, _ int) (linalg.Matrix, float64, error) {
	return linalg.Matrix{
		{1, 0, 0, 0},
		{0, 0, -1i, 0},
		{0, 1i, 0, 0},
		{0, 0, 0, 1},
	}, -0.5, nil
}

// SingleExcitationMinus is the single excitation rotation with a
// negative phase on the states outside the rotation subspace.
func SingleExcitationMinus(theta float64, wire1, wire2 int) (*op.Operation, error) {
	return op.New(singleExcitationMinusKind{}, angles(theta), []int{wire1, wire2})
}

// Basis indices of |0011⟩ and |1100⟩ on four wires.
const (
	doubleExcitationLow  = 3
	doubleExcitationHigh = 12
)

// doubleExcitationMatrix rotates the {|0011⟩, |1100⟩} subspace and
// applies phase to the remaining basis states.
func doubleExcitationMatrix(theta float64, phase complex128) linalg.Matrix {
	c, s := halfAngle(theta)
	m := linalg.Eye(16).Scale(phase)
	m[doubleExcitationLow][doubleExcitationLow] = complex(c, 0)
	m[doubleExcitationLow][doubleExcitationHigh] = complex(-s, 0)
	m[doubleExcitationHigh][doubleExcitationLow] = complex(s, 0)
	m[doubleExcitationHigh][doubleExcitationHigh] = complex(c, 0)
	return m
}

func doubleExcitationGenerator(diag complex128) linalg.Matrix {
	g := linalg.Eye(16).Scale(diag)
	g[doubleExcitationLow][doubleExcitationLow] = 0
	g[doubleExcitationHigh][doubleExcitationHigh] = 0
	g[doubleExcitationLow][doubleExcitationHigh] = -1i
	g[doubleExcitationHigh][doubleExcitationLow] = 1i
	return g
}

type doubleExcitationKind struct{}

func (doubleExcitationKind) Name() string   { return "DoubleExcitation" }
func (doubleExcitationKind) NumParams() int { return 1 }
func (doubleExcitationKind) NumWires() int  { return 4 }

func (doubleExcitationKind) Matrix(params []op.Param, _ int) (linalg.Matrix, error) {
	return doubleExcitationMatrix(float64(params[0].(op.Angle)), 1), nil
}

func (doubleExcitationKind) InverseParams(params []op.Param) []op.Param { return negated(params) }

func (doubleExcitationKind) Generator(_ []op.Param, _ int) (linalg.Matrix, float64, error) {
	return doubleExcitationGenerator(0), -0.5, nil
}

func (doubleExcitationKind) Decompose(params []op.Param, wires []int) ([]*op.Operation, error) {
	theta := float64(params[0].(op.Angle))
	plus, err := DoubleExcitationPlus(theta/2, wires[0], wires[1], wires[2], wires[3])
	if err != nil {
		return nil, err
	}
	minus, err := DoubleExcitationMinus(theta/2, wires[0], wires[1], wires[2], wires[3])
	if err != nil {
		return nil, err
	}
	return []*op.Operation{plus, minus}, nil
}

// DoubleExcitation rotates the {|0011⟩, |1100⟩} subspace by θ.
func DoubleExcitation(theta float64, w1, w2, w3, w4 int) (*op.Operation, error) {
	return op.New(doubleExcitationKind{}, angles(theta), []int{w1, w2, w3, w4})
}

type doubleExcitationPlusKind struct{}

func (doubleExcitationPlusKind) Name() string   { return "DoubleExcitationPlus" }
func (doubleExcitationPlusKind) NumParams() int { return 1 }
func (doubleExcitationPlusKind) NumWires() int  { return 4 }

func (doubleExcitationPlusKind) Matrix(params []op.Param, _ int) (linalg.Matrix, error) {
	theta := float64(params[0].(op.Angle))
	return doubleExcitationMatrix(theta, expi(theta/2)), nil
}

func (doubleExcitationPlusKind) InverseParams(params []op.Param) []op.Param {
	return negated(params)
}

func (doubleExcitationPlusKind) Generator(_ []op.Param, _ int) (linalg.Matrix, float64, error) {
	return doubleExcitationGenerator(-1), -0.5, nil
}

// DoubleExcitationPlus is the double excitation rotation with a
// positive phase on the states outside the rotation subspace.
func DoubleExcitationPlus(theta float64, w1, w2, w3, w4 int) (*op.Operation, error) {
	return op.New(doubleExcitationPlusKind{}, angles(theta), []int{w1, w2, w3, w4})
}

type doubleExcitationMinusKind struct{}

func (doubleExcitationMinusKind) Name() string   { return "DoubleExcitationMinus" }
func (doubleExcitationMinusKind) NumParams() int { return 1 }
func (doubleExcitationMinusKind) NumWires() int  { return 4 }

func (doubleExcitationMinusKind) Matrix(params []op.Param, _ int) (linalg.Matrix, error) {
	theta := float64(params[0].(op.Angle))
	return doubleExcitationMatrix(theta, expi(-theta/2)), nil
}

func (doubleExcitationMinusKind) InverseParams(params []op.Param) []op.Param {
	return negated(params)
}

func (doubleExcitationMinusKind) Generator(_ []op.Param, _ int) (linalg.Matrix, float64, error) {
	return doubleExcitationGenerator(1), -0.5, nil
}

// DoubleExcitationMinus is the double excitation rotation with a
// negative phase on the states outside the rotation subspace.
func DoubleExcitationMinus(theta float64, w1, w2, w3, w4 int) (*op.Operation, error) {
	return op.New(doubleExcitationMinusKind{}, angles(theta), []int{w1, w2, w3, w4})
}
