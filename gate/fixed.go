package gate

import (
	"math"

	"github.com/qbitlabs/circuitkit/linalg"
	"github.com/qbitlabs/circuitkit/op"
)

func init() {
	op.Register(identityKind{})
	op.Register(hadamardKind{})
	op.Register(pauliXKind{})
	op.Register(pauliYKind{})
	op.Register(pauliZKind{})
	op.Register(sKind{})
	op.Register(tKind{})
	op.Register(sxKind{})
	op.Register(cnotKind{})
	op.Register(czKind{})
	op.Register(cyKind{})
	op.Register(swapKind{})
	op.Register(cswapKind{})
	op.Register(toffoliKind{})
}

type identityKind struct{}

func (identityKind) Name() string   { return "Identity" }
func (identityKind) NumParams() int { return 0 }
func (identityKind) NumWires() int  { return 1 }
func (identityKind) SelfAdjoint()   {}

func (identityKind) Matrix(_ []op.Param, _ int) (linalg.Matrix, error) {
	return linalg.Eye(2), nil
}

func (identityKind) Eigvals(_ []op.Param, _ int) ([]complex128, error) {
	return []complex128{1, 1}, nil
}

// Identity applies the single-qubit identity.
func Identity(wire int) *op.Operation {
	return must(op.New(identityKind{}, nil, []int{wire}))
}

type hadamardKind struct{}

func (hadamardKind) Name() string   { return "Hadamard" }
func (hadamardKind) NumParams() int { return 0 }
func (hadamardKind) NumWires() int  { return 1 }
func (hadamardKind) SelfAdjoint()   {}

func (hadamardKind) Matrix(_ []op.Param, _ int) (linalg.Matrix, error) {
	return linalg.HadamardMatrix(), nil
}

func (hadamardKind) Eigvals(_ []op.Param, _ int) ([]complex128, error) {
	return []complex128{1, -1}, nil
}

func (hadamardKind) Decompose(_ []op.Param, wires []int) ([]*op.Operation, error) {
	return []*op.Operation{
		PhaseShift(math.Pi/2, wires[0]),
		RX(math.Pi/2, wires[0]),
		PhaseShift(math.Pi/2, wires[0]),
	}, nil
}

// Hadamard applies the Hadamard gate.
func Hadamard(wire int) *op.Operation {
	return must(op.New(hadamardKind{}, nil, []int{wire}))
}

type pauliXKind struct{}

func (pauliXKind) Name() string   { return "PauliX" }
func (pauliXKind) NumParams() int { return 0 }
func (pauliXKind) NumWires() int  { return 1 }
func (pauliXKind) SelfAdjoint()   {}

func (pauliXKind) Matrix(_ []op.Param, _ int) (linalg.Matrix, error) {
	return linalg.PauliX(), nil
}

func (pauliXKind) Eigvals(_ []op.Param, _ int) ([]complex128, error) {
	return []complex128{1, -1}, nil
}

func (pauliXKind) Decompose(_ []op.Param, wires []int) ([]*op.Operation, error) {
	return []*op.Operation{
		PhaseShift(math.Pi/2, wires[0]),
		RX(math.Pi, wires[0]),
		PhaseShift(math.Pi/2, wires[0]),
	}, nil
}

// PauliX applies the Pauli X gate.
func PauliX(wire int) *op.Operation {
	return must(op.New(pauliXKind{}, nil, []int{wire}))
}

type pauliYKind struct{}

func (pauliYKind) Name() string   { return "PauliY" }
func (pauliYKind) NumParams() int { return 0 }
func (pauliYKind) NumWires() int  { return 1 }
func (pauliYKind) SelfAdjoint()   {}

func (pauliYKind) Matrix(_ []op.Param, _ int) (linalg.Matrix, error) {
	return linalg.PauliY(), nil
}

func (pauliYKind) Eigvals(_ []op.Param, _ int) ([]complex128, error) {
	return []complex128{1, -1}, nil
}

func (pauliYKind) Decompose(_ []op.Param, wires []int) ([]*op.Operation, error) {
	return []*op.Operation{
		PhaseShift(math.Pi/2, wires[0]),
		RY(math.Pi, wires[0]),
		PhaseShift(math.Pi/2, wires[0]),
	}, nil
}

// PauliY applies the Pauli Y gate.
func PauliY(wire int) *op.Operation {
	return must(op.New(pauliYKind{}, nil, []int{wire}))
}

type pauliZKind struct{}

func (pauliZKind) Name() string   { return "PauliZ" }
func (pauliZKind) NumParams() int { return 0 }
func (pauliZKind) NumWires() int  { return 1 }
func (pauliZKind) SelfAdjoint()   {}

func (pauliZKind) Matrix(_ []op.Param, _ int) (linalg.Matrix, error) {
	return linalg.PauliZ(), nil
}

func (pauliZKind) Eigvals(_ []op.Param, _ int) ([]complex128, error) {
	return []complex128{1, -1}, nil
}

func (pauliZKind) Decompose(_ []op.Param, wires []int) ([]*op.Operation, error) {
	return []*op.Operation{PhaseShift(math.Pi, wires[0])}, nil
}

// PauliZ applies the Pauli Z gate.
func PauliZ(wire int) *op.Operation {
	return must(op.New(pauliZKind{}, nil, []int{wire}))
}

type sKind struct{}

func (sKind) Name() string   { return "S" }
func (sKind) NumParams() int { return 0 }
func (sKind) NumWires() int  { return 1 }

func (sKind) Matrix(_ []op.Param, _ int) (linalg.Matrix, error) {
	return linalg.Matrix{{1, 0}, {0, 1i}}, nil
}

func (sKind) Eigvals(_ []op.Param, _ int) ([]complex128, error) {
	return []complex128{1, 1i}, nil
}

func (sKind) Decompose(_ []op.Param, wires []int) ([]*op.Operation, error) {
	return []*op.Operation{PhaseShift(math.Pi/2, wires[0])}, nil
}

// S applies the phase gate diag(1, i).
func S(wire int) *op.Operation {
	return must(op.New(sKind{}, nil, []int{wire}))
}

type tKind struct{}

func (tKind) Name() string   { return "T" }
func (tKind) NumParams() int { return 0 }
func (tKind) NumWires() int  { return 1 }

func (tKind) Matrix(_ []op.Param, _ int) (linalg.Matrix, error) {
	return linalg.Matrix{{1, 0}, {0, expi(math.Pi / 4)}}, nil
}

func (tKind) Eigvals(_ []op.Param, _ int) ([]complex128, error) {
	return []complex128{1, expi(math.Pi / 4)}, nil
}

func (tKind) Decompose(_ []op.Param, wires []int) ([]*op.Operation, error) {
	return []*op.Operation{PhaseShift(math.Pi/4, wires[0])}, nil
}

// T applies the T gate diag(1, e^{iπ/4}).
func T(wire int) *op.Operation {
	return must(op.New(tKind{}, nil, []int{wire}))
}

type sxKind struct{}

func (sxKind) Name() string   { return "SX" }
func (sxKind) NumParams() int { return 0 }
func (sxKind) NumWires() int  { return 1 }

func (sxKind) Matrix(_ []op.Param, _ int) (linalg.Matrix, error) {
	return linalg.Matrix{
		{0.5 + 0.5i, 0.5 - 0.5i},
		{0.5 - 0.5i, 0.5 + 0.5i},
	}, nil
}

func (sxKind) Eigvals(_ []op.Param, _ int) ([]complex128, error) {
	return []complex128{1, 1i}, nil
}

func (sxKind) Decompose(_ []op.Param, wires []int) ([]*op.Operation, error) {
	return []*op.Operation{
		RZ(math.Pi/2, wires[0]),
		RY(math.Pi/2, wires[0]),
		RZ(-math.Pi, wires[0]),
		PhaseShift(math.Pi/2, wires[0]),
	}, nil
}

// SX applies the square root of the Pauli X gate.
func SX(wire int) *op.Operation {
	return must(op.New(sxKind{}, nil, []int{wire}))
}

type cnotKind struct{}

func (cnotKind) Name() string   { return "CNOT" }
func (cnotKind) NumParams() int { return 0 }
func (cnotKind) NumWires() int  { return 2 }
func (cnotKind) SelfAdjoint()   {}

func (cnotKind) Matrix(_ []op.Param, _ int) (linalg.Matrix, error) {
	return linalg.Matrix{
		{1, 0, 0, 0},
		{0, 1, 0, 0},
		{0, 0, 0, 1},
		{0, 0, 1, 0},
	}, nil
}

// CNOT applies a NOT on target controlled by control.
func CNOT(control, target int) (*op.Operation, error) {
	return op.New(cnotKind{}, nil, []int{control, target})
}

type czKind struct{}

func (czKind) Name() string   { return "CZ" }
func (czKind) NumParams() int { return 0 }
func (czKind) NumWires() int  { return 2 }
func (czKind) SelfAdjoint()   {}

func (czKind) Matrix(_ []op.Param, _ int) (linalg.Matrix, error) {
	return linalg.Diag([]complex128{1, 1, 1, -1}), nil
}

func (czKind) Eigvals(_ []op.Param, _ int) ([]complex128, error) {
	return []complex128{1, 1, 1, -1}, nil
}

// CZ applies a Z on target controlled by control.
func CZ(control, target int) (*op.Operation, error) {
	return op.New(czKind{}, nil, []int{control, target})
}

type cyKind struct{}

func (cyKind) Name() string   { return "CY" }
func (cyKind) NumParams() int { return 0 }
func (cyKind) NumWires() int  { return 2 }
func (cyKind) SelfAdjoint()   {}

func (cyKind) Matrix(_ []op.Param, _ int) (linalg.Matrix, error) {
	return linalg.Matrix{
		{1, 0, 0, 0},
		{0, 1, 0, 0},
		{0, 0, 0, -1i},
		{0, 0, 1i, 0},
	}, nil
}

func (cyKind) Decompose(_ []op.Param, wires []int) ([]*op.Operation, error) {
	cry, err := CRY(math.Pi, wires[0], wires[1])
	if err != nil {
		return nil, err
	}
	return []*op.Operation{cry, S(wires[0])}, nil
}

// CY applies a Y on target controlled by control.
func CY(control, target int) (*op.Operation, error) {
	return op.New(cyKind{}, nil, []int{control, target})
}

type swapKind struct{}

func (swapKind) Name() string   { return "SWAP" }
func (swapKind) NumParams() int { return 0 }
func (swapKind) NumWires() int  { return 2 }
func (swapKind) SelfAdjoint()   {}

func (swapKind) Matrix(_ []op.Param, _ int) (linalg.Matrix, error) {
	return linalg.Matrix{
		{1, 0, 0, 0},
		{0, 0, 1, 0},
		{0, 1, 0, 0},
		{0, 0, 0, 1},
	}, nil
}

// SWAP exchanges the states of two wires.
func SWAP(wire1, wire2 int) (*op.Operation, error) {
	return op.New(swapKind{}, nil, []int{wire1, wire2})
}

type cswapKind struct{}

func (cswapKind) Name() string   { return "CSWAP" }
func (cswapKind) NumParams() int { return 0 }
func (cswapKind) NumWires() int  { return 3 }
func (cswapKind) SelfAdjoint()   {}

func (cswapKind) Matrix(_ []op.Param, _ int) (linalg.Matrix, error) {
	m := linalg.Eye(8)
	m[5][5], m[5][6] = 0, 1
	m[6][5], m[6][6] = 1, 0
	return m, nil
}

// CSWAP exchanges wire1 and wire2 controlled by control.
func CSWAP(control, wire1, wire2 int) (*op.Operation, error) {
	return op.New(cswapKind{}, nil, []int{control, wire1, wire2})
}

type toffoliKind struct{}

func (toffoliKind) Name() string   { return "Toffoli" }
func (toffoliKind) NumParams() int { return 0 }
func (toffoliKind) NumWires() int  { return 3 }
func (toffoliKind) SelfAdjoint()   {}

func (toffoliKind) Matrix(_ []op.Param, _ int) (linalg.Matrix, error) {
	m := linalg.Eye(8)
	m[6][6], m[6][7] = 0, 1
	m[7][6], m[7][7] = 1, 0
	return m, nil
}

// Toffoli applies a NOT on target controlled by two control wires.
func Toffoli(control1, control2, target int) (*op.Operation, error) {
	return op.New(toffoliKind{}, nil, []int{control1, control2, target})
}
