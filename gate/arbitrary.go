package gate

import (
	"github.com/qbitlabs/circuitkit/linalg"
	"github.com/qbitlabs/circuitkit/op"
)

func init() {
	op.Register(qubitUnitaryKind{})
	op.Register(controlledQubitUnitaryKind{})
	op.Register(multiControlledXKind{})
	op.Register(diagonalQubitUnitaryKind{})
}

type qubitUnitaryKind struct{}

func (qubitUnitaryKind) Name() string   { return "QubitUnitary" }
func (qubitUnitaryKind) NumParams() int { return 1 }
func (qubitUnitaryKind) NumWires() int  { return op.AnyWires }

func (qubitUnitaryKind) Validate(params []op.Param, wires []int) error {
	u, ok := params[0].(op.Mat)
	if !ok {
		return op.NewConstructionError(op.ErrCodeBadShape, "QubitUnitary",
			"parameter must be a matrix")
	}
	m := linalg.Matrix(u)
	if !m.IsSquare() {
		return op.NewConstructionError(op.ErrCodeBadShape, "QubitUnitary",
			"operator must be a square matrix")
	}
	if dim := 1 << len(wires); m.Rows() != dim {
		return op.NewConstructionError(op.ErrCodeBadShape, "QubitUnitary",
			"operator must be of shape %dx%d to act on %d wires", dim, dim, len(wires))
	}
	if !m.IsUnitary(linalg.DefaultTol) {
		return op.NewConstructionError(op.ErrCodeNotUnitary, "QubitUnitary",
			"operator must be unitary")
	}
	return nil
}

func (qubitUnitaryKind) Matrix(params []op.Param, _ int) (linalg.Matrix, error) {
	return linalg.Matrix(params[0].(op.Mat)).Clone(), nil
}

// The adjoint is the conjugate transpose of the parameter itself, an
// exact involution.
func (qubitUnitaryKind) InverseParams(params []op.Param) []op.Param {
	u := linalg.Matrix(params[0].(op.Mat))
	return []op.Param{op.Mat(u.Dagger())}
}

// QubitUnitary applies an arbitrary unitary matrix to the given wires.
func QubitUnitary(u linalg.Matrix, wires ...int) (*op.Operation, error) {
	return op.New(qubitUnitaryKind{}, []op.Param{op.Mat(u)}, wires)
}

type controlledQubitUnitaryKind struct{}

func (controlledQubitUnitaryKind) Name() string   { return "ControlledQubitUnitary" }
func (controlledQubitUnitaryKind) NumParams() int { return 2 }
func (controlledQubitUnitaryKind) NumWires() int  { return op.AnyWires }

func (controlledQubitUnitaryKind) Validate(params []op.Param, wires []int) error {
	u, ok := params[0].(op.Mat)
	if !ok {
		return op.NewConstructionError(op.ErrCodeBadShape, "ControlledQubitUnitary",
			"first parameter must be a matrix")
	}
	bits, ok := params[1].(op.Bits)
	if !ok {
		return op.NewConstructionError(op.ErrCodeBadControlString, "ControlledQubitUnitary",
			"second parameter must be control bits")
	}
	numTargets := len(wires) - len(bits)
	if numTargets < 1 {
		return op.NewConstructionError(op.ErrCodeWireArity, "ControlledQubitUnitary",
			"need at least one target wire after %d control wires", len(bits))
	}
	m := linalg.Matrix(u)
	if !m.IsSquare() {
		return op.NewConstructionError(op.ErrCodeBadShape, "ControlledQubitUnitary",
			"operator must be a square matrix")
	}
	if dim := 1 << numTargets; m.Rows() != dim {
		return op.NewConstructionError(op.ErrCodeBadShape, "ControlledQubitUnitary",
			"input unitary must be of shape %dx%d", dim, dim)
	}
	if !m.IsUnitary(linalg.DefaultTol) {
		return op.NewConstructionError(op.ErrCodeNotUnitary, "ControlledQubitUnitary",
			"operator must be unitary")
	}
	for _, b := range bits {
		if b != 0 && b != 1 {
			return op.NewConstructionError(op.ErrCodeBadControlString, "ControlledQubitUnitary",
				"control bits must be 0 or 1")
		}
	}
	return nil
}

func (controlledQubitUnitaryKind) Matrix(params []op.Param, _ int) (linalg.Matrix, error) {
	u := linalg.Matrix(params[0].(op.Mat))
	bits := params[1].(op.Bits)
	return controlledBlock(u, len(bits), controlInt(bits)), nil
}

// ControlledQubitUnitary applies u to the target wires when the control
// wires carry the bit pattern controlValues. An empty controlValues
// controls on the all-ones state.
func ControlledQubitUnitary(u linalg.Matrix, controls, targets []int, controlValues string) (*op.Operation, error) {
	bits, err := parseControlValues("ControlledQubitUnitary", controlValues, len(controls))
	if err != nil {
		return nil, err
	}
	wires := append(append([]int(nil), controls...), targets...)
	return op.New(controlledQubitUnitaryKind{}, []op.Param{op.Mat(u), bits}, wires)
}

type multiControlledXKind struct{}

func (multiControlledXKind) Name() string   { return "MultiControlledX" }
func (multiControlledXKind) NumParams() int { return 1 }
func (multiControlledXKind) NumWires() int  { return op.AnyWires }
func (multiControlledXKind) SelfAdjoint()   {}

func (multiControlledXKind) Validate(params []op.Param, wires []int) error {
	bits, ok := params[0].(op.Bits)
	if !ok {
		return op.NewConstructionError(op.ErrCodeBadControlString, "MultiControlledX",
			"parameter must be control bits")
	}
	if len(wires) != len(bits)+1 {
		return op.NewConstructionError(op.ErrCodeWireArity, "MultiControlledX",
			"expected %d wires for %d control bits, got %d", len(bits)+1, len(bits), len(wires))
	}
	for _, b := range bits {
		if b != 0 && b != 1 {
			return op.NewConstructionError(op.ErrCodeBadControlString, "MultiControlledX",
				"control bits must be 0 or 1")
		}
	}
	return nil
}

func (multiControlledXKind) Matrix(params []op.Param, _ int) (linalg.Matrix, error) {
	bits := params[0].(op.Bits)
	return controlledBlock(linalg.PauliX(), len(bits), controlInt(bits)), nil
}

// MultiControlledX applies a NOT on target controlled on the basis
// state controlValues of the control wires. An empty controlValues
// controls on the all-ones state.
func MultiControlledX(controls []int, target int, controlValues string) (*op.Operation, error) {
	bits, err := parseControlValues("MultiControlledX", controlValues, len(controls))
	if err != nil {
		return nil, err
	}
	wires := append(append([]int(nil), controls...), target)
	return op.New(multiControlledXKind{}, []op.Param{bits}, wires)
}

type diagonalQubitUnitaryKind struct{}

func (diagonalQubitUnitaryKind) Name() string   { return "DiagonalQubitUnitary" }
func (diagonalQubitUnitaryKind) NumParams() int { return 1 }
func (diagonalQubitUnitaryKind) NumWires() int  { return op.AnyWires }

func (diagonalQubitUnitaryKind) Validate(params []op.Param, wires []int) error {
	d, ok := params[0].(op.Vector)
	if !ok {
		return op.NewConstructionError(op.ErrCodeBadShape, "DiagonalQubitUnitary",
			"parameter must be a vector")
	}
	if want := 1 << len(wires); len(d) != want {
		return op.NewConstructionError(op.ErrCodeBadShape, "DiagonalQubitUnitary",
			"diagonal must be of length %d to act on %d wires", want, len(wires))
	}
	for _, z := range d {
		if mag := real(z)*real(z) + imag(z)*imag(z); mag < 1-linalg.DefaultTol || mag > 1+linalg.DefaultTol {
			return op.NewConstructionError(op.ErrCodeNotUnitary, "DiagonalQubitUnitary",
				"operator must be unitary")
		}
	}
	return nil
}

func (diagonalQubitUnitaryKind) Matrix(params []op.Param, _ int) (linalg.Matrix, error) {
	return linalg.Diag(params[0].(op.Vector)), nil
}

func (diagonalQubitUnitaryKind) Eigvals(params []op.Param, _ int) ([]complex128, error) {
	d := params[0].(op.Vector)
	return append([]complex128(nil), d...), nil
}

// The adjoint conjugates the diagonal, an exact involution.
func (diagonalQubitUnitaryKind) InverseParams(params []op.Param) []op.Param {
	d := params[0].(op.Vector)
	out := make(op.Vector, len(d))
	for i, z := range d {
		out[i] = complex(real(z), -imag(z))
	}
	return []op.Param{out}
}

func (diagonalQubitUnitaryKind) Decompose(params []op.Param, wires []int) ([]*op.Operation, error) {
	u, err := QubitUnitary(linalg.Diag(params[0].(op.Vector)), wires...)
	if err != nil {
		return nil, err
	}
	return []*op.Operation{u}, nil
}

// DiagonalQubitUnitary applies the diagonal unitary with the given
// diagonal entries.
func DiagonalQubitUnitary(d []complex128, wires ...int) (*op.Operation, error) {
	return op.New(diagonalQubitUnitaryKind{}, []op.Param{op.Vector(d)}, wires)
}
