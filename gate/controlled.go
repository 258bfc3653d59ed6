package gate

import (
	"math"

	"github.com/qbitlabs/circuitkit/linalg"
	"github.com/qbitlabs/circuitkit/op"
)

func init() {
	op.Register(crxKind{})
	op.Register(cryKind{})
	op.Register(crzKind{})
	op.Register(crotKind{})
	op.Register(controlledPhaseShiftKind{})
}

type crxKind struct{}

func (crxKind) Name() string   { return "CRX" }
func (crxKind) NumParams() int { return 1 }
func (crxKind) NumWires() int  { return 2 }

func (crxKind) Matrix(params []op.Param, _ int) (linalg.Matrix, error) {
	c, s := halfAngle(float64(params[0].(op.Angle)))
	js := complex(0, -s)
	return linalg.Matrix{
		{1, 0, 0, 0},
		{0, 1, 0, 0},
		{0, 0, complex(c, 0), js},
		{0, 0, js, complex(c, 0)},
	}, nil
}

func (crxKind) InverseParams(params []op.Param) []op.Param { return negated(params) }

func (crxKind) Generator(_ []op.Param, _ int) (linalg.Matrix, float64, error) {
	return linalg.Matrix{
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 1},
		{0, 0, 1, 0},
	}, -0.5, nil
}

func (crxKind) Decompose(params []op.Param, wires []int) ([]*op.Operation, error) {
	theta := float64(params[0].(op.Angle))
	cnot1, err := CNOT(wires[0], wires[1])
	if err != nil {
		return nil, err
	}
	cnot2, err := CNOT(wires[0], wires[1])
	if err != nil {
		return nil, err
	}
	return []*op.Operation{
		RZ(math.Pi/2, wires[1]),
		RY(theta/2, wires[1]),
		cnot1,
		RY(-theta/2, wires[1]),
		cnot2,
		RZ(-math.Pi/2, wires[1]),
	}, nil
}

// CRX applies an RX rotation on target controlled by control.
func CRX(theta float64, control, target int) (*op.Operation, error) {
	return op.New(crxKind{}, angles(theta), []int{control, target})
}

type cryKind struct{}

func (cryKind) Name() string   { return "CRY" }
func (cryKind) NumParams() int { return 1 }
func (cryKind) NumWires() int  { return 2 }

func (cryKind) Matrix(params []op.Param, _ int) (linalg.Matrix, error) {
	c, s := halfAngle(float64(params[0].(op.Angle)))
	return linalg.Matrix{
		{1, 0, 0, 0},
		{0, 1, 0, 0},
		{0, 0, complex(c, 0), complex(-s, 0)},
		{0, 0, complex(s, 0), complex(c, 0)},
	}, nil
}

func (cryKind) InverseParams(params []op.Param) []op.Param { return negated(params) }

func (cryKind) Generator(_ []op.Param, _ int) (linalg.Matrix, float64, error) {
	return linalg.Matrix{
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, -1i},
		{0, 0, 1i, 0},
	}, -0.5, nil
}

func (cryKind) Decompose(params []op.Param, wires []int) ([]*op.Operation, error) {
	theta := float64(params[0].(op.Angle))
	cnot1, err := CNOT(wires[0], wires[1])
	if err != nil {
		return nil, err
	}
	cnot2, err := CNOT(wires[0], wires[1])
	if err != nil {
		return nil, err
	}
	return []*op.Operation{
		RY(theta/2, wires[1]),
		cnot1,
		RY(-theta/2, wires[1]),
		cnot2,
	}, nil
}

// CRY applies an RY rotation on target controlled by control.
func CRY(theta float64, control, target int) (*op.Operation, error) {
	return op.New(cryKind{}, angles(theta), []int{control, target})
}

type crzKind struct{}

func (crzKind) Name() string   { return "CRZ" }
func (crzKind) NumParams() int { return 1 }
func (crzKind) NumWires() int  { return 2 }

func (crzKind) Matrix(params []op.Param, _ int) (linalg.Matrix, error) {
	theta := float64(params[0].(op.Angle))
	return linalg.Diag([]complex128{1, 1, expi(-theta / 2), expi(theta / 2)}), nil
}

func (crzKind) Eigvals(params []op.Param, _ int) ([]complex128, error) {
	theta := float64(params[0].(op.Angle))
	return []complex128{1, 1, expi(-theta / 2), expi(theta / 2)}, nil
}

func (crzKind) InverseParams(params []op.Param) []op.Param { return negated(params) }

func (crzKind) Generator(_ []op.Param, _ int) (linalg.Matrix, float64, error) {
	return linalg.Diag([]complex128{0, 0, 1, -1}), -0.5, nil
}

func (crzKind) Decompose(params []op.Param, wires []int) ([]*op.Operation, error) {
	lam := float64(params[0].(op.Angle))
	cnot1, err := CNOT(wires[0], wires[1])
	if err != nil {
		return nil, err
	}
	cnot2, err := CNOT(wires[0], wires[1])
	if err != nil {
		return nil, err
	}
	return []*op.Operation{
		PhaseShift(lam/2, wires[1]),
		cnot1,
		PhaseShift(-lam/2, wires[1]),
		cnot2,
	}, nil
}

// CRZ applies an RZ rotation on target controlled by control.
func CRZ(theta float64, control, target int) (*op.Operation, error) {
	return op.New(crzKind{}, angles(theta), []int{control, target})
}

type crotKind struct{}

func (crotKind) Name() string   { return "CRot" }
func (crotKind) NumParams() int { return 3 }
func (crotKind) NumWires() int  { return 2 }

func (crotKind) Matrix(params []op.Param, _ int) (linalg.Matrix, error) {
	phi, theta, omega := params[0].(op.Angle), params[1].(op.Angle), params[2].(op.Angle)
	c, s := halfAngle(float64(theta))
	return linalg.Matrix{
		{1, 0, 0, 0},
		{0, 1, 0, 0},
		{0, 0, expi(-0.5*float64(phi+omega)) * complex(c, 0), -expi(0.5*float64(phi-omega)) * complex(s, 0)},
		{0, 0, expi(-0.5*float64(phi-omega)) * complex(s, 0), expi(0.5*float64(phi+omega)) * complex(c, 0)},
	}, nil
}

func (crotKind) InverseParams(params []op.Param) []op.Param {
	phi, theta, omega := params[0].(op.Angle), params[1].(op.Angle), params[2].(op.Angle)
	return []op.Param{-omega, -theta, -phi}
}

func (crotKind) Decompose(params []op.Param, wires []int) ([]*op.Operation, error) {
	phi := float64(params[0].(op.Angle))
	theta := float64(params[1].(op.Angle))
	omega := float64(params[2].(op.Angle))
	cnot1, err := CNOT(wires[0], wires[1])
	if err != nil {
		return nil, err
	}
	cnot2, err := CNOT(wires[0], wires[1])
	if err != nil {
		return nil, err
	}
	return []*op.Operation{
		RZ((phi-omega)/2, wires[1]),
		cnot1,
		RZ(-(phi+omega)/2, wires[1]),
		RY(-theta/2, wires[1]),
		cnot2,
		RY(theta/2, wires[1]),
		RZ(omega, wires[1]),
	}, nil
}

// CRot applies a general Rot rotation on target controlled by control.
func CRot(phi, theta, omega float64, control, target int) (*op.Operation, error) {
	return op.New(crotKind{}, angles(phi, theta, omega), []int{control, target})
}

type controlledPhaseShiftKind struct{}

func (controlledPhaseShiftKind) Name() string   { return "ControlledPhaseShift" }
func (controlledPhaseShiftKind) NumParams() int { return 1 }
func (controlledPhaseShiftKind) NumWires() int  { return 2 }

func (controlledPhaseShiftKind) Matrix(params []op.Param, _ int) (linalg.Matrix, error) {
	phi := float64(params[0].(op.Angle))
	return linalg.Diag([]complex128{1, 1, 1, expi(phi)}), nil
}

func (controlledPhaseShiftKind) Eigvals(params []op.Param, _ int) ([]complex128, error) {
	phi := float64(params[0].(op.Angle))
	return []complex128{1, 1, 1, expi(phi)}, nil
}

func (controlledPhaseShiftKind) InverseParams(params []op.Param) []op.Param {
	return negated(params)
}

func (controlledPhaseShiftKind) Generator(_ []op.Param, _ int) (linalg.Matrix, float64, error) {
	return linalg.Diag([]complex128{0, 0, 0, 1}), 1, nil
}

func (controlledPhaseShiftKind) Decompose(params []op.Param, wires []int) ([]*op.Operation, error) {
	phi := float64(params[0].(op.Angle))
	cnot1, err := CNOT(wires[0], wires[1])
	if err != nil {
		return nil, err
	}
	cnot2, err := CNOT(wires[0], wires[1])
	if err != nil {
		return nil, err
	}
	return []*op.Operation{
		PhaseShift(phi/2, wires[0]),
		cnot1,
		PhaseShift(-phi/2, wires[1]),
		cnot2,
		PhaseShift(phi/2, wires[1]),
	}, nil
}

// ControlledPhaseShift applies a phase e^{iφ} to the state where both
// wires are 1.
func ControlledPhaseShift(phi float64, control, target int) (*op.Operation, error) {
	return op.New(controlledPhaseShiftKind{}, angles(phi), []int{control, target})
}
