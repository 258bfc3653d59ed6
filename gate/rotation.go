package gate

import (
	"math"

	"github.com/qbitlabs/circuitkit/linalg"
	"github.com/qbitlabs/circuitkit/op"
)

func init() {
	op.Register(rxKind{})
	op.Register(ryKind{})
	op.Register(rzKind{})
	op.Register(phaseShiftKind{})
	op.Register(rotKind{})
	op.Register(u1Kind{})
	op.Register(u2Kind{})
	op.Register(u3Kind{})
}

type rxKind struct{}

func (rxKind) Name() string   { return "RX" }
func (rxKind) NumParams() int { return 1 }
func (rxKind) NumWires() int  { return 1 }

func (rxKind) Matrix(params []op.Param, _ int) (linalg.Matrix, error) {
	c, s := halfAngle(float64(params[0].(op.Angle)))
	js := complex(0, -s)
	return linalg.Matrix{{complex(c, 0), js}, {js, complex(c, 0)}}, nil
}

func (rxKind) InverseParams(params []op.Param) []op.Param { return negated(params) }

func (rxKind) Generator(_ []op.Param, _ int) (linalg.Matrix, float64, error) {
	return linalg.PauliX(), -0.5, nil
}

// RX applies a rotation exp(-iθX/2) around the x axis.
func RX(theta float64, wire int) *op.Operation {
	return must(op.New(rxKind{}, angles(theta), []int{wire}))
}

type ryKind struct{}

func (ryKind) Name() string   { return "RY" }
func (ryKind) NumParams() int { return 1 }
func (ryKind) NumWires() int  { return 1 }

func (ryKind) Matrix(params []op.Param, _ int) (linalg.Matrix, error) {
	c, s := halfAngle(float64(params[0].(op.Angle)))
	return linalg.Matrix{
		{complex(c, 0), complex(-s, 0)},
		{complex(s, 0), complex(c, 0)},
	}, nil
}

func (ryKind) InverseParams(params []op.Param) []op.Param { return negated(params) }

func (ryKind) Generator(_ []op.Param, _ int) (linalg.Matrix, float64, error) {
	return linalg.PauliY(), -0.5, nil
}

// RY applies a rotation exp(-iθY/2) around the y axis.
func RY(theta float64, wire int) *op.Operation {
	return must(op.New(ryKind{}, angles(theta), []int{wire}))
}

type rzKind struct{}

func (rzKind) Name() string   { return "RZ" }
func (rzKind) NumParams() int { return 1 }
func (rzKind) NumWires() int  { return 1 }

func (rzKind) Matrix(params []op.Param, _ int) (linalg.Matrix, error) {
	p := expi(-float64(params[0].(op.Angle)) / 2)
	return linalg.Diag([]complex128{p, complex(real(p), -imag(p))}), nil
}

func (rzKind) Eigvals(params []op.Param, _ int) ([]complex128, error) {
	p := expi(-float64(params[0].(op.Angle)) / 2)
	return []complex128{p, complex(real(p), -imag(p))}, nil
}

func (rzKind) InverseParams(params []op.Param) []op.Param { return negated(params) }

func (rzKind) Generator(_ []op.Param, _ int) (linalg.Matrix, float64, error) {
	return linalg.PauliZ(), -0.5, nil
}

// RZ applies a rotation exp(-iθZ/2) around the z axis.
func RZ(theta float64, wire int) *op.Operation {
	return must(op.New(rzKind{}, angles(theta), []int{wire}))
}

type phaseShiftKind struct{}

func (phaseShiftKind) Name() string   { return "PhaseShift" }
func (phaseShiftKind) NumParams() int { return 1 }
func (phaseShiftKind) NumWires() int  { return 1 }

func (phaseShiftKind) Matrix(params []op.Param, _ int) (linalg.Matrix, error) {
	return linalg.Diag([]complex128{1, expi(float64(params[0].(op.Angle)))}), nil
}

func (phaseShiftKind) Eigvals(params []op.Param, _ int) ([]complex128, error) {
	return []complex128{1, expi(float64(params[0].(op.Angle)))}, nil
}

func (phaseShiftKind) InverseParams(params []op.Param) []op.Param { return negated(params) }

func (phaseShiftKind) Decompose(params []op.Param, wires []int) ([]*op.Operation, error) {
	return []*op.Operation{RZ(float64(params[0].(op.Angle)), wires[0])}, nil
}

func (phaseShiftKind) Generator(_ []op.Param, _ int) (linalg.Matrix, float64, error) {
	return linalg.Matrix{{0, 0}, {0, 1}}, 1, nil
}

// PhaseShift applies a local phase diag(1, e^{iφ}).
func PhaseShift(phi float64, wire int) *op.Operation {
	return must(op.New(phaseShiftKind{}, angles(phi), []int{wire}))
}

type rotKind struct{}

func (rotKind) Name() string   { return "Rot" }
func (rotKind) NumParams() int { return 3 }
func (rotKind) NumWires() int  { return 1 }

func (rotKind) Matrix(params []op.Param, _ int) (linalg.Matrix, error) {
	phi, theta, omega := params[0].(op.Angle), params[1].(op.Angle), params[2].(op.Angle)
	c, s := halfAngle(float64(theta))
	return linalg.Matrix{
		{expi(-0.5*float64(phi+omega)) * complex(c, 0), -expi(0.5*float64(phi-omega)) * complex(s, 0)},
		{expi(-0.5*float64(phi-omega)) * complex(s, 0), expi(0.5*float64(phi+omega)) * complex(c, 0)},
	}, nil
}

// The adjoint of RZ(ω)RY(θ)RZ(φ) is RZ(−φ)RY(−θ)RZ(−ω): the angles
// reverse as well as negate.
func (rotKind) InverseParams(params []op.Param) []op.Param {
	phi, theta, omega := params[0].(op.Angle), params[1].(op.Angle), params[2].(op.Angle)
	return []op.Param{-omega, -theta, -phi}
}

func (rotKind) Decompose(params []op.Param, wires []int) ([]*op.Operation, error) {
	phi, theta, omega := params[0].(op.Angle), params[1].(op.Angle), params[2].(op.Angle)
	return []*op.Operation{
		RZ(float64(phi), wires[0]),
		RY(float64(theta), wires[0]),
		RZ(float64(omega), wires[0]),
	}, nil
}

// Rot applies the general single-qubit rotation RZ(ω)RY(θ)RZ(φ).
func Rot(phi, theta, omega float64, wire int) *op.Operation {
	return must(op.New(rotKind{}, angles(phi, theta, omega), []int{wire}))
}

type u1Kind struct{}

func (u1Kind) Name() string   { return "U1" }
func (u1Kind) NumParams() int { return 1 }
func (u1Kind) NumWires() int  { return 1 }

func (u1Kind) Matrix(params []op.Param, _ int) (linalg.Matrix, error) {
	return linalg.Diag([]complex128{1, expi(float64(params[0].(op.Angle)))}), nil
}

func (u1Kind) InverseParams(params []op.Param) []op.Param { return negated(params) }

func (u1Kind) Decompose(params []op.Param, wires []int) ([]*op.Operation, error) {
	return []*op.Operation{PhaseShift(float64(params[0].(op.Angle)), wires[0])}, nil
}

func (u1Kind) Generator(_ []op.Param, _ int) (linalg.Matrix, float64, error) {
	return linalg.Matrix{{0, 0}, {0, 1}}, 1, nil
}

// U1 is an alias of PhaseShift under its IBM name.
func U1(phi float64, wire int) *op.Operation {
	return must(op.New(u1Kind{}, angles(phi), []int{wire}))
}

type u2Kind struct{}

func (u2Kind) Name() string   { return "U2" }
func (u2Kind) NumParams() int { return 2 }
func (u2Kind) NumWires() int  { return 1 }

func (u2Kind) Matrix(params []op.Param, _ int) (linalg.Matrix, error) {
	phi, lam := float64(params[0].(op.Angle)), float64(params[1].(op.Angle))
	r := complex(linalg.InvSqrt2, 0)
	return linalg.Matrix{
		{r, -r * expi(lam)},
		{r * expi(phi), r * expi(phi+lam)},
	}, nil
}

// The closed-form adjoint shuffles the angles through (π−x) mod 2π,
// which is not an involution; inversion therefore uses the flag alone.
func (u2Kind) AdjointParams(params []op.Param) []op.Param {
	phi, lam := float64(params[0].(op.Angle)), float64(params[1].(op.Angle))
	newPhi := math.Mod(math.Pi-lam, 2*math.Pi)
	newLam := math.Mod(math.Pi-phi, 2*math.Pi)
	return angles(newPhi, newLam)
}

func (u2Kind) Decompose(params []op.Param, wires []int) ([]*op.Operation, error) {
	phi, lam := float64(params[0].(op.Angle)), float64(params[1].(op.Angle))
	return []*op.Operation{
		Rot(lam, math.Pi/2, -lam, wires[0]),
		PhaseShift(lam, wires[0]),
		PhaseShift(phi, wires[0]),
	}, nil
}

// U2 applies the IBM U2 gate with angles φ and λ.
func U2(phi, lam float64, wire int) *op.Operation {
	return must(op.New(u2Kind{}, angles(phi, lam), []int{wire}))
}

type u3Kind struct{}

func (u3Kind) Name() string   { return "U3" }
func (u3Kind) NumParams() int { return 3 }
func (u3Kind) NumWires() int  { return 1 }

func (u3Kind) Matrix(params []op.Param, _ int) (linalg.Matrix, error) {
	theta := float64(params[0].(op.Angle))
	phi, lam := float64(params[1].(op.Angle)), float64(params[2].(op.Angle))
	c, s := halfAngle(theta)
	return linalg.Matrix{
		{complex(c, 0), -complex(s, 0) * expi(lam)},
		{complex(s, 0) * expi(phi), complex(c, 0) * expi(phi+lam)},
	}, nil
}

func (u3Kind) AdjointParams(params []op.Param) []op.Param {
	theta := float64(params[0].(op.Angle))
	phi, lam := float64(params[1].(op.Angle)), float64(params[2].(op.Angle))
	newPhi := math.Mod(math.Pi-lam, 2*math.Pi)
	newLam := math.Mod(math.Pi-phi, 2*math.Pi)
	return angles(theta, newPhi, newLam)
}

func (u3Kind) Decompose(params []op.Param, wires []int) ([]*op.Operation, error) {
	theta := float64(params[0].(op.Angle))
	phi, lam := float64(params[1].(op.Angle)), float64(params[2].(op.Angle))
	return []*op.Operation{
		Rot(lam, theta, -lam, wires[0]),
		PhaseShift(lam, wires[0]),
		PhaseShift(phi, wires[0]),
	}, nil
}

// U3 applies the general IBM U3 gate with angles θ, φ and λ.
func U3(theta, phi, lam float64, wire int) *op.Operation {
	return must(op.New(u3Kind{}, angles(theta, phi, lam), []int{wire}))
}
