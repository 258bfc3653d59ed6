package op

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qbitlabs/circuitkit/linalg"
)

// rotKind models a single-parameter rotation with an exact parameter
// involution and a generator.
type rotKind struct{}

func (rotKind) Name() string   { return "TestRot" }
func (rotKind) NumParams() int { return 1 }
func (rotKind) NumWires() int  { return 1 }

func (rotKind) Matrix(params []Param, _ int) (linalg.Matrix, error) {
	theta := float64(params[0].(Angle))
	c := complex(math.Cos(theta/2), 0)
	s := complex(0, -math.Sin(theta/2))
	return linalg.Matrix{{c, s}, {s, c}}, nil
}

func (rotKind) InverseParams(params []Param) []Param {
	return []Param{-params[0].(Angle)}
}

func (rotKind) Generator(_ []Param, _ int) (linalg.Matrix, float64, error) {
	return linalg.PauliX(), -0.5, nil
}

// phaseKind models a fixed non-self-adjoint gate.
type phaseKind struct{}

func (phaseKind) Name() string   { return "TestPhase" }
func (phaseKind) NumParams() int { return 0 }
func (phaseKind) NumWires() int  { return 1 }

func (phaseKind) Matrix(_ []Param, _ int) (linalg.Matrix, error) {
	return linalg.Matrix{{1, 0}, {0, complex(0, 1)}}, nil
}

func (phaseKind) Eigvals(_ []Param, _ int) ([]complex128, error) {
	return []complex128{1, complex(0, 1)}, nil
}

// flipKind models a self-adjoint gate.
type flipKind struct{}

func (flipKind) Name() string   { return "TestFlip" }
func (flipKind) NumParams() int { return 0 }
func (flipKind) NumWires() int  { return 1 }
func (flipKind) SelfAdjoint()   {}

func (flipKind) Matrix(_ []Param, _ int) (linalg.Matrix, error) {
	return linalg.PauliX(), nil
}

// prepKind models a state preparation with no adjoint.
type prepKind struct{}

func (prepKind) Name() string    { return "TestPrep" }
func (prepKind) NumParams() int  { return 1 }
func (prepKind) NumWires() int   { return AnyWires }
func (prepKind) NonAdjointable() {}

func (prepKind) Matrix(_ []Param, _ int) (linalg.Matrix, error) {
	return nil, NewConstructionError(ErrCodeBadShape, "TestPrep", "no matrix form")
}

// skewKind models a kind whose adjoint rule is not an involution.
type skewKind struct{}

func (skewKind) Name() string   { return "TestSkew" }
func (skewKind) NumParams() int { return 1 }
func (skewKind) NumWires() int  { return 1 }

func (skewKind) Matrix(params []Param, _ int) (linalg.Matrix, error) {
	phi := float64(params[0].(Angle))
	return linalg.Matrix{{1, 0}, {0, complex(math.Cos(phi), math.Sin(phi))}}, nil
}

func (skewKind) AdjointParams(params []Param) []Param {
	phi := float64(params[0].(Angle))
	return []Param{Angle(math.Mod(-phi+2*math.Pi, 2*math.Pi))}
}

// pairKind models a kind that decomposes into two rotations.
type pairKind struct{}

func (pairKind) Name() string   { return "TestPair" }
func (pairKind) NumParams() int { return 2 }
func (pairKind) NumWires() int  { return 1 }

func (pairKind) Matrix(params []Param, n int) (linalg.Matrix, error) {
	a, err := rotKind{}.Matrix(params[:1], n)
	if err != nil {
		return nil, err
	}
	b, err := rotKind{}.Matrix(params[1:], n)
	if err != nil {
		return nil, err
	}
	return b.Mul(a), nil
}

func (pairKind) InverseParams(params []Param) []Param {
	return []Param{-params[1].(Angle), -params[0].(Angle)}
}

func (pairKind) Decompose(params []Param, wires []int) ([]*Operation, error) {
	first, err := New(rotKind{}, params[:1], wires)
	if err != nil {
		return nil, err
	}
	second, err := New(rotKind{}, params[1:], wires)
	if err != nil {
		return nil, err
	}
	return []*Operation{first, second}, nil
}

// boundKind rejects out-of-range parameters via Validate.
type boundKind struct{}

func (boundKind) Name() string   { return "TestBound" }
func (boundKind) NumParams() int { return 1 }
func (boundKind) NumWires() int  { return 1 }

func (boundKind) Matrix(_ []Param, _ int) (linalg.Matrix, error) {
	return linalg.Eye(2), nil
}

func (boundKind) Validate(params []Param, _ []int) error {
	if float64(params[0].(Angle)) < 0 {
		return NewConstructionError(ErrCodeBadShape, "TestBound", "parameter must be non-negative")
	}
	return nil
}

func TestNew_ArityChecks(t *testing.T) {
	_, err := New(rotKind{}, nil, []int{0})
	require.Error(t, err)
	assert.Equal(t, ErrCodeParamArity, ConstructionCode(err))

	_, err = New(rotKind{}, []Param{Angle(0.3)}, []int{0, 1})
	require.Error(t, err)
	assert.Equal(t, ErrCodeWireArity, ConstructionCode(err))

	_, err = New(prepKind{}, []Param{Bits{0, 1}}, nil)
	require.Error(t, err)
	assert.Equal(t, ErrCodeWireArity, ConstructionCode(err))
}

func TestNew_DuplicateWires(t *testing.T) {
	_, err := New(prepKind{}, []Param{Bits{0, 1}}, []int{2, 2})
	require.Error(t, err)
	assert.Equal(t, ErrCodeDuplicateWires, ConstructionCode(err))
	assert.True(t, IsConstructionError(err))
}

func TestNew_RunsValidator(t *testing.T) {
	_, err := New(boundKind{}, []Param{Angle(-1)}, []int{0})
	require.Error(t, err)
	assert.True(t, IsConstructionError(err))

	o, err := New(boundKind{}, []Param{Angle(1)}, []int{0})
	require.NoError(t, err)
	assert.Equal(t, "TestBound", o.Name())
}

func TestOperation_Immutable(t *testing.T) {
	params := []Param{Angle(0.3)}
	wires := []int{4}
	o, err := New(rotKind{}, params, wires)
	require.NoError(t, err)

	wires[0] = 9
	assert.Equal(t, []int{4}, o.Wires())

	got := o.Wires()
	got[0] = 7
	assert.Equal(t, []int{4}, o.Wires())
}

func TestOperation_Inverse_Involution(t *testing.T) {
	o, err := New(rotKind{}, []Param{Angle(0.3)}, []int{0})
	require.NoError(t, err)

	inv, err := o.Inverse()
	require.NoError(t, err)
	assert.True(t, inv.Inverted())
	assert.True(t, ParamsEqual([]Param{Angle(-0.3)}, inv.Params()))

	back, err := inv.Inverse()
	require.NoError(t, err)
	assert.True(t, o.Equal(back))
	assert.False(t, back.Inverted())
}

func TestOperation_Inverse_MatrixOfRotation(t *testing.T) {
	o, err := New(rotKind{}, []Param{Angle(0.3)}, []int{0})
	require.NoError(t, err)
	inv, err := o.Inverse()
	require.NoError(t, err)

	m, err := o.Matrix()
	require.NoError(t, err)
	mi, err := inv.Matrix()
	require.NoError(t, err)
	// The inverse's parameters encode the adjoint already; the flag
	// must not dagger a second time.
	assert.True(t, m.Dagger().Equal(mi, linalg.DefaultTol))
}

func TestOperation_Inverse_FixedGateDaggers(t *testing.T) {
	o, err := New(phaseKind{}, nil, []int{0})
	require.NoError(t, err)
	inv, err := o.Inverse()
	require.NoError(t, err)

	mi, err := inv.Matrix()
	require.NoError(t, err)
	want := linalg.Matrix{{1, 0}, {0, complex(0, -1)}}
	assert.True(t, want.Equal(mi, linalg.DefaultTol))

	vals, err := inv.Eigvals()
	require.NoError(t, err)
	assert.Equal(t, []complex128{1, complex(0, -1)}, vals)
}

func TestOperation_Adjoint_SelfAdjoint(t *testing.T) {
	o, err := New(flipKind{}, nil, []int{1})
	require.NoError(t, err)
	adj, err := o.Adjoint()
	require.NoError(t, err)
	assert.True(t, o.Equal(adj))
	assert.False(t, adj.Inverted())
}

func TestOperation_Adjoint_StatePrep(t *testing.T) {
	o, err := New(prepKind{}, []Param{Bits{1, 0}}, []int{0, 1})
	require.NoError(t, err)

	_, err = o.Adjoint()
	require.Error(t, err)
	assert.True(t, IsNotAdjointable(err))

	_, err = o.Inverse()
	require.Error(t, err)
	assert.True(t, IsNotAdjointable(err))
}

func TestOperation_Adjoint_CustomRule(t *testing.T) {
	o, err := New(skewKind{}, []Param{Angle(0.5)}, []int{0})
	require.NoError(t, err)
	adj, err := o.Adjoint()
	require.NoError(t, err)

	// The adjoint rule lands in the parameters; the flag stays clear.
	assert.False(t, adj.Inverted())
	assert.InDelta(t, 2*math.Pi-0.5, float64(adj.Params()[0].(Angle)), 1e-12)

	m, err := o.Matrix()
	require.NoError(t, err)
	ma, err := adj.Matrix()
	require.NoError(t, err)
	assert.True(t, m.Dagger().Equal(ma, linalg.DefaultTol))
}

func TestOperation_Adjoint_ParameterRule(t *testing.T) {
	o, err := New(rotKind{}, []Param{Angle(0.3)}, []int{0})
	require.NoError(t, err)
	adj, err := o.Adjoint()
	require.NoError(t, err)

	assert.False(t, adj.Inverted())
	assert.True(t, ParamsEqual([]Param{Angle(-0.3)}, adj.Params()))
}

func TestOperation_Adjoint_UndoesInversion(t *testing.T) {
	o, err := New(rotKind{}, []Param{Angle(0.3)}, []int{0})
	require.NoError(t, err)
	inv, err := o.Inverse()
	require.NoError(t, err)
	adj, err := inv.Adjoint()
	require.NoError(t, err)
	assert.True(t, o.Equal(adj))
}

func TestOperation_Decompose(t *testing.T) {
	o, err := New(pairKind{}, []Param{Angle(0.2), Angle(0.7)}, []int{3})
	require.NoError(t, err)

	ops, err := o.Decompose()
	require.NoError(t, err)
	require.Len(t, ops, 2)
	assert.Equal(t, "TestRot", ops[0].Name())
	assert.True(t, ParamsEqual([]Param{Angle(0.2)}, ops[0].Params()))
	assert.True(t, ParamsEqual([]Param{Angle(0.7)}, ops[1].Params()))
}

func TestOperation_Decompose_Inverted(t *testing.T) {
	o, err := New(pairKind{}, []Param{Angle(0.2), Angle(0.7)}, []int{3})
	require.NoError(t, err)
	inv, err := o.Inverse()
	require.NoError(t, err)

	ops, err := inv.Decompose()
	require.NoError(t, err)
	require.Len(t, ops, 2)
	// The stored parameters already carry the adjoint, so the steps
	// come back plain.
	assert.False(t, ops[0].Inverted())
	assert.False(t, ops[1].Inverted())
	assert.True(t, ParamsEqual([]Param{Angle(-0.7)}, ops[0].Params()))
	assert.True(t, ParamsEqual([]Param{Angle(-0.2)}, ops[1].Params()))

	m0, err := ops[0].Matrix()
	require.NoError(t, err)
	m1, err := ops[1].Matrix()
	require.NoError(t, err)
	want, err := o.Matrix()
	require.NoError(t, err)
	assert.True(t, want.Dagger().Equal(m1.Mul(m0), linalg.DefaultTol))
}

func TestOperation_Generator(t *testing.T) {
	o, err := New(rotKind{}, []Param{Angle(0.3)}, []int{0})
	require.NoError(t, err)

	g, pref, err := o.Generator()
	require.NoError(t, err)
	assert.Equal(t, -0.5, pref)
	assert.True(t, linalg.PauliX().Equal(g, linalg.DefaultTol))

	_, _, err = mustNoErr(t, phaseKind{}, nil, []int{0}).Generator()
	require.Error(t, err)
	assert.True(t, IsUnsupported(err))
}

func TestOperation_UnsupportedCapabilities(t *testing.T) {
	o := mustNoErr(t, rotKind{}, []Param{Angle(0.3)}, []int{0})

	_, err := o.Eigvals()
	require.Error(t, err)
	assert.True(t, IsUnsupported(err))
	assert.Contains(t, err.Error(), "eigenvalues")

	_, err = o.Decompose()
	require.Error(t, err)
	assert.True(t, IsUnsupported(err))
	assert.Contains(t, err.Error(), "decomposition")
}

func mustNoErr(t *testing.T, k Kind, params []Param, wires []int) *Operation {
	t.Helper()
	o, err := New(k, params, wires)
	require.NoError(t, err)
	return o
}

func TestOperation_String(t *testing.T) {
	o := mustNoErr(t, rotKind{}, []Param{Angle(0.3)}, []int{0})
	assert.Equal(t, "TestRot(0.3) @ [0]", o.String())

	inv, err := o.Inverse()
	require.NoError(t, err)
	assert.Equal(t, "TestRot(-0.3).inv @ [0]", inv.String())

	p := mustNoErr(t, prepKind{}, []Param{Bits{1, 0, 1}}, []int{0, 1, 2})
	assert.Equal(t, "TestPrep(bits[101]) @ [0 1 2]", p.String())
}

func TestRegistry(t *testing.T) {
	Register(rotKind{})
	defer func() {
		registryMu.Lock()
		delete(registry, "TestRot")
		registryMu.Unlock()
	}()

	k, ok := Lookup("TestRot")
	require.True(t, ok)
	assert.Equal(t, "TestRot", k.Name())

	assert.Contains(t, Kinds(), "TestRot")
	assert.Panics(t, func() { Register(rotKind{}) })
}
