package record

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qbitlabs/circuitkit/gate"
	"github.com/qbitlabs/circuitkit/op"
)

func mustOp(o *op.Operation, err error) *op.Operation {
	if err != nil {
		panic(err)
	}
	return o
}

// twoGateTemplate lays down an RX and an RY on every wire.
func twoGateTemplate(wires ...int) []*op.Operation {
	var ops []*op.Operation
	for _, w := range wires {
		ops = append(ops, gate.RX(1, w), gate.RY(2, w))
	}
	return ops
}

func TestInvert_SingleOperation(t *testing.T) {
	inv, err := Invert(nil, gate.RX(0.5, 0))
	require.NoError(t, err)

	ops := inv.Operations()
	require.Len(t, ops, 1)
	assert.Equal(t, "RX", ops[0].Name())
	assert.True(t, ops[0].Inverted())
	assert.True(t, op.ParamsEqual([]op.Param{op.Angle(-0.5)}, ops[0].Params()))
}

func TestInvert_TemplateExpansionFullyReversed(t *testing.T) {
	expanded := twoGateTemplate(0, 1, 2)
	inv, err := Invert(nil, expanded)
	require.NoError(t, err)

	ops := inv.Operations()
	require.Len(t, ops, 6)

	// Reversed wire-major and intra-wire order, every element flagged.
	wantNames := []string{"RY", "RX", "RY", "RX", "RY", "RX"}
	wantWires := []int{2, 2, 1, 1, 0, 0}
	wantAngles := []float64{-2, -1, -2, -1, -2, -1}
	for i, o := range ops {
		assert.Equal(t, wantNames[i], o.Name(), "position %d", i)
		assert.Equal(t, []int{wantWires[i]}, o.Wires(), "position %d", i)
		assert.True(t, o.Inverted(), "position %d", i)
		assert.True(t, op.ParamsEqual([]op.Param{op.Angle(wantAngles[i])}, o.Params()),
			"position %d", i)
	}
}

func TestInvert_DoubleInversionIsBitIdentical(t *testing.T) {
	original := twoGateTemplate(0, 1)

	once, err := Invert(nil, original)
	require.NoError(t, err)
	twice, err := Invert(nil, once)
	require.NoError(t, err)

	got := twice.Operations()
	require.Len(t, got, len(original))
	for i := range original {
		assert.True(t, original[i].Equal(got[i]), "position %d", i)
		assert.False(t, got[i].Inverted(), "position %d", i)
	}
}

func TestInvert_SplicesRecordedBlock(t *testing.T) {
	ctx := NewContext()
	rx := gate.RX(1, 0)
	ry := gate.RY(2, 0)

	ctx.Record(gate.Hadamard(0))
	ctx.Record(mustOp(gate.CNOT(0, 1)))
	ctx.Record(rx)
	ctx.Record(ry)
	ctx.Record(mustOp(gate.CNOT(0, 1)))
	ctx.Record(gate.Hadamard(0))

	inv, err := Invert(ctx, []*op.Operation{rx, ry})
	require.NoError(t, err)

	got := ctx.Operations()
	require.Len(t, got, 6)
	assert.Equal(t, "Hadamard", got[0].Name())
	assert.Equal(t, "CNOT", got[1].Name())
	assert.Equal(t, "RY", got[2].Name())
	assert.True(t, got[2].Inverted())
	assert.True(t, op.ParamsEqual([]op.Param{op.Angle(-2)}, got[2].Params()))
	assert.Equal(t, "RX", got[3].Name())
	assert.True(t, got[3].Inverted())
	assert.True(t, op.ParamsEqual([]op.Param{op.Angle(-1)}, got[3].Params()))
	assert.Equal(t, "CNOT", got[4].Name())
	assert.Equal(t, "Hadamard", got[5].Name())
	assert.False(t, got[5].Inverted())

	returned := inv.Operations()
	require.Len(t, returned, 2)
	assert.Equal(t, "RY", returned[0].Name())
	assert.Equal(t, "RX", returned[1].Name())
}

func TestInvert_MixedRecordedAndFresh(t *testing.T) {
	ctx := NewContext()
	rx := gate.RX(0.5, 0)
	ctx.Record(gate.Hadamard(0))
	ctx.Record(rx)

	fresh := gate.S(1)
	_, err := Invert(ctx, []*op.Operation{rx, fresh})
	require.NoError(t, err)

	got := ctx.Operations()
	require.Len(t, got, 3)
	assert.Equal(t, "Hadamard", got[0].Name())
	// The block lands where the first recorded element sat.
	assert.Equal(t, "S", got[1].Name())
	assert.True(t, got[1].Inverted())
	assert.Equal(t, "RX", got[2].Name())
	assert.True(t, got[2].Inverted())
}

func TestInvert_RemovesOneOccurrencePerElement(t *testing.T) {
	ctx := NewContext()
	h := gate.Hadamard(0)
	ctx.Record(h)
	ctx.Record(gate.PauliX(1))
	ctx.Record(h)

	_, err := Invert(ctx, []*op.Operation{h})
	require.NoError(t, err)

	// The same pointer was recorded twice; inverting it once removes
	// only the first occurrence.
	got := ctx.Operations()
	require.Len(t, got, 3)
	assert.Equal(t, "Hadamard", got[0].Name())
	assert.True(t, got[0].Inverted())
	assert.Equal(t, "PauliX", got[1].Name())
	assert.Same(t, h, got[2])
}

func TestInvert_AppendsWhenNothingRecorded(t *testing.T) {
	ctx := NewContext()
	ctx.Record(gate.Hadamard(0))

	_, err := Invert(ctx, gate.S(1))
	require.NoError(t, err)

	got := ctx.Operations()
	require.Len(t, got, 2)
	assert.Equal(t, "Hadamard", got[0].Name())
	assert.Equal(t, "S", got[1].Name())
	assert.True(t, got[1].Inverted())
}

func TestInvert_NilArgument(t *testing.T) {
	_, err := Invert(nil, nil)
	require.Error(t, err)
	assert.Equal(t, ErrCodeNilInput, InversionCode(err))
	assert.Contains(t, err.Error(), "template without expansion")

	var typedNil *op.Operation
	_, err = Invert(nil, typedNil)
	require.Error(t, err)
	assert.Equal(t, ErrCodeNilInput, InversionCode(err))
}

func TestInvert_BareCallable(t *testing.T) {
	_, err := Invert(nil, Template(twoGateTemplate))
	require.Error(t, err)
	assert.Equal(t, ErrCodeBareCallable, InversionCode(err))

	_, err = Invert(nil, func(x int) int { return x })
	require.Error(t, err)
	assert.Equal(t, ErrCodeBareCallable, InversionCode(err))
}

func TestInvert_NotIterable(t *testing.T) {
	for _, arg := range []any{2.3, struct{}{}, "Test"} {
		_, err := Invert(nil, arg)
		require.Error(t, err)
		assert.Equal(t, ErrCodeNotIterable, InversionCode(err), "%T", arg)
		assert.True(t, IsInversionError(err))
	}
}

func TestInvert_NonOperationElement(t *testing.T) {
	_, err := Invert(nil, []any{gate.PauliX(0), gate.PauliY(1), "Test"})
	require.Error(t, err)
	assert.Equal(t, ErrCodeNotOperation, InversionCode(err))
	assert.Contains(t, err.Error(), "element 2")

	_, err = Invert(nil, []int{1, 2, 3})
	require.Error(t, err)
	assert.Equal(t, ErrCodeNotOperation, InversionCode(err))
}

func TestInvert_StatePrepHasNoInverse(t *testing.T) {
	prep := mustOp(gate.BasisState([]int{1, 0}, 0, 1))
	_, err := Invert(nil, prep)
	require.Error(t, err)
	assert.True(t, op.IsNotAdjointable(err))
}

func TestInvert_FailureLeavesContextUntouched(t *testing.T) {
	ctx := NewContext()
	rx := gate.RX(0.5, 0)
	ctx.Record(rx)
	ctx.Record(gate.Hadamard(0))

	_, err := Invert(ctx, []any{rx, "not-an-operation"})
	require.Error(t, err)

	got := ctx.Operations()
	require.Len(t, got, 2)
	assert.Same(t, rx, got[0])
	assert.Equal(t, "Hadamard", got[1].Name())
	assert.False(t, got[0].Inverted())

	// A state preparation fails element inversion; the context must
	// also stay intact then.
	prep := mustOp(gate.BasisState([]int{1}, 0))
	_, err = Invert(ctx, []*op.Operation{rx, prep})
	require.Error(t, err)
	assert.Equal(t, 2, ctx.Len())
}

func TestInvert_DoubleInversionOfInversionValue(t *testing.T) {
	ctx := NewContext()
	rx := gate.RX(0.5, 0)
	ctx.Record(rx)

	first, err := Invert(ctx, rx)
	require.NoError(t, err)
	require.Equal(t, 1, ctx.Len())

	second, err := Invert(nil, first)
	require.NoError(t, err)
	got := second.Operations()
	require.Len(t, got, 1)
	assert.True(t, rx.Equal(got[0]))
}
