package op

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/qbitlabs/circuitkit/linalg"
)

func TestParamEqual(t *testing.T) {
	assert.True(t, ParamEqual(Angle(0.5), Angle(0.5)))
	assert.False(t, ParamEqual(Angle(0.5), Angle(-0.5)))
	assert.False(t, ParamEqual(Angle(0), Word("X")))

	assert.True(t, ParamEqual(Word("XYZ"), Word("XYZ")))
	assert.True(t, ParamEqual(Bits{1, 0, 1}, Bits{1, 0, 1}))
	assert.False(t, ParamEqual(Bits{1, 0}, Bits{1, 0, 1}))

	assert.True(t, ParamEqual(Vector{1, 0}, Vector{1, 0}))
	assert.False(t, ParamEqual(Vector{1, 0}, Vector{0, 1}))

	assert.True(t, ParamEqual(Mat(linalg.Eye(2)), Mat(linalg.Eye(2))))
	assert.False(t, ParamEqual(Mat(linalg.Eye(2)), Mat(linalg.PauliX())))
}

func TestParamString(t *testing.T) {
	assert.Equal(t, "0.25", Angle(0.25).String())
	assert.Equal(t, `"XY"`, Word("XY").String())
	assert.Equal(t, "bits[101]", Bits{1, 0, 1}.String())
	assert.Equal(t, "vec[4]", Vector{1, 0, 0, 0}.String())
	assert.Equal(t, "mat[2x2]", Mat(linalg.Eye(2)).String())
}

func TestAngles(t *testing.T) {
	got := Angles([]Param{Angle(0.1), Angle(0.2)})
	assert.Equal(t, []float64{0.1, 0.2}, got)
}
