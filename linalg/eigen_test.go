package linalg

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func requireEigenpairs(t *testing.T, h Matrix, values []float64, vectors Matrix) {
	t.Helper()
	for col := 0; col < h.Rows(); col++ {
		vec := make([]complex128, h.Rows())
		for row := range vec {
			vec[row] = vectors[row][col]
		}
		hv := h.MulVec(vec)
		for row := range vec {
			assert.InDelta(t, real(hv[row]), values[col]*real(vec[row]), 1e-8)
			assert.InDelta(t, imag(hv[row]), values[col]*imag(vec[row]), 1e-8)
		}
	}
}

func TestEigHermitian_PauliZ(t *testing.T) {
	ResetEigenCache()

	values, vectors, err := EigHermitian(PauliZ())
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{-1, 1}, values, 1e-12)
	requireEigenpairs(t, PauliZ(), values, vectors)
}

func TestEigHermitian_Complex(t *testing.T) {
	ResetEigenCache()

	h := Matrix{
		{-2, -2 + 1i, -2, -2},
		{-2 - 1i, 0, 0, -1},
		{-2, 0, -2, -1},
		{-2, -1, -1, 0},
	}
	values, vectors, err := EigHermitian(h)
	require.NoError(t, err)

	// Eigenvalues ascending, eigenvectors unitary.
	for i := 1; i < len(values); i++ {
		assert.LessOrEqual(t, values[i-1], values[i])
	}
	assert.True(t, vectors.IsUnitary(1e-8))
	requireEigenpairs(t, h, values, vectors)

	// Trace is preserved by the decomposition.
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	assert.InDelta(t, real(h.Trace()), sum, 1e-8)
}

func TestEigHermitian_NotHermitian(t *testing.T) {
	_, _, err := EigHermitian(Matrix{{1, 2}, {3, 4}})
	require.Error(t, err)
}

func TestEigHermitian_CacheIsolation(t *testing.T) {
	ResetEigenCache()

	h := Matrix{{2.5, -0.5}, {-0.5, 2.5}}
	values, vectors, err := EigHermitian(h)
	require.NoError(t, err)

	// Mutating returned results must not poison cached entries.
	values[0] = 1e9
	vectors[0][0] = 1e9

	again, vecsAgain, err := EigHermitian(h)
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{2, 3}, again, 1e-10)
	requireEigenpairs(t, h, again, vecsAgain)

	ResetEigenCache()
	cold, _, err := EigHermitian(h)
	require.NoError(t, err)
	assert.InDeltaSlice(t, again, cold, 1e-12)
}

func TestMatrixHash_Deterministic(t *testing.T) {
	a := Matrix{{1, 2i}, {-2i, 1}}
	b := Matrix{{1, 2i}, {-2i, 1}}
	c := Matrix{{1, 2i}, {-2i, 2}}

	assert.Equal(t, a.Hash(), b.Hash())
	assert.NotEqual(t, a.Hash(), c.Hash())

	// Shape participates in the key: a row vector and a column vector
	// with the same elements must not collide.
	row := Matrix{{1, 2}}
	col := Matrix{{1}, {2}}
	assert.NotEqual(t, row.Hash(), col.Hash())
}
