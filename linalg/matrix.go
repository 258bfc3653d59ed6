package linalg

import (
	"fmt"
	"math"
	"math/cmplx"
)

// DefaultTol is the floating tolerance used by the unitarity and
// Hermiticity checks when callers have no reason to pick their own.
const DefaultTol = 1e-10

// Matrix is a dense, row-major complex matrix.
type Matrix [][]complex128

// Zeros returns a rows x cols matrix of zeros.
func Zeros(rows, cols int) Matrix {
	m := make(Matrix, rows)
	for i := range m {
		m[i] = make([]complex128, cols)
	}
	return m
}

// Eye returns the n x n identity matrix.
func Eye(n int) Matrix {
	m := Zeros(n, n)
	for i := 0; i < n; i++ {
		m[i][i] = 1
	}
	return m
}

// Diag returns a square matrix with d on the diagonal.
func Diag(d []complex128) Matrix {
	m := Zeros(len(d), len(d))
	for i, v := range d {
		m[i][i] = v
	}
	return m
}

// Rows returns the number of rows.
func (m Matrix) Rows() int { return len(m) }

// Cols returns the number of columns (0 for an empty matrix).
func (m Matrix) Cols() int {
	if len(m) == 0 {
		return 0
	}
	return len(m[0])
}

// IsSquare reports whether the matrix is square and non-empty.
func (m Matrix) IsSquare() bool {
	return m.Rows() > 0 && m.Rows() == m.Cols()
}

// Clone returns a deep copy.
func (m Matrix) Clone() Matrix {
	out := make(Matrix, len(m))
	for i, row := range m {
		out[i] = append([]complex128(nil), row...)
	}
	return out
}

// Diagonal returns a copy of the main diagonal.
func (m Matrix) Diagonal() []complex128 {
	n := m.Rows()
	if m.Cols() < n {
		n = m.Cols()
	}
	d := make([]complex128, n)
	for i := 0; i < n; i++ {
		d[i] = m[i][i]
	}
	return d
}

// Mul returns the matrix product m * other.
// Panics on a dimension mismatch, which is always a programming error.
func (m Matrix) Mul(other Matrix) Matrix {
	if m.Cols() != other.Rows() {
		panic(fmt.Sprintf("linalg: cannot multiply %dx%d by %dx%d",
			m.Rows(), m.Cols(), other.Rows(), other.Cols()))
	}
	out := Zeros(m.Rows(), other.Cols())
	for i := 0; i < m.Rows(); i++ {
		for k := 0; k < m.Cols(); k++ {
			a := m[i][k]
			if a == 0 {
				continue
			}
			for j := 0; j < other.Cols(); j++ {
				out[i][j] += a * other[k][j]
			}
		}
	}
	return out
}

// MulVec returns the matrix-vector product m * v.
func (m Matrix) MulVec(v []complex128) []complex128 {
	if m.Cols() != len(v) {
		panic(fmt.Sprintf("linalg: cannot multiply %dx%d by vector of length %d",
			m.Rows(), m.Cols(), len(v)))
	}
	out := make([]complex128, m.Rows())
	for i := 0; i < m.Rows(); i++ {
		for j, x := range v {
			out[i] += m[i][j] * x
		}
	}
	return out
}

// Add returns the element-wise sum m + other.
func (m Matrix) Add(other Matrix) Matrix {
	if m.Rows() != other.Rows() || m.Cols() != other.Cols() {
		panic(fmt.Sprintf("linalg: cannot add %dx%d and %dx%d",
			m.Rows(), m.Cols(), other.Rows(), other.Cols()))
	}
	out := m.Clone()
	for i := range out {
		for j := range out[i] {
			out[i][j] += other[i][j]
		}
	}
	return out
}

// Scale returns z * m.
func (m Matrix) Scale(z complex128) Matrix {
	out := m.Clone()
	for i := range out {
		for j := range out[i] {
			out[i][j] *= z
		}
	}
	return out
}

// Conj returns the element-wise complex conjugate.
func (m Matrix) Conj() Matrix {
	out := m.Clone()
	for i := range out {
		for j := range out[i] {
			out[i][j] = cmplx.Conj(out[i][j])
		}
	}
	return out
}

// Transpose returns the transpose.
func (m Matrix) Transpose() Matrix {
	out := Zeros(m.Cols(), m.Rows())
	for i := range m {
		for j := range m[i] {
			out[j][i] = m[i][j]
		}
	}
	return out
}

// Dagger returns the conjugate transpose.
func (m Matrix) Dagger() Matrix {
	return m.Conj().Transpose()
}

// Kron returns the Kronecker product m ⊗ other.
func (m Matrix) Kron(other Matrix) Matrix {
	out := Zeros(m.Rows()*other.Rows(), m.Cols()*other.Cols())
	for i := range m {
		for j := range m[i] {
			a := m[i][j]
			for k := range other {
				for l := range other[k] {
					out[i*other.Rows()+k][j*other.Cols()+l] = a * other[k][l]
				}
			}
		}
	}
	return out
}

// Equal reports element-wise equality within tol.
func (m Matrix) Equal(other Matrix, tol float64) bool {
	if m.Rows() != other.Rows() || m.Cols() != other.Cols() {
		return false
	}
	for i := range m {
		for j := range m[i] {
			if cmplx.Abs(m[i][j]-other[i][j]) > tol {
				return false
			}
		}
	}
	return true
}

// EqualUpToPhase reports whether m equals other up to a global complex
// phase. Used to compare a gate matrix against the composition of its
// decomposition, which is only fixed up to global phase.
func (m Matrix) EqualUpToPhase(other Matrix, tol float64) bool {
	if m.Rows() != other.Rows() || m.Cols() != other.Cols() {
		return false
	}
	var phase complex128
	for i := range m {
		for j := range m[i] {
			if cmplx.Abs(other[i][j]) > tol {
				phase = m[i][j] / other[i][j]
				if math.Abs(cmplx.Abs(phase)-1) > tol {
					return false
				}
				return m.Equal(other.Scale(phase), tol)
			}
		}
	}
	// other is (numerically) zero; m must be too.
	return m.Equal(other, tol)
}

// IsUnitary reports whether m * m† is the identity within tol.
func (m Matrix) IsUnitary(tol float64) bool {
	if !m.IsSquare() {
		return false
	}
	return m.Mul(m.Dagger()).Equal(Eye(m.Rows()), tol)
}

// IsHermitian reports whether m equals its own conjugate transpose
// within tol.
func (m Matrix) IsHermitian(tol float64) bool {
	if !m.IsSquare() {
		return false
	}
	return m.Equal(m.Dagger(), tol)
}

// Trace returns the sum of the diagonal elements.
func (m Matrix) Trace() complex128 {
	var t complex128
	for _, v := range m.Diagonal() {
		t += v
	}
	return t
}
