package linalg

import (
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"
	"math"
	"math/cmplx"
	"sort"

	"github.com/cockroachdb/errors"
)

// hashDomainEigen versions the cache key format so a future change to
// the encoding cannot collide with stale entries.
const hashDomainEigen = "circuitkit/eigen/v1"

// Hash returns a canonical content hash of the matrix: dimensions plus
// every element in row-major order, each float64 encoded big-endian.
func (m Matrix) Hash() string {
	h := sha256.New()
	h.Write([]byte(hashDomainEigen))
	h.Write([]byte{0x00})
	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], uint64(m.Rows()))
	h.Write(buf[:])
	binary.BigEndian.PutUint64(buf[:], uint64(m.Cols()))
	h.Write(buf[:])
	for _, row := range m {
		for _, v := range row {
			binary.BigEndian.PutUint64(buf[:], math.Float64bits(real(v)))
			h.Write(buf[:])
			binary.BigEndian.PutUint64(buf[:], math.Float64bits(imag(v)))
			h.Write(buf[:])
		}
	}
	return hex.EncodeToString(h.Sum(nil))
}

type eigenResult struct {
	values  []float64
	vectors Matrix
}

var eigenCache = map[string]eigenResult{}

// ResetEigenCache clears the eigendecomposition cache. Tests use this to
// make cache behavior deterministic.
func ResetEigenCache() {
	eigenCache = map[string]eigenResult{}
}

// EigHermitian returns the eigenvalues (ascending) and a matrix whose
// columns are the corresponding orthonormal eigenvectors of a Hermitian
// matrix. Results are cached keyed by the canonical content hash of the
// input; identical matrices never pay for a second decomposition.
func EigHermitian(m Matrix) ([]float64, Matrix, error) {
	if !m.IsHermitian(DefaultTol) {
		return nil, nil, errors.New("matrix must be Hermitian")
	}

	key := m.Hash()
	if res, ok := eigenCache[key]; ok {
		return append([]float64(nil), res.values...), res.vectors.Clone(), nil
	}

	values, vectors := jacobiHermitian(m)
	eigenCache[key] = eigenResult{values: values, vectors: vectors}
	return append([]float64(nil), values...), vectors.Clone(), nil
}

// jacobiHermitian diagonalizes a Hermitian matrix with cyclic complex
// Jacobi rotations. Convergence is quadratic once the off-diagonal mass
// is small; the sweep cap is a safety net, not an expected exit.
func jacobiHermitian(in Matrix) ([]float64, Matrix) {
	n := in.Rows()
	a := in.Clone()
	v := Eye(n)

	const maxSweeps = 100
	const tol = 1e-14

	for sweep := 0; sweep < maxSweeps; sweep++ {
		off := 0.0
		for p := 0; p < n; p++ {
			for q := p + 1; q < n; q++ {
				off += cmplx.Abs(a[p][q]) * cmplx.Abs(a[p][q])
			}
		}
		if off < tol {
			break
		}

		for p := 0; p < n; p++ {
			for q := p + 1; q < n; q++ {
				z := a[p][q]
				mag := cmplx.Abs(z)
				if mag < tol/float64(n*n) {
					continue
				}
				phase := z / complex(mag, 0)

				app := real(a[p][p])
				aqq := real(a[q][q])
				tau := (aqq - app) / (2 * mag)
				var t float64
				if tau >= 0 {
					t = 1 / (tau + math.Sqrt(1+tau*tau))
				} else {
					t = -1 / (-tau + math.Sqrt(1+tau*tau))
				}
				c := 1 / math.Sqrt(1+t*t)
				s := t * c

				cz := complex(c, 0)
				spz := complex(s, 0) * phase

				// Apply the rotation from both sides: a = J† a J.
				for k := 0; k < n; k++ {
					akp := a[k][p]
					akq := a[k][q]
					a[k][p] = cz*akp - cmplx.Conj(spz)*akq
					a[k][q] = spz*akp + cz*akq
				}
				for k := 0; k < n; k++ {
					apk := a[p][k]
					aqk := a[q][k]
					a[p][k] = cz*apk - spz*aqk
					a[q][k] = cmplx.Conj(spz)*apk + cz*aqk
				}
				for k := 0; k < n; k++ {
					vkp := v[k][p]
					vkq := v[k][q]
					v[k][p] = cz*vkp - cmplx.Conj(spz)*vkq
					v[k][q] = spz*vkp + cz*vkq
				}
			}
		}
	}

	values := make([]float64, n)
	for i := 0; i < n; i++ {
		values[i] = real(a[i][i])
	}

	// Sort eigenpairs ascending by eigenvalue.
	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(i, j int) bool {
		return values[order[i]] < values[order[j]]
	})
	sortedValues := make([]float64, n)
	sortedVectors := Zeros(n, n)
	for newCol, oldCol := range order {
		sortedValues[newCol] = values[oldCol]
		for row := 0; row < n; row++ {
			sortedVectors[row][newCol] = v[row][oldCol]
		}
	}
	return sortedValues, sortedVectors
}
