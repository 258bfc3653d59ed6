package linalg

import (
	"math"
	"strings"

	"github.com/cockroachdb/errors"
)

// InvSqrt2 is 1/sqrt(2), the Hadamard normalization.
const InvSqrt2 = 1 / math.Sqrt2

// PauliI returns the 2x2 identity.
func PauliI() Matrix { return Matrix{{1, 0}, {0, 1}} }

// PauliX returns the Pauli X matrix.
func PauliX() Matrix { return Matrix{{0, 1}, {1, 0}} }

// PauliY returns the Pauli Y matrix.
func PauliY() Matrix { return Matrix{{0, -1i}, {1i, 0}} }

// PauliZ returns the Pauli Z matrix.
func PauliZ() Matrix { return Matrix{{1, 0}, {0, -1}} }

// HadamardMatrix returns the Hadamard matrix.
func HadamardMatrix() Matrix {
	return Matrix{{InvSqrt2, InvSqrt2}, {InvSqrt2, -InvSqrt2}}
}

// PauliAlphabet is the set of letters allowed in a Pauli word.
const PauliAlphabet = "IXYZ"

var pauliEigsCache = map[int][]float64{}

// PauliEigs returns the eigenvalues of an n-fold tensor product of Pauli
// operators, i.e. the diagonal of Z⊗...⊗Z. Results are memoized; the
// cache can be cleared with ResetPauliEigsCache.
func PauliEigs(n int) []float64 {
	if cached, ok := pauliEigsCache[n]; ok {
		return append([]float64(nil), cached...)
	}
	var eigs []float64
	if n == 1 {
		eigs = []float64{1, -1}
	} else {
		inner := PauliEigs(n - 1)
		eigs = make([]float64, 0, 2*len(inner))
		eigs = append(eigs, inner...)
		for _, e := range inner {
			eigs = append(eigs, -e)
		}
	}
	pauliEigsCache[n] = eigs
	return append([]float64(nil), eigs...)
}

// ResetPauliEigsCache clears the PauliEigs memo. Exposed so tests can
// exercise cold-cache behavior deterministically.
func ResetPauliEigsCache() {
	pauliEigsCache = map[int][]float64{}
}

// CheckPauliWord reports an error if word contains letters outside the
// I/X/Y/Z alphabet.
func CheckPauliWord(word string) error {
	for _, r := range word {
		if !strings.ContainsRune(PauliAlphabet, r) {
			return errors.Newf("pauli word %q contains characters that are not allowed; allowed characters are I, X, Y and Z", word)
		}
	}
	return nil
}

// PauliWordMatrix returns the tensor-product matrix of an I/X/Y/Z word.
func PauliWordMatrix(word string) (Matrix, error) {
	if err := CheckPauliWord(word); err != nil {
		return nil, err
	}
	if len(word) == 0 {
		return nil, errors.New("pauli word must not be empty")
	}
	m := pauliLetter(word[0])
	for i := 1; i < len(word); i++ {
		m = m.Kron(pauliLetter(word[i]))
	}
	return m, nil
}

func pauliLetter(c byte) Matrix {
	switch c {
	case 'X':
		return PauliX()
	case 'Y':
		return PauliY()
	case 'Z':
		return PauliZ()
	default:
		return PauliI()
	}
}

// DecomposeHamiltonian expresses a Hermitian matrix as a real linear
// combination of Pauli words: H = sum_i coeffs[i] * P(words[i]). Terms
// with a vanishing coefficient are omitted.
func DecomposeHamiltonian(h Matrix) (coeffs []float64, words []string, err error) {
	n := 0
	for d := h.Rows(); d > 1; d >>= 1 {
		n++
	}
	if !h.IsSquare() || h.Rows() != 1<<n {
		return nil, nil, errors.Newf("the Hamiltonian should have shape (2^n, 2^n) for some n, got %dx%d",
			h.Rows(), h.Cols())
	}
	if !h.IsHermitian(DefaultTol) {
		return nil, nil, errors.New("the Hamiltonian is not Hermitian")
	}

	dim := float64(h.Rows())
	for _, word := range pauliWords(n) {
		p, werr := PauliWordMatrix(word)
		if werr != nil {
			return nil, nil, werr
		}
		c := real(p.Mul(h).Trace()) / dim
		if math.Abs(c) < DefaultTol {
			continue
		}
		coeffs = append(coeffs, c)
		words = append(words, word)
	}
	return coeffs, words, nil
}

// pauliWords enumerates all length-n I/X/Y/Z words in lexicographic
// alphabet order.
func pauliWords(n int) []string {
	words := []string{""}
	for i := 0; i < n; i++ {
		next := make([]string, 0, 4*len(words))
		for _, w := range words {
			for _, c := range PauliAlphabet {
				next = append(next, w+string(c))
			}
		}
		words = next
	}
	return words
}
