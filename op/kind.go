package op

import (
	"sort"
	"sync"

	"github.com/cockroachdb/errors"

	"github.com/qbitlabs/circuitkit/linalg"
)

// AnyWires marks a kind that accepts a variable number of wires. Such
// kinds receive the actual wire count when asked for their matrix.
const AnyWires = -1

// Kind describes a gate family: its name, arities and its matrix rule.
// A Kind holds no per-instance state; parameters and wires live on the
// Operation value.
type Kind interface {
	// Name returns the registry name, e.g. "RX" or "Toffoli".
	Name() string

	// NumParams returns the required parameter count.
	NumParams() int

	// NumWires returns the required wire count, or AnyWires.
	NumWires() int

	// Matrix returns the canonical (non-inverted) matrix for the given
	// parameters, acting on numWires wires.
	Matrix(params []Param, numWires int) (linalg.Matrix, error)
}

// Eigvaler is implemented by kinds with a closed-form spectrum. The
// returned eigenvalues follow the same ordering convention as the
// diagonal of the kind's matrix in the diagonalizing basis.
type Eigvaler interface {
	Eigvals(params []Param, numWires int) ([]complex128, error)
}

// Decomposer is implemented by kinds that expand into more elementary
// operations. The returned operations are plain values; nothing is
// recorded.
type Decomposer interface {
	Decompose(params []Param, wires []int) ([]*Operation, error)
}

// ParamAdjointer is implemented by kinds whose adjoint is an exact
// involution on parameters, such as angle negation for rotations.
// Applying InverseParams twice must reproduce the input bit for bit.
type ParamAdjointer interface {
	InverseParams(params []Param) []Param
}

// CustomAdjointer is implemented by kinds whose adjoint has a
// parameter rule that is not an exact involution. It is consulted by
// Operation.Adjoint only; inversion of recorded sequences falls back
// to the inverted flag for these kinds.
type CustomAdjointer interface {
	AdjointParams(params []Param) []Param
}

// SelfAdjoint marks kinds equal to their own adjoint.
type SelfAdjoint interface {
	SelfAdjoint()
}

// NonAdjointable marks kinds with no valid adjoint, such as state
// preparations.
type NonAdjointable interface {
	NonAdjointable()
}

// Generated is implemented by parametrized kinds of the form
// exp(i a θ G). Generator returns the Hermitian G and the prefactor a.
type Generated interface {
	Generator(params []Param, numWires int) (linalg.Matrix, float64, error)
}

// Validator is implemented by kinds with construction constraints
// beyond the arity checks, e.g. unitarity of a supplied matrix. It
// runs after the generic checks and before the Operation is built.
type Validator interface {
	Validate(params []Param, wires []int) error
}

var (
	registryMu sync.RWMutex
	registry   = map[string]Kind{}
)

// Register adds a kind under its name. Registering a duplicate name
// panics; the registry is populated from init functions and a clash is
// a programming error.
func Register(k Kind) {
	registryMu.Lock()
	defer registryMu.Unlock()
	name := k.Name()
	if _, ok := registry[name]; ok {
		panic(errors.Newf("op: kind %q registered twice", name))
	}
	registry[name] = k
}

// Lookup returns the kind registered under name.
func Lookup(name string) (Kind, bool) {
	registryMu.RLock()
	defer registryMu.RUnlock()
	k, ok := registry[name]
	return k, ok
}

// Kinds returns the sorted names of all registered kinds.
func Kinds() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
