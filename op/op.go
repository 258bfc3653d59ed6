package op

import (
	"fmt"
	"strings"

	"github.com/qbitlabs/circuitkit/linalg"
)

// Operation is an immutable application of a kind to concrete
// parameters and wires. Constructing one performs no recording; see the
// record package for queueing.
type Operation struct {
	kind     Kind
	params   []Param
	wires    []int
	inverted bool
}

// New validates parameters and wires against the kind's declared
// arities and builds an Operation. Kind-specific constraints run via
// the Validator interface when the kind implements it.
func New(kind Kind, params []Param, wires []int) (*Operation, error) {
	if got, want := len(params), kind.NumParams(); got != want {
		return nil, NewConstructionError(ErrCodeParamArity, kind.Name(),
			"expected %d parameters, got %d", want, got)
	}
	if want := kind.NumWires(); want == AnyWires {
		if len(wires) == 0 {
			return nil, NewConstructionError(ErrCodeWireArity, kind.Name(),
				"expected at least 1 wire, got 0")
		}
	} else if got := len(wires); got != want {
		return nil, NewConstructionError(ErrCodeWireArity, kind.Name(),
			"expected %d wires, got %d", want, got)
	}
	seen := make(map[int]struct{}, len(wires))
	for _, w := range wires {
		if _, dup := seen[w]; dup {
			return nil, NewConstructionError(ErrCodeDuplicateWires, kind.Name(),
				"wire %d appears more than once", w)
		}
		seen[w] = struct{}{}
	}
	if v, ok := kind.(Validator); ok {
		if err := v.Validate(params, wires); err != nil {
			return nil, err
		}
	}
	return &Operation{
		kind:   kind,
		params: append([]Param(nil), params...),
		wires:  append([]int(nil), wires...),
	}, nil
}

// Kind returns the operation's kind.
func (o *Operation) Kind() Kind { return o.kind }

// Name returns the kind's registry name.
func (o *Operation) Name() string { return o.kind.Name() }

// Params returns a copy of the parameters.
func (o *Operation) Params() []Param { return append([]Param(nil), o.params...) }

// Wires returns a copy of the wire list.
func (o *Operation) Wires() []int { return append([]int(nil), o.wires...) }

// NumWires returns the number of wires the operation acts on.
func (o *Operation) NumWires() int { return len(o.wires) }

// Inverted reports whether this value was produced by an inversion.
func (o *Operation) Inverted() bool { return o.inverted }

func (o *Operation) clone() *Operation {
	return &Operation{
		kind:     o.kind,
		params:   append([]Param(nil), o.params...),
		wires:    append([]int(nil), o.wires...),
		inverted: o.inverted,
	}
}

// Matrix returns the operation's matrix on its own wires. For inverted
// operations whose kind has no exact parameter involution, the
// conjugate transpose of the canonical matrix is returned; kinds with
// a parameter involution already encode the adjoint in their
// parameters, and the flag only records provenance.
func (o *Operation) Matrix() (linalg.Matrix, error) {
	m, err := o.kind.Matrix(o.params, len(o.wires))
	if err != nil {
		return nil, err
	}
	if o.inverted {
		if _, rule := o.kind.(ParamAdjointer); !rule {
			m = m.Dagger()
		}
	}
	return m, nil
}

// Eigvals returns the operation's eigenvalues when the kind has a
// closed-form spectrum. Inversion conjugates the spectrum under the
// same flag rule as Matrix.
func (o *Operation) Eigvals() ([]complex128, error) {
	ev, ok := o.kind.(Eigvaler)
	if !ok {
		return nil, &UnsupportedError{Kind: o.kind.Name(), Capability: "eigenvalues"}
	}
	vals, err := ev.Eigvals(o.params, len(o.wires))
	if err != nil {
		return nil, err
	}
	if o.inverted {
		if _, rule := o.kind.(ParamAdjointer); !rule {
			out := make([]complex128, len(vals))
			for i, v := range vals {
				out[i] = complex(real(v), -imag(v))
			}
			return out, nil
		}
	}
	return vals, nil
}

// Decompose expands the operation into more elementary operations when
// the kind provides a decomposition. Kinds with a parameter involution
// already store the adjoint in their parameters, so their decomposition
// is returned as is; for other inverted operations the decomposition is
// reversed and each step is inverted.
func (o *Operation) Decompose() ([]*Operation, error) {
	d, ok := o.kind.(Decomposer)
	if !ok {
		return nil, &UnsupportedError{Kind: o.kind.Name(), Capability: "decomposition"}
	}
	ops, err := d.Decompose(o.params, o.wires)
	if err != nil {
		return nil, err
	}
	if !o.inverted {
		return ops, nil
	}
	if _, rule := o.kind.(ParamAdjointer); rule {
		return ops, nil
	}
	out := make([]*Operation, 0, len(ops))
	for i := len(ops) - 1; i >= 0; i-- {
		inv, err := ops[i].Inverse()
		if err != nil {
			return nil, err
		}
		out = append(out, inv)
	}
	return out, nil
}

// Inverse returns the operation's inverse. Kinds with an exact
// parameter involution have it applied, and the inverted flag is
// toggled in every case, so inverting twice reproduces the original
// value exactly. State preparations have no inverse.
func (o *Operation) Inverse() (*Operation, error) {
	if _, ok := o.kind.(NonAdjointable); ok {
		return nil, &NotAdjointableError{Kind: o.kind.Name()}
	}
	params := append([]Param(nil), o.params...)
	if pa, ok := o.kind.(ParamAdjointer); ok {
		params = pa.InverseParams(params)
	}
	return &Operation{
		kind:     o.kind,
		params:   params,
		wires:    append([]int(nil), o.wires...),
		inverted: !o.inverted,
	}, nil
}

// Adjoint returns the Hermitian adjoint. Self-adjoint kinds return an
// unchanged copy, kinds with an adjoint parameter rule get fresh
// parameters with the flag left clear, and everything else follows
// Inverse. State preparations have no adjoint.
func (o *Operation) Adjoint() (*Operation, error) {
	if _, ok := o.kind.(NonAdjointable); ok {
		return nil, &NotAdjointableError{Kind: o.kind.Name()}
	}
	if _, ok := o.kind.(SelfAdjoint); ok {
		return o.clone(), nil
	}
	if o.inverted {
		return o.Inverse()
	}
	if ca, ok := o.kind.(CustomAdjointer); ok {
		return &Operation{
			kind:   o.kind,
			params: ca.AdjointParams(append([]Param(nil), o.params...)),
			wires:  append([]int(nil), o.wires...),
		}, nil
	}
	if pa, ok := o.kind.(ParamAdjointer); ok {
		return &Operation{
			kind:   o.kind,
			params: pa.InverseParams(append([]Param(nil), o.params...)),
			wires:  append([]int(nil), o.wires...),
		}, nil
	}
	return o.Inverse()
}

// Generator returns the Hermitian generator G and prefactor a of a kind
// of the form exp(i a θ G). Inversion negates the prefactor for kinds
// without a parameter involution.
func (o *Operation) Generator() (linalg.Matrix, float64, error) {
	g, ok := o.kind.(Generated)
	if !ok {
		return nil, 0, &UnsupportedError{Kind: o.kind.Name(), Capability: "generator"}
	}
	mat, pref, err := g.Generator(o.params, len(o.wires))
	if err != nil {
		return nil, 0, err
	}
	if o.inverted {
		if _, rule := o.kind.(ParamAdjointer); !rule {
			pref = -pref
		}
	}
	return mat, pref, nil
}

// Equal reports exact value equality: same kind, bit-identical
// parameters, same wires and same inverted flag.
func (o *Operation) Equal(other *Operation) bool {
	if o == nil || other == nil {
		return o == other
	}
	if o.kind.Name() != other.kind.Name() || o.inverted != other.inverted {
		return false
	}
	if !ParamsEqual(o.params, other.params) {
		return false
	}
	if len(o.wires) != len(other.wires) {
		return false
	}
	for i, w := range o.wires {
		if other.wires[i] != w {
			return false
		}
	}
	return true
}

// String renders the operation, e.g. "RX(0.3) @ [0]" or
// "S.inv @ [2]".
func (o *Operation) String() string {
	var b strings.Builder
	b.WriteString(o.kind.Name())
	if len(o.params) > 0 {
		parts := make([]string, len(o.params))
		for i, p := range o.params {
			parts[i] = p.String()
		}
		b.WriteString("(")
		b.WriteString(strings.Join(parts, ", "))
		b.WriteString(")")
	}
	if o.inverted {
		b.WriteString(".inv")
	}
	b.WriteString(" @ [")
	wireParts := make([]string, len(o.wires))
	for i, w := range o.wires {
		wireParts[i] = fmt.Sprintf("%d", w)
	}
	b.WriteString(strings.Join(wireParts, " "))
	b.WriteString("]")
	return b.String()
}
