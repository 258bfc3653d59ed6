package gate

import (
	"github.com/cockroachdb/errors"

	"github.com/qbitlabs/circuitkit/linalg"
	"github.com/qbitlabs/circuitkit/op"
)

func init() {
	op.Register(hermitianKind{})
}

type hermitianKind struct{}

func (hermitianKind) Name() string   { return "Hermitian" }
func (hermitianKind) NumParams() int { return 1 }
func (hermitianKind) NumWires() int  { return op.AnyWires }
func (hermitianKind) SelfAdjoint()   {}

func (hermitianKind) Validate(params []op.Param, wires []int) error {
	h, ok := params[0].(op.Mat)
	if !ok {
		return op.NewConstructionError(op.ErrCodeBadShape, "Hermitian",
			"parameter must be a matrix")
	}
	m := linalg.Matrix(h)
	if !m.IsSquare() {
		return op.NewConstructionError(op.ErrCodeBadShape, "Hermitian",
			"observable must be a square matrix")
	}
	if dim := 1 << len(wires); m.Rows() != dim {
		return op.NewConstructionError(op.ErrCodeBadShape, "Hermitian",
			"observable must be of shape %dx%d to act on %d wires", dim, dim, len(wires))
	}
	if !m.IsHermitian(linalg.DefaultTol) {
		return op.NewConstructionError(op.ErrCodeNotHermitian, "Hermitian",
			"observable must be Hermitian")
	}
	return nil
}

func (hermitianKind) Matrix(params []op.Param, _ int) (linalg.Matrix, error) {
	return linalg.Matrix(params[0].(op.Mat)).Clone(), nil
}

// Real spectrum through the shared eigendecomposition cache.
func (hermitianKind) Eigvals(params []op.Param, _ int) ([]complex128, error) {
	vals, _, err := linalg.EigHermitian(linalg.Matrix(params[0].(op.Mat)))
	if err != nil {
		return nil, err
	}
	out := make([]complex128, len(vals))
	for i, v := range vals {
		out[i] = complex(v, 0)
	}
	return out, nil
}

// Hermitian builds the observable for an arbitrary Hermitian matrix.
func Hermitian(h linalg.Matrix, wires ...int) (*op.Operation, error) {
	return op.New(hermitianKind{}, []op.Param{op.Mat(h)}, wires)
}

// HermitianDiagonalizingGates returns the unitary rotating the
// observable's eigenbasis onto the computational basis, as a single
// QubitUnitary on the observable's wires.
func HermitianDiagonalizingGates(o *op.Operation) ([]*op.Operation, error) {
	if o.Name() != "Hermitian" {
		return nil, errors.Newf("gate: %s is not a Hermitian observable", o.Name())
	}
	h := linalg.Matrix(o.Params()[0].(op.Mat))
	_, vecs, err := linalg.EigHermitian(h)
	if err != nil {
		return nil, err
	}
	u, err := QubitUnitary(vecs.Dagger(), o.Wires()...)
	if err != nil {
		return nil, err
	}
	return []*op.Operation{u}, nil
}
