package gate

import (
	"math"

	"github.com/qbitlabs/circuitkit/linalg"
	"github.com/qbitlabs/circuitkit/op"
)

func init() {
	op.Register(multiRZKind{})
	op.Register(pauliRotKind{})
}

type multiRZKind struct{}

func (multiRZKind) Name() string   { return "MultiRZ" }
func (multiRZKind) NumParams() int { return 1 }
func (multiRZKind) NumWires() int  { return op.AnyWires }

func multiRZEigvals(theta float64, n int) []complex128 {
	eigs := linalg.PauliEigs(n)
	out := make([]complex128, len(eigs))
	for i, e := range eigs {
		out[i] = expi(-theta / 2 * e)
	}
	return out
}

func (multiRZKind) Matrix(params []op.Param, numWires int) (linalg.Matrix, error) {
	return linalg.Diag(multiRZEigvals(float64(params[0].(op.Angle)), numWires)), nil
}

func (multiRZKind) Eigvals(params []op.Param, numWires int) ([]complex128, error) {
	return multiRZEigvals(float64(params[0].(op.Angle)), numWires), nil
}

func (multiRZKind) InverseParams(params []op.Param) []op.Param { return negated(params) }

func (multiRZKind) Generator(_ []op.Param, numWires int) (linalg.Matrix, float64, error) {
	eigs := linalg.PauliEigs(numWires)
	d := make([]complex128, len(eigs))
	for i, e := range eigs {
		d[i] = complex(e, 0)
	}
	return linalg.Diag(d), -0.5, nil
}

// A CNOT ladder folds the parity of all wires onto the first, where a
// single RZ applies the rotation.
func (multiRZKind) Decompose(params []op.Param, wires []int) ([]*op.Operation, error) {
	theta := float64(params[0].(op.Angle))
	var ops []*op.Operation
	for i := len(wires) - 1; i > 0; i-- {
		cnot, err := CNOT(wires[i], wires[i-1])
		if err != nil {
			return nil, err
		}
		ops = append(ops, cnot)
	}
	ops = append(ops, RZ(theta, wires[0]))
	for i := 0; i < len(wires)-1; i++ {
		cnot, err := CNOT(wires[i+1], wires[i])
		if err != nil {
			return nil, err
		}
		ops = append(ops, cnot)
	}
	return ops, nil
}

// MultiRZ applies exp(-iθ/2 Z⊗…⊗Z) over the given wires.
func MultiRZ(theta float64, wires ...int) (*op.Operation, error) {
	return op.New(multiRZKind{}, angles(theta), wires)
}

type pauliRotKind struct{}

func (pauliRotKind) Name() string   { return "PauliRot" }
func (pauliRotKind) NumParams() int { return 2 }
func (pauliRotKind) NumWires() int  { return op.AnyWires }

func (pauliRotKind) Validate(params []op.Param, wires []int) error {
	word, ok := params[1].(op.Word)
	if !ok {
		return op.NewConstructionError(op.ErrCodeBadPauliWord, "PauliRot",
			"second parameter must be a Pauli word")
	}
	if err := linalg.CheckPauliWord(string(word)); err != nil {
		return op.NewConstructionError(op.ErrCodeBadPauliWord, "PauliRot", "%v", err)
	}
	if len(word) != len(wires) {
		return op.NewConstructionError(op.ErrCodeBadPauliWord, "PauliRot",
			"the given Pauli word has length %d, length %d was expected for wires %v",
			len(word), len(wires), wires)
	}
	return nil
}

// conjugationMatrix rotates a single wire into the Z basis for the
// given Pauli letter.
func conjugationMatrix(letter byte) linalg.Matrix {
	switch letter {
	case 'X':
		return linalg.HadamardMatrix()
	case 'Y':
		m, _ := rxKind{}.Matrix(angles(math.Pi/2), 1)
		return m
	default:
		return linalg.Eye(2)
	}
}

func (pauliRotKind) Matrix(params []op.Param, numWires int) (linalg.Matrix, error) {
	theta := float64(params[0].(op.Angle))
	word := string(params[1].(op.Word))

	if word == identityWord(len(word)) {
		return linalg.Eye(1 << len(word)).Scale(expi(-theta / 2)), nil
	}

	var activePositions []int
	conj := linalg.Matrix{{1}}
	for i := 0; i < len(word); i++ {
		if word[i] == 'I' {
			continue
		}
		activePositions = append(activePositions, i)
		conj = conj.Kron(conjugationMatrix(word[i]))
	}

	core := linalg.Diag(multiRZEigvals(theta, len(activePositions)))
	active := conj.Dagger().Mul(core).Mul(conj)
	return linalg.Expand(active, activePositions, linalg.Register(numWires))
}

func (pauliRotKind) Eigvals(params []op.Param, numWires int) ([]complex128, error) {
	theta := float64(params[0].(op.Angle))
	word := string(params[1].(op.Word))
	if word == identityWord(len(word)) {
		out := make([]complex128, 1<<len(word))
		p := expi(-theta / 2)
		for i := range out {
			out[i] = p
		}
		return out, nil
	}
	return multiRZEigvals(theta, numWires), nil
}

func (pauliRotKind) InverseParams(params []op.Param) []op.Param {
	return []op.Param{-params[0].(op.Angle), params[1]}
}

func (pauliRotKind) Generator(params []op.Param, numWires int) (linalg.Matrix, float64, error) {
	word := string(params[1].(op.Word))
	if word == identityWord(len(word)) {
		return linalg.Eye(1 << len(word)), -0.5, nil
	}

	var activePositions []int
	conj := linalg.Matrix{{1}}
	for i := 0; i < len(word); i++ {
		if word[i] == 'I' {
			continue
		}
		activePositions = append(activePositions, i)
		conj = conj.Kron(conjugationMatrix(word[i]))
	}

	eigs := linalg.PauliEigs(len(activePositions))
	d := make([]complex128, len(eigs))
	for i, e := range eigs {
		d[i] = complex(e, 0)
	}
	core := conj.Dagger().Mul(linalg.Diag(d)).Mul(conj)
	g, err := linalg.Expand(core, activePositions, linalg.Register(numWires))
	if err != nil {
		return nil, 0, err
	}
	return g, -0.5, nil
}

func (pauliRotKind) Decompose(params []op.Param, wires []int) ([]*op.Operation, error) {
	theta := float64(params[0].(op.Angle))
	word := string(params[1].(op.Word))
	if word == identityWord(len(word)) {
		return nil, nil
	}

	var activeWires []int
	var pre, post []*op.Operation
	for i, w := range wires {
		switch word[i] {
		case 'I':
			continue
		case 'X':
			pre = append(pre, Hadamard(w))
			post = append(post, Hadamard(w))
		case 'Y':
			pre = append(pre, RX(math.Pi/2, w))
			post = append(post, RX(-math.Pi/2, w))
		}
		activeWires = append(activeWires, w)
	}

	core, err := MultiRZ(theta, activeWires...)
	if err != nil {
		return nil, err
	}
	ops := append([]*op.Operation{}, pre...)
	ops = append(ops, core)
	return append(ops, post...), nil
}

func identityWord(n int) string {
	s := make([]byte, n)
	for i := range s {
		s[i] = 'I'
	}
	return string(s)
}

// PauliRot applies exp(-iθ/2 P) for the Pauli word P over the given
// wires.
func PauliRot(theta float64, word string, wires ...int) (*op.Operation, error) {
	return op.New(pauliRotKind{}, []op.Param{op.Angle(theta), op.Word(word)}, wires)
}
