package gate

import (
	"math"

	"github.com/qbitlabs/circuitkit/linalg"
	"github.com/qbitlabs/circuitkit/op"
)

func init() {
	op.Register(qftKind{})
}

var qftCache = map[int]linalg.Matrix{}

func qftMatrix(numWires int) linalg.Matrix {
	if cached, ok := qftCache[numWires]; ok {
		return cached.Clone()
	}
	dim := 1 << numWires
	norm := complex(1/math.Sqrt(float64(dim)), 0)
	m := linalg.Zeros(dim, dim)
	for row := 0; row < dim; row++ {
		for col := 0; col < dim; col++ {
			m[row][col] = norm * expi(2*math.Pi*float64(row*col)/float64(dim))
		}
	}
	qftCache[numWires] = m
	return m.Clone()
}

// ResetQFTCache clears the memoized transform matrices. Tests use this
// to exercise cold-cache behavior deterministically.
func ResetQFTCache() {
	qftCache = map[int]linalg.Matrix{}
}

type qftKind struct{}

func (qftKind) Name() string   { return "QFT" }
func (qftKind) NumParams() int { return 0 }
func (qftKind) NumWires() int  { return op.AnyWires }

func (qftKind) Matrix(_ []op.Param, numWires int) (linalg.Matrix, error) {
	return qftMatrix(numWires), nil
}

// Hadamards interleaved with controlled phase shifts of halving angle,
// then swaps to undo the bit reversal.
func (qftKind) Decompose(_ []op.Param, wires []int) ([]*op.Operation, error) {
	numWires := len(wires)
	shifts := make([]float64, 0, numWires-1)
	for i := 2; i <= numWires; i++ {
		shifts = append(shifts, 2*math.Pi*math.Pow(2, -float64(i)))
	}

	var ops []*op.Operation
	for i, wire := range wires {
		ops = append(ops, Hadamard(wire))
		for j, controlWire := range wires[i+1:] {
			shift, err := ControlledPhaseShift(shifts[j], controlWire, wire)
			if err != nil {
				return nil, err
			}
			ops = append(ops, shift)
		}
	}

	half := numWires / 2
	for i := 0; i < half; i++ {
		swap, err := SWAP(wires[i], wires[numWires-1-i])
		if err != nil {
			return nil, err
		}
		ops = append(ops, swap)
	}
	return ops, nil
}

// QFT applies the quantum Fourier transform over the given wires.
func QFT(wires ...int) (*op.Operation, error) {
	return op.New(qftKind{}, nil, wires)
}
