package linalg

import (
	"github.com/cockroachdb/errors"
)

// Register lists the wire labels 0..n-1, the common case for the
// expandedWires argument of Expand and ExpandVector.
func Register(n int) []int {
	wires := make([]int, n)
	for i := range wires {
		wires[i] = i
	}
	return wires
}

// wirePositions maps each original wire to its position in the expanded
// register. The first wire in a register is the most significant bit,
// matching the Kron convention used throughout the catalogue.
func wirePositions(originalWires, expandedWires []int) ([]int, error) {
	index := make(map[int]int, len(expandedWires))
	for pos, w := range expandedWires {
		index[w] = pos
	}
	seen := make(map[int]bool, len(originalWires))
	positions := make([]int, len(originalWires))
	for i, w := range originalWires {
		pos, ok := index[w]
		if !ok || seen[w] {
			return nil, errors.Newf("invalid target subsystems provided in original wires %v for register %v",
				originalWires, expandedWires)
		}
		seen[w] = true
		positions[i] = pos
	}
	return positions, nil
}

// subIndex extracts from the full basis-state index i the sub-register
// index formed by the given bit positions, in their given order.
func subIndex(i, numWires int, positions []int) int {
	sub := 0
	for _, pos := range positions {
		sub = sub<<1 | (i>>(numWires-1-pos))&1
	}
	return sub
}

// Expand embeds an operator acting on originalWires into the full
// register described by expandedWires, applying the identity everywhere
// else. The original wires may appear in any order and need not be
// adjacent in the register.
func Expand(u Matrix, originalWires, expandedWires []int) (Matrix, error) {
	dim := 1 << len(originalWires)
	if u.Rows() != dim || u.Cols() != dim {
		return nil, errors.Newf("matrix parameter must be of size %dx%d for %d original wires, got %dx%d",
			dim, dim, len(originalWires), u.Rows(), u.Cols())
	}
	positions, err := wirePositions(originalWires, expandedWires)
	if err != nil {
		return nil, err
	}

	n := len(expandedWires)
	full := Zeros(1<<n, 1<<n)
	restMask := (1<<n - 1)
	for _, pos := range positions {
		restMask &^= 1 << (n - 1 - pos)
	}
	for i := 0; i < 1<<n; i++ {
		for j := 0; j < 1<<n; j++ {
			// Identity on every wire outside the target subset.
			if i&restMask != j&restMask {
				continue
			}
			full[i][j] = u[subIndex(i, n, positions)][subIndex(j, n, positions)]
		}
	}
	return full, nil
}

// ExpandVector embeds a vector defined on originalWires into the full
// register, filling the remaining wires with ones. This is the expansion
// rule for eigenvalue vectors of diagonal operators.
func ExpandVector(v []complex128, originalWires, expandedWires []int) ([]complex128, error) {
	dim := 1 << len(originalWires)
	if len(v) != dim {
		return nil, errors.Newf("vector parameter must be of length %d for %d original wires, got %d",
			dim, len(originalWires), len(v))
	}
	positions, err := wirePositions(originalWires, expandedWires)
	if err != nil {
		return nil, err
	}

	n := len(expandedWires)
	full := make([]complex128, 1<<n)
	for i := range full {
		full[i] = v[subIndex(i, n, positions)]
	}
	return full, nil
}
