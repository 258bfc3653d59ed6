// Package linalg provides the dense complex-matrix primitives the gate
// catalogue is defined in terms of: matrix algebra over complex128, wire
// expansion of operators into larger registers, Pauli utilities, and a
// Hermitian eigensolver with a content-addressed result cache.
//
// Matrices are small (dimension 2^n for the few wires an operation acts
// on), so all algorithms favour clarity over asymptotics.
package linalg
