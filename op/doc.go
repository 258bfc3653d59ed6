// Package op defines the operation value at the heart of circuit
// construction: an immutable record pairing a gate kind with its
// parameters, the wires it acts on, and an inverted flag. It also
// defines the kind interface set the gate catalogue implements, the
// name-keyed kind registry, and the construction/adjoint error
// taxonomy.
//
// Constructing an operation is pure: nothing is recorded anywhere as a
// side effect. Recording is an explicit, separate step provided by the
// record package.
package op
