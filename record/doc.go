// Package record provides explicit recording contexts for circuit
// construction and the inversion engine that reverses recorded
// sub-sequences.
//
// A Context is an ordered, append-only list of operations. Contexts
// nest through a Stack; only the innermost context receives recorded
// operations. Invert reverses a sequence of operations, inverts each
// element, and splices the result back into the context the originals
// were recorded in.
package record
