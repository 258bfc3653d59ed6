// Package gate provides the built-in operation catalogue: fixed gates,
// parametrized rotations, controlled variants, excitation rotations,
// arbitrary and diagonal unitaries, the quantum Fourier transform,
// state preparations and the Hermitian observable.
//
// Every kind registers itself with the op registry at init time. The
// exported constructors build plain operation values; nothing is
// recorded until the value is handed to a recording context.
package gate
