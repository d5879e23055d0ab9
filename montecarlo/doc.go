// Package montecarlo decides between candidate network states by their energies.
//
// Choose(energies) picks index i with probability ∝ exp(−(E_i − E_min)/T).
// Non-finite energies get zero weight.
//
// A Sampler owns a seeded math/rand source; equal seeds give equal decisions.
// It is not safe for concurrent use.
package montecarlo
