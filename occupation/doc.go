// Package occupation provides the scalar thermal primitives of lattice
// dynamics: Bose–Einstein occupation, a normalized Gaussian weight, the
// inverse-hyperbolic-sine occupation, and the per-mode thermal displacement
// amplitude.
//
// Frequencies are in THz and temperatures in Kelvin; the exponent uses
// THzToEvParKB = THz→eV conversion divided by the Boltzmann constant, so
// BoseEinstein(x, t) = 1 / (exp(THzToEvParKB·x/t) − 1).
//
// All functions are pure: deterministic, allocation-free (except
// ThermalSigma's result slice), and safe for concurrent use.
package occupation
