// Package latdyn is your in-memory toolkit for lattice dynamics — from
// phase factors and dynamical matrices to phonon frequencies on a full
// wave-vector mesh.
//
// 🚀 What is latdyn?
//
//	A modern, thread-aware library that brings together:
//		• Lattice tables: shortest-vector / multiplicity and force-constant
//		  views with bounds-checked indexing
//		• Phase factors: periodic-image-averaged lattice Fourier factors
//		• Dynamical matrices: mass-weighted Fourier assembly at any q,
//		  with the non-analytic (NAC) dipole–dipole correction
//		• Diagonalization: a Hermitian-eigensolver capability backed by gonum
//		• Batch solving: a memoized, data-parallel sweep over mesh grid points
//		• Occupation: Bose–Einstein, Gaussian and inverse-sinh primitives
//
// ✨ Why choose latdyn?
//
//   - Explicit types – no raw offsets; every table is a bounds-checked view
//   - Rock-solid guarantees – single-writer-per-grid-point batch runs,
//     exactly-Hermitian matrices before every diagonalization
//   - Predictable errors – package-prefixed sentinels, matched via errors.Is
//   - Extensible – the eigensolver is an interface; bring your own backend
//
// Under the hood, everything is organized under five subpackages:
//
//	lattice/    — mesh, grid addresses, q-points, shortest vectors, fc2, phase factors
//	dynmat/     — dynamical-matrix assembly + non-analytic correction
//	eigen/      — Hermitian-eigensolver capability + gonum backend
//	phonon/     — single-q solver, done-map memoization, parallel batch sweep
//	occupation/ — scalar thermal-occupation primitives
//
// Quick sketch:
//
//	    grid points ──claim──▶ undone ──fan-out──▶ assemble D(q)
//	                                               Hermitize, eigensolve
//	                                               ω = sign(λ)·√|λ|·factor
//
// Dive into each package's doc.go for contracts, complexity and examples.
//
//	go get github.com/katalvlaran/latdyn
package latdyn
