// Package lattice provides the geometric data model for lattice dynamics:
// wave-vector meshes, grid addresses, shortest-vector / multiplicity tables,
// second-order force constants, and the periodic-image-averaged phase factor.
//
// 🚀 What lives here?
//
//   - Mesh / Address / QPoint — a regular wave-vector mesh and the mapping
//     from an integer grid address to a fractional q-point (addr/mesh).
//   - ShortestVectors — for every (supercell atom, primitive atom) pair, the
//     minimum-image lattice vectors connecting them and their multiplicity.
//   - ForceConstants — the (satom, satom, 3, 3) second-order force-constant
//     tensor as a flat, bounds-checked view.
//   - PhaseFactor — the multiplicity-averaged lattice Fourier factor
//     (1/M)·Σ exp(2πi q·r) over the minimum images r.
//
// ⚙️ Conventions:
//
//	q-points are fractional coordinates of the primitive reciprocal basis;
//	shortest vectors are fractional coordinates of the primitive direct
//	basis, so the phase is simply 2π·(q·r). Tables are immutable after
//	construction from the caller's point of view: build once, share freely
//	across goroutines.
//
// Errors:
//   - ErrOutOfRange — an index outside a table's declared dimensions.
//   - ErrBadShape   — non-positive dimensions at construction.
//   - ErrBadMesh    — a mesh with a non-positive component.
package lattice
