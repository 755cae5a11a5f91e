// Package phonon turns a crystal's force constants into phonon frequencies
// and eigenvectors, one wave-vector at a time or across a whole mesh.
//
// 🚀 What lives here?
//
//   - Model — the immutable physical inputs: force constants, shortest
//     vectors, masses, site maps, optional non-analytic (NAC) parameters and
//     the eigenvalue→frequency unit conversion.
//   - SolveAtQ — the single-q pipeline: assemble D(q), Hermitize it exactly,
//     diagonalize, and convert eigenvalues to signed frequencies
//     ω = sign(λ)·√|λ|·factor (unstable modes come back negative, never as
//     errors).
//   - DoneMap — write-once-true memoization of solved grid points; Claim
//     partitions a request into {already-done, newly-claimed} strictly
//     before any parallel work begins.
//   - Solve — the batch sweep: claim the undone grid points, fan out over a
//     bounded worker pool, and write each point's frequencies and
//     eigenvectors into the caller-owned Output at that point's offset.
//
// ⚙️ Concurrency model:
//
//	The done map is mutated only in the sequential claim step; workers share
//	read-only inputs and write disjoint output slices (offset = grid point),
//	so the parallel region needs no locks. A failing grid point never
//	cancels its siblings; every failure is wrapped with its grid point index
//	and the batch returns them combined via errors.Join.
//
// Zone-center policy: grid point 0 is the canonical zone center. It is the
// only grid point that receives the model's QDirection; every other grid
// point solves with the direction forced absent. See Solve for details.
//
// Errors:
//   - ErrNilModel, ErrShape, ErrBadMesh, ErrGridPointRange — validation.
//   - eigen.ErrEigenFailed (wrapped) — a grid point's diagonalization failed;
//     that point's output slot is undefined, all others are valid.
package phonon
