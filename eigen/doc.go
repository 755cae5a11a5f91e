// Package eigen defines the Hermitian-eigensolver capability that the
// phonon solver depends on, plus a pure-Go backend built on gonum.
//
// 🚀 The capability:
//
//	SolveHermitian(a, n, uplo) → (ascending eigenvalues, error)
//
//	a is an n×n complex matrix in row-major order; only the triangle
//	selected by uplo is read. On success the eigenvalues come back in
//	ascending order and a is overwritten so that row b (a[b*n : (b+1)*n])
//	holds the orthonormal eigenvector of band b — the layout dense phonon
//	pipelines index into directly.
//
// ⚙️ The gonum backend:
//
//	A complex Hermitian H = A + iB embeds into the real symmetric
//
//	    S = ⎡A  −B⎤
//	        ⎣B   A⎦
//
//	whose spectrum is that of H with every eigenvalue doubled, and whose
//	real eigenvector [u; v] maps to the complex eigenvector u + iv.
//	Solver diagonalizes S with mat.EigenSym, takes one eigenvalue per
//	conjugate pair, and re-orthonormalizes the mapped complex vectors
//	within each degenerate cluster (a modified Gram–Schmidt pass), since
//	the pair partner [−v; u] maps to i·(u + iv) — the same complex ray.
//
// The backend's algorithm is an implementation detail; callers hold only
// the HermitianSolver interface and may substitute any backend honoring
// the same contract.
//
// Errors:
//   - ErrShape       — len(a) ≠ n·n or n ≤ 0.
//   - ErrBadUplo     — an uplo selector other than Upper or Lower.
//   - ErrEigenFailed — the decomposition did not converge.
package eigen
