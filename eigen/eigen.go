package eigen

// Uplo selects which triangular half of a Hermitian matrix a solver reads;
// the other half is reconstructed by conjugate symmetry.
type Uplo byte

const (
	// Upper — read entries a[i*n+j] with j ≥ i (row-major upper triangle).
	Upper Uplo = 'U'
	// Lower — read entries a[i*n+j] with j ≤ i (row-major lower triangle).
	Lower Uplo = 'L'
)

// Valid reports whether u is one of the two defined selectors.
func (u Uplo) Valid() bool { return u == Upper || u == Lower }

// HermitianSolver is the eigensolver capability consumed by the phonon
// pipeline. Implementations must:
//
//   - read only the uplo-selected triangle of the row-major n×n matrix a
//     (diagonal imaginary parts are ignored — Hermitian diagonals are real);
//   - return eigenvalues in ascending order;
//   - on success, overwrite a so that a[b*n : (b+1)*n] holds the orthonormal
//     eigenvector of band b;
//   - on failure, return their native status error unchanged (callers
//     propagate it without interpretation); the contents of a are then
//     undefined.
type HermitianSolver interface {
	SolveHermitian(a []complex128, n int, uplo Uplo) ([]float64, error)
}
