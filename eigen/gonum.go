package eigen

import (
	"math"
	"math/cmplx"

	"gonum.org/v1/gonum/mat"
)

const (
	// defaultDegeneracyTol scales the spectral span into the gap below which
	// adjacent eigenvalues are treated as one degenerate cluster.
	defaultDegeneracyTol = 1e-8

	// orthTol is the residual norm below which a Gram–Schmidt candidate is
	// considered colinear with the already-accepted vectors and skipped.
	orthTol = 1e-7
)

// Solver is the gonum-backed HermitianSolver. The zero value is not ready;
// use NewSolver.
type Solver struct {
	// DegeneracyTol is the relative gap below which adjacent eigenvalues of
	// the embedding are clustered as degenerate.
	DegeneracyTol float64
}

// NewSolver returns a Solver with the default degeneracy tolerance.
func NewSolver() *Solver {
	return &Solver{DegeneracyTol: defaultDegeneracyTol}
}

// SolveHermitian implements HermitianSolver via the real-symmetric
// embedding of H = A + iB (see the package doc for the construction).
//
// Algorithm:
//  1. Validate shape and uplo; mirror the selected triangle so both halves
//     agree exactly (diagonal forced real).
//  2. Build the 2n×2n symmetric embedding and factorize with mat.EigenSym.
//  3. Walk the ascending 2n eigenvalues in degenerate clusters; each
//     cluster of size 2m yields m eigenvalues of H.
//  4. Map each cluster's real eigenvectors [u; v] to complex candidates
//     u + iv and keep m of them after modified Gram–Schmidt (conjugate-pair
//     partners map to the same complex ray and are discarded by the
//     orthogonality filter).
//
// Complexity: O(n³) time, O(n²) extra memory.
func (s *Solver) SolveHermitian(a []complex128, n int, uplo Uplo) ([]float64, error) {
	if n <= 0 || len(a) != n*n {
		return nil, ErrShape
	}
	if !uplo.Valid() {
		return nil, ErrBadUplo
	}

	// Mirror the selected triangle. A Hermitian diagonal is real; stray
	// imaginary parts there are dropped rather than trusted.
	for i := 0; i < n; i++ {
		a[i*n+i] = complex(real(a[i*n+i]), 0)
		for j := i + 1; j < n; j++ {
			if uplo == Upper {
				a[j*n+i] = cmplx.Conj(a[i*n+j])
			} else {
				a[i*n+j] = cmplx.Conj(a[j*n+i])
			}
		}
	}

	// S = [[A, -B], [B, A]], exactly symmetric after the mirror above.
	m := 2 * n
	data := make([]float64, m*m)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			re, im := real(a[i*n+j]), imag(a[i*n+j])
			data[i*m+j] = re
			data[i*m+n+j] = -im
			data[(n+i)*m+j] = im
			data[(n+i)*m+n+j] = re
		}
	}

	var eig mat.EigenSym
	if ok := eig.Factorize(mat.NewSymDense(m, data), true); !ok {
		return nil, ErrEigenFailed
	}
	vals := eig.Values(nil)
	var vecs mat.Dense
	eig.VectorsTo(&vecs)

	span := math.Abs(vals[m-1] - vals[0])
	if span < 1 {
		span = 1
	}
	gap := s.DegeneracyTol
	if gap <= 0 {
		gap = defaultDegeneracyTol
	}
	gap *= span

	w := make([]float64, n)
	out := 0
	for lo := 0; lo < m; {
		hi := lo + 1
		for hi < m && vals[hi]-vals[hi-1] <= gap {
			hi++
		}
		if (hi-lo)%2 == 1 {
			// A conjugate pair straddles the cluster edge; absorb it.
			if hi == m {
				return nil, ErrEigenFailed
			}
			hi++
		}
		clusterDim := (hi - lo) / 2

		basis := make([][]complex128, 0, clusterDim)
		for c := lo; c < hi && len(basis) < clusterDim; c++ {
			z := make([]complex128, n)
			for r := 0; r < n; r++ {
				z[r] = complex(vecs.At(r, c), vecs.At(n+r, c))
			}
			// Two projection passes: "twice is enough" keeps the basis
			// orthogonal even for marginal candidates.
			for pass := 0; pass < 2; pass++ {
				for _, b := range basis {
					var dot complex128
					for r := range b {
						dot += cmplx.Conj(b[r]) * z[r]
					}
					for r := range z {
						z[r] -= dot * b[r]
					}
				}
			}
			var norm float64
			for r := range z {
				norm += real(z[r])*real(z[r]) + imag(z[r])*imag(z[r])
			}
			norm = math.Sqrt(norm)
			if norm < orthTol {
				continue
			}
			inv := complex(1/norm, 0)
			for r := range z {
				z[r] *= inv
			}
			basis = append(basis, z)
		}
		if len(basis) != clusterDim {
			return nil, ErrEigenFailed
		}

		for k, b := range basis {
			w[out+k] = vals[lo+2*k]
			copy(a[(out+k)*n:(out+k+1)*n], b)
		}
		out += clusterDim
		lo = hi
	}

	return w, nil
}
