package phonon

import (
	"math"

	"github.com/katalvlaran/latdyn/dynmat"
	"github.com/katalvlaran/latdyn/eigen"
	"github.com/katalvlaran/latdyn/lattice"
)

// SolveAtQ — phonon frequencies and eigenvectors at a single wave-vector.
//
// Algorithm:
//  1. Allocate and zero the (re, im) scratch planes of D(q).
//  2. If the model carries NAC parameters, build the dipole–dipole
//     correction (skipped at the undirected zone center; qDir, when
//     non-nil, replaces q in the correction's direction and normalization).
//  3. Assemble the un-symmetrized dynamical matrix.
//  4. Hermitize exactly: m[i,j] = ((re[i,j]+re[j,i])/2, (im[i,j]−im[j,i])/2).
//     The raw planes differ from Hermitian by floating-point summation
//     order, and a generic eigensolver fed the raw matrix would return
//     complex eigenvalues.
//  5. Diagonalize through the HermitianSolver capability with the requested
//     triangular convention.
//  6. Convert every eigenvalue λ to the signed frequency
//     sign(λ)·√|λ|·UnitConversion. Soft/unstable modes are negative
//     frequencies by convention, never errors.
//
// On success freqs holds Bands() ascending-eigenvalue frequencies and vecs
// holds the eigenvector of band b in vecs[b*Bands() : (b+1)*Bands()].
// A solver failure is returned unchanged; the buffers are then undefined.
//
// Errors:
//   - ErrNilModel / ErrShape — invalid model or buffer sizes.
//   - dynmat.ErrSingularDielectric — degenerate NAC normalization.
//   - the eigensolver's native status (e.g. eigen.ErrEigenFailed).
func SolveAtQ(
	m *Model,
	q lattice.Vec3,
	qDir *lattice.Vec3,
	solver eigen.HermitianSolver,
	uplo eigen.Uplo,
	freqs []float64,
	vecs []complex128,
) error {
	if err := m.Validate(); err != nil {
		return err
	}
	n := m.Bands()
	if len(freqs) != n || len(vecs) != n*n {
		return ErrShape
	}
	if !uplo.Valid() {
		return eigen.ErrBadUplo
	}

	re := make([]float64, n*n)
	im := make([]float64, n*n)

	var chargeSum []float64
	if m.NAC != nil {
		var err error
		chargeSum, err = dynmat.Correction(m.NAC, q, qDir, m.NumSatom())
		if err != nil {
			return err
		}
	}

	if err := dynmat.Assemble(re, im, q, m.ForceConstants, m.ShortestVectors,
		m.Masses, m.PrimitiveToSuper, m.SuperToPrimitive, chargeSum); err != nil {
		return err
	}

	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			vecs[i*n+j] = complex(
				(re[i*n+j]+re[j*n+i])/2,
				(im[i*n+j]-im[j*n+i])/2,
			)
		}
	}

	w, err := solver.SolveHermitian(vecs, n, uplo)
	if err != nil {
		return err
	}

	for i, ev := range w {
		freq := math.Sqrt(math.Abs(ev)) * m.UnitConversion
		if ev < 0 {
			freq = -freq
		}
		freqs[i] = freq
	}

	return nil
}
