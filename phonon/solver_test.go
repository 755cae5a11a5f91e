package phonon_test

import (
	"math"
	"math/cmplx"
	"sort"
	"testing"

	"github.com/katalvlaran/latdyn/dynmat"
	"github.com/katalvlaran/latdyn/eigen"
	"github.com/katalvlaran/latdyn/lattice"
	"github.com/katalvlaran/latdyn/phonon"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	eps = 1e-9
	// zeroTol absorbs √|λ| amplification of machine-noise eigenvalues.
	zeroTol = 1e-6
)

func solveAt(t *testing.T, m *phonon.Model, q lattice.Vec3, qDir *lattice.Vec3) []float64 {
	t.Helper()

	n := m.Bands()
	freqs := make([]float64, n)
	vecs := make([]complex128, n*n)
	require.NoError(t, phonon.SolveAtQ(m, q, qDir, eigen.NewSolver(), eigen.Lower, freqs, vecs))

	return freqs
}

// TestSolveAtQ_SignConvention: an eigenvalue of −4 with unit conversion 1
// must yield exactly −2, not NaN — unstable modes are negative frequencies.
func TestSolveAtQ_SignConvention(t *testing.T) {
	m := trivialModel(t, -4, 1, 9)
	freqs := solveAt(t, m, lattice.Vec3{}, nil)

	assert.InDelta(t, -2, freqs[0], eps, "sign(λ)·√|λ| for λ = −4")
	assert.InDelta(t, 1, freqs[1], eps)
	assert.InDelta(t, 3, freqs[2], eps)
	for _, f := range freqs {
		assert.False(t, math.IsNaN(f), "no NaN frequencies")
	}
}

// TestSolveAtQ_UnitConversion scales every frequency linearly.
func TestSolveAtQ_UnitConversion(t *testing.T) {
	m := trivialModel(t, 1, 4, 9)
	m.UnitConversion = 2.5
	freqs := solveAt(t, m, lattice.Vec3{}, nil)

	assert.InDelta(t, 2.5, freqs[0], eps)
	assert.InDelta(t, 5.0, freqs[1], eps)
	assert.InDelta(t, 7.5, freqs[2], eps)
}

// TestSolveAtQ_DiatomicDispersion checks the textbook diatomic chain at the
// zone center and the zone boundary.
func TestSolveAtQ_DiatomicDispersion(t *testing.T) {
	m := diatomicChain(t, 1, 1)

	gamma := solveAt(t, m, lattice.Vec3{}, nil)
	for b := 0; b < 5; b++ {
		assert.InDelta(t, 0, gamma[b], zeroTol, "five zero modes at Γ (x acoustic + free y, z)")
	}
	assert.InDelta(t, math.Sqrt(3), gamma[5], eps, "optic branch √(2k(1/m1+1/m2))")

	boundary := solveAt(t, m, lattice.Vec3{0.5, 0, 0}, nil)
	for b := 0; b < 4; b++ {
		assert.InDelta(t, 0, boundary[b], zeroTol)
	}
	assert.InDelta(t, 1, boundary[4], eps, "√(2k/m2) at the zone boundary")
	assert.InDelta(t, math.Sqrt(2), boundary[5], eps, "√(2k/m1) at the zone boundary")
}

// TestSolveAtQ_TimeReversal: frequencies at q and −q agree as sets even
// when broken inversion symmetry makes D(q) fully complex.
func TestSolveAtQ_TimeReversal(t *testing.T) {
	m := diatomicChain(t, 1, 2)
	q := lattice.Vec3{0.23, 0, 0}

	fq := solveAt(t, m, q, nil)
	fnq := solveAt(t, m, q.Neg(), nil)
	sort.Float64s(fq)
	sort.Float64s(fnq)
	for b := range fq {
		assert.InDelta(t, fq[b], fnq[b], zeroTol, "band %d", b)
	}
}

// TestHermitization: the symmetrized matrix satisfies m[i,j] == conj(m[j,i])
// exactly, even though the raw assembled planes do not.
func TestHermitization(t *testing.T) {
	m := diatomicChain(t, 1, 2)
	n := m.Bands()
	q := lattice.Vec3{0.23, 0, 0}

	re := make([]float64, n*n)
	im := make([]float64, n*n)
	require.NoError(t, dynmat.Assemble(re, im, q, m.ForceConstants, m.ShortestVectors,
		m.Masses, m.PrimitiveToSuper, m.SuperToPrimitive, nil))

	h := make([]complex128, n*n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			h[i*n+j] = complex((re[i*n+j]+re[j*n+i])/2, (im[i*n+j]-im[j*n+i])/2)
		}
	}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			assert.Equal(t, cmplx.Conj(h[j*n+i]), h[i*n+j],
				"exact Hermiticity at (%d,%d)", i, j)
		}
	}
}

// TestSolveAtQ_NACGating: with Born charges present the correction is
// skipped at the undirected zone center and applied when a q-direction
// provides the limiting direction.
func TestSolveAtQ_NACGating(t *testing.T) {
	identity := [3][3]float64{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}
	m := trivialModel(t, 1, 1, 1)
	m.NAC = &dynmat.NAC{
		Born:              [][3][3]float64{identity},
		Dielectric:        identity,
		ReciprocalLattice: identity,
		Factor:            3,
	}

	bare := solveAt(t, m, lattice.Vec3{}, nil)
	for b := 0; b < 3; b++ {
		assert.InDelta(t, 1, bare[b], eps, "undirected zone center skips NAC")
	}

	dir := lattice.Vec3{1, 0, 0}
	directed := solveAt(t, m, lattice.Vec3{}, &dir)
	assert.InDelta(t, 1, directed[0], eps)
	assert.InDelta(t, 1, directed[1], eps)
	assert.InDelta(t, 2, directed[2], eps, "x mode stiffened: √(1+3) = 2")
}

// TestSolveAtQ_Validation covers model and buffer sentinels.
func TestSolveAtQ_Validation(t *testing.T) {
	m := trivialModel(t, 1, 1, 1)

	err := phonon.SolveAtQ(nil, lattice.Vec3{}, nil, eigen.NewSolver(), eigen.Lower,
		make([]float64, 3), make([]complex128, 9))
	assert.ErrorIs(t, err, phonon.ErrNilModel)

	err = phonon.SolveAtQ(m, lattice.Vec3{}, nil, eigen.NewSolver(), eigen.Lower,
		make([]float64, 2), make([]complex128, 9))
	assert.ErrorIs(t, err, phonon.ErrShape, "frequency buffer must hold Bands() entries")

	err = phonon.SolveAtQ(m, lattice.Vec3{}, nil, eigen.NewSolver(), eigen.Uplo('Q'),
		make([]float64, 3), make([]complex128, 9))
	assert.ErrorIs(t, err, eigen.ErrBadUplo)
}
