package lattice

import "math"

// twoPi is the angular period of the lattice Fourier phase.
const twoPi = 2 * math.Pi

// PhaseFactor — periodic-image-averaged lattice Fourier factor.
//
// Description:
//
//	Computes (1/M) · Σ_r exp(2πi · q·r) over the M minimum-image lattice
//	vectors r connecting supercell atom satom to primitive atom patom.
//	Averaging over tied images is what keeps the dynamical matrix invariant
//	under the arbitrary choice among equally short periodic images.
//
// Contract:
//
//	Deterministic, no side effects. The multiplicity of every pair in svecs
//	must be ≥ 1; that is the table builder's guarantee (SetImages enforces
//	it), not re-checked here.
//
// Errors:
//   - ErrOutOfRange — satom or patom outside the table's dimensions.
//
// Complexity: O(M) per call.
func PhaseFactor(q Vec3, svecs *ShortestVectors, patom, satom int) (complex128, error) {
	images, err := svecs.Images(satom, patom)
	if err != nil {
		return 0, err
	}

	var sumRe, sumIm float64
	for _, r := range images {
		phase := twoPi * (q[0]*r[0] + q[1]*r[1] + q[2]*r[2])
		sumRe += math.Cos(phase)
		sumIm += math.Sin(phase)
	}
	m := float64(len(images))

	return complex(sumRe/m, sumIm/m), nil
}
