package dynmat

import (
	"math"

	"github.com/katalvlaran/latdyn/lattice"
)

// Assemble — un-symmetrized dynamical matrix at q, in planar (re, im) form.
//
// Description:
//
//	D(q)[iα, jβ] = Σ_k  (fc2[p2s(i), k] + cs[i, j])_αβ · P_k,i(q) / √(m_i·m_j)
//
//	where k runs over supercell atoms belonging to primitive site j
//	(s2p[k] == p2s[j]), P is the multiplicity-averaged phase factor over the
//	minimum images connecting k to primitive atom i, and cs is the optional
//	charge-sum buffer from Correction (nil when Born charges are absent).
//
// Algorithm:
//  1. Validate shapes: re/im are (3N)² planes, tables match the site maps.
//  2. Zero both planes.
//  3. For every primitive pair (i, j): accumulate the phase-weighted,
//     mass-reduced 3×3 blocks of every supercell image atom of j.
//
// The raw result is Hermitian only up to floating-point summation order;
// callers symmetrize before diagonalizing.
//
// Errors:
//   - ErrShape      — any dimension disagreement.
//   - ErrBadSiteMap — a p2s/s2p entry outside [0, numSatom).
//
// Complexity: O(numPatom · numSatom · 9) plus phase sums.
func Assemble(
	re, im []float64,
	q lattice.Vec3,
	fc2 *lattice.ForceConstants,
	svecs *lattice.ShortestVectors,
	masses []float64,
	p2s, s2p []int,
	chargeSum []float64,
) error {
	numPatom := len(p2s)
	numSatom := len(s2p)
	n := numPatom * 3

	if numPatom == 0 || numSatom == 0 {
		return ErrShape
	}
	if len(re) != n*n || len(im) != n*n {
		return ErrShape
	}
	if fc2.NumSatom() != numSatom || len(masses) != numSatom {
		return ErrShape
	}
	if svecs.NumSatom() != numSatom || svecs.NumPatom() != numPatom {
		return ErrShape
	}
	if chargeSum != nil && len(chargeSum) != numPatom*numPatom*9 {
		return ErrShape
	}
	for _, s := range p2s {
		if s < 0 || s >= numSatom {
			return ErrBadSiteMap
		}
	}
	for _, s := range s2p {
		if s < 0 || s >= numSatom {
			return ErrBadSiteMap
		}
	}

	for idx := range re {
		re[idx] = 0
		im[idx] = 0
	}

	for i := 0; i < numPatom; i++ {
		for j := 0; j < numPatom; j++ {
			massSqrt := math.Sqrt(masses[p2s[i]] * masses[p2s[j]])

			var cs []float64
			if chargeSum != nil {
				base := (i*numPatom + j) * 9
				cs = chargeSum[base : base+9]
			}

			for k := 0; k < numSatom; k++ {
				if s2p[k] != p2s[j] {
					continue
				}

				// Multiplicity-averaged phase over images connecting k to i.
				images, err := svecs.Images(k, i)
				if err != nil {
					return err
				}
				var cosSum, sinSum float64
				for _, r := range images {
					phase := 2 * math.Pi * (q[0]*r[0] + q[1]*r[1] + q[2]*r[2])
					cosSum += math.Cos(phase)
					sinSum += math.Sin(phase)
				}
				multi := float64(len(images))
				cosPhase := cosSum / multi
				sinPhase := sinSum / multi

				fc, err := fc2.Block(p2s[i], k)
				if err != nil {
					return err
				}

				for a := 0; a < 3; a++ {
					row := (i*3 + a) * n
					for b := 0; b < 3; b++ {
						el := fc[a*3+b]
						if cs != nil {
							el += cs[a*3+b]
						}
						re[row+j*3+b] += el * cosPhase / massSqrt
						im[row+j*3+b] += el * sinPhase / massSqrt
					}
				}
			}
		}
	}

	return nil
}
