package dynmat

import (
	"math"

	"github.com/katalvlaran/latdyn/lattice"
)

const (
	// zoneCenterTol: every |q component| below this means the literal zone
	// center, where the correction is undefined without a limiting direction.
	zoneCenterTol = 1e-10

	// dielectricTol: |qᵀ·ε·q| below this triggers ErrSingularDielectric.
	dielectricTol = 1e-12
)

// NAC bundles the immutable inputs of the non-analytic correction.
// A nil *NAC means Born charges were not supplied and no correction applies.
type NAC struct {
	// Born holds one 3×3 effective-charge tensor per primitive atom.
	Born [][3][3]float64
	// Dielectric is the macroscopic dielectric tensor ε.
	Dielectric [3][3]float64
	// ReciprocalLattice projects fractional q to Cartesian, row-major:
	// q_cart[i] = Σ_j ReciprocalLattice[i][j]·q[j].
	ReciprocalLattice [3][3]float64
	// Factor is the overall correction scale (unit- and volume-dependent).
	Factor float64
}

// NumPatom returns the primitive atom count implied by the Born tensors.
func (n *NAC) NumPatom() int { return len(n.Born) }

// CartesianQ projects a fractional wave-vector through the reciprocal
// lattice: out[i] = Σ_j rec[i][j]·q[j].
func CartesianQ(rec [3][3]float64, q lattice.Vec3) lattice.Vec3 {
	var out lattice.Vec3
	for i := 0; i < 3; i++ {
		out[i] = rec[i][0]*q[0] + rec[i][1]*q[1] + rec[i][2]*q[2]
	}

	return out
}

// Correction builds the dipole–dipole charge-sum buffer for q.
//
// Algorithm:
//  1. Gate: at the undirected zone center (|q_k| < 1e-10 ∀k, qDir == nil)
//     return (nil, nil) — the correction is skipped entirely.
//  2. Project qDir (if supplied) or q to Cartesian via the reciprocal
//     lattice.
//  3. Normalize: factor = Factor / (q_cartᵀ·ε·q_cart) / numSatom · numPatom
//     (numSatom/numPatom is the number of primitive cells in the supercell).
//  4. Charge sum: cs[i,j,a,b] = factor · (q_cartᵀ·Z_i)_a · (q_cartᵀ·Z_j)_b.
//
// The returned buffer is (numPatom, numPatom, 3, 3) row-major, ready to be
// handed to Assemble; it is scratch owned by the caller's single solve.
//
// Errors:
//   - ErrSingularDielectric — |qᵀ·ε·q| < 1e-12.
//
// Complexity: O(numPatom²).
func Correction(nac *NAC, q lattice.Vec3, qDir *lattice.Vec3, numSatom int) ([]float64, error) {
	if qDir == nil &&
		math.Abs(q[0]) < zoneCenterTol &&
		math.Abs(q[1]) < zoneCenterTol &&
		math.Abs(q[2]) < zoneCenterTol {
		return nil, nil
	}

	var qCart lattice.Vec3
	if qDir != nil {
		qCart = CartesianQ(nac.ReciprocalLattice, *qDir)
	} else {
		qCart = CartesianQ(nac.ReciprocalLattice, q)
	}

	var invDielectric float64
	for i := 0; i < 3; i++ {
		var row float64
		for j := 0; j < 3; j++ {
			row += nac.Dielectric[i][j] * qCart[j]
		}
		invDielectric += row * qCart[i]
	}
	if math.Abs(invDielectric) < dielectricTol {
		return nil, ErrSingularDielectric
	}

	numPatom := len(nac.Born)
	factor := nac.Factor / invDielectric / float64(numSatom) * float64(numPatom)

	return ChargeSum(nac.Born, factor, qCart), nil
}

// ChargeSum builds the raw (numPatom, numPatom, 3, 3) charge-sum tensor:
// cs[i,j,a,b] = factor · (qᵀ·Z_i)_a · (qᵀ·Z_j)_b.
func ChargeSum(born [][3][3]float64, factor float64, qCart lattice.Vec3) []float64 {
	numPatom := len(born)

	// qZ[i][a] = Σ_b qCart[b]·Z_i[b][a]
	qZ := make([][3]float64, numPatom)
	for i, z := range born {
		for a := 0; a < 3; a++ {
			qZ[i][a] = qCart[0]*z[0][a] + qCart[1]*z[1][a] + qCart[2]*z[2][a]
		}
	}

	cs := make([]float64, numPatom*numPatom*9)
	for i := 0; i < numPatom; i++ {
		for j := 0; j < numPatom; j++ {
			base := (i*numPatom + j) * 9
			for a := 0; a < 3; a++ {
				for b := 0; b < 3; b++ {
					cs[base+a*3+b] = factor * qZ[i][a] * qZ[j][b]
				}
			}
		}
	}

	return cs
}
