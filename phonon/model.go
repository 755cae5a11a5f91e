package phonon

import (
	"github.com/katalvlaran/latdyn/dynmat"
	"github.com/katalvlaran/latdyn/lattice"
)

// Model bundles the immutable physical inputs of a phonon calculation.
// Build it once and share it freely: nothing in this package mutates it.
type Model struct {
	// ForceConstants is the (satom, satom, 3, 3) fc2 tensor.
	ForceConstants *lattice.ForceConstants
	// ShortestVectors holds the minimum-image vectors and multiplicities.
	ShortestVectors *lattice.ShortestVectors
	// Masses are atomic masses indexed by supercell atom.
	Masses []float64
	// PrimitiveToSuper maps each primitive atom to its supercell index (p2s).
	PrimitiveToSuper []int
	// SuperToPrimitive maps each supercell atom to the supercell index of
	// its primitive representative (s2p).
	SuperToPrimitive []int
	// NAC enables the non-analytic correction when non-nil (i.e. when Born
	// effective charges were supplied).
	NAC *dynmat.NAC
	// QDirection is the optional limiting direction for the correction at
	// the zone center. Only grid point 0 of a batch run ever receives it.
	QDirection *lattice.Vec3
	// UnitConversion maps √|eigenvalue| to the desired frequency unit.
	UnitConversion float64
}

// NumPatom returns the primitive atom count.
func (m *Model) NumPatom() int { return len(m.PrimitiveToSuper) }

// NumSatom returns the supercell atom count.
func (m *Model) NumSatom() int { return len(m.SuperToPrimitive) }

// Bands returns the band count 3·NumPatom — the dynamical matrix order.
func (m *Model) Bands() int { return 3 * m.NumPatom() }

// Validate checks the model's internal consistency.
// Returns ErrNilModel for missing tables and ErrShape for dimension
// disagreements; site-map range errors surface later from the assembler.
func (m *Model) Validate() error {
	if m == nil || m.ForceConstants == nil || m.ShortestVectors == nil {
		return ErrNilModel
	}
	numPatom := m.NumPatom()
	numSatom := m.NumSatom()
	if numPatom == 0 || numSatom == 0 {
		return ErrNilModel
	}
	if m.ForceConstants.NumSatom() != numSatom || len(m.Masses) != numSatom {
		return ErrShape
	}
	if m.ShortestVectors.NumSatom() != numSatom || m.ShortestVectors.NumPatom() != numPatom {
		return ErrShape
	}
	if m.NAC != nil && m.NAC.NumPatom() != numPatom {
		return ErrShape
	}

	return nil
}
