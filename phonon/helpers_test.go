package phonon_test

import (
	"testing"

	"github.com/katalvlaran/latdyn/lattice"
	"github.com/katalvlaran/latdyn/phonon"
	"github.com/stretchr/testify/require"
)

// trivialModel: one atom, supercell == primitive cell, force-constant block
// diag(dxx, dyy, dzz), unit mass. Eigenvalues at any q are the diagonal.
func trivialModel(t *testing.T, dxx, dyy, dzz float64) *phonon.Model {
	t.Helper()

	fc, err := lattice.NewForceConstants(1)
	require.NoError(t, err)
	require.NoError(t, fc.Set(0, 0, 0, 0, dxx))
	require.NoError(t, fc.Set(0, 0, 1, 1, dyy))
	require.NoError(t, fc.Set(0, 0, 2, 2, dzz))

	sv, err := lattice.NewShortestVectors(1, 1, 1)
	require.NoError(t, err)
	require.NoError(t, sv.SetImages(0, 0, []lattice.Vec3{{0, 0, 0}}))

	return &phonon.Model{
		ForceConstants:   fc,
		ShortestVectors:  sv,
		Masses:           []float64{1},
		PrimitiveToSuper: []int{0},
		SuperToPrimitive: []int{0},
		UnitConversion:   1,
	}
}

// diatomicChain: two-atom primitive cell (masses 1 and 2) in a two-cell
// supercell along x, nearest-neighbor springs k1 (A–B inside the cell) and
// k2 (B–A across the cell boundary). With k1 = k2 = 1 the zone-center optic
// branch is √(2·(1/m1+1/m2)) = √3 and the zone boundary gives {1, √2};
// unequal springs break inversion symmetry and make D(q) fully complex.
//
// Supercell atom order: A0, B0, A1, B1. Distances in primitive fractional
// units: B sits at +0.5 from A.
func diatomicChain(t *testing.T, k1, k2 float64) *phonon.Model {
	t.Helper()

	self := k1 + k2
	fc, err := lattice.NewForceConstants(4)
	require.NoError(t, err)
	for _, e := range []struct {
		i, j int
		v    float64
	}{
		{0, 0, self}, {1, 1, self}, {2, 2, self}, {3, 3, self},
		// intra-cell k1 bonds: A_i — B_i
		{0, 1, -k1}, {1, 0, -k1}, {2, 3, -k1}, {3, 2, -k1},
		// inter-cell k2 bonds: B_i — A_{i+1} (periodic)
		{1, 2, -k2}, {2, 1, -k2}, {3, 0, -k2}, {0, 3, -k2},
	} {
		require.NoError(t, fc.Set(e.i, e.j, 0, 0, e.v))
	}

	sv, err := lattice.NewShortestVectors(4, 2, 2)
	require.NoError(t, err)
	images := map[[2]int][]lattice.Vec3{
		{0, 0}: {{0, 0, 0}},
		{1, 0}: {{0.5, 0, 0}},
		{2, 0}: {{1, 0, 0}, {-1, 0, 0}},
		{3, 0}: {{-0.5, 0, 0}},
		{0, 1}: {{-0.5, 0, 0}},
		{1, 1}: {{0, 0, 0}},
		{2, 1}: {{0.5, 0, 0}},
		{3, 1}: {{1, 0, 0}, {-1, 0, 0}},
	}
	for key, imgs := range images {
		require.NoError(t, sv.SetImages(key[0], key[1], imgs))
	}

	return &phonon.Model{
		ForceConstants:   fc,
		ShortestVectors:  sv,
		Masses:           []float64{1, 2, 1, 2},
		PrimitiveToSuper: []int{0, 1},
		SuperToPrimitive: []int{0, 1, 0, 1},
		UnitConversion:   1,
	}
}

// mesh222Addresses enumerates the 2×2×2 grid in x-fastest order, so grid
// point 0 is the zone center and odd grid points sit at q_x = 1/2.
func mesh222Addresses() []lattice.Address {
	addrs := make([]lattice.Address, 0, 8)
	for z := 0; z < 2; z++ {
		for y := 0; y < 2; y++ {
			for x := 0; x < 2; x++ {
				addrs = append(addrs, lattice.Address{x, y, z})
			}
		}
	}

	return addrs
}
