package phonon

import (
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/latdyn/lattice"
)

// Output holds the caller-owned result arrays of a batch run, populated in
// place at each grid point's offset. Slots of grid points never claimed stay
// zero; the slot of a failed grid point is undefined.
type Output struct {
	// Frequencies is (numGridPoints, bands) row-major.
	Frequencies []float64
	// Eigenvectors is (numGridPoints, bands, bands) row-major: the block
	// Eigenvectors[(gp*bands+b)*bands : (gp*bands+b+1)*bands] is band b's
	// eigenvector at grid point gp.
	Eigenvectors []complex128
	bands        int
}

// NewOutput allocates zeroed result arrays for numGridPoints points of
// bands bands each. Returns ErrShape for non-positive dimensions.
func NewOutput(numGridPoints, bands int) (*Output, error) {
	if numGridPoints <= 0 || bands <= 0 {
		return nil, ErrShape
	}

	return &Output{
		Frequencies:  make([]float64, numGridPoints*bands),
		Eigenvectors: make([]complex128, numGridPoints*bands*bands),
		bands:        bands,
	}, nil
}

// FrequenciesAt returns the frequency row of one grid point.
func (o *Output) FrequenciesAt(gp int) ([]float64, error) {
	if gp < 0 || (gp+1)*o.bands > len(o.Frequencies) {
		return nil, ErrGridPointRange
	}

	return o.Frequencies[gp*o.bands : (gp+1)*o.bands], nil
}

// EigenvectorsAt returns the flattened (bands, bands) eigenvector block of
// one grid point.
func (o *Output) EigenvectorsAt(gp int) ([]complex128, error) {
	nn := o.bands * o.bands
	if gp < 0 || (gp+1)*nn > len(o.Eigenvectors) {
		return nil, ErrGridPointRange
	}

	return o.Eigenvectors[gp*nn : (gp+1)*nn], nil
}

// Solve — memoized, data-parallel phonon sweep over mesh grid points.
//
// Algorithm:
//  1. Validate the model, mesh, addresses and output shapes.
//  2. Claim: done.Claim(gridPoints) yields the not-yet-solved subset in
//     request order and marks it done — sequentially, before any worker
//     starts, so the done map is never touched inside the parallel region.
//  3. Fan out over the claimed points on a pool of opts.Workers goroutines.
//     Each worker derives q = address/mesh, solves, and writes into the
//     output arrays at its grid point's offset. Grid points are disjoint,
//     so workers share nothing writable.
//  4. Collect: every failed grid point's error is wrapped with its index;
//     Solve returns them combined with errors.Join (nil when all
//     succeeded). A failure leaves only that grid point's slot undefined.
//
// Zone-center policy: grid point 0 — the canonical zone center — is the
// only point that receives the model's QDirection; all other grid points
// solve with the direction forced absent, so away from the zone center the
// correction always follows the point's own q. This mirrors the batch
// contract this pipeline inherits and is deliberately not extended to other
// zone-center-equivalent grid points.
//
// No cancellation: the sweep runs to completion; a grid point's failure
// does not abort in-flight siblings.
//
// Returns the claimed (newly solved) grid points in request order.
func Solve(
	out *Output,
	done *DoneMap,
	gridPoints []int,
	addresses []lattice.Address,
	mesh lattice.Mesh,
	m *Model,
	opts Options,
) ([]int, error) {
	if err := m.Validate(); err != nil {
		return nil, err
	}
	if err := mesh.Validate(); err != nil {
		return nil, ErrBadMesh
	}
	bands := m.Bands()
	numGP := len(addresses)
	if out == nil || done == nil || numGP == 0 {
		return nil, ErrShape
	}
	if out.bands != bands || len(out.Frequencies) != numGP*bands ||
		len(out.Eigenvectors) != numGP*bands*bands || done.Len() != numGP {
		return nil, ErrShape
	}

	undone, err := done.Claim(gridPoints)
	if err != nil {
		return nil, err
	}
	if len(undone) == 0 {
		return undone, nil
	}

	opts = opts.normalize()

	// Plain errgroup (no context): one grid point's failure must not cancel
	// siblings. Statuses are collected per point and joined below.
	var g errgroup.Group
	g.SetLimit(opts.Workers)
	statuses := make([]error, len(undone))

	for i, gp := range undone {
		i, gp := i, gp
		g.Go(func() error {
			q := lattice.QPoint(addresses[gp], mesh)

			// Only the canonical zone center keeps the caller's q-direction.
			var qDir *lattice.Vec3
			if gp == 0 {
				qDir = m.QDirection
			}

			freqs := out.Frequencies[gp*bands : (gp+1)*bands]
			vecs := out.Eigenvectors[gp*bands*bands : (gp+1)*bands*bands]
			if err := SolveAtQ(m, q, qDir, opts.Solver, opts.Uplo, freqs, vecs); err != nil {
				statuses[i] = fmt.Errorf("phonon: grid point %d: %w", gp, err)
			}

			return nil
		})
	}
	_ = g.Wait() // workers only record statuses; Wait never sees an error

	return undone, errors.Join(statuses...)
}
