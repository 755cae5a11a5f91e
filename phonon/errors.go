// Package phonon: sentinel error set, matched via errors.Is.
// Batch failures are wrapped with their grid point index via fmt.Errorf and
// combined with errors.Join; sentinels stay reachable through errors.Is.
package phonon

import "errors"

var (
	// ErrNilModel indicates a nil *Model or one missing required tables.
	ErrNilModel = errors.New("phonon: nil or incomplete model")

	// ErrShape indicates output buffers or tables sized inconsistently with
	// the model's atom counts or the mesh.
	ErrShape = errors.New("phonon: shape mismatch")

	// ErrBadMesh signals a mesh with a non-positive component.
	ErrBadMesh = errors.New("phonon: mesh components must be > 0")

	// ErrGridPointRange indicates a requested grid point outside
	// [0, num_grid_points).
	ErrGridPointRange = errors.New("phonon: grid point out of range")
)
