// Package lattice: sentinel error set.
// All public constructors and indexers MUST return these sentinels and tests
// MUST check them via errors.Is. No function panics on user-triggered error
// conditions; panics are reserved for programmer errors in private helpers.
package lattice

import "errors"

var (
	// ErrBadShape is returned when a table is constructed with non-positive
	// dimensions. Constructors must validate before allocation.
	ErrBadShape = errors.New("lattice: invalid shape")

	// ErrOutOfRange indicates that an index (atom, image, component) is
	// outside a table's declared dimensions. Public indexers MUST return
	// this, not panic.
	ErrOutOfRange = errors.New("lattice: index out of range")

	// ErrBadMesh signals a mesh with a zero or negative component; q-point
	// derivation divides by mesh components and must never see one.
	ErrBadMesh = errors.New("lattice: mesh components must be > 0")
)
