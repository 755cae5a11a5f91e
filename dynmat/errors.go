// Package dynmat: sentinel error set, matched via errors.Is.
package dynmat

import "errors"

var (
	// ErrShape indicates that buffer or table dimensions disagree with the
	// atom counts implied by the site maps.
	ErrShape = errors.New("dynmat: shape mismatch")

	// ErrBadSiteMap indicates a p2s/s2p entry outside [0, numSatom).
	ErrBadSiteMap = errors.New("dynmat: site map index out of range")

	// ErrSingularDielectric is returned when |qᵀ·ε·q| falls below tolerance,
	// which would blow up the non-analytic scaling. Fail fast rather than
	// propagate Inf/NaN into the eigensolver.
	ErrSingularDielectric = errors.New("dynmat: singular dielectric projection")
)
