// Package eigen: sentinel error set, matched via errors.Is.
package eigen

import "errors"

var (
	// ErrShape indicates len(a) ≠ n·n or a non-positive order n.
	ErrShape = errors.New("eigen: invalid matrix shape")

	// ErrBadUplo indicates a triangular selector other than Upper or Lower.
	ErrBadUplo = errors.New("eigen: invalid uplo selector")

	// ErrEigenFailed indicates that the eigen-decomposition failed to
	// converge. It is the solver's native status, surfaced verbatim and
	// never retried or reinterpreted by callers.
	ErrEigenFailed = errors.New("eigen: decomposition failed to converge")
)
