package phonon

import (
	"runtime"

	"github.com/katalvlaran/latdyn/eigen"
)

// Options configures a batch Solve run.
//
// Fields:
//   - Workers — size of the bounded worker pool for the parallel fan-out.
//     Values < 1 fall back to runtime.NumCPU().
//   - Uplo    — which triangular half of the Hermitized matrix the
//     eigensolver reads. Physically equivalent either way; exposed because
//     backends may differ in convention.
//   - Solver  — the Hermitian-eigensolver backend. Implementations must be
//     safe for concurrent use by Workers goroutines (the gonum backend is:
//     it holds no per-call state).
type Options struct {
	Workers int
	Uplo    eigen.Uplo
	Solver  eigen.HermitianSolver
}

// DefaultOptions returns the recommended configuration: one worker per CPU,
// lower-triangle convention, gonum-backed solver.
func DefaultOptions() Options {
	return Options{
		Workers: runtime.NumCPU(),
		Uplo:    eigen.Lower,
		Solver:  eigen.NewSolver(),
	}
}

// normalize fills zero values with defaults so a partially constructed
// Options literal still behaves sensibly.
func (o Options) normalize() Options {
	if o.Workers < 1 {
		o.Workers = runtime.NumCPU()
	}
	if o.Uplo == 0 {
		o.Uplo = eigen.Lower
	}
	if o.Solver == nil {
		o.Solver = eigen.NewSolver()
	}

	return o
}
