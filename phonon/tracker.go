package phonon

// DoneMap tracks which grid points already have phonons solved.
//
// Semantics are write-once-true: once a grid point is marked done its
// frequencies and eigenvectors are considered valid and final, and no later
// claim will return it again. The map is mutated only by Claim, which the
// batch orchestrator calls once, sequentially, before any parallel dispatch
// — so the map itself never needs a lock.
type DoneMap struct {
	done []bool
}

// NewDoneMap returns a map over n grid points, all initially not done.
// Returns ErrShape for a non-positive n.
func NewDoneMap(n int) (*DoneMap, error) {
	if n <= 0 {
		return nil, ErrShape
	}

	return &DoneMap{done: make([]bool, n)}, nil
}

// Len returns the number of tracked grid points.
func (d *DoneMap) Len() int { return len(d.done) }

// Done reports whether grid point gp has been claimed.
func (d *DoneMap) Done(gp int) (bool, error) {
	if gp < 0 || gp >= len(d.done) {
		return false, ErrGridPointRange
	}

	return d.done[gp], nil
}

// Claim partitions gridPoints into {already-done, newly-claimed} and marks
// every newly claimed point done before returning.
//
// The returned slice preserves the request order and contains each grid
// point at most once (a duplicate inside one request is claimed by its
// first occurrence). Claim is a pure gate: it performs no physics.
//
// Errors:
//   - ErrGridPointRange — any requested index outside [0, Len()); the map
//     is left unmodified in that case.
func (d *DoneMap) Claim(gridPoints []int) ([]int, error) {
	for _, gp := range gridPoints {
		if gp < 0 || gp >= len(d.done) {
			return nil, ErrGridPointRange
		}
	}

	undone := make([]int, 0, len(gridPoints))
	for _, gp := range gridPoints {
		if !d.done[gp] {
			undone = append(undone, gp)
			d.done[gp] = true
		}
	}

	return undone, nil
}
