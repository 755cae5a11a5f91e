package lattice

// ShortestVectors stores, for every (supercell atom, primitive atom) pair,
// the minimum-image lattice vectors connecting the pair and how many such
// vectors tie for the minimum (the multiplicity).
//
// Description:
//
//	Under periodic boundary conditions the displacement between two atoms is
//	defined only up to a supercell lattice translation. The phase factor must
//	average over every image that ties for the shortest length, otherwise
//	the dynamical matrix loses its translational invariance.
//
// Storage:
//
//	Vectors are packed flat as (satom, patom, image) → Vec3 with a fixed
//	image capacity maxMulti; multiplicities as (satom, patom) → int.
//	Set* during construction, then share read-only.
//
// Memory: O(numSatom · numPatom · maxMulti).
type ShortestVectors struct {
	numSatom int
	numPatom int
	maxMulti int
	vecs     []Vec3
	multi    []int
}

// NewShortestVectors allocates an empty table for the given dimensions.
// Returns ErrBadShape if any dimension is non-positive.
func NewShortestVectors(numSatom, numPatom, maxMulti int) (*ShortestVectors, error) {
	if numSatom <= 0 || numPatom <= 0 || maxMulti <= 0 {
		return nil, ErrBadShape
	}

	return &ShortestVectors{
		numSatom: numSatom,
		numPatom: numPatom,
		maxMulti: maxMulti,
		vecs:     make([]Vec3, numSatom*numPatom*maxMulti),
		multi:    make([]int, numSatom*numPatom),
	}, nil
}

// NumSatom returns the supercell atom count (first dimension).
func (s *ShortestVectors) NumSatom() int { return s.numSatom }

// NumPatom returns the primitive atom count (second dimension).
func (s *ShortestVectors) NumPatom() int { return s.numPatom }

// SetImages records the minimum-image vectors for the (satom, patom) pair
// and sets the pair's multiplicity to len(images).
// Returns ErrOutOfRange on a bad pair index or when len(images) exceeds the
// table's image capacity; an empty images slice is also out of range, since
// a valid table has multiplicity ≥ 1 for every pair.
func (s *ShortestVectors) SetImages(satom, patom int, images []Vec3) error {
	if satom < 0 || satom >= s.numSatom || patom < 0 || patom >= s.numPatom {
		return ErrOutOfRange
	}
	if len(images) < 1 || len(images) > s.maxMulti {
		return ErrOutOfRange
	}

	base := (satom*s.numPatom + patom) * s.maxMulti
	copy(s.vecs[base:base+len(images)], images)
	s.multi[satom*s.numPatom+patom] = len(images)

	return nil
}

// Multiplicity returns the number of tied minimum images for the pair.
func (s *ShortestVectors) Multiplicity(satom, patom int) (int, error) {
	if satom < 0 || satom >= s.numSatom || patom < 0 || patom >= s.numPatom {
		return 0, ErrOutOfRange
	}

	return s.multi[satom*s.numPatom+patom], nil
}

// Image returns the img-th minimum-image vector of the pair.
func (s *ShortestVectors) Image(satom, patom, img int) (Vec3, error) {
	if satom < 0 || satom >= s.numSatom || patom < 0 || patom >= s.numPatom {
		return Vec3{}, ErrOutOfRange
	}
	if img < 0 || img >= s.multi[satom*s.numPatom+patom] {
		return Vec3{}, ErrOutOfRange
	}

	return s.vecs[(satom*s.numPatom+patom)*s.maxMulti+img], nil
}

// Images returns the pair's minimum-image vectors as one slice.
// The slice aliases the table's storage: treat it as read-only.
// This is the hot-path accessor used by PhaseFactor and the
// dynamical-matrix assembler; one bounds check per pair, not per image.
func (s *ShortestVectors) Images(satom, patom int) ([]Vec3, error) {
	if satom < 0 || satom >= s.numSatom || patom < 0 || patom >= s.numPatom {
		return nil, ErrOutOfRange
	}
	m := s.multi[satom*s.numPatom+patom]
	base := (satom*s.numPatom + patom) * s.maxMulti

	return s.vecs[base : base+m], nil
}

// ForceConstants is the second-order force-constant tensor fc2, a flat
// bounds-checked view over (satom, satom, 3, 3) Cartesian blocks.
// Immutable after construction from the caller's point of view.
type ForceConstants struct {
	numSatom int
	data     []float64
}

// NewForceConstants allocates a zero fc2 tensor for numSatom supercell atoms.
// Returns ErrBadShape for a non-positive atom count.
func NewForceConstants(numSatom int) (*ForceConstants, error) {
	if numSatom <= 0 {
		return nil, ErrBadShape
	}

	return &ForceConstants{
		numSatom: numSatom,
		data:     make([]float64, numSatom*numSatom*9),
	}, nil
}

// NumSatom returns the supercell atom count.
func (f *ForceConstants) NumSatom() int { return f.numSatom }

// Set writes the (a, b) Cartesian component of the (i, j) atom-pair block.
func (f *ForceConstants) Set(i, j, a, b int, v float64) error {
	if i < 0 || i >= f.numSatom || j < 0 || j >= f.numSatom ||
		a < 0 || a > 2 || b < 0 || b > 2 {
		return ErrOutOfRange
	}
	f.data[(i*f.numSatom+j)*9+a*3+b] = v

	return nil
}

// At reads the (a, b) Cartesian component of the (i, j) atom-pair block.
func (f *ForceConstants) At(i, j, a, b int) (float64, error) {
	if i < 0 || i >= f.numSatom || j < 0 || j >= f.numSatom ||
		a < 0 || a > 2 || b < 0 || b > 2 {
		return 0, ErrOutOfRange
	}

	return f.data[(i*f.numSatom+j)*9+a*3+b], nil
}

// Block returns the 9-element (i, j) Cartesian block in row-major (a, b)
// order. The slice aliases the tensor's storage: treat it as read-only.
func (f *ForceConstants) Block(i, j int) ([]float64, error) {
	if i < 0 || i >= f.numSatom || j < 0 || j >= f.numSatom {
		return nil, ErrOutOfRange
	}
	base := (i*f.numSatom + j) * 9

	return f.data[base : base+9], nil
}
