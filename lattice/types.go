package lattice

// Vec3 is a 3-component real vector. Depending on context it holds a
// fractional q-point, a Cartesian direction, or a shortest lattice vector.
type Vec3 [3]float64

// Mesh holds the three dimensions of a regular wave-vector sampling mesh.
type Mesh [3]int

// Validate reports whether every mesh component is positive.
// Returns ErrBadMesh otherwise.
func (m Mesh) Validate() error {
	if m[0] <= 0 || m[1] <= 0 || m[2] <= 0 {
		return ErrBadMesh
	}

	return nil
}

// NumPoints returns the total number of grid points on the mesh.
func (m Mesh) NumPoints() int {
	return m[0] * m[1] * m[2]
}

// Address is the integer triple locating one grid point on a Mesh.
type Address [3]int

// QPoint derives the fractional wave-vector of a grid address:
// q[k] = addr[k] / mesh[k], component-wise real division.
//
// The caller must have validated the mesh (Mesh.Validate); a zero component
// here is a programmer error upstream.
func QPoint(addr Address, mesh Mesh) Vec3 {
	return Vec3{
		float64(addr[0]) / float64(mesh[0]),
		float64(addr[1]) / float64(mesh[1]),
		float64(addr[2]) / float64(mesh[2]),
	}
}

// Neg returns the component-wise negation of v (the time-reversed q-point).
func (v Vec3) Neg() Vec3 {
	return Vec3{-v[0], -v[1], -v[2]}
}
