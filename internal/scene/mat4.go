package scene

// Mat4 is a column-major 4x4 matrix: element (row r, column c) is m[c*4+r].
type Mat4 [16]float64

// MulPoint transforms (p, 1) and returns the homogeneous result.
func (m Mat4) MulPoint(p Vec3) (x, y, z, w float64) {
	x = m[0]*p.X + m[4]*p.Y + m[8]*p.Z + m[12]
	y = m[1]*p.X + m[5]*p.Y + m[9]*p.Z + m[13]
	z = m[2]*p.X + m[6]*p.Y + m[10]*p.Z + m[14]
	w = m[3]*p.X + m[7]*p.Y + m[11]*p.Z + m[15]
	return
}
