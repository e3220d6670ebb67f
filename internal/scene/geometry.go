package scene

// Face is one quad of a box, wound counter-clockwise seen from outside.
type Face struct {
	Indices [4]int
	Normal  Vec3
}

// BoxGeometry is an axis-aligned box centered on its local origin.
type BoxGeometry struct {
	Width, Height, Depth float64
}

func NewBoxGeometry(w, h, d float64) *BoxGeometry {
	return &BoxGeometry{Width: w, Height: h, Depth: d}
}

var boxFaces = [6]Face{
	{[4]int{4, 5, 6, 7}, Vec3{0, 0, 1}},
	{[4]int{1, 0, 3, 2}, Vec3{0, 0, -1}},
	{[4]int{5, 1, 2, 6}, Vec3{1, 0, 0}},
	{[4]int{0, 4, 7, 3}, Vec3{-1, 0, 0}},
	{[4]int{7, 6, 2, 3}, Vec3{0, 1, 0}},
	{[4]int{0, 1, 5, 4}, Vec3{0, -1, 0}},
}

// Vertices returns the eight corners. Indices 0-3 are the back (-Z) face,
// 4-7 the front (+Z) face.
func (g *BoxGeometry) Vertices() [8]Vec3 {
	x, y, z := g.Width/2, g.Height/2, g.Depth/2
	return [8]Vec3{
		{-x, -y, -z}, {x, -y, -z}, {x, y, -z}, {-x, y, -z},
		{-x, -y, z}, {x, -y, z}, {x, y, z}, {-x, y, z},
	}
}

func (g *BoxGeometry) Faces() [6]Face { return boxFaces }
