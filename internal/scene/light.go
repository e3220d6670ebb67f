package scene

// DirectionalLight shines from Position toward the origin. Only the
// direction matters for shading; distance is ignored.
type DirectionalLight struct {
	Color     Color
	Intensity float64
	Position  Vec3
}

func NewDirectionalLight(color Color, intensity float64) *DirectionalLight {
	return &DirectionalLight{Color: color, Intensity: intensity, Position: Vec3{0, 1, 0}}
}

// Direction is the unit vector from the light toward its target.
func (l *DirectionalLight) Direction() Vec3 {
	return l.Position.Scale(-1).Normalize()
}

// Lambert returns the diffuse factor for a surface with unit normal n.
func (l *DirectionalLight) Lambert(n Vec3) float64 {
	d := -n.Dot(l.Direction())
	if d < 0 {
		return 0
	}
	return d * l.Intensity
}

func (*DirectionalLight) isObject() {}
