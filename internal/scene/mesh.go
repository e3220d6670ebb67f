package scene

// PhongMaterial carries the surface color of a mesh.
type PhongMaterial struct {
	Color Color
}

func NewPhongMaterial(color Color) *PhongMaterial {
	return &PhongMaterial{Color: color}
}

// Shade returns the lit color of a face with unit normal n.
func (m *PhongMaterial) Shade(n Vec3, l *DirectionalLight) Color {
	if l == nil {
		return m.Color
	}
	return m.Color.Modulate(l.Color).Scale(l.Lambert(n))
}

// Mesh is a box placed in the scene.
type Mesh struct {
	Geometry *BoxGeometry
	Material *PhongMaterial
	Position Vec3
	Rotation Euler
}

func NewMesh(g *BoxGeometry, m *PhongMaterial) *Mesh {
	return &Mesh{Geometry: g, Material: m}
}

// WorldVertices applies rotation then translation to the geometry corners.
func (m *Mesh) WorldVertices() [8]Vec3 {
	v := m.Geometry.Vertices()
	for i := range v {
		v[i] = m.Rotation.Apply(v[i]).Add(m.Position)
	}
	return v
}

// WorldNormals returns each face normal after rotation, in Faces order.
func (m *Mesh) WorldNormals() [6]Vec3 {
	var n [6]Vec3
	for i, f := range m.Geometry.Faces() {
		n[i] = m.Rotation.Apply(f.Normal)
	}
	return n
}

func (*Mesh) isObject() {}
