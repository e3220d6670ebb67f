package scene

// Object is anything that can be added to a Scene.
type Object interface {
	isObject()
}

// Scene is an append-only collection of lights and meshes.
type Scene struct {
	children []Object
}

func New() *Scene { return &Scene{} }

// Add appends objects in order. Nil objects are skipped.
func (s *Scene) Add(objs ...Object) {
	for _, o := range objs {
		switch v := o.(type) {
		case nil:
			continue
		case *Mesh:
			if v == nil {
				continue
			}
		case *DirectionalLight:
			if v == nil {
				continue
			}
		}
		s.children = append(s.children, o)
	}
}

func (s *Scene) Len() int { return len(s.children) }

// Children returns a copy of the scene contents in insertion order.
func (s *Scene) Children() []Object {
	out := make([]Object, len(s.children))
	copy(out, s.children)
	return out
}

func (s *Scene) Lights() []*DirectionalLight {
	var out []*DirectionalLight
	for _, o := range s.children {
		if l, ok := o.(*DirectionalLight); ok {
			out = append(out, l)
		}
	}
	return out
}

func (s *Scene) Meshes() []*Mesh {
	var out []*Mesh
	for _, o := range s.children {
		if m, ok := o.(*Mesh); ok {
			out = append(out, m)
		}
	}
	return out
}

// KeyLight returns the first light, or nil.
func (s *Scene) KeyLight() *DirectionalLight {
	for _, o := range s.children {
		if l, ok := o.(*DirectionalLight); ok {
			return l
		}
	}
	return nil
}
