package tracer

// Shader colors a ray against a single sphere. Hits are shown as a normal
// map, misses as a vertical gradient from Horizon to Zenith.
type Shader struct {
	Sphere Sphere

	// NormalOrigin is subtracted from the hit point to build the shading
	// normal. The default scene uses (0,0,1), not the sphere center.
	NormalOrigin Vec3
	Horizon      Vec3
	Zenith       Vec3
}

func DefaultShader() Shader {
	return Shader{
		Sphere:       Sphere{Center: NewVec3(0, 0, -1), Radius: 0.5},
		NormalOrigin: NewVec3(0, 0, 1),
		Horizon:      NewVec3(1, 1, 1),
		Zenith:       NewVec3(0.5, 0.7, 1.0),
	}
}

func (s Shader) Color(r Ray) Vec3 {
	if t, ok := s.Sphere.Hit(r); ok {
		n := r.PointAtParameter(t).Sub(s.NormalOrigin).UnitVector()
		return n.Add(NewVec3(1, 1, 1)).Scale(0.5)
	}

	unitDirection := r.Direction().UnitVector()
	blend := 0.5 * (unitDirection.Y() + 1.0)
	return s.Horizon.Scale(1.0 - blend).Add(s.Zenith.Scale(blend))
}

var defaultShader = DefaultShader()

// Color shades r with the default scene.
func Color(r Ray) Vec3 {
	return defaultShader.Color(r)
}
