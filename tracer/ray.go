package tracer

// Ray is the parametric line origin + t*direction. The direction need not
// be unit length.
type Ray struct {
	origin, direction Vec3
}

func NewRay(origin, direction Vec3) Ray {
	return Ray{origin: origin, direction: direction}
}

func (r Ray) Origin() Vec3 { return r.origin }
func (r Ray) Direction() Vec3 { return r.direction }

// PointAtParameter returns origin + direction*t. Negative t lies behind the
// origin.
func (r Ray) PointAtParameter(t float32) Vec3 {
	return r.origin.Add(r.direction.Scale(t))
}
