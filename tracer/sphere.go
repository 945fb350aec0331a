package tracer

import "github.com/chewxy/math32"

// NoHit is returned by HitSphere when the ray misses.
const NoHit float32 = -1

type Sphere struct {
	Center Vec3
	Radius float32
}

// HitSphere returns the nearer root of |origin + t*direction - center| = radius,
// or NoHit when the discriminant is negative. The result can be negative when
// the sphere is behind the ray or contains its origin.
func HitSphere(center Vec3, radius float32, r Ray) float32 {
	oc := r.Origin().Sub(center)
	a := r.Direction().Dot(r.Direction())
	b := oc.Dot(r.Direction()) * 2
	c := oc.Dot(oc) - radius*radius
	discriminant := b*b - 4*a*c

	if discriminant < 0 {
		return NoHit
	}
	return (-b - math32.Sqrt(discriminant)) / (2 * a)
}

// Hit reports the parameter of a visible intersection, one strictly in front
// of the ray origin.
func (s Sphere) Hit(r Ray) (float32, bool) {
	t := HitSphere(s.Center, s.Radius, r)
	if t > 0 {
		return t, true
	}
	return t, false
}
