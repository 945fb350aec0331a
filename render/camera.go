package render

import "raytracing/tracer"

// Camera is a fixed pinhole camera looking through a virtual image plane
// spanned by Horizontal and Vertical from LowerLeftCorner.
type Camera struct {
	Origin          tracer.Vec3
	LowerLeftCorner tracer.Vec3
	Horizontal      tracer.Vec3
	Vertical        tracer.Vec3
}

// DefaultCamera is a 2:1 image plane one unit in front of the origin.
func DefaultCamera() Camera {
	return Camera{
		Origin:          tracer.NewVec3(0, 0, 0),
		LowerLeftCorner: tracer.NewVec3(-2, -1, -1),
		Horizontal:      tracer.NewVec3(4, 0, 0),
		Vertical:        tracer.NewVec3(0, 2, 0),
	}
}

// Ray returns the ray through image plane coordinates (u, v), where (0, 0)
// is the lower left corner and (1, 1) the upper right.
func (c Camera) Ray(u, v float32) tracer.Ray {
	direction := c.LowerLeftCorner.
		Add(c.Horizontal.Scale(u)).
		Add(c.Vertical.Scale(v)).
		Sub(c.Origin)
	return tracer.NewRay(c.Origin, direction)
}
