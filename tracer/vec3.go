// Package tracer holds the per-ray rendering core: vector arithmetic, rays,
// the sphere intersection test and the shading function.
package tracer

import (
	"fmt"

	"github.com/chewxy/math32"
)

// Vec3 is a three component float32 vector. It is used both as a point or
// direction (X, Y, Z) and as a color (R, G, B).
type Vec3 struct {
	x, y, z float32
}

func NewVec3(x, y, z float32) Vec3 {
	return Vec3{x, y, z}
}

func (v Vec3) X() float32 { return v.x }
func (v Vec3) Y() float32 { return v.y }
func (v Vec3) Z() float32 { return v.z }

func (v Vec3) R() float32 { return v.x }
func (v Vec3) G() float32 { return v.y }
func (v Vec3) B() float32 { return v.z }

func (v Vec3) String() string {
	return fmt.Sprintf("Vec3(%v, %v, %v)", v.x, v.y, v.z)
}

func (v Vec3) Add(u Vec3) Vec3 {
	return Vec3{v.x + u.x, v.y + u.y, v.z + u.z}
}

func (v Vec3) Sub(u Vec3) Vec3 {
	return Vec3{v.x - u.x, v.y - u.y, v.z - u.z}
}

// Mul is the component-wise product.
func (v Vec3) Mul(u Vec3) Vec3 {
	return Vec3{v.x * u.x, v.y * u.y, v.z * u.z}
}

// Div is the component-wise quotient. Zero components of u give Inf or NaN.
func (v Vec3) Div(u Vec3) Vec3 {
	return Vec3{v.x / u.x, v.y / u.y, v.z / u.z}
}

func (v Vec3) Scale(t float32) Vec3 {
	return Vec3{v.x * t, v.y * t, v.z * t}
}

// MulScalar is an alias for Scale.
func (v Vec3) MulScalar(t float32) Vec3 {
	return v.Scale(t)
}

// ScalarMul computes t * v.
func ScalarMul(t float32, v Vec3) Vec3 {
	return Vec3{t * v.x, t * v.y, t * v.z}
}

func (v Vec3) DivScalar(t float32) Vec3 {
	return Vec3{v.x / t, v.y / t, v.z / t}
}

func (v Vec3) Neg() Vec3 {
	return Vec3{-v.x, -v.y, -v.z}
}

func (v *Vec3) AddAssign(u Vec3) {
	v.x += u.x
	v.y += u.y
	v.z += u.z
}

func (v *Vec3) SubAssign(u Vec3) {
	v.x -= u.x
	v.y -= u.y
	v.z -= u.z
}

func (v *Vec3) MulAssign(u Vec3) {
	v.x *= u.x
	v.y *= u.y
	v.z *= u.z
}

func (v *Vec3) DivAssign(u Vec3) {
	v.x /= u.x
	v.y /= u.y
	v.z /= u.z
}

func (v *Vec3) ScaleAssign(t float32) {
	v.x *= t
	v.y *= t
	v.z *= t
}

func (v *Vec3) DivScalarAssign(t float32) {
	v.x /= t
	v.y /= t
	v.z /= t
}

func (v Vec3) Dot(u Vec3) float32 {
	return v.x*u.x + v.y*u.y + v.z*u.z
}

func (v Vec3) Cross(u Vec3) Vec3 {
	return Vec3{
		v.y*u.z - u.y*v.z,
		v.z*u.x - u.z*v.x,
		v.x*u.y - u.x*v.y,
	}
}

func (v Vec3) SquaredLength() float32 {
	return v.Dot(v)
}

func (v Vec3) Length() float32 {
	return math32.Sqrt(v.SquaredLength())
}

// UnitVector divides v by its length. A zero vector yields NaN components.
func (v Vec3) UnitVector() Vec3 {
	return v.DivScalar(v.Length())
}
