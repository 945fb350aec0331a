package tracer

import "github.com/chewxy/math32"

const epsilon = 1e-5

func almostEqual(a, b float32) bool {
	return math32.Abs(a-b) < epsilon
}

func vec3Equal(a, b Vec3) bool {
	return almostEqual(a.x, b.x) && almostEqual(a.y, b.y) && almostEqual(a.z, b.z)
}

var sampleVectors = []Vec3{
	{0, 0, 0},
	{1, 0, 0},
	{0, -1, 0},
	{1, 2, 3},
	{-4.5, 0.25, 7},
	{0.001, -0.002, 0.003},
	{12, -3, 0.5},
}
