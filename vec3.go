// Package geom3 provides 3D segment-geometry primitives: point-to-segment
// projection, inverse lerp along a line, great-circle distance, axis
// flattening and a tolerance-bounded segment-segment intersection test.
//
// All functions are pure and operate by value on mgl32.Vec3; they are safe
// for concurrent use.
package geom3

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// lengthEps is the absolute tolerance for treating a segment length as
// zero in LineLineIntersect. It absorbs float32 noise in the endpoint
// subtraction and Len without swallowing short valid segments.
const lengthEps = 1e-6

func approximately(a, b float32) bool {
	return math32.Abs(a-b) < lengthEps
}

// projectOnVector returns the vector projection of v onto axis, or the
// zero vector when axis is exactly zero-length. Short nonzero axes are
// valid and project normally.
func projectOnVector(v, axis mgl32.Vec3) mgl32.Vec3 {
	sq := axis.LenSqr()
	if sq == 0 {
		return mgl32.Vec3{}
	}
	return axis.Mul(v.Dot(axis) / sq)
}
