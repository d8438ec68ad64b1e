package geom3

import (
	"github.com/go-gl/mathgl/mgl32"
)

// ProjectOnLine projects project onto the line through fromPoint and
// toPoint and clamps the result onto the closed segment between them. A
// degenerate segment (fromPoint == toPoint) yields fromPoint.
func ProjectOnLine(fromPoint, toPoint, project mgl32.Vec3) mgl32.Vec3 {
	dir := toPoint.Sub(fromPoint)
	linePoint := fromPoint.Add(projectOnVector(project.Sub(fromPoint), dir))

	offset := linePoint.Sub(fromPoint)
	if offset.Dot(dir) <= 0 {
		return fromPoint
	}
	if offset.LenSqr() <= dir.LenSqr() {
		return linePoint
	}
	return toPoint
}

// InverseLerp returns the scalar t for which the projection of value onto
// the line a->b equals a + t*(b-a). The result is not clamped to [0,1].
//
// Precondition: a != b. A zero-length direction divides by zero and the
// NaN/Inf result is propagated to the caller unchecked.
func InverseLerp(a, b, value mgl32.Vec3) float32 {
	dir := b.Sub(a)
	return value.Sub(a).Dot(dir) / dir.Dot(dir)
}
