package geom3

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

const (
	// parallelCutoff rejects line pairs whose unit directions have a dot
	// product above this magnitude. Near-parallel lines make the 2x2
	// closest-point solve ill-conditioned, so they are treated as having
	// no intersection rather than handled as a special case.
	parallelCutoff = 0.999

	// segmentMargin is how far inside each segment the closest-approach
	// point must fall, measured along the segment in world units.
	segmentMargin = 0.0001
)

// Intersection describes the closest approach between two segments.
// PointA lies on segment A, PointB on segment B; PercentA and PercentB are
// the signed parametric positions of those points along their segments
// (0 at the start point, 1 at the end point, not clamped).
type Intersection struct {
	PointA   mgl32.Vec3
	PercentA float32
	PointB   mgl32.Vec3
	PercentB float32
}

// LineLineIntersect finds the closest approach between segments A and B
// and reports whether it counts as an intersection: the closest points
// must lie inside both segments by at least segmentMargin and be within
// tolerance of each other.
//
// Degenerate (near zero-length) segments and parallel or near-parallel
// lines report no intersection. On the margin and tolerance rejection
// paths the returned Intersection still holds the computed geometry, so
// callers can inspect the near miss.
func LineLineIntersect(startA, endA, startB, endB mgl32.Vec3, tolerance float32) (Intersection, bool) {
	dirA := endA.Sub(startA)
	dirB := endB.Sub(startB)
	lengthA := dirA.Len()
	lengthB := dirB.Len()
	if approximately(lengthA, 0) || approximately(lengthB, 0) {
		return Intersection{}, false
	}
	dirA = dirA.Mul(1 / lengthA)
	dirB = dirB.Mul(1 / lengthB)

	u := dirA.Dot(dirB)
	if math32.Abs(u) > parallelCutoff {
		return Intersection{}, false
	}

	diff := startB.Sub(startA)
	t1 := diff.Dot(dirA)
	t2 := diff.Dot(dirB)

	// Signed distances along each line to the feet of the common
	// perpendicular.
	u2 := u * u
	d1 := (t1 - u*t2) / (1 - u2)
	d2 := (t2 - u*t1) / (u2 - 1)

	hit := Intersection{
		PointA:   startA.Add(dirA.Mul(d1)),
		PercentA: d1 / lengthA,
		PointB:   startB.Add(dirB.Mul(d2)),
		PercentB: d2 / lengthB,
	}

	if d1 < segmentMargin || d1 > lengthA-segmentMargin {
		return hit, false
	}
	if d2 < segmentMargin || d2 > lengthB-segmentMargin {
		return hit, false
	}
	if hit.PointA.Sub(hit.PointB).LenSqr() > tolerance*tolerance {
		return hit, false
	}
	return hit, true
}
