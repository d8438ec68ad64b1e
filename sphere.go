package geom3

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// DistanceOnSphere returns the great-circle distance between two points on
// a sphere of the given radius. Both from and to must already be unit
// direction vectors from the sphere's center; they are not normalized here.
//
// Identical and exactly antipodal inputs are special-cased so the result
// is exact at both singularities of the chord formula.
func DistanceOnSphere(from, to mgl32.Vec3, radius float32) float32 {
	if from == to {
		return 0
	}
	if from == to.Mul(-1) {
		return math32.Pi * radius
	}
	return math32.Sqrt2 * radius * math32.Sqrt(1-from.Dot(to))
}
