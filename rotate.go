package geom3

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// RotateAroundAxis rotates v by angle radians about the given axis using
// the Rodrigues formula. The axis is normalized internally.
func RotateAroundAxis(v, axis mgl32.Vec3, angle float32) mgl32.Vec3 {
	axis = axis.Normalize()
	cos := math32.Cos(angle)
	sin := math32.Sin(angle)
	return v.Mul(cos).
		Add(axis.Cross(v).Mul(sin)).
		Add(axis.Mul(axis.Dot(v) * (1 - cos)))
}
