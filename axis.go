package geom3

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Axis selects one component of a vector.
type Axis int

const (
	AxisX Axis = iota
	AxisY
	AxisZ
)

// FlattenVector returns a copy of v with the component selected by axis
// replaced by flatValue. The other two components are preserved exactly.
func FlattenVector(v mgl32.Vec3, axis Axis, flatValue float32) mgl32.Vec3 {
	switch axis {
	case AxisX:
		return mgl32.Vec3{flatValue, v.Y(), v.Z()}
	case AxisY:
		return mgl32.Vec3{v.X(), flatValue, v.Z()}
	case AxisZ:
		return mgl32.Vec3{v.X(), v.Y(), flatValue}
	}
	return v
}
