package geom3

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

func TestDistanceOnSphereIdentical(t *testing.T) {
	v := mgl32.Vec3{0, 0, 1}
	if got := DistanceOnSphere(v, v, 5); got != 0 {
		t.Fatalf("got %v want 0", got)
	}
}

func TestDistanceOnSphereAntipodal(t *testing.T) {
	v := mgl32.Vec3{0, 1, 0}
	want := math32.Pi * 2
	if got := DistanceOnSphere(v, v.Mul(-1), 2); got != want {
		t.Fatalf("got %v want %v", got, want)
	}
}

func TestDistanceOnSphereOrthogonal(t *testing.T) {
	v := mgl32.Vec3{1, 0, 0}
	w := mgl32.Vec3{0, 1, 0}
	got := DistanceOnSphere(v, w, 1)
	if !mgl32.FloatEqualThreshold(got, math32.Sqrt2, 1e-6) {
		t.Fatalf("got %v want %v", got, math32.Sqrt2)
	}
}

func TestDistanceOnSphereScalesWithRadius(t *testing.T) {
	v := mgl32.Vec3{1, 0, 0}
	w := mgl32.Vec3{0, 0, 1}
	one := DistanceOnSphere(v, w, 1)
	ten := DistanceOnSphere(v, w, 10)
	if !mgl32.FloatEqualThreshold(ten, 10*one, 1e-4) {
		t.Fatalf("r=10 got %v want %v", ten, 10*one)
	}
}
