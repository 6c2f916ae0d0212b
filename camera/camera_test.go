package camera

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

const eps = 1e-4

func TestNew(t *testing.T) {
	cam := New(mgl32.Vec3{1, 2, 3}, 10)

	if !cam.Target.ApproxEqual(mgl32.Vec3{1, 2, 3}) {
		t.Errorf("expected target (1,2,3), got %v", cam.Target)
	}
	if cam.Distance != 10 {
		t.Errorf("expected distance 10, got %f", cam.Distance)
	}
	if cam.MaxDistance != 40 {
		t.Errorf("expected max distance 40, got %f", cam.MaxDistance)
	}
}

func TestPositionKeepsDistance(t *testing.T) {
	cam := New(mgl32.Vec3{5, 0, -5}, 12)

	for i := 0; i < 8; i++ {
		cam.Orbit(0.7, 0.2)
		d := cam.Position().Sub(cam.Target).Len()
		if math.Abs(float64(d-cam.Distance)) > eps*10 {
			t.Fatalf("step %d: camera %.4f from target, want %.4f", i, d, cam.Distance)
		}
	}
}

func TestPositionAxes(t *testing.T) {
	cam := New(mgl32.Vec3{}, 2)
	cam.Yaw, cam.Pitch = 0, 0

	if got := cam.Position(); !got.ApproxEqualThreshold(mgl32.Vec3{2, 0, 0}, eps) {
		t.Errorf("yaw 0 pitch 0 should sit on +X, got %v", got)
	}
	if got := cam.Forward(); !got.ApproxEqualThreshold(mgl32.Vec3{-1, 0, 0}, eps) {
		t.Errorf("expected forward -X, got %v", got)
	}
	if got := cam.Right(); !got.ApproxEqualThreshold(mgl32.Vec3{0, 0, -1}, eps) {
		t.Errorf("expected right -Z, got %v", got)
	}
}

func TestOrbitClampsPitch(t *testing.T) {
	cam := New(mgl32.Vec3{}, 5)

	cam.Orbit(0, 10)
	if cam.Pitch != maxPitch {
		t.Errorf("expected pitch clamped to %f, got %f", maxPitch, cam.Pitch)
	}
	cam.Orbit(0, -20)
	if cam.Pitch != -maxPitch {
		t.Errorf("expected pitch clamped to %f, got %f", -maxPitch, cam.Pitch)
	}
}

func TestOrbitWrapsYaw(t *testing.T) {
	cam := New(mgl32.Vec3{}, 5)
	cam.Yaw = 0

	cam.Orbit(-0.5, 0)
	want := float32(2*math.Pi - 0.5)
	if math.Abs(float64(cam.Yaw-want)) > eps {
		t.Errorf("expected yaw %f, got %f", want, cam.Yaw)
	}
	cam.Orbit(1, 0)
	if math.Abs(float64(cam.Yaw-0.5)) > eps {
		t.Errorf("expected yaw 0.5, got %f", cam.Yaw)
	}
}

func TestZoomClamps(t *testing.T) {
	cam := New(mgl32.Vec3{}, 10)

	cam.Zoom(0.5)
	if cam.Distance != 5 {
		t.Errorf("expected distance 5, got %f", cam.Distance)
	}
	cam.Zoom(0.001)
	if cam.Distance != cam.MinDistance {
		t.Errorf("expected min distance %f, got %f", cam.MinDistance, cam.Distance)
	}
	cam.Zoom(1000)
	if cam.Distance != cam.MaxDistance {
		t.Errorf("expected max distance %f, got %f", cam.MaxDistance, cam.Distance)
	}

	before := cam.Distance
	cam.Zoom(-1)
	if cam.Distance != before {
		t.Errorf("non-positive zoom should be ignored, distance %f -> %f", before, cam.Distance)
	}
}

func TestFrameCentersBox(t *testing.T) {
	cam := Frame(mgl32.Vec3{-12, 0, -12}, mgl32.Vec3{12, 12, 12})

	if !cam.Target.ApproxEqual(mgl32.Vec3{0, 6, 0}) {
		t.Errorf("expected target at box center, got %v", cam.Target)
	}
	if cam.Distance != 36 {
		t.Errorf("expected distance 36, got %f", cam.Distance)
	}
}

func TestPanMovesTargetOnly(t *testing.T) {
	cam := New(mgl32.Vec3{}, 5)
	cam.Yaw, cam.Pitch = 0, 0

	cam.Pan(2, 1)
	if !cam.Target.ApproxEqualThreshold(mgl32.Vec3{0, 1, -2}, eps) {
		t.Errorf("expected target (0,1,-2), got %v", cam.Target)
	}
	if cam.Distance != 5 {
		t.Errorf("pan should not change distance, got %f", cam.Distance)
	}
}

func TestViewLooksAtTarget(t *testing.T) {
	cam := New(mgl32.Vec3{3, 1, -2}, 8)

	// The target lands on the view axis, distance units in front.
	p := cam.View().Mul4x1(cam.Target.Vec4(1))
	if math.Abs(float64(p.X())) > eps || math.Abs(float64(p.Y())) > eps {
		t.Errorf("target off the view axis: %v", p)
	}
	if math.Abs(float64(p.Z()+cam.Distance)) > 1e-3 {
		t.Errorf("expected target at z=%f in view space, got %f", -cam.Distance, p.Z())
	}
}
