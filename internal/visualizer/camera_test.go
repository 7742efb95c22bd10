package visualizer

import (
	"math"
	"testing"

	"github.com/golang/geo/r3"
)

func TestProjectionCentresTarget(t *testing.T) {
	p := NewCamera(30).Projection()
	x, y, depth, ok := p.Project(r3.Vector{})
	if !ok {
		t.Fatal("expected target to be in front of the camera")
	}
	if math.Abs(x) > 1e-9 || math.Abs(y) > 1e-9 {
		t.Fatalf("target projects to (%v,%v), want centre", x, y)
	}
	if math.Abs(depth-DefaultDistance) > 1e-9 {
		t.Fatalf("depth = %v, want %v", depth, DefaultDistance)
	}
}

func TestProjectionAxes(t *testing.T) {
	p := NewCamera(30).Projection()
	if x, _, _, _ := p.Project(r3.Vector{X: 1}); x <= 0 {
		t.Fatalf("+X projects to x=%v, want right of centre", x)
	}
	if _, y, _, _ := p.Project(r3.Vector{Y: 1}); y <= 0 {
		t.Fatalf("+Y projects to y=%v, want above centre", y)
	}
	if _, _, _, ok := p.Project(r3.Vector{Y: 4, Z: 20}); ok {
		t.Fatal("expected point behind the eye to be rejected")
	}
}

func TestProjectionFieldOfView(t *testing.T) {
	// A point on the top edge of a 45° frustum lands at y = 1.
	p := NewProjection(r3.Vector{}, 0, 0, 10, math.Pi/4)
	_, y, _, ok := p.Project(r3.Vector{Y: 10 * math.Tan(math.Pi/8)})
	if !ok || math.Abs(y-1) > 1e-9 {
		t.Fatalf("edge point y = %v (ok=%v), want 1", y, ok)
	}
}

func TestCameraZoomClamps(t *testing.T) {
	c := NewCamera(30)
	c.Zoom(-100)
	for range 300 {
		c.Step()
	}
	if math.Abs(c.Distance()-MinDistance) > 1e-3 {
		t.Fatalf("Distance = %v, want settled at %v", c.Distance(), MinDistance)
	}
	c.Zoom(100)
	for range 300 {
		c.Step()
	}
	if math.Abs(c.Distance()-MaxDistance) > 1e-3 {
		t.Fatalf("Distance = %v, want settled at %v", c.Distance(), MaxDistance)
	}
}

func TestCameraOrbitEases(t *testing.T) {
	c := NewCamera(30)
	c.SetAutoRotate(false)
	c.Orbit(1)
	c.Step()
	if c.Yaw() <= 0 || c.Yaw() >= 1 {
		t.Fatalf("yaw after one step = %v, want between 0 and 1", c.Yaw())
	}
	for range 300 {
		c.Step()
	}
	if math.Abs(c.Yaw()-1) > 1e-3 {
		t.Fatalf("yaw = %v, want settled at 1", c.Yaw())
	}
}

func TestCameraAutoRotate(t *testing.T) {
	c := NewCamera(30)
	if !c.AutoRotate() {
		t.Fatal("expected auto-rotate on by default")
	}
	for range 30 {
		c.Step()
	}
	if c.Yaw() <= 0 {
		t.Fatalf("yaw = %v, want idle orbit to advance", c.Yaw())
	}

	c.SetAutoRotate(false)
	for range 600 {
		c.Step()
	}
	settled := c.Yaw()
	for range 30 {
		c.Step()
	}
	if math.Abs(c.Yaw()-settled) > 1e-6 {
		t.Fatalf("yaw moved from %v to %v with auto-rotate off", settled, c.Yaw())
	}
}
