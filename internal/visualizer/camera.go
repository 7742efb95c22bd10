package visualizer

import (
	"math"

	"github.com/golang/geo/r3"
)

// Camera defaults: eye at (0,4,12) looking at the origin with a 45° lens.
const (
	DefaultDistance = 12.649110640673518 // |(0,4,12)|
	MinDistance     = 5.0
	MaxDistance     = 25.0

	// AutoRotateRate is one full orbit every 200 seconds.
	AutoRotateRate = 2 * math.Pi / 200

	defaultPitch = 0.32175055439664224 // atan2(4, 12)
	defaultFOV   = 45 * math.Pi / 180
	nearPlane    = 0.1
)

var worldUp = r3.Vector{Y: 1}

// Camera is an orbit camera whose yaw and distance ease toward their
// targets on a spring.
type Camera struct {
	motion springField
	fps    int

	targetYaw  float64
	targetDist float64
	pitch      float64
	fov        float64
	target     r3.Vector
	autoRotate bool
}

const (
	axisYaw = iota
	axisDistance
)

// NewCamera returns a camera stepped fps times a second.
func NewCamera(fps int) *Camera {
	if fps < 1 {
		fps = 30
	}
	c := &Camera{
		motion:     newSpringField(fps, 6.0, 1.0),
		fps:        fps,
		targetDist: DefaultDistance,
		pitch:      defaultPitch,
		fov:        defaultFOV,
		autoRotate: true,
	}
	c.motion.resize(2)
	c.motion.set(axisDistance, DefaultDistance)
	return c
}

// Orbit turns the target yaw by delta radians.
func (c *Camera) Orbit(delta float64) {
	c.targetYaw += delta
}

// Zoom moves the target distance by delta, within [MinDistance, MaxDistance].
func (c *Camera) Zoom(delta float64) {
	c.targetDist = math.Min(MaxDistance, math.Max(MinDistance, c.targetDist+delta))
}

// SetAutoRotate toggles the slow idle orbit.
func (c *Camera) SetAutoRotate(on bool) {
	c.autoRotate = on
}

// AutoRotate reports whether the idle orbit is on.
func (c *Camera) AutoRotate() bool {
	return c.autoRotate
}

// Distance returns the current (smoothed) eye distance.
func (c *Camera) Distance() float64 {
	return c.motion.pos[axisDistance]
}

// Yaw returns the current (smoothed) yaw.
func (c *Camera) Yaw() float64 {
	return c.motion.pos[axisYaw]
}

// Step advances the springs by one frame.
func (c *Camera) Step() {
	if c.autoRotate {
		c.targetYaw += AutoRotateRate / float64(c.fps)
	}
	c.motion.step(axisYaw, c.targetYaw)
	c.motion.step(axisDistance, c.targetDist)
}

// Projection returns the current view.
func (c *Camera) Projection() Projection {
	return NewProjection(c.target, c.Yaw(), c.pitch, c.Distance(), c.fov)
}

// Projection maps world points to normalised screen coordinates: y in
// [-1,1] spans the viewport height, x uses the same unit.
type Projection struct {
	Eye     r3.Vector
	right   r3.Vector
	up      r3.Vector
	forward r3.Vector
	focal   float64
}

// NewProjection builds a view of target from an orbit position.
func NewProjection(target r3.Vector, yaw, pitch, dist, fov float64) Projection {
	sinYaw, cosYaw := math.Sincos(yaw)
	sinPitch, cosPitch := math.Sincos(pitch)
	eye := target.Add(r3.Vector{
		X: sinYaw * cosPitch * dist,
		Y: sinPitch * dist,
		Z: cosYaw * cosPitch * dist,
	})
	forward := target.Sub(eye).Normalize()
	right := forward.Cross(worldUp).Normalize()
	return Projection{
		Eye:     eye,
		right:   right,
		up:      right.Cross(forward),
		forward: forward,
		focal:   1 / math.Tan(fov/2),
	}
}

// Project returns the screen position and depth of p. ok is false for
// points behind the near plane.
func (p Projection) Project(v r3.Vector) (x, y, depth float64, ok bool) {
	d := v.Sub(p.Eye)
	depth = d.Dot(p.forward)
	if depth < nearPlane {
		return 0, 0, depth, false
	}
	return d.Dot(p.right) * p.focal / depth, d.Dot(p.up) * p.focal / depth, depth, true
}
