package lotus

import "math"

// Animation constants.
const (
	// TimeScale converts wall-clock seconds into scene time.
	TimeScale = 0.05

	layerPhase    = 0.5
	closedTiltMin = 0.2
	closedTiltPer = 0.4
	openTiltMin   = 1.2
	openTiltPer   = 0.1
	minTiltSpan   = 0.1
	bloomLift     = 0.1
	bloomStretch  = 0.08

	baseOpacity    = 0.4
	pulseRate      = 0.5
	pulseAmplitude = 0.1
)

// Pose is the per-frame transform of one petal, relative to its placement.
type Pose struct {
	RotationX float64
	PositionY float64
	Scale     float64
	Opacity   float64
}

// SceneTime converts elapsed wall-clock seconds to scene time.
func SceneTime(elapsed float64) float64 {
	return elapsed * TimeScale
}

// BloomCycle returns the open fraction in [0,1] of layer at scene time t.
// Each layer lags the one inside it by a fixed phase.
func BloomCycle(t, speed float64, layer int) float64 {
	offset := float64(max(layer, 0)) * layerPhase
	return (math.Sin(t*speed-offset) + 1) / 2
}

// ClosedTilt is the petal tilt of layer when fully closed.
func ClosedTilt(layer int) float64 {
	return closedTiltMin + float64(max(layer, 0))*closedTiltPer
}

// OpenTilt is the petal tilt of layer when fully open. It always exceeds ClosedTilt.
func OpenTilt(layer int) float64 {
	return math.Max(openTiltMin+float64(max(layer, 0))*openTiltPer, ClosedTilt(layer)+minTiltSpan)
}

// PoseAt evaluates the pose of a petal in layer at elapsed seconds.
// The bloom follows speed; the opacity shimmer does not.
func PoseAt(elapsed, speed float64, layer int) Pose {
	bloom := BloomCycle(SceneTime(elapsed), speed, layer)
	return Pose{
		RotationX: lerp(ClosedTilt(layer), OpenTilt(layer), bloom),
		PositionY: bloom * bloomLift,
		Scale:     1 + bloom*bloomStretch,
		Opacity:   baseOpacity + math.Sin(elapsed*pulseRate)*pulseAmplitude,
	}
}

// Animator holds the last pose shown for a petal so pausing can freeze it.
type Animator struct {
	layer int
	pose  Pose
}

// NewAnimator returns an animator for layer resting at its time-zero pose.
func NewAnimator(layer int) *Animator {
	return &Animator{layer: layer, pose: PoseAt(0, 0, layer)}
}

// Pose re-derives the pose from the clock unless paused, in which case the
// last pose is returned as is.
func (a *Animator) Pose(elapsed, speed float64, paused bool) Pose {
	if paused {
		return a.pose
	}
	a.pose = PoseAt(elapsed, speed, a.layer)
	return a.pose
}

// Current returns the last pose without advancing.
func (a *Animator) Current() Pose {
	return a.pose
}

// hold pins the animator at p until the next unpaused update.
func (a *Animator) hold(p Pose) {
	a.pose = p
}
