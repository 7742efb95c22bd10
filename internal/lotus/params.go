package lotus

import "math"

// Parameter ranges accepted from the UI. Values outside are clamped.
const (
	MinSpeed      = 0.0
	MaxSpeed      = 1.0
	MinDensity    = 0.1
	MaxDensity    = 2.5
	MinSaturation = 0.0
	MaxSaturation = 1.0
)

// Parameters is the per-frame control surface owned by the UI.
type Parameters struct {
	Paused     bool
	Speed      float64
	Density    float64
	Saturation float64
}

// DefaultParameters returns a running flower at full speed, density and saturation.
func DefaultParameters() Parameters {
	return Parameters{
		Speed:      1,
		Density:    1,
		Saturation: 1,
	}
}

// Clamp returns p with every scalar forced into its documented range.
// NaN values fall back to the defaults.
func (p Parameters) Clamp() Parameters {
	def := DefaultParameters()
	p.Speed = clampOr(p.Speed, MinSpeed, MaxSpeed, def.Speed)
	p.Density = clampOr(p.Density, MinDensity, MaxDensity, def.Density)
	p.Saturation = clampOr(p.Saturation, MinSaturation, MaxSaturation, def.Saturation)
	return p
}

// ParticleCount returns floor(base*density/divisor), never less than 1.
func ParticleCount(base, density, divisor float64) int {
	if divisor <= 0 || math.IsNaN(divisor) {
		divisor = 1
	}
	density = clampOr(density, MinDensity, MaxDensity, 1)
	n := math.Floor(base * density / divisor)
	if math.IsNaN(n) || n < 1 {
		return 1
	}
	return int(n)
}

func clampOr(v, lo, hi, fallback float64) float64 {
	if math.IsNaN(v) {
		return fallback
	}
	return clamp(v, lo, hi)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func clamp01(v float64) float64 {
	return clamp(v, 0, 1)
}

func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}
