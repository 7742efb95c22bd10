package lotus

import (
	"math"

	"github.com/golang/geo/r3"
)

// Centre cluster constants.
const (
	CoreBaseParticles = 6000
	CoreOpacity       = 0.35

	coreRadius   = 0.5
	coreSquash   = 0.4
	coreRaise    = 0.1
	coreDimMin   = 0.6
	coreDimRange = 0.4
	coreSpin     = 0.002 // radians per update
)

// GenerateCore samples the pistil: a squashed ball of count particles
// tinted with the palette core colour.
func GenerateCore(rng Source, count int, palette Palette) *Geometry {
	if count < 1 {
		count = 1
	}
	g := newGeometry(count, tintCore, palette)
	for i := range count {
		r := math.Sqrt(rng.Float64()) * coreRadius
		theta := rng.Float64() * 2 * math.Pi
		phi := rng.Float64() * math.Pi

		sinPhi, cosPhi := math.Sincos(phi)
		sinTheta, cosTheta := math.Sincos(theta)
		g.setPosition(i, r3.Vector{
			X: r * sinPhi * cosTheta,
			Y: r*cosPhi*coreSquash + coreRaise,
			Z: r * sinPhi * sinTheta,
		})
		g.jitter[i] = float32(coreDimMin + rng.Float64()*coreDimRange)
		g.shade(i)
	}
	return g
}

// Core is the slowly spinning centre cluster.
type Core struct {
	Geometry *Geometry
	Rotation float64
}

// Update advances the spin by one frame unless paused.
func (c *Core) Update(paused bool) {
	if paused {
		return
	}
	c.Rotation = math.Mod(c.Rotation+coreSpin, 2*math.Pi)
}

// World returns the local-to-flower transform of the cluster.
func (c *Core) World() Affine {
	return Transform{Rotation: r3.Vector{Y: c.Rotation}}.Affine()
}
