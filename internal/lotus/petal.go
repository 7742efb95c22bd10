package lotus

import (
	"math"

	"github.com/golang/geo/r3"
)

// Petal silhouette constants.
const (
	petalTaper   = 0.5 // width loss toward the tip
	petalCurlV   = 0.5 // curl across the width
	petalCurlU   = 1.5 // curl along the length
	sparkleMin   = 0.8
	sparkleRange = 0.4
)

// GeneratePetal samples count particles of a petal scaled by scale and
// coloured with palette. Every sample is kept, so density is uneven by
// construction: it bunches up toward the base and the tip.
func GeneratePetal(rng Source, count int, scale r3.Vector, palette Palette) *Geometry {
	if count < 1 {
		count = 1
	}
	g := newGeometry(count, tintGradient, palette)
	for i := range count {
		u := rng.Float64()
		v := rng.Float64()*2 - 1

		g.setPosition(i, petalPoint(u, v, scale))
		g.coord[i] = float32(u)
		g.jitter[i] = float32(sparkleMin + rng.Float64()*sparkleRange)
		g.shade(i)
	}
	return g
}

// petalPoint maps length progress u ∈ [0,1] and width offset v ∈ [-1,1]
// onto the petal surface.
func petalPoint(u, v float64, scale r3.Vector) r3.Vector {
	width := PetalWidth(u)
	return r3.Vector{
		X: v * width * scale.X,
		Y: u * scale.Y,
		Z: (v*v*petalCurlV + u*u*petalCurlU) * scale.Z,
	}
}

// PetalWidth is the half-width envelope at length progress u: zero at the
// base, widest before the middle, back to zero at the tip.
func PetalWidth(u float64) float64 {
	return math.Sin(u*math.Pi) * (1 - u*petalTaper)
}
