package lotus

import (
	"math/rand/v2"

	"github.com/golang/geo/r3"
)

// Source is the random stream geometry is sampled from. *rand.Rand satisfies it.
type Source interface {
	Float64() float64
}

// NewSource returns a seeded PCG source.
func NewSource(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// Stride is the number of float32 values per particle in each buffer.
const Stride = 3

type tintMode uint8

const (
	// tintGradient colours a particle with Palette.Mix at its gradient coordinate.
	tintGradient tintMode = iota
	// tintCore colours a particle with the palette core colour.
	tintCore
)

// Geometry is an immutable point cloud: flat position and colour buffers
// with Stride floats per particle.
type Geometry struct {
	Positions []float32
	Colors    []float32

	// gradient coordinate and brightness jitter per particle, kept so the
	// colours can be rebuilt for a new palette without resampling.
	coord   []float32
	jitter  []float32
	tint    tintMode
	palette Palette
}

func newGeometry(n int, tint tintMode, palette Palette) *Geometry {
	return &Geometry{
		Positions: make([]float32, n*Stride),
		Colors:    make([]float32, n*Stride),
		coord:     make([]float32, n),
		jitter:    make([]float32, n),
		tint:      tint,
		palette:   palette,
	}
}

// Len returns the particle count.
func (g *Geometry) Len() int {
	return len(g.Positions) / Stride
}

// Position returns the local position of particle i.
func (g *Geometry) Position(i int) r3.Vector {
	o := i * Stride
	return r3.Vector{X: float64(g.Positions[o]), Y: float64(g.Positions[o+1]), Z: float64(g.Positions[o+2])}
}

// Color returns the colour of particle i.
func (g *Geometry) Color(i int) RGB {
	o := i * Stride
	return RGB{R: float64(g.Colors[o]), G: float64(g.Colors[o+1]), B: float64(g.Colors[o+2])}
}

// Palette returns the palette the colours were built from.
func (g *Geometry) Palette() Palette {
	return g.palette
}

func (g *Geometry) setPosition(i int, v r3.Vector) {
	o := i * Stride
	g.Positions[o] = float32(v.X)
	g.Positions[o+1] = float32(v.Y)
	g.Positions[o+2] = float32(v.Z)
}

func (g *Geometry) shade(i int) {
	var base RGB
	switch g.tint {
	case tintCore:
		base = g.palette.Core
	default:
		base = g.palette.Mix(float64(g.coord[i]))
	}
	c := base.Scale(float64(g.jitter[i]))
	o := i * Stride
	g.Colors[o] = float32(c.R)
	g.Colors[o+1] = float32(c.G)
	g.Colors[o+2] = float32(c.B)
}

// Recolor rebuilds every colour from palette. Positions are untouched.
func (g *Geometry) Recolor(palette Palette) {
	if g.palette == palette {
		return
	}
	g.palette = palette
	for i := range g.Len() {
		g.shade(i)
	}
}
