package visualizer

import (
	"math"

	"github.com/EO1026/Vibe-Coding---lotus/internal/lotus"
)

// pointBudget caps how many particles are splatted per frame. Above it the
// clouds are strided and each kept point weighs for the skipped ones.
const pointBudget = 240000

// canvas accumulates additive point light on a pixel grid. Pixels are
// aspect times taller than they are wide.
type canvas struct {
	w, h    int
	aspect  float64
	r, g, b []float64
}

func (c *canvas) resize(w, h int, aspect float64) {
	c.aspect = aspect
	if c.w == w && c.h == h {
		clear(c.r)
		clear(c.g)
		clear(c.b)
		return
	}
	c.w, c.h = w, h
	c.r = make([]float64, w*h)
	c.g = make([]float64, w*h)
	c.b = make([]float64, w*h)
}

// splat projects every particle of scene and adds its colour weighted by
// the object's opacity. It returns the number of points drawn.
func (c *canvas) splat(scene Scene) int {
	total := 0
	for _, o := range scene.Objects {
		total += o.Geometry.Len()
	}
	stride := 1
	if total > pointBudget {
		stride = (total + pointBudget - 1) / pointBudget
	}

	halfW := float64(c.w) / 2
	halfH := float64(c.h) / 2
	// x and y share a unit: one unit of y is halfH pixels, which is
	// halfH*aspect pixel widths.
	xScale := halfH * c.aspect

	view := scene.View
	drawn := 0
	for _, o := range scene.Objects {
		g := o.Geometry
		weight := o.Opacity * float64(stride)
		m := o.Transform.M
		tr := o.Transform.T
		for i := 0; i < g.Len(); i += stride {
			k := i * lotus.Stride
			px, py, pz := float64(g.Positions[k]), float64(g.Positions[k+1]), float64(g.Positions[k+2])
			world := tr
			world.X += m[0][0]*px + m[0][1]*py + m[0][2]*pz
			world.Y += m[1][0]*px + m[1][1]*py + m[1][2]*pz
			world.Z += m[2][0]*px + m[2][1]*py + m[2][2]*pz

			x, y, _, ok := view.Project(world)
			if !ok {
				continue
			}
			col := int(halfW + x*xScale)
			row := int(halfH - y*halfH)
			if col < 0 || col >= c.w || row < 0 || row >= c.h {
				continue
			}
			idx := row*c.w + col
			c.r[idx] += float64(g.Colors[k]) * weight
			c.g[idx] += float64(g.Colors[k+1]) * weight
			c.b[idx] += float64(g.Colors[k+2]) * weight
			drawn++
		}
	}
	return drawn
}

// exposure picks a tone-mapping gain so a frame of n points over the grid
// neither vanishes nor burns out.
func (c *canvas) exposure(n int) float64 {
	if n == 0 {
		return 1
	}
	e := 1.5 * float64(c.w*c.h) / float64(n)
	return math.Min(2, math.Max(0.02, e))
}

// light returns the tone-mapped colour at pixel idx.
func (c *canvas) light(idx int, exposure float64) lotus.RGB {
	return lotus.RGB{
		R: toneMap(c.r[idx], exposure),
		G: toneMap(c.g[idx], exposure),
		B: toneMap(c.b[idx], exposure),
	}
}

// toneMap compresses accumulated light into [0,1).
func toneMap(v, exposure float64) float64 {
	return 1 - math.Exp(-v*exposure)
}

func luminance(c lotus.RGB) float64 {
	return 0.2126*c.R + 0.7152*c.G + 0.0722*c.B
}

func rgb(r, g, b float64) lotus.RGB {
	return lotus.RGB{R: r, G: g, B: b}
}
