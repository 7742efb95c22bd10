package lotus

import (
	"math"

	"github.com/golang/geo/r3"
)

// Whole-flower float.
const (
	BaseParticles = 160000

	floatRate      = 2.0
	floatAmplitude = 0.2
	floatOffset    = -0.5
)

// Blueprint is everything needed to build a flower apart from the live parameters.
type Blueprint struct {
	BaseParticles float64
	CoreParticles float64
	Palette       Palette
	Layers        []LayerSpec
}

// DefaultBlueprint returns the three-ring lotus.
func DefaultBlueprint() Blueprint {
	return Blueprint{
		BaseParticles: BaseParticles,
		CoreParticles: CoreBaseParticles,
		Palette:       DefaultPalette(),
		Layers:        DefaultLayers(),
	}
}

// ProgressFunc receives the number of built clusters out of total.
type ProgressFunc func(done, total int)

// Options configures New.
type Options struct {
	Blueprint Blueprint
	Params    Parameters
	Source    Source
	Clock     Clock
	Progress  ProgressFunc
}

// Change reports what a parameter update requires.
type Change uint8

const (
	// ChangeRecolor: the palette was re-derived and buffers recoloured in place.
	ChangeRecolor Change = 1 << iota
	// ChangeDensity: geometry must be rebuilt with New to honour the new density.
	ChangeDensity

	ChangeNone Change = 0
)

// Object is one drawable cluster for the renderer: static buffers plus the
// transform and opacity of the current frame.
type Object struct {
	Geometry  *Geometry
	Transform Affine
	Opacity   float64
}

// Flower assembles the rings and the centre cluster and drives their animation.
type Flower struct {
	blueprint Blueprint
	params    Parameters
	density   float64
	palette   Palette
	clock     Clock

	Layers []*Layer
	Core   *Core

	positionY float64
	elapsed   float64
	objects   []Object
}

// New samples every cluster of the flower. Progress, if set, is called after
// each petal and after the centre cluster.
func New(opts Options) *Flower {
	bp := opts.Blueprint
	if len(bp.Layers) == 0 {
		bp.Layers = DefaultLayers()
	}
	if bp.BaseParticles <= 0 {
		bp.BaseParticles = BaseParticles
	}
	if bp.CoreParticles <= 0 {
		bp.CoreParticles = CoreBaseParticles
	}
	rng := opts.Source
	if rng == nil {
		rng = NewSource(0)
	}
	clock := opts.Clock
	if clock == nil {
		clock = NewWallClock()
	}
	params := opts.Params.Clamp()

	f := &Flower{
		blueprint: bp,
		params:    params,
		density:   params.Density,
		palette:   DerivePalette(bp.Palette, params.Saturation),
		clock:     clock,
	}

	total := 1
	for _, spec := range bp.Layers {
		total += max(spec.PetalCount, 1)
	}
	done := 0
	report := func() {
		done++
		if opts.Progress != nil {
			opts.Progress(done, total)
		}
	}

	for i, spec := range bp.Layers {
		cfg := spec.Config(i, bp.BaseParticles, f.density)
		f.Layers = append(f.Layers, newLayer(rng, cfg, f.palette, report))
	}
	f.Core = &Core{Geometry: GenerateCore(rng, ParticleCount(bp.CoreParticles, f.density, 1), f.palette)}
	report()

	f.positionY = floatOffset
	f.update(f.clock.Elapsed().Seconds(), false)
	return f
}

// Blueprint returns the blueprint the flower was built from.
func (f *Flower) Blueprint() Blueprint {
	return f.blueprint
}

// Params returns the live parameters.
func (f *Flower) Params() Parameters {
	return f.params
}

// Palette returns the derived palette in use.
func (f *Flower) Palette() Palette {
	return f.palette
}

// Clock returns the shared clock.
func (f *Flower) Clock() Clock {
	return f.clock
}

// Density returns the density the geometry was sampled at.
func (f *Flower) Density() float64 {
	return f.density
}

// PositionY returns the current float offset of the whole flower.
func (f *Flower) PositionY() float64 {
	return f.positionY
}

// Elapsed returns the clock reading of the last update in seconds.
func (f *Flower) Elapsed() float64 {
	return f.elapsed
}

// SetParameters installs p (clamped). A saturation change recolours the
// buffers immediately; a density change is only reported.
func (f *Flower) SetParameters(p Parameters) Change {
	p = p.Clamp()
	change := ChangeNone
	if p.Saturation != f.params.Saturation {
		f.palette = DerivePalette(f.blueprint.Palette, p.Saturation)
		for _, l := range f.Layers {
			l.Recolor(f.palette)
		}
		f.Core.Geometry.Recolor(f.palette)
		change |= ChangeRecolor
	}
	if p.Density != f.density {
		change |= ChangeDensity
	}
	f.params = p
	return change
}

// Adopt carries the visible state of old over to a flower rebuilt from the
// same blueprint: the core keeps its spin and, while paused, every petal
// keeps its frozen pose and the flower its float. Rings whose petal count
// differs from old keep their own poses.
func (f *Flower) Adopt(old *Flower) {
	if old == nil {
		return
	}
	f.Core.Rotation = old.Core.Rotation
	if !f.params.Paused {
		return
	}
	f.positionY = old.positionY
	for i, l := range f.Layers {
		if i >= len(old.Layers) || len(old.Layers[i].Petals) != len(l.Petals) {
			continue
		}
		for j, p := range l.Petals {
			p.animator.hold(old.Layers[i].Petals[j].Pose())
		}
	}
}

// Tick reads the clock and updates every pose.
func (f *Flower) Tick() {
	f.Update(f.clock.Elapsed().Seconds())
}

// Update re-derives every pose for elapsed seconds. When paused nothing moves.
func (f *Flower) Update(elapsed float64) {
	f.update(elapsed, f.params.Paused)
}

func (f *Flower) update(elapsed float64, paused bool) {
	f.elapsed = elapsed
	for _, l := range f.Layers {
		l.Update(elapsed, f.params.Speed, paused)
	}
	if paused {
		return
	}
	f.Core.Update(false)

	t := SceneTime(elapsed)
	if f.params.Speed <= 0 {
		t = 0
	}
	f.positionY = math.Sin(t*floatRate)*floatAmplitude + floatOffset
}

// World returns the transform of the whole flower.
func (f *Flower) World() Affine {
	return Transform{Position: r3.Vector{Y: f.positionY}}.Affine()
}

// Objects returns every cluster with its world transform for this frame.
// The returned slice is reused between calls.
func (f *Flower) Objects() []Object {
	f.objects = f.objects[:0]
	world := f.World()
	for _, l := range f.Layers {
		for _, p := range l.Petals {
			f.objects = append(f.objects, Object{
				Geometry:  p.Geometry,
				Transform: p.World().Then(world),
				Opacity:   p.Pose().Opacity,
			})
		}
	}
	f.objects = append(f.objects, Object{
		Geometry:  f.Core.Geometry,
		Transform: f.Core.World().Then(world),
		Opacity:   CoreOpacity,
	})
	return f.objects
}

// Particles returns the total particle count.
func (f *Flower) Particles() int {
	n := f.Core.Geometry.Len()
	for _, l := range f.Layers {
		n += l.Particles()
	}
	return n
}
