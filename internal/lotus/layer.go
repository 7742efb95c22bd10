package lotus

import (
	"math"

	"github.com/golang/geo/r3"
)

// LayerDrop lowers each successive ring so the layers stack.
const LayerDrop = 0.05

// LayerSpec describes a ring independently of density.
type LayerSpec struct {
	PetalCount int
	Radius     float64
	Scale      [3]float64
	Divisor    float64
}

// DefaultLayers are the inner, middle and outer rings.
func DefaultLayers() []LayerSpec {
	return []LayerSpec{
		{PetalCount: 5, Radius: 0.4, Scale: [3]float64{0.8, 1.4, 0.4}, Divisor: 25},
		{PetalCount: 8, Radius: 0.8, Scale: [3]float64{1.5, 2.5, 0.6}, Divisor: 20},
		{PetalCount: 10, Radius: 1.2, Scale: [3]float64{2.2, 3.5, 0.8}, Divisor: 15},
	}
}

// Config resolves the ring at index at the given base count and density.
func (s LayerSpec) Config(index int, base, density float64) LayerConfig {
	return LayerConfig{
		PetalCount:        max(s.PetalCount, 1),
		Radius:            s.Radius,
		Scale:             r3.Vector{X: s.Scale[0], Y: s.Scale[1], Z: s.Scale[2]},
		ParticlesPerPetal: ParticleCount(base, density, s.Divisor),
		Index:             index,
	}
}

// LayerConfig is a fully resolved ring.
type LayerConfig struct {
	PetalCount        int
	Radius            float64
	Scale             r3.Vector
	ParticlesPerPetal int
	Index             int
}

// Petal is one particle cluster placed on a ring.
type Petal struct {
	Angle    float64
	Geometry *Geometry

	group    Affine
	animator *Animator
}

// Pose returns the petal's current pose.
func (p *Petal) Pose() Pose {
	return p.animator.Current()
}

// Placement returns the ring transform of the petal, without its pose.
func (p *Petal) Placement() Affine {
	return p.group
}

// World returns the local-to-layer transform including the current pose.
func (p *Petal) World() Affine {
	pose := p.animator.Current()
	local := Transform{
		Rotation: r3.Vector{X: pose.RotationX},
		Position: r3.Vector{Y: pose.PositionY},
		Scale:    pose.Scale,
	}
	return local.Affine().Then(p.Placement())
}

// Layer is one ring of petals.
type Layer struct {
	Config LayerConfig
	Petals []*Petal
}

// NewLayer samples every petal of cfg.
func NewLayer(rng Source, cfg LayerConfig, palette Palette) *Layer {
	return newLayer(rng, cfg, palette, nil)
}

func newLayer(rng Source, cfg LayerConfig, palette Palette, built func()) *Layer {
	cfg.PetalCount = max(cfg.PetalCount, 1)
	l := &Layer{Config: cfg, Petals: make([]*Petal, cfg.PetalCount)}
	for i := range cfg.PetalCount {
		l.Petals[i] = newPetal(rng, cfg, i, palette)
		if built != nil {
			built()
		}
	}
	return l
}

func newPetal(rng Source, cfg LayerConfig, i int, palette Palette) *Petal {
	angle := 2 * math.Pi * float64(i) / float64(cfg.PetalCount)
	sin, cos := math.Sincos(angle)
	group := Transform{
		Rotation: r3.Vector{Y: angle},
		Position: r3.Vector{X: sin * cfg.Radius, Y: -float64(cfg.Index) * LayerDrop, Z: cos * cfg.Radius},
	}
	return &Petal{
		Angle:    angle,
		Geometry: GeneratePetal(rng, cfg.ParticlesPerPetal, cfg.Scale, palette),
		group:    group.Affine(),
		animator: NewAnimator(cfg.Index),
	}
}

// Update re-poses every petal for the given clock reading.
func (l *Layer) Update(elapsed, speed float64, paused bool) {
	for _, p := range l.Petals {
		p.animator.Pose(elapsed, speed, paused)
	}
}

// Recolor rebuilds every petal's colours from palette.
func (l *Layer) Recolor(palette Palette) {
	for _, p := range l.Petals {
		p.Geometry.Recolor(palette)
	}
}

// Particles returns the total particle count of the ring.
func (l *Layer) Particles() int {
	n := 0
	for _, p := range l.Petals {
		n += p.Geometry.Len()
	}
	return n
}
