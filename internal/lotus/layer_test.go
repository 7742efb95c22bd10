package lotus

import (
	"math"
	"testing"
)

func TestInnerLayerScenario(t *testing.T) {
	cfg := DefaultLayers()[0].Config(0, BaseParticles, 1.0)
	if cfg.ParticlesPerPetal != 6400 {
		t.Fatalf("ParticlesPerPetal = %d, want floor(160000/25) = 6400", cfg.ParticlesPerPetal)
	}

	l := NewLayer(NewSource(9), cfg, DefaultPalette())
	if len(l.Petals) != 5 {
		t.Fatalf("petals = %d, want 5", len(l.Petals))
	}
	for i, p := range l.Petals {
		wantAngle := float64(i) * 72 * math.Pi / 180
		if math.Abs(p.Angle-wantAngle) > 1e-12 {
			t.Fatalf("petal %d angle = %v, want %v", i, p.Angle, wantAngle)
		}
		if p.Geometry.Len() != 6400 {
			t.Fatalf("petal %d particles = %d, want 6400", i, p.Geometry.Len())
		}

		pos := p.Placement().T
		if r := math.Hypot(pos.X, pos.Z); math.Abs(r-0.4) > 1e-12 {
			t.Fatalf("petal %d radius = %v, want 0.4", i, r)
		}
		if math.Abs(pos.X-math.Sin(wantAngle)*0.4) > 1e-12 || math.Abs(pos.Z-math.Cos(wantAngle)*0.4) > 1e-12 {
			t.Fatalf("petal %d at (%v,%v), want angle %v", i, pos.X, pos.Z, wantAngle)
		}
	}
	if l.Particles() != 5*6400 {
		t.Fatalf("Particles() = %d, want %d", l.Particles(), 5*6400)
	}
}

func TestLayerPetalFacesOutward(t *testing.T) {
	cfg := LayerConfig{PetalCount: 4, Radius: 1, Scale: DefaultLayers()[0].Config(0, 1, 1).Scale, ParticlesPerPetal: 1}
	l := NewLayer(NewSource(1), cfg, DefaultPalette())
	for _, p := range l.Petals {
		// The local +Z curl axis must point along the radial direction.
		origin := p.Placement().Apply(zero)
		out := p.Placement().Apply(unitZ).Sub(origin)
		radial := origin.Normalize()
		if out.Dot(radial) < 1-1e-9 {
			t.Fatalf("petal at %v: curl axis %v not radial", p.Angle, out)
		}
	}
}

func TestLayersStackDownward(t *testing.T) {
	for i, spec := range DefaultLayers() {
		l := NewLayer(NewSource(1), spec.Config(i, 100, 1), DefaultPalette())
		if y := l.Petals[0].Placement().T.Y; math.Abs(y+float64(i)*LayerDrop) > 1e-12 {
			t.Fatalf("layer %d y = %v, want %v", i, y, -float64(i)*LayerDrop)
		}
	}
}

func TestLayerUpdatePosesEveryPetal(t *testing.T) {
	cfg := DefaultLayers()[1].Config(1, 200, 1)
	l := NewLayer(NewSource(2), cfg, DefaultPalette())
	l.Update(30, 1, false)
	want := PoseAt(30, 1, 1)
	for i, p := range l.Petals {
		if p.Pose() != want {
			t.Fatalf("petal %d pose = %+v, want %+v", i, p.Pose(), want)
		}
	}
}

func TestLayerConfigNeverEmpty(t *testing.T) {
	cfg := LayerSpec{PetalCount: 0, Radius: 1, Divisor: 1e9}.Config(0, 10, 0.1)
	if cfg.PetalCount != 1 || cfg.ParticlesPerPetal != 1 {
		t.Fatalf("config = %+v, want at least one petal of one particle", cfg)
	}
}
