package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/EO1026/Vibe-Coding---lotus/internal/lotus"
	"gopkg.in/yaml.v3"
)

// Particle ceilings before density scaling. At MaxDensity the default rings
// stay within a few million points.
const (
	MaxBaseParticles = 2_000_000
	MaxCoreParticles = 200_000
)

// Preset is a flower description loaded from YAML. Every field is optional;
// missing fields keep the built-in lotus.
//
// Example:
//
//	seed: 7
//	baseParticles: 120000
//	palette:
//	  core: "#ffd68a"
//	  mid: "#7a5fff"
//	  edge: "#4db8ff"
//	layers:
//	  - {petals: 5, radius: 0.4, scale: [0.8, 1.4, 0.4], divisor: 25}
//	params:
//	  speed: 0.5
type Preset struct {
	Seed          *uint64       `yaml:"seed"`
	BaseParticles float64       `yaml:"baseParticles"`
	CoreParticles float64       `yaml:"coreParticles"`
	Palette       PaletteConfig `yaml:"palette"`
	Layers        []LayerConfig `yaml:"layers"`
	Params        ParamsConfig  `yaml:"params"`
}

// PaletteConfig holds the gradient anchors as hex strings.
type PaletteConfig struct {
	Core string `yaml:"core"`
	Mid  string `yaml:"mid"`
	Edge string `yaml:"edge"`
}

// LayerConfig is one ring of petals.
type LayerConfig struct {
	Petals  int        `yaml:"petals"`
	Radius  float64    `yaml:"radius"`
	Scale   [3]float64 `yaml:"scale"`
	Divisor float64    `yaml:"divisor"`
}

// ParamsConfig holds the initial animation parameters. Nil means default.
type ParamsConfig struct {
	Paused     *bool    `yaml:"paused"`
	Speed      *float64 `yaml:"speed"`
	Density    *float64 `yaml:"density"`
	Saturation *float64 `yaml:"saturation"`
}

// LoadPreset reads, parses and validates a preset file.
func LoadPreset(path string) (*Preset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read preset: %w", err)
	}
	return ParsePreset(data)
}

// ParsePreset parses and validates preset YAML.
func ParsePreset(data []byte) (*Preset, error) {
	var p Preset
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("failed to parse preset: %w", err)
	}
	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("invalid preset: %w", err)
	}
	return &p, nil
}

// Validate checks every value that would otherwise be silently clamped.
func (p *Preset) Validate() error {
	var errs []error
	if !(p.BaseParticles >= 0 && p.BaseParticles <= MaxBaseParticles) {
		errs = append(errs, fmt.Errorf("baseParticles must be in [0, %d], got %v", MaxBaseParticles, p.BaseParticles))
	}
	if !(p.CoreParticles >= 0 && p.CoreParticles <= MaxCoreParticles) {
		errs = append(errs, fmt.Errorf("coreParticles must be in [0, %d], got %v", MaxCoreParticles, p.CoreParticles))
	}
	for name, hex := range map[string]string{"core": p.Palette.Core, "mid": p.Palette.Mid, "edge": p.Palette.Edge} {
		if hex == "" {
			continue
		}
		if _, err := lotus.ParseHex(hex); err != nil {
			errs = append(errs, fmt.Errorf("palette.%s: %w", name, err))
		}
	}
	for i, l := range p.Layers {
		if l.Petals < 1 {
			errs = append(errs, fmt.Errorf("layers[%d].petals must be >= 1, got %d", i, l.Petals))
		}
		if l.Radius < 0 {
			errs = append(errs, fmt.Errorf("layers[%d].radius must be >= 0, got %v", i, l.Radius))
		}
		if !(l.Divisor >= 1) {
			errs = append(errs, fmt.Errorf("layers[%d].divisor must be >= 1, got %v", i, l.Divisor))
		}
		for axis, s := range l.Scale {
			if s <= 0 {
				errs = append(errs, fmt.Errorf("layers[%d].scale[%d] must be > 0, got %v", i, axis, s))
			}
		}
	}
	errs = append(errs,
		checkRange("params.speed", p.Params.Speed, lotus.MinSpeed, lotus.MaxSpeed),
		checkRange("params.density", p.Params.Density, lotus.MinDensity, lotus.MaxDensity),
		checkRange("params.saturation", p.Params.Saturation, lotus.MinSaturation, lotus.MaxSaturation),
	)
	return errors.Join(errs...)
}

func checkRange(name string, v *float64, lo, hi float64) error {
	if v == nil {
		return nil
	}
	if *v < lo || *v > hi {
		return fmt.Errorf("%s must be in [%v, %v], got %v", name, lo, hi, *v)
	}
	return nil
}

// Blueprint merges the preset over the built-in flower.
func (p *Preset) Blueprint() (lotus.Blueprint, error) {
	bp := lotus.DefaultBlueprint()
	if p == nil {
		return bp, nil
	}
	if p.BaseParticles > 0 {
		bp.BaseParticles = p.BaseParticles
	}
	if p.CoreParticles > 0 {
		bp.CoreParticles = p.CoreParticles
	}

	anchors := []struct {
		hex string
		dst *lotus.RGB
	}{
		{p.Palette.Core, &bp.Palette.Core},
		{p.Palette.Mid, &bp.Palette.Mid},
		{p.Palette.Edge, &bp.Palette.Edge},
	}
	for _, a := range anchors {
		if a.hex == "" {
			continue
		}
		c, err := lotus.ParseHex(a.hex)
		if err != nil {
			return bp, err
		}
		*a.dst = c
	}

	if len(p.Layers) > 0 {
		bp.Layers = make([]lotus.LayerSpec, len(p.Layers))
		for i, l := range p.Layers {
			bp.Layers[i] = lotus.LayerSpec{
				PetalCount: l.Petals,
				Radius:     l.Radius,
				Scale:      l.Scale,
				Divisor:    l.Divisor,
			}
		}
	}
	return bp, nil
}

// Apply overlays the preset's initial parameters on params.
func (p *Preset) Apply(params lotus.Parameters) lotus.Parameters {
	if p == nil {
		return params
	}
	if p.Params.Paused != nil {
		params.Paused = *p.Params.Paused
	}
	if p.Params.Speed != nil {
		params.Speed = *p.Params.Speed
	}
	if p.Params.Density != nil {
		params.Density = *p.Params.Density
	}
	if p.Params.Saturation != nil {
		params.Saturation = *p.Params.Saturation
	}
	return params
}
