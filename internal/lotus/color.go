package lotus

import (
	"fmt"

	"github.com/lucasb-eyer/go-colorful"
)

// gradientBreak is where the core→mid segment hands over to mid→edge.
const gradientBreak = 0.3

// RGB is a colour with normalised float channels.
type RGB struct {
	R, G, B float64
}

// Clamped returns c with every channel in [0,1].
func (c RGB) Clamped() RGB {
	return RGB{R: clamp01(c.R), G: clamp01(c.G), B: clamp01(c.B)}
}

// Scale multiplies every channel by f and clamps the result.
func (c RGB) Scale(f float64) RGB {
	return RGB{R: c.R * f, G: c.G * f, B: c.B * f}.Clamped()
}

// Lerp interpolates linearly from c to d.
func (c RGB) Lerp(d RGB, t float64) RGB {
	return RGB{
		R: lerp(c.R, d.R, t),
		G: lerp(c.G, d.G, t),
		B: lerp(c.B, d.B, t),
	}
}

// Hex formats c as #rrggbb.
func (c RGB) Hex() string {
	return c.colorful().Clamped().Hex()
}

func (c RGB) colorful() colorful.Color {
	return colorful.Color{R: c.R, G: c.G, B: c.B}
}

func fromColorful(c colorful.Color) RGB {
	return RGB{R: c.R, G: c.G, B: c.B}.Clamped()
}

// ParseHex parses a #rrggbb or #rgb colour.
func ParseHex(s string) (RGB, error) {
	c, err := colorful.Hex(s)
	if err != nil {
		return RGB{}, fmt.Errorf("parse colour %q: %w", s, err)
	}
	return fromColorful(c), nil
}

// Palette holds the three gradient anchors of a petal.
type Palette struct {
	Core RGB
	Mid  RGB
	Edge RGB
}

// DefaultPalette is the warm core, violet middle and sky-blue tips.
func DefaultPalette() Palette {
	return Palette{
		Core: RGB{R: 1, G: 0xd6 / 255.0, B: 0x8a / 255.0},
		Mid:  RGB{R: 0x7a / 255.0, G: 0x5f / 255.0, B: 1},
		Edge: RGB{R: 0x4d / 255.0, G: 0xb8 / 255.0, B: 1},
	}
}

// DerivePalette scales the HSL saturation of every anchor in base by s.
func DerivePalette(base Palette, s float64) Palette {
	return Palette{
		Core: AdjustSaturation(base.Core, s),
		Mid:  AdjustSaturation(base.Mid, s),
		Edge: AdjustSaturation(base.Edge, s),
	}
}

// AdjustSaturation multiplies the HSL saturation of c by s (clamped to [0,1]),
// keeping hue and lightness.
func AdjustSaturation(c RGB, s float64) RGB {
	s = clampOr(s, MinSaturation, MaxSaturation, 1)
	h, sat, l := c.Clamped().colorful().Hsl()
	return fromColorful(colorful.Hsl(h, clamp01(sat*s), l))
}

// Mix returns the gradient colour at base-to-tip progress t.
func (p Palette) Mix(t float64) RGB {
	t = clamp01(t)
	if t < gradientBreak {
		return p.Core.Lerp(p.Mid, t/gradientBreak)
	}
	return p.Mid.Lerp(p.Edge, (t-gradientBreak)/(1-gradientBreak))
}
