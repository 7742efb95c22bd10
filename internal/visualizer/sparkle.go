package visualizer

import "strings"

var sparkleGlyphs = []rune{'·', '•', '✶', '✹'}

// Sparkle draws each cell as a star glyph whose size follows its brightness.
type Sparkle struct {
	canvas  canvas
	output  string
	profile colorProfile
}

func NewSparkle() *Sparkle {
	return &Sparkle{profile: currentColorProfile()}
}

func (s *Sparkle) Name() string { return "sparkle" }

func (s *Sparkle) Update(scene Scene, width, height int) {
	if height < 1 {
		height = 1
	}
	cols := width - 2
	if cols < 4 {
		cols = 4
	}

	s.canvas.resize(cols, height, 2)
	exposure := s.canvas.exposure(s.canvas.splat(scene))

	var out strings.Builder
	color := newANSIState(s.profile)
	for row := range height {
		if row > 0 {
			out.WriteByte('\n')
		}
		for col := range cols {
			c := s.canvas.light(row*cols+col, exposure)
			lum := luminance(c)
			if lum < dotThreshold {
				out.WriteByte(' ')
				continue
			}
			idx := int((lum - dotThreshold) / (1 - dotThreshold) * float64(len(sparkleGlyphs)))
			idx = min(idx, len(sparkleGlyphs)-1)
			color.set(&out, toColorRGB(c))
			out.WriteRune(sparkleGlyphs[idx])
		}
		color.reset(&out)
	}

	s.output = out.String()
}

func (s *Sparkle) View() string {
	return s.output
}
