package visualizer

import "strings"

// dotThreshold is the tone-mapped luminance a dot needs to light up.
const dotThreshold = 0.06

// Braille plots the point cloud on Unicode Braille cells. Each cell is a
// 2x4 dot grid, giving 2x horizontal and 4x vertical resolution.
type Braille struct {
	canvas  canvas
	output  string
	profile colorProfile
}

func NewBraille() *Braille {
	return &Braille{profile: currentColorProfile()}
}

func (b *Braille) Name() string { return "braille" }

// Braille dot positions (col, row) → bit offset:
//
//	(0,0)=0  (1,0)=3
//	(0,1)=1  (1,1)=4
//	(0,2)=2  (1,2)=5
//	(0,3)=6  (1,3)=7
var brailleBits = [2][4]uint{
	{0, 1, 2, 6},
	{3, 4, 5, 7},
}

func (b *Braille) Update(scene Scene, width, height int) {
	if height < 1 {
		height = 1
	}
	cols := width - 2
	if cols < 2 {
		cols = 2
	}

	// Terminal cells are about twice as tall as wide, so braille dots are square.
	b.canvas.resize(cols*2, height*4, 1)
	exposure := b.canvas.exposure(b.canvas.splat(scene))

	var out strings.Builder
	color := newANSIState(b.profile)
	for row := range height {
		if row > 0 {
			out.WriteByte('\n')
		}
		for col := range cols {
			var pattern uint
			var sum [3]float64
			lit := 0
			for dx := range 2 {
				for dy := range 4 {
					idx := (row*4+dy)*b.canvas.w + col*2 + dx
					c := b.canvas.light(idx, exposure)
					if luminance(c) < dotThreshold {
						continue
					}
					pattern |= 1 << brailleBits[dx][dy]
					sum[0] += c.R
					sum[1] += c.G
					sum[2] += c.B
					lit++
				}
			}
			if lit == 0 {
				out.WriteByte(' ')
				continue
			}
			n := float64(lit)
			color.set(&out, toColorRGB(rgb(sum[0]/n, sum[1]/n, sum[2]/n)))
			out.WriteRune(rune(0x2800 + pattern))
		}
		color.reset(&out)
	}

	b.output = out.String()
}

func (b *Braille) View() string {
	return b.output
}
