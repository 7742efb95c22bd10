package visualizer

import "strings"

var densityRamp = []byte(" .:-=+*#%@")

// Dense renders the flower one character per cell, picking from an ASCII
// density ramp by how much light landed in the cell.
type Dense struct {
	canvas  canvas
	output  string
	profile colorProfile
}

func NewDense() *Dense {
	return &Dense{profile: currentColorProfile()}
}

func (d *Dense) Name() string { return "dense" }

func (d *Dense) Update(scene Scene, width, height int) {
	if height < 1 {
		height = 1
	}
	cols := width - 2
	if cols < 4 {
		cols = 4
	}

	d.canvas.resize(cols, height, 2)
	exposure := d.canvas.exposure(d.canvas.splat(scene))

	rampLen := len(densityRamp)
	var out strings.Builder
	color := newANSIState(d.profile)
	for row := range height {
		if row > 0 {
			out.WriteByte('\n')
		}
		for col := range cols {
			c := d.canvas.light(row*cols+col, exposure)
			idx := int(luminance(c) * float64(rampLen))
			if idx >= rampLen {
				idx = rampLen - 1
			}
			ch := densityRamp[idx]
			if ch != ' ' {
				color.set(&out, toColorRGB(c))
			}
			out.WriteByte(ch)
		}
		color.reset(&out)
	}

	d.output = out.String()
}

func (d *Dense) View() string {
	return d.output
}
