package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
)

// gauge is one live parameter shown under the flower.
type gauge struct {
	label  string
	value  float64
	lo, hi float64
}

func (g gauge) ratio() float64 {
	if g.hi <= g.lo {
		return 0
	}
	r := (g.value - g.lo) / (g.hi - g.lo)
	return max(0, min(1, r))
}

func renderGauges(bar progress.Model, gauges []gauge) string {
	parts := make([]string, len(gauges))
	for i, g := range gauges {
		parts[i] = gaugeLabelStyle.Render(g.label) + " " + bar.ViewAs(g.ratio()) + " " +
			statusStyle.Render(fmt.Sprintf("%.2f", g.value))
	}
	return strings.Join(parts, "   ")
}

// gaugeWidth splits the line between the gauges, leaving room for labels
// and values.
func gaugeWidth(lineWidth, n int) int {
	if n < 1 {
		return 0
	}
	w := (lineWidth-4)/n - 20
	return max(6, min(20, w))
}

func renderFPS(fps float64) string {
	if fps <= 0 {
		return "-- fps"
	}
	return fmt.Sprintf("%.0f fps", fps)
}
