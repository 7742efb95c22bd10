package ui

import (
	"math"

	tea "github.com/charmbracelet/bubbletea"
)

const (
	speedStep      = 0.05
	densityStep    = 0.1
	saturationStep = 0.05
	orbitStep      = math.Pi / 12
	zoomStep       = 1.0
)

func isQuit(msg tea.KeyMsg) bool {
	switch msg.String() {
	case "q", "esc", "ctrl+c":
		return true
	}
	return false
}

func helpText(full bool, orbit OrbitMode) []string {
	if !full {
		return []string{"space pause  [/] speed  -/= density  ,/. saturation  v mode  ? more  q quit"}
	}
	return []string{
		"space pause/resume  [ ] speed  - = density  , . saturation",
		"←/→ orbit  ↑/↓ zoom  a orbit mode (" + orbit.String() + ")  v render mode",
		"? less  q quit",
	}
}
