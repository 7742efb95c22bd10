package visualizer

import "github.com/EO1026/Vibe-Coding---lotus/internal/lotus"

// Scene is one frame handed to a visualizer: the posed clusters and the
// camera they are seen through.
type Scene struct {
	Objects []lotus.Object
	View    Projection
}

// Visualizer renders a scene as terminal art.
type Visualizer interface {
	Name() string
	Update(scene Scene, width, height int)
	View() string
}

// Modes returns all available visualizers.
func Modes() []Visualizer {
	return []Visualizer{
		NewBraille(),
		NewDense(),
		NewSparkle(),
	}
}

// ModeIndex returns the position of the named mode in Modes.
func ModeIndex(name string) (int, bool) {
	for i, v := range Modes() {
		if v.Name() == name {
			return i, true
		}
	}
	return 0, false
}
