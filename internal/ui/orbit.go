package ui

// OrbitMode is how the camera moves when no orbit keys are pressed.
type OrbitMode int

const (
	OrbitAuto OrbitMode = iota
	OrbitManual
)

// Next cycles to the next orbit mode.
func (o OrbitMode) Next() OrbitMode {
	switch o {
	case OrbitAuto:
		return OrbitManual
	default:
		return OrbitAuto
	}
}

// String returns the name of the orbit mode.
func (o OrbitMode) String() string {
	switch o {
	case OrbitManual:
		return "manual"
	default:
		return "auto"
	}
}

// Icon returns a visual indicator for the orbit mode.
func (o OrbitMode) Icon() string {
	switch o {
	case OrbitAuto:
		return "[orbit]"
	default:
		return ""
	}
}
