package visualizer

import (
	"strings"
	"testing"

	"github.com/EO1026/Vibe-Coding---lotus/internal/lotus"
)

func envLookup(env map[string]string) func(string) (string, bool) {
	return func(k string) (string, bool) {
		v, ok := env[k]
		return v, ok
	}
}

func TestDetectColorProfile(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
		want colorProfile
	}{
		{"no color wins", map[string]string{"NO_COLOR": "", "COLORTERM": "truecolor"}, colorNone},
		{"truecolor", map[string]string{"TERM": "xterm", "COLORTERM": "truecolor"}, colorTrueColor},
		{"24bit", map[string]string{"COLORTERM": "24bit"}, colorTrueColor},
		{"256", map[string]string{"TERM": "xterm-256color"}, colorANSI256},
		{"dumb", map[string]string{"TERM": "dumb"}, colorNone},
		{"unset", map[string]string{}, colorNone},
		{"basic", map[string]string{"TERM": "xterm"}, colorANSI16},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := detectColorProfile(envLookup(tt.env)); got != tt.want {
				t.Fatalf("detectColorProfile = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestColorSequence(t *testing.T) {
	c := colorRGB{R: 255, G: 0, B: 0}
	if got := colorSequence(colorTrueColor, c); got != "\x1b[38;2;255;0;0m" {
		t.Fatalf("truecolor = %q", got)
	}
	if got := colorSequence(colorANSI256, c); got != "\x1b[38;5;196m" {
		t.Fatalf("256 = %q", got)
	}
	if got := colorSequence(colorANSI16, c); got != "\x1b[91m" {
		t.Fatalf("16 = %q", got)
	}
	if got := colorSequence(colorNone, c); got != "" {
		t.Fatalf("none = %q", got)
	}
}

func TestANSIStateSkipsRepeats(t *testing.T) {
	var sb strings.Builder
	s := newANSIState(colorTrueColor)
	c := toColorRGB(lotus.RGB{R: 1, G: 0.5, B: 0})
	s.set(&sb, c)
	s.set(&sb, c)
	if n := strings.Count(sb.String(), "\x1b["); n != 1 {
		t.Fatalf("wrote %d sequences, want 1", n)
	}
	s.reset(&sb)
	if !strings.HasSuffix(sb.String(), "\x1b[0m") {
		t.Fatal("expected reset sequence")
	}
}

func TestToColorRGBClamps(t *testing.T) {
	got := toColorRGB(lotus.RGB{R: 2, G: -1, B: 0.5})
	if got != (colorRGB{R: 255, G: 0, B: 128}) {
		t.Fatalf("toColorRGB = %+v", got)
	}
}
