package visualizer

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/EO1026/Vibe-Coding---lotus/internal/lotus"
)

func testScene(n int) Scene {
	g := lotus.GenerateCore(lotus.NewSource(1), n, lotus.DefaultPalette())
	return Scene{
		Objects: []lotus.Object{{Geometry: g, Transform: lotus.Identity(), Opacity: 1}},
		View:    NewCamera(30).Projection(),
	}
}

func plain(v Visualizer) Visualizer {
	switch r := v.(type) {
	case *Braille:
		r.profile = colorNone
	case *Dense:
		r.profile = colorNone
	case *Sparkle:
		r.profile = colorNone
	}
	return v
}

func TestModesRenderRequestedSize(t *testing.T) {
	for _, v := range Modes() {
		t.Run(v.Name(), func(t *testing.T) {
			plain(v).Update(testScene(3000), 42, 12)
			lines := strings.Split(v.View(), "\n")
			if len(lines) != 12 {
				t.Fatalf("rows = %d, want 12", len(lines))
			}
			for i, line := range lines {
				if n := utf8.RuneCountInString(line); n != 40 {
					t.Fatalf("row %d has %d cells, want 40", i, n)
				}
			}
		})
	}
}

func TestModesDrawSomething(t *testing.T) {
	for _, v := range Modes() {
		t.Run(v.Name(), func(t *testing.T) {
			plain(v).Update(testScene(3000), 42, 12)
			if strings.TrimSpace(v.View()) == "" {
				t.Fatal("expected visible particles")
			}
		})
	}
}

func TestModesEmptyScene(t *testing.T) {
	for _, v := range Modes() {
		t.Run(v.Name(), func(t *testing.T) {
			plain(v).Update(Scene{View: NewCamera(30).Projection()}, 20, 4)
			if strings.TrimSpace(v.View()) != "" {
				t.Fatalf("expected blank frame, got %q", v.View())
			}
		})
	}
}

func TestColourOutputUsesSGR(t *testing.T) {
	b := NewBraille()
	b.profile = colorTrueColor
	b.Update(testScene(3000), 42, 12)
	if !strings.Contains(b.View(), "\x1b[38;2;") {
		t.Fatal("expected truecolor sequences in output")
	}
	for i, line := range strings.Split(b.View(), "\n") {
		if strings.Contains(line, "\x1b[38;") && !strings.HasSuffix(line, "\x1b[0m") {
			t.Fatalf("row %d does not reset its colour", i)
		}
	}
}

func TestModeIndex(t *testing.T) {
	if i, ok := ModeIndex("dense"); !ok || i != 1 {
		t.Fatalf("ModeIndex(dense) = %d,%v", i, ok)
	}
	if _, ok := ModeIndex("spectrum"); ok {
		t.Fatal("expected unknown mode to be rejected")
	}
}

func TestCanvasStridesLargeClouds(t *testing.T) {
	var c canvas
	c.resize(40, 20, 1)
	drawn := c.splat(testScene(pointBudget + 10))
	if drawn > pointBudget {
		t.Fatalf("drawn %d points, want at most %d", drawn, pointBudget)
	}
}
