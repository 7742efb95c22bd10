package main

import (
	"strings"
	"testing"

	"github.com/EO1026/Vibe-Coding---lotus/internal/config"
	"github.com/EO1026/Vibe-Coding---lotus/internal/lotus"
	"github.com/EO1026/Vibe-Coding---lotus/internal/ui"
)

func smallConfig(t *testing.T) startupConfig {
	t.Helper()
	preset, err := config.ParsePreset([]byte("baseParticles: 2000\ncoreParticles: 300\n"))
	if err != nil {
		t.Fatalf("ParsePreset: %v", err)
	}
	return startupConfig{
		preset: preset,
		params: lotus.DefaultParameters(),
		seed:   7,
		ui:     ui.Options{FPS: 30},
		clock:  &lotus.ManualClock{},
	}
}

func TestStartupModelInitStartsBuild(t *testing.T) {
	m := newStartupModel(smallConfig(t))
	if m.phase != phaseBuilding {
		t.Fatalf("expected phaseBuilding, got %v", m.phase)
	}
	if m.statusCh == nil {
		t.Fatal("expected status channel to be initialized")
	}
	if m.Init() == nil {
		t.Fatal("expected build command")
	}
}

func TestBuildFlowerCmdReportsProgress(t *testing.T) {
	cfg := smallConfig(t)
	statusCh := make(chan buildStatus, 64)
	msg := buildFlowerCmd(cfg, statusCh)()

	resolved, ok := msg.(startupResolvedMsg)
	if !ok {
		t.Fatalf("expected startupResolvedMsg, got %T", msg)
	}
	if resolved.err != nil {
		t.Fatalf("unexpected error: %v", resolved.err)
	}

	var last buildStatus
	n := 0
	for s := range statusCh {
		last = s
		n++
	}
	// 5 + 8 + 10 petals and the centre cluster.
	if n != 24 || last.done != 24 || last.total != 24 {
		t.Fatalf("got %d updates ending at %+v, want 24 ending at 24/24", n, last)
	}
}

func TestStartupModelConsumesStatusUpdates(t *testing.T) {
	m := newStartupModel(smallConfig(t))

	model, cmd := m.Update(startupBuildStatusMsg(buildStatus{done: 6, total: 24}))
	if cmd == nil {
		t.Fatal("expected waitForStatus command")
	}

	startup := model.(startupModel)
	if startup.status.done != 6 || startup.status.total != 24 {
		t.Fatalf("unexpected status: %+v", startup.status)
	}
	if !strings.Contains(startup.View(), "25%") {
		t.Fatalf("expected progress percentage in view, got %q", startup.View())
	}
}

func TestStartupModelErrorShowsMessage(t *testing.T) {
	m := newStartupModel(smallConfig(t))

	model, cmd := m.Update(startupResolvedMsg{err: errBoom{}})
	if cmd != nil {
		t.Fatal("expected no command on error")
	}

	startup := model.(startupModel)
	if startup.phase != phaseFailed {
		t.Fatalf("expected phaseFailed, got %v", startup.phase)
	}
	if !strings.Contains(startup.View(), "boom") {
		t.Fatal("expected error message in view")
	}
}

func TestStartupModelHandsOverToMainModel(t *testing.T) {
	cfg := smallConfig(t)
	built, err := buildMainModel(cfg, nil)
	if err != nil {
		t.Fatalf("buildMainModel: %v", err)
	}

	m := newStartupModel(cfg)
	m.width, m.height = 80, 24
	model, cmd := m.Update(startupResolvedMsg{model: built})
	if _, ok := model.(ui.Model); !ok {
		t.Fatalf("expected ui.Model, got %T", model)
	}
	if cmd == nil {
		t.Fatal("expected init and resize commands")
	}
}

func TestBuildMainModelRejectsBadPalette(t *testing.T) {
	cfg := smallConfig(t)
	cfg.preset.Palette.Core = "#zzzzzz"
	if _, err := buildMainModel(cfg, nil); err == nil {
		t.Fatal("expected error for malformed palette colour")
	}
}

type errBoom struct{}

func (errBoom) Error() string { return "boom" }
