package main

import (
	"fmt"
	"log"
	"time"

	"github.com/EO1026/Vibe-Coding---lotus/internal/config"
	"github.com/EO1026/Vibe-Coding---lotus/internal/lotus"
	"github.com/EO1026/Vibe-Coding---lotus/internal/ui"
)

// startupConfig is everything resolved from flags and the preset before the
// flower is sampled.
type startupConfig struct {
	preset *config.Preset
	params lotus.Parameters
	seed   uint64
	ui     ui.Options
	clock  lotus.Clock
}

func buildMainModel(cfg startupConfig, progress lotus.ProgressFunc) (ui.Model, error) {
	bp, err := cfg.preset.Blueprint()
	if err != nil {
		return ui.Model{}, fmt.Errorf("failed to build flower: %w", err)
	}
	clock := cfg.clock
	if clock == nil {
		clock = lotus.NewWallClock()
	}

	start := time.Now()
	f := lotus.New(lotus.Options{
		Blueprint: bp,
		Params:    cfg.params,
		Source:    lotus.NewSource(cfg.seed),
		Clock:     clock,
		Progress:  progress,
	})
	log.Printf("[startup] sampled %d particles (seed %d) in %s", f.Particles(), cfg.seed, time.Since(start).Round(time.Millisecond))
	pal := f.Palette()
	log.Printf("[startup] palette core=%s mid=%s edge=%s", pal.Core.Hex(), pal.Mid.Hex(), pal.Edge.Hex())

	opts := cfg.ui
	opts.Seed = cfg.seed
	return ui.New(f, opts), nil
}
