package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"time"

	"github.com/EO1026/Vibe-Coding---lotus/internal/config"
	"github.com/EO1026/Vibe-Coding---lotus/internal/lotus"
	"github.com/EO1026/Vibe-Coding---lotus/internal/ui"
	"github.com/EO1026/Vibe-Coding---lotus/internal/visualizer"
	tea "github.com/charmbracelet/bubbletea"
)

type cliOptions struct {
	configPath string
	seed       uint64
	speed      float64
	density    float64
	saturation float64
	paused     bool
	mode       string
	fps        int
	logPath    string

	set map[string]bool // flags given explicitly
}

func parseFlags(args []string, stderr io.Writer) (cliOptions, error) {
	defaults := lotus.DefaultParameters()
	var o cliOptions

	fs := flag.NewFlagSet("lotus", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&o.configPath, "config", "", "path to a YAML preset")
	fs.Uint64Var(&o.seed, "seed", 0, "random seed for the particle layout (default: time based)")
	fs.Float64Var(&o.speed, "speed", defaults.Speed, "bloom speed [0, 1]")
	fs.Float64Var(&o.density, "density", defaults.Density, "particle density [0.1, 2.5]")
	fs.Float64Var(&o.saturation, "saturation", defaults.Saturation, "colour saturation [0, 1]")
	fs.BoolVar(&o.paused, "paused", false, "start with the animation frozen")
	fs.StringVar(&o.mode, "mode", "braille", "render mode: "+modeNames())
	fs.IntVar(&o.fps, "fps", ui.DefaultFPS, "frames per second")
	fs.StringVar(&o.logPath, "log", "", "write debug logs to this file")
	if err := fs.Parse(args); err != nil {
		return o, err
	}
	if fs.NArg() > 0 {
		return o, fmt.Errorf("unexpected argument %q", fs.Arg(0))
	}

	o.set = make(map[string]bool)
	fs.Visit(func(f *flag.Flag) { o.set[f.Name] = true })

	if _, ok := visualizer.ModeIndex(o.mode); !ok {
		return o, fmt.Errorf("unknown mode %q (available: %s)", o.mode, modeNames())
	}
	if o.fps < 1 || o.fps > 120 {
		return o, fmt.Errorf("fps must be in [1, 120], got %d", o.fps)
	}
	return o, nil
}

func modeNames() string {
	var names []string
	for _, v := range visualizer.Modes() {
		names = append(names, v.Name())
	}
	return strings.Join(names, ", ")
}

// resolve merges the preset under the explicit flags.
func resolve(o cliOptions, preset *config.Preset) startupConfig {
	params := preset.Apply(lotus.DefaultParameters())
	if o.set["speed"] {
		params.Speed = o.speed
	}
	if o.set["density"] {
		params.Density = o.density
	}
	if o.set["saturation"] {
		params.Saturation = o.saturation
	}
	if o.set["paused"] {
		params.Paused = o.paused
	}

	seed := uint64(time.Now().UnixNano())
	switch {
	case o.set["seed"]:
		seed = o.seed
	case preset != nil && preset.Seed != nil:
		seed = *preset.Seed
	}

	mode, _ := visualizer.ModeIndex(o.mode)
	return startupConfig{
		preset: preset,
		params: params.Clamp(),
		seed:   seed,
		ui:     ui.Options{FPS: o.fps, Mode: mode},
	}
}

func main() {
	o, err := parseFlags(os.Args[1:], os.Stderr)
	if err != nil {
		if err == flag.ErrHelp {
			os.Exit(0)
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	if o.logPath != "" {
		f, err := tea.LogToFile(o.logPath, "lotus")
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
	} else {
		log.SetOutput(io.Discard)
	}

	var preset *config.Preset
	if o.configPath != "" {
		preset, err = config.LoadPreset(o.configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		log.Printf("[startup] loaded preset %s", o.configPath)
	}

	cfg := resolve(o, preset)
	log.Printf("[startup] params %+v seed %d", cfg.params, cfg.seed)

	program := tea.NewProgram(newStartupModel(cfg), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
