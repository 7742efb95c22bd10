package ui

import (
	"log"
	"time"

	"github.com/EO1026/Vibe-Coding---lotus/internal/lotus"
	tea "github.com/charmbracelet/bubbletea"
)

type frameMsg time.Time

// rebuiltMsg carries a flower sampled at a new density. Only the rebuild
// matching the model's current generation is installed.
type rebuiltMsg struct {
	flower     *lotus.Flower
	generation int
}

func frameCmd(fps int) tea.Cmd {
	return tea.Tick(time.Second/time.Duration(fps), func(t time.Time) tea.Msg {
		return frameMsg(t)
	})
}

func rebuildCmd(bp lotus.Blueprint, params lotus.Parameters, seed uint64, clock lotus.Clock, generation int) tea.Cmd {
	return func() tea.Msg {
		start := time.Now()
		f := lotus.New(lotus.Options{
			Blueprint: bp,
			Params:    params,
			Source:    lotus.NewSource(seed),
			Clock:     clock,
		})
		log.Printf("[ui] rebuilt %d particles at density %.2f in %s", f.Particles(), params.Density, time.Since(start).Round(time.Millisecond))
		return rebuiltMsg{flower: f, generation: generation}
	}
}
