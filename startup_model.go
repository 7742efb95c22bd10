package main

import (
	"fmt"
	"strings"

	"github.com/EO1026/Vibe-Coding---lotus/internal/ui"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type startupPhase uint8

const (
	phaseBuilding startupPhase = iota
	phaseFailed
)

type startupResolvedMsg struct {
	model ui.Model
	err   error
}

// buildStatus is how many clusters of the flower have been sampled.
type buildStatus struct {
	done  int
	total int
}

type startupBuildStatusMsg buildStatus

type startupModel struct {
	cfg      startupConfig
	phase    startupPhase
	errMsg   string
	width    int
	height   int
	spinner  spinner.Model
	progress progress.Model
	status   buildStatus
	statusCh chan buildStatus
}

func newStartupModel(cfg startupConfig) startupModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#555555", Dark: "#AAAAAA"})

	p := progress.New(
		progress.WithScaledGradient("#7A5FFF", "#FFD68A"),
		progress.WithoutPercentage(),
	)

	return startupModel{
		cfg:      cfg,
		phase:    phaseBuilding,
		spinner:  s,
		progress: p,
		statusCh: make(chan buildStatus, 16),
	}
}

func (m startupModel) Init() tea.Cmd {
	return tea.Batch(
		m.spinner.Tick,
		m.waitForStatus(),
		buildFlowerCmd(m.cfg, m.statusCh),
	)
}

func (m startupModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		barWidth := msg.Width - 8
		if barWidth < 20 {
			barWidth = 20
		}
		if barWidth > 60 {
			barWidth = 60
		}
		m.progress.Width = barWidth
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		if m.phase == phaseBuilding {
			return m, cmd
		}
		return m, nil

	case startupBuildStatusMsg:
		m.status = buildStatus(msg)
		return m, m.waitForStatus()

	case startupResolvedMsg:
		if msg.err != nil {
			m.phase = phaseFailed
			m.errMsg = msg.err.Error()
			m.statusCh = nil
			return m, nil
		}

		cmds := []tea.Cmd{msg.model.Init()}
		if m.width > 0 || m.height > 0 {
			w, h := m.width, m.height
			cmds = append(cmds, func() tea.Msg {
				return tea.WindowSizeMsg{Width: w, Height: h}
			})
		}
		return msg.model, tea.Batch(cmds...)

	case tea.KeyMsg:
		if startupIsQuit(msg) {
			return m, tea.Sequence(tea.SetWindowTitle(""), tea.Quit)
		}
	}

	return m, nil
}

func (m startupModel) waitForStatus() tea.Cmd {
	if m.statusCh == nil {
		return nil
	}
	statusCh := m.statusCh
	return func() tea.Msg {
		status, ok := <-statusCh
		if !ok {
			return nil
		}
		return startupBuildStatusMsg(status)
	}
}

func (m startupModel) View() string {
	var b strings.Builder
	b.WriteString("\n  ")
	b.WriteString(startupHeaderStyle.Render("lotus"))
	b.WriteString("\n\n")

	switch {
	case m.phase == phaseFailed:
		b.WriteString("  ")
		b.WriteString(startupErrorStyle.Render(m.errMsg))
		b.WriteString("\n")
	case m.status.total > 0:
		ratio := float64(m.status.done) / float64(m.status.total)
		b.WriteString("  ")
		b.WriteString(m.spinner.View())
		b.WriteString(" ")
		b.WriteString(startupStatusStyle.Render("Growing petals..."))
		b.WriteString("\n  ")
		b.WriteString(m.progress.ViewAs(ratio))
		b.WriteString(fmt.Sprintf("  %.0f%%\n", ratio*100))
		b.WriteString("  ")
		b.WriteString(startupHelpStyle.Render(fmt.Sprintf("%d of %d clusters", m.status.done, m.status.total)))
		b.WriteString("\n")
	default:
		b.WriteString("  ")
		b.WriteString(m.spinner.View())
		b.WriteString(" ")
		b.WriteString(startupStatusStyle.Render("Planting..."))
		b.WriteString("\n")
	}

	b.WriteString("\n  ")
	b.WriteString(startupHelpStyle.Render("q quit"))
	b.WriteString("\n")
	return b.String()
}

func buildFlowerCmd(cfg startupConfig, statusCh chan buildStatus) tea.Cmd {
	return func() tea.Msg {
		defer close(statusCh)
		model, err := buildMainModel(cfg, func(done, total int) {
			select {
			case statusCh <- buildStatus{done: done, total: total}:
			default:
			}
		})
		return startupResolvedMsg{model: model, err: err}
	}
}

func startupIsQuit(msg tea.KeyMsg) bool {
	switch msg.String() {
	case "q", "esc", "ctrl+c":
		return true
	}
	return false
}

var (
	startupHeaderStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.AdaptiveColor{Light: "#7A5FFF", Dark: "#FFD68A"})
	startupStatusStyle = lipgloss.NewStyle().
				Foreground(lipgloss.AdaptiveColor{Light: "#555555", Dark: "#BBBBBB"})
	startupHelpStyle = lipgloss.NewStyle().
				Foreground(lipgloss.AdaptiveColor{Light: "#999999", Dark: "#666666"})
	startupErrorStyle = lipgloss.NewStyle().
				Foreground(lipgloss.AdaptiveColor{Light: "#A00000", Dark: "#FF8080"})
)
