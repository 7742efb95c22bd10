package ui

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/EO1026/Vibe-Coding---lotus/internal/lotus"
	"github.com/EO1026/Vibe-Coding---lotus/internal/util"
	"github.com/EO1026/Vibe-Coding---lotus/internal/visualizer"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const (
	DefaultFPS = 30

	defaultWidth  = 80
	defaultHeight = 24
	minVizHeight  = 4
	frameWindow   = 60
)

// Options configures the main model.
type Options struct {
	FPS  int
	Mode int    // index into visualizer.Modes
	Seed uint64 // reused when the flower is rebuilt
}

// Model is the Bubbletea model for the lotus TUI.
type Model struct {
	flower *lotus.Flower
	params lotus.Parameters
	seed   uint64

	camera    *visualizer.Camera
	orbit     OrbitMode
	modes     []visualizer.Visualizer
	mode      int
	fps       int
	frames    *frameRing
	lastFrame time.Time

	gauge      progress.Model
	spinner    spinner.Model
	rebuilding bool
	generation int

	showHelp bool
	width    int
	height   int
	quitting bool
}

// New creates a Model around an already built flower.
func New(f *lotus.Flower, opts Options) Model {
	fps := opts.FPS
	if fps < 1 {
		fps = DefaultFPS
	}
	modes := visualizer.Modes()
	mode := opts.Mode
	if mode < 0 || mode >= len(modes) {
		mode = 0
	}

	s := spinner.New()
	s.Spinner = spinner.MiniDot
	s.Style = statusStyle

	return Model{
		flower: f,
		params: f.Params(),
		seed:   opts.Seed,
		camera: visualizer.NewCamera(fps),
		modes:  modes,
		mode:   mode,
		fps:    fps,
		frames: newFrameRing(frameWindow),
		gauge: progress.New(
			progress.WithScaledGradient("#7A5FFF", "#FFD68A"),
			progress.WithoutPercentage(),
			progress.WithWidth(gaugeWidth(defaultWidth, 3)),
		),
		spinner: s,
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(frameCmd(m.fps), tea.SetWindowTitle(windowTitle(m.params.Paused)))
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	return m.handleMsg(msg)
}

func (m Model) handleMsg(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if isQuit(msg) {
			m.quitting = true
			return m, tea.Sequence(tea.SetWindowTitle(""), tea.Quit)
		}
		return m.handleKey(msg)

	case frameMsg:
		now := time.Time(msg)
		if !m.lastFrame.IsZero() {
			m.frames.Push(now.Sub(m.lastFrame))
		}
		m.lastFrame = now
		m.flower.Tick()
		m.camera.Step()
		m.render()
		return m, frameCmd(m.fps)

	case rebuiltMsg:
		if msg.generation != m.generation {
			return m, nil
		}
		m.rebuilding = false
		// Parameters may have moved while the rebuild ran.
		change := msg.flower.SetParameters(m.params)
		msg.flower.Adopt(m.flower)
		m.flower = msg.flower
		m.frames.Clear()
		m.lastFrame = time.Time{}
		m.render()
		if change&lotus.ChangeDensity != 0 {
			return m.startRebuild()
		}
		return m, nil

	case spinner.TickMsg:
		if !m.rebuilding {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.gauge.Width = gaugeWidth(msg.Width, 3)
		m.render()
		return m, nil
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	p := m.params
	switch msg.String() {
	case " ":
		p.Paused = !p.Paused
		m.setParams(p)
		return m, tea.SetWindowTitle(windowTitle(m.params.Paused))
	case "[":
		p.Speed -= speedStep
	case "]":
		p.Speed += speedStep
	case "-", "_":
		p.Density -= densityStep
	case "=", "+":
		p.Density += densityStep
	case ",", "<":
		p.Saturation -= saturationStep
	case ".", ">":
		p.Saturation += saturationStep
	case "left", "h":
		m.camera.Orbit(-orbitStep)
		return m, nil
	case "right", "l":
		m.camera.Orbit(orbitStep)
		return m, nil
	case "up", "k":
		m.camera.Zoom(-zoomStep)
		return m, nil
	case "down", "j":
		m.camera.Zoom(zoomStep)
		return m, nil
	case "a":
		m.orbit = m.orbit.Next()
		m.camera.SetAutoRotate(m.orbit == OrbitAuto)
		return m, nil
	case "v":
		m.mode = (m.mode + 1) % len(m.modes)
		m.render()
		return m, nil
	case "?":
		m.showHelp = !m.showHelp
		m.render()
		return m, nil
	default:
		return m, nil
	}

	if m.setParams(p)&lotus.ChangeDensity != 0 {
		return m.startRebuild()
	}
	return m, nil
}

// setParams clamps p and hands it to the flower.
func (m *Model) setParams(p lotus.Parameters) lotus.Change {
	m.params = p.Clamp()
	return m.flower.SetParameters(m.params)
}

// startRebuild samples a new flower at the current density off the update
// loop. Earlier rebuilds still in flight are discarded when they land.
func (m Model) startRebuild() (Model, tea.Cmd) {
	m.generation++
	log.Printf("[ui] rebuilding at density %.2f (generation %d)", m.params.Density, m.generation)
	cmds := []tea.Cmd{rebuildCmd(m.flower.Blueprint(), m.params, m.seed, m.flower.Clock(), m.generation)}
	if !m.rebuilding {
		cmds = append(cmds, m.spinner.Tick)
	}
	m.rebuilding = true
	return m, tea.Batch(cmds...)
}

func (m Model) size() (int, int) {
	w, h := m.width, m.height
	if w < 30 {
		w = defaultWidth
	}
	if h < 10 {
		h = defaultHeight
	}
	return w, h
}

// vizHeight is the number of rows left for the flower once the HUD is laid out.
func (m Model) vizHeight() int {
	_, h := m.size()
	chrome := 7 + len(helpText(m.showHelp, m.orbit))
	return max(minVizHeight, h-chrome)
}

func (m Model) render() {
	w, _ := m.size()
	scene := visualizer.Scene{
		Objects: m.flower.Objects(),
		View:    m.camera.Projection(),
	}
	m.modes[m.mode].Update(scene, w, m.vizHeight())
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	w, _ := m.size()

	var b strings.Builder
	b.WriteString("\n  ")
	b.WriteString(titleStyle.Render("lotus"))
	b.WriteString("  ")
	b.WriteString(countStyle.Render(fmt.Sprintf("Simulating %s points", util.FormatCount(m.flower.Particles()))))
	b.WriteString("\n\n")

	viz := m.modes[m.mode].View()
	for i, line := range strings.Split(viz, "\n") {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString("  ")
		b.WriteString(line)
	}
	b.WriteString("\n\n  ")
	b.WriteString(m.statusLine(w))
	b.WriteString("\n  ")
	b.WriteString(renderGauges(m.gauge, []gauge{
		{label: "speed", value: m.params.Speed, lo: lotus.MinSpeed, hi: lotus.MaxSpeed},
		{label: "density", value: m.params.Density, lo: lotus.MinDensity, hi: lotus.MaxDensity},
		{label: "saturation", value: m.params.Saturation, lo: lotus.MinSaturation, hi: lotus.MaxSaturation},
	}))
	b.WriteString("\n\n")
	for _, line := range helpText(m.showHelp, m.orbit) {
		b.WriteString("  ")
		b.WriteString(helpStyle.Render(line))
		b.WriteString("\n")
	}
	return b.String()
}

func (m Model) statusLine(w int) string {
	var left string
	switch {
	case m.rebuilding:
		left = m.spinner.View() + " regenerating"
	case m.params.Paused:
		left = "❚❚ paused"
	default:
		left = "❀ blooming"
	}
	left += "  " + util.FormatDuration(time.Duration(m.flower.Elapsed()*float64(time.Second)))

	right := renderFPS(m.frames.FPS()) + "  " + m.modes[m.mode].Name()
	if icon := m.orbit.Icon(); icon != "" {
		right += "  " + icon
	}

	gap := w - lipgloss.Width(left) - lipgloss.Width(right) - 4
	if gap < 2 {
		gap = 2
	}
	return statusStyle.Render(left) + strings.Repeat(" ", gap) + statusStyle.Render(right)
}

func windowTitle(paused bool) string {
	if paused {
		return "❚❚ lotus"
	}
	return "❀ lotus"
}
