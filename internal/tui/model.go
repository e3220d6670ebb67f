// Package tui hosts the driver in a terminal using Bubble Tea. Window size
// messages become resize events and a periodic tick becomes the frame
// signal.
//
// # Key Bindings
//
//	Space - Freeze/unfreeze drawing (time keeps running)
//	T     - Cycle color themes
//	S     - Save the current frame as SVG
//	?     - Toggle help overlay
//	Q     - Quit
package tui

import (
	"fmt"
	"math"
	"os"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/spincube/internal/config"
	"github.com/san-kum/spincube/internal/driver"
	"github.com/san-kum/spincube/internal/logging"
	"github.com/san-kum/spincube/internal/loop"
	"github.com/san-kum/spincube/internal/render"
)

const (
	width           = 80
	height          = 24
	statsWidth      = 34
	historyCapacity = 120
	snapshotScale   = 4
)

type TickMsg time.Time

// Model is the composition root for the terminal host.
type Model struct {
	drv      *driver.Driver
	loop     *loop.Loop
	surface  *render.Size
	notifier *driver.ResizeNotifier
	renderer *render.TerminalRenderer

	width, height int
	interval      time.Duration
	theme         Theme
	styles        styles
	paused        bool
	showHelp      bool
	history       []float64
	snapshotPath  string
	notice        string
}

// NewModel builds the driver against an 80x24 terminal; the first
// WindowSizeMsg corrects it.
func NewModel(cfg *config.Config) (Model, error) {
	if err := cfg.Validate(); err != nil {
		return Model{}, err
	}
	m := Model{
		loop:     loop.New(),
		surface:  &render.Size{},
		notifier: &driver.ResizeNotifier{},
		renderer: render.NewTerminalRenderer(),
		width:    width,
		height:   height,
		interval: time.Second / time.Duration(cfg.Loop.FPS),
		theme:    GetTheme(cfg.Theme),
		history:  make([]float64, 0, historyCapacity),

		snapshotPath: "spincube.svg",
	}
	m.styles = newStyles(m.theme)
	m.surface.Set(canvasDots(m.width, m.height))
	m.drv = driver.New(cfg.Scene, m.renderer, m.loop)
	if err := m.drv.Initialize(m.surface, m.notifier); err != nil {
		return Model{}, err
	}
	return m, nil
}

// canvasDots converts a terminal size in cells to the drawing area in
// Braille dots, leaving room for the stats panel and padding.
func canvasDots(cols, rows int) (int, int) {
	cols = max(cols-statsWidth-6, 1)
	rows = max(rows-2, 1)
	return cols * 2, rows * 4
}

func (m Model) tick() tea.Cmd {
	return tea.Tick(m.interval, func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (m Model) Init() tea.Cmd {
	return m.tick()
}

// Update routes host events into the driver.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			m.drv.Stop()
			return m, tea.Quit
		case " ":
			m.paused = !m.paused
		case "t":
			m.theme = NextTheme(m.theme)
			m.styles = newStyles(m.theme)
		case "s":
			m.snapshot()
		case "?":
			m.showHelp = !m.showHelp
		}
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.surface.Set(canvasDots(m.width, m.height))
		m.notifier.Emit()
	case TickMsg:
		if m.drv.State() == driver.Stopped {
			return m, tea.Quit
		}
		if !m.paused && m.loop.Tick(time.Time(msg)) {
			m.history = append(m.history, math.Sin(m.drv.Cube().Rotation.X))
			if len(m.history) > historyCapacity {
				m.history = m.history[1:]
			}
		}
		return m, m.tick()
	}
	return m, nil
}

// snapshot writes the last frame to snapshotPath as SVG.
func (m *Model) snapshot() {
	if err := os.WriteFile(m.snapshotPath, []byte(m.renderer.SVG(snapshotScale)), 0644); err != nil {
		logging.Logger().Warn("tui: snapshot failed", "path", m.snapshotPath, "err", err)
		m.notice = "snapshot failed"
		return
	}
	m.notice = "saved " + m.snapshotPath
}

func (m Model) status() string {
	switch {
	case m.drv.State() == driver.Stopped:
		return "STOPPED"
	case m.paused:
		return "PAUSED"
	}
	return "RUNNING"
}

// View renders the canvas next to the stats panel.
func (m Model) View() string {
	st := m.styles
	cam, cube := m.drv.Camera(), m.drv.Cube()
	status := m.status()

	var s strings.Builder
	s.WriteString(st.header.Render("SPINCUBE") + "\n")
	s.WriteString(st.status[status].Render(status) + "\n\n")
	row := func(label, value string) {
		s.WriteString(st.label.Render(label) + st.value.Render(value) + "\n")
	}
	row("Frame", fmt.Sprintf("%d", m.drv.Frames()))
	row("Elapsed", fmt.Sprintf("%.2fs", cube.Rotation.X))
	row("Rotation", fmt.Sprintf("%.2f rad", math.Mod(cube.Rotation.X, 2*math.Pi)))
	row("Aspect", fmt.Sprintf("%.3f", cam.Aspect))
	row("Surface", fmt.Sprintf("%dx%d", m.surface.Width(), m.surface.Height()))
	row("FOV", fmt.Sprintf("%.0f°", cam.FOV))
	row("Color", cube.Material.Color.Hex())
	if err := m.drv.Err(); err != nil {
		s.WriteString("\n" + lipgloss.NewStyle().Foreground(m.theme.Error).Render(err.Error()) + "\n")
	}
	if m.notice != "" {
		s.WriteString("\n" + st.value.Render(m.notice) + "\n")
	}
	if len(m.history) > 1 {
		chart := asciigraph.Plot(m.history, asciigraph.Height(4), asciigraph.Width(statsWidth-10), asciigraph.Caption("sin(rotation)"))
		s.WriteString(st.graph.Render(chart) + "\n")
	}
	s.WriteString(st.help.Render("SP:Freeze T:Theme S:SVG\n?:Help Q:Quit"))

	main := lipgloss.JoinHorizontal(lipgloss.Top, st.canvas.Render(m.renderer.View()), st.stats.Render(s.String()))
	if m.showHelp {
		return helpOverlay + "\n\n" + main
	}
	return main
}

const helpOverlay = `
╔══════════════════════════════════════╗
║          KEYBOARD SHORTCUTS          ║
╠══════════════════════════════════════╣
║  Space    - Freeze/unfreeze drawing  ║
║  T        - Cycle themes             ║
║  S        - Save frame as SVG        ║
║  ?        - Toggle this help         ║
║  Q        - Quit                     ║
╚══════════════════════════════════════╝`

// Driver exposes the hosted driver.
func (m Model) Driver() *driver.Driver { return m.drv }

func (m Model) Theme() Theme { return m.theme }

// Run starts the full-screen terminal program and blocks until quit.
func Run(cfg *config.Config) error {
	m, err := NewModel(cfg)
	if err != nil {
		return err
	}
	p := tea.NewProgram(m, tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		return err
	}
	if fm, ok := final.(Model); ok {
		return fm.drv.Err()
	}
	return nil
}
