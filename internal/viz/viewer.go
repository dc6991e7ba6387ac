package viz

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/michaeljayl/graphicsn/internal/config"
	"github.com/michaeljayl/graphicsn/internal/demo"
)

const (
	defaultWidth  = 80
	defaultHeight = 30
	maxStep       = 0.25 // seconds; longer gaps are treated as a stall
)

type TickMsg time.Time

// Options configures a live viewer.
type Options struct {
	FPS           int
	Theme         string
	Width, Height int // canvas size in terminal cells
	Wire          WireOptions
	// Watch, when set, is a config file re-applied whenever it changes.
	Watch string
	Log   *slog.Logger
}

func (o Options) withDefaults() Options {
	if o.FPS <= 0 {
		o.FPS = config.DefaultFPS
	}
	if o.Width <= 0 {
		o.Width = defaultWidth
	}
	if o.Height <= 0 {
		o.Height = defaultHeight
	}
	if o.Wire == (WireOptions{}) {
		o.Wire = DefaultWireOptions()
	}
	if o.Log == nil {
		o.Log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return o
}

// controls is the demo-specific half of a viewer: its side panel and key
// hints.
type controls interface {
	rows(s styles) string
	help() string
	// rebuilt reports whether the scene graph was replaced since the last
	// call, so the camera can refit.
	rebuilt() bool
	// overlay adds demo markers that are not part of the scene graph.
	overlay(w *Wireframe)
}

// Model is the bubbletea program for one demo.
type Model struct {
	d    demo.Demo
	ctl  controls
	opts Options

	canvas *Canvas
	cam    *Camera
	wire   *Wireframe
	theme  Theme
	st     styles

	paused   bool
	showHelp bool
	status   string
	statusOK bool
	last     time.Time
	elapsed  float64
	frames   int
	watch    *Watcher
}

func newModel(d demo.Demo, ctl controls, opts Options) (Model, error) {
	opts = opts.withDefaults()
	theme := GetTheme(opts.Theme)
	m := Model{
		d:      d,
		ctl:    ctl,
		opts:   opts,
		canvas: NewCanvas(opts.Width, opts.Height),
		cam:    NewCamera(),
		wire:   NewWireframe(),
		theme:  theme,
		st:     newStyles(theme),
	}
	m.fit()
	if opts.Watch != "" {
		w, err := Watch(opts.Watch, opts.Log)
		if err != nil {
			return Model{}, fmt.Errorf("watch %s: %w", opts.Watch, err)
		}
		m.watch = w
	}
	m.draw()
	return m, nil
}

func (m *Model) fit() {
	g, root := m.d.Scene()
	m.cam.Fit(g.Bounds(root))
}

func (m Model) tick() tea.Cmd {
	return tea.Tick(time.Second/time.Duration(m.opts.FPS), func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (m Model) Init() tea.Cmd {
	if m.watch != nil {
		return tea.Batch(m.tick(), m.watch.Next())
	}
	return m.tick()
}

// Close stops the config watcher, if any.
func (m Model) Close() error {
	if m.watch != nil {
		return m.watch.Close()
	}
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg.String())
	case tea.WindowSizeMsg:
		w, h := msg.Width-44, msg.Height-2
		if w > 10 && h > 5 {
			m.canvas = NewCanvas(w, h)
			m.draw()
		}
	case TickMsg:
		now := time.Time(msg)
		dt := 0.0
		if !m.last.IsZero() {
			dt = min(now.Sub(m.last).Seconds(), maxStep)
		}
		m.last = now
		if !m.paused {
			m.d.Tick(dt)
			m.elapsed += dt
		}
		m.frames++
		m.draw()
		return m, m.tick()
	case ReloadMsg:
		if msg.Err != nil {
			m.setStatus(msg.Err)
		} else {
			m.setStatus(m.d.Reload(msg.Config))
			if m.statusOK {
				m.status = "reloaded " + m.opts.Watch
			}
		}
		m.refresh()
		return m, m.watch.Next()
	}
	return m, nil
}

func (m Model) handleKey(k string) (tea.Model, tea.Cmd) {
	switch k {
	case "q", "ctrl+c", "esc":
		m.Close()
		return m, tea.Quit
	case " ":
		m.paused = !m.paused
	case "?":
		m.showHelp = !m.showHelp
	case "t":
		m.theme = NextTheme(m.theme)
		m.st = newStyles(m.theme)
	case "r":
		m.cam = NewCamera()
		m.fit()
	case "x":
		m.cam.RotateX(0.1)
	case "X":
		m.cam.RotateX(-0.1)
	case "y":
		m.cam.RotateY(0.1)
	case "Y":
		m.cam.RotateY(-0.1)
	case "z":
		m.cam.RotateZ(0.1)
	case "Z":
		m.cam.RotateZ(-0.1)
	case "+", "=":
		m.cam.ZoomIn()
	case "-", "_":
		m.cam.ZoomOut()
	default:
		if handled, err := m.d.Key(k); handled {
			m.setStatus(err)
		}
	}
	m.refresh()
	return m, nil
}

func (m *Model) setStatus(err error) {
	if err != nil {
		m.status, m.statusOK = err.Error(), false
		return
	}
	m.status, m.statusOK = "", true
}

// refresh refits after a rebuild and redraws.
func (m *Model) refresh() {
	if m.ctl.rebuilt() {
		m.fit()
	}
	m.draw()
}

func (m *Model) draw() {
	m.canvas.Clear()
	m.wire.Clear()
	g, root := m.d.Scene()
	m.wire.FromScene(g, root, m.opts.Wire)
	m.ctl.overlay(m.wire)
	Render3D(m.canvas, m.wire, m.cam)
}

// Canvas returns the last drawn frame.
func (m Model) Canvas() *Canvas { return m.canvas }

// Status returns the message shown under the panel, empty when the last
// change was accepted.
func (m Model) Status() string { return m.status }

func (m Model) View() string {
	var s strings.Builder
	s.WriteString(m.st.header.Render(strings.ToUpper(m.d.Name())) + "\n")
	state := "RUNNING"
	if m.paused {
		state = "PAUSED"
	}
	s.WriteString(m.st.active.Render(state) + "\n\n")
	s.WriteString(m.st.row("Time", fmt.Sprintf("%.1fs", m.elapsed)))
	s.WriteString(m.st.row("Edges", fmt.Sprintf("%d", len(m.wire.Edges))))
	s.WriteString(m.st.row("Theme", m.theme.Name))
	s.WriteString("\n")
	s.WriteString(m.ctl.rows(m.st))
	if m.status != "" {
		style := m.st.err
		if m.statusOK {
			style = m.st.value
		}
		s.WriteString("\n" + style.Render(m.status) + "\n")
	}
	s.WriteString(m.st.help.Render(m.ctl.help() + "\nxyz:Orbit +-:Zoom R:Recenter\nSP:Pause T:Theme ?:Help Q:Quit"))

	body := lipgloss.JoinHorizontal(lipgloss.Top,
		m.st.canvas.Render(m.canvas.String()),
		m.st.panel.Render(s.String()))
	if m.showHelp {
		return m.st.panel.Render(helpText) + "\n" + body
	}
	return body
}

const helpText = `KEYBOARD
  x/X y/Y z/Z  orbit the camera
  + / -        zoom
  r            recenter
  space        pause the animation
  t            cycle themes
  klein:   b ball, [ ] walker v, o opacity, s/S speed
  strings: n/N depth, b/B base, m/M model,
           0-9 toggle digit, c one color
  q            quit`

// Run starts m full screen and blocks until the user quits.
func Run(m tea.Model) error {
	_, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	if c, ok := m.(interface{ Close() error }); ok {
		c.Close()
	}
	return err
}
