package viz

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/michaeljayl/graphicsn/internal/config"
	"github.com/michaeljayl/graphicsn/internal/demo"
)

var demoInfo = map[string]string{
	"klein":   "ball walking a Klein bottle",
	"strings": "nested digit layouts",
}

var demoNames = []string{"klein", "strings"}

const (
	stateMenu = iota
	statePresets
	stateLive
)

// menu picks a demo and a preset, then hands over to its live Model.
type menu struct {
	state, cursor int
	base          *config.Config
	opts          Options
	selected      string
	presets       []string
	presetCursor  int
	err           string
	live          Model
}

// NewMenu returns the launcher. base supplies the settings used when the
// "current" preset is chosen.
func NewMenu(base *config.Config, opts Options) tea.Model {
	return &menu{base: base, opts: opts}
}

func (m *menu) Init() tea.Cmd { return nil }

func (m *menu) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.state == stateLive {
		next, cmd := m.live.Update(msg)
		m.live = next.(Model)
		return m, cmd
	}
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch m.state {
	case stateMenu:
		return m.menuKey(key.String())
	case statePresets:
		return m.presetKey(key.String())
	}
	return m, nil
}

func (m *menu) menuKey(k string) (tea.Model, tea.Cmd) {
	switch k {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(demoNames)-1 {
			m.cursor++
		}
	case "enter", " ":
		m.selected = demoNames[m.cursor]
		m.presets = append([]string{"current"}, config.ListPresets(m.selected)...)
		m.state, m.presetCursor, m.err = statePresets, 0, ""
	}
	return m, nil
}

func (m *menu) presetKey(k string) (tea.Model, tea.Cmd) {
	switch k {
	case "ctrl+c":
		return m, tea.Quit
	case "q", "esc":
		m.state = stateMenu
	case "up", "k":
		if m.presetCursor > 0 {
			m.presetCursor--
		}
	case "down", "j":
		if m.presetCursor < len(m.presets)-1 {
			m.presetCursor++
		}
	case "enter", " ":
		return m.start()
	}
	return m, nil
}

func (m *menu) start() (tea.Model, tea.Cmd) {
	cfg := m.base
	if name := m.presets[m.presetCursor]; name != "current" {
		cfg = config.GetPreset(m.selected, name)
	}
	live, err := Launch(m.selected, cfg, m.opts)
	if err != nil {
		m.err = err.Error()
		return m, nil
	}
	m.live, m.state = live, stateLive
	return m, m.live.Init()
}

// Launch builds the controller for the named demo and its live Model.
func Launch(name string, cfg *config.Config, opts Options) (Model, error) {
	switch name {
	case "klein":
		k, err := demo.NewKlein(cfg.Klein, opts.Log)
		if err != nil {
			return Model{}, err
		}
		return NewKleinModel(k, opts)
	case "strings":
		s, err := demo.NewStrings(cfg.Strings, opts.Log)
		if err != nil {
			return Model{}, err
		}
		return NewStringsModel(s, opts)
	}
	return Model{}, fmt.Errorf("unknown demo %q", name)
}

// Close stops the live viewer's watcher.
func (m *menu) Close() error {
	if m.state == stateLive {
		return m.live.Close()
	}
	return nil
}

var (
	menuTitle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#00cccc")).Bold(true)
	menuSub    = lipgloss.NewStyle().Foreground(lipgloss.Color("#666688"))
	menuCursor = lipgloss.NewStyle().Foreground(lipgloss.Color("#00ffff")).Bold(true)
	menuPick   = lipgloss.NewStyle().Foreground(lipgloss.Color("#ffffff")).Bold(true)
	menuDesc   = lipgloss.NewStyle().Foreground(lipgloss.Color("#ff88ff"))
	menuDim    = lipgloss.NewStyle().Foreground(lipgloss.Color("#555566"))
	menuKey    = lipgloss.NewStyle().Foreground(lipgloss.Color("#00aaaa")).Bold(true)
	menuErr    = lipgloss.NewStyle().Foreground(lipgloss.Color("#ff4444")).Bold(true)
)

func (m *menu) View() string {
	switch m.state {
	case stateMenu:
		return m.list("GRAPHICSN", "3d demos in the terminal", demoNames, m.cursor, demoInfo,
			"j/k", " navigate  ", "enter", " select  ", "q", " quit")
	case statePresets:
		return m.list(strings.ToUpper(m.selected), demoInfo[m.selected], m.presets, m.presetCursor, nil,
			"j/k", " navigate  ", "enter", " start  ", "esc", " back")
	case stateLive:
		return m.live.View()
	}
	return ""
}

func (m *menu) list(title, sub string, items []string, cursor int, info map[string]string, hints ...string) string {
	var b strings.Builder
	b.WriteString("\n\n    " + menuTitle.Render(title) + "\n    " + menuSub.Render(sub) + "\n    " +
		menuSub.Render("─────────────────────────") + "\n\n")
	for i, name := range items {
		desc := info[name]
		if i == cursor {
			fmt.Fprintf(&b, "    %s %s  %s\n", menuCursor.Render("▸"), menuPick.Render(fmt.Sprintf("%-12s", name)), menuDesc.Render(desc))
		} else {
			fmt.Fprintf(&b, "      %s  %s\n", menuDim.Render(fmt.Sprintf("%-12s", name)), menuDim.Render(desc))
		}
	}
	if m.err != "" {
		b.WriteString("\n    " + menuErr.Render(m.err) + "\n")
	}
	b.WriteString("\n    ")
	for i := 0; i+1 < len(hints); i += 2 {
		b.WriteString(menuKey.Render(hints[i]) + menuDim.Render(hints[i+1]))
	}
	b.WriteString("\n")
	return b.String()
}
