// internal/tui/model.go
package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/tamzrod/tcm-scripter/internal/session"
	"github.com/tamzrod/tcm-scripter/internal/simulator"
)

const barWidth = 20

// pollInterval is how often the view re-checks the controller; the
// session may close underneath us via the watchdog.
const pollInterval = 100 * time.Millisecond

type tickMsg time.Time

type keyMap struct {
	Up    key.Binding
	Down  key.Binding
	Left  key.Binding
	Right key.Binding
	Quit  key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up:    key.NewBinding(key.WithKeys("up", "k")),
		Down:  key.NewBinding(key.WithKeys("down", "j")),
		Left:  key.NewBinding(key.WithKeys("left", "h")),
		Right: key.NewBinding(key.WithKeys("right", "l")),
		Quit:  key.NewBinding(key.WithKeys("q", "esc", "ctrl+c")),
	}
}

// Styles groups the lipgloss styles of the simulator view.
type Styles struct {
	Title    lipgloss.Style
	Selected lipgloss.Style
	Row      lipgloss.Style
	Help     lipgloss.Style
}

func defaultStyles() Styles {
	return Styles{
		Title:    lipgloss.NewStyle().Bold(true).MarginBottom(1),
		Selected: lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Bold(true),
		Row:      lipgloss.NewStyle(),
		Help:     lipgloss.NewStyle().Faint(true).MarginTop(1),
	}
}

// Model is a thin terminal adapter over a session controller. All
// session semantics live behind the controller; the model only maps
// keys to inputs and renders snapshots.
type Model struct {
	ctl    *session.Controller
	keys   keyMap
	styles Styles

	closed bool
}

// New wraps a started controller.
func New(ctl *session.Controller) Model {
	return Model{
		ctl:    ctl,
		keys:   defaultKeyMap(),
		styles: defaultStyles(),
	}
}

func (m Model) Init() tea.Cmd {
	return pollCmd()
}

func pollCmd() tea.Cmd {
	return tea.Tick(pollInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.ctl.Stop()
			m.closed = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Up):
			m.ctl.HandleInput(simulator.InputUp)
		case key.Matches(msg, m.keys.Down):
			m.ctl.HandleInput(simulator.InputDown)
		case key.Matches(msg, m.keys.Left):
			m.ctl.HandleInput(simulator.InputLeft)
		case key.Matches(msg, m.keys.Right):
			m.ctl.HandleInput(simulator.InputRight)
		}
		return m, nil

	case tickMsg:
		if !m.ctl.Running() {
			m.closed = true
			return m, tea.Quit
		}
		return m, pollCmd()
	}
	return m, nil
}

func (m Model) View() string {
	if m.closed {
		return ""
	}

	var b strings.Builder
	b.WriteString(m.styles.Title.Render("TCM Settings Simulator"))
	b.WriteString("\n")

	for _, s := range m.ctl.View() {
		line := fmt.Sprintf("%-22s %s %7.2f%%", displayName(s.Name), bar(s), s.Value*100)
		if s.Selected {
			b.WriteString(m.styles.Selected.Render("> " + line))
		} else {
			b.WriteString(m.styles.Row.Render("  " + line))
		}
		b.WriteString("\n")
	}

	b.WriteString(m.styles.Help.Render("↑/↓ select · ←/→ adjust · q quit"))
	return b.String()
}

// bar renders a fixed-width gauge. Inverted settings fill from the
// other end so the bar grows with the physical increase input, the
// same flip the in-game screen applies.
func bar(s session.SettingView) string {
	span := s.Max - s.Min
	ratio := 0.0
	if span > 0 {
		ratio = (s.Value - s.Min) / span
	}
	if s.Inverted {
		ratio = 1 - ratio
	}

	filled := int(ratio*barWidth + 0.5)
	if filled < 0 {
		filled = 0
	}
	if filled > barWidth {
		filled = barWidth
	}
	return "[" + strings.Repeat("█", filled) + strings.Repeat("░", barWidth-filled) + "]"
}

// displayName converts a canonical name back to title case for the UI.
func displayName(name string) string {
	words := strings.Split(name, "_")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
