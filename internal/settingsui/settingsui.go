// Package settingsui implements the interactive settings editor: a small
// bubbletea form over the three persisted settings. Poll interval is clamped
// to the allowed range on save.
package settingsui

import (
	"fmt"
	"log/slog"
	"strconv"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/fjccv/dragonbridge/internal/settings"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FF6B6B")).
			MarginBottom(1)

	pathStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666")).
			Italic(true).
			MarginBottom(1)

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#f1faee"))

	activeStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#ffe66d"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666")).
			MarginTop(1)

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#4ecdc4"))
)

// Field indices, in display order.
const (
	fieldInterval = iota
	fieldAutoSpace
	fieldNotify
	fieldCount
)

// Model is the settings form state.
type Model struct {
	store *settings.Store

	interval          textinput.Model
	autoSpace         bool
	showNotifications bool

	focus  int
	status string
}

// New builds a form pre-filled from the store.
func New(store *settings.Store) Model {
	s := store.Load()

	ti := textinput.New()
	ti.SetValue(strconv.Itoa(s.PollIntervalMS))
	ti.CharLimit = 4
	ti.Width = 6
	ti.Validate = func(v string) error {
		for _, r := range v {
			if r < '0' || r > '9' {
				return fmt.Errorf("digits only")
			}
		}
		return nil
	}
	ti.Focus()

	return Model{
		store:             store,
		interval:          ti,
		autoSpace:         s.AutoSpace,
		showNotifications: s.ShowNotifications,
	}
}

// Settings returns the form contents as a clamped Settings value.
func (m Model) Settings() settings.Settings {
	ms, err := strconv.Atoi(m.interval.Value())
	if err != nil {
		ms = settings.DefaultPollIntervalMS
	}
	return settings.Settings{
		PollIntervalMS:    settings.ClampInterval(ms),
		AutoSpace:         m.autoSpace,
		ShowNotifications: m.showNotifications,
	}
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "esc", "ctrl+c":
			return m, tea.Quit

		case "tab", "down":
			m.setFocus((m.focus + 1) % fieldCount)
			return m, nil

		case "shift+tab", "up":
			m.setFocus((m.focus + fieldCount - 1) % fieldCount)
			return m, nil

		case " ":
			if m.toggleFocused() {
				return m, nil
			}

		case "enter":
			s := m.Settings()
			if err := m.store.Save(s); err != nil {
				slog.Warn("settings save failed", "err", err)
				m.status = "save failed: " + err.Error()
			} else {
				m.status = fmt.Sprintf("saved (interval %d ms)", s.PollIntervalMS)
			}
			return m, tea.Quit
		}
	}

	if m.focus == fieldInterval {
		var cmd tea.Cmd
		m.interval, cmd = m.interval.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *Model) setFocus(f int) {
	m.focus = f
	if f == fieldInterval {
		m.interval.Focus()
	} else {
		m.interval.Blur()
	}
}

// toggleFocused flips the focused boolean field; false when the focused
// field is not a toggle.
func (m *Model) toggleFocused() bool {
	switch m.focus {
	case fieldAutoSpace:
		m.autoSpace = !m.autoSpace
		return true
	case fieldNotify:
		m.showNotifications = !m.showNotifications
		return true
	default:
		return false
	}
}

func (m Model) View() string {
	rows := []string{
		fmt.Sprintf("Clipboard poll interval (ms, %d–%d): %s",
			settings.MinPollIntervalMS, settings.MaxPollIntervalMS, m.interval.View()),
		fmt.Sprintf("[%s] Automatically add space before inserted text (reserved)", check(m.autoSpace)),
		fmt.Sprintf("[%s] Show notifications on start/stop", check(m.showNotifications)),
	}

	out := titleStyle.Render("Dragon Bridge Settings") + "\n"
	out += pathStyle.Render("File: "+m.store.Path()) + "\n"
	for i, row := range rows {
		style := labelStyle
		marker := "  "
		if i == m.focus {
			style = activeStyle
			marker = "> "
		}
		out += style.Render(marker+row) + "\n"
	}
	if m.status != "" {
		out += statusStyle.Render(m.status) + "\n"
	}
	out += helpStyle.Render("tab/↑↓ move · space toggle · enter save · esc cancel")
	return out
}

func check(b bool) string {
	if b {
		return "x"
	}
	return " "
}

// Run opens the settings editor and blocks until it exits.
func Run(store *settings.Store) error {
	_, err := tea.NewProgram(New(store)).Run()
	return err
}
