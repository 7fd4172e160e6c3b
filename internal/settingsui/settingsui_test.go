package settingsui

import (
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/fjccv/dragonbridge/internal/settings"
)

func newModel(t *testing.T) (Model, *settings.Store) {
	t.Helper()
	store := settings.NewStore(filepath.Join(t.TempDir(), "settings.json"))
	return New(store), store
}

func key(s string) tea.KeyMsg {
	switch s {
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "space":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

func update(m Model, msgs ...tea.Msg) Model {
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		m = next.(Model)
	}
	return m
}

func TestFormPrefilledWithDefaults(t *testing.T) {
	t.Parallel()

	m, _ := newModel(t)
	s := m.Settings()
	require.Equal(t, 300, s.PollIntervalMS)
	require.True(t, s.AutoSpace)
	require.True(t, s.ShowNotifications)
}

func TestToggleBooleans(t *testing.T) {
	t.Parallel()

	m, _ := newModel(t)
	m = update(m, key("tab"), key("space")) // auto_space off
	m = update(m, key("tab"), key("space")) // notifications off

	s := m.Settings()
	require.False(t, s.AutoSpace)
	require.False(t, s.ShowNotifications)
}

func TestIntervalClampedOnSave(t *testing.T) {
	t.Parallel()

	m, store := newModel(t)
	m.interval.SetValue("50")
	m = update(m, key("enter"))

	require.Equal(t, settings.MinPollIntervalMS, m.Settings().PollIntervalMS)
	require.Equal(t, settings.MinPollIntervalMS, store.Load().PollIntervalMS)
}

func TestEnterPersistsForm(t *testing.T) {
	t.Parallel()

	m, store := newModel(t)
	m.interval.SetValue("750")
	m = update(m, key("tab"), key("space"), key("enter"))

	saved := store.Load()
	require.Equal(t, 750, saved.PollIntervalMS)
	require.False(t, saved.AutoSpace)
	require.True(t, saved.ShowNotifications)
}

func TestIntervalInputRejectsNonDigits(t *testing.T) {
	t.Parallel()

	m, _ := newModel(t)
	m.interval.SetValue("")
	m = update(m, key("a"), key("5"), key("0"), key("0"))
	require.Equal(t, "500", m.interval.Value())
}

func TestViewRendersAllFields(t *testing.T) {
	t.Parallel()

	m, _ := newModel(t)
	v := m.View()
	require.Contains(t, v, "poll interval")
	require.Contains(t, v, "space before inserted text")
	require.Contains(t, v, "notifications on start/stop")
}
