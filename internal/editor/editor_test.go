package editor

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/fjccv/dragonbridge/internal/command"
)

func TestEveryActionHasAShortcut(t *testing.T) {
	t.Parallel()

	for phrase, action := range command.ActionTable() {
		require.Contains(t, shortcuts, action, "phrase %q", phrase)
	}
}

func TestXdotoolKey(t *testing.T) {
	t.Parallel()

	require.Equal(t, "ctrl+z", xdotoolKey(shortcuts[command.ActionUndo]))
	require.Equal(t, "ctrl+a", xdotoolKey(shortcuts[command.ActionSelectAll]))
	require.Equal(t, "BackSpace", xdotoolKey(shortcuts[command.ActionDeleteBack]))
}

func TestWtypeArgs(t *testing.T) {
	t.Parallel()

	require.Equal(t, []string{"-M", "ctrl", "b", "-m", "ctrl"}, wtypeArgs(shortcuts[command.ActionBold]))
	require.Equal(t, []string{"-P", "backspace", "-p", "backspace"}, wtypeArgs(shortcuts[command.ActionDeleteBack]))
}

func TestKeystrokeScriptSplitsLinesAndEscapes(t *testing.T) {
	t.Parallel()

	got := keystrokeScript("say \"hi\"\nbye")
	require.Contains(t, got, `keystroke "say \"hi\""`)
	require.Contains(t, got, "keystroke return")
	require.Contains(t, got, `keystroke "bye"`)

	// A lone newline still produces a return keystroke.
	require.Contains(t, keystrokeScript("\n"), "keystroke return")
}

func TestActionScript(t *testing.T) {
	t.Parallel()

	require.Contains(t, actionScript(shortcuts[command.ActionUndo]), `keystroke "z" using command down`)
	require.Contains(t, actionScript(shortcuts[command.ActionDeleteBack]), "key code 51")
}

func TestSendKeysEscape(t *testing.T) {
	t.Parallel()

	require.Equal(t, "hello world", sendKeysEscape("hello world"))
	require.Equal(t, "a{+}b{^}c", sendKeysEscape("a+b^c"))
	require.Equal(t, "one{ENTER}two", sendKeysEscape("one\ntwo"))
	require.Equal(t, "{TAB}", sendKeysEscape("\t"))
	require.Equal(t, "crlf{ENTER}", sendKeysEscape("crlf\r\n"))
}

func TestSendKeysChord(t *testing.T) {
	t.Parallel()

	require.Equal(t, "^s", sendKeysChord(shortcuts[command.ActionSave]))
	require.Equal(t, "{BACKSPACE}", sendKeysChord(shortcuts[command.ActionDeleteBack]))
}

func TestSendKeysScriptQuotesSingleQuotes(t *testing.T) {
	t.Parallel()

	require.Contains(t, sendKeysScript("it's"), "SendKeys('it''s')")
}

func TestNoopEditor(t *testing.T) {
	t.Parallel()

	var e Editor = Noop{}
	require.NoError(t, e.InsertText(context.Background(), "anything"))
	require.NoError(t, e.InvokeAction(context.Background(), command.ActionUndo))
	require.Equal(t, "noop", e.Name())
}
