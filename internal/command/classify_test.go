package command

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestClassifyActionPhrasesIgnoreCaseAndWhitespace(t *testing.T) {
	t.Parallel()

	for phrase, want := range ActionTable() {
		for _, input := range []string{
			phrase,
			strings.ToUpper(phrase),
			" " + phrase + " ",
			"\t" + strings.ToUpper(phrase[:1]) + phrase[1:] + "\n",
		} {
			got := Classify(input)
			require.Equal(t, KindAction, got.Kind, "input %q", input)
			require.Equal(t, want, got.Action, "input %q", input)
		}
	}
}

func TestClassifyTextPhrases(t *testing.T) {
	t.Parallel()

	actions := ActionTable()
	for phrase, want := range TextTable() {
		if _, collides := actions[phrase]; collides {
			continue // action table wins by precedence
		}
		got := Classify(phrase)
		require.Equal(t, KindText, got.Kind, "phrase %q", phrase)
		require.Equal(t, want, got.Text, "phrase %q", phrase)
	}
}

func TestClassifyUnknownTextPassesThroughVerbatim(t *testing.T) {
	t.Parallel()

	for _, input := range []string{
		"hello world",
		"Hello World",
		"  The Quick Brown Fox  ",
		"periods", // near-miss: not an exact match
		"undo that please",
	} {
		got := Classify(input)
		require.Equal(t, KindInsert, got.Kind, "input %q", input)
		require.Equal(t, input, got.Text, "input %q", input)
		require.Empty(t, got.Action)
	}
}

func TestClassifyScenarios(t *testing.T) {
	t.Parallel()

	got := Classify("Undo That")
	require.Equal(t, KindAction, got.Kind)
	require.Equal(t, ActionUndo, got.Action)

	got = Classify("new line")
	require.Equal(t, KindText, got.Kind)
	require.Equal(t, "\n", got.Text)

	got = Classify("scratch that")
	require.Equal(t, ActionUndo, got.Action, "scratch that aliases undo")

	got = Classify("dash")
	require.Equal(t, "—", got.Text)
}

func TestClassifyEmptyInputInsertsVerbatim(t *testing.T) {
	t.Parallel()

	got := Classify("")
	require.Equal(t, KindInsert, got.Kind)
	require.Equal(t, "", got.Text)
}

func TestTablesDoNotCollide(t *testing.T) {
	t.Parallel()

	text := TextTable()
	for phrase := range ActionTable() {
		require.NotContains(t, text, phrase)
	}
}

func TestKindString(t *testing.T) {
	t.Parallel()

	require.Equal(t, "action", KindAction.String())
	require.Equal(t, "text", KindText.String())
	require.Equal(t, "insert", KindInsert.String())
}
