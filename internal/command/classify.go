// Package command classifies dictated text against the fixed voice-command
// tables: a phrase is either an editor action, a literal substitution, or
// plain text to insert verbatim.
package command

import "strings"

// Kind discriminates the three classification outcomes.
type Kind int

const (
	// KindInsert means the input matched no table and is inserted as-is.
	KindInsert Kind = iota
	// KindText means the input matched a literal substitution phrase.
	KindText
	// KindAction means the input matched an editor action phrase.
	KindAction
)

func (k Kind) String() string {
	switch k {
	case KindAction:
		return "action"
	case KindText:
		return "text"
	default:
		return "insert"
	}
}

// Result is the outcome of classifying one dictated phrase.
// Exactly one interpretation applies: Action is set only for KindAction,
// Text holds the substitution for KindText and the original input for
// KindInsert.
type Result struct {
	Kind   Kind
	Action Action
	Text   string
}

// Classify maps raw dictated text to an action, a substitution, or verbatim
// insertion. Matching is exact after trimming and lowercasing; the action
// table takes precedence over the text table. For KindInsert the original
// text is returned byte-for-byte, including its casing.
func Classify(raw string) Result {
	normalized := strings.ToLower(strings.TrimSpace(raw))

	if action, ok := actionTable[normalized]; ok {
		return Result{Kind: KindAction, Action: action}
	}
	if sub, ok := textTable[normalized]; ok {
		return Result{Kind: KindText, Text: sub}
	}
	return Result{Kind: KindInsert, Text: raw}
}
