package command

import "maps"

// Action identifies an editor command. Values are opaque to this package;
// the editor backend owns their translation to actual keystrokes.
type Action string

const (
	ActionSelectAll  Action = "select-all"
	ActionUndo       Action = "undo"
	ActionRedo       Action = "redo"
	ActionBold       Action = "bold"
	ActionItalic     Action = "italic"
	ActionUnderline  Action = "underline"
	ActionCut        Action = "cut"
	ActionCopy       Action = "copy"
	ActionPaste      Action = "paste"
	ActionDeleteBack Action = "delete-back"
	ActionSave       Action = "save"
)

// actionTable maps normalized dictated phrases to editor actions.
// Keys must be lowercase and trimmed. Never mutated after init.
var actionTable = map[string]Action{
	"select all":     ActionSelectAll,
	"undo that":      ActionUndo,
	"redo that":      ActionRedo,
	"bold that":      ActionBold,
	"italicize that": ActionItalic,
	"underline that": ActionUnderline,
	"cut that":       ActionCut,
	"copy that":      ActionCopy,
	"paste that":     ActionPaste,
	"delete that":    ActionDeleteBack,
	"save document":  ActionSave,
	"scratch that":   ActionUndo,
}

// textTable maps normalized dictated phrases to literal substitutions.
// Keys must be lowercase and trimmed. Never mutated after init.
var textTable = map[string]string{
	"new line":           "\n",
	"new paragraph":      "\n\n",
	"tab key":            "\t",
	"period":             ".",
	"comma":              ",",
	"exclamation point":  "!",
	"exclamation mark":   "!",
	"question mark":      "?",
	"colon":              ":",
	"semicolon":          ";",
	"open paren":         "(",
	"close paren":        ")",
	"open quote":         "“",
	"close quote":        "”",
	"open single quote":  "‘",
	"close single quote": "’",
	"hyphen":             "-",
	"dash":               "—",
	"ellipsis":           "…",
}

// ActionTable returns a copy of the phrase → action mapping.
func ActionTable() map[string]Action {
	return maps.Clone(actionTable)
}

// TextTable returns a copy of the phrase → substitution mapping.
func TextTable() map[string]string {
	return maps.Clone(textTable)
}
