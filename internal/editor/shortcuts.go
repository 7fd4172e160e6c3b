package editor

import "github.com/fjccv/dragonbridge/internal/command"

// chord is a platform-neutral keystroke: an optional primary modifier
// (Ctrl on Linux/Windows, Cmd on macOS) plus one key. key is a lowercase
// letter or the special name "backspace".
type chord struct {
	mod bool
	key string
}

// shortcuts maps action identifiers to the conventional editor keystrokes.
// The platform injectors translate chords into their own key syntax.
var shortcuts = map[command.Action]chord{
	command.ActionSelectAll:  {true, "a"},
	command.ActionUndo:       {true, "z"},
	command.ActionRedo:       {true, "y"},
	command.ActionBold:       {true, "b"},
	command.ActionItalic:     {true, "i"},
	command.ActionUnderline:  {true, "u"},
	command.ActionCut:        {true, "x"},
	command.ActionCopy:       {true, "c"},
	command.ActionPaste:      {true, "v"},
	command.ActionDeleteBack: {false, "backspace"},
	command.ActionSave:       {true, "s"},
}

// xdotoolKey renders a chord in xdotool's key syntax ("ctrl+z", "BackSpace").
func xdotoolKey(c chord) string {
	key := c.key
	if key == "backspace" {
		key = "BackSpace"
	}
	if c.mod {
		return "ctrl+" + key
	}
	return key
}

// wtypeArgs renders a chord as wtype arguments.
func wtypeArgs(c chord) []string {
	if c.key == "backspace" {
		return []string{"-P", "backspace", "-p", "backspace"}
	}
	if c.mod {
		return []string{"-M", "ctrl", c.key, "-m", "ctrl"}
	}
	return []string{c.key}
}
