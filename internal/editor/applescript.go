package editor

import "strings"

// keystrokeScript builds an AppleScript program that types text into the
// frontmost application via System Events. keystroke cannot type a newline
// from a string literal, so lines are typed individually with "keystroke
// return" between them.
func keystrokeScript(text string) string {
	var b strings.Builder
	b.WriteString("tell application \"System Events\"\n")
	for i, line := range strings.Split(text, "\n") {
		if i > 0 {
			b.WriteString("\tkeystroke return\n")
		}
		if line == "" {
			continue
		}
		b.WriteString("\tkeystroke \"")
		b.WriteString(escapeAppleScript(line))
		b.WriteString("\"\n")
	}
	b.WriteString("end tell\n")
	return b.String()
}

// actionScript builds an AppleScript program for one editor shortcut.
func actionScript(c chord) string {
	if c.key == "backspace" {
		// key code 51 is the delete key
		return "tell application \"System Events\" to key code 51\n"
	}
	if c.mod {
		return "tell application \"System Events\" to keystroke \"" + c.key + "\" using command down\n"
	}
	return "tell application \"System Events\" to keystroke \"" + c.key + "\"\n"
}

func escapeAppleScript(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	return strings.ReplaceAll(s, `"`, `\"`)
}
