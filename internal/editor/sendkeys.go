package editor

import "strings"

// sendKeysEscape converts text into WScript.Shell SendKeys syntax. The
// characters +^%~(){}[] are SendKeys metacharacters and must be wrapped in
// braces; newlines and tabs map to named keys.
func sendKeysEscape(text string) string {
	var b strings.Builder
	for _, r := range text {
		switch r {
		case '+', '^', '%', '~', '(', ')', '{', '}', '[', ']':
			b.WriteByte('{')
			b.WriteRune(r)
			b.WriteByte('}')
		case '\n':
			b.WriteString("{ENTER}")
		case '\t':
			b.WriteString("{TAB}")
		case '\r':
			// swallowed: CRLF input would otherwise double the newline
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

// sendKeysChord renders a chord in SendKeys syntax ("^z", "{BACKSPACE}").
func sendKeysChord(c chord) string {
	if c.key == "backspace" {
		return "{BACKSPACE}"
	}
	if c.mod {
		return "^" + c.key
	}
	return c.key
}

// sendKeysScript wraps a SendKeys payload in a powershell one-liner.
func sendKeysScript(keys string) string {
	// Single-quoted powershell literal: only ' needs doubling.
	quoted := strings.ReplaceAll(keys, "'", "''")
	return "$ws = New-Object -ComObject WScript.Shell; $ws.SendKeys('" + quoted + "')"
}
