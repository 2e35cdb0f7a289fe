// Package ansi provides ANSI escape code constants and helpers for terminal
// output outside the full-screen TUI: the cascade player and CLI printers.
package ansi

import (
	"fmt"
	"regexp"
)

// ANSI SGR (Select Graphic Rendition) codes.
const (
	Reset   = "\033[0m"
	Bold    = "\033[1m"
	Dim     = "\033[2m"
	Yellow  = "\033[33m"
	Green   = "\033[32m"
	Red     = "\033[31m"
	Cyan    = "\033[36m"
	Magenta = "\033[35m"
)

// ANSI cursor and line control codes.
const (
	// ClearLine clears the entire current line.
	ClearLine = "\033[2K"

	// CursorUpFmt is a format string for moving the cursor up N lines.
	// Use with fmt.Sprintf or the CursorUp helper.
	CursorUpFmt = "\033[%dA"

	HideCursor = "\033[?25l"
	ShowCursor = "\033[?25h"
)

var reEscape = regexp.MustCompile(`\x1b\[[0-9;?]*[A-Za-z]`)

// CursorUp returns an ANSI escape sequence to move the cursor up n lines.
func CursorUp(n int) string {
	return fmt.Sprintf(CursorUpFmt, n)
}

// Strip removes every CSI escape sequence from s.
func Strip(s string) string {
	return reEscape.ReplaceAllString(s, "")
}
