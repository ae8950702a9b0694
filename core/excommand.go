package core

import (
	"strconv"
	"strings"
)

// ExecuteCommand runs a `:` command line. Line targets are handled here:
// a bare number jumps to that 1-based line (0 means 1, out of range
// clamps), `$` jumps to the last line, `+N`/`-N` move relative to the
// cursor. Returns false for anything else so the caller can implement
// file-level commands like w, q, wq and x.
func (e *Editor) ExecuteCommand(cmd string) bool {
	s := strings.TrimSpace(cmd)
	if s == "$" {
		e.cursor = Position{Row: e.buf.LineCount() - 1}
		return true
	}
	if len(s) > 1 && (s[0] == '+' || s[0] == '-') {
		if n, err := strconv.Atoi(s[1:]); err == nil && n >= 0 {
			if s[0] == '-' {
				n = -n
			}
			e.cursor = Position{Row: clampInt(e.cursor.Row+n, 0, e.buf.LineCount()-1)}
			e.ClampCursor()
			return true
		}
	}
	if s != "" && isAllDigits(s) {
		if n, err := strconv.Atoi(s); err == nil {
			if n == 0 {
				n = 1
			}
			e.gotoLine(n)
		}
		return true
	}
	return false
}

func isAllDigits(s string) bool {
	for _, ch := range s {
		if ch < '0' || ch > '9' {
			return false
		}
	}
	return true
}
