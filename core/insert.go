package core

// InsertChar inserts one character at the cursor and advances by its
// display width (tabs advance to the next tab stop).
func (e *Editor) InsertChar(ch rune) {
	e.beginEdit()
	e.buf.InsertChar(e.cursor.Row, e.cursor.Col, ch)
	e.cursor.Col += graphemeWidthAt(e.cursor.Col, string(ch))
	e.dirty = true
}

// InsertNewline splits the current line at the cursor and moves to the
// start of the new line.
func (e *Editor) InsertNewline() {
	e.beginEdit()
	e.buf.InsertLineBreak(e.cursor.Row, e.cursor.Col)
	e.cursor.Row++
	e.cursor.Col = 0
	e.dirty = true
}

// DeleteBackward removes the grapheme before the cursor; at column 0 it
// merges the line into the previous one.
func (e *Editor) DeleteBackward() {
	e.beginEdit()
	if e.cursor.Col > 0 {
		e.cursor.Col = e.buf.DeleteGraphemeBefore(e.cursor.Row, e.cursor.Col)
		e.dirty = true
	} else if e.cursor.Row > 0 {
		col := e.buf.MergeWithPreviousLine(e.cursor.Row)
		e.cursor.Row--
		e.cursor.Col = col
		e.dirty = true
	}
}
