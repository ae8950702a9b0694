package core

import "strings"

// PasteAfter puts the register after the cursor: linewise content opens
// below the current line, charwise inserts at the cursor, blockwise
// overlays starting on the next line at the cursor column.
func (e *Editor) PasteAfter() {
	if e.reg.text == "" {
		return
	}
	e.beginEdit()
	switch e.reg.kind {
	case Linewise:
		end := e.buf.DisplayWidth(e.cursor.Row)
		text := strings.TrimSuffix(e.reg.text, "\n")
		e.buf.InsertText(e.cursor.Row, end, "\n"+text)
		e.cursor.Row++
		e.cursor.Col = 0
	case Charwise:
		e.buf.InsertText(e.cursor.Row, e.cursor.Col, e.reg.text)
	case Blockwise:
		e.pasteBlockAt(e.cursor.Row+1, e.cursor.Col)
	}
	e.dirty = true
	e.ClampCursor()
}

// PasteBefore puts the register before the cursor: linewise content opens
// above the current line, charwise inserts at the cursor, blockwise
// overlays starting on the current line.
func (e *Editor) PasteBefore() {
	if e.reg.text == "" {
		return
	}
	e.beginEdit()
	switch e.reg.kind {
	case Linewise:
		e.buf.InsertTextAtLineStart(e.cursor.Row, e.reg.text+"\n")
		e.cursor.Col = 0
	case Charwise:
		e.buf.InsertText(e.cursor.Row, e.cursor.Col, e.reg.text)
	case Blockwise:
		e.pasteBlockAt(e.cursor.Row, e.cursor.Col)
	}
	e.dirty = true
	e.ClampCursor()
}

// pasteBlockAt inserts each register line at the same column of successive
// rows, stopping when the buffer runs out of rows.
func (e *Editor) pasteBlockAt(startRow, col int) {
	y := startRow
	for _, seg := range strings.Split(e.reg.text, "\n") {
		if y >= e.buf.LineCount() {
			break
		}
		e.buf.InsertText(y, col, seg)
		y++
	}
	e.cursor = Position{Row: startRow, Col: col}
}
