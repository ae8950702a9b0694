package core

// toggleVisualMode implements v/V/Ctrl-V: toggling the active variant
// returns to Normal, switching variants keeps the anchor, entering from
// Normal drops the anchor at the cursor.
func (e *Editor) toggleVisualMode(target Mode) {
	if e.mode.IsVisual() {
		if e.mode == target {
			e.mode = NormalMode
			e.visualAnchor = nil
			return
		}
		e.mode = target
		if e.visualAnchor == nil {
			anchor := e.cursor
			e.visualAnchor = &anchor
		}
		return
	}
	e.mode = target
	anchor := e.cursor
	e.visualAnchor = &anchor
}

// visualBoundsChar orders anchor and cursor into a document-order range.
// ok is false when there is no anchor or the range is empty.
func (e *Editor) visualBoundsChar() (start, end Position, ok bool) {
	if e.visualAnchor == nil {
		return Position{}, Position{}, false
	}
	a, b := *e.visualAnchor, e.cursor
	if b.Row > a.Row || (b.Row == a.Row && b.Col >= a.Col) {
		start, end = a, b
	} else {
		start, end = b, a
	}
	if end.Row == start.Row && end.Col <= start.Col {
		return Position{}, Position{}, false
	}
	return start, end, true
}

func (e *Editor) visualBoundsLine() (sy, ey int, ok bool) {
	if e.visualAnchor == nil {
		return 0, 0, false
	}
	sy, ey = e.visualAnchor.Row, e.cursor.Row
	if sy > ey {
		sy, ey = ey, sy
	}
	return sy, ey, true
}

func (e *Editor) visualBoundsBlock() (sy, ey, left, right int, ok bool) {
	if e.visualAnchor == nil {
		return 0, 0, 0, 0, false
	}
	sy, ey = e.visualAnchor.Row, e.cursor.Row
	if sy > ey {
		sy, ey = ey, sy
	}
	left, right = e.visualAnchor.Col, e.cursor.Col
	if left > right {
		left, right = right, left
	}
	return sy, ey, left, right, true
}

// VisualDelete removes the active selection, capturing it in the register
// with the matching kind, and returns to Normal mode.
func (e *Editor) VisualDelete() {
	switch e.mode {
	case VisualMode:
		if start, end, ok := e.visualBoundsChar(); ok {
			e.beginEdit()
			e.setRegister(e.extractRange(start, end, false), e.rangeKind(start, end))
			e.deleteRange(start, end, false)
			e.cursor = start
			e.dirty = true
		}
	case VisualLineMode:
		if sy, ey, ok := e.visualBoundsLine(); ok {
			e.beginEdit()
			e.setRegister(e.linesText(sy, ey), Linewise)
			e.removeLines(sy, ey)
			e.cursor = Position{Row: sy}
			e.dirty = true
		}
	case VisualBlockMode:
		if sy, ey, left, right, ok := e.visualBoundsBlock(); ok {
			e.beginEdit()
			e.setRegister(e.extractBlock(sy, ey, left, right), Blockwise)
			e.deleteBlock(sy, ey, left, right)
			e.cursor = Position{Row: sy, Col: left}
			e.dirty = true
		}
	}
	e.mode = NormalMode
	e.visualAnchor = nil
	e.ClampCursor()
}

// VisualYank captures the active selection without modifying the document
// and returns to Normal mode.
func (e *Editor) VisualYank() {
	switch e.mode {
	case VisualMode:
		if start, end, ok := e.visualBoundsChar(); ok {
			e.setRegister(e.extractRange(start, end, false), e.rangeKind(start, end))
		}
	case VisualLineMode:
		if sy, ey, ok := e.visualBoundsLine(); ok {
			e.setRegister(e.linesText(sy, ey), Linewise)
		}
	case VisualBlockMode:
		if sy, ey, left, right, ok := e.visualBoundsBlock(); ok {
			e.setRegister(e.extractBlock(sy, ey, left, right), Blockwise)
		}
	}
	e.mode = NormalMode
	e.visualAnchor = nil
}

// VisualChange deletes the selection like VisualDelete and enters Insert
// mode. With an empty selection it still enters Insert.
func (e *Editor) VisualChange() {
	switch e.mode {
	case VisualMode:
		if start, end, ok := e.visualBoundsChar(); ok {
			e.beginEdit()
			e.setRegister(e.extractRange(start, end, false), e.rangeKind(start, end))
			e.deleteRange(start, end, false)
			e.cursor = start
			e.dirty = true
		}
	case VisualLineMode:
		if sy, ey, ok := e.visualBoundsLine(); ok {
			e.beginEdit()
			e.setRegister(e.linesText(sy, ey), Linewise)
			e.removeLines(sy, ey)
			e.cursor = Position{Row: sy}
			e.dirty = true
		}
	case VisualBlockMode:
		if sy, ey, left, right, ok := e.visualBoundsBlock(); ok {
			e.beginEdit()
			e.setRegister(e.extractBlock(sy, ey, left, right), Blockwise)
			e.deleteBlock(sy, ey, left, right)
			e.cursor = Position{Row: sy, Col: left}
			e.dirty = true
		}
	}
	e.mode = InsertMode
	e.visualAnchor = nil
	e.ClampCursor()
}

func (e *Editor) linesText(sy, ey int) string {
	lines := make([]string, 0, ey-sy+1)
	for y := sy; y <= ey; y++ {
		lines = append(lines, e.buf.LineText(y))
	}
	return joinLines(lines)
}

func (e *Editor) removeLines(sy, ey int) {
	for y := sy; y <= ey; y++ {
		e.buf.DeleteLine(sy)
	}
	if e.cursor.Row >= e.buf.LineCount() {
		e.cursor.Row = e.buf.LineCount() - 1
	}
}

// extractBlock reads the [left,right) column span of each row, clamped to
// the row's width, joined with newlines.
func (e *Editor) extractBlock(sy, ey, left, right int) string {
	out := ""
	for y := sy; y <= ey; y++ {
		w := e.buf.DisplayWidth(y)
		start := Position{Row: y, Col: min(left, w)}
		end := Position{Row: y, Col: min(right, w)}
		out += e.extractRange(start, end, false)
		if y != ey {
			out += "\n"
		}
	}
	return out
}

// deleteBlock removes the column span bottom-up so earlier deletions do not
// shift later rows.
func (e *Editor) deleteBlock(sy, ey, left, right int) {
	for y := ey; y >= sy; y-- {
		w := e.buf.DisplayWidth(y)
		start := Position{Row: y, Col: min(left, w)}
		end := Position{Row: y, Col: min(right, w)}
		e.deleteRange(start, end, false)
	}
}
