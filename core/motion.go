package core

// applyMotion executes a counted motion, optionally sweeping an operator
// over the traversed range. Word motions continue on the following (or
// preceding) lines when the current line is exhausted.
func (e *Editor) applyMotion(act Action, count int, op *pendingOp) {
	n := max(count, 1)
	groupedHere := false
	if n > 1 && op != nil && !e.countGroupActive &&
		(op.kind == OperatorDelete || op.kind == OperatorChange) {
		// One snapshot for the whole counted operator+motion.
		e.pushUndoSnapshot()
		e.countGroupActive = true
		groupedHere = true
	}
	switch act {
	case MoveWordForward:
		target := e.cursor
		for step := 0; step < n; step++ {
			dest, ok := e.nextWordTarget(target, op, n-step)
			if !ok {
				break
			}
			target = dest
		}
		e.applyRangeOrMove(target, false, op)
	case MoveWordBackward:
		target := e.cursor
		for i := 0; i < n; i++ {
			prev := e.buf.PreviousWordStart(target.Row, target.Col)
			if prev != target.Col {
				target = Position{Row: target.Row, Col: prev}
				continue
			}
			if target.Row == 0 {
				break
			}
			dest, ok := e.findPrevWordStartFrom(target.Row - 1)
			if !ok {
				break
			}
			target = dest
		}
		e.applyRangeOrMove(target, false, op)
	case MoveEndWord:
		target := e.cursor
		for i := 0; i < n; i++ {
			end := e.buf.EndOfWord(target.Row, target.Col)
			if end != target.Col {
				target = Position{Row: target.Row, Col: end}
				continue
			}
			dest, ok := e.findNextWordEndFrom(target.Row + 1)
			if !ok {
				break
			}
			target = dest
		}
		e.applyRangeOrMove(target, true, op)
	case LineStart:
		e.applyRangeOrMove(Position{Row: e.cursor.Row}, false, op)
	case LineEnd:
		end := e.buf.DisplayWidth(e.cursor.Row)
		e.applyRangeOrMove(Position{Row: e.cursor.Row, Col: end}, true, op)
	default:
		if op == nil {
			e.applyActionCount(act, n)
		}
	}
	if groupedHere {
		e.countGroupActive = false
	}
}

// nextWordTarget advances one word-forward step from pos. remaining is how
// many repetitions are left including this one: a delete or change with one
// repetition left at end of line targets column 0 of the next line, so the
// sweep consumes just the newline and the next line's indentation survives.
func (e *Editor) nextWordTarget(pos Position, op *pendingOp, remaining int) (Position, bool) {
	next := e.buf.NextWordStart(pos.Row, pos.Col)
	if next != pos.Col {
		return Position{Row: pos.Row, Col: next}, true
	}
	if pos.Row+1 >= e.buf.LineCount() {
		return Position{}, false
	}
	if op != nil && (op.kind == OperatorDelete || op.kind == OperatorChange) && remaining <= 1 {
		return Position{Row: pos.Row + 1}, true
	}
	return e.findNextWordStartFrom(pos.Row + 1)
}

// applyRangeOrMove either moves the cursor to target (no operator) or
// sweeps the operator over [cursor, target] in document order.
func (e *Editor) applyRangeOrMove(target Position, inclusive bool, op *pendingOp) {
	if op == nil {
		if e.opPending == nil {
			e.cursor = target
			return
		}
		op = e.opPending
		e.opPending = nil
	}
	if op.kind == OperatorDelete || op.kind == OperatorChange {
		e.beginEdit()
	}
	start, end := e.cursor, target
	if target.Row < e.cursor.Row || (target.Row == e.cursor.Row && target.Col < e.cursor.Col) {
		start, end = target, e.cursor
	}
	if end.Row < start.Row || (end.Row == start.Row && end.Col <= start.Col) {
		return
	}
	switch op.kind {
	case OperatorDelete, OperatorChange:
		e.setRegister(e.extractRange(start, end, inclusive), e.rangeKind(start, end))
		e.deleteRange(start, end, inclusive)
		e.cursor = start
		e.dirty = true
		if op.kind == OperatorChange {
			e.mode = InsertMode
		}
	case OperatorYank:
		e.setRegister(e.extractRange(start, end, inclusive), e.rangeKind(start, end))
	}
}

// rangeKind classifies a sweep: whole lines from column 0 through at least
// the end line's width read as linewise, everything else charwise.
func (e *Editor) rangeKind(start, end Position) ClipboardKind {
	if start.Row < end.Row && start.Col == 0 && end.Col >= e.buf.DisplayWidth(end.Row) {
		return Linewise
	}
	return Charwise
}

func (e *Editor) extractRange(start, end Position, inclusive bool) string {
	endCol := end.Col
	if inclusive {
		endCol = e.buf.NextColumn(end.Row, end.Col)
	}
	from := e.buf.CharIndexAt(start.Row, start.Col)
	to := e.buf.CharIndexAt(end.Row, endCol)
	return e.buf.ExtractRange(from, to)
}

func (e *Editor) deleteRange(start, end Position, inclusive bool) {
	endCol := end.Col
	if inclusive {
		endCol = e.buf.NextColumn(end.Row, end.Col)
	}
	from := e.buf.CharIndexAt(start.Row, start.Col)
	to := e.buf.CharIndexAt(end.Row, endCol)
	e.buf.RemoveRange(from, to)
}

func (e *Editor) findNextWordStartFrom(row int) (Position, bool) {
	for y := row; y < e.buf.LineCount(); y++ {
		if col, ok := e.buf.FirstWordStart(y); ok {
			return Position{Row: y, Col: col}, true
		}
	}
	return Position{}, false
}

func (e *Editor) findPrevWordStartFrom(row int) (Position, bool) {
	for y := min(row, e.buf.LineCount()-1); y >= 0; y-- {
		if col, ok := e.buf.LastWordStart(y); ok {
			return Position{Row: y, Col: col}, true
		}
	}
	return Position{}, false
}

func (e *Editor) findNextWordEndFrom(row int) (Position, bool) {
	for y := row; y < e.buf.LineCount(); y++ {
		if col, ok := e.buf.FirstWordEnd(y); ok {
			return Position{Row: y, Col: col}, true
		}
	}
	return Position{}, false
}
