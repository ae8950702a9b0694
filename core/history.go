package core

// snapshot is one undo step: the whole document plus the cursor.
type snapshot struct {
	text   string
	cursor Position
}

func (e *Editor) takeSnapshot() snapshot {
	return snapshot{text: e.buf.Text(), cursor: e.cursor}
}

func (e *Editor) pushUndoSnapshot() {
	e.undoStack = append(e.undoStack, e.takeSnapshot())
	e.redoStack = nil
}

// beginEdit records an undo snapshot before a mutating edit. Insert-mode
// edits coalesce into one group until EndUndoGroup; edits inside an active
// count group are already covered by its snapshot.
func (e *Editor) beginEdit() {
	switch {
	case e.countGroupActive:
	case e.mode == InsertMode:
		if !e.undoGroupActive {
			e.pushUndoSnapshot()
			e.undoGroupActive = true
		}
	default:
		e.pushUndoSnapshot()
		e.undoGroupActive = false
	}
}

// EndUndoGroup closes the current insert-mode undo group. The next insert
// edit starts a new one (vim's Ctrl-G u, and leaving Insert mode).
func (e *Editor) EndUndoGroup() {
	e.undoGroupActive = false
}

// Undo restores the most recent snapshot. The current mode is kept, the
// cursor is clamped. Returns false when there is nothing to undo.
func (e *Editor) Undo() bool {
	if len(e.undoStack) == 0 {
		return false
	}
	prev := e.undoStack[len(e.undoStack)-1]
	e.undoStack = e.undoStack[:len(e.undoStack)-1]
	e.redoStack = append(e.redoStack, e.takeSnapshot())
	e.restore(prev)
	return true
}

// Redo re-applies the most recently undone snapshot. Returns false when
// there is nothing to redo.
func (e *Editor) Redo() bool {
	if len(e.redoStack) == 0 {
		return false
	}
	next := e.redoStack[len(e.redoStack)-1]
	e.redoStack = e.redoStack[:len(e.redoStack)-1]
	e.undoStack = append(e.undoStack, e.takeSnapshot())
	e.restore(next)
	return true
}

func (e *Editor) restore(s snapshot) {
	e.buf.SetText(s.text)
	e.cursor = s.cursor
	e.ClampCursor()
	e.undoGroupActive = false
}

// undoDepth is exposed for tests only.
func (e *Editor) undoDepth() int {
	return len(e.undoStack)
}
