package core

import "time"

// Position is a cursor location: Row is a line index, Col a display column.
type Position struct {
	Row int
	Col int
}

// pendingOp is an operator waiting for its target (a motion, a repeat of
// itself, or dd-style shorthand).
type pendingOp struct {
	kind  Action
	count int
}

// Editor holds the full editing state: document, cursor, mode, keymap,
// pending key sequence, register, visual anchor and history. It is not safe
// for concurrent use; drive it from a single goroutine.
type Editor struct {
	buf    Buffer
	cursor Position
	mode   Mode
	keymap Keymap

	pending        string
	pendingStarted time.Time
	opPending      *pendingOp

	reg          register
	clipboard    Clipboard
	visualAnchor *Position

	undoStack        []snapshot
	redoStack        []snapshot
	undoGroupActive  bool
	countGroupActive bool

	filename string
	dirty    bool

	status     string
	statusTime time.Time
}

// New creates an editor with an empty single-line document, Normal mode and
// the default keymap.
func New() *Editor {
	return &Editor{
		buf:    NewBuffer(),
		mode:   NormalMode,
		keymap: DefaultKeymap(),
	}
}

// NewFromString creates an editor over existing content.
func NewFromString(text string) *Editor {
	e := New()
	e.buf = NewBufferFromString(text)
	return e
}

func (e *Editor) Buffer() Buffer   { return e.buf }
func (e *Editor) Cursor() Position { return e.cursor }
func (e *Editor) Mode() Mode       { return e.mode }
func (e *Editor) Dirty() bool      { return e.dirty }
func (e *Editor) Filename() string { return e.filename }
func (e *Editor) Pending() string  { return e.pending }

// VisualAnchor returns the selection anchor, or false when no visual
// selection is active.
func (e *Editor) VisualAnchor() (Position, bool) {
	if e.visualAnchor == nil {
		return Position{}, false
	}
	return *e.visualAnchor, true
}

// SetCursor places the cursor, clamped to the document.
func (e *Editor) SetCursor(pos Position) {
	e.cursor = pos
	e.ClampCursor()
}

// SetMode switches modes directly. Leaving Insert ends the current undo
// group; leaving a visual mode drops the anchor.
func (e *Editor) SetMode(m Mode) {
	if e.mode == InsertMode && m != InsertMode {
		e.EndUndoGroup()
	}
	if e.mode.IsVisual() && !m.IsVisual() {
		e.visualAnchor = nil
	}
	e.mode = m
}

// SetKeymap replaces the active keymap, typically with config overrides
// merged in.
func (e *Editor) SetKeymap(km Keymap) {
	e.keymap = km
}

// UseClipboard attaches a system clipboard mirror. The internal register
// stays authoritative; mirroring is best effort.
func (e *Editor) UseClipboard(c Clipboard) {
	e.clipboard = c
}

// SetStatus replaces the status message and stamps it for expiry.
func (e *Editor) SetStatus(msg string) {
	e.status = msg
	e.statusTime = time.Now()
}

// Status returns the current status message and when it was set.
func (e *Editor) Status() (string, time.Time) {
	return e.status, e.statusTime
}

// TimeUntilStatusExpiry reports how long until the status message should
// disappear. The second result is false when no message is showing.
func (e *Editor) TimeUntilStatusExpiry(ttl time.Duration) (time.Duration, bool) {
	if e.status == "" {
		return 0, false
	}
	remaining := time.Until(e.statusTime.Add(ttl))
	if remaining < 0 {
		remaining = 0
	}
	return remaining, true
}

// ClearExpiredStatus drops the status message once its ttl has passed.
func (e *Editor) ClearExpiredStatus(ttl time.Duration) bool {
	if e.status == "" {
		return false
	}
	if time.Since(e.statusTime) < ttl {
		return false
	}
	e.status = ""
	return true
}

// ClampCursor keeps the cursor inside the document: row within the line
// count, column within the line's display width.
func (e *Editor) ClampCursor() {
	maxRow := e.buf.LineCount() - 1
	if e.cursor.Row > maxRow {
		e.cursor.Row = maxRow
	}
	if e.cursor.Row < 0 {
		e.cursor.Row = 0
	}
	if w := e.buf.DisplayWidth(e.cursor.Row); e.cursor.Col > w {
		e.cursor.Col = w
	}
	if e.cursor.Col < 0 {
		e.cursor.Col = 0
	}
}

// ApplyAction performs a single action once. Counted application goes
// through applyActionCount.
func (e *Editor) ApplyAction(act Action) {
	switch act {
	case MoveLeft:
		if e.cursor.Col > 0 {
			e.cursor.Col = e.buf.PreviousColumn(e.cursor.Row, e.cursor.Col)
		} else if e.cursor.Row > 0 {
			e.cursor.Row--
			e.cursor.Col = e.buf.DisplayWidth(e.cursor.Row)
		}
	case MoveRight:
		if e.cursor.Col < e.buf.DisplayWidth(e.cursor.Row) {
			e.cursor.Col = e.buf.NextColumn(e.cursor.Row, e.cursor.Col)
		} else if e.cursor.Row+1 < e.buf.LineCount() {
			e.cursor.Row++
			e.cursor.Col = 0
		}
	case MoveUp:
		if e.cursor.Row > 0 {
			e.cursor.Row--
		}
	case MoveDown:
		if e.cursor.Row+1 < e.buf.LineCount() {
			e.cursor.Row++
		}
	case LineStart:
		e.cursor.Col = 0
	case LineEnd:
		e.cursor.Col = e.buf.DisplayWidth(e.cursor.Row)
	case GotoTop:
		e.cursor = Position{}
	case GotoBottom:
		e.cursor.Row = e.buf.LineCount() - 1
		e.cursor.Col = e.buf.DisplayWidth(e.cursor.Row)
	case EnterInsert:
		e.mode = InsertMode
	case Append:
		if e.cursor.Col < e.buf.DisplayWidth(e.cursor.Row) {
			e.cursor.Col = e.buf.NextColumn(e.cursor.Row, e.cursor.Col)
		}
		e.mode = InsertMode
	case OpenBelow:
		e.beginEdit()
		e.buf.InsertLineBreak(e.cursor.Row, e.buf.DisplayWidth(e.cursor.Row))
		e.cursor.Row++
		e.cursor.Col = 0
		e.dirty = true
		e.mode = InsertMode
	case OpenAbove:
		e.beginEdit()
		e.buf.InsertLineBreak(e.cursor.Row, 0)
		e.cursor.Col = 0
		e.dirty = true
		e.mode = InsertMode
	case EnterVisual:
		e.toggleVisualMode(VisualMode)
	case EnterVisualLine:
		e.toggleVisualMode(VisualLineMode)
	case EnterVisualBlock:
		e.toggleVisualMode(VisualBlockMode)
	case DeleteCharUnder:
		e.beginEdit()
		e.buf.DeleteGraphemeAt(e.cursor.Row, e.cursor.Col)
		e.dirty = true
	case DeleteLine:
		e.beginEdit()
		e.setRegister(e.buf.LineText(e.cursor.Row), Linewise)
		e.buf.DeleteLine(e.cursor.Row)
		if e.cursor.Row >= e.buf.LineCount() {
			e.cursor.Row = e.buf.LineCount() - 1
		}
		e.cursor.Col = 0
		e.dirty = true
	case OperatorDelete, OperatorChange, OperatorYank:
		e.opPending = &pendingOp{kind: act, count: 1}
	case Undo:
		e.Undo()
	case Redo:
		e.Redo()
	case MoveWordForward, MoveWordBackward, MoveEndWord:
		e.applyMotion(act, 1, nil)
	case PasteAfter:
		e.PasteAfter()
	case PasteBefore:
		e.PasteBefore()
	case CommandPrompt, ActionNone:
	}
	e.ClampCursor()
}

// applyActionCount repeats an action. Counted edits snapshot once so a
// single undo reverts the whole run; counted motions never snapshot.
func (e *Editor) applyActionCount(act Action, count int) {
	n := max(count, 1)
	if act == DeleteLine && n > 1 {
		e.deleteNLines(n)
		return
	}
	if n > 1 && !e.countGroupActive && isEditingAction(act) {
		e.pushUndoSnapshot()
		e.countGroupActive = true
	}
	for i := 0; i < n; i++ {
		e.ApplyAction(act)
	}
	e.countGroupActive = false
}

func isEditingAction(act Action) bool {
	switch act {
	case DeleteLine, DeleteCharUnder, OpenAbove, OpenBelow:
		return true
	}
	return false
}

// gotoLine moves to a 1-based line number, clamped to the document.
func (e *Editor) gotoLine(n int) {
	if n < 1 {
		n = 1
	}
	if n > e.buf.LineCount() {
		n = e.buf.LineCount()
	}
	e.cursor = Position{Row: n - 1}
	e.ClampCursor()
}

// deleteNLines removes count lines starting at the cursor, capturing them
// linewise as a single undo step.
func (e *Editor) deleteNLines(count int) {
	e.beginEdit()
	sy := e.cursor.Row
	ey := min(sy+count-1, e.buf.LineCount()-1)
	lines := make([]string, 0, ey-sy+1)
	for y := sy; y <= ey; y++ {
		lines = append(lines, e.buf.LineText(y))
	}
	e.setRegister(joinLines(lines), Linewise)
	for y := sy; y <= ey; y++ {
		e.buf.DeleteLine(sy)
	}
	if e.cursor.Row >= e.buf.LineCount() {
		e.cursor.Row = e.buf.LineCount() - 1
	}
	e.cursor.Col = 0
	e.dirty = true
}

func joinLines(lines []string) string {
	out := ""
	for i, l := range lines {
		if i > 0 {
			out += "\n"
		}
		out += l
	}
	return out
}
