package core

import (
	"strconv"
	"time"
	"unicode/utf8"
)

// InputResult tells the caller what a normal-mode keystroke produced.
type InputResult int

const (
	// InputNone means the key was consumed (or is still pending).
	InputNone InputResult = iota
	// InputCommandPrompt asks the caller to open the `:` command line.
	InputCommandPrompt
)

// SequenceTimeout is how long an ambiguous pending key sequence waits for
// more input before ProcessPendingTimeout should be called.
const SequenceTimeout = 1000 * time.Millisecond

// parseCountPrefix splits a leading vim count off a key sequence. Counts
// start with [1-9]; a leading '0' is the line-start command, not a count.
// Returns the count (0 when absent) and the byte length of the digits.
func parseCountPrefix(seq string) (int, int) {
	idx := 0
	for i, ch := range seq {
		if i == 0 {
			if ch < '1' || ch > '9' {
				return 0, 0
			}
			idx = 1
			continue
		}
		if ch < '0' || ch > '9' {
			break
		}
		idx = i + 1
	}
	if idx == 0 {
		return 0, 0
	}
	n, err := strconv.Atoi(seq[:idx])
	if err != nil {
		return 0, 0
	}
	return n, idx
}

// ProcessNormalChar feeds one normal-mode keystroke into the pending
// sequence and resolves as much of it as possible:
//
//  1. count-only input waits for a command;
//  2. an exact keymap match on the remainder executes;
//  3. a strict prefix of some binding waits for more input;
//  4. otherwise the longest [count]key prefix of the whole pending buffer
//     executes greedily and the leftover is re-examined;
//  5. with no match at all, the first character is dropped and the rest is
//     retried.
func (e *Editor) ProcessNormalChar(ch rune) InputResult {
	e.pending += string(ch)
	for {
		count, restIdx := parseCountPrefix(e.pending)
		rest := e.pending[restIdx:]
		if count > 0 && rest == "" {
			e.touchPendingTimer()
			return InputNone
		}
		if rest != "" {
			if act, ok := e.keymap.Lookup(rest); ok {
				return e.resolveExact(act, count, rest)
			}
			if e.keymap.HasPrefix(rest) {
				e.touchPendingTimer()
				return InputNone
			}
		}
		act, cnt, consumed := e.longestCommandPrefix()
		if consumed > 0 {
			res, done := e.resolveGreedy(act, cnt, consumed)
			if done {
				return res
			}
			continue
		}
		_, size := utf8.DecodeRuneInString(e.pending)
		e.pending = e.pending[size:]
		if e.pending == "" {
			e.clearPending()
			return InputNone
		}
	}
}

// resolveExact executes an exact keymap match. count is 0 when no count
// prefix was typed.
func (e *Editor) resolveExact(act Action, count int, rest string) InputResult {
	if act == CommandPrompt {
		e.clearPending()
		return InputCommandPrompt
	}
	switch act {
	case EnterVisual, EnterVisualLine, EnterVisualBlock:
		// Visual toggles fire immediately and ignore counts.
		e.ApplyAction(act)
		e.clearPending()
		return InputNone
	}
	if count > 0 && (rest == "gg" || rest == "G") {
		e.gotoLine(count)
		e.clearPending()
		return InputNone
	}
	if e.mode.IsVisual() && e.dispatchVisual(act) {
		e.clearPending()
		return InputNone
	}
	if op := e.opPending; op != nil {
		e.opPending = nil
		effective := count
		if effective == 0 {
			effective = op.count
		}
		e.runOperator(op.kind, act, effective)
	} else if act.IsOperator() {
		e.opPending = &pendingOp{kind: act, count: max(count, 1)}
		e.pending = ""
		e.pendingStarted = time.Now()
		return InputNone
	} else {
		e.applyActionCount(act, max(count, 1))
	}
	e.clearPending()
	return InputNone
}

// resolveGreedy executes the longest resolvable prefix found in the
// pending buffer. The second result is true when the caller should return,
// false when leftover pending input remains to be re-examined.
func (e *Editor) resolveGreedy(act Action, cnt, consumed int) (InputResult, bool) {
	if act == CommandPrompt {
		e.clearPending()
		return InputCommandPrompt, true
	}
	switch act {
	case EnterVisual, EnterVisualLine, EnterVisualBlock:
		e.ApplyAction(act)
		return e.advancePending(consumed)
	}
	candidate := e.pending[:consumed]
	_, keyIdx := parseCountPrefix(candidate)
	key := candidate[keyIdx:]
	switch {
	case cnt > 0 && (key == "gg" || key == "G"):
		e.gotoLine(cnt)
	case e.mode.IsVisual() && e.dispatchVisual(act):
	case e.opPending != nil:
		op := e.opPending
		e.opPending = nil
		e.runOperator(op.kind, act, max(max(cnt, 1), op.count))
	case act.IsOperator():
		e.opPending = &pendingOp{kind: act, count: max(cnt, 1)}
	default:
		e.applyActionCount(act, max(cnt, 1))
	}
	return e.advancePending(consumed)
}

func (e *Editor) advancePending(consumed int) (InputResult, bool) {
	e.pending = e.pending[consumed:]
	if e.pending == "" {
		e.clearPending()
		return InputNone, true
	}
	return InputNone, false
}

// longestCommandPrefix searches every split of the pending buffer into
// [count][key], longest first, for a bound key. Returns the action, its
// count (0 when absent) and the byte length consumed; consumed is 0 when
// nothing matched.
func (e *Editor) longestCommandPrefix() (Action, int, int) {
	for i := len(e.pending); i >= 1; i-- {
		candidate := e.pending[:i]
		cnt, keyIdx := parseCountPrefix(candidate)
		key := candidate[keyIdx:]
		if key == "" {
			continue
		}
		if act, ok := e.keymap.Lookup(key); ok {
			return act, cnt, i
		}
	}
	return ActionNone, 0, 0
}

// runOperator applies a resolved operator to its target.
func (e *Editor) runOperator(opKind, act Action, effective int) {
	switch {
	case opKind == OperatorDelete && (act == OperatorDelete || act == DeleteLine):
		e.applyActionCount(DeleteLine, effective)
	case opKind == OperatorChange && act == OperatorChange:
		e.changeWholeLines(effective)
	case opKind == OperatorYank && (act == OperatorYank || act == DeleteLine):
		e.yankWholeLines(effective)
	case act.isMotionTarget():
		e.applyMotion(act, effective, &pendingOp{kind: opKind, count: effective})
	default:
		e.applyActionCount(act, effective)
	}
}

// changeWholeLines is cc: blank the line(s), keep them, enter Insert.
func (e *Editor) changeWholeLines(count int) {
	n := max(count, 1)
	e.beginEdit()
	start := e.cursor.Row
	for i := 0; i < n; i++ {
		e.buf.ClearLine(e.cursor.Row)
		e.cursor.Col = 0
		e.dirty = true
		if i < n-1 && e.cursor.Row+1 < e.buf.LineCount() {
			e.cursor.Row++
		}
	}
	e.mode = InsertMode
	e.cursor = Position{Row: start}
	e.ClampCursor()
}

// yankWholeLines is yy: capture the line(s) linewise without modifying.
func (e *Editor) yankWholeLines(count int) {
	end := min(e.cursor.Row+max(count, 1), e.buf.LineCount())
	lines := make([]string, 0, end-e.cursor.Row)
	for y := e.cursor.Row; y < end; y++ {
		lines = append(lines, e.buf.LineText(y))
	}
	e.setRegister(joinLines(lines), Linewise)
}

// dispatchVisual routes a resolved operator to the active visual selection.
// Returns false when the action has no visual meaning.
func (e *Editor) dispatchVisual(act Action) bool {
	switch act {
	case OperatorDelete, DeleteCharUnder, DeleteLine:
		e.VisualDelete()
	case OperatorChange:
		e.VisualChange()
	case OperatorYank:
		e.VisualYank()
	default:
		return false
	}
	e.opPending = nil
	return true
}

// ProcessPendingTimeout resolves the pending sequence after the caller's
// timeout fired: a count alone is discarded, otherwise the longest
// resolvable prefix runs once. Leftover input stays pending with a fresh
// timer.
func (e *Editor) ProcessPendingTimeout() InputResult {
	if e.pending == "" {
		e.pendingStarted = time.Time{}
		return InputNone
	}
	if cnt, idx := parseCountPrefix(e.pending); cnt > 0 && idx == len(e.pending) {
		e.clearPending()
		return InputNone
	}
	act, cnt, consumed := e.longestCommandPrefix()
	if consumed == 0 {
		e.clearPending()
		return InputNone
	}
	if act == CommandPrompt {
		e.clearPending()
		return InputCommandPrompt
	}
	if act.IsOperator() {
		e.opPending = &pendingOp{kind: act, count: max(cnt, 1)}
	} else {
		e.applyActionCount(act, max(cnt, 1))
		e.opPending = nil
	}
	e.pending = e.pending[consumed:]
	if e.pending == "" {
		e.pendingStarted = time.Time{}
	} else {
		e.pendingStarted = time.Now()
	}
	return InputNone
}

// TimeUntilPendingTimeout reports how long the caller should wait before
// calling ProcessPendingTimeout. The second result is false when no
// sequence is pending.
func (e *Editor) TimeUntilPendingTimeout(timeout time.Duration) (time.Duration, bool) {
	if e.pendingStarted.IsZero() {
		return 0, false
	}
	remaining := time.Until(e.pendingStarted.Add(timeout))
	if remaining < 0 {
		remaining = 0
	}
	return remaining, true
}

// HandleEscape leaves Insert or a visual mode and discards any pending
// sequence or operator.
func (e *Editor) HandleEscape() {
	switch {
	case e.mode == InsertMode:
		e.EndUndoGroup()
		e.mode = NormalMode
	case e.mode.IsVisual():
		e.mode = NormalMode
		e.visualAnchor = nil
	}
	e.opPending = nil
	e.clearPending()
}

func (e *Editor) touchPendingTimer() {
	if e.pendingStarted.IsZero() {
		e.pendingStarted = time.Now()
	}
}

func (e *Editor) clearPending() {
	e.pending = ""
	e.pendingStarted = time.Time{}
}
