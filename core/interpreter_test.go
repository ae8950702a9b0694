package core

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newEditor(lines ...string) *Editor {
	return NewFromString(strings.Join(lines, "\n"))
}

func press(e *Editor, keys string) InputResult {
	res := InputNone
	for _, ch := range keys {
		res = e.ProcessNormalChar(ch)
	}
	return res
}

func numberedLines(from, to int) []string {
	lines := make([]string, 0, to-from+1)
	for i := from; i <= to; i++ {
		lines = append(lines, fmt.Sprint(i))
	}
	return lines
}

func TestCountPrefixParsing(t *testing.T) {
	tests := []struct {
		seq   string
		count int
		idx   int
	}{
		{"", 0, 0},
		{"dd", 0, 0},
		{"3dd", 3, 1},
		{"12j", 12, 2},
		{"120j", 120, 3},
		{"0", 0, 0}, // leading zero is the line-start command
		{"j3", 0, 0},
	}
	for _, tt := range tests {
		count, idx := parseCountPrefix(tt.seq)
		assert.Equal(t, tt.count, count, "seq %q", tt.seq)
		assert.Equal(t, tt.idx, idx, "seq %q", tt.seq)
	}
}

func TestDeleteThreeLinesAndPasteBack(t *testing.T) {
	ed := newEditor("l1", "l2", "l3", "l4", "l5")
	ed.SetCursor(Position{Row: 1})

	press(ed, "3dd")
	assert.Equal(t, []string{"l1", "l5"}, ed.Buffer().Lines())

	text, kind := ed.Register()
	assert.Equal(t, "l2\nl3\nl4", text)
	assert.Equal(t, Linewise, kind)

	press(ed, "P")
	assert.Equal(t, []string{"l1", "l2", "l3", "l4", "l5"}, ed.Buffer().Lines())
	assert.Equal(t, 1, ed.Cursor().Row)
}

func TestCountedVerticalMotion(t *testing.T) {
	ed := newEditor(numberedLines(0, 14)...)

	press(ed, "10j")
	assert.Equal(t, 10, ed.Cursor().Row)

	press(ed, "5k")
	assert.Equal(t, 5, ed.Cursor().Row)
}

func TestCountedGotoLine(t *testing.T) {
	ed := newEditor(numberedLines(1, 20)...)
	ed.SetCursor(Position{Row: 10})

	press(ed, "5gg")
	assert.Equal(t, 4, ed.Cursor().Row)

	press(ed, "10G")
	assert.Equal(t, 9, ed.Cursor().Row)

	press(ed, "G")
	assert.Equal(t, 19, ed.Cursor().Row)

	press(ed, "99gg")
	assert.Equal(t, 19, ed.Cursor().Row)
}

func TestPendingTimeoutClearsIncompleteSequence(t *testing.T) {
	ed := newEditor(numberedLines(0, 5)...)

	press(ed, "g")
	assert.Equal(t, "g", ed.Pending())
	ed.ProcessPendingTimeout()
	assert.Equal(t, "", ed.Pending())

	press(ed, "3")
	ed.ProcessPendingTimeout()
	assert.Equal(t, "", ed.Pending())
}

func TestPendingTimeoutResolvesLongestPrefix(t *testing.T) {
	ed := newEditor(numberedLines(0, 10)...)

	// "3j" alone resolves on input; "3g" is ambiguous (gg) and only the
	// timeout resolves it — g alone is no command, so it is dropped.
	press(ed, "3g")
	assert.Equal(t, "3g", ed.Pending())
	ed.ProcessPendingTimeout()
	assert.Equal(t, "", ed.Pending())
	assert.Equal(t, 0, ed.Cursor().Row)
}

func TestTimeUntilPendingTimeout(t *testing.T) {
	ed := newEditor("one")

	_, ok := ed.TimeUntilPendingTimeout(SequenceTimeout)
	assert.False(t, ok)

	press(ed, "g")
	d, ok := ed.TimeUntilPendingTimeout(SequenceTimeout)
	require.True(t, ok)
	assert.LessOrEqual(t, d, SequenceTimeout)
}

func TestOperatorDeleteWord(t *testing.T) {
	ed := newEditor("hello world", "second")

	press(ed, "dw")
	assert.Equal(t, "world", ed.Buffer().LineText(0))
	assert.Equal(t, Position{}, ed.Cursor())

	text, kind := ed.Register()
	assert.Equal(t, "hello ", text)
	assert.Equal(t, Charwise, kind)
}

func TestOperatorDeleteToLineEnd(t *testing.T) {
	ed := newEditor("hello world", "second")
	ed.SetCursor(Position{Col: 6})

	press(ed, "d$")
	assert.Equal(t, "hello ", ed.Buffer().LineText(0))

	text, _ := ed.Register()
	assert.Equal(t, "world", text)
}

func TestCountedWordMotionAndDelete(t *testing.T) {
	ed := newEditor("one two three four")

	press(ed, "3w")
	assert.Equal(t, 14, ed.Cursor().Col) // start of "four"

	ed.SetCursor(Position{})
	press(ed, "2dw")
	assert.Equal(t, "three four", ed.Buffer().LineText(0))
}

func TestDeleteWordAtLineEndJoinsNextLine(t *testing.T) {
	ed := newEditor("foo", "  bar baz")
	ed.SetCursor(Position{Col: ed.Buffer().DisplayWidth(0)})

	press(ed, "dw")
	assert.Equal(t, []string{"foo  bar baz"}, ed.Buffer().Lines())
	assert.Equal(t, 0, ed.Cursor().Row)
}

func TestCountedDeleteWordAcrossLines(t *testing.T) {
	ed := newEditor("one two", "three four")

	press(ed, "3dw")
	assert.Equal(t, []string{"three four"}, ed.Buffer().Lines())

	require.True(t, ed.Undo())
	assert.Equal(t, []string{"one two", "three four"}, ed.Buffer().Lines())
}

func TestChangeWordEntersInsert(t *testing.T) {
	ed := newEditor("hello world")

	press(ed, "cw")
	assert.Equal(t, "world", ed.Buffer().LineText(0))
	assert.Equal(t, InsertMode, ed.Mode())
}

func TestCountedChangeWordAcrossLines(t *testing.T) {
	ed := newEditor("one two", "three four")

	press(ed, "2cw")
	assert.Equal(t, []string{"", "three four"}, ed.Buffer().Lines())
	assert.Equal(t, InsertMode, ed.Mode())

	require.True(t, ed.Undo())
	assert.Equal(t, []string{"one two", "three four"}, ed.Buffer().Lines())

	require.True(t, ed.Redo())
	assert.Equal(t, []string{"", "three four"}, ed.Buffer().Lines())
}

func TestChangeWholeLine(t *testing.T) {
	ed := newEditor("one", "two", "three")
	ed.SetCursor(Position{Row: 1})

	press(ed, "cc")
	assert.Equal(t, []string{"one", "", "three"}, ed.Buffer().Lines())
	assert.Equal(t, InsertMode, ed.Mode())
	assert.Equal(t, Position{Row: 1}, ed.Cursor())
}

func TestYankToLineEndAndPaste(t *testing.T) {
	ed := newEditor("hello world")
	ed.SetCursor(Position{Col: 6})

	press(ed, "y$")
	text, kind := ed.Register()
	assert.Equal(t, "world", text)
	assert.Equal(t, Charwise, kind)
	assert.Equal(t, "hello world", ed.Buffer().LineText(0))

	press(ed, "p")
	assert.Equal(t, "hello worldworld", ed.Buffer().LineText(0))
}

func TestYankWholeLines(t *testing.T) {
	ed := newEditor("one", "two", "three")

	press(ed, "2yy")
	text, kind := ed.Register()
	assert.Equal(t, "one\ntwo", text)
	assert.Equal(t, Linewise, kind)
	assert.Equal(t, []string{"one", "two", "three"}, ed.Buffer().Lines())
}

func TestMotionCountWinsOverOperatorCount(t *testing.T) {
	ed := newEditor("one two three four five")

	// 2d3w: the motion's count takes precedence.
	press(ed, "2d")
	press(ed, "3w")
	assert.Equal(t, "four five", ed.Buffer().LineText(0))
}

func TestWordMotionBackward(t *testing.T) {
	ed := newEditor("one two", "three four")
	ed.SetCursor(Position{Row: 1, Col: 6})

	press(ed, "b")
	assert.Equal(t, Position{Row: 1, Col: 0}, ed.Cursor())

	press(ed, "b")
	assert.Equal(t, Position{Row: 0, Col: 4}, ed.Cursor())

	press(ed, "2b")
	assert.Equal(t, Position{Row: 0, Col: 0}, ed.Cursor())
}

func TestEndOfWordMotion(t *testing.T) {
	ed := newEditor("one two")

	press(ed, "e")
	assert.Equal(t, 3, ed.Cursor().Col)

	press(ed, "e")
	assert.Equal(t, 7, ed.Cursor().Col)
}

func TestUnboundKeysAreDropped(t *testing.T) {
	ed := newEditor("one two")

	press(ed, "Z")
	assert.Equal(t, "", ed.Pending())
	assert.Equal(t, Position{}, ed.Cursor())

	// A garbage prefix before a valid command still runs the command.
	press(ed, "Zj")
	assert.Equal(t, "", ed.Pending())
}

func TestCommandPromptRequest(t *testing.T) {
	ed := newEditor("one")

	res := press(ed, ":")
	assert.Equal(t, InputCommandPrompt, res)
	assert.Equal(t, "", ed.Pending())
}

func TestEscapeClearsPendingState(t *testing.T) {
	ed := newEditor("one two")

	press(ed, "d")
	ed.HandleEscape()
	press(ed, "w")
	// The operator was discarded; w is a plain motion.
	assert.Equal(t, "one two", ed.Buffer().LineText(0))
	assert.Equal(t, 4, ed.Cursor().Col)
}

func TestDeleteCharUnderCursor(t *testing.T) {
	ed := newEditor("abc")
	ed.SetCursor(Position{Col: 1})

	press(ed, "x")
	assert.Equal(t, "ac", ed.Buffer().LineText(0))

	// The cursor sits past 'a' after the delete, so only one more char goes.
	press(ed, "2x")
	assert.Equal(t, "a", ed.Buffer().LineText(0))
}

func TestOpenBelowAndAbove(t *testing.T) {
	ed := newEditor("one", "two")

	press(ed, "o")
	assert.Equal(t, []string{"one", "", "two"}, ed.Buffer().Lines())
	assert.Equal(t, InsertMode, ed.Mode())
	assert.Equal(t, Position{Row: 1}, ed.Cursor())

	ed.HandleEscape()
	press(ed, "O")
	assert.Equal(t, []string{"one", "", "", "two"}, ed.Buffer().Lines())
	assert.Equal(t, InsertMode, ed.Mode())
}
