package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVisualToggleSemantics(t *testing.T) {
	ed := newEditor("one two")
	ed.SetCursor(Position{Col: 4})

	press(ed, "v")
	assert.Equal(t, VisualMode, ed.Mode())
	anchor, ok := ed.VisualAnchor()
	require.True(t, ok)
	assert.Equal(t, Position{Col: 4}, anchor)

	// Same variant toggles back to Normal and drops the anchor.
	press(ed, "v")
	assert.Equal(t, NormalMode, ed.Mode())
	_, ok = ed.VisualAnchor()
	assert.False(t, ok)

	// Switching variants keeps the anchor.
	press(ed, "v")
	ed.SetCursor(Position{Col: 6})
	press(ed, "V")
	assert.Equal(t, VisualLineMode, ed.Mode())
	anchor, ok = ed.VisualAnchor()
	require.True(t, ok)
	assert.Equal(t, Position{Col: 4}, anchor)
}

func TestVisualDeleteCharwise(t *testing.T) {
	ed := newEditor("one two three", "four five")

	press(ed, "v")
	press(ed, "w") // to "two"
	press(ed, "e") // to end of "two"
	press(ed, "d")

	assert.Equal(t, " three", ed.Buffer().LineText(0))
	assert.Equal(t, NormalMode, ed.Mode())
	_, ok := ed.VisualAnchor()
	assert.False(t, ok)

	text, kind := ed.Register()
	assert.Equal(t, "one two", text)
	assert.Equal(t, Charwise, kind)
}

func TestVisualYankAcrossLines(t *testing.T) {
	ed := newEditor(" three", "four five")

	press(ed, "v")
	ed.SetCursor(Position{Row: 1, Col: 4})
	press(ed, "y")

	text, kind := ed.Register()
	assert.Equal(t, " three\nfour", text)
	assert.Equal(t, Charwise, kind)
	assert.Equal(t, NormalMode, ed.Mode())
	// Yank leaves the document untouched.
	assert.Equal(t, []string{" three", "four five"}, ed.Buffer().Lines())
}

func TestVisualChangeEntersInsert(t *testing.T) {
	ed := newEditor("four five")

	press(ed, "v")
	press(ed, "w") // to "five"
	press(ed, "c")

	assert.Equal(t, "five", ed.Buffer().LineText(0))
	assert.Equal(t, InsertMode, ed.Mode())
}

func TestVisualChangeEmptySelectionStillEntersInsert(t *testing.T) {
	ed := newEditor("abc")

	press(ed, "v")
	press(ed, "c")
	assert.Equal(t, InsertMode, ed.Mode())
	assert.Equal(t, "abc", ed.Buffer().LineText(0))
}

func TestVisualLineDelete(t *testing.T) {
	ed := newEditor("aa", "bb", "cc", "dd")
	ed.SetCursor(Position{Row: 1})

	press(ed, "V")
	press(ed, "j")
	press(ed, "d")

	assert.Equal(t, []string{"aa", "dd"}, ed.Buffer().Lines())
	assert.Equal(t, Position{Row: 1}, ed.Cursor())

	text, kind := ed.Register()
	assert.Equal(t, "bb\ncc", text)
	assert.Equal(t, Linewise, kind)
}

func TestVisualLineYankAndPaste(t *testing.T) {
	ed := newEditor("aa", "bb", "cc")

	press(ed, "V")
	press(ed, "j")
	press(ed, "y")
	text, kind := ed.Register()
	assert.Equal(t, "aa\nbb", text)
	assert.Equal(t, Linewise, kind)

	ed.SetCursor(Position{Row: 2})
	press(ed, "p")
	assert.Equal(t, []string{"aa", "bb", "cc", "aa", "bb"}, ed.Buffer().Lines())
}

func TestVisualBlockYankAndPaste(t *testing.T) {
	ed := newEditor("abcd", "abcd")
	ed.SetCursor(Position{Col: 1})

	ed.ApplyAction(EnterVisualBlock)
	ed.SetCursor(Position{Row: 1, Col: 3})
	ed.VisualYank()

	text, kind := ed.Register()
	assert.Equal(t, "bc\nbc", text)
	assert.Equal(t, Blockwise, kind)

	ed.SetCursor(Position{Row: 1})
	ed.PasteBefore()
	assert.Equal(t, []string{"abcd", "bcabcd"}, ed.Buffer().Lines())
}

func TestVisualBlockDelete(t *testing.T) {
	ed := newEditor("abcd", "abcd", "ab")
	ed.SetCursor(Position{Col: 1})

	ed.ApplyAction(EnterVisualBlock)
	ed.cursor = Position{Row: 2, Col: 3}
	ed.VisualDelete()

	// The short last line clamps the span to its width.
	assert.Equal(t, []string{"ad", "ad", "a"}, ed.Buffer().Lines())
	assert.Equal(t, Position{Col: 1}, ed.Cursor())
	assert.Equal(t, NormalMode, ed.Mode())
}

func TestVisualDeleteWholeLinesReadsLinewise(t *testing.T) {
	ed := newEditor("one", "two", "three")

	press(ed, "v")
	ed.SetCursor(Position{Row: 1, Col: 3})
	press(ed, "d")

	_, kind := ed.Register()
	assert.Equal(t, Linewise, kind)
}
