package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPasteEmptyRegisterIsNoop(t *testing.T) {
	ed := newEditor("one")
	before := ed.undoDepth()

	ed.PasteAfter()
	ed.PasteBefore()
	assert.Equal(t, []string{"one"}, ed.Buffer().Lines())
	assert.Equal(t, before, ed.undoDepth())
}

func TestCharwisePaste(t *testing.T) {
	ed := newEditor("hello")
	ed.SetRegister("XY", Charwise)
	ed.SetCursor(Position{Col: 2})

	ed.PasteAfter()
	assert.Equal(t, "heXYllo", ed.Buffer().LineText(0))
	assert.Equal(t, Position{Col: 2}, ed.Cursor())

	ed.PasteBefore()
	assert.Equal(t, "heXYXYllo", ed.Buffer().LineText(0))
}

func TestLinewisePasteAfterOpensBelow(t *testing.T) {
	ed := newEditor("one", "two")
	ed.SetRegister("new", Linewise)

	ed.PasteAfter()
	assert.Equal(t, []string{"one", "new", "two"}, ed.Buffer().Lines())
	assert.Equal(t, Position{Row: 1}, ed.Cursor())
}

func TestLinewisePasteBeforeOpensAbove(t *testing.T) {
	ed := newEditor("one", "two")
	ed.SetCursor(Position{Row: 1})
	ed.SetRegister("new", Linewise)

	ed.PasteBefore()
	assert.Equal(t, []string{"one", "new", "two"}, ed.Buffer().Lines())
	assert.Equal(t, Position{Row: 1}, ed.Cursor())
}

func TestLinewisePasteStripsTrailingNewline(t *testing.T) {
	ed := newEditor("one")
	ed.SetRegister("a\nb\n", Linewise)

	ed.PasteAfter()
	assert.Equal(t, []string{"one", "a", "b"}, ed.Buffer().Lines())
}

func TestBlockwisePasteStopsAtBufferEnd(t *testing.T) {
	ed := newEditor("1234", "1234")
	ed.SetRegister("XX\nXX\nXX", Blockwise)
	ed.SetCursor(Position{Col: 2})

	// Paste after starts on the next line; the third block row has no
	// buffer row left and is dropped.
	ed.PasteAfter()
	assert.Equal(t, []string{"1234", "12XX34"}, ed.Buffer().Lines())
}

func TestBlockwisePasteBefore(t *testing.T) {
	ed := newEditor("1234", "1234", "1234")
	ed.SetRegister("XX\nXX", Blockwise)
	ed.SetCursor(Position{Row: 1, Col: 2})

	ed.PasteBefore()
	assert.Equal(t, []string{"1234", "12XX34", "12XX34"}, ed.Buffer().Lines())
	assert.Equal(t, Position{Row: 1, Col: 2}, ed.Cursor())
}

func TestPasteIsUndoable(t *testing.T) {
	ed := newEditor("one")
	ed.SetRegister("new", Linewise)

	ed.PasteAfter()
	assert.Equal(t, []string{"one", "new"}, ed.Buffer().Lines())

	assert.True(t, ed.Undo())
	assert.Equal(t, []string{"one"}, ed.Buffer().Lines())
}
