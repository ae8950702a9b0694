package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"
)

func TestClampCursorIdempotent(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		text := rapid.StringOf(rapid.RuneFrom([]rune("ab \t\n日😀"))).Draw(t, "text")
		ed := NewFromString(text)
		ed.cursor = Position{
			Row: rapid.IntRange(-3, ed.Buffer().LineCount()+5).Draw(t, "row"),
			Col: rapid.IntRange(-3, 40).Draw(t, "col"),
		}

		ed.ClampCursor()
		once := ed.Cursor()
		assert.GreaterOrEqual(t, once.Row, 0)
		assert.Less(t, once.Row, ed.Buffer().LineCount())
		assert.GreaterOrEqual(t, once.Col, 0)
		assert.LessOrEqual(t, once.Col, ed.Buffer().DisplayWidth(once.Row))

		ed.ClampCursor()
		assert.Equal(t, once, ed.Cursor())
	})
}
