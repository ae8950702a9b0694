package bubble_adapter

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"

	"vedit/core"
)

func (m Model) View() string {
	var b strings.Builder
	b.WriteString(m.viewport.View())
	b.WriteString("\n")
	b.WriteString(m.statusLine())
	b.WriteString("\n")
	if m.prompting {
		b.WriteString(m.theme.CommandLineStyle.Width(m.width).Render(m.command.View()))
	} else {
		b.WriteString(m.theme.CommandLineStyle.Width(m.width).Render(""))
	}
	return b.String()
}

// refresh rebuilds the viewport content and keeps the cursor visible.
func (m *Model) refresh() {
	cursor := m.editor.Cursor()
	buf := m.editor.Buffer()
	lines := make([]string, buf.LineCount())
	for row := range lines {
		rendered := m.renderLine(buf.LineText(row), row == cursor.Row, cursor.Col)
		if m.showLineNumbers {
			rendered = m.theme.LineNumberStyle.Render(fmt.Sprint(row+1)) + rendered
		}
		lines[row] = rendered
	}
	m.viewport.SetContent(strings.Join(lines, "\n"))
	if cursor.Row < m.viewport.YOffset {
		m.viewport.SetYOffset(cursor.Row)
	} else if cursor.Row >= m.viewport.YOffset+m.viewport.Height {
		m.viewport.SetYOffset(cursor.Row - m.viewport.Height + 1)
	}
}

// renderLine expands tabs to the next tab stop and reverses the grapheme
// under the cursor.
func (m Model) renderLine(line string, hasCursor bool, cursorCol int) string {
	var b strings.Builder
	col := 0
	state := -1
	cursorDrawn := false
	for len(line) > 0 {
		cluster, rest, _, newState := uniseg.StepString(line, state)
		w := 1
		cell := cluster
		if cluster == "\t" {
			w = core.TabStop - col%core.TabStop
			cell = strings.Repeat(" ", w)
		} else if cw := runewidth.StringWidth(cluster); cw > 1 {
			w = cw
		}
		if hasCursor && !cursorDrawn && col <= cursorCol && cursorCol < col+w {
			cell = m.theme.CursorStyle.Render(cell)
			cursorDrawn = true
		}
		b.WriteString(cell)
		col += w
		line = rest
		state = newState
	}
	if hasCursor && !cursorDrawn {
		b.WriteString(m.theme.CursorStyle.Render(" "))
	}
	return b.String()
}

func (m Model) statusLine() string {
	mode := m.editor.Mode()
	var modeStyle lipgloss.Style
	switch {
	case mode == core.InsertMode:
		modeStyle = m.theme.InsertModeStyle
	case mode.IsVisual():
		modeStyle = m.theme.VisualModeStyle
	default:
		modeStyle = m.theme.NormalModeStyle
	}
	left := modeStyle.Render(mode.StatusName())

	name := m.editor.Filename()
	if name == "" {
		name = "[No Name]"
	}
	if m.editor.Dirty() {
		name += " " + m.theme.DirtyStyle.Render("[+]")
	}

	var parts []string
	parts = append(parts, left, name)
	if msg, _ := m.editor.Status(); msg != "" {
		parts = append(parts, msg)
	}
	if pending := m.editor.Pending(); pending != "" {
		parts = append(parts, pending)
	}
	cursor := m.editor.Cursor()
	parts = append(parts, fmt.Sprintf("%d:%d", cursor.Row+1, cursor.Col+1))

	return m.theme.StatusLineStyle.Width(m.width).Render(strings.Join(parts, "  "))
}
