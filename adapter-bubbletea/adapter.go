// Package bubble_adapter renders a core.Editor with bubbletea: viewport
// over the document, status line, `:` command prompt and key translation.
// The core stays free of terminal concerns; this package owns the event
// loop glue, including the pending-sequence and status-expiry timers.
package bubble_adapter

import (
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"vedit/core"
)

// Theme collects the styles used by the renderer.
type Theme struct {
	NormalModeStyle  lipgloss.Style
	InsertModeStyle  lipgloss.Style
	VisualModeStyle  lipgloss.Style
	StatusLineStyle  lipgloss.Style
	CommandLineStyle lipgloss.Style
	LineNumberStyle  lipgloss.Style
	CursorStyle      lipgloss.Style
	DirtyStyle       lipgloss.Style
}

var DefaultTheme = Theme{
	NormalModeStyle:  lipgloss.NewStyle().Background(lipgloss.Color("62")).Foreground(lipgloss.Color("255")).Padding(0, 1),
	InsertModeStyle:  lipgloss.NewStyle().Background(lipgloss.Color("26")).Foreground(lipgloss.Color("255")).Padding(0, 1),
	VisualModeStyle:  lipgloss.NewStyle().Background(lipgloss.Color("127")).Foreground(lipgloss.Color("255")).Padding(0, 1),
	StatusLineStyle:  lipgloss.NewStyle().Background(lipgloss.Color("236")).Foreground(lipgloss.Color("255")),
	CommandLineStyle: lipgloss.NewStyle().Background(lipgloss.Color("235")).Foreground(lipgloss.Color("255")),
	LineNumberStyle:  lipgloss.NewStyle().Foreground(lipgloss.Color("240")).Width(4).Align(lipgloss.Right).MarginRight(1),
	CursorStyle:      lipgloss.NewStyle().Reverse(true),
	DirtyStyle:       lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
}

// StatusTTL is how long status messages stay visible.
const StatusTTL = 4 * time.Second

type tickMsg time.Time

// Model is the bubbletea model wrapping a core.Editor.
type Model struct {
	editor   *core.Editor
	viewport viewport.Model
	command  textinput.Model
	theme    Theme

	width  int
	height int

	prompting       bool
	insertUndoBreak bool
	showLineNumbers bool
}

// New wraps an editor. The zero viewport is sized on the first
// WindowSizeMsg.
func New(ed *core.Editor) Model {
	cmd := textinput.New()
	cmd.Prompt = ":"
	return Model{
		editor:          ed,
		viewport:        viewport.New(0, 0),
		command:         cmd,
		theme:           DefaultTheme,
		showLineNumbers: true,
	}
}

// WithTheme replaces the default styles.
func (m Model) WithTheme(t Theme) Model {
	m.theme = t
	return m
}

// WithLineNumbers toggles the line-number gutter.
func (m Model) WithLineNumbers(show bool) Model {
	m.showLineNumbers = show
	return m
}

// Editor exposes the wrapped editor.
func (m Model) Editor() *core.Editor {
	return m.editor
}

func (m Model) Init() tea.Cmd {
	return m.scheduleTick()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.viewport.Width = msg.Width
		m.viewport.Height = max(msg.Height-2, 1)
		m.refresh()
		return m, nil

	case tickMsg:
		if d, ok := m.editor.TimeUntilPendingTimeout(core.SequenceTimeout); ok && d <= 0 {
			if m.editor.ProcessPendingTimeout() == core.InputCommandPrompt {
				m.openPrompt()
			}
		}
		m.editor.ClearExpiredStatus(StatusTTL)
		m.refresh()
		return m, m.scheduleTick()

	case tea.KeyMsg:
		if m.prompting {
			return m.updatePrompt(msg)
		}
		var cmd tea.Cmd
		if m.editor.Mode() == core.InsertMode {
			cmd = m.updateInsert(msg)
		} else {
			cmd = m.updateNormal(msg)
		}
		m.refresh()
		return m, tea.Batch(cmd, m.scheduleTick())
	}
	return m, nil
}

func (m *Model) updateInsert(msg tea.KeyMsg) tea.Cmd {
	switch msg.Type {
	case tea.KeyEsc:
		m.editor.HandleEscape()
	case tea.KeyEnter:
		m.editor.InsertNewline()
	case tea.KeyBackspace:
		m.editor.DeleteBackward()
	case tea.KeyTab:
		m.editor.InsertChar('\t')
	case tea.KeySpace:
		m.editor.InsertChar(' ')
	case tea.KeyUp:
		m.editor.ApplyAction(core.MoveUp)
	case tea.KeyDown:
		m.editor.ApplyAction(core.MoveDown)
	case tea.KeyLeft:
		m.editor.ApplyAction(core.MoveLeft)
	case tea.KeyRight:
		m.editor.ApplyAction(core.MoveRight)
	case tea.KeyCtrlG:
		// Start of the Ctrl-G u undo-break chord.
		m.insertUndoBreak = true
		return nil
	case tea.KeyRunes:
		if m.insertUndoBreak && len(msg.Runes) == 1 && msg.Runes[0] == 'u' {
			m.editor.EndUndoGroup()
			break
		}
		for _, r := range msg.Runes {
			m.editor.InsertChar(r)
		}
	}
	m.insertUndoBreak = false
	return nil
}

func (m *Model) updateNormal(msg tea.KeyMsg) tea.Cmd {
	switch msg.Type {
	case tea.KeyEsc:
		m.editor.HandleEscape()
	case tea.KeyCtrlR:
		m.editor.Redo()
	case tea.KeyCtrlV:
		m.editor.ApplyAction(core.EnterVisualBlock)
	case tea.KeyUp:
		m.editor.ApplyAction(core.MoveUp)
	case tea.KeyDown:
		m.editor.ApplyAction(core.MoveDown)
	case tea.KeyLeft:
		m.editor.ApplyAction(core.MoveLeft)
	case tea.KeyRight:
		m.editor.ApplyAction(core.MoveRight)
	case tea.KeyHome:
		m.editor.ApplyAction(core.LineStart)
	case tea.KeyEnd:
		m.editor.ApplyAction(core.LineEnd)
	case tea.KeyPgUp:
		cur := m.editor.Cursor()
		m.editor.SetCursor(core.Position{Row: cur.Row - m.viewport.Height, Col: cur.Col})
	case tea.KeyPgDown:
		cur := m.editor.Cursor()
		m.editor.SetCursor(core.Position{Row: cur.Row + m.viewport.Height, Col: cur.Col})
	case tea.KeyRunes:
		for _, r := range msg.Runes {
			if m.editor.ProcessNormalChar(r) == core.InputCommandPrompt {
				m.openPrompt()
				return textinput.Blink
			}
		}
	}
	return nil
}

func (m *Model) openPrompt() {
	m.prompting = true
	m.command.SetValue("")
	m.command.Focus()
}

func (m *Model) closePrompt() {
	m.prompting = false
	m.command.Blur()
}

func (m Model) updatePrompt(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.closePrompt()
		return m, nil
	case tea.KeyEnter:
		line := m.command.Value()
		m.closePrompt()
		cmd := m.runCommand(line)
		m.refresh()
		return m, tea.Batch(cmd, m.scheduleTick())
	}
	var cmd tea.Cmd
	m.command, cmd = m.command.Update(msg)
	return m, cmd
}

// runCommand executes a `:` command line. Line targets go to the core;
// file-level commands are handled here.
func (m *Model) runCommand(line string) tea.Cmd {
	if m.editor.ExecuteCommand(line) {
		return nil
	}
	switch line {
	case "w":
		m.save()
	case "q":
		return tea.Quit
	case "wq", "x":
		m.save()
		return tea.Quit
	default:
		m.editor.SetStatus("Unknown command: " + line)
	}
	return nil
}

func (m *Model) save() {
	if err := m.editor.Save(); err != nil {
		m.editor.SetStatus("Save failed: " + err.Error())
	}
}

// scheduleTick wakes the program when the next deadline passes: the status
// message expiring or the pending key sequence timing out.
func (m Model) scheduleTick() tea.Cmd {
	var wait time.Duration
	have := false
	if d, ok := m.editor.TimeUntilStatusExpiry(StatusTTL); ok {
		wait, have = d, true
	}
	if d, ok := m.editor.TimeUntilPendingTimeout(core.SequenceTimeout); ok {
		if !have || d < wait {
			wait = d
		}
		have = true
	}
	if !have {
		return nil
	}
	if wait < time.Millisecond {
		wait = time.Millisecond
	}
	return tea.Tick(wait, func(t time.Time) tea.Msg { return tickMsg(t) })
}
