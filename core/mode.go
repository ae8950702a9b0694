package core

// Mode identifies how keystrokes are interpreted.
type Mode string

const (
	NormalMode      Mode = "normal"
	InsertMode      Mode = "insert"
	VisualMode      Mode = "visual"
	VisualLineMode  Mode = "visual-line"
	VisualBlockMode Mode = "visual-block"
)

// IsVisual reports whether the mode carries a selection anchor.
func (m Mode) IsVisual() bool {
	switch m {
	case VisualMode, VisualLineMode, VisualBlockMode:
		return true
	}
	return false
}

// StatusName is the uppercase label shown in the status line.
func (m Mode) StatusName() string {
	switch m {
	case NormalMode:
		return "NORMAL"
	case InsertMode:
		return "INSERT"
	case VisualMode:
		return "VISUAL"
	case VisualLineMode:
		return "VISUAL-LINE"
	case VisualBlockMode:
		return "VISUAL-BLOCK"
	}
	return string(m)
}
