package core

// ClipboardKind describes the shape of register content and drives paste
// placement.
type ClipboardKind int

const (
	Charwise ClipboardKind = iota
	Linewise
	Blockwise
)

func (k ClipboardKind) String() string {
	switch k {
	case Linewise:
		return "linewise"
	case Blockwise:
		return "blockwise"
	}
	return "charwise"
}

// register is the single unnamed register every delete, change and yank
// overwrites.
type register struct {
	text string
	kind ClipboardKind
}

// Clipboard bridges the register to an external clipboard. Implementations
// live outside the core; mirroring failures are ignored, the internal
// register stays authoritative.
type Clipboard interface {
	Read() (string, error)
	Write(text string) error
}

// Register returns the unnamed register's content and kind.
func (e *Editor) Register() (string, ClipboardKind) {
	return e.reg.text, e.reg.kind
}

// SetRegister replaces the unnamed register, e.g. with system clipboard
// content pulled in by an adapter.
func (e *Editor) SetRegister(text string, kind ClipboardKind) {
	e.setRegister(text, kind)
}

func (e *Editor) setRegister(text string, kind ClipboardKind) {
	e.reg = register{text: text, kind: kind}
	if e.clipboard != nil {
		_ = e.clipboard.Write(text)
	}
}
