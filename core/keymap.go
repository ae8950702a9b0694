package core

import "strings"

// Action is the closed set of commands a key sequence can resolve to.
type Action int

const (
	ActionNone Action = iota

	// Motions
	MoveLeft
	MoveRight
	MoveUp
	MoveDown
	LineStart
	LineEnd
	GotoTop
	GotoBottom
	MoveWordForward
	MoveWordBackward
	MoveEndWord

	// Mode transitions
	EnterInsert
	Append
	OpenBelow
	OpenAbove
	EnterVisual
	EnterVisualLine
	EnterVisualBlock

	// Edits
	DeleteCharUnder
	DeleteLine

	// Operators awaiting a target
	OperatorDelete
	OperatorChange
	OperatorYank

	// History and register
	Undo
	Redo
	PasteAfter
	PasteBefore

	// Hand-off to the command-line collaborator
	CommandPrompt
)

// IsOperator reports whether the action waits for a motion or repeat.
func (a Action) IsOperator() bool {
	switch a {
	case OperatorDelete, OperatorChange, OperatorYank:
		return true
	}
	return false
}

// isMotionTarget reports whether the action can serve as an operator target.
func (a Action) isMotionTarget() bool {
	switch a {
	case MoveWordForward, MoveWordBackward, MoveEndWord, LineStart, LineEnd:
		return true
	}
	return false
}

// Keymap maps key-sequence strings (e.g. "h", "dd", "gg") to actions.
// It is built once at startup and read-only afterwards.
type Keymap map[string]Action

// DefaultKeymap returns the built-in bindings.
func DefaultKeymap() Keymap {
	return Keymap{
		"h":  MoveLeft,
		"j":  MoveDown,
		"k":  MoveUp,
		"l":  MoveRight,
		"0":  LineStart,
		"$":  LineEnd,
		"gg": GotoTop,
		"G":  GotoBottom,
		"i":  EnterInsert,
		"a":  Append,
		"o":  OpenBelow,
		"O":  OpenAbove,
		"v":  EnterVisual,
		"V":  EnterVisualLine,
		"x":  DeleteCharUnder,
		"dd": DeleteLine,
		"d":  OperatorDelete,
		"c":  OperatorChange,
		"y":  OperatorYank,
		"u":  Undo,
		"w":  MoveWordForward,
		"b":  MoveWordBackward,
		"e":  MoveEndWord,
		"p":  PasteAfter,
		"P":  PasteBefore,
		":":  CommandPrompt,
	}
}

// Lookup resolves a complete key sequence.
func (k Keymap) Lookup(seq string) (Action, bool) {
	act, ok := k[seq]
	return act, ok
}

// HasPrefix reports whether any binding starts with the given sequence.
func (k Keymap) HasPrefix(seq string) bool {
	if seq == "" {
		return false
	}
	for key := range k {
		if strings.HasPrefix(key, seq) {
			return true
		}
	}
	return false
}

// Merge returns a copy of the keymap with overrides applied, later-wins.
func (k Keymap) Merge(overrides map[string]Action) Keymap {
	out := make(Keymap, len(k)+len(overrides))
	for seq, act := range k {
		out[seq] = act
	}
	for seq, act := range overrides {
		out[seq] = act
	}
	return out
}

// actionNames maps config action names to actions. Each action also
// resolves from its default key, so configs can say either
// "delete_line" or "dd".
var actionNames = map[string]Action{
	"move_left":          MoveLeft,
	"h":                  MoveLeft,
	"move_down":          MoveDown,
	"j":                  MoveDown,
	"move_up":            MoveUp,
	"k":                  MoveUp,
	"move_right":         MoveRight,
	"l":                  MoveRight,
	"line_start":         LineStart,
	"0":                  LineStart,
	"line_end":           LineEnd,
	"$":                  LineEnd,
	"goto_top":           GotoTop,
	"gg":                 GotoTop,
	"goto_bottom":        GotoBottom,
	"G":                  GotoBottom,
	"insert":             EnterInsert,
	"i":                  EnterInsert,
	"append":             Append,
	"a":                  Append,
	"open_below":         OpenBelow,
	"o":                  OpenBelow,
	"open_above":         OpenAbove,
	"O":                  OpenAbove,
	"visual":             EnterVisual,
	"v":                  EnterVisual,
	"visual_line":        EnterVisualLine,
	"V":                  EnterVisualLine,
	"visual_block":       EnterVisualBlock,
	"delete_char":        DeleteCharUnder,
	"x":                  DeleteCharUnder,
	"delete_line":        DeleteLine,
	"dd":                 DeleteLine,
	"delete":             OperatorDelete,
	"d":                  OperatorDelete,
	"change":             OperatorChange,
	"c":                  OperatorChange,
	"yank":               OperatorYank,
	"y":                  OperatorYank,
	"undo":               Undo,
	"u":                  Undo,
	"redo":               Redo,
	"move_word_forward":  MoveWordForward,
	"w":                  MoveWordForward,
	"move_word_backward": MoveWordBackward,
	"b":                  MoveWordBackward,
	"move_end_word":      MoveEndWord,
	"e":                  MoveEndWord,
	"paste_after":        PasteAfter,
	"p":                  PasteAfter,
	"paste_before":       PasteBefore,
	"P":                  PasteBefore,
	"command":            CommandPrompt,
	":":                  CommandPrompt,
}

// ParseAction resolves a named action from a config file.
func ParseAction(name string) (Action, bool) {
	act, ok := actionNames[strings.TrimSpace(name)]
	return act, ok
}
