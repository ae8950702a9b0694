package core

import (
	"fmt"
	"os"
)

// Open replaces the document with the file's content and resets cursor,
// history and the dirty flag.
func (e *Editor) Open(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}
	e.buf.SetText(string(data))
	e.filename = path
	e.cursor = Position{}
	e.dirty = false
	e.undoStack, e.redoStack = nil, nil
	e.undoGroupActive = false
	e.SetStatus("Opened " + path)
	return nil
}

// Save writes the whole document back to its file. ErrNoFilename is
// returned when no file is attached; use SaveAs first.
func (e *Editor) Save() error {
	if e.filename == "" {
		return ErrNoFilename
	}
	if err := os.WriteFile(e.filename, []byte(e.buf.Text()), 0o644); err != nil {
		return fmt.Errorf("save %s: %w", e.filename, err)
	}
	e.dirty = false
	e.SetStatus("Saved " + e.filename)
	return nil
}

// SaveAs attaches a filename and saves.
func (e *Editor) SaveAs(path string) error {
	e.filename = path
	return e.Save()
}

// SetFilename attaches a filename without saving.
func (e *Editor) SetFilename(path string) {
	e.filename = path
}
