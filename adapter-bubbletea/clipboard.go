package bubble_adapter

import (
	"github.com/atotto/clipboard"
)

// SystemClipboard mirrors the editor's register to the OS clipboard.
// Attach it with Editor.UseClipboard; failures (headless sessions, no
// clipboard utility installed) are ignored by the core.
type SystemClipboard struct{}

func (SystemClipboard) Read() (string, error) {
	return clipboard.ReadAll()
}

func (SystemClipboard) Write(text string) error {
	return clipboard.WriteAll(text)
}
