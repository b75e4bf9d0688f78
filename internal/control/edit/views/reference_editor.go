package views

import "github.com/ja-he/smartref/internal/reference"

// ReferenceEditorView allows inspection of a reference editor.
type ReferenceEditorView interface {
	GetName() string

	// GetCursorPos returns the current cursor position in the content, 0 being
	// before the first rune.
	GetCursorPos() int

	// GetContent returns the current (edited) contents.
	GetContent() string

	// GetReference returns the pair the content currently resolves to.
	GetReference() reference.Reference

	// GetState returns the resolution state of the content.
	GetState() reference.State

	// GetRejected returns the text last typed before trailing runes had to be
	// dropped, or "" if the last edit was accepted.
	GetRejected() string
}
