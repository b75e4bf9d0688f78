// Package action provides the actions input bindings resolve to.
package action

// Action is something a key binding can trigger.
type Action interface {
	// Do performs the action.
	Do()

	// Undo reverts a previous Do, if Undoable.
	Undo()
	// Undoable reports whether Undo has any effect.
	Undoable() bool

	// Explain returns a short human-readable description, for help.
	Explain() string
}
