package editors

import (
	"fmt"
	"strconv"

	"github.com/rs/zerolog/log"

	"github.com/ja-he/smartref/internal/control/action"
	"github.com/ja-he/smartref/internal/control/edit"
	"github.com/ja-he/smartref/internal/control/edit/views"
	"github.com/ja-he/smartref/internal/input"
	"github.com/ja-he/smartref/internal/input/processors"
	"github.com/ja-he/smartref/internal/reference"
)

// ReferenceEditorControl allows manipulation of a reference editor.
type ReferenceEditorControl interface {
	AddRune(newRune rune)
	DeleteRune()
	BackspaceRune()
	BackspaceToBeginning()
	DeleteToEnd()
	Clear()
	MoveCursorToBeginning()
	MoveCursorToEnd()
	MoveCursorLeft()
	MoveCursorRight()
	Accept()
	NextChapter()
	PreviousChapter()
	SelectBook(book int) error
}

// ReferenceEditor is a single-line text field whose content is kept resolved
// against a reference.Resolver. Every change to the content is passed to the
// resolver and its result applied back, so the content is either the
// canonical rendering of the resolver's pair or an ambiguous prefix the user
// is still typing.
//
// Not safe for concurrent use.
type ReferenceEditor struct {
	Name string

	Content   string
	CursorPos int

	resolver *reference.Resolver
	rejected string

	referenceHandlers []func(reference.Reference)
	QuitCallback      func()
}

var _ edit.Editor = &ReferenceEditor{}
var _ views.ReferenceEditorView = &ReferenceEditor{}

// NewReferenceEditor returns a pointer to a new ReferenceEditor showing the
// resolver's current rendering, with the cursor at the end.
func NewReferenceEditor(name string, resolver *reference.Resolver) *ReferenceEditor {
	e := &ReferenceEditor{
		Name:     name,
		resolver: resolver,
	}
	e.refresh()
	return e
}

// GetType asserts that this is a reference editor.
func (e *ReferenceEditor) GetType() string { return "reference" }

// GetName returns the name of the editor.
func (e *ReferenceEditor) GetName() string { return e.Name }

// GetContent returns the current (edited) contents.
func (e *ReferenceEditor) GetContent() string { return e.Content }

// GetCursorPos returns the current cursor position in the content.
func (e *ReferenceEditor) GetCursorPos() int { return e.CursorPos }

// GetReference returns the pair the content currently resolves to.
func (e *ReferenceEditor) GetReference() reference.Reference { return e.resolver.Reference() }

// GetState returns the resolver state.
func (e *ReferenceEditor) GetState() reference.State { return e.resolver.State() }

// GetRejected returns the text as typed before the last edit was trimmed, or
// "" if the last edit needed no trimming.
func (e *ReferenceEditor) GetRejected() string { return e.rejected }

// AddReferenceHandler registers a handler to be called with the pair after
// each accept or chapter change.
func (e *ReferenceEditor) AddReferenceHandler(handler func(reference.Reference)) {
	e.referenceHandlers = append(e.referenceHandlers, handler)
}

// SetContent replaces the content, as if the user had pasted it, and
// resolves it.
func (e *ReferenceEditor) SetContent(content string) {
	e.Content = content
	e.CursorPos = len([]rune(content))
	e.edited()
}

// AddRune adds a rune at the cursor position.
func (e *ReferenceEditor) AddRune(newRune rune) {
	if !strconv.IsPrint(newRune) {
		return
	}
	tmp := []rune(e.Content)
	cursorPos := e.CursorPos
	tmp = append(tmp[:cursorPos], append([]rune{newRune}, tmp[cursorPos:]...)...)
	e.Content = string(tmp)
	e.CursorPos++
	e.edited()
}

// DeleteRune deletes the rune at the cursor position.
func (e *ReferenceEditor) DeleteRune() {
	tmp := []rune(e.Content)
	if e.CursorPos < len(tmp) {
		e.Content = string(append(tmp[:e.CursorPos], tmp[e.CursorPos+1:]...))
		e.edited()
	}
}

// BackspaceRune deletes the rune before the cursor position.
func (e *ReferenceEditor) BackspaceRune() {
	if e.CursorPos > 0 {
		tmp := []rune(e.Content)
		e.Content = string(append(tmp[:e.CursorPos-1], tmp[e.CursorPos:]...))
		e.CursorPos--
		e.edited()
	}
}

// BackspaceToBeginning deletes all runes before the cursor position.
func (e *ReferenceEditor) BackspaceToBeginning() {
	if e.CursorPos > 0 {
		e.Content = string([]rune(e.Content)[e.CursorPos:])
		e.CursorPos = 0
		e.edited()
	}
}

// DeleteToEnd deletes all runes from the cursor position on.
func (e *ReferenceEditor) DeleteToEnd() {
	tmp := []rune(e.Content)
	if e.CursorPos < len(tmp) {
		e.Content = string(tmp[:e.CursorPos])
		e.edited()
	}
}

// Clear deletes all runes in the editor.
func (e *ReferenceEditor) Clear() {
	e.Content = ""
	e.CursorPos = 0
	e.edited()
}

// MoveCursorToBeginning moves the cursor to the beginning of the content.
func (e *ReferenceEditor) MoveCursorToBeginning() {
	e.CursorPos = 0
}

// MoveCursorToEnd moves the cursor past the last rune.
func (e *ReferenceEditor) MoveCursorToEnd() {
	e.CursorPos = len([]rune(e.Content))
}

// MoveCursorLeft moves the cursor one rune to the left.
func (e *ReferenceEditor) MoveCursorLeft() {
	if e.CursorPos > 0 {
		e.CursorPos--
	}
}

// MoveCursorRight moves the cursor one rune to the right, at most past the
// last rune.
func (e *ReferenceEditor) MoveCursorRight() {
	if e.CursorPos < len([]rune(e.Content)) {
		e.CursorPos++
	}
}

// Accept completes the content to a full reference (first book, first
// chapter where missing) and notifies the reference handlers.
func (e *ReferenceEditor) Accept() {
	e.resolver.Confirm()
	e.rejected = ""
	e.refresh()
	e.notify()
}

// NextChapter moves to the next chapter, notifying the reference handlers if
// there is one.
func (e *ReferenceEditor) NextChapter() {
	if e.resolver.AdvanceChapter() {
		e.rejected = ""
		e.refresh()
		e.notify()
	}
}

// PreviousChapter moves to the previous chapter, notifying the reference
// handlers if there is one.
func (e *ReferenceEditor) PreviousChapter() {
	if e.resolver.RetreatChapter() {
		e.rejected = ""
		e.refresh()
		e.notify()
	}
}

// SelectBook shows the first chapter of the given book, as picked from a
// selection list. Handlers are not notified until the next accept.
func (e *ReferenceEditor) SelectBook(book int) error {
	if err := e.resolver.SelectBook(book); err != nil {
		return fmt.Errorf("could not select book %d: %w", book, err)
	}
	e.rejected = ""
	e.refresh()
	return nil
}

// Quit the editor.
func (e *ReferenceEditor) Quit() {
	if e.QuitCallback != nil {
		e.QuitCallback()
	}
}

// AddQuitCallback adds a callback that is called when the editor is quit.
func (e *ReferenceEditor) AddQuitCallback(f func()) {
	if e.QuitCallback == nil {
		e.QuitCallback = f
		return
	}
	existingCallback := e.QuitCallback
	e.QuitCallback = func() {
		existingCallback()
		f()
	}
}

// edited resolves the content after a change and applies the result.
// Trimmed content is resolved again, until the resolver either accepts or
// renders it; this terminates as the empty content always renders.
func (e *ReferenceEditor) edited() {
	e.rejected = ""
	for {
		result := e.resolver.Input(e.Content)
		switch result.Kind {
		case reference.Unchanged:
			return
		case reference.Rendered:
			e.setRendered(result.Text)
			return
		case reference.Trim:
			if e.rejected == "" {
				e.rejected = e.Content
			}
			log.Debug().Str("from", e.Content).Str("to", result.Text).Msg("trimming rejected input")
			e.Content = result.Text
			if n := len([]rune(e.Content)); e.CursorPos > n {
				e.CursorPos = n
			}
		default:
			log.Error().Msgf("unknown result kind %s, likely logic error", result.Kind)
			return
		}
	}
}

// refresh shows the resolver's rendering.
func (e *ReferenceEditor) refresh() {
	e.setRendered(e.resolver.Render())
}

// setRendered replaces the content if it differs and moves the cursor to the
// end in that case.
func (e *ReferenceEditor) setRendered(text string) {
	if text == e.Content {
		return
	}
	e.Content = text
	e.CursorPos = len([]rune(text))
}

func (e *ReferenceEditor) notify() {
	ref := e.resolver.Reference()
	log.Debug().Stringer("reference", ref).Int("handlers", len(e.referenceHandlers)).Msg("sending reference")
	for _, handler := range e.referenceHandlers {
		handler(ref)
	}
}

// CreateInputProcessor creates an input processor for the editor.
//
// Runes not bound in the given bindings are typed into the field. Besides the
// editor's own actionspecs, the host may provide further actions (e.g. to
// show a book list), which must not share names with the editor's.
func (e *ReferenceEditor) CreateInputProcessor(
	bindings map[input.Keyspec]input.Actionspec,
	hostActions map[input.Actionspec]action.Action,
) (input.ModalInputProcessor, error) {

	actionspecToFunc := map[input.Actionspec]func(){
		"move-cursor-rune-left":    e.MoveCursorLeft,
		"move-cursor-rune-right":   e.MoveCursorRight,
		"move-cursor-to-beginning": e.MoveCursorToBeginning,
		"move-cursor-to-end":       e.MoveCursorToEnd,
		"backspace":                e.BackspaceRune,
		"backspace-to-beginning":   e.BackspaceToBeginning,
		"delete-rune":              e.DeleteRune,
		"delete-to-end":            e.DeleteToEnd,
		"clear":                    e.Clear,
		"accept":                   e.Accept,
		"next-chapter":             e.NextChapter,
		"prev-chapter":             e.PreviousChapter,
		"quit":                     e.Quit,
	}

	mappings := map[input.Keyspec]action.Action{}
	for keyspec, actionspec := range bindings {
		if f, ok := actionspecToFunc[actionspec]; ok {
			mappings[keyspec] = action.Explained(string(actionspec), f)
			continue
		}
		if a, ok := hostActions[actionspec]; ok {
			mappings[keyspec] = a
			continue
		}
		return nil, fmt.Errorf("unknown actionspec '%s' bound to '%s'", actionspec, keyspec)
	}
	for actionspec := range hostActions {
		if _, ok := actionspecToFunc[actionspec]; ok {
			return nil, fmt.Errorf("host action '%s' shadows an editor action", actionspec)
		}
	}

	textProcessor, err := processors.NewTextInputProcessor(mappings, e.AddRune)
	if err != nil {
		return nil, fmt.Errorf("could not construct field input processor: %w", err)
	}

	return processors.NewModalInputProcessor(textProcessor), nil
}
