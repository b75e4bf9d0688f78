// Package reference implements the resolution of partially typed text into a
// "Book Chapter" reference.
package reference

import (
	"errors"
	"fmt"

	"github.com/ja-he/smartref/internal/catalog"
)

// ErrInvalidReference is returned when a Reference violates its invariants
// with regard to a catalog.
var ErrInvalidReference = errors.New("invalid reference")

// Reference is a (book, chapter) pair.
//
// Book is 0 (unset) or a valid catalog index; Chapter is 0 (unset) or within
// [1, chapter count of Book]. Chapter is always 0 when Book is 0.
type Reference struct {
	Book    int
	Chapter int
}

// IsZero returns whether neither book nor chapter is set.
func (r Reference) IsZero() bool { return r.Book == 0 && r.Chapter == 0 }

// String returns a debug representation such as "1[3]".
func (r Reference) String() string {
	return fmt.Sprintf("%d[%d]", r.Book, r.Chapter)
}

// Validate checks the reference invariants against the given catalog.
func (r Reference) Validate(books *catalog.Catalog) error {
	if r.Book == 0 {
		if r.Chapter != 0 {
			return fmt.Errorf("%w: chapter %d without a book", ErrInvalidReference, r.Chapter)
		}
		return nil
	}
	entry, err := books.Book(r.Book)
	if err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidReference, err.Error())
	}
	if r.Chapter < 0 || r.Chapter > entry.ChapterCount {
		return fmt.Errorf("%w: chapter %d not in '%s' (1-%d)", ErrInvalidReference, r.Chapter, entry.Name, entry.ChapterCount)
	}
	return nil
}

// State is the resolution state of a Resolver.
type State int

const (
	_ State = iota
	// StateEmpty means no book is set.
	StateEmpty
	// StateNaming means a book is (auto-completed but) not yet given a chapter.
	StateNaming
	// StateResolved means both book and chapter are set.
	StateResolved
)

// String returns the name of the state.
func (s State) String() string {
	switch s {
	case StateEmpty:
		return "empty"
	case StateNaming:
		return "naming"
	case StateResolved:
		return "resolved"
	}
	return "[unknown]"
}

// ResultKind enumerates the outcomes of Resolver.Input.
type ResultKind int

const (
	_ ResultKind = iota
	// Rendered means the field should be set to Result.Text, which is the
	// canonical rendering of the new state (possibly empty).
	Rendered
	// Unchanged means the field must be left exactly as typed.
	Unchanged
	// Trim means the last typed character is unacceptable; the field should be
	// set to Result.Text (the input minus its last character) and Input be
	// called again with it.
	Trim
)

// String returns the name of the kind.
func (k ResultKind) String() string {
	switch k {
	case Rendered:
		return "rendered"
	case Unchanged:
		return "unchanged"
	case Trim:
		return "trim"
	}
	return "[unknown]"
}

// Result is the outcome of Resolver.Input.
// Text is only meaningful for Rendered and Trim.
type Result struct {
	Kind ResultKind
	Text string
}

func rendered(text string) Result { return Result{Kind: Rendered, Text: text} }
func unchanged() Result           { return Result{Kind: Unchanged} }
func trimmed(text string) Result  { return Result{Kind: Trim, Text: text} }
