package reference

import (
	"regexp"
	"strconv"

	"github.com/rs/zerolog/log"

	"github.com/ja-he/smartref/internal/catalog"
)

// referencePattern matches the "Book Chapter" shape at the start of the text:
// an optional single digit and space, a name of word characters and spaces,
// a space and the chapter digits.
// Anything after the digits (e.g. a ':') is tolerated and dropped.
var referencePattern = regexp.MustCompile(`^((?:\d )?\w[\w ]*) (\d+)`)

// Resolver holds a Reference and updates it from the full contents of a text
// field on every edit.
//
// A Resolver performs no locking; all calls on one Resolver must be
// serialized by the caller. The catalog it refers to is only read.
type Resolver struct {
	books *catalog.Catalog
	ref   Reference
}

// New returns a resolver over the given catalog starting at initial (which
// may be the zero Reference).
func New(books *catalog.Catalog, initial Reference) (*Resolver, error) {
	if err := initial.Validate(books); err != nil {
		return nil, err
	}
	return &Resolver{books: books, ref: initial}, nil
}

// Reference returns the current (book, chapter) pair.
func (r *Resolver) Reference() Reference { return r.ref }

// State returns the current resolution state.
func (r *Resolver) State() State {
	switch {
	case r.ref.Book == 0:
		return StateEmpty
	case r.ref.Chapter == 0:
		return StateNaming
	default:
		return StateResolved
	}
}

// Render returns the canonical text for the current state: "" when no book is
// set, the book name and a trailing space when no chapter is set, and
// "<Book> <Chapter>" otherwise.
func (r *Resolver) Render() string {
	if r.ref.Book == 0 {
		return ""
	}
	name := r.books.MustBook(r.ref.Book).Name
	if r.ref.Chapter == 0 {
		return name + " "
	}
	return name + " " + strconv.Itoa(r.ref.Chapter)
}

// Input consumes the current full contents of the text field and returns how
// the field should be updated.
func (r *Resolver) Input(text string) Result {
	result := r.input(text)
	log.Debug().
		Str("text", text).
		Str("result", result.Kind.String()).
		Str("result-text", result.Text).
		Stringer("ref", r.ref).
		Msg("resolved input")
	return result
}

func (r *Resolver) input(text string) Result {
	if text == "" {
		r.ref = Reference{}
		return rendered(r.Render())
	}

	if m := referencePattern.FindStringSubmatch(text); m != nil {
		book := r.books.Lookup(m[1])
		if book == 0 {
			// an invalid book name discards the whole entry
			r.ref = Reference{}
			return rendered(r.Render())
		}
		r.ref = Reference{Book: book, Chapter: r.clampChapter(book, m[2])}
		return rendered(r.Render())
	}

	// no chapter yet, the user is typing a name
	book := r.books.Lookup(text)
	switch {
	case book != 0 && r.books.MustBook(book).Name == text:
		// a complete name without the appended space means the space was
		// deleted, which clears the field
		r.ref = Reference{}
		return rendered(r.Render())
	case book != 0:
		r.ref = Reference{Book: book}
		return rendered(r.Render())
	case r.books.IsValidPrefix(text):
		return unchanged()
	default:
		runes := []rune(text)
		return trimmed(string(runes[:len(runes)-1]))
	}
}

// clampChapter parses digits as a chapter of book, clamped into the valid
// chapter range.
func (r *Resolver) clampChapter(book int, digits string) int {
	count := r.books.MustBook(book).ChapterCount
	chapter, err := strconv.Atoi(digits)
	if err != nil {
		// digits only, so the value overflowed
		return count
	}
	if chapter < 1 {
		return 1
	}
	if chapter > count {
		return count
	}
	return chapter
}

// AdvanceChapter moves to the next chapter if there is one, reporting whether
// the state changed.
func (r *Resolver) AdvanceChapter() bool {
	if r.ref.Book > 0 && r.ref.Chapter < r.books.MustBook(r.ref.Book).ChapterCount {
		r.ref.Chapter++
		return true
	}
	return false
}

// RetreatChapter moves to the previous chapter if there is one, reporting
// whether the state changed.
func (r *Resolver) RetreatChapter() bool {
	if r.ref.Book > 0 && r.ref.Chapter > 1 {
		r.ref.Chapter--
		return true
	}
	return false
}

// Confirm completes the current state to a full reference, defaulting to the
// first book and the first chapter where unset, and returns it.
func (r *Resolver) Confirm() Reference {
	if r.ref.Book == 0 {
		r.ref.Book = r.books.Indices()[0]
	}
	if r.ref.Chapter == 0 {
		r.ref.Chapter = 1
	}
	return r.ref
}

// SelectBook sets the first chapter of the given book, as picked from a
// selection list.
func (r *Resolver) SelectBook(book int) error {
	if _, err := r.books.Book(book); err != nil {
		return err
	}
	r.ref = Reference{Book: book, Chapter: 1}
	return nil
}
