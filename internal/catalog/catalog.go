// Package catalog implements the fixed table of book names, chapter counts and
// abbreviations that typed references are resolved against.
//
// A Catalog is immutable after construction and may be shared between any
// number of goroutines without synchronization.
package catalog

import (
	"errors"
	"fmt"
	"strings"
)

// GapIndex is the legacy index that no book occupies.
//
// The table was historically numbered as two concatenated collections of 39
// and 27 books with one unused slot in between; the gap only keeps that
// numbering compatible, storage is contiguous.
const GapIndex = 40

var (
	// ErrOutOfRange is returned for an index of 0, the GapIndex or an index
	// beyond the table. It indicates a programming error.
	ErrOutOfRange = errors.New("book index out of range")

	// ErrDuplicateAbbreviation is returned on construction when two books share
	// an abbreviation.
	ErrDuplicateAbbreviation = errors.New("duplicate abbreviation")

	// ErrUnknownBook is returned when an abbreviation override names a book
	// that is not in the catalog.
	ErrUnknownBook = errors.New("unknown book")
)

// BookEntry is a single book of the catalog.
type BookEntry struct {
	Name          string
	ChapterCount  int
	Abbreviations []string
}

// Catalog is an ordered, read-only table of books with an abbreviation index.
type Catalog struct {
	entries []BookEntry

	// normalized name -> legacy index
	byName map[string]int
	// normalized abbreviation -> legacy index
	byAbbreviation map[string]int
}

// New constructs a catalog from the given entries, which are assigned legacy
// indices in order (skipping GapIndex).
//
// Returns an error wrapping ErrDuplicateAbbreviation if an abbreviation (after
// title case normalization) is used more than once.
func New(entries []BookEntry) (*Catalog, error) {
	c := &Catalog{
		entries:        make([]BookEntry, len(entries)),
		byName:         make(map[string]int, len(entries)),
		byAbbreviation: make(map[string]int),
	}

	for pos, entry := range entries {
		if entry.Name == "" {
			return nil, fmt.Errorf("book at position %d has no name", pos)
		}
		if entry.ChapterCount < 1 {
			return nil, fmt.Errorf("book '%s' has invalid chapter count %d", entry.Name, entry.ChapterCount)
		}

		index := indexOfPosition(pos)
		c.entries[pos] = BookEntry{
			Name:          entry.Name,
			ChapterCount:  entry.ChapterCount,
			Abbreviations: append([]string(nil), entry.Abbreviations...),
		}

		normalizedName := titleCase(entry.Name)
		if other, ok := c.byName[normalizedName]; ok {
			return nil, fmt.Errorf("book name '%s' used for indices %d and %d", entry.Name, other, index)
		}
		c.byName[normalizedName] = index

		for _, abbreviation := range entry.Abbreviations {
			normalized := titleCase(abbreviation)
			if normalized == "" {
				return nil, fmt.Errorf("book '%s' has an empty abbreviation", entry.Name)
			}
			if other, ok := c.byAbbreviation[normalized]; ok {
				return nil, fmt.Errorf(
					"%w: '%s' for both '%s' and '%s'",
					ErrDuplicateAbbreviation, normalized, c.entries[positionOfIndex(other)].Name, entry.Name,
				)
			}
			c.byAbbreviation[normalized] = index
		}
	}

	return c, nil
}

// Default returns a new catalog built from the compiled-in table.
func Default() (*Catalog, error) {
	return New(defaultEntries)
}

// WithAbbreviations returns a new catalog in which the abbreviation lists of
// the books named in overrides are replaced.
// Book names are matched case-insensitively.
func (c *Catalog) WithAbbreviations(overrides map[string][]string) (*Catalog, error) {
	entries := c.Entries()
	for name, abbreviations := range overrides {
		index, ok := c.byName[titleCase(name)]
		if !ok {
			return nil, fmt.Errorf("%w: '%s'", ErrUnknownBook, name)
		}
		entries[positionOfIndex(index)].Abbreviations = abbreviations
	}
	return New(entries)
}

// Len returns the number of books in the catalog.
func (c *Catalog) Len() int { return len(c.entries) }

// MaxIndex returns the highest valid index.
func (c *Catalog) MaxIndex() int { return indexOfPosition(len(c.entries) - 1) }

// Names returns the book names in catalog order.
func (c *Catalog) Names() []string {
	names := make([]string, len(c.entries))
	for i := range c.entries {
		names[i] = c.entries[i].Name
	}
	return names
}

// Entries returns a copy of all entries in catalog order.
func (c *Catalog) Entries() []BookEntry {
	entries := make([]BookEntry, len(c.entries))
	for i, e := range c.entries {
		entries[i] = BookEntry{
			Name:          e.Name,
			ChapterCount:  e.ChapterCount,
			Abbreviations: append([]string(nil), e.Abbreviations...),
		}
	}
	return entries
}

// Indices returns the legacy index of every book in catalog order.
func (c *Catalog) Indices() []int {
	indices := make([]int, len(c.entries))
	for i := range c.entries {
		indices[i] = indexOfPosition(i)
	}
	return indices
}

// Valid returns whether the index refers to a book.
func (c *Catalog) Valid(index int) bool {
	pos := positionOfIndex(index)
	return pos >= 0 && pos < len(c.entries)
}

// Book returns the entry for the given index.
func (c *Catalog) Book(index int) (BookEntry, error) {
	if !c.Valid(index) {
		return BookEntry{}, fmt.Errorf("%w: %d", ErrOutOfRange, index)
	}
	return c.entries[positionOfIndex(index)], nil
}

// MustBook is like Book but panics on an invalid index.
func (c *Catalog) MustBook(index int) BookEntry {
	entry, err := c.Book(index)
	if err != nil {
		panic(err.Error())
	}
	return entry
}

// Name returns the name of the book at the given index.
func (c *Catalog) Name(index int) (string, error) {
	entry, err := c.Book(index)
	if err != nil {
		return "", err
	}
	return entry.Name, nil
}

// ChapterCount returns the number of chapters of the book at the given index.
func (c *Catalog) ChapterCount(index int) (int, error) {
	entry, err := c.Book(index)
	if err != nil {
		return 0, err
	}
	return entry.ChapterCount, nil
}

// IndexOfName returns the index of the book with exactly the given name, or 0.
// This is the reverse mapping for a selection list populated from Names.
func (c *Catalog) IndexOfName(name string) int {
	for pos := range c.entries {
		if c.entries[pos].Name == strings.TrimSpace(name) {
			return indexOfPosition(pos)
		}
	}
	return 0
}

// indexOfPosition maps a storage position to its legacy index.
func indexOfPosition(pos int) int {
	if pos+1 < GapIndex {
		return pos + 1
	}
	return pos + 2
}

// positionOfIndex maps a legacy index to its storage position, -1 for 0 and
// the gap.
func positionOfIndex(index int) int {
	switch {
	case index <= 0, index == GapIndex:
		return -1
	case index < GapIndex:
		return index - 1
	default:
		return index - 2
	}
}
