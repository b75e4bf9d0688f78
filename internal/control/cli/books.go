package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/ja-he/smartref/internal/catalog"
	"github.com/ja-he/smartref/internal/util"
)

// BooksCommand holds the flags for the `books` command line command, for
// `go-flags` to parse command line args into.
type BooksCommand struct {
	Abbreviations bool `short:"a" long:"abbreviations" description:"also list each book's abbreviations"`
}

// Execute executes the books command.
// (This gets called by `go-flags` when `books` is provided on the command
// line)
func (command *BooksCommand) Execute(args []string) error {
	_, books, err := loadConfigAndCatalog(themeFromString(""))
	if err != nil {
		return err
	}
	return command.Run(os.Stdout, books)
}

// Run writes one line per book to out: its index, name and chapter count.
func (command *BooksCommand) Run(out io.Writer, books *catalog.Catalog) error {
	nameWidth := 0
	for _, name := range books.Names() {
		if w := util.Width(name); w > nameWidth {
			nameWidth = w
		}
	}

	indices := books.Indices()
	for i, book := range books.Entries() {
		index := indices[i]
		line := fmt.Sprintf("%2d  %s  %3d", index, util.PadRight(book.Name, nameWidth), book.ChapterCount)
		if command.Abbreviations {
			line += "  " + strings.Join(book.Abbreviations, ", ")
		}
		if _, err := fmt.Fprintln(out, line); err != nil {
			return err
		}
	}
	return nil
}
