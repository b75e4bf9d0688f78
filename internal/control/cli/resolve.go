package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/ja-he/smartref/internal/catalog"
	"github.com/ja-he/smartref/internal/control/edit/editors"
	"github.com/ja-he/smartref/internal/reference"
)

// resolveSuggestionCount is the number of book names suggested for text that
// did not resolve.
const resolveSuggestionCount = 3

// ResolveCommand holds the flags for the `resolve` command line command, for
// `go-flags` to parse command line args into.
type ResolveCommand struct {
	Keystrokes      bool `short:"k" long:"keystrokes" description:"type each text rune by rune into the field instead of entering it at once"`
	ShowSuggestions bool `short:"s" long:"show-suggestions" description:"suggest book names for text that does not resolve"`
	Accept          bool `short:"a" long:"accept" description:"accept the field after entering, completing missing book and chapter"`
}

// Execute executes the resolve command.
// (This gets called by `go-flags` when `resolve` is provided on the command
// line)
func (command *ResolveCommand) Execute(args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("no text given to resolve")
	}
	_, books, err := loadConfigAndCatalog(themeFromString(""))
	if err != nil {
		return err
	}
	return command.Run(os.Stdout, books, args)
}

// Run resolves each of texts in a fresh field and writes a line per text to
// out, giving the field's final content, the pair and the resolution state,
// e.g.
//
//	"gen 3" -> "Genesis 3" 1[3] resolved
func (command *ResolveCommand) Run(out io.Writer, books *catalog.Catalog, texts []string) error {
	for _, text := range texts {
		resolver, err := reference.New(books, reference.Reference{})
		if err != nil {
			return fmt.Errorf("can't construct resolver: %w", err)
		}
		field := editors.NewReferenceEditor("reference", resolver)

		var rejected []string
		if command.Keystrokes {
			for _, r := range text {
				field.AddRune(r)
				if field.GetRejected() != "" {
					rejected = append(rejected, field.GetRejected())
				}
			}
		} else {
			field.SetContent(text)
			if field.GetRejected() != "" {
				rejected = append(rejected, field.GetRejected())
			}
		}
		if command.Accept {
			field.Accept()
		}

		_, err = fmt.Fprintf(out, "%q -> %q %s %s\n", text, field.GetContent(), field.GetReference(), field.GetState())
		if err != nil {
			return err
		}

		if command.ShowSuggestions && field.GetState() == reference.StateEmpty && strings.TrimSpace(text) != "" {
			suggestions := books.Suggest(text, resolveSuggestionCount)
			if len(suggestions) > 0 {
				if _, err := fmt.Fprintf(out, "  did you mean: %s\n", strings.Join(suggestions, ", ")); err != nil {
					return err
				}
			}
		}
		if command.ShowSuggestions && len(rejected) > 0 {
			if _, err := fmt.Fprintf(out, "  rejected: %s\n", strings.Join(quoteAll(rejected), ", ")); err != nil {
				return err
			}
		}
	}
	return nil
}

func quoteAll(ss []string) []string {
	quoted := make([]string, len(ss))
	for i := range ss {
		quoted[i] = fmt.Sprintf("%q", ss[i])
	}
	return quoted
}
