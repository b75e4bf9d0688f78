// Package cli provides the command-line interface for smartref.
package cli

import (
	"fmt"

	"github.com/ja-he/smartref/internal/catalog"
	"github.com/ja-he/smartref/internal/config"
)

// CommandLineOpts holds the options and commands `go-flags` parses the command
// line into.
type CommandLineOpts struct {
	Version bool `short:"v" long:"version" description:"Show the program version"`

	TuiCommand     TUICommand     `command:"tui" subcommands-optional:"true" description:"Edit a reference interactively"`
	ResolveCommand ResolveCommand `command:"resolve" subcommands-optional:"true" description:"Resolve typed text to references"`
	BooksCommand   BooksCommand   `command:"books" subcommands-optional:"true" description:"List the books of the catalog"`
	VersionCommand VersionCommand `command:"version" subcommands-optional:"true" description:"Show the program version"`
}

// Opts is what the command line is parsed into.
var Opts CommandLineOpts

func themeFromString(theme string) config.ColorschemeType {
	switch theme {
	case "light":
		return config.Light
	default:
		return config.Dark
	}
}

// loadConfigAndCatalog reads the configuration and builds the catalog with the
// configured abbreviation overrides applied.
func loadConfigAndCatalog(theme config.ColorschemeType) (config.Config, *catalog.Catalog, error) {
	configData, err := config.Load(theme)
	if err != nil {
		return configData, nil, fmt.Errorf("can't load config: %w", err)
	}

	books, err := catalog.Default()
	if err != nil {
		return configData, nil, fmt.Errorf("can't construct catalog: %w", err)
	}
	if len(configData.Abbreviations) > 0 {
		books, err = books.WithAbbreviations(configData.Abbreviations)
		if err != nil {
			return configData, nil, fmt.Errorf("can't apply configured abbreviations: %w", err)
		}
	}

	return configData, books, nil
}
