package cli

import (
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/ja-he/smartref/internal/memlog"
	"github.com/ja-he/smartref/internal/styling"
)

// TUICommand holds the flags for the `tui` command line command, for
// `go-flags` to parse command line args into.
type TUICommand struct {
	Reference     string `short:"r" long:"reference" description:"initial text of the reference field, e.g. 'gen 3'" value-name:"<text>"`
	Theme         string `short:"t" long:"theme" choice:"light" choice:"dark" description:"Select a 'dark' or a 'light' default theme (note: only sets defaults, which are individually overridden by settings in config.yaml"`
	LogOutputFile string `short:"l" long:"log-output-file" description:"specify a log output file (otherwise logs dropped)"`
	LogPretty     bool   `short:"p" long:"log-pretty" description:"prettify logs to file"`
}

// Execute executes the tui command.
// (This gets called by `go-flags` when `tui` is provided on the command line)
func (command *TUICommand) Execute(args []string) error {
	// set up stderr logger until TUI set up
	stderrLogger := log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	logBuffer := memlog.New(memlog.DefaultCapacity)

	// create TUI logger
	var logWriter io.Writer
	if command.LogOutputFile != "" {
		var fileLogger io.Writer
		file, err := os.OpenFile(command.LogOutputFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			stderrLogger.Fatal().Err(err).Str("file", command.LogOutputFile).Msg("could not open file for logging")
		}
		defer file.Close()
		if command.LogPretty {
			fileLogger = zerolog.ConsoleWriter{Out: file}
		} else {
			fileLogger = file
		}
		logWriter = zerolog.MultiLevelWriter(fileLogger, logBuffer)
	} else {
		logWriter = logBuffer
	}
	tuiLogger := zerolog.New(logWriter).With().Timestamp().Caller().Logger()

	// temporarily log to both (in case the TUI doesn't get set we want the info
	// on the stderr logger, otherwise the TUI logger is relevant)
	log.Logger = log.Output(zerolog.MultiLevelWriter(stderrLogger, tuiLogger))

	configData, books, err := loadConfigAndCatalog(themeFromString(command.Theme))
	if err != nil {
		stderrLogger.Fatal().Err(err).Msg("can't set up from configuration")
	}

	stylesheet, err := styling.NewStylesheetFromConfig(configData.Stylesheet)
	if err != nil {
		stderrLogger.Fatal().Err(err).Msg("can't construct stylesheet")
	}

	controller, err := NewController(ControllerSetup{
		Books:       books,
		InitialText: command.Reference,
		Bindings:    configData.Bindings,
		Stylesheet:  *stylesheet,
		LogReader:   logBuffer,
	})
	if err != nil {
		stderrLogger.Fatal().Err(err).Msg("can't set up TUI")
	}

	// now that the screen is initialized, we'll always want the TUI logger, so
	// we're making it the global logger
	log.Logger = tuiLogger

	controller.Run()
	return nil
}
