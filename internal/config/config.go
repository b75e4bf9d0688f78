// Package config defines the format of the configuration file and the
// defaults it augments.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/ja-he/smartref/internal/input"
)

// Config is the configuration data as present in a config file at
// '${SMARTREF_HOME}/config.yaml'.
type Config struct {
	Stylesheet Stylesheet        `yaml:"stylesheet"`
	Bindings   input.InputConfig `yaml:"bindings"`

	// Abbreviations replaces the abbreviation lists of the named books.
	Abbreviations map[string][]string `yaml:"abbreviations"`
}

// A Stylesheet is the stylesheet contents defined in a config file.
type Stylesheet struct {
	Normal            Styling `yaml:"normal"`
	Status            Styling `yaml:"status"`
	StatusEmphasized  Styling `yaml:"status-emphasized"`
	Field             Styling `yaml:"field"`
	FieldPending      Styling `yaml:"field-pending"`
	FieldRejected     Styling `yaml:"field-rejected"`
	BookList          Styling `yaml:"book-list"`
	BookListSelected  Styling `yaml:"book-list-selected"`
	Events            Styling `yaml:"events"`
	EventsTitleBox    Styling `yaml:"events-title-box"`
	LogDefault        Styling `yaml:"log-default"`
	LogTitleBox       Styling `yaml:"log-title-box"`
	LogEntryTypeError Styling `yaml:"log-entry-type-error"`
	LogEntryTypeWarn  Styling `yaml:"log-entry-type-warn"`
	LogEntryTypeInfo  Styling `yaml:"log-entry-type-info"`
	LogEntryTypeDebug Styling `yaml:"log-entry-type-debug"`
	LogEntryTypeTrace Styling `yaml:"log-entry-type-trace"`
	LogEntryLocation  Styling `yaml:"log-entry-location"`
	LogEntryTime      Styling `yaml:"log-entry-time"`
	Help              Styling `yaml:"help"`
}

// A Styling is a styling as defined in a config file.
// It must contain fore- and background colors and can optionally specify font
// style (bold, italic, underlined).
type Styling struct {
	Fg    string     `yaml:"fg"`
	Bg    string     `yaml:"bg"`
	Style *FontStyle `yaml:"style"`
}

// A FontStyle can be any combination of bold, italic, and underlined.
type FontStyle struct {
	Bold       bool `yaml:"bold,omitempty"`
	Italic     bool `yaml:"italic,omitempty"`
	Underlined bool `yaml:"underlined,omitempty"`
}

// Dir returns the directory the config file is looked up in, which is
// $SMARTREF_HOME or, if unset, ~/.config/smartref.
func Dir() string {
	if home := os.Getenv("SMARTREF_HOME"); home != "" {
		return strings.TrimRight(home, "/")
	}
	return filepath.Join(os.Getenv("HOME"), ".config", "smartref")
}

// Load reads 'config.yaml' from Dir and augments the default configuration
// for the given theme with it.
// A missing file is not an error; the defaults are returned.
func Load(theme ColorschemeType) (Config, error) {
	path := filepath.Join(Dir(), "config.yaml")
	yamlData, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			return Default(theme), fmt.Errorf("can't read config file '%s': %w", path, err)
		}
		yamlData = nil
	}
	return ParseConfigAugmentDefaults(theme, yamlData)
}

// ParseConfigAugmentDefaults parses the configuration specified in
// YAML-formatted data and uses it to augment a given default configuration.
func ParseConfigAugmentDefaults(defaultTheme ColorschemeType, yamlData []byte) (Config, error) {
	defaultConfig := Default(defaultTheme)

	parsedConfig := Config{}
	err := yaml.Unmarshal(yamlData, &parsedConfig)
	if err != nil {
		return defaultConfig, fmt.Errorf("error unmarshaling yaml (%w)", err)
	}

	return defaultConfig.augmentWith(parsedConfig), nil
}

func (base Config) augmentWith(augment Config) Config {
	result := base

	result.Stylesheet = base.Stylesheet.augmentWith(augment.Stylesheet)

	result.Bindings.Field = augmentBindings(base.Bindings.Field, augment.Bindings.Field)
	result.Bindings.BookList = augmentBindings(base.Bindings.BookList, augment.Bindings.BookList)
	result.Bindings.Help = augmentBindings(base.Bindings.Help, augment.Bindings.Help)
	result.Bindings.Log = augmentBindings(base.Bindings.Log, augment.Bindings.Log)

	if len(augment.Abbreviations) > 0 {
		result.Abbreviations = augment.Abbreviations
	}

	return result
}

// augmentBindings returns a copy of base with the bindings of augment added.
// A binding to the empty actionspec removes the key from base.
func augmentBindings(base, augment map[input.Keyspec]input.Actionspec) map[input.Keyspec]input.Actionspec {
	result := make(map[input.Keyspec]input.Actionspec, len(base)+len(augment))
	for keyspec, actionspec := range base {
		result[keyspec] = actionspec
	}
	for keyspec, actionspec := range augment {
		if actionspec == "" {
			delete(result, keyspec)
		} else {
			result[keyspec] = actionspec
		}
	}
	return result
}

func (base Stylesheet) augmentWith(augment Stylesheet) Stylesheet {
	result := base

	result.Normal.overwriteIfDefined(augment.Normal)
	result.Status.overwriteIfDefined(augment.Status)
	result.StatusEmphasized.overwriteIfDefined(augment.StatusEmphasized)
	result.Field.overwriteIfDefined(augment.Field)
	result.FieldPending.overwriteIfDefined(augment.FieldPending)
	result.FieldRejected.overwriteIfDefined(augment.FieldRejected)
	result.BookList.overwriteIfDefined(augment.BookList)
	result.BookListSelected.overwriteIfDefined(augment.BookListSelected)
	result.Events.overwriteIfDefined(augment.Events)
	result.EventsTitleBox.overwriteIfDefined(augment.EventsTitleBox)
	result.LogDefault.overwriteIfDefined(augment.LogDefault)
	result.LogTitleBox.overwriteIfDefined(augment.LogTitleBox)
	result.LogEntryTypeError.overwriteIfDefined(augment.LogEntryTypeError)
	result.LogEntryTypeWarn.overwriteIfDefined(augment.LogEntryTypeWarn)
	result.LogEntryTypeInfo.overwriteIfDefined(augment.LogEntryTypeInfo)
	result.LogEntryTypeDebug.overwriteIfDefined(augment.LogEntryTypeDebug)
	result.LogEntryTypeTrace.overwriteIfDefined(augment.LogEntryTypeTrace)
	result.LogEntryLocation.overwriteIfDefined(augment.LogEntryLocation)
	result.LogEntryTime.overwriteIfDefined(augment.LogEntryTime)
	result.Help.overwriteIfDefined(augment.Help)

	return result
}

// overwriteIfDefined takes over the colors if both are given, and the font
// style if given.
func (s *Styling) overwriteIfDefined(augment Styling) {
	if augment.Fg != "" && augment.Bg != "" {
		s.Fg = augment.Fg
		s.Bg = augment.Bg
	}
	if augment.Style != nil {
		s.Style = &FontStyle{
			Bold:       augment.Style.Bold,
			Italic:     augment.Style.Italic,
			Underlined: augment.Style.Underlined,
		}
	}
}

// A ColorschemeType can either be light or dark.
type ColorschemeType = int

const (
	_ ColorschemeType = iota
	Dark
	Light
)
