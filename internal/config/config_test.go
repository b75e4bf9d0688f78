package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/ja-he/smartref/internal/config"
)

func TestParseConfigAugmentDefaults(t *testing.T) {

	t.Run("empty data gives defaults", func(t *testing.T) {
		for _, theme := range []config.ColorschemeType{config.Dark, config.Light} {
			c, err := config.ParseConfigAugmentDefaults(theme, nil)
			if err != nil {
				t.Fatal("unexpected error:", err.Error())
			}
			if c.Stylesheet.Normal.Fg != config.Default(theme).Stylesheet.Normal.Fg || c.Stylesheet.Field.Bg != config.Default(theme).Stylesheet.Field.Bg {
				t.Error("stylesheet differs from default")
			}
			if len(c.Bindings.Field) != len(config.Default(theme).Bindings.Field) {
				t.Error("field bindings differ from default")
			}
			if c.Abbreviations != nil {
				t.Error("unexpected abbreviations", c.Abbreviations)
			}
		}
	})

	t.Run("themes differ", func(t *testing.T) {
		dark := config.Default(config.Dark)
		light := config.Default(config.Light)
		if dark.Stylesheet.Normal.Bg == light.Stylesheet.Normal.Bg {
			t.Error("dark and light share the normal background")
		}
	})

	t.Run("augments", func(t *testing.T) {
		c, err := config.ParseConfigAugmentDefaults(config.Dark, []byte(`
stylesheet:
  field:
    fg: "#123456"
    bg: "#654321"
  status:
    fg: "#ffffff"
    style:
      bold: true
bindings:
  field:
    "<c-j>": accept
    "<esc>": ""
  book-list:
    "l": select-book
abbreviations:
  Genesis: [Gn, Gen]
`))
		if err != nil {
			t.Fatal("unexpected error:", err.Error())
		}

		if c.Stylesheet.Field.Fg != "#123456" || c.Stylesheet.Field.Bg != "#654321" {
			t.Error("field styling not overwritten:", c.Stylesheet.Field)
		}
		defaultStatus := config.Default(config.Dark).Stylesheet.Status
		if c.Stylesheet.Status.Fg != defaultStatus.Fg {
			t.Error("status colors overwritten although only one was given")
		}
		if c.Stylesheet.Status.Style == nil || !c.Stylesheet.Status.Style.Bold {
			t.Error("status font style not overwritten")
		}
		if c.Stylesheet.Normal.Fg != config.Default(config.Dark).Stylesheet.Normal.Fg {
			t.Error("unspecified styling changed")
		}

		if c.Bindings.Field["<c-j>"] != "accept" {
			t.Error("added binding missing")
		}
		if _, ok := c.Bindings.Field["<esc>"]; ok {
			t.Error("binding to empty actionspec not removed")
		}
		if c.Bindings.Field["<cr>"] != "accept" {
			t.Error("default binding lost")
		}
		if c.Bindings.BookList["l"] != "select-book" || c.Bindings.BookList["j"] != "next-book" {
			t.Error("book list bindings not augmented:", c.Bindings.BookList)
		}

		if abbreviations := c.Abbreviations["Genesis"]; len(abbreviations) != 2 || abbreviations[0] != "Gn" {
			t.Error("unexpected abbreviations", c.Abbreviations)
		}
	})

	t.Run("defaults are not shared", func(t *testing.T) {
		c, err := config.ParseConfigAugmentDefaults(config.Dark, []byte("stylesheet: {help: {style: {italic: true}}}"))
		if err != nil {
			t.Fatal("unexpected error:", err.Error())
		}
		if !c.Stylesheet.Help.Style.Italic {
			t.Error("help not italicized")
		}
		if config.Default(config.Dark).Stylesheet.Help.Style.Italic {
			t.Error("default was modified")
		}
	})

	t.Run("invalid yaml", func(t *testing.T) {
		_, err := config.ParseConfigAugmentDefaults(config.Dark, []byte("stylesheet: [unclosed"))
		if err == nil {
			t.Error("no error for invalid yaml")
		}
	})

}

func TestLoad(t *testing.T) {

	t.Run("missing file gives defaults", func(t *testing.T) {
		t.Setenv("SMARTREF_HOME", t.TempDir())
		c, err := config.Load(config.Light)
		if err != nil {
			t.Fatal("unexpected error:", err.Error())
		}
		if c.Stylesheet.Normal.Bg != config.Default(config.Light).Stylesheet.Normal.Bg {
			t.Error("not given light defaults")
		}
	})

	t.Run("reads file from SMARTREF_HOME", func(t *testing.T) {
		dir := t.TempDir()
		t.Setenv("SMARTREF_HOME", dir+"/")
		if config.Dir() != dir {
			t.Errorf("dir '%s' instead of '%s'", config.Dir(), dir)
		}
		err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("abbreviations: {Jude: [Jde]}\n"), 0o644)
		if err != nil {
			t.Fatal(err.Error())
		}
		c, err := config.Load(config.Dark)
		if err != nil {
			t.Fatal("unexpected error:", err.Error())
		}
		if len(c.Abbreviations["Jude"]) != 1 {
			t.Error("abbreviations not read:", c.Abbreviations)
		}
	})

}
