package styling

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/ja-he/smartref/internal/config"
)

func TestLighten(t *testing.T) {
	blueish := colorful.Color{R: float64(0x12) / 255.0, G: float64(0x34) / 255.0, B: float64(0x56) / 255.0}
	gray := colorful.Color{R: float64(0x80) / 255.0, G: float64(0x80) / 255.0, B: float64(0x80) / 255.0}

	t.Run("0% -> no change", func(t *testing.T) {
		if result := lightenColorfulColor(blueish, 0); !result.AlmostEqualRgb(blueish) {
			t.Errorf("%s instead of %s", result.Hex(), blueish.Hex())
		}
	})
	t.Run("100% -> white", func(t *testing.T) {
		white := colorful.Color{R: 1.0, G: 1.0, B: 1.0}
		if result := lightenColorfulColor(blueish, 100); !result.AlmostEqualRgb(white) {
			t.Errorf("%s instead of %s", result.Hex(), white.Hex())
		}
	})
	t.Run("50% -> 50% lighter", func(t *testing.T) {
		expected := colorful.Color{R: float64(0xc0) / 255.0, G: float64(0xc0) / 255.0, B: float64(0xc0) / 255.0}
		if result := lightenColorfulColor(gray, 50); !result.AlmostEqualRgb(expected) {
			t.Errorf("%s instead of %s", result.Hex(), expected.Hex())
		}
	})
	t.Run("75% lighter <=> 50% lighter then 50% lighter again", func(t *testing.T) {
		a := lightenColorfulColor(gray, 75)
		b := lightenColorfulColor(lightenColorfulColor(gray, 50), 50)
		if !a.AlmostEqualRgb(b) {
			t.Errorf("%s != %s (dist: %f)", a.Hex(), b.Hex(), a.DistanceRgb(b))
		}
	})
}

func TestDarken(t *testing.T) {
	gray := colorful.Color{R: float64(0x80) / 255.0, G: float64(0x80) / 255.0, B: float64(0x80) / 255.0}
	black := colorful.Color{}
	if result := darkenColorfulColor(gray, 100); !result.AlmostEqualRgb(black) {
		t.Errorf("%s instead of black", result.Hex())
	}
	if result := darkenColorfulColor(gray, 0); !result.AlmostEqualRgb(gray) {
		t.Errorf("%s instead of unchanged", result.Hex())
	}
}

func TestStyleFromConfig(t *testing.T) {

	t.Run("valid", func(t *testing.T) {
		s, err := StyleFromConfig(config.Styling{Fg: "#ff0000", Bg: "#000", Style: &config.FontStyle{Bold: true}})
		if err != nil {
			t.Fatal("unexpected error:", err.Error())
		}
		fg, bg, attrs := s.AsTcell().Decompose()
		if fg != tcell.NewRGBColor(0xff, 0, 0) || bg != tcell.NewRGBColor(0, 0, 0) {
			t.Error("unexpected colors", s.ToString())
		}
		if attrs&tcell.AttrBold == 0 {
			t.Error("not bold")
		}
	})

	t.Run("invalid", func(t *testing.T) {
		if _, err := StyleFromConfig(config.Styling{Fg: "red", Bg: "#000"}); err == nil {
			t.Error("no error for invalid fg")
		}
		if _, err := StyleFromConfig(config.Styling{Fg: "#fff", Bg: ""}); err == nil {
			t.Error("no error for missing bg")
		}
	})

	t.Run("inverted swaps colors", func(t *testing.T) {
		s, _ := StyleFromHex("#ffffff", "#000000")
		fg, bg, _ := s.Inverted().AsTcell().Decompose()
		if fg != tcell.NewRGBColor(0, 0, 0) || bg != tcell.NewRGBColor(0xff, 0xff, 0xff) {
			t.Error("colors not swapped")
		}
	})

}

func TestNewStylesheetFromConfig(t *testing.T) {
	for _, theme := range []config.ColorschemeType{config.Dark, config.Light} {
		stylesheet, err := NewStylesheetFromConfig(config.Default(theme).Stylesheet)
		if err != nil {
			t.Fatal("default stylesheet invalid:", err.Error())
		}
		if stylesheet.Help == nil || stylesheet.FieldRejected == nil {
			t.Error("stylings not set")
		}
	}

	broken := config.Default(config.Dark).Stylesheet
	broken.Events.Fg = "#nothex"
	if _, err := NewStylesheetFromConfig(broken); err == nil {
		t.Error("no error for broken stylesheet")
	}
}
