package tui_test

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/ja-he/smartref/internal/styling"
	"github.com/ja-he/smartref/internal/tui"
)

func newSimulated(t *testing.T, w, h int) (tcell.SimulationScreen, *tui.ScreenHandler) {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	handler, err := tui.NewScreenHandler(screen)
	if err != nil {
		t.Fatal("could not initialize simulation screen:", err.Error())
	}
	screen.SetSize(w, h)
	return screen, handler
}

func rowText(screen tcell.SimulationScreen, row, w int) string {
	cells, width, _ := screen.GetContents()
	result := []rune{}
	for col := 0; col < w; col++ {
		runes := cells[row*width+col].Runes
		if len(runes) == 0 || runes[0] == 0 {
			result = append(result, ' ')
			continue
		}
		result = append(result, runes[0])
	}
	return string(result)
}

func TestDrawText(t *testing.T) {
	style, err := styling.StyleFromHex("#ffffff", "#000000")
	if err != nil {
		t.Fatal(err.Error())
	}

	t.Run("wraps", func(t *testing.T) {
		screen, handler := newSimulated(t, 10, 3)
		handler.DrawText(0, 0, 4, 2, style, "Genesis 3")
		handler.Show()
		if actual := rowText(screen, 0, 4); actual != "Gene" {
			t.Errorf("first row '%s'", actual)
		}
		if actual := rowText(screen, 1, 4); actual != "sis " {
			t.Errorf("second row '%s'", actual)
		}
		if actual := rowText(screen, 2, 4); actual != "    " {
			t.Errorf("text drawn beyond height: '%s'", actual)
		}
	})

	t.Run("wide runes take two cells", func(t *testing.T) {
		screen, handler := newSimulated(t, 10, 2)
		handler.DrawText(0, 0, 3, 2, style, "創世記")
		handler.Show()
		cells, width, _ := screen.GetContents()
		if len(cells[0].Runes) == 0 || cells[0].Runes[0] != '創' {
			t.Error("first wide rune not drawn at column 0")
		}
		if len(cells[width].Runes) == 0 || cells[width].Runes[0] != '世' {
			t.Error("second wide rune not wrapped to next row")
		}
	})

	t.Run("dimensions", func(t *testing.T) {
		_, handler := newSimulated(t, 42, 7)
		if x, y, w, h := handler.Dimensions(); x != 0 || y != 0 || w != 42 || h != 7 {
			t.Error("unexpected dimensions", x, y, w, h)
		}
	})
}
