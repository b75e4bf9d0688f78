package config

import "github.com/ja-he/smartref/internal/input"

// Default returns the default configuration for the given colorscheme type
// (light or dark).
func Default(colorschemeType ColorschemeType) Config {
	return Config{
		Stylesheet: defaultStylesheet(colorschemeType),
		Bindings:   defaultBindings(),
	}
}

func defaultBindings() input.InputConfig {
	return input.InputConfig{
		Field: map[input.Keyspec]input.Actionspec{
			"<left>":  "move-cursor-rune-left",
			"<right>": "move-cursor-rune-right",
			"<home>":  "move-cursor-to-beginning",
			"<c-a>":   "move-cursor-to-beginning",
			"<end>":   "move-cursor-to-end",
			"<c-e>":   "move-cursor-to-end",
			"<bs>":    "backspace",
			"<c-bs>":  "backspace",
			"<c-u>":   "backspace-to-beginning",
			"<del>":   "delete-rune",
			"<c-k>":   "delete-to-end",
			"<c-w>":   "clear",
			"<cr>":    "accept",
			"<pgdn>":  "next-chapter",
			"<c-n>":   "next-chapter",
			"<pgup>":  "prev-chapter",
			"<c-p>":   "prev-chapter",
			"<tab>":   "toggle-book-list",
			"<f1>":    "toggle-help",
			"<c-l>":   "toggle-log",
			"<c-c>":   "quit",
			"<esc>":   "quit",
		},
		BookList: map[input.Keyspec]input.Actionspec{
			"j":      "next-book",
			"<down>": "next-book",
			"k":      "prev-book",
			"<up>":   "prev-book",
			"<c-d>":  "next-page",
			"<pgdn>": "next-page",
			"<c-u>":  "prev-page",
			"<pgup>": "prev-page",
			"gg":     "first-book",
			"G":      "last-book",
			"<cr>":   "select-book",
			"<esc>":  "close",
			"<tab>":  "close",
			"q":      "close",
		},
		Help: map[input.Keyspec]input.Actionspec{
			"<esc>": "close",
			"<f1>":  "close",
			"q":     "close",
			"?":     "close",
		},
		Log: map[input.Keyspec]input.Actionspec{
			"<esc>": "close",
			"<c-l>": "close",
			"q":     "close",
		},
	}
}

func defaultStylesheet(colorschemeType ColorschemeType) Stylesheet {
	if colorschemeType == Light {
		return Stylesheet{
			Normal:            Styling{Fg: "#000000", Bg: "#ffffff", Style: &FontStyle{}},
			Status:            Styling{Fg: "#000000", Bg: "#f0f0f0", Style: &FontStyle{}},
			StatusEmphasized:  Styling{Fg: "#000000", Bg: "#ccebff", Style: &FontStyle{Bold: true}},
			Field:             Styling{Fg: "#000000", Bg: "#cccccc", Style: &FontStyle{}},
			FieldPending:      Styling{Fg: "#cc8f00", Bg: "#fff0cc", Style: &FontStyle{Italic: true}},
			FieldRejected:     Styling{Fg: "#882222", Bg: "#ffaaaa", Style: &FontStyle{}},
			BookList:          Styling{Fg: "#000000", Bg: "#f0f0f0", Style: &FontStyle{}},
			BookListSelected:  Styling{Fg: "#ffffff", Bg: "#0065a3", Style: &FontStyle{Bold: true}},
			Events:            Styling{Fg: "#000000", Bg: "#ffffff", Style: &FontStyle{}},
			EventsTitleBox:    Styling{Fg: "#000000", Bg: "#f0f0f0", Style: &FontStyle{Bold: true}},
			LogDefault:        Styling{Fg: "#000000", Bg: "#ffffff", Style: &FontStyle{}},
			LogTitleBox:       Styling{Fg: "#000000", Bg: "#f0f0f0", Style: &FontStyle{Bold: true}},
			LogEntryTypeError: Styling{Fg: "#882222", Bg: "#ffaaaa", Style: &FontStyle{Bold: true}},
			LogEntryTypeWarn:  Styling{Fg: "#cc8f00", Bg: "#fff0cc", Style: &FontStyle{Bold: true}},
			LogEntryTypeInfo:  Styling{Fg: "#3a751a", Bg: "#c2edab", Style: &FontStyle{Bold: true}},
			LogEntryTypeDebug: Styling{Fg: "#0065a3", Bg: "#ccebff", Style: &FontStyle{Bold: true}},
			LogEntryTypeTrace: Styling{Fg: "#a3008b", Bg: "#ffccf7", Style: &FontStyle{Bold: true}},
			LogEntryLocation:  Styling{Fg: "#cccccc", Bg: "#ffffff", Style: &FontStyle{}},
			LogEntryTime:      Styling{Fg: "#c0c0c0", Bg: "#ffffff", Style: &FontStyle{}},
			Help:              Styling{Fg: "#000000", Bg: "#f0f0f0", Style: &FontStyle{}},
		}
	}
	return Stylesheet{
		Normal:            Styling{Fg: "#ffffff", Bg: "#000000", Style: &FontStyle{}},
		Status:            Styling{Fg: "#f0f0f0", Bg: "#202020", Style: &FontStyle{}},
		StatusEmphasized:  Styling{Fg: "#ccebff", Bg: "#0065a3", Style: &FontStyle{Bold: true}},
		Field:             Styling{Fg: "#ffffff", Bg: "#404040", Style: &FontStyle{}},
		FieldPending:      Styling{Fg: "#fff0cc", Bg: "#734700", Style: &FontStyle{Italic: true}},
		FieldRejected:     Styling{Fg: "#ffaaaa", Bg: "#882222", Style: &FontStyle{}},
		BookList:          Styling{Fg: "#f0f0f0", Bg: "#303030", Style: &FontStyle{}},
		BookListSelected:  Styling{Fg: "#ccebff", Bg: "#0065a3", Style: &FontStyle{Bold: true}},
		Events:            Styling{Fg: "#ffffff", Bg: "#000000", Style: &FontStyle{}},
		EventsTitleBox:    Styling{Fg: "#f0f0f0", Bg: "#000000", Style: &FontStyle{Bold: true}},
		LogDefault:        Styling{Fg: "#ffffff", Bg: "#000000", Style: &FontStyle{}},
		LogTitleBox:       Styling{Fg: "#f0f0f0", Bg: "#000000", Style: &FontStyle{Bold: true}},
		LogEntryTypeError: Styling{Fg: "#ffaaaa", Bg: "#882222", Style: &FontStyle{Bold: true}},
		LogEntryTypeWarn:  Styling{Fg: "#fff0cc", Bg: "#cc8f00", Style: &FontStyle{Bold: true}},
		LogEntryTypeInfo:  Styling{Fg: "#c2edab", Bg: "#3a751a", Style: &FontStyle{Bold: true}},
		LogEntryTypeDebug: Styling{Fg: "#ccebff", Bg: "#0065a3", Style: &FontStyle{Bold: true}},
		LogEntryTypeTrace: Styling{Fg: "#ffccf7", Bg: "#a3008b", Style: &FontStyle{Bold: true}},
		LogEntryLocation:  Styling{Fg: "#c0c0c0", Bg: "#000000", Style: &FontStyle{}},
		LogEntryTime:      Styling{Fg: "#808080", Bg: "#000000", Style: &FontStyle{}},
		Help:              Styling{Fg: "#ffffff", Bg: "#404040", Style: &FontStyle{}},
	}
}
