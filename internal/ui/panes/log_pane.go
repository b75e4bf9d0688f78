package panes

import (
	"fmt"
	"sort"

	"github.com/ja-he/smartref/internal/input"
	"github.com/ja-he/smartref/internal/memlog"
	"github.com/ja-he/smartref/internal/styling"
	"github.com/ja-he/smartref/internal/ui"
	"github.com/ja-he/smartref/internal/util"
)

// LogPane shows the log, with the most recent log entries at the top.
type LogPane struct {
	ui.LeafPane

	logReader memlog.Reader

	titleString func() string
}

// Draw draws the log over top of all previously drawn contents, if it is
// currently active.
func (p *LogPane) Draw() {

	if p.IsVisible() {
		x, y, w, h := p.Dimensions()
		row := 2

		p.Renderer.DrawBox(x, y, w, h, p.Stylesheet.LogDefault)
		title := util.TruncateAt(p.titleString(), w)
		p.Renderer.DrawBox(x, y, w, 1, p.Stylesheet.LogTitleBox)
		p.Renderer.DrawText(x, y, w, 1, p.Stylesheet.LogTitleBox, util.PadCenter(title, w))

		entries := p.logReader.Get()
		for i := len(entries) - 1; i >= 0 && row < h; i-- {
			entry := entries[i]

			levelLen := len(" error ")
			extraDataIndentWidth := levelLen + 1
			level := entryField(entry, "level")
			p.Renderer.DrawText(
				x, y+row, levelLen, 1,
				p.levelStyle(level),
				util.PadCenter(level, levelLen),
			)
			col := x + extraDataIndentWidth

			for _, part := range []struct {
				text  string
				style styling.DrawStyling
			}{
				{entryField(entry, "message"), p.Stylesheet.LogDefault},
				{entryField(entry, "caller"), p.Stylesheet.LogEntryLocation},
				{entryField(entry, "time"), p.Stylesheet.LogEntryTime},
			} {
				if part.text == "" || col >= x+w {
					continue
				}
				p.Renderer.DrawText(col, y+row, x+w-col, 1, part.style, part.text)
				col += util.Width(part.text) + 1
			}
			row++

			for _, k := range extraKeys(entry) {
				if row >= h {
					break
				}
				col = x + extraDataIndentWidth
				p.Renderer.DrawText(col, y+row, x+w-col, 1, p.Stylesheet.LogEntryTime, k)
				col += util.Width(k) + 2
				if col < x+w {
					p.Renderer.DrawText(col, y+row, x+w-col, 1, p.Stylesheet.LogEntryLocation, entryField(entry, k))
				}
				row++
			}
		}
	}
}

func (p *LogPane) levelStyle(level string) styling.DrawStyling {
	switch level {
	case "error":
		return p.Stylesheet.LogEntryTypeError
	case "warn":
		return p.Stylesheet.LogEntryTypeWarn
	case "info":
		return p.Stylesheet.LogEntryTypeInfo
	case "debug":
		return p.Stylesheet.LogEntryTypeDebug
	case "trace":
		return p.Stylesheet.LogEntryTypeTrace
	}
	return p.Stylesheet.LogDefault
}

func entryField(entry memlog.Entry, key string) string {
	v, ok := entry[key]
	if !ok || v == nil {
		return ""
	}
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}

// extraKeys returns the keys of an entry besides the ones every entry has,
// sorted.
func extraKeys(entry memlog.Entry) []string {
	keys := make([]string, 0, len(entry))
	for k := range entry {
		switch k {
		case "caller", "message", "time", "level":
		default:
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	return keys
}

// NewLogPane constructs and returns a new LogPane.
func NewLogPane(
	renderer ui.ConstrainedRenderer,
	dimensions func() (x, y, w, h int),
	stylesheet styling.Stylesheet,
	condition func() bool,
	inputProcessor input.ModalInputProcessor,
	titleString func() string,
	logReader memlog.Reader,
) *LogPane {
	return &LogPane{
		LeafPane: ui.LeafPane{
			BasePane: ui.BasePane{
				ID:             ui.GeneratePaneID(),
				InputProcessor: inputProcessor,
				Visible:        condition,
			},
			Renderer:   renderer,
			Dims:       dimensions,
			Stylesheet: stylesheet,
		},
		titleString: titleString,
		logReader:   logReader,
	}
}
