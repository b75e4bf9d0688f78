package panes

import (
	"fmt"

	"github.com/ja-he/smartref/internal/catalog"
	"github.com/ja-he/smartref/internal/reference"
	"github.com/ja-he/smartref/internal/styling"
	"github.com/ja-he/smartref/internal/ui"
	"github.com/ja-he/smartref/internal/util"
)

// An EventsPane lists the references sent by the field, most recent first.
type EventsPane struct {
	ui.LeafPane

	events func() []reference.Reference
	books  *catalog.Catalog
}

// Draw draws this pane.
func (p *EventsPane) Draw() {
	x, y, w, h := p.Dimensions()

	p.Renderer.DrawBox(x, y, w, h, p.Stylesheet.Events)
	title := "Reference Events"
	p.Renderer.DrawBox(x, y, w, 1, p.Stylesheet.EventsTitleBox)
	p.Renderer.DrawText(x, y, w, 1, p.Stylesheet.EventsTitleBox, util.PadCenter(util.TruncateAt(title, w), w))

	events := p.events()
	row := 1
	for i := len(events) - 1; i >= 0 && row < h; i-- {
		line := FormatEvent(p.books, events[i])
		p.Renderer.DrawText(x+1, y+row, w-2, 1, p.Stylesheet.Events, util.TruncateAt(line, w-2))
		row++
	}
	if len(events) == 0 && h > 1 {
		p.Renderer.DrawText(x+1, y+1, w-2, 1, p.Stylesheet.Events.DefaultDimmed().Italicized(), util.TruncateAt("none yet, press enter to send", w-2))
	}
}

// FormatEvent renders a sent reference as it is listed, e.g.
// "Reference: 1[3]  Genesis 3".
func FormatEvent(books *catalog.Catalog, ref reference.Reference) string {
	line := "Reference: " + ref.String()
	if name, err := books.Name(ref.Book); err == nil {
		line += fmt.Sprintf("  %s %d", name, ref.Chapter)
	}
	return line
}

// NewEventsPane constructs and returns a new EventsPane.
func NewEventsPane(
	renderer ui.ConstrainedRenderer,
	dimensions func() (x, y, w, h int),
	stylesheet styling.Stylesheet,
	events func() []reference.Reference,
	books *catalog.Catalog,
) *EventsPane {
	return &EventsPane{
		LeafPane: ui.LeafPane{
			BasePane: ui.BasePane{
				ID: ui.GeneratePaneID(),
			},
			Renderer:   renderer,
			Dims:       dimensions,
			Stylesheet: stylesheet,
		},
		events: events,
		books:  books,
	}
}
