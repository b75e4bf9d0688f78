package panes

import (
	"fmt"
	"strings"

	"github.com/ja-he/smartref/internal/catalog"
	"github.com/ja-he/smartref/internal/control/edit/views"
	"github.com/ja-he/smartref/internal/reference"
	"github.com/ja-he/smartref/internal/styling"
	"github.com/ja-he/smartref/internal/ui"
	"github.com/ja-he/smartref/internal/util"
)

// suggestionCount is the number of book names suggested for rejected input.
const suggestionCount = 3

// StatusPane is a status bar that displays the resolution state, the pair the
// field resolves to and, after rejected input, the closest book names.
type StatusPane struct {
	ui.LeafPane

	view  views.ReferenceEditorView
	books *catalog.Catalog
}

// Draw draws this pane.
func (p *StatusPane) Draw() {
	x, y, w, h := p.Dimensions()

	bgStyle := p.Stylesheet.Status
	emphStyle := p.Stylesheet.StatusEmphasized

	p.Renderer.DrawBox(x, y, w, h, bgStyle)

	stateStr := stateToString(p.view.GetState())
	p.Renderer.DrawBox(x, y, util.Width(stateStr), h, emphStyle)
	p.Renderer.DrawText(x, y, util.Width(stateStr), 1, emphStyle, stateStr)

	pairStr := describe(p.books, p.view.GetReference())
	pairX := x + util.Width(stateStr) + 1
	p.Renderer.DrawText(pairX, y, w-(pairX-x), 1, bgStyle, util.TruncateAt(pairStr, w-(pairX-x)))

	if rejected := p.view.GetRejected(); rejected != "" {
		hint := fmt.Sprintf("'%s' rejected", rejected)
		if suggestions := p.books.Suggest(rejected, suggestionCount); len(suggestions) > 0 {
			hint += ", did you mean " + strings.Join(suggestions, ", ") + "?"
		}
		hintWidth := util.Width(hint)
		hintX := x + w - hintWidth - 1
		if minX := pairX + util.Width(pairStr) + 1; hintX < minX {
			hintX = minX
		}
		p.Renderer.DrawText(hintX, y+h-1, x+w-hintX, 1, bgStyle.Italicized(), util.TruncateAt(hint, x+w-hintX))
	}
}

func stateToString(state reference.State) string {
	switch state {
	case reference.StateEmpty:
		return "--  EMPTY   --"
	case reference.StateNaming:
		return "--  NAMING  --"
	case reference.StateResolved:
		return "-- RESOLVED --"
	default:
		return "unknown"
	}
}

// describe formats a pair along with the name of its book, e.g.
// "1[3] Genesis 3".
func describe(books *catalog.Catalog, ref reference.Reference) string {
	if ref.Book == 0 {
		return ref.String()
	}
	name, err := books.Name(ref.Book)
	if err != nil {
		return ref.String()
	}
	if ref.Chapter == 0 {
		return fmt.Sprintf("%s %s", ref.String(), name)
	}
	return fmt.Sprintf("%s %s %d", ref.String(), name, ref.Chapter)
}

// NewStatusPane constructs and returns a new StatusPane.
func NewStatusPane(
	renderer ui.ConstrainedRenderer,
	dimensions func() (x, y, w, h int),
	stylesheet styling.Stylesheet,
	view views.ReferenceEditorView,
	books *catalog.Catalog,
) *StatusPane {
	return &StatusPane{
		LeafPane: ui.LeafPane{
			BasePane: ui.BasePane{
				ID: ui.GeneratePaneID(),
			},
			Renderer:   renderer,
			Dims:       dimensions,
			Stylesheet: stylesheet,
		},
		view:  view,
		books: books,
	}
}
