package panes

import (
	"github.com/ja-he/smartref/internal/control/edit/views"
	"github.com/ja-he/smartref/internal/input"
	"github.com/ja-he/smartref/internal/reference"
	"github.com/ja-he/smartref/internal/styling"
	"github.com/ja-he/smartref/internal/ui"
	"github.com/ja-he/smartref/internal/util"
)

const fieldCursorRequester = "reference-field"

// FieldPane visualizes the editing of a reference (as seen by a
// ReferenceEditorView) as a labelled single-line text field.
type FieldPane struct {
	ui.LeafPane

	view views.ReferenceEditorView

	cursorHandler ui.CursorLocationRequestHandler
}

// Draw draws the field and requests the text cursor at the editing position
// while the field has focus.
func (p *FieldPane) Draw() {
	x, y, w, h := p.Dimensions()

	style := p.fieldStyle()
	p.Renderer.DrawBox(x, y, w, h, p.Stylesheet.Normal)

	label := p.view.GetName()
	labelWidth := util.Width(label)
	labelStyle := p.Stylesheet.Normal.DarkenedBG(10).DefaultEmphasized()
	p.Renderer.DrawBox(x, y, labelWidth+2, h, labelStyle)
	p.Renderer.DrawText(x+1, y, labelWidth, 1, labelStyle, label)

	contentX := x + 1 + labelWidth + 1
	contentW := w - (contentX - x) - 1
	if contentW <= 0 {
		p.cursorHandler.Delete(fieldCursorRequester)
		return
	}
	p.Renderer.DrawBox(contentX, y, contentW, 1, style)

	content := []rune(p.view.GetContent())
	p.Renderer.DrawText(contentX, y, contentW, 1, style, util.TruncateAt(string(content), contentW))

	if p.HasFocus() {
		cursorPos := p.view.GetCursorPos()
		if cursorPos > len(content) {
			cursorPos = len(content)
		}
		column := util.Width(string(content[:cursorPos]))
		if column >= contentW {
			column = contentW - 1
		}
		p.cursorHandler.Put(ui.CursorLocation{X: contentX + column, Y: y}, fieldCursorRequester)
	} else {
		p.cursorHandler.Delete(fieldCursorRequester)
	}
}

func (p *FieldPane) fieldStyle() styling.DrawStyling {
	switch {
	case p.view.GetRejected() != "":
		return p.Stylesheet.FieldRejected
	case p.view.GetState() == reference.StateResolved:
		return p.Stylesheet.Field
	default:
		return p.Stylesheet.FieldPending
	}
}

// Undraw ensures that the cursor is hidden.
func (p *FieldPane) Undraw() {
	p.cursorHandler.Delete(fieldCursorRequester)
}

// NewFieldPane creates a new FieldPane.
func NewFieldPane(
	renderer ui.ConstrainedRenderer,
	dimensions func() (x, y, w, h int),
	stylesheet styling.Stylesheet,
	inputProcessor input.ModalInputProcessor,
	view views.ReferenceEditorView,
	cursorHandler ui.CursorLocationRequestHandler,
) *FieldPane {
	return &FieldPane{
		LeafPane: ui.LeafPane{
			BasePane: ui.BasePane{
				ID:             ui.GeneratePaneID(),
				InputProcessor: inputProcessor,
			},
			Renderer:   renderer,
			Dims:       dimensions,
			Stylesheet: stylesheet,
		},
		view:          view,
		cursorHandler: cursorHandler,
	}
}
