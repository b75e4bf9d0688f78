package panes

import (
	"sync"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/ja-he/smartref/internal/input"
	"github.com/ja-he/smartref/internal/ui"
)

// RootPane acts as the root UI pane, wrapping all subpanes, managing the
// render cycle, invoking the subpanes' rendering, etc.
//
// The status, field and events panes are always drawn; the book list, log and
// help panes are drawn over top of them when visible, and the topmost visible
// one receives input focus.
type RootPane struct {
	ID ui.PaneID

	renderer       ui.RenderOrchestratorControl
	cursorWrangler *ui.CursorWrangler

	dimensions func() (x, y, w, h int)

	statusPane ui.Pane
	fieldPane  ui.Pane
	eventsPane ui.Pane

	bookListPane ui.Pane
	logPane      ui.Pane
	helpPane     ui.Pane

	inputProcessor input.ModalInputProcessor

	preDrawStackMtx sync.Mutex
	preDrawStack    []func()

	log zerolog.Logger
}

// Dimensions gives the dimensions (x-axis offset, y-axis offset, width,
// height) for this pane.
func (p *RootPane) Dimensions() (x, y, w, h int) {
	return p.dimensions()
}

func (p *RootPane) getCurrentlyActivePanesInOrder() (active []ui.Pane, inactive []ui.Pane) {
	active = []ui.Pane{p.statusPane, p.fieldPane, p.eventsPane}

	for _, overlay := range []ui.Pane{p.bookListPane, p.logPane, p.helpPane} {
		if overlay.IsVisible() {
			active = append(active, overlay)
		} else {
			inactive = append(inactive, overlay)
		}
	}

	return active, inactive
}

// IsVisible returns true, the root pane is always visible.
func (p *RootPane) IsVisible() bool { return true }

// Draw draws this pane.
func (p *RootPane) Draw() {

	p.preDrawStackMtx.Lock()
	for _, f := range p.preDrawStack {
		f()
	}
	p.preDrawStack = nil
	p.preDrawStackMtx.Unlock()

	p.renderer.Clear()

	active, inactive := p.getCurrentlyActivePanesInOrder()
	for _, pane := range inactive {
		pane.Undraw()
	}
	for _, pane := range active {
		p.log.Trace().Uint64("pane", uint64(pane.Identify())).Msg("drawing")
		pane.Draw()
	}

	// After all drawing draw or hide the cursor, depending on what is requested
	// during the draw of subpanes.
	p.cursorWrangler.Enact()

	p.renderer.Show()
}

// Undraw undraws all subpanes.
func (p *RootPane) Undraw() {
	p.renderer.Clear()

	active, inactive := p.getCurrentlyActivePanesInOrder()
	for _, pane := range active {
		pane.Undraw()
	}
	for _, pane := range inactive {
		pane.Undraw()
	}

	p.renderer.Show()
}

// CapturesInput returns whether this processor "captures" input, i.E. whether
// it ought to take priority in processing over other processors.
func (p *RootPane) CapturesInput() bool {
	if p.focussedPane().CapturesInput() {
		return true
	}
	return p.inputProcessor.CapturesInput()
}

// ProcessInput attempts to process the provided input.
// Returns whether the provided input "applied", i.E. the processor performed
// an action based on the input.
// Defers to the panes' input processor or its focussed subpanes.
func (p *RootPane) ProcessInput(key input.Key) bool {

	if p.inputProcessor.CapturesInput() {

		return p.inputProcessor.ProcessInput(key)

	} else if p.focussedPane().CapturesInput() {

		return p.focussedPane().ProcessInput(key)

	} else {

		if p.focussedPane().ProcessInput(key) {
			return true
		}

		return p.inputProcessor.ProcessInput(key)

	}

}

// Identify returns the root pane's ID.
func (p *RootPane) Identify() ui.PaneID { return p.ID }

// HasFocus returns true, the root pane always has focus.
func (p *RootPane) HasFocus() bool { return true }

// Focusses returns the ID of the focussed subpane.
func (p *RootPane) Focusses() ui.PaneID {
	return p.focussedPane().Identify()
}

func (p *RootPane) focussedPane() ui.Pane {
	switch {
	case p.helpPane.IsVisible():
		return p.helpPane
	case p.bookListPane.IsVisible():
		return p.bookListPane
	case p.logPane.IsVisible():
		return p.logPane
	default:
		return p.fieldPane
	}
}

// SetParent panics, the root pane has no parent.
func (p *RootPane) SetParent(ui.PaneQuerier) { panic("root set parent") }

// DeferPreDraw attaches a function to the pre-draw stack, which is executed
// at the beginning of the next draw.
func (p *RootPane) DeferPreDraw(f func()) {
	p.preDrawStackMtx.Lock()
	p.preDrawStack = append(p.preDrawStack, f)
	p.preDrawStackMtx.Unlock()
}

// ApplyModalOverlay applies an overlay to this processor.
// It returns the processors index, by which in the future, all overlays down
// to and including this overlay can be removed
func (p *RootPane) ApplyModalOverlay(overlay input.SimpleInputProcessor) (index uint) {
	return p.inputProcessor.ApplyModalOverlay(overlay)
}

// PopModalOverlay removes the topmost overlay from this processor.
func (p *RootPane) PopModalOverlay() error {
	return p.inputProcessor.PopModalOverlay()
}

// PopModalOverlays pops all overlays down to and including the one at the
// specified index.
func (p *RootPane) PopModalOverlays(index uint) {
	p.inputProcessor.PopModalOverlays(index)
}

// HasOverlay reports whether the root processor has an overlay applied.
func (p *RootPane) HasOverlay() bool {
	return p.inputProcessor.HasOverlay()
}

// GetHelp returns the input help map for this processor.
func (p *RootPane) GetHelp() input.Help {
	result := input.Help{}

	for k, v := range p.inputProcessor.GetHelp() {
		result[k] = v
	}
	for k, v := range p.focussedPane().GetHelp() {
		result[k] = v
	}

	return result
}

// NewRootPane constructs and returns a new RootPane.
func NewRootPane(
	renderer ui.RenderOrchestratorControl,
	cursorWrangler *ui.CursorWrangler,
	dimensions func() (x, y, w, h int),
	statusPane ui.Pane,
	fieldPane ui.Pane,
	eventsPane ui.Pane,
	bookListPane ui.Pane,
	logPane ui.Pane,
	helpPane ui.Pane,
	inputProcessor input.ModalInputProcessor,
) *RootPane {
	rootPane := &RootPane{
		ID:             ui.GeneratePaneID(),
		renderer:       renderer,
		cursorWrangler: cursorWrangler,
		dimensions:     dimensions,
		statusPane:     statusPane,
		fieldPane:      fieldPane,
		eventsPane:     eventsPane,
		bookListPane:   bookListPane,
		logPane:        logPane,
		helpPane:       helpPane,
		inputProcessor: inputProcessor,
		log:            log.With().Str("component", "root-pane").Logger(),
	}
	defer rootPane.log.Trace().Msgf("created root pane with id '%d'", rootPane.Identify())

	for _, pane := range []ui.Pane{statusPane, fieldPane, eventsPane, bookListPane, logPane, helpPane} {
		pane.SetParent(rootPane)
	}

	return rootPane
}
