// Package ui provides the pane abstractions the interactive host is built
// from.
package ui

import (
	"fmt"
	"sync/atomic"

	"github.com/ja-he/smartref/internal/input"
	"github.com/ja-he/smartref/internal/styling"
)

// Pane is a UI pane.
//
// Panes are structured as a tree: any pane can be asked whether it HasFocus,
// which it answers by consulting its parent (set via SetParent) whether the
// parent HasFocus and whether it Focusses this pane. The root pane has no
// parent and always has focus.
type Pane interface {
	Draw()
	Undraw()
	IsVisible() bool
	Dimensions() (x, y, w, h int)

	input.ModalInputProcessor

	PaneQuerier

	SetParent(PaneQuerier)
}

// PaneQuerier are the querying member functions of a pane.
//
// E.g. letting a child access its parent, this allows limiting the childs
// access.
type PaneQuerier interface {
	HasFocus() bool
	Focusses() PaneID
	IsVisible() bool
	Identify() PaneID
}

// PaneID uniquely identifies a pane. No two panes must ever share a PaneID.
type PaneID uint64

// NonePaneID represents "no pane" or "invalid pane". Panes are guaranteed to
// be assigned different IDs by GeneratePaneID.
const NonePaneID PaneID = 0

var lastID atomic.Uint64

// GeneratePaneID generates a new unique pane ID.
func GeneratePaneID() PaneID {
	return PaneID(lastID.Add(1))
}

// Renderer draws boxes and text.
type Renderer interface {
	// DrawBox draws a box of the indicated dimensions at the indicated location
	// in the style's background color.
	DrawBox(x, y, w, h int, style styling.DrawStyling)
	// DrawText draws text within the box described by the given coordinates and
	// dimensions, wrapping at its right edge.
	DrawText(x, y, w, h int, style styling.DrawStyling, text string)
}

// ConstrainedRenderer is a renderer that is assumed to be constrained to
// certain dimensions, i.E. it does not draw outside of them.
type ConstrainedRenderer interface {
	Renderer

	// Dimensions returns the dimensions of the renderer.
	Dimensions() (x, y, w, h int)
}

// RenderOrchestratorControl is the set of functions of a renderer (e.g.,
// tcell.Screen) that the root pane needs to use to have full control over a
// render cycle. Other panes should not need this access to the renderer.
type RenderOrchestratorControl interface {
	Clear()
	Show()
}

// TextCursorController offers control of a text cursor, such as for a terminal.
type TextCursorController interface {
	HideCursor()
	ShowCursor(CursorLocation)
}

// CursorLocation is a cell position on screen.
type CursorLocation struct {
	X int
	Y int
}

func (l CursorLocation) String() string {
	return fmt.Sprintf("%d:%d", l.X, l.Y)
}
