package ui

import (
	"sync"

	"github.com/rs/zerolog/log"
)

// CursorLocationRequestHandler is an interface for a type that can handle
// requests to place a (text/terminal) cursor on the screen.
type CursorLocationRequestHandler interface {
	Put(l CursorLocation, requesterID string)
	Delete(requesterID string)
}

// CursorWrangler handles requests to place a (text/terminal) cursor on the
// screen.
type CursorWrangler struct {
	mtx sync.RWMutex

	cc TextCursorController

	desiredLocation     *CursorLocation
	mostRecentRequester *string
}

// NewCursorWrangler creates a new CursorWrangler.
func NewCursorWrangler(controller TextCursorController) *CursorWrangler {
	return &CursorWrangler{
		cc:                  controller,
		desiredLocation:     nil,
		mostRecentRequester: nil,
	}
}

// Put places the cursor at the given location.
func (w *CursorWrangler) Put(l CursorLocation, requesterID string) {
	w.mtx.Lock()
	defer w.mtx.Unlock()

	if w.desiredLocation != nil && *w.mostRecentRequester != requesterID {
		log.Warn().
			Str("requester", requesterID).
			Str("holder", *w.mostRecentRequester).
			Stringer("at", l).
			Msg("cursor already placed by another pane, overwriting")
	}

	w.desiredLocation = &l
	w.mostRecentRequester = &requesterID
}

// Delete removes the cursor.
func (w *CursorWrangler) Delete(requesterID string) {
	w.mtx.Lock()
	defer w.mtx.Unlock()

	if w.mostRecentRequester == nil {
		log.Trace().Str("requester", requesterID).Msg("ignoring cursor deletion, no cursor is placed")
		return
	}

	if *w.mostRecentRequester != requesterID {
		log.Trace().Str("requester", requesterID).Str("holder", *w.mostRecentRequester).Msg("ignoring cursor deletion, placed by another pane")
		return
	}

	w.desiredLocation = nil
	w.mostRecentRequester = nil
}

// Location returns the currently requested location, if any.
func (w *CursorWrangler) Location() (CursorLocation, bool) {
	w.mtx.RLock()
	defer w.mtx.RUnlock()

	if w.desiredLocation == nil {
		return CursorLocation{}, false
	}
	return *w.desiredLocation, true
}

// Enact enacts the current cursor location request via the underlying
// cursor controller.
func (w *CursorWrangler) Enact() {
	w.mtx.RLock()
	defer w.mtx.RUnlock()

	if w.desiredLocation != nil {
		w.cc.ShowCursor(*w.desiredLocation)
	} else {
		w.cc.HideCursor()
	}
}
