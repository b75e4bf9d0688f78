package input

// SimpleInputProcessor can process the input it is configured for and provide
// help information for that configuration. It can also "capture" input to
// ensure its precedence over other processors, e.g. when it has partial input.
type SimpleInputProcessor interface {
	// CapturesInput returns whether this processor ought to take priority over
	// other processors, e.g. while it holds a partial sequence.
	CapturesInput() bool

	// ProcessInput attempts to process the provided input.
	// Returns whether the input applied, i.E. the processor used it.
	ProcessInput(key Key) bool

	// GetHelp returns the input help map for this processor.
	GetHelp() Help
}

// ModalInputProcessor is a SimpleInputProcessor that can be temporarily
// overlaid by any number of other processors, the topmost of which handles
// all input until it is popped.
type ModalInputProcessor interface {
	SimpleInputProcessor

	// ApplyModalOverlay applies an overlay to this processor.
	// It returns the overlay's index, by which all overlays down to and
	// including this one can later be removed.
	ApplyModalOverlay(SimpleInputProcessor) (index uint)

	// PopModalOverlay removes the topmost overlay from this processor.
	PopModalOverlay() error

	// PopModalOverlays pops all overlays down to and including the one at the
	// specified index.
	PopModalOverlays(index uint)

	// HasOverlay reports whether any overlay is applied.
	HasOverlay() bool
}
