package cli

import (
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog/log"

	"github.com/ja-he/smartref/internal/catalog"
	"github.com/ja-he/smartref/internal/control/action"
	"github.com/ja-he/smartref/internal/control/edit/editors"
	"github.com/ja-he/smartref/internal/input"
	"github.com/ja-he/smartref/internal/input/processors"
	"github.com/ja-he/smartref/internal/memlog"
	"github.com/ja-he/smartref/internal/reference"
	"github.com/ja-he/smartref/internal/styling"
	"github.com/ja-he/smartref/internal/tui"
	"github.com/ja-he/smartref/internal/ui"
	"github.com/ja-he/smartref/internal/ui/panes"
)

// maxEvents is the number of sent references kept for display.
const maxEvents = 256

// Controller is the struct for the TUI controller.
type Controller struct {
	rootPane *panes.RootPane
	editor   *editors.ReferenceEditor

	// stateMtx serializes input processing and drawing.
	stateMtx sync.Mutex
	events   []reference.Reference

	bookListVisible atomic.Bool
	helpVisible     atomic.Bool
	logVisible      atomic.Bool

	controllerEvents chan controllerEvent

	screenEvents      tui.EventPollable
	initializedScreen tui.InitializedScreen
	syncer            tui.ScreenSynchronizer
}

// ControllerSetup is what a Controller is constructed from.
type ControllerSetup struct {
	Books       *catalog.Catalog
	InitialText string
	Bindings    input.InputConfig
	Stylesheet  styling.Stylesheet
	LogReader   memlog.Reader
}

// NewController creates a new Controller, initializing the terminal screen.
func NewController(setup ControllerSetup) (*Controller, error) {
	screenHandler, err := tui.NewTUIScreenHandler()
	if err != nil {
		return nil, fmt.Errorf("could not set up screen: %w", err)
	}
	controller, err := newControllerForScreen(setup, screenHandler)
	if err != nil {
		screenHandler.Fini()
		return nil, err
	}
	return controller, nil
}

func newControllerForScreen(setup ControllerSetup, screenHandler *tui.ScreenHandler) (*Controller, error) {
	controller := &Controller{
		controllerEvents:  make(chan controllerEvent, 32),
		screenEvents:      screenHandler.GetEventPollable(),
		initializedScreen: screenHandler,
		syncer:            screenHandler,
	}

	resolver, err := reference.New(setup.Books, reference.Reference{})
	if err != nil {
		return nil, fmt.Errorf("could not construct resolver: %w", err)
	}
	controller.editor = editors.NewReferenceEditor("reference", resolver)
	if setup.InitialText != "" {
		controller.editor.SetContent(setup.InitialText)
	}
	controller.editor.AddReferenceHandler(controller.addEvent)
	controller.editor.AddQuitCallback(func() { controller.controllerEvents <- controllerEventExit })

	screenDimensions := screenHandler.Dimensions
	statusDimensions := func() (x, y, w, h int) {
		_, _, w, _ = screenDimensions()
		return 0, 0, w, 1
	}
	fieldDimensions := func() (x, y, w, h int) {
		_, _, w, _ = screenDimensions()
		return 0, 1, w, 1
	}
	mainDimensions := func() (x, y, w, h int) {
		_, _, w, h = screenDimensions()
		return 0, 2, w, max(h-2, 0)
	}
	bookListDimensions := func() (x, y, w, h int) {
		_, _, screenWidth, screenHeight := screenDimensions()
		w = min(28, screenWidth)
		return screenWidth - w, 2, w, max(screenHeight-2, 0)
	}
	helpDimensions := func() (x, y, w, h int) {
		_, _, screenWidth, screenHeight := screenDimensions()
		w, h = min(64, max(screenWidth-4, 0)), min(24, max(screenHeight-4, 0))
		return (screenWidth - w) / 2, (screenHeight - h) / 2, w, h
	}
	constrained := func(dimensions func() (x, y, w, h int)) ui.ConstrainedRenderer {
		return ui.NewConstrainedRenderer(screenHandler, dimensions)
	}

	var bookListPane *panes.BookListPane
	var helpPane *panes.HelpPane
	var rootPane *panes.RootPane

	closeBookList := action.Explained("close book list", func() { controller.bookListVisible.Store(false) })
	bookListProcessor, err := constructProcessor("book-list", setup.Bindings.BookList, map[input.Actionspec]action.Action{
		"next-book":  action.Explained("next book", func() { bookListPane.NextBook() }),
		"prev-book":  action.Explained("previous book", func() { bookListPane.PrevBook() }),
		"next-page":  action.Explained("next page", func() { bookListPane.NextPage() }),
		"prev-page":  action.Explained("previous page", func() { bookListPane.PrevPage() }),
		"first-book": action.Explained("first book", func() { bookListPane.FirstBook() }),
		"last-book":  action.Explained("last book", func() { bookListPane.LastBook() }),
		"select-book": action.Explained("show selected book", func() {
			if err := controller.editor.SelectBook(bookListPane.Selected()); err != nil {
				log.Error().Err(err).Msg("could not select book, likely logic error")
			}
			controller.bookListVisible.Store(false)
		}),
		"close": closeBookList,
	})
	if err != nil {
		return nil, err
	}
	helpProcessor, err := constructProcessor("help", setup.Bindings.Help, map[input.Actionspec]action.Action{
		"close": action.Explained("close help", func() { controller.helpVisible.Store(false) }),
	})
	if err != nil {
		return nil, err
	}
	logProcessor, err := constructProcessor("log", setup.Bindings.Log, map[input.Actionspec]action.Action{
		"close": action.Explained("close log", func() { controller.logVisible.Store(false) }),
	})
	if err != nil {
		return nil, err
	}

	fieldProcessor, err := controller.editor.CreateInputProcessor(setup.Bindings.Field, map[input.Actionspec]action.Action{
		"toggle-book-list": action.Explained("show book list", func() {
			bookListPane.Reset(controller.editor.GetReference().Book)
			controller.bookListVisible.Store(true)
		}),
		"toggle-help": action.Explained("show help", func() {
			helpPane.Content = rootPane.GetHelp()
			controller.helpVisible.Store(true)
		}),
		"toggle-log": action.Explained("show log", func() { controller.logVisible.Store(!controller.logVisible.Load()) }),
	})
	if err != nil {
		return nil, fmt.Errorf("could not construct field input processor: %w", err)
	}

	rootTree, err := input.ConstructInputTree(map[input.Keyspec]action.Action{
		"<c-c>": action.Explained("exit program", func() { controller.controllerEvents <- controllerEventExit }),
	})
	if err != nil {
		return nil, fmt.Errorf("could not construct root input tree: %w", err)
	}

	bookListPane = panes.NewBookListPane(
		constrained(bookListDimensions),
		bookListDimensions,
		setup.Stylesheet,
		controller.bookListVisible.Load,
		bookListProcessor,
		setup.Books,
	)
	helpPane = panes.NewHelpPane(
		constrained(helpDimensions),
		helpDimensions,
		setup.Stylesheet,
		controller.helpVisible.Load,
		helpProcessor,
	)
	cursorWrangler := ui.NewCursorWrangler(screenHandler)
	rootPane = panes.NewRootPane(
		screenHandler,
		cursorWrangler,
		screenDimensions,
		panes.NewStatusPane(constrained(statusDimensions), statusDimensions, setup.Stylesheet, controller.editor, setup.Books),
		panes.NewFieldPane(constrained(fieldDimensions), fieldDimensions, setup.Stylesheet, fieldProcessor, controller.editor, cursorWrangler),
		panes.NewEventsPane(constrained(mainDimensions), mainDimensions, setup.Stylesheet, controller.getEvents, setup.Books),
		bookListPane,
		panes.NewLogPane(
			constrained(mainDimensions),
			mainDimensions,
			setup.Stylesheet,
			controller.logVisible.Load,
			logProcessor,
			func() string { return "LOG" },
			setup.LogReader,
		),
		helpPane,
		processors.NewModalInputProcessor(rootTree),
	)
	controller.rootPane = rootPane

	return controller, nil
}

// constructProcessor builds an input processor for the named context from the
// configured bindings, failing on actionspecs not among the given actions.
func constructProcessor(
	context string,
	bindings map[input.Keyspec]input.Actionspec,
	actions map[input.Actionspec]action.Action,
) (input.ModalInputProcessor, error) {
	mappings := make(map[input.Keyspec]action.Action, len(bindings))
	for keyspec, actionspec := range bindings {
		a, ok := actions[actionspec]
		if !ok {
			return nil, fmt.Errorf("unknown %s actionspec '%s' bound to '%s'", context, actionspec, keyspec)
		}
		mappings[keyspec] = a
	}
	tree, err := input.ConstructInputTree(mappings)
	if err != nil {
		return nil, fmt.Errorf("could not construct %s input tree: %w", context, err)
	}
	return processors.NewModalInputProcessor(tree), nil
}

// addEvent records a sent reference; called with stateMtx held, as it is
// triggered by input processing.
func (c *Controller) addEvent(ref reference.Reference) {
	if ref.IsZero() {
		log.Error().Msg("field sent an empty reference, likely logic error")
		return
	}
	log.Info().Msgf("Reference: %d[%d]", ref.Book, ref.Chapter)
	c.events = append(c.events, ref)
	if len(c.events) > maxEvents {
		c.events = c.events[len(c.events)-maxEvents:]
	}
}

// getEvents returns the sent references; called with stateMtx held, as it is
// called during draw.
func (c *Controller) getEvents() []reference.Reference {
	return c.events
}

type controllerEvent int

const (
	controllerEventExit controllerEvent = iota
	controllerEventRender
)

// Empties all render events from the channel.
// Returns true, if an exit event was encountered so the caller
// knows to exit.
func emptyRenderEvents(c chan controllerEvent) bool {
	for {
		select {
		case bufferedEvent := <-c:
			switch bufferedEvent {
			case controllerEventRender:
				// dump extra render events
			case controllerEventExit:
				return true
			}
		default:
			return false
		}
	}
}

// Run runs the TUI until exited, then finalizes the screen.
func (c *Controller) Run() {
	log.Info().Msg("smartref TUI started")

	var wg sync.WaitGroup

	// Run the main render loop, that renders or exits when prompted accordingly
	wg.Add(1)
	go func() {
		defer wg.Done()
		defer c.initializedScreen.Fini()
		for controllerEvent := range c.controllerEvents {
			switch controllerEvent {
			case controllerEventRender:
				// empty all further render events before rendering
				exitEventEncounteredOnEmpty := emptyRenderEvents(c.controllerEvents)
				// exit if an exit event was coming up
				if exitEventEncounteredOnEmpty {
					return
				}
				start := time.Now()
				c.stateMtx.Lock()
				c.rootPane.Draw()
				c.stateMtx.Unlock()
				log.Trace().Dur("duration", time.Since(start)).Msg("rendered")

			case controllerEventExit:
				return

			default:
				log.Error().Interface("event", controllerEvent).Msgf("unhandled controller event")
			}
		}
	}()

	c.controllerEvents <- controllerEventRender

	// Run the event tracking loop, that waits for and processes events and pings
	// for a redraw (or program exit) after each event.
	go func() {
		for {
			ev := c.screenEvents.PollEvent()
			if ev == nil {
				// screen finalized
				return
			}

			switch e := ev.(type) {
			case *tcell.EventKey:
				key := input.KeyFromTcellEvent(e)
				c.stateMtx.Lock()
				inputApplied := c.rootPane.ProcessInput(key)
				c.stateMtx.Unlock()
				if !inputApplied {
					log.Warn().Str("key", key.ToDebugString()).Msg("could not apply key input")
				}

			case *tcell.EventResize:
				c.syncer.NeedsSync()

			}

			c.controllerEvents <- controllerEventRender
		}
	}()

	wg.Wait()
}
