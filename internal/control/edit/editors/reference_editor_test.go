package editors_test

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/ja-he/smartref/internal/catalog"
	"github.com/ja-he/smartref/internal/control/action"
	"github.com/ja-he/smartref/internal/control/edit/editors"
	"github.com/ja-he/smartref/internal/input"
	"github.com/ja-he/smartref/internal/reference"
)

func newEditor(t *testing.T, initial reference.Reference) *editors.ReferenceEditor {
	t.Helper()
	books, err := catalog.Default()
	if err != nil {
		t.Fatal("could not construct default catalog:", err.Error())
	}
	r, err := reference.New(books, initial)
	if err != nil {
		t.Fatal("could not construct resolver:", err.Error())
	}
	return editors.NewReferenceEditor("reference", r)
}

func typeString(e *editors.ReferenceEditor, s string) {
	for _, r := range s {
		e.AddRune(r)
	}
}

func expectField(t *testing.T, e *editors.ReferenceEditor, content string, ref reference.Reference) {
	t.Helper()
	if e.GetContent() != content {
		t.Errorf("expected content '%s', got '%s'", content, e.GetContent())
	}
	if e.GetReference() != ref {
		t.Errorf("expected reference %s, got %s", ref, e.GetReference())
	}
}

func TestReferenceEditorTyping(t *testing.T) {

	t.Run("initial reference is rendered", func(t *testing.T) {
		e := newEditor(t, reference.Reference{Book: 1, Chapter: 3})
		expectField(t, e, "Genesis 3", reference.Reference{Book: 1, Chapter: 3})
		if e.GetCursorPos() != len("Genesis 3") {
			t.Error("cursor not at end initially but at", e.GetCursorPos())
		}
	})

	t.Run("auto-complete then chapter", func(t *testing.T) {
		e := newEditor(t, reference.Reference{})
		typeString(e, "ge")
		expectField(t, e, "Genesis ", reference.Reference{Book: 1})
		if e.GetCursorPos() != len("Genesis ") {
			t.Error("cursor not moved to end after auto-complete but at", e.GetCursorPos())
		}
		typeString(e, "3")
		expectField(t, e, "Genesis 3", reference.Reference{Book: 1, Chapter: 3})
		if e.GetState() != reference.StateResolved {
			t.Error("expected resolved state, got", e.GetState())
		}
	})

	t.Run("ambiguous input is kept as typed", func(t *testing.T) {
		e := newEditor(t, reference.Reference{})
		typeString(e, "j")
		expectField(t, e, "j", reference.Reference{})
		if e.GetCursorPos() != 1 {
			t.Error("unexpected cursor position", e.GetCursorPos())
		}
	})

	t.Run("rejected rune is dropped", func(t *testing.T) {
		e := newEditor(t, reference.Reference{})
		typeString(e, "x")
		expectField(t, e, "", reference.Reference{})
		if e.GetRejected() != "x" {
			t.Errorf("expected rejected 'x', got '%s'", e.GetRejected())
		}
		if e.GetCursorPos() != 0 {
			t.Error("cursor beyond content at", e.GetCursorPos())
		}
		typeString(e, "j")
		if e.GetRejected() != "" {
			t.Errorf("rejection not reset after accepted edit, still '%s'", e.GetRejected())
		}
	})

	t.Run("typing after a complete name is rejected", func(t *testing.T) {
		e := newEditor(t, reference.Reference{})
		typeString(e, "gen")
		expectField(t, e, "Genesis ", reference.Reference{Book: 1})
	})

	t.Run("backspace over the trailing space clears", func(t *testing.T) {
		e := newEditor(t, reference.Reference{})
		typeString(e, "ge")
		e.BackspaceRune()
		expectField(t, e, "", reference.Reference{})
		if e.GetCursorPos() != 0 {
			t.Error("cursor not reset but at", e.GetCursorPos())
		}
	})

	t.Run("editing chapter in the middle keeps the cursor", func(t *testing.T) {
		e := newEditor(t, reference.Reference{Book: 1, Chapter: 3})
		e.MoveCursorLeft()
		typeString(e, "1")
		expectField(t, e, "Genesis 13", reference.Reference{Book: 1, Chapter: 13})
		if e.GetCursorPos() != len("Genesis 1") {
			t.Error("cursor moved to", e.GetCursorPos())
		}
	})

	t.Run("chapter is clamped", func(t *testing.T) {
		e := newEditor(t, reference.Reference{})
		e.SetContent("jude 5")
		expectField(t, e, "Jude 1", reference.Reference{Book: 66, Chapter: 1})
	})

	t.Run("clear", func(t *testing.T) {
		e := newEditor(t, reference.Reference{Book: 1, Chapter: 3})
		e.Clear()
		expectField(t, e, "", reference.Reference{})
	})

	t.Run("delete to end keeps the book", func(t *testing.T) {
		e := newEditor(t, reference.Reference{})
		e.SetContent("1 Samuel 15")
		expectField(t, e, "1 Samuel 15", reference.Reference{Book: 9, Chapter: 15})
		e.MoveCursorToBeginning()
		for i := 0; i < len("1 Samuel "); i++ {
			e.MoveCursorRight()
		}
		e.DeleteToEnd()
		expectField(t, e, "1 Samuel ", reference.Reference{Book: 9})
	})

	t.Run("backspace to beginning", func(t *testing.T) {
		e := newEditor(t, reference.Reference{Book: 1, Chapter: 3})
		e.BackspaceToBeginning()
		expectField(t, e, "", reference.Reference{})
	})

}

func TestReferenceEditorCursor(t *testing.T) {
	e := newEditor(t, reference.Reference{Book: 1, Chapter: 3})
	e.MoveCursorToEnd()
	e.MoveCursorRight()
	if e.GetCursorPos() != len("Genesis 3") {
		t.Error("cursor moved past end to", e.GetCursorPos())
	}
	e.MoveCursorToBeginning()
	e.MoveCursorLeft()
	if e.GetCursorPos() != 0 {
		t.Error("cursor moved before beginning to", e.GetCursorPos())
	}
	e.DeleteRune()
	expectField(t, e, "", reference.Reference{})
}

func TestReferenceEditorEvents(t *testing.T) {

	record := func(e *editors.ReferenceEditor) *[]reference.Reference {
		received := []reference.Reference{}
		e.AddReferenceHandler(func(r reference.Reference) { received = append(received, r) })
		return &received
	}

	t.Run("accept completes and sends", func(t *testing.T) {
		e := newEditor(t, reference.Reference{})
		received := record(e)
		e.Accept()
		expectField(t, e, "Genesis 1", reference.Reference{Book: 1, Chapter: 1})
		if len(*received) != 1 || (*received)[0] != (reference.Reference{Book: 1, Chapter: 1}) {
			t.Error("unexpected events", *received)
		}
	})

	t.Run("accept on a named book", func(t *testing.T) {
		e := newEditor(t, reference.Reference{})
		received := record(e)
		typeString(e, "ex")
		e.Accept()
		expectField(t, e, "Exodus 1", reference.Reference{Book: 2, Chapter: 1})
		if len(*received) != 1 {
			t.Error("unexpected events", *received)
		}
	})

	t.Run("chapter navigation sends on change only", func(t *testing.T) {
		e := newEditor(t, reference.Reference{Book: 66, Chapter: 1})
		received := record(e)
		e.NextChapter()
		e.PreviousChapter()
		if len(*received) != 0 {
			t.Error("unexpected events", *received)
		}

		e = newEditor(t, reference.Reference{Book: 1, Chapter: 2})
		received = record(e)
		e.PreviousChapter()
		expectField(t, e, "Genesis 1", reference.Reference{Book: 1, Chapter: 1})
		e.NextChapter()
		e.NextChapter()
		expectField(t, e, "Genesis 3", reference.Reference{Book: 1, Chapter: 3})
		if len(*received) != 3 {
			t.Error("expected 3 events, got", *received)
		}
	})

	t.Run("select book", func(t *testing.T) {
		e := newEditor(t, reference.Reference{})
		received := record(e)
		if err := e.SelectBook(19); err != nil {
			t.Fatal("unexpected error:", err.Error())
		}
		expectField(t, e, "Psalms 1", reference.Reference{Book: 19, Chapter: 1})
		if len(*received) != 0 {
			t.Error("selection sent events", *received)
		}
		if err := e.SelectBook(catalog.GapIndex); err == nil {
			t.Error("no error selecting the gap")
		}
		expectField(t, e, "Psalms 1", reference.Reference{Book: 19, Chapter: 1})
	})

	t.Run("quit callbacks chain", func(t *testing.T) {
		e := newEditor(t, reference.Reference{})
		calls := 0
		e.AddQuitCallback(func() { calls++ })
		e.AddQuitCallback(func() { calls += 10 })
		e.Quit()
		if calls != 11 {
			t.Error("expected both quit callbacks, got", calls)
		}
	})

}

func TestReferenceEditorInputProcessor(t *testing.T) {
	key := func(k tcell.Key) input.Key { return input.Key{Key: k} }
	char := func(r rune) input.Key { return input.Key{Key: tcell.KeyRune, Ch: r} }

	t.Run("bindings and typing", func(t *testing.T) {
		e := newEditor(t, reference.Reference{})
		listShown := false
		p, err := e.CreateInputProcessor(
			map[input.Keyspec]input.Actionspec{
				"<cr>":  "accept",
				"<c-n>": "next-chapter",
				"<bs>":  "backspace",
				"<tab>": "toggle-book-list",
			},
			map[input.Actionspec]action.Action{
				"toggle-book-list": action.Explained("show book list", func() { listShown = true }),
			},
		)
		if err != nil {
			t.Fatal("unexpected error:", err.Error())
		}

		for _, k := range []input.Key{char('g'), char('e'), char('4')} {
			if !p.ProcessInput(k) {
				t.Error("rune not processed:", k.ToDebugString())
			}
		}
		expectField(t, e, "Genesis 4", reference.Reference{Book: 1, Chapter: 4})
		p.ProcessInput(key(tcell.KeyCtrlN))
		expectField(t, e, "Genesis 5", reference.Reference{Book: 1, Chapter: 5})
		p.ProcessInput(key(tcell.KeyBackspace2))
		expectField(t, e, "Genesis ", reference.Reference{Book: 1})
		p.ProcessInput(key(tcell.KeyEnter))
		expectField(t, e, "Genesis 1", reference.Reference{Book: 1, Chapter: 1})
		p.ProcessInput(key(tcell.KeyTab))
		if !listShown {
			t.Error("host action not performed")
		}
		if p.ProcessInput(key(tcell.KeyF1)) {
			t.Error("claims to process unbound key")
		}

		help := p.GetHelp()
		if help["<cr>"] != "accept" || help["<tab>"] != "show book list" {
			t.Error("unexpected help", help)
		}
	})

	t.Run("unknown actionspec", func(t *testing.T) {
		e := newEditor(t, reference.Reference{})
		_, err := e.CreateInputProcessor(map[input.Keyspec]input.Actionspec{"<cr>": "launch"}, nil)
		if err == nil {
			t.Error("no error for unknown actionspec")
		}
	})

	t.Run("shadowing host action", func(t *testing.T) {
		e := newEditor(t, reference.Reference{})
		_, err := e.CreateInputProcessor(
			map[input.Keyspec]input.Actionspec{},
			map[input.Actionspec]action.Action{"accept": action.Explained("x", func() {})},
		)
		if err == nil {
			t.Error("no error for shadowing host action")
		}
	})

	t.Run("multi-key sequence", func(t *testing.T) {
		e := newEditor(t, reference.Reference{})
		_, err := e.CreateInputProcessor(map[input.Keyspec]input.Actionspec{"gg": "accept"}, nil)
		if err == nil {
			t.Error("no error for sequence binding in text field")
		}
	})
}
