package panes

import (
	"fmt"
	"sync"

	"github.com/ja-he/smartref/internal/catalog"
	"github.com/ja-he/smartref/internal/input"
	"github.com/ja-he/smartref/internal/styling"
	"github.com/ja-he/smartref/internal/ui"
	"github.com/ja-he/smartref/internal/util"
)

// BookListPane is a popup listing all books of the catalog, one of which is
// selected. Its selection is moved by its input processor and picked by the
// host.
type BookListPane struct {
	ui.LeafPane

	books   *catalog.Catalog
	indices []int

	mtx       sync.Mutex
	selection int
	offset    int
}

// Draw draws the list, scrolled so that the selection is visible.
func (p *BookListPane) Draw() {
	if !p.IsVisible() {
		return
	}
	x, y, w, h := p.Dimensions()

	p.Renderer.DrawBox(x, y, w, h, p.Stylesheet.BookList)
	title := util.PadCenter(util.TruncateAt("Books", w), w)
	titleStyle := p.Stylesheet.BookList.LightenedBG(10).Bolded()
	p.Renderer.DrawBox(x, y, w, 1, titleStyle)
	p.Renderer.DrawText(x, y, w, 1, titleStyle, title)

	p.mtx.Lock()
	selection, offset := p.selection, p.offset
	p.mtx.Unlock()

	rows := p.pageSize()
	for row := 0; row < rows && offset+row < len(p.indices); row++ {
		pos := offset + row
		index := p.indices[pos]
		style := p.Stylesheet.BookList
		if pos == selection {
			style = p.Stylesheet.BookListSelected
		}
		line := util.PadRight(util.TruncateAt(fmt.Sprintf(" %2d %s", index, p.books.MustBook(index).Name), w), w)
		p.Renderer.DrawText(x, y+1+row, w, 1, style, line)
	}
}

// pageSize is the number of books shown at once, below the title.
func (p *BookListPane) pageSize() int {
	_, _, _, h := p.Dimensions()
	if h <= 1 {
		return 1
	}
	return h - 1
}

// Reset selects the given book, or the first book if it is not valid (e.g. 0).
func (p *BookListPane) Reset(book int) {
	p.mtx.Lock()
	defer p.mtx.Unlock()

	p.selection = 0
	for pos, index := range p.indices {
		if index == book {
			p.selection = pos
			break
		}
	}
	p.offset = 0
	p.scrollToSelection()
}

// Selected returns the index of the selected book.
func (p *BookListPane) Selected() int {
	p.mtx.Lock()
	defer p.mtx.Unlock()
	return p.indices[p.selection]
}

// NextBook selects the book after the selected one.
func (p *BookListPane) NextBook() { p.moveBy(1) }

// PrevBook selects the book before the selected one.
func (p *BookListPane) PrevBook() { p.moveBy(-1) }

// NextPage moves the selection down by a page.
func (p *BookListPane) NextPage() { p.moveBy(p.pageSize()) }

// PrevPage moves the selection up by a page.
func (p *BookListPane) PrevPage() { p.moveBy(-p.pageSize()) }

// FirstBook selects the first book.
func (p *BookListPane) FirstBook() { p.moveBy(-len(p.indices)) }

// LastBook selects the last book.
func (p *BookListPane) LastBook() { p.moveBy(len(p.indices)) }

func (p *BookListPane) moveBy(delta int) {
	p.mtx.Lock()
	defer p.mtx.Unlock()

	p.selection += delta
	if p.selection < 0 {
		p.selection = 0
	}
	if p.selection >= len(p.indices) {
		p.selection = len(p.indices) - 1
	}
	p.scrollToSelection()
}

// scrollToSelection must be called with the mutex held.
func (p *BookListPane) scrollToSelection() {
	rows := p.pageSize()
	if p.selection < p.offset {
		p.offset = p.selection
	}
	if p.selection >= p.offset+rows {
		p.offset = p.selection - rows + 1
	}
}

// NewBookListPane constructs and returns a new BookListPane with the first
// book selected.
func NewBookListPane(
	renderer ui.ConstrainedRenderer,
	dimensions func() (x, y, w, h int),
	stylesheet styling.Stylesheet,
	condition func() bool,
	inputProcessor input.ModalInputProcessor,
	books *catalog.Catalog,
) *BookListPane {
	return &BookListPane{
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
		books:   books,
		indices: books.Indices(),
	}
}
