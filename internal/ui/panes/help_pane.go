package panes

import (
	"sort"

	"github.com/ja-he/smartref/internal/input"
	"github.com/ja-he/smartref/internal/styling"
	"github.com/ja-he/smartref/internal/ui"
	"github.com/ja-he/smartref/internal/util"
)

// A HelpPane is a pane that displays a help popup.
// For example, it could display a list of key mappings and their actions.
type HelpPane struct {
	ui.LeafPane

	Content input.Help
}

// Draw draws the help popup.
func (p *HelpPane) Draw() {
	if p.IsVisible() {

		x, y, w, h := p.Dimensions()
		p.Renderer.DrawBox(x, y, w, h, p.Stylesheet.Help)

		keysDrawn := 0
		const border = 1
		const maxKeyWidth = 12
		const pad = 1
		keyOffset := x + border
		descriptionOffset := keyOffset + maxKeyWidth + pad

		drawMapping := func(keys, description string) {
			keys = util.TruncateAt(keys, maxKeyWidth)
			keysWidth := util.Width(keys)
			p.Renderer.DrawText(keyOffset+maxKeyWidth-keysWidth, y+border+keysDrawn, keysWidth, 1, p.Stylesheet.Help.DefaultEmphasized().Bolded(), keys)
			p.Renderer.DrawText(descriptionOffset, y+border+keysDrawn, w-(descriptionOffset-x)-border, 1, p.Stylesheet.Help.Italicized(), description)
			keysDrawn++
		}

		for _, m := range SortedHelp(p.Content) {
			if keysDrawn >= h-2*border {
				break
			}
			drawMapping(m.Mapping, m.Action)
		}

	}
}

// MappingAndAction is a single line of help.
type MappingAndAction struct {
	Mapping string
	Action  string
}

// SortedHelp returns the help's lines ordered by action, then mapping.
func SortedHelp(help input.Help) []MappingAndAction {
	content := make([]MappingAndAction, 0, len(help))
	for mapping, action := range help {
		content = append(content, MappingAndAction{Mapping: mapping, Action: action})
	}
	sort.Slice(content, func(i, j int) bool {
		if content[i].Action != content[j].Action {
			return content[i].Action < content[j].Action
		}
		return content[i].Mapping < content[j].Mapping
	})
	return content
}

// NewHelpPane constructs and returns a new HelpPane.
func NewHelpPane(
	renderer ui.ConstrainedRenderer,
	dimensions func() (x, y, w, h int),
	stylesheet styling.Stylesheet,
	condition func() bool,
	inputProcessor input.ModalInputProcessor,
) *HelpPane {
	p := &HelpPane{
		LeafPane: ui.LeafPane{
			BasePane: ui.BasePane{
				ID:      ui.GeneratePaneID(),
				Visible: condition,
			},
			Renderer:   renderer,
			Dims:       dimensions,
			Stylesheet: stylesheet,
		},
	}
	p.InputProcessor = inputProcessor
	return p
}
