package styling

import (
	"fmt"

	"github.com/ja-he/smartref/internal/config"
)

// Stylesheet represents all styles used by the application for rendering.
type Stylesheet struct {
	Normal DrawStyling

	Status           DrawStyling
	StatusEmphasized DrawStyling

	Field         DrawStyling
	FieldPending  DrawStyling
	FieldRejected DrawStyling

	BookList         DrawStyling
	BookListSelected DrawStyling

	Events         DrawStyling
	EventsTitleBox DrawStyling

	LogDefault  DrawStyling
	LogTitleBox DrawStyling

	LogEntryTypeError DrawStyling
	LogEntryTypeWarn  DrawStyling
	LogEntryTypeInfo  DrawStyling
	LogEntryTypeDebug DrawStyling
	LogEntryTypeTrace DrawStyling

	LogEntryLocation DrawStyling
	LogEntryTime     DrawStyling

	Help DrawStyling
}

// NewStylesheetFromConfig constructs a new stylesheet from a given config
// stylesheet.
// Returns an error naming the first styling with an invalid color.
func NewStylesheetFromConfig(c config.Stylesheet) (*Stylesheet, error) {
	stylesheet := Stylesheet{}

	for _, entry := range []struct {
		name   string
		source config.Styling
		target *DrawStyling
	}{
		{"normal", c.Normal, &stylesheet.Normal},
		{"status", c.Status, &stylesheet.Status},
		{"status-emphasized", c.StatusEmphasized, &stylesheet.StatusEmphasized},
		{"field", c.Field, &stylesheet.Field},
		{"field-pending", c.FieldPending, &stylesheet.FieldPending},
		{"field-rejected", c.FieldRejected, &stylesheet.FieldRejected},
		{"book-list", c.BookList, &stylesheet.BookList},
		{"book-list-selected", c.BookListSelected, &stylesheet.BookListSelected},
		{"events", c.Events, &stylesheet.Events},
		{"events-title-box", c.EventsTitleBox, &stylesheet.EventsTitleBox},
		{"log-default", c.LogDefault, &stylesheet.LogDefault},
		{"log-title-box", c.LogTitleBox, &stylesheet.LogTitleBox},
		{"log-entry-type-error", c.LogEntryTypeError, &stylesheet.LogEntryTypeError},
		{"log-entry-type-warn", c.LogEntryTypeWarn, &stylesheet.LogEntryTypeWarn},
		{"log-entry-type-info", c.LogEntryTypeInfo, &stylesheet.LogEntryTypeInfo},
		{"log-entry-type-debug", c.LogEntryTypeDebug, &stylesheet.LogEntryTypeDebug},
		{"log-entry-type-trace", c.LogEntryTypeTrace, &stylesheet.LogEntryTypeTrace},
		{"log-entry-location", c.LogEntryLocation, &stylesheet.LogEntryLocation},
		{"log-entry-time", c.LogEntryTime, &stylesheet.LogEntryTime},
		{"help", c.Help, &stylesheet.Help},
	} {
		s, err := StyleFromConfig(entry.source)
		if err != nil {
			return nil, fmt.Errorf("styling '%s': %w", entry.name, err)
		}
		*entry.target = s
	}

	return &stylesheet, nil
}
