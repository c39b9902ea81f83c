package render

import (
	"fmt"

	"github.com/tsawler/labreport/layout"
	"github.com/tsawler/labreport/model"
)

// HeaderHeight is the height of the column header band in mm.
const HeaderHeight = 10.0

// Table draws the header band and body rows of a listing report.
type Table struct {
	X          float64 // left edge of the first column
	Columns    model.Columns
	Header     model.Style
	Body       model.Style
	LineHeight float64 // line step of wrapped body cells
}

// DefaultHeaderStyle is the grey, bold, bordered header band style.
func DefaultHeaderStyle() model.Style {
	return model.TextStyle(10, true, false, model.Black).Filled(model.LightGrey).Bordered()
}

// DefaultBodyStyle is the bordered body cell style.
func DefaultBodyStyle() model.Style {
	return model.TextStyle(9, false, false, model.Black).Bordered()
}

// NewTable creates a table at x using the default styles and line height.
func NewTable(x float64, cols model.Columns) *Table {
	return &Table{
		X:          x,
		Columns:    cols,
		Header:     DefaultHeaderStyle(),
		Body:       DefaultBodyStyle(),
		LineHeight: layout.LineHeight,
	}
}

// HeaderBand draws one labelled cell per column at y and returns the band height.
// It satisfies layout.HeaderFunc.
func (t *Table) HeaderBand(page *model.Page, y float64) float64 {
	x := t.X
	for _, col := range t.Columns {
		page.AddElement(&model.Cell{
			BBox:   model.NewBBox(x, y, col.Width, HeaderHeight),
			Text:   col.Label,
			Style:  t.Header,
			Align:  model.AlignCenter,
			Role:   model.RoleHeader,
			Column: col.Key,
			Row:    -1,
		})
		x += col.Width
	}
	return HeaderHeight
}

// Row draws record index of a listing at the cursor as one atomic row of the given
// height, then advances the cursor by exactly that height. Wrap columns get a wrapped
// cell as tall as the row; the others get a single-line cell. A record missing a column
// key is an error and nothing is drawn.
func (t *Table) Row(page *model.Page, cursor *layout.Cursor, index int, rec model.Record, height float64) error {
	values := make([]string, len(t.Columns))
	for i, col := range t.Columns {
		v, err := rec.Value(col.Key)
		if err != nil {
			return fmt.Errorf("row %d: %w", index, err)
		}
		values[i] = v
	}

	x := t.X
	for i, col := range t.Columns {
		cell := &model.Cell{
			BBox:   model.NewBBox(x, cursor.Y, col.Width, height),
			Text:   values[i],
			Style:  t.Body,
			Align:  col.Align,
			Role:   model.RoleBody,
			Column: col.Key,
			Row:    index,
		}
		if layout.Wraps(col, values[i]) {
			cell.Wrap = true
			cell.Align = model.AlignLeft
			cell.LineHeight = t.LineHeight
		}
		page.AddElement(cell)
		x += col.Width
	}

	cursor.Advance(height)
	return nil
}
