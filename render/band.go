package render

import (
	"github.com/tsawler/labreport/layout"
	"github.com/tsawler/labreport/model"
)

// BandSpec describes a full-width band.
type BandSpec struct {
	X      float64
	Width  float64
	Height float64
	Style  model.Style
	Align  model.Alignment
	Role   model.Role
}

// Band draws a single-line cell spanning the band width at the cursor and advances the
// cursor by the band height.
func Band(page *model.Page, cursor *layout.Cursor, text string, spec BandSpec) *model.Cell {
	cell := &model.Cell{
		BBox:  model.NewBBox(spec.X, cursor.Y, spec.Width, spec.Height),
		Text:  text,
		Style: spec.Style,
		Align: spec.Align,
		Role:  spec.Role,
		Row:   -1,
	}
	page.AddElement(cell)
	cursor.Advance(spec.Height)
	return cell
}

// Rule draws a horizontal rule at y from x1 to x2. The cursor is not moved.
func Rule(page *model.Page, y, x1, x2, width float64) *model.Rule {
	r := &model.Rule{
		From:  model.Point{X: x1, Y: y},
		To:    model.Point{X: x2, Y: y},
		Width: width,
		Color: model.Black,
	}
	page.AddElement(r)
	return r
}

// LabelValueSpec describes the label and value lines of the detail report.
type LabelValueSpec struct {
	X          float64
	LabelWidth float64
	ValueWidth float64
	Label      model.Style
	Value      model.Style
	Heights    layout.HeightConfig
	Gap        float64 // space below each line
}

// DefaultLabelValueSpec returns the detail report layout for a content area starting at x.
func DefaultLabelValueSpec(x, width float64) LabelValueSpec {
	return LabelValueSpec{
		X:          x,
		LabelWidth: 60,
		ValueWidth: width - 60,
		Label:      model.TextStyle(10, true, false, model.Black),
		Value:      model.TextStyle(10, false, false, model.Black),
		Heights:    layout.HeightConfig{LineHeight: 8, MinHeight: 8},
		Gap:        2,
	}
}

// LabelHeight returns the space a label and value line takes, gap included.
func (s LabelValueSpec) LabelHeight(col model.ColumnSpec, value string) float64 {
	return layout.ColumnHeight(col, value, s.Heights) + s.Gap
}

// LabelValue draws col.Label and value side by side at the cursor and advances the cursor
// past the line and its gap. Long-text columns wrap when the value is too long for one line.
func LabelValue(page *model.Page, cursor *layout.Cursor, col model.ColumnSpec, value string, spec LabelValueSpec) {
	h := layout.ColumnHeight(col, value, spec.Heights)

	page.AddElement(&model.Cell{
		BBox:   model.NewBBox(spec.X, cursor.Y, spec.LabelWidth, spec.Heights.MinHeight),
		Text:   col.Label,
		Style:  spec.Label,
		Align:  model.AlignLeft,
		Role:   model.RoleLabel,
		Column: col.Key,
		Row:    -1,
	})

	cell := &model.Cell{
		BBox:   model.NewBBox(spec.X+spec.LabelWidth, cursor.Y, spec.ValueWidth, h),
		Text:   value,
		Style:  spec.Value,
		Align:  model.AlignLeft,
		Role:   model.RoleValue,
		Column: col.Key,
		Row:    -1,
	}
	if layout.Wraps(col, value) {
		cell.Wrap = true
		cell.LineHeight = spec.Heights.LineHeight
	}
	page.AddElement(cell)

	cursor.Advance(h + spec.Gap)
}
