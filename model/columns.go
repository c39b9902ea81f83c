package model

import (
	"errors"
	"fmt"
)

// ErrColumnsTooWide is returned when a column set does not fit the printable width.
var ErrColumnsTooWide = errors.New("columns exceed printable width")

// ColumnSpec describes one table column of a report kind
type ColumnSpec struct {
	Key      string    // record key rendered in this column
	Label    string    // header band text
	Width    float64   // fixed width in mm
	Wrap     bool      // text may span several lines
	Align    Alignment // horizontal alignment of body text
	LongText bool      // wraps only when the value is long (detail report)

	// CharsPerLine is the number of characters assumed to fit on one line of a wrap column.
	// It is a per-column constant, not a font measurement.
	CharsPerLine int
}

// Columns is an ordered column set
type Columns []ColumnSpec

// TotalWidth returns the sum of all column widths
func (c Columns) TotalWidth() float64 {
	total := 0.0
	for _, col := range c {
		total += col.Width
	}
	return total
}

// Labels returns the header labels in column order
func (c Columns) Labels() []string {
	labels := make([]string, len(c))
	for i, col := range c {
		labels[i] = col.Label
	}
	return labels
}

// Validate checks that the columns fit in printable mm and that wrap columns have a
// positive line capacity.
func (c Columns) Validate(printable float64) error {
	if w := c.TotalWidth(); w > printable {
		return fmt.Errorf("%w: %.1f > %.1f", ErrColumnsTooWide, w, printable)
	}
	for _, col := range c {
		if col.Wrap && col.CharsPerLine <= 0 {
			return fmt.Errorf("column %q wraps but has no line capacity", col.Key)
		}
	}
	return nil
}
