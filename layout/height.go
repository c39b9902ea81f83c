package layout

import (
	"github.com/tsawler/labreport/internal/textenc"
	"github.com/tsawler/labreport/model"
)

// Table row metrics in mm.
const (
	LineHeight    = 6.0
	MinCellHeight = 8.0
)

// LongTextThreshold is the length above which a long-text column starts wrapping.
const LongTextThreshold = 50

// HeightConfig holds the metrics used to estimate row heights
type HeightConfig struct {
	// LineHeight is the height of one wrapped line
	// Default: 6 mm
	LineHeight float64

	// MinHeight is the floor for every cell and row
	// Default: 8 mm
	MinHeight float64
}

// DefaultHeightConfig returns the table metrics used by the listing reports
func DefaultHeightConfig() HeightConfig {
	return HeightConfig{
		LineHeight: LineHeight,
		MinHeight:  MinCellHeight,
	}
}

// RowLayout is the computed geometry of one record. It is built fresh for every record.
type RowLayout struct {
	Heights []float64 // per column, in column order
	Height  float64   // row height
}

// LinesNeeded returns the number of lines text occupies in a column holding charsPerLine
// characters per line. It is always at least 1.
func LinesNeeded(text string, charsPerLine int) int {
	if charsPerLine <= 0 {
		return 1
	}
	n := textenc.RuneCount(text)
	lines := (n + charsPerLine - 1) / charsPerLine
	if lines < 1 {
		return 1
	}
	return lines
}

// Wraps reports whether a column renders value on several lines.
func Wraps(col model.ColumnSpec, value string) bool {
	if col.Wrap {
		return true
	}
	return col.LongText && textenc.RuneCount(value) > LongTextThreshold
}

// ColumnHeight returns the height a single column needs for value.
func ColumnHeight(col model.ColumnSpec, value string, cfg HeightConfig) float64 {
	if !Wraps(col, value) {
		return cfg.MinHeight
	}
	h := float64(LinesNeeded(value, col.CharsPerLine)) * cfg.LineHeight
	if h < cfg.MinHeight {
		return cfg.MinHeight
	}
	return h
}

// EstimateRow computes per-column heights and the row height for rec. Missing keys are
// measured as empty strings; reporting them is the renderer's job.
func EstimateRow(rec model.Record, cols model.Columns, cfg HeightConfig) RowLayout {
	row := RowLayout{
		Heights: make([]float64, len(cols)),
		Height:  cfg.MinHeight,
	}
	for i, col := range cols {
		value, _ := rec.Get(col.Key)
		h := ColumnHeight(col, value, cfg)
		row.Heights[i] = h
		if h > row.Height {
			row.Height = h
		}
	}
	if row.Height <= 0 {
		row.Height = MinCellHeight
	}
	return row
}

// EstimateRowHeight returns only the row height of EstimateRow.
func EstimateRowHeight(rec model.Record, cols model.Columns, cfg HeightConfig) float64 {
	return EstimateRow(rec, cols, cfg).Height
}
