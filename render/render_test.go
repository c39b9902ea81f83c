package render

import (
	"errors"
	"strings"
	"testing"

	"github.com/tsawler/labreport/layout"
	"github.com/tsawler/labreport/model"
)

func testColumns() model.Columns {
	return model.Columns{
		{Key: "name", Label: "Nombre", Width: 50, Wrap: true, CharsPerLine: 30},
		{Key: "gender", Label: "Género", Width: 25, Align: model.AlignCenter},
		{Key: "address", Label: "Dirección", Width: 80, Wrap: true, CharsPerLine: 40},
	}
}

func newPage() *model.Page {
	return model.NewPage(297, 210)
}

// ============================================================================
// Table Tests
// ============================================================================

func TestTable_HeaderBand(t *testing.T) {
	page := newPage()
	table := NewTable(10, testColumns())

	h := table.HeaderBand(page, 35)
	if h != HeaderHeight {
		t.Errorf("height = %v, want %v", h, HeaderHeight)
	}

	cells := page.CellsByRole(model.RoleHeader)
	if len(cells) != 3 {
		t.Fatalf("expected 3 header cells, got %d", len(cells))
	}

	wantX := []float64{10, 60, 85}
	for i, c := range cells {
		if c.BBox.X != wantX[i] || c.BBox.Y != 35 {
			t.Errorf("cell %d at (%v,%v), want (%v,35)", i, c.BBox.X, c.BBox.Y, wantX[i])
		}
		if !c.Style.Fill || c.Style.FillColor != model.LightGrey {
			t.Errorf("cell %d not filled grey", i)
		}
		if !c.Style.Font.Bold || c.Style.Font.Size != 10 {
			t.Errorf("cell %d font = %+v", i, c.Style.Font)
		}
		if c.Align != model.AlignCenter {
			t.Errorf("cell %d align = %s", i, c.Align)
		}
	}
	if cells[1].Text != "Género" {
		t.Errorf("label = %q", cells[1].Text)
	}
}

func TestTable_Row(t *testing.T) {
	page := newPage()
	table := NewTable(10, testColumns())
	cursor := &layout.Cursor{Y: 60, Bottom: 190}

	rec := model.NewRecord("name", "Ana Pérez", "gender", "F", "address", strings.Repeat("x", 90))
	if err := table.Row(page, cursor, 0, rec, 18); err != nil {
		t.Fatalf("Row: %v", err)
	}

	if cursor.Y != 78 {
		t.Errorf("cursor = %v, want 78", cursor.Y)
	}

	cells := page.CellsByRole(model.RoleBody)
	if len(cells) != 3 {
		t.Fatalf("expected 3 cells, got %d", len(cells))
	}
	for i, c := range cells {
		if c.BBox.Height != 18 {
			t.Errorf("cell %d height = %v, want the row height 18", i, c.BBox.Height)
		}
		if c.BBox.Y != 60 {
			t.Errorf("cell %d y = %v, want 60", i, c.BBox.Y)
		}
	}
	if !cells[0].Wrap || cells[0].Align != model.AlignLeft || cells[0].LineHeight != layout.LineHeight {
		t.Errorf("name cell should wrap left aligned: %+v", cells[0])
	}
	if cells[1].Wrap || cells[1].Align != model.AlignCenter {
		t.Errorf("gender cell should be single-line centered: %+v", cells[1])
	}
	if !cells[0].Style.Border || cells[0].Style.Font.Size != 9 {
		t.Errorf("unexpected body style %+v", cells[0].Style)
	}
}

func TestTable_RowMissingKey(t *testing.T) {
	page := newPage()
	table := NewTable(10, testColumns())
	cursor := &layout.Cursor{Y: 60, Bottom: 190}

	rec := model.NewRecord("name", "Ana", "gender", "F")
	err := table.Row(page, cursor, 4, rec, 8)
	if !errors.Is(err, model.ErrMissingColumn) {
		t.Fatalf("expected ErrMissingColumn, got %v", err)
	}
	if !strings.Contains(err.Error(), "address") {
		t.Errorf("error should name the key: %v", err)
	}
	if len(page.Elements) != 0 {
		t.Errorf("no cell should be drawn, got %d", len(page.Elements))
	}
	if cursor.Y != 60 {
		t.Errorf("cursor moved to %v", cursor.Y)
	}
}

// ============================================================================
// Band Tests
// ============================================================================

func TestBand(t *testing.T) {
	page := newPage()
	cursor := &layout.Cursor{Y: 10, Bottom: 190}
	style := model.TextStyle(20, true, false, model.White).Filled(model.Blue)

	cell := Band(page, cursor, "REPORTE", BandSpec{X: 10, Width: 277, Height: 15, Style: style, Align: model.AlignCenter, Role: model.RoleTitle})

	if cursor.Y != 25 {
		t.Errorf("cursor = %v, want 25", cursor.Y)
	}
	if cell.BBox != model.NewBBox(10, 10, 277, 15) {
		t.Errorf("bbox = %+v", cell.BBox)
	}
	if got := page.CellsByRole(model.RoleTitle); len(got) != 1 {
		t.Errorf("expected one title cell, got %d", len(got))
	}
}

func TestRule(t *testing.T) {
	page := newPage()
	r := Rule(page, 30, 10, 200, 0.5)

	if r.BoundingBox() != model.NewBBox(10, 30, 190, 0) {
		t.Errorf("bbox = %+v", r.BoundingBox())
	}
	if len(page.Elements) != 1 {
		t.Errorf("expected 1 element, got %d", len(page.Elements))
	}
}

func TestLabelValue(t *testing.T) {
	spec := DefaultLabelValueSpec(10, 190)
	short := model.ColumnSpec{Key: "test_code", Label: "Código de Prueba:"}
	long := model.ColumnSpec{Key: "description", Label: "Descripción:", LongText: true, CharsPerLine: 50}

	tests := []struct {
		name     string
		col      model.ColumnSpec
		value    string
		wantH    float64
		wantWrap bool
	}{
		{"single line", short, "HB-01", 8, false},
		{"long text under threshold", long, strings.Repeat("a", 50), 8, false},
		{"long text wraps", long, strings.Repeat("a", 120), 24, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page := model.NewPage(210, 297)
			cursor := &layout.Cursor{Y: 50, Bottom: 277}

			LabelValue(page, cursor, tt.col, tt.value, spec)

			if cursor.Y != 50+tt.wantH+2 {
				t.Errorf("cursor = %v, want %v", cursor.Y, 50+tt.wantH+2)
			}
			labels := page.CellsByRole(model.RoleLabel)
			values := page.CellsByRole(model.RoleValue)
			if len(labels) != 1 || len(values) != 1 {
				t.Fatalf("expected one label and one value")
			}
			if labels[0].BBox.Width != 60 || !labels[0].Style.Font.Bold {
				t.Errorf("label cell = %+v", labels[0])
			}
			if values[0].BBox.X != 70 || values[0].BBox.Width != 130 {
				t.Errorf("value cell at x=%v w=%v", values[0].BBox.X, values[0].BBox.Width)
			}
			if values[0].Wrap != tt.wantWrap {
				t.Errorf("Wrap = %v, want %v", values[0].Wrap, tt.wantWrap)
			}
			if spec.LabelHeight(tt.col, tt.value) != tt.wantH+2 {
				t.Errorf("LabelHeight = %v", spec.LabelHeight(tt.col, tt.value))
			}
		})
	}
}
