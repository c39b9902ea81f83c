package model

import "strings"

// Page represents a single page of a generated document
type Page struct {
	Number   int       // 1-indexed page number
	Width    float64   // Page width in mm
	Height   float64   // Page height in mm
	Elements []Element // Elements in drawing order
}

// NewPage creates a new page with given dimensions
func NewPage(width, height float64) *Page {
	return &Page{
		Width:    width,
		Height:   height,
		Elements: make([]Element, 0),
	}
}

// AddElement adds an element to the page
func (p *Page) AddElement(elem Element) {
	p.Elements = append(p.Elements, elem)
}

// Bounds returns the full page rectangle
func (p *Page) Bounds() BBox {
	return BBox{Width: p.Width, Height: p.Height}
}

// Cells returns all cells on the page in drawing order
func (p *Page) Cells() []*Cell {
	var cells []*Cell
	for _, elem := range p.Elements {
		if c, ok := elem.(*Cell); ok {
			cells = append(cells, c)
		}
	}
	return cells
}

// CellsByRole returns the cells with the given role in drawing order
func (p *Page) CellsByRole(role Role) []*Cell {
	var cells []*Cell
	for _, c := range p.Cells() {
		if c.Role == role {
			cells = append(cells, c)
		}
	}
	return cells
}

// Rows groups body cells by record index, preserving the order in which rows were placed.
func (p *Page) Rows() [][]*Cell {
	var rows [][]*Cell
	index := make(map[int]int)
	for _, c := range p.CellsByRole(RoleBody) {
		i, ok := index[c.Row]
		if !ok {
			i = len(rows)
			index[c.Row] = i
			rows = append(rows, nil)
		}
		rows[i] = append(rows[i], c)
	}
	return rows
}

// ExtractText concatenates the text of all cells, one cell per line
func (p *Page) ExtractText() string {
	var sb strings.Builder
	for _, c := range p.Cells() {
		if c.Text == "" {
			continue
		}
		sb.WriteString(c.Text)
		sb.WriteString("\n")
	}
	return sb.String()
}
