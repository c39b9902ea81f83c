package layout

import (
	"errors"

	"github.com/tsawler/labreport/model"
)

// ErrFlowNotStarted is returned when rows are reserved before Start.
var ErrFlowNotStarted = errors.New("page flow not started")

// State is the page flow state
type State int

const (
	OnPage State = iota
	NeedNewPage
)

func (s State) String() string {
	if s == NeedNewPage {
		return "need-new-page"
	}
	return "on-page"
}

// Geometry describes the content area of a page orientation in mm.
type Geometry struct {
	Orientation model.Orientation

	// Margin is the left, right and top page margin
	// Default: 10 mm
	Margin float64

	// Top is where content starts on every page
	// Default: 10 mm
	Top float64

	// Bottom is the content bottom threshold; a row may end on it but not cross it
	// Default: page height - 20 mm
	Bottom float64
}

// GeometryFor returns the A4 geometry of an orientation. The content band ends 20 mm above
// the physical bottom (190 mm landscape, 277 mm portrait), the same margin fpdf uses for its
// automatic page break, and a row fits when its bottom edge is on or above that line. This
// admits rows ending between 180 and 190 mm that a "break once y passes 180" rule would push
// to the next page.
func GeometryFor(o model.Orientation) Geometry {
	_, h := o.Size()
	return Geometry{
		Orientation: o,
		Margin:      10,
		Top:         10,
		Bottom:      h - 20,
	}
}

// PrintableWidth returns the width between the left and right margins
func (g Geometry) PrintableWidth() float64 {
	w, _ := g.Orientation.Size()
	return w - 2*g.Margin
}

// ContentBand returns the region rows may occupy on a page
func (g Geometry) ContentBand() model.BBox {
	return model.BBox{
		X:      g.Margin,
		Y:      g.Top,
		Width:  g.PrintableWidth(),
		Height: g.Bottom - g.Top,
	}
}

// Cursor is the running vertical offset of the next row on the current page.
type Cursor struct {
	Y      float64
	Bottom float64
}

// Advance moves the cursor down by h
func (c *Cursor) Advance(h float64) {
	c.Y += h
}

// Fits reports whether a block of height h fits above the bottom threshold
func (c *Cursor) Fits(h float64) bool {
	return c.Y+h <= c.Bottom
}

// HeaderFunc draws the column header band on page at y and returns its height.
type HeaderFunc func(page *model.Page, y float64) float64

// Flow places atomic rows on the pages of one document.
type Flow struct {
	doc    *model.Document
	geo    Geometry
	header HeaderFunc

	page   *model.Page
	cursor Cursor
	state  State
	breaks int
}

// NewFlow creates a flow over doc. header may be nil for reports without a header band.
func NewFlow(doc *model.Document, geo Geometry, header HeaderFunc) *Flow {
	return &Flow{
		doc:    doc,
		geo:    geo,
		header: header,
		cursor: Cursor{Bottom: geo.Bottom},
	}
}

// Start opens the first page and puts the cursor at the top of its content area.
func (f *Flow) Start() (*model.Page, error) {
	page, err := f.doc.AddPage()
	if err != nil {
		return nil, err
	}
	f.page = page
	f.cursor.Y = f.geo.Top
	f.state = OnPage
	return page, nil
}

// Begin draws the first header band at the cursor. Called once, after the title and
// summary bands.
func (f *Flow) Begin() {
	f.emitHeader()
	f.state = OnPage
}

// Reserve makes room for a row of height h and returns the page it belongs on. The row's
// top edge is Cursor().Y. At most one page is started per row, so a row taller than the
// content band lands at the top of a fresh page and overflows it.
func (f *Flow) Reserve(h float64) (*model.Page, error) {
	if f.page == nil {
		return nil, ErrFlowNotStarted
	}
	if !f.cursor.Fits(h) {
		f.state = NeedNewPage
		if err := f.newPage(); err != nil {
			return nil, err
		}
	}
	return f.page, nil
}

// newPage starts a continuation page and repeats the header band.
func (f *Flow) newPage() error {
	page, err := f.doc.AddPage()
	if err != nil {
		return err
	}
	f.page = page
	f.cursor.Y = f.geo.Top
	f.emitHeader()
	f.breaks++
	f.state = OnPage
	return nil
}

func (f *Flow) emitHeader() {
	if f.header == nil {
		return
	}
	f.cursor.Advance(f.header(f.page, f.cursor.Y))
}

// Cursor returns the page cursor. Renderers advance it after drawing a row.
func (f *Flow) Cursor() *Cursor {
	return &f.cursor
}

// Page returns the current page
func (f *Flow) Page() *model.Page {
	return f.page
}

// State returns the current state
func (f *Flow) State() State {
	return f.state
}

// PageBreaks returns how many continuation pages were started
func (f *Flow) PageBreaks() int {
	return f.breaks
}

// Geometry returns the page geometry of the flow
func (f *Flow) Geometry() Geometry {
	return f.geo
}
