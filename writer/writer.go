// Package writer serialises a laid out document to PDF using the standard PDF fonts.
//
// Every element is drawn at the position the layout gave it; the writer never decides
// where anything goes and never breaks pages on its own. With a fixed generation time the
// output is byte-for-byte reproducible.
package writer

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/go-pdf/fpdf"

	"github.com/tsawler/labreport/internal/textenc"
	"github.com/tsawler/labreport/model"
)

var (
	// ErrDocumentOpen is returned when a document that was never closed is written.
	ErrDocumentOpen = errors.New("document is still open")

	// ErrNoPages is returned for a document without pages.
	ErrNoPages = errors.New("document has no pages")
)

// DefaultLineWidth is the outline width used when a style does not set one.
const DefaultLineWidth = 0.2

// Options controls serialisation
type Options struct {
	// Compress enables Flate compression of page content streams.
	Compress bool
}

// Write renders doc and returns the PDF bytes.
func Write(doc *model.Document, opts Options) ([]byte, error) {
	var buf bytes.Buffer
	if err := WriteTo(&buf, doc, opts); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// WriteTo renders doc to w.
func WriteTo(w io.Writer, doc *model.Document, opts Options) error {
	if !doc.Closed() {
		return ErrDocumentOpen
	}
	if doc.PageCount() == 0 {
		return ErrNoPages
	}

	pdf := newPDF(doc, opts)
	for _, page := range doc.Pages {
		pdf.AddPage()
		for _, elem := range page.Elements {
			switch e := elem.(type) {
			case *model.Cell:
				drawCell(pdf, e)
			case *model.Rule:
				drawRule(pdf, e)
			}
		}
		if pdf.Err() {
			return fmt.Errorf("page %d: %w", page.Number, pdf.Error())
		}
	}

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("pdf output: %w", err)
	}
	return nil
}

func newPDF(doc *model.Document, opts Options) *fpdf.Fpdf {
	orientation := "P"
	if doc.Orientation == model.Landscape {
		orientation = "L"
	}

	pdf := fpdf.New(orientation, "mm", "A4", "")
	pdf.SetMargins(10, 10, 10)
	pdf.SetAutoPageBreak(false, 0)
	pdf.SetCompression(opts.Compress)
	pdf.SetCatalogSort(true)

	meta := doc.Metadata
	pdf.SetCreationDate(meta.GeneratedAt)
	pdf.SetModificationDate(meta.GeneratedAt)
	pdf.SetTitle(meta.Title, true)
	pdf.SetSubject(meta.Subject, true)
	pdf.SetAuthor(meta.Author, true)
	pdf.SetCreator(meta.Creator, true)
	if meta.ID != "" {
		pdf.SetKeywords(meta.ID, true)
	}
	return pdf
}

func fontStyle(f model.Font) string {
	s := ""
	if f.Bold {
		s += "B"
	}
	if f.Italic {
		s += "I"
	}
	return s
}

func align(a model.Alignment) string {
	if a == model.AlignCenter {
		return "C"
	}
	return "L"
}

func applyStyle(pdf *fpdf.Fpdf, s model.Style) {
	family := s.Font.Family
	if family == "" {
		family = model.DefaultFamily
	}
	pdf.SetFont(family, fontStyle(s.Font), s.Font.Size)
	pdf.SetTextColor(int(s.TextColor.R), int(s.TextColor.G), int(s.TextColor.B))
	pdf.SetFillColor(int(s.FillColor.R), int(s.FillColor.G), int(s.FillColor.B))
	pdf.SetDrawColor(0, 0, 0)

	lw := s.LineWidth
	if lw <= 0 {
		lw = DefaultLineWidth
	}
	pdf.SetLineWidth(lw)
}

func drawCell(pdf *fpdf.Fpdf, c *model.Cell) {
	applyStyle(pdf, c.Style)
	text := textenc.ToWinAnsi(c.Text)
	b := c.BBox

	if !c.Wrap {
		border := ""
		if c.Style.Border {
			border = "1"
		}
		pdf.SetXY(b.X, b.Y)
		pdf.CellFormat(b.Width, b.Height, text, border, 0, align(c.Align), c.Style.Fill, 0, "")
		return
	}

	// Wrapped cells get their box at the full row height first, then the text flows
	// inside it from the top edge.
	rectStyle := ""
	if c.Style.Fill {
		rectStyle += "F"
	}
	if c.Style.Border {
		rectStyle += "D"
	}
	if rectStyle != "" {
		pdf.Rect(b.X, b.Y, b.Width, b.Height, rectStyle)
	}

	lh := c.LineHeight
	if lh <= 0 {
		lh = b.Height
	}
	pdf.SetXY(b.X, b.Y)
	pdf.MultiCell(b.Width, lh, text, "", align(c.Align), false)
}

func drawRule(pdf *fpdf.Fpdf, r *model.Rule) {
	lw := r.Width
	if lw <= 0 {
		lw = DefaultLineWidth
	}
	pdf.SetLineWidth(lw)
	pdf.SetDrawColor(int(r.Color.R), int(r.Color.G), int(r.Color.B))
	pdf.Line(r.From.X, r.From.Y, r.To.X, r.To.Y)
}
