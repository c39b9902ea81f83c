// Package preview rasterises laid out pages to PNG images.
//
// The preview draws the same cells and rules the PDF writer serialises, using a fixed
// bitmap font. Glyph shapes and line breaks are approximate; positions, fills and borders
// are exact to the pixel grid. It is meant for eyeballing page breaks, not for print.
package preview

import (
	"errors"
	"fmt"
	"image"
	"io"
	"math"

	"github.com/fogleman/gg"
	"golang.org/x/image/font/basicfont"

	"github.com/tsawler/labreport/internal/textenc"
	"github.com/tsawler/labreport/model"
)

// DefaultScale is the preview resolution in pixels per millimetre (about 76 dpi).
const DefaultScale = 3.0

// ErrPageOutOfRange is returned for a page number the document does not have.
var ErrPageOutOfRange = errors.New("page out of range")

// Renderer draws one page at a time onto a gg context.
type Renderer struct {
	context *gg.Context
	scale   float64
}

// NewRenderer creates a renderer sized for page at scale pixels per mm. A scale of zero
// means DefaultScale.
func NewRenderer(page *model.Page, scale float64) *Renderer {
	if scale <= 0 {
		scale = DefaultScale
	}
	w := int(math.Ceil(page.Width * scale))
	h := int(math.Ceil(page.Height * scale))
	dc := gg.NewContext(w, h)
	dc.SetFontFace(basicfont.Face7x13)
	return &Renderer{context: dc, scale: scale}
}

// Render paints the page on a white background in drawing order.
func (r *Renderer) Render(page *model.Page) {
	r.context.SetRGB(1, 1, 1)
	r.context.Clear()

	for _, elem := range page.Elements {
		switch e := elem.(type) {
		case *model.Cell:
			r.drawCell(e)
		case *model.Rule:
			r.drawRule(e)
		}
	}
}

// Image returns the rendered page.
func (r *Renderer) Image() image.Image {
	return r.context.Image()
}

// EncodePNG writes the rendered page as PNG.
func (r *Renderer) EncodePNG(w io.Writer) error {
	return r.context.EncodePNG(w)
}

// SavePNG writes the rendered page to a PNG file.
func (r *Renderer) SavePNG(filename string) error {
	return r.context.SavePNG(filename)
}

func (r *Renderer) px(mm float64) float64 {
	return mm * r.scale
}

func (r *Renderer) setColor(c model.Color) {
	r.context.SetRGB255(int(c.R), int(c.G), int(c.B))
}

func (r *Renderer) drawCell(c *model.Cell) {
	x, y := r.px(c.BBox.X), r.px(c.BBox.Y)
	w, h := r.px(c.BBox.Width), r.px(c.BBox.Height)

	if c.Style.Fill {
		r.setColor(c.Style.FillColor)
		r.context.DrawRectangle(x, y, w, h)
		r.context.Fill()
	}
	if c.Style.Border {
		r.context.SetRGB(0, 0, 0)
		r.context.SetLineWidth(1)
		r.context.DrawRectangle(x, y, w, h)
		r.context.Stroke()
	}
	if c.Text == "" {
		return
	}

	text := textenc.Normalize(c.Text)
	pad := r.px(1)
	r.setColor(c.Style.TextColor)

	if !c.Wrap {
		ax, tx := 0.0, x+pad
		if c.Align == model.AlignCenter {
			ax, tx = 0.5, x+w/2
		}
		r.context.DrawStringAnchored(text, tx, y+h/2, ax, 0.35)
		return
	}

	lh := r.px(c.LineHeight)
	if lh <= 0 {
		lh = h
	}
	for i, line := range r.context.WordWrap(text, w-2*pad) {
		ly := y + float64(i)*lh + lh/2
		if ly > y+h {
			break
		}
		r.context.DrawStringAnchored(line, x+pad, ly, 0, 0.35)
	}
}

func (r *Renderer) drawRule(rule *model.Rule) {
	r.setColor(rule.Color)
	lw := r.px(rule.Width)
	if lw < 1 {
		lw = 1
	}
	r.context.SetLineWidth(lw)
	r.context.DrawLine(r.px(rule.From.X), r.px(rule.From.Y), r.px(rule.To.X), r.px(rule.To.Y))
	r.context.Stroke()
}

// RenderPage renders page number n (1-based) of doc.
func RenderPage(doc *model.Document, n int, scale float64) (*Renderer, error) {
	page := doc.GetPage(n)
	if page == nil {
		return nil, fmt.Errorf("%w: %d of %d", ErrPageOutOfRange, n, doc.PageCount())
	}
	r := NewRenderer(page, scale)
	r.Render(page)
	return r, nil
}

// WritePNG renders page n of doc and encodes it to w.
func WritePNG(w io.Writer, doc *model.Document, n int, scale float64) error {
	r, err := RenderPage(doc, n, scale)
	if err != nil {
		return err
	}
	return r.EncodePNG(w)
}
