package inspect

import (
	"bytes"
	"errors"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/tsawler/labreport/internal/filters"
	"github.com/tsawler/labreport/internal/textenc"
)

// PointsPerMM converts PDF user space units to millimetres.
const PointsPerMM = 72 / 25.4

var (
	// ErrNotPDF is returned when the input does not start with a PDF header.
	ErrNotPDF = errors.New("not a PDF file")

	// ErrNoMediaBox is returned when the page size cannot be found.
	ErrNoMediaBox = errors.New("no media box")
)

var (
	streamRE   = regexp.MustCompile(`<<([^<>]*)>>\s*stream\r?\n`)
	lengthRE   = regexp.MustCompile(`/Length (\d+)`)
	filterRE   = regexp.MustCompile(`/Filter\s*/(\w+)`)
	mediaBoxRE = regexp.MustCompile(`/MediaBox\s*\[\s*0 0 ([\d.]+) ([\d.]+)\s*\]`)
	fontObjRE  = regexp.MustCompile(`(\d+) 0 obj\s*<</Type /Font\s*/BaseFont /([A-Za-z0-9-]+)`)
	fontRefRE  = regexp.MustCompile(`/(F\w+) (\d+) 0 R`)
)

// Color is an RGB colour with components in 0..1
type Color struct {
	R, G, B float64
}

// RGB255 returns the colour scaled to 0..255.
func (c Color) RGB255() (r, g, b int) {
	return int(math.Round(c.R * 255)), int(math.Round(c.G * 255)), int(math.Round(c.B * 255))
}

// TextRun is one string shown on a page. X and Y locate the start of its baseline.
type TextRun struct {
	Text  string
	X, Y  float64
	Font  string // base font name, e.g. Helvetica-Bold
	Size  float64
	Color Color
}

// Rect is a rectangle drawn on a page
type Rect struct {
	X, Y          float64
	Width, Height float64
	Filled        bool
	Stroked       bool
	Fill          Color
}

// Line is a straight stroked segment
type Line struct {
	X1, Y1, X2, Y2 float64
	Width          float64
}

// Page holds everything drawn on one page, in drawing order.
type Page struct {
	Number int
	Width  float64
	Height float64
	Texts  []TextRun
	Rects  []Rect
	Lines  []Line
}

// Text returns the page text, one run per line.
func (p *Page) Text() string {
	var sb strings.Builder
	for _, t := range p.Texts {
		sb.WriteString(t.Text)
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Contains reports whether any run on the page contains s.
func (p *Page) Contains(s string) bool {
	for _, t := range p.Texts {
		if strings.Contains(t.Text, s) {
			return true
		}
	}
	return false
}

// Find returns the first run whose text equals s.
func (p *Page) Find(s string) (TextRun, bool) {
	for _, t := range p.Texts {
		if t.Text == s {
			return t, true
		}
	}
	return TextRun{}, false
}

// Document is a parsed PDF
type Document struct {
	Pages []*Page
}

// Text returns the text of all pages separated by form feeds.
func (d *Document) Text() string {
	parts := make([]string, len(d.Pages))
	for i, p := range d.Pages {
		parts[i] = p.Text()
	}
	return strings.Join(parts, "\f")
}

// Parse reads the pages of a PDF produced by the writer.
func Parse(data []byte) (*Document, error) {
	if !bytes.HasPrefix(data, []byte("%PDF-")) {
		return nil, ErrNotPDF
	}

	m := mediaBoxRE.FindSubmatch(data)
	if m == nil {
		return nil, ErrNoMediaBox
	}
	wPt, _ := strconv.ParseFloat(string(m[1]), 64)
	hPt, _ := strconv.ParseFloat(string(m[2]), 64)

	fonts := fontNames(data)
	streams, err := contentStreams(data)
	if err != nil {
		return nil, err
	}

	doc := &Document{}
	for i, content := range streams {
		ops, err := NewParser(content).Parse()
		if err != nil {
			return nil, fmt.Errorf("page %d: %w", i+1, err)
		}
		page := &Page{
			Number: i + 1,
			Width:  wPt / PointsPerMM,
			Height: hPt / PointsPerMM,
		}
		interpret(page, ops, fonts)
		doc.Pages = append(doc.Pages, page)
	}
	return doc, nil
}

// contentStreams returns the decoded streams in file order. Streams carrying a /Type or
// /Subtype are resources, not page content.
func contentStreams(data []byte) ([][]byte, error) {
	var out [][]byte
	for _, loc := range streamRE.FindAllSubmatchIndex(data, -1) {
		dict := data[loc[2]:loc[3]]
		if bytes.Contains(dict, []byte("/Type")) || bytes.Contains(dict, []byte("/Subtype")) {
			continue
		}

		lm := lengthRE.FindSubmatch(dict)
		if lm == nil {
			return nil, fmt.Errorf("stream at offset %d has no length", loc[0])
		}
		n, err := strconv.Atoi(string(lm[1]))
		if err != nil {
			return nil, fmt.Errorf("stream at offset %d: %w", loc[0], err)
		}
		start := loc[1]
		if start+n > len(data) {
			return nil, fmt.Errorf("stream at offset %d overruns the file", loc[0])
		}
		raw := data[start : start+n]

		filter := ""
		if fm := filterRE.FindSubmatch(dict); fm != nil {
			filter = string(fm[1])
		}
		decoded, err := filters.Decode(raw, filter)
		if err != nil {
			return nil, fmt.Errorf("stream at offset %d: %w", loc[0], err)
		}
		out = append(out, decoded)
	}
	return out, nil
}

// fontNames maps font resource names to base font names.
func fontNames(data []byte) map[string]string {
	objects := make(map[string]string)
	for _, m := range fontObjRE.FindAllSubmatch(data, -1) {
		objects[string(m[1])] = string(m[2])
	}
	names := make(map[string]string)
	for _, m := range fontRefRE.FindAllSubmatch(data, -1) {
		if base, ok := objects[string(m[2])]; ok {
			names[string(m[1])] = base
		}
	}
	return names
}

// graphics is the subset of the graphics state the writer changes.
type graphics struct {
	font      string
	size      float64
	fill      Color
	lineWidth float64
}

func interpret(page *Page, ops []Operation, fonts map[string]string) {
	gs := graphics{lineWidth: 1}
	var stack []graphics
	var pending []Rect
	var path []float64 // x, y pairs of the current path in points
	var tx, ty float64

	toX := func(x float64) float64 { return x / PointsPerMM }
	toY := func(y float64) float64 { return page.Height - y/PointsPerMM }

	nums := func(op Operation) []float64 {
		out := make([]float64, 0, len(op.Operands))
		for _, o := range op.Operands {
			if v, ok := Number(o); ok {
				out = append(out, v)
			}
		}
		return out
	}

	for _, op := range ops {
		switch op.Operator {
		case "q":
			stack = append(stack, gs)
		case "Q":
			if n := len(stack); n > 0 {
				gs = stack[n-1]
				stack = stack[:n-1]
			}
		case "BT":
			tx, ty = 0, 0
		case "Tf":
			if len(op.Operands) == 2 {
				if name, ok := op.Operands[0].(Name); ok {
					gs.font = string(name)
					if base, ok := fonts[gs.font]; ok {
						gs.font = base
					}
				}
				gs.size, _ = Number(op.Operands[1])
			}
		case "Td":
			if v := nums(op); len(v) == 2 {
				tx, ty = tx+v[0], ty+v[1]
			}
		case "Tj":
			if len(op.Operands) == 1 {
				if s, ok := op.Operands[0].(String); ok {
					page.Texts = append(page.Texts, TextRun{
						Text:  textenc.FromWinAnsi([]byte(s)),
						X:     toX(tx),
						Y:     toY(ty),
						Font:  gs.font,
						Size:  gs.size,
						Color: gs.fill,
					})
				}
			}
		case "rg":
			if v := nums(op); len(v) == 3 {
				gs.fill = Color{v[0], v[1], v[2]}
			}
		case "g":
			if v := nums(op); len(v) == 1 {
				gs.fill = Color{v[0], v[0], v[0]}
			}
		case "w":
			if v := nums(op); len(v) == 1 {
				gs.lineWidth = v[0]
			}
		case "re":
			if v := nums(op); len(v) == 4 {
				top := math.Max(v[1], v[1]+v[3])
				pending = append(pending, Rect{
					X:      toX(v[0]),
					Y:      toY(top),
					Width:  math.Abs(v[2]) / PointsPerMM,
					Height: math.Abs(v[3]) / PointsPerMM,
				})
			}
		case "m":
			path = append(path[:0], nums(op)...)
		case "l":
			path = append(path, nums(op)...)
		case "f", "F", "f*", "S", "s", "B", "B*", "b", "b*", "n":
			filled := strings.ContainsAny(op.Operator, "fFBb")
			stroked := strings.ContainsAny(op.Operator, "SsBb")
			for _, r := range pending {
				r.Filled = filled
				r.Stroked = stroked
				if filled {
					r.Fill = gs.fill
				}
				page.Rects = append(page.Rects, r)
			}
			pending = pending[:0]
			if stroked && len(path) >= 4 {
				for i := 0; i+3 < len(path); i += 2 {
					page.Lines = append(page.Lines, Line{
						X1: toX(path[i]), Y1: toY(path[i+1]),
						X2: toX(path[i+2]), Y2: toY(path[i+3]),
						Width: gs.lineWidth / PointsPerMM,
					})
				}
			}
			path = path[:0]
		}
	}
}
