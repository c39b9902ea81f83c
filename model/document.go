package model

import (
	"errors"
	"time"
)

// ErrDocumentClosed is returned when a finished document is modified or closed twice.
var ErrDocumentClosed = errors.New("document already closed")

// Orientation selects the page layout of a whole document.
type Orientation int

const (
	Portrait Orientation = iota
	Landscape
)

// A4 dimensions in millimetres.
const (
	A4Short = 210.0
	A4Long  = 297.0
)

func (o Orientation) String() string {
	if o == Landscape {
		return "landscape"
	}
	return "portrait"
}

// Size returns the page width and height in mm.
func (o Orientation) Size() (width, height float64) {
	if o == Landscape {
		return A4Long, A4Short
	}
	return A4Short, A4Long
}

// Document represents a complete generated report
type Document struct {
	Metadata    Metadata
	Orientation Orientation
	Pages       []*Page

	closed bool
}

// Metadata contains document-level information
type Metadata struct {
	Title       string
	Subject     string
	Author      string
	Creator     string
	ID          string    // stable identifier derived from the report content
	GeneratedAt time.Time // literal timestamp printed in the footer
}

// NewDocument creates a new empty document
func NewDocument(orientation Orientation) *Document {
	return &Document{
		Orientation: orientation,
		Pages:       make([]*Page, 0),
	}
}

// AddPage appends a blank page sized for the document orientation
func (d *Document) AddPage() (*Page, error) {
	if d.closed {
		return nil, ErrDocumentClosed
	}
	w, h := d.Orientation.Size()
	page := NewPage(w, h)
	page.Number = len(d.Pages) + 1
	d.Pages = append(d.Pages, page)
	return page, nil
}

// CurrentPage returns the last page, or nil for an empty document
func (d *Document) CurrentPage() *Page {
	if len(d.Pages) == 0 {
		return nil
	}
	return d.Pages[len(d.Pages)-1]
}

// GetPage returns a page by number (1-indexed)
func (d *Document) GetPage(number int) *Page {
	if number < 1 || number > len(d.Pages) {
		return nil
	}
	return d.Pages[number-1]
}

// PageCount returns the total number of pages
func (d *Document) PageCount() int {
	return len(d.Pages)
}

// Close finalises the document. It may be called once.
func (d *Document) Close() error {
	if d.closed {
		return ErrDocumentClosed
	}
	d.closed = true
	return nil
}

// Closed reports whether Close has been called
func (d *Document) Closed() bool {
	return d.closed
}

// ExtractText returns all text content concatenated
func (d *Document) ExtractText() string {
	var text string
	for _, page := range d.Pages {
		text += page.ExtractText() + "\n"
	}
	return text
}
