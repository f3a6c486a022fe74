// Package layout reads a PDF and exposes its pages as positioned characters,
// words, lines, layout text and raw table grids. It wraps two pure-Go PDF
// readers behind one Page type: github.com/ledongthuc/pdf is tried first
// (the most accurate positioned-text extraction), github.com/dslipak/pdf is
// the fallback. Coordinates are normalized to a top-left origin.
package layout

import (
	"errors"
	"fmt"
	"io"
)

// Document is an open PDF. It owns the underlying file handle; Close must be
// called when done (callers typically defer it immediately after Open).
type Document struct {
	closer  io.Closer
	backend string
	pages   []*Page
}

// Open opens a PDF file, trying each backend in accuracy order.
func Open(path string) (*Document, error) {
	doc, lerr := openLedongthuc(path)
	if lerr == nil {
		return doc, nil
	}
	doc, derr := openDslipak(path)
	if derr == nil {
		return doc, nil
	}
	return nil, fmt.Errorf("open %s: %w", path, errors.Join(lerr, derr))
}

// Backend names the PDF reader that produced this document.
func (d *Document) Backend() string {
	return d.backend
}

// PageCount returns the number of pages.
func (d *Document) PageCount() int {
	return len(d.pages)
}

// Page returns a page by 0-based index.
func (d *Document) Page(index int) (*Page, error) {
	if index < 0 || index >= len(d.pages) {
		return nil, fmt.Errorf("page index %d out of range [0, %d)", index, len(d.pages))
	}
	return d.pages[index], nil
}

// Close releases the underlying file handle.
func (d *Document) Close() error {
	if d.closer != nil {
		return d.closer.Close()
	}
	return nil
}

// Page is one page of a document: its dimensions and positioned characters.
// All derived views (words, lines, text, tables) are computed from the
// characters, so the two backends only have to produce chars.
type Page struct {
	number int // 1-based
	width  float64
	height float64
	chars  []Char
}

// NewPage builds a page directly from positioned characters. Used by the
// backends and by tests that synthesize layouts.
func NewPage(number int, width, height float64, chars []Char) *Page {
	return &Page{number: number, width: width, height: height, chars: chars}
}

// Number returns the 1-based page number.
func (p *Page) Number() int { return p.number }

// Width returns the page width in points.
func (p *Page) Width() float64 { return p.width }

// Height returns the page height in points.
func (p *Page) Height() float64 { return p.height }

// BBox returns the page bounding box.
func (p *Page) BBox() BoundingBox {
	return BoundingBox{X0: 0, Y0: 0, X1: p.width, Y1: p.height}
}

// Chars returns the positioned characters on the page.
func (p *Page) Chars() []Char {
	return p.chars
}

// Crop returns a page view restricted to chars whose boxes intersect bbox.
func (p *Page) Crop(bbox BoundingBox) *Page {
	var kept []Char
	for _, ch := range p.chars {
		if bbox.Intersects(ch.BBox()) {
			kept = append(kept, ch)
		}
	}
	return &Page{number: p.number, width: p.width, height: p.height, chars: kept}
}
