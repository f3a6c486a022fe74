package layout

import (
	"fmt"

	lpdf "github.com/ledongthuc/pdf"
)

// openLedongthuc reads a PDF with github.com/ledongthuc/pdf and converts
// every page's text content into positioned characters.
func openLedongthuc(path string) (*Document, error) {
	f, r, err := lpdf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("ledongthuc: %w", err)
	}

	doc := &Document{closer: f, backend: "ledongthuc"}
	for i := 1; i <= r.NumPage(); i++ {
		page, err := ledongthucPage(r, i)
		if err != nil {
			f.Close()
			return nil, fmt.Errorf("ledongthuc: page %d: %w", i, err)
		}
		doc.pages = append(doc.pages, page)
	}
	return doc, nil
}

func ledongthucPage(r *lpdf.Reader, number int) (*Page, error) {
	p := r.Page(number)
	if p.V.IsNull() {
		return nil, fmt.Errorf("null page object")
	}

	width, height := 612.0, 792.0 // US Letter fallback
	mediaBox := p.V.Key("MediaBox")
	if mediaBox.Kind() == lpdf.Array && mediaBox.Len() == 4 {
		width = mediaBox.Index(2).Float64() - mediaBox.Index(0).Float64()
		height = mediaBox.Index(3).Float64() - mediaBox.Index(1).Float64()
	}

	content := p.Content().Text
	items := make([]textItem, 0, len(content))
	for _, t := range content {
		items = append(items, textItem{
			S: t.S, X: t.X, Y: t.Y, W: t.W,
			Font: t.Font, FontSize: t.FontSize,
		})
	}
	return NewPage(number, width, height, charsFromText(items, height)), nil
}

// textItem is the subset of both backends' text structs this package needs.
type textItem struct {
	S        string
	X        float64
	Y        float64 // baseline, PDF bottom-up coordinates
	W        float64
	Font     string
	FontSize float64
}

// charsFromText splits backend text runs into per-character boxes and flips
// them into top-left coordinates. Character widths are approximated by an
// even split of the run width; the baseline sits at roughly 80% of the font
// height, so the run top is baseline + 0.8*size.
func charsFromText(items []textItem, pageHeight float64) []Char {
	var chars []Char
	for _, item := range items {
		runes := []rune(item.S)
		if len(runes) == 0 {
			continue
		}

		fontHeight := item.FontSize
		topPDF := item.Y + fontHeight*0.8
		y0 := pageHeight - topPDF

		charWidth := item.W / float64(len(runes))
		x := item.X
		for _, rn := range runes {
			if rn != ' ' && rn != '\n' && rn != '\r' {
				chars = append(chars, Char{
					Text:     string(rn),
					Font:     item.Font,
					FontSize: item.FontSize,
					X0:       x,
					Y0:       y0,
					X1:       x + charWidth,
					Y1:       y0 + fontHeight,
					Width:    charWidth,
					Height:   fontHeight,
				})
			}
			x += charWidth
		}
	}
	return chars
}
