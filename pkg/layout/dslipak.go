package layout

import (
	"fmt"

	gopdf "github.com/dslipak/pdf"
)

// openDslipak reads a PDF with github.com/dslipak/pdf. Used when the primary
// backend cannot parse the file. The library keeps no open handle of its
// own, so the document's closer is nil.
func openDslipak(path string) (*Document, error) {
	r, err := gopdf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("dslipak: %w", err)
	}

	doc := &Document{backend: "dslipak"}
	for i := 1; i <= r.NumPage(); i++ {
		page, err := dslipakPage(r, i)
		if err != nil {
			return nil, fmt.Errorf("dslipak: page %d: %w", i, err)
		}
		doc.pages = append(doc.pages, page)
	}
	return doc, nil
}

func dslipakPage(r *gopdf.Reader, number int) (*Page, error) {
	p := r.Page(number)
	if p.V.IsNull() {
		return nil, fmt.Errorf("null page object")
	}

	// dslipak does not expose MediaBox; assume US Letter like the upstream
	// examples do.
	width, height := 612.0, 792.0

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
