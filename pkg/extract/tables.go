package extract

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/hsi-tools/relayspec/pkg/datasheet"
)

// rowShape is the per-table decision about row 0, resolved once before any
// row is parsed.
type rowShape int

const (
	headerPresent rowShape = iota // row 0 is a header and is dropped
	headerAbsent                  // row 0 is data
)

// classifyFirstRow decides whether a table leads with data or a header.
// Row 0 is data when it has at least three columns, a non-empty category
// cell, and a non-empty cell in one of the last two columns (a unit or a
// value); anything else is a header row.
func classifyFirstRow(row []string) rowShape {
	if len(row) < 3 || row[0] == "" {
		return headerPresent
	}
	for _, cell := range row[len(row)-2:] {
		if cell != "" {
			return headerAbsent
		}
	}
	return headerPresent
}

// isFeatureAdvantageTable matches the two-column bullet-list table that
// belongs to the bullet classifier, not the spec mapper.
func isFeatureAdvantageTable(firstRow []string) bool {
	return len(firstRow) == 2 &&
		strings.Contains(firstRow[0], "Features") &&
		strings.Contains(firstRow[1], "Advantages")
}

// mapTableToSpecs converts one raw table grid into ordered
// category → subcategory → value mappings. Categories with a blank first
// cell inherit the last seen category (merged-cell semantics). A malformed
// row is logged and skipped; it never aborts the table.
func mapTableToSpecs(rows [][]string, logger *slog.Logger) *datasheet.SectionData {
	section := datasheet.NewSectionData()
	if len(rows) == 0 {
		return section
	}

	firstRow := trimCells(rows[0])
	if isFeatureAdvantageTable(firstRow) {
		return section
	}

	if classifyFirstRow(firstRow) == headerPresent {
		rows = rows[1:]
	}

	currentCategory := ""
	for _, row := range rows {
		next, err := parseSpecRow(row, currentCategory, section)
		if err != nil {
			logger.Warn("skipping unparseable table row", "row", row, "error", err)
			continue
		}
		currentCategory = next
	}
	return section
}

// parseSpecRow folds one row into the section and returns the category to
// carry forward. Recover converts a row-level panic into an error so one
// bad row cannot void the table.
func parseSpecRow(row []string, currentCategory string, section *datasheet.SectionData) (carried string, err error) {
	defer func() {
		if r := recover(); r != nil {
			carried, err = currentCategory, fmt.Errorf("row panic: %v", r)
		}
	}()

	cells := trimCells(row)
	if allEmpty(cells) {
		return currentCategory, nil
	}

	category := cells[0]
	if category == "" {
		category = currentCategory
	}
	if category != "" {
		// Register the category even for label-only rows so spanning
		// labels keep their source position.
		section.Category(category)
	}

	var subcategory, unit, value string
	switch {
	case len(cells) >= 4:
		subcategory, unit, value = cells[1], cells[2], cells[3]
	case len(cells) == 3:
		subcategory, value = cells[1], cells[2]
	case len(cells) == 2:
		value = cells[1]
	}

	if value != "" && category != "" {
		section.Category(category).Set(subcategory, datasheet.SpecValue{
			Unit:  datasheet.StandardizeUnit(unit),
			Value: value,
		})
	}
	return category, nil
}

func trimCells(row []string) []string {
	out := make([]string, len(row))
	for i, cell := range row {
		out[i] = strings.TrimSpace(cell)
	}
	return out
}

func allEmpty(cells []string) bool {
	for _, cell := range cells {
		if cell != "" {
			return false
		}
	}
	return true
}
