package layout

import (
	"math"
	"sort"
	"strings"
)

// Tables detects table grids from word alignment, the strategy that works on
// the unruled grids this package targets: words are grouped into visual
// lines, lines into vertically contiguous blocks, and a block becomes a
// table when enough of its word start positions align into columns. Tables
// come back in top-to-bottom layout order.
func (p *Page) Tables(opts ...Option) []Table {
	cfg := applyOptions(opts)

	lines := p.Lines(opts...)
	if len(lines) == 0 {
		return nil
	}

	var tables []Table
	for _, block := range splitBlocks(lines, cfg.maxLineGap) {
		if len(block) < cfg.minTableRows {
			continue
		}
		columns := alignedColumns(block, cfg.snapTolerance)
		if len(columns) < 2 {
			continue
		}
		table := buildTable(block, columns, cfg.snapTolerance)
		if tabularRows(table.Rows) >= cfg.minTableRows {
			tables = append(tables, table)
		}
	}
	return tables
}

// splitBlocks cuts the line sequence wherever the vertical gap between
// consecutive lines exceeds maxGap.
func splitBlocks(lines []Line, maxGap float64) [][]Line {
	var blocks [][]Line
	current := []Line{lines[0]}

	for i := 1; i < len(lines); i++ {
		gap := lines[i].BBox.Y0 - lines[i-1].BBox.Y1
		if gap > maxGap {
			blocks = append(blocks, current)
			current = []Line{lines[i]}
		} else {
			current = append(current, lines[i])
		}
	}
	return append(blocks, current)
}

// alignedColumns returns the X positions (snapped to the tolerance grid)
// where word starts recur across enough of the block's lines: at least two
// lines and at least 30% of them.
func alignedColumns(block []Line, snap float64) []float64 {
	counts := make(map[float64]int)
	for _, line := range block {
		seen := make(map[float64]bool)
		for _, w := range line.Words {
			x := math.Round(w.X0/snap) * snap
			if !seen[x] {
				counts[x]++
				seen[x] = true
			}
		}
	}

	minCount := len(block) * 3 / 10
	if minCount < 2 {
		minCount = 2
	}

	var columns []float64
	for x, n := range counts {
		if n >= minCount {
			columns = append(columns, x)
		}
	}
	sort.Float64s(columns)
	return columns
}

// buildTable assigns each line's words to the detected columns. A word
// snaps to the nearest column start within three snap tolerances; words
// that start mid-cell fall into the rightmost column to their left.
func buildTable(block []Line, columns []float64, snap float64) Table {
	bbox := block[0].BBox
	rows := make([][]string, len(block))

	for i, line := range block {
		bbox.X0 = math.Min(bbox.X0, line.BBox.X0)
		bbox.Y0 = math.Min(bbox.Y0, line.BBox.Y0)
		bbox.X1 = math.Max(bbox.X1, line.BBox.X1)
		bbox.Y1 = math.Max(bbox.Y1, line.BBox.Y1)

		row := make([]string, len(columns))
		for _, w := range line.Words {
			idx := columnIndex(w.X0, columns, snap)
			if idx < 0 {
				continue
			}
			if row[idx] != "" {
				row[idx] += " "
			}
			row[idx] += w.Text
		}
		for j := range row {
			row[j] = strings.TrimSpace(row[j])
		}
		rows[i] = row
	}

	return Table{Rows: rows, BBox: bbox}
}

// columnIndex picks the column for a word start position.
func columnIndex(x float64, columns []float64, snap float64) int {
	best, bestDist := -1, math.MaxFloat64
	for i, colX := range columns {
		dist := math.Abs(x - colX)
		if dist < bestDist && dist <= snap*3 {
			best, bestDist = i, dist
		}
	}
	if best >= 0 {
		return best
	}
	// Mid-cell word: attribute to the column interval containing it.
	for i := len(columns) - 1; i >= 0; i-- {
		if x >= columns[i] {
			return i
		}
	}
	return -1
}

// tabularRows counts rows that occupy at least two columns, the signal that
// a block is a grid rather than prose.
func tabularRows(rows [][]string) int {
	n := 0
	for _, row := range rows {
		occupied := 0
		for _, cell := range row {
			if cell != "" {
				occupied++
			}
		}
		if occupied >= 2 {
			n++
		}
	}
	return n
}
