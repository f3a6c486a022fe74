package layout

// BoundingBox is a rectangular page area in top-left-origin coordinates
// (Y grows downward, not the bottom-up orientation of raw PDF user space).
type BoundingBox struct {
	X0 float64 // Left
	Y0 float64 // Top
	X1 float64 // Right
	Y1 float64 // Bottom
}

// Width returns the width of the bounding box.
func (b BoundingBox) Width() float64 {
	return b.X1 - b.X0
}

// Height returns the height of the bounding box.
func (b BoundingBox) Height() float64 {
	return b.Y1 - b.Y0
}

// Contains reports whether a point lies within the bounding box.
func (b BoundingBox) Contains(x, y float64) bool {
	return x >= b.X0 && x <= b.X1 && y >= b.Y0 && y <= b.Y1
}

// Intersects reports whether two bounding boxes overlap.
func (b BoundingBox) Intersects(other BoundingBox) bool {
	return !(b.X1 < other.X0 || b.X0 > other.X1 || b.Y1 < other.Y0 || b.Y0 > other.Y1)
}

// Char is a single positioned character on a page.
type Char struct {
	Text     string
	Font     string
	FontSize float64
	X0       float64
	Y0       float64
	X1       float64
	Y1       float64
	Width    float64
	Height   float64
}

// BBox returns the character's bounding box.
func (c Char) BBox() BoundingBox {
	return BoundingBox{X0: c.X0, Y0: c.Y0, X1: c.X1, Y1: c.Y1}
}

// Word is a run of characters with no significant horizontal gap.
type Word struct {
	Text  string
	X0    float64
	Y0    float64
	X1    float64
	Y1    float64
	Chars []Char
}

// BBox returns the word's bounding box.
func (w Word) BBox() BoundingBox {
	return BoundingBox{X0: w.X0, Y0: w.Y0, X1: w.X1, Y1: w.Y1}
}

// Line is one visual line of text: its words in left-to-right order.
type Line struct {
	Text  string
	BBox  BoundingBox
	Words []Word
}

// Table is a raw extracted table grid. Cell values are trimmed strings;
// empty cells are empty strings. Rows are in top-to-bottom layout order.
type Table struct {
	Rows [][]string
	BBox BoundingBox
}

// config holds the grouping tolerances shared by text, word and table
// extraction. Defaults suit single-page datasheet layouts.
type config struct {
	xTolerance    float64 // horizontal gap that separates words
	yTolerance    float64 // vertical distance that separates lines
	snapTolerance float64 // X snap for column alignment
	minTableRows  int     // minimum rows for a detected table
	maxLineGap    float64 // vertical gap that splits table blocks
}

func defaultConfig() config {
	return config{
		xTolerance:    3.0,
		yTolerance:    3.0,
		snapTolerance: 3.0,
		minTableRows:  3,
		maxLineGap:    18.0,
	}
}

// Option adjusts extraction tolerances.
type Option func(*config)

// WithXTolerance sets the horizontal gap that starts a new word.
func WithXTolerance(tol float64) Option {
	return func(c *config) { c.xTolerance = tol }
}

// WithYTolerance sets the vertical distance that starts a new line.
func WithYTolerance(tol float64) Option {
	return func(c *config) { c.yTolerance = tol }
}

// WithSnapTolerance sets the X rounding used for column alignment.
func WithSnapTolerance(tol float64) Option {
	return func(c *config) { c.snapTolerance = tol }
}

// WithMinTableRows sets the minimum row count for a detected table.
func WithMinTableRows(n int) Option {
	return func(c *config) { c.minTableRows = n }
}

// WithMaxLineGap sets the vertical gap that separates adjacent table blocks.
func WithMaxLineGap(gap float64) Option {
	return func(c *config) { c.maxLineGap = gap }
}

func applyOptions(opts []Option) config {
	c := defaultConfig()
	for _, opt := range opts {
		opt(&c)
	}
	return c
}
