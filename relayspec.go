// Package relayspec extracts structured specification records from
// electromechanical sensor and relay datasheet PDFs.
package relayspec

import (
	"github.com/hsi-tools/relayspec/pkg/datasheet"
	"github.com/hsi-tools/relayspec/pkg/extract"
	"github.com/hsi-tools/relayspec/pkg/layout"
)

// Re-export the public types so callers only import this package.
type (
	PDFData      = datasheet.PDFData
	Sections     = datasheet.Sections
	SectionData  = datasheet.SectionData
	CategorySpec = datasheet.CategorySpec
	SpecValue    = datasheet.SpecValue
	FeatureSet   = datasheet.FeatureSet

	Processor      = extract.Processor
	Option         = extract.Option
	Profile        = extract.Profile
	BulletStrategy = extract.BulletStrategy

	Document    = layout.Document
	Page        = layout.Page
	Table       = layout.Table
	BoundingBox = layout.BoundingBox
)

// Re-export option and profile constructors.
var (
	New                = extract.New
	WithLogger         = extract.WithLogger
	WithProfile        = extract.WithProfile
	WithDiagramsDir    = extract.WithDiagramsDir
	WithBulletStrategy = extract.WithBulletStrategy

	DefaultProfile = extract.DefaultProfile
	LoadProfile    = extract.LoadProfile
	ParityStrategy = extract.ParityStrategy

	StandardizeUnit = datasheet.StandardizeUnit
)

// Process extracts the structured record from a datasheet PDF using a
// processor built from the given options.
func Process(path string, opts ...Option) (*PDFData, error) {
	return extract.New(opts...).Process(path)
}

// Open opens a PDF for direct layout inspection, trying the available
// backends in order of text extraction accuracy.
func Open(path string) (*layout.Document, error) {
	return layout.Open(path)
}
