package extract

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/hsi-tools/relayspec/pkg/datasheet"
	"github.com/hsi-tools/relayspec/pkg/layout"
)

// Processor extracts structured records from single-page datasheet PDFs.
// It holds only configuration; all per-document state lives in a per-call
// context, so one Processor can be shared across goroutines processing
// different documents.
type Processor struct {
	logger      *slog.Logger
	profile     Profile
	diagramsDir string
	strategy    BulletStrategy
}

// Option configures a Processor.
type Option func(*Processor)

// WithLogger sets the logger (default slog.Default()).
func WithLogger(logger *slog.Logger) Option {
	return func(p *Processor) { p.logger = logger }
}

// WithProfile replaces the layout profile.
func WithProfile(profile Profile) Option {
	return func(p *Processor) { p.profile = profile }
}

// WithDiagramsDir sets where extracted diagrams are written
// (default "diagrams").
func WithDiagramsDir(dir string) Option {
	return func(p *Processor) { p.diagramsDir = dir }
}

// WithBulletStrategy replaces the classification used on the
// keyword-fallback bullet path.
func WithBulletStrategy(s BulletStrategy) Option {
	return func(p *Processor) { p.strategy = s }
}

// New builds a Processor with the default profile and options applied.
func New(opts ...Option) *Processor {
	p := &Processor{
		logger:      slog.Default(),
		profile:     DefaultProfile(),
		diagramsDir: "diagrams",
		strategy:    ParityStrategy(),
	}
	for _, opt := range opts {
		opt(p)
	}
	if err := p.profile.compile(); err != nil {
		p.logger.Warn("invalid model pattern, using default", "error", err)
		p.profile.ModelPattern = DefaultProfile().ModelPattern
		_ = p.profile.compile()
	}
	return p
}

// run is the per-document extraction context. Everything derived from one
// document hangs off this value and dies with the call; the processor keeps
// no document state between calls.
type run struct {
	path   string
	page   *layout.Page
	text   string
	lines  []string
	tables []layout.Table
}

// Process extracts the structured record from the first page of the PDF at
// path. An unopenable or unreadable document is fatal and returned as an
// error; every partial absence (missing section, notes, model name,
// diagram) is a zero value in the record.
func (p *Processor) Process(path string) (*datasheet.PDFData, error) {
	doc, err := layout.Open(path)
	if err != nil {
		return nil, fmt.Errorf("process: %w", err)
	}
	defer doc.Close()

	page, err := doc.Page(0)
	if err != nil {
		return nil, fmt.Errorf("process %s: %w", path, err)
	}

	r := &run{
		path:   path,
		page:   page,
		text:   page.Text(),
		lines:  page.TextLines(),
		tables: page.Tables(),
	}

	data := datasheet.NewPDFData()
	p.collectFeatureAdvantageSection(r, data)
	p.collectSpecTables(r, data)

	if notes := extractNotes(r.lines, p.profile.NotesMarker, p.profile.Bullet); len(notes) > 0 {
		data.Notes = make(map[string]string, len(notes))
		for i, note := range notes {
			data.Notes[strconv.Itoa(i+1)] = note
		}
	}

	data.ModelName = resolveModelName(r.text, filepath.Base(path), p.profile.modelRegexp())
	data.DiagramPath = extractDiagram(path, data.ModelName, p.diagramsDir, p.logger)

	p.logger.Debug("processed datasheet",
		"file", path,
		"model", data.ModelName,
		"sections", data.Sections.Len(),
		"notes", len(data.Notes))
	return data, nil
}

// ExtractFeatureSet returns only the feature/advantage split for a
// document, for callers that do not need the full record.
func (p *Processor) ExtractFeatureSet(path string) (*datasheet.FeatureSet, error) {
	doc, err := layout.Open(path)
	if err != nil {
		return nil, fmt.Errorf("extract features: %w", err)
	}
	defer doc.Close()

	page, err := doc.Page(0)
	if err != nil {
		return nil, fmt.Errorf("extract features %s: %w", path, err)
	}

	r := &run{path: path, page: page, lines: page.TextLines()}
	features, advantages := p.featuresAdvantages(r)
	return datasheet.NewFeatureSet(features, advantages, filepath.Base(path)), nil
}

// collectFeatureAdvantageSection folds the bullet lists into the
// Features_And_Advantages section with newline-joined values.
func (p *Processor) collectFeatureAdvantageSection(r *run, data *datasheet.PDFData) {
	features, advantages := p.featuresAdvantages(r)
	if len(features) == 0 && len(advantages) == 0 {
		return
	}

	section := data.Sections.Section("Features_And_Advantages")
	section.Category("Features").Set("", datasheet.SpecValue{Value: strings.Join(features, "\n")})
	section.Category("Advantages").Set("", datasheet.SpecValue{Value: strings.Join(advantages, "\n")})
}

// featuresAdvantages reads the two bounded bullet regions; when neither
// yields bullet items it falls back to the keyword-delimited region and the
// configured classification strategy.
func (p *Processor) featuresAdvantages(r *run) (features, advantages []string) {
	features = p.regionBullets(r.page, p.profile.FeaturesBox, p.profile.FeaturesHeader)
	advantages = p.regionBullets(r.page, p.profile.AdvantagesBox, p.profile.AdvantagesHeader)
	if len(features) > 0 || len(advantages) > 0 {
		return features, advantages
	}

	region := p.keywordRegion(r.lines)
	items := parseBullets(region, p.profile.Bullet, p.profile.MaxContinuationWords)
	if len(items) == 0 {
		return nil, nil
	}

	features, advantages = p.strategy.Classify(items)
	p.logger.Debug("classified bullet items",
		"strategy", p.strategy.Name(),
		"features", len(features),
		"advantages", len(advantages))
	return features, advantages
}

// regionBullets crops a bounded region, drops its header line, and parses
// the remaining lines as bullet items.
func (p *Processor) regionBullets(page *layout.Page, box Box, header string) []string {
	var kept []string
	for _, line := range page.Crop(box.bbox()).TextLines() {
		if line == "" || strings.EqualFold(line, header) {
			continue
		}
		kept = append(kept, line)
	}
	return parseBullets(kept, p.profile.Bullet, p.profile.MaxContinuationWords)
}

// keywordRegion returns the lines between the features/advantages header
// line and the first specification section header.
func (p *Processor) keywordRegion(lines []string) []string {
	start := -1
	for i, line := range lines {
		if strings.Contains(line, p.profile.FeaturesHeader) ||
			strings.Contains(line, p.profile.AdvantagesHeader) {
			start = i + 1
			break
		}
	}
	if start < 0 {
		return nil
	}

	var region []string
	for _, line := range lines[start:] {
		if strings.Contains(line, p.profile.SectionMarker) {
			break
		}
		region = append(region, line)
	}
	return region
}

// collectSpecTables maps each raw table grid to its section and folds the
// results into the record. Tables whose header row cannot be located in the
// text stream, or that resolve to no section, are skipped; partial output
// beats none.
func (p *Processor) collectSpecTables(r *run, data *datasheet.PDFData) {
	headers := findSectionHeaders(r.lines, p.profile.SectionMarker)
	positions := tableLinePositions(r.lines, r.tables)

	for i, table := range r.tables {
		pos := positions[i]
		if pos < 0 {
			p.logger.Debug("table not located in text stream, skipping", "file", r.path, "table", i)
			continue
		}

		specs := mapTableToSpecs(table.Rows, p.logger)
		if specs.Len() == 0 {
			continue
		}

		name := locateSection(headers, pos)
		if name == "" {
			p.logger.Debug("no section header for table, skipping", "file", r.path, "table", i)
			continue
		}
		if key := formatSectionName(name); key != "" {
			data.Sections.Set(key, specs)
		}
	}
}

// tableLinePositions maps each table to the line index where its first row
// appears in the text stream. Search resumes after each hit so stacked
// tables with identical headers keep distinct positions; a miss yields -1
// for that table without desynchronizing the rest.
func tableLinePositions(lines []string, tables []layout.Table) []int {
	positions := make([]int, len(tables))
	searchFrom := 0

	for i, table := range tables {
		positions[i] = -1
		if len(table.Rows) == 0 {
			continue
		}

		var cells []string
		for _, cell := range table.Rows[0] {
			if cell != "" {
				cells = append(cells, cell)
			}
		}
		if len(cells) == 0 {
			continue
		}
		needle := strings.Join(cells, " ")

		for j := searchFrom; j < len(lines); j++ {
			if strings.Contains(lines[j], needle) {
				positions[i] = j
				searchFrom = j + 1
				break
			}
		}
	}
	return positions
}
