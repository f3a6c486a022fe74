// Package extract reconstructs a structured datasheet record from a
// single-page PDF: specification tables grouped by section, bullet-style
// feature/advantage lists, footnote notes, the product model name and the
// embedded product diagram.
package extract

import (
	"fmt"
	"os"
	"regexp"

	"gopkg.in/yaml.v3"

	"github.com/hsi-tools/relayspec/pkg/layout"
)

// Box is a page region in top-left-origin coordinates.
type Box struct {
	X0 float64 `yaml:"x0"`
	Y0 float64 `yaml:"y0"`
	X1 float64 `yaml:"x1"`
	Y1 float64 `yaml:"y1"`
}

func (b Box) bbox() layout.BoundingBox {
	return layout.BoundingBox{X0: b.X0, Y0: b.Y0, X1: b.X1, Y1: b.Y1}
}

// Profile holds the lexical markers and page geometry that drive extraction
// for one datasheet template. The zero value is unusable; start from
// DefaultProfile and override fields, or load overrides from YAML.
type Profile struct {
	// SectionMarker identifies specification section header lines.
	SectionMarker string `yaml:"section_marker"`
	// NotesMarker identifies the line that opens the notes block.
	NotesMarker string `yaml:"notes_marker"`
	// Bullet is the glyph that delimits feature/advantage items.
	Bullet string `yaml:"bullet"`
	// FeaturesHeader and AdvantagesHeader are the text markers for the two
	// bullet lists, used to drop header lines from bounded regions and to
	// find the region on the keyword-fallback path.
	FeaturesHeader   string `yaml:"features_header"`
	AdvantagesHeader string `yaml:"advantages_header"`
	// ModelPattern captures the model code (first group) after the
	// product-family prefix.
	ModelPattern string `yaml:"model_pattern"`
	// FeaturesBox and AdvantagesBox bound the two bullet regions.
	FeaturesBox   Box `yaml:"features_box"`
	AdvantagesBox Box `yaml:"advantages_box"`
	// MaxContinuationWords is the word limit under which a line following a
	// bullet line is merged into it as a wrapped continuation.
	MaxContinuationWords int `yaml:"max_continuation_words"`

	modelRe *regexp.Regexp
}

// DefaultProfile returns the profile for the observed
// "Features | Advantages | Electrical | Magnetic | Physical | Notes"
// template.
func DefaultProfile() Profile {
	return Profile{
		SectionMarker:        "Specifications",
		NotesMarker:          "Notes:",
		Bullet:               "•",
		FeaturesHeader:       "Features",
		AdvantagesHeader:     "Advantages",
		ModelPattern:         `HSR-(\d+[RFW]?)`,
		FeaturesBox:          Box{X0: 0, Y0: 120, X1: 295, Y1: 210},
		AdvantagesBox:        Box{X0: 300, Y0: 120, X1: 610, Y1: 210},
		MaxContinuationWords: 2,
	}
}

// LoadProfile reads a YAML profile file, applying its fields on top of the
// defaults so partial overrides are enough.
func LoadProfile(path string) (Profile, error) {
	p := DefaultProfile()
	data, err := os.ReadFile(path)
	if err != nil {
		return p, fmt.Errorf("read profile: %w", err)
	}
	if err := yaml.Unmarshal(data, &p); err != nil {
		return p, fmt.Errorf("parse profile %s: %w", path, err)
	}
	if err := p.compile(); err != nil {
		return p, err
	}
	return p, nil
}

// compile validates the model pattern and caches the compiled regexp.
func (p *Profile) compile() error {
	re, err := regexp.Compile("(?i)" + p.ModelPattern)
	if err != nil {
		return fmt.Errorf("model pattern %q: %w", p.ModelPattern, err)
	}
	p.modelRe = re
	return nil
}

func (p *Profile) modelRegexp() *regexp.Regexp {
	if p.modelRe == nil {
		if err := p.compile(); err != nil {
			// Fall back to the default family pattern rather than panic;
			// a broken override just stops matching custom models.
			p.modelRe = regexp.MustCompile(`(?i)HSR-(\d+[RFW]?)`)
		}
	}
	return p.modelRe
}
