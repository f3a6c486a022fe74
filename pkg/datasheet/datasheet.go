// Package datasheet defines the structured record extracted from a product
// datasheet: sections of categorized specification values, footnote-style
// notes, the product model name and the diagram asset path. Category and
// section insertion order is significant (downstream comparison renders
// columns in source order), so the maps here preserve it, including through
// JSON round trips.
package datasheet

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// SpecValue is one leaf measurement: a value plus an optional unit.
type SpecValue struct {
	Unit  string `json:"unit,omitempty"`
	Value string `json:"value"`
}

// Float parses the value as a number, for callers that compare numerically.
func (v SpecValue) Float() (float64, bool) {
	f, err := strconv.ParseFloat(v.Value, 64)
	return f, err == nil
}

// CategorySpec holds a category's measurements keyed by subcategory. The
// empty key means the value attaches directly to the category. Setting a
// subcategory twice keeps the last value.
type CategorySpec struct {
	Subcategories map[string]SpecValue `json:"subcategories"`
}

// NewCategorySpec returns an empty category.
func NewCategorySpec() *CategorySpec {
	return &CategorySpec{Subcategories: make(map[string]SpecValue)}
}

// Set records a value for a subcategory, overwriting any earlier one.
func (c *CategorySpec) Set(subcategory string, v SpecValue) {
	c.Subcategories[subcategory] = v
}

// SectionData is an insertion-ordered map of category name to CategorySpec.
type SectionData struct {
	order orderedKeys
	m     map[string]*CategorySpec
}

// NewSectionData returns an empty section.
func NewSectionData() *SectionData {
	return &SectionData{m: make(map[string]*CategorySpec)}
}

// Category returns the named category, creating it (and recording its
// position) on first use.
func (s *SectionData) Category(name string) *CategorySpec {
	if c, ok := s.m[name]; ok {
		return c
	}
	c := NewCategorySpec()
	s.m[name] = c
	s.order = append(s.order, name)
	return c
}

// Get looks up a category without creating it.
func (s *SectionData) Get(name string) (*CategorySpec, bool) {
	c, ok := s.m[name]
	return c, ok
}

// Names returns the category names in insertion order.
func (s *SectionData) Names() []string {
	return append([]string(nil), s.order...)
}

// Len returns the number of categories.
func (s *SectionData) Len() int {
	return len(s.order)
}

// MarshalJSON emits {"categories": {...}} with categories in insertion order.
func (s *SectionData) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString(`{"categories":`)
	if err := writeOrderedObject(&buf, s.order, func(name string) (any, error) {
		return s.m[name], nil
	}); err != nil {
		return nil, err
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON restores the section, keeping the categories' source order.
func (s *SectionData) UnmarshalJSON(data []byte) error {
	s.order = nil
	s.m = make(map[string]*CategorySpec)
	return readOrderedObject(data, "categories", func(name string, raw json.RawMessage) error {
		c := NewCategorySpec()
		if err := json.Unmarshal(raw, c); err != nil {
			return err
		}
		s.m[name] = c
		s.order = append(s.order, name)
		return nil
	})
}

// Sections is an insertion-ordered map of section name to SectionData.
type Sections struct {
	order orderedKeys
	m     map[string]*SectionData
}

// NewSections returns an empty section collection.
func NewSections() *Sections {
	return &Sections{m: make(map[string]*SectionData)}
}

// Section returns the named section, creating it on first use.
func (s *Sections) Section(name string) *SectionData {
	if sd, ok := s.m[name]; ok {
		return sd
	}
	sd := NewSectionData()
	s.m[name] = sd
	s.order = append(s.order, name)
	return sd
}

// Set stores a prebuilt section under a name, replacing any earlier one
// while keeping its original position.
func (s *Sections) Set(name string, sd *SectionData) {
	if _, ok := s.m[name]; !ok {
		s.order = append(s.order, name)
	}
	s.m[name] = sd
}

// Get looks up a section without creating it.
func (s *Sections) Get(name string) (*SectionData, bool) {
	sd, ok := s.m[name]
	return sd, ok
}

// Names returns the section names in insertion order.
func (s *Sections) Names() []string {
	return append([]string(nil), s.order...)
}

// Len returns the number of sections.
func (s *Sections) Len() int {
	return len(s.order)
}

// MarshalJSON emits the sections as one JSON object in insertion order.
func (s *Sections) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	if err := writeOrderedObject(&buf, s.order, func(name string) (any, error) {
		return s.m[name], nil
	}); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// UnmarshalJSON restores the collection in source order.
func (s *Sections) UnmarshalJSON(data []byte) error {
	s.order = nil
	s.m = make(map[string]*SectionData)
	return readOrderedObject(data, "", func(name string, raw json.RawMessage) error {
		sd := NewSectionData()
		if err := json.Unmarshal(raw, sd); err != nil {
			return err
		}
		s.m[name] = sd
		s.order = append(s.order, name)
		return nil
	})
}

// PDFData is the complete record extracted from one datasheet. It is
// produced whole or not at all; absence of a part (notes, diagram, model
// name) is a zero value, never an error.
type PDFData struct {
	ModelName   string            `json:"model_name"`
	Sections    *Sections         `json:"sections"`
	Notes       map[string]string `json:"notes,omitempty"`
	DiagramPath string            `json:"diagram_path,omitempty"`
}

// NewPDFData returns an empty record with initialized sections.
func NewPDFData() *PDFData {
	return &PDFData{Sections: NewSections()}
}

type orderedKeys []string

// writeOrderedObject writes a JSON object whose keys appear in the given
// order. encoding/json would sort map keys, losing source order.
func writeOrderedObject(buf *bytes.Buffer, keys orderedKeys, value func(string) (any, error)) error {
	buf.WriteByte('{')
	for i, key := range keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, err := json.Marshal(key)
		if err != nil {
			return err
		}
		buf.Write(k)
		buf.WriteByte(':')
		v, err := value(key)
		if err != nil {
			return err
		}
		encoded, err := json.Marshal(v)
		if err != nil {
			return err
		}
		buf.Write(encoded)
	}
	buf.WriteByte('}')
	return nil
}

// readOrderedObject walks a JSON object's keys in source order. When wrapper
// is non-empty the object is nested one level down under that key.
func readOrderedObject(data []byte, wrapper string, visit func(string, json.RawMessage) error) error {
	if wrapper != "" {
		var outer map[string]json.RawMessage
		if err := json.Unmarshal(data, &outer); err != nil {
			return err
		}
		inner, ok := outer[wrapper]
		if !ok {
			return fmt.Errorf("missing %q object", wrapper)
		}
		data = inner
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("expected JSON object, got %v", tok)
	}

	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := keyTok.(string)
		if !ok {
			return fmt.Errorf("expected object key, got %v", keyTok)
		}
		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return err
		}
		if err := visit(key, raw); err != nil {
			return err
		}
	}
	_, err = dec.Token() // closing brace
	return err
}
