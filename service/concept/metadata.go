package concept

import (
	"encoding/json"
	"fmt"
)

// Metadata describes a concept submission after the upstream deck parser has
// extracted it. The JSON tags follow the extraction schema emitted by the
// parsing stage so that payloads can be decoded without translation.
type Metadata struct {
	FileName    string   `json:"concept_file_name"`
	TotalSlides int      `json:"total_slides"`
	ConceptType string   `json:"concept_type,omitempty"`
	Slides      []*Slide `json:"slides,omitempty"`
	Summary     *Summary `json:"concept_summary,omitempty"`
}

// Slide holds the textual content of a single presentation slide.
type Slide struct {
	Number   int      `json:"slide_number"`
	Text     []string `json:"text_content,omitempty"`
	Elements []string `json:"concept_elements,omitempty"`
}

// Summary aggregates the concept elements found across all slides.
type Summary struct {
	TotalElements    int  `json:"total_concept_elements"`
	HasDesignContent bool `json:"has_design_content"`
}

// Elements returns all concept elements across slides, in slide order.
func (m *Metadata) Elements() []string {
	if m == nil {
		return nil
	}
	var out []string
	for _, slide := range m.Slides {
		out = append(out, slide.Elements...)
	}
	return out
}

// ElementCount returns the summary element count, falling back to the
// flattened slide elements when no summary is present.
func (m *Metadata) ElementCount() int {
	if m == nil {
		return 0
	}
	if m.Summary != nil {
		return m.Summary.TotalElements
	}
	return len(m.Elements())
}

// extraction payloads report parser failures in-band
type extractionError struct {
	Error     string `json:"error"`
	ErrorType string `json:"error_type,omitempty"`
}

// Parse decodes extraction JSON into Metadata. Error objects produced by the
// upstream parser ({"error": ...}) surface as Go errors.
func Parse(data []byte) (*Metadata, error) {
	var failure extractionError
	if err := json.Unmarshal(data, &failure); err == nil && failure.Error != "" {
		return nil, fmt.Errorf("concept extraction failed: %s", failure.Error)
	}
	meta := &Metadata{}
	if err := json.Unmarshal(data, meta); err != nil {
		return nil, fmt.Errorf("failed to decode concept metadata: %w", err)
	}
	if meta.Summary == nil {
		elements := meta.Elements()
		meta.Summary = &Summary{
			TotalElements:    len(elements),
			HasDesignContent: len(elements) > 0,
		}
	}
	return meta, nil
}
