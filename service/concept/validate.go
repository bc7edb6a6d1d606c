package concept

import "strings"

// indicator terms that suggest a submission is a clothing concept pitch
var conceptIndicators = []string{
	"fashion", "clothing", "apparel", "design", "collection", "style",
	"fabric", "material", "trend", "season", "wear", "garment",
}

// minSlides below which a deck is considered too brief to evaluate well
const minSlides = 5

// Validation summarises whether extracted content looks like a clothing
// concept pitch and what a submitter could improve.
type Validation struct {
	IsValid         bool     `json:"is_valid"`
	ConfidenceScore float64  `json:"confidence_score"`
	FoundTerms      []string `json:"found_fashion_terms,omitempty"`
	TotalSlides     int      `json:"total_slides"`
	Recommendations []string `json:"recommendations,omitempty"`
}

// Validate scans the slide text for fashion indicator terms and produces a
// confidence score plus recommendations. It never fails; an empty Metadata
// simply validates as not a concept pitch.
func Validate(meta *Metadata) *Validation {
	result := &Validation{}
	if meta == nil {
		result.Recommendations = append(result.Recommendations,
			"Please provide valid extracted data for validation")
		return result
	}
	result.TotalSlides = meta.TotalSlides

	var all strings.Builder
	for _, slide := range meta.Slides {
		for _, text := range slide.Text {
			all.WriteString(strings.ToLower(text))
			all.WriteString(" ")
		}
	}
	allText := all.String()
	for _, indicator := range conceptIndicators {
		if strings.Contains(allText, indicator) {
			result.FoundTerms = append(result.FoundTerms, indicator)
		}
	}

	result.IsValid = len(result.FoundTerms) > 0
	result.ConfidenceScore = float64(len(result.FoundTerms)) / float64(len(conceptIndicators))

	if !result.IsValid {
		result.Recommendations = append(result.Recommendations,
			"This doesn't appear to be a clothing concept pitch. "+
				"Please ensure the presentation contains fashion or apparel-related content.")
	}
	if meta.TotalSlides < minSlides {
		result.Recommendations = append(result.Recommendations,
			"Concept pitch appears brief. Consider including more details about "+
				"design, target market, materials, and production plans.")
	}
	return result
}
