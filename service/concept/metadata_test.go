package concept

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParse(t *testing.T) {
	type testCase struct {
		name             string
		data             string
		expectError      bool
		expectedElements []string
		expectedCount    int
	}

	cases := []testCase{
		{
			name: "full extraction payload",
			data: `{
				"concept_file_name": "summer_line.pptx",
				"total_slides": 6,
				"concept_type": "clothing_design_pitch",
				"slides": [
					{"slide_number": 1, "text_content": ["Summer collection"], "concept_elements": ["linen fabric", "pastel colors"]},
					{"slide_number": 2, "text_content": ["Target market"], "concept_elements": ["seasonal trend"]}
				],
				"concept_summary": {"total_concept_elements": 3, "has_design_content": true}
			}`,
			expectedElements: []string{"linen fabric", "pastel colors", "seasonal trend"},
			expectedCount:    3,
		},
		{
			name:          "missing summary is derived from slides",
			data:          `{"concept_file_name": "x.pptx", "total_slides": 1, "slides": [{"slide_number": 1, "concept_elements": ["wool blend"]}]}`,
			expectedCount: 1,
			expectedElements: []string{
				"wool blend",
			},
		},
		{
			name:        "parser error object",
			data:        `{"error": "Clothing concept file not found: x.pptx"}`,
			expectError: true,
		},
		{
			name:        "malformed payload",
			data:        `{"total_slides": "not-a-number"}`,
			expectError: true,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			meta, err := Parse([]byte(tc.data))
			if tc.expectError {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tc.expectedElements, meta.Elements())
			assert.Equal(t, tc.expectedCount, meta.ElementCount())
		})
	}
}

func TestValidate(t *testing.T) {
	meta := &Metadata{
		FileName:    "concept.pptx",
		TotalSlides: 3,
		Slides: []*Slide{
			{Number: 1, Text: []string{"A new fashion collection with sustainable fabric"}},
		},
	}
	result := Validate(meta)
	assert.True(t, result.IsValid)
	assert.Contains(t, result.FoundTerms, "fashion")
	assert.Contains(t, result.FoundTerms, "fabric")
	assert.True(t, result.ConfidenceScore > 0)
	// brief deck triggers a recommendation
	assert.Len(t, result.Recommendations, 1)

	empty := Validate(&Metadata{FileName: "plain.pptx", TotalSlides: 10})
	assert.False(t, empty.IsValid)
	assert.NotEmpty(t, empty.Recommendations)
}
