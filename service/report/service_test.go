package report

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ChangJu-Ahn/conceptgate/internal/clock"
	"github.com/ChangJu-Ahn/conceptgate/service/concept"
)

func withFixedClock(t *testing.T, at time.Time) {
	t.Helper()
	previous := clock.NowFunc
	clock.NowFunc = func() time.Time { return at }
	t.Cleanup(func() { clock.NowFunc = previous })
}

func metadataWithElements(count int) *concept.Metadata {
	slide := &concept.Slide{Number: 1}
	for i := 0; i < count; i++ {
		slide.Elements = append(slide.Elements, fmt.Sprintf("element %d", i+1))
	}
	return &concept.Metadata{
		FileName:    "concept.pptx",
		TotalSlides: 8,
		Slides:      []*concept.Slide{slide},
		Summary:     &concept.Summary{TotalElements: count, HasDesignContent: count > 0},
	}
}

func TestRenderApproved(t *testing.T) {
	withFixedClock(t, time.Date(2026, time.March, 14, 15, 9, 26, 0, time.Local))
	svc := New()

	t.Run("lists at most ten elements", func(t *testing.T) {
		content := svc.RenderApproved(metadataWithElements(12), "market", "design", "production", "")
		assert.Contains(t, content, "10. element 10")
		assert.NotContains(t, content, "11. element 11")
		assert.NotContains(t, content, "element 12")
	})

	t.Run("placeholder replaces empty element list", func(t *testing.T) {
		content := svc.RenderApproved(metadataWithElements(0), "market", "design", "production", "")
		assert.Contains(t, content, noElementsPlaceholder)
	})

	t.Run("feedback line is optional", func(t *testing.T) {
		withNotes := svc.RenderApproved(metadataWithElements(1), "m", "d", "p", "great fit")
		assert.Contains(t, withNotes, "**Additional Notes:** great fit")

		withoutNotes := svc.RenderApproved(metadataWithElements(1), "m", "d", "p", "")
		assert.NotContains(t, withoutNotes, "**Additional Notes:**")
	})

	t.Run("carries analysis sections verbatim", func(t *testing.T) {
		content := svc.RenderApproved(metadataWithElements(1),
			"strong seasonal demand", "clean silhouette", "feasible at scale", "")
		assert.Contains(t, content, "strong seasonal demand")
		assert.Contains(t, content, "clean silhouette")
		assert.Contains(t, content, "feasible at scale")
		assert.Contains(t, content, "**Analysis Version:** "+reportTemplateVersion)
		assert.Contains(t, content, "**Decision Date:** March 14, 2026")
	})
}

func TestRenderRejected(t *testing.T) {
	withFixedClock(t, time.Date(2026, time.March, 14, 15, 9, 26, 0, time.Local))
	svc := New()
	meta := metadataWithElements(3)

	t.Run("alternatives section omitted when empty", func(t *testing.T) {
		content := svc.RenderRejected(meta, "off-season concept", "refine the palette", "")
		assert.NotContains(t, content, "Alternative Directions to Consider")
		assert.Contains(t, content, "off-season concept")
		assert.Contains(t, content, "refine the palette")
	})

	t.Run("alternatives section present when supplied", func(t *testing.T) {
		content := svc.RenderRejected(meta, "off-season concept", "", "try eco-friendly fabrics")
		assert.Contains(t, content, "### Alternative Directions to Consider")
		assert.Contains(t, content, "try eco-friendly fabrics")
	})

	t.Run("generic feedback fallback", func(t *testing.T) {
		content := svc.RenderRejected(meta, "off-season concept", "", "")
		assert.Contains(t, content, genericImprovementFeedback)
	})
}

func TestSave(t *testing.T) {
	at := time.Date(2026, time.March, 14, 15, 9, 26, 0, time.Local)
	withFixedClock(t, at)
	ctx := context.Background()

	t.Run("writes timestamped file", func(t *testing.T) {
		baseDir := t.TempDir()
		svc := New(WithBaseURL(baseDir))

		location := svc.Save(ctx, "# report body\n", "zava_approved_concept", "Concept Approval")
		expected := filepath.Join(baseDir, "zava_approved_concept_20260314_150926.md")
		assert.Equal(t, expected, location)

		data, err := os.ReadFile(expected)
		require.NoError(t, err)
		assert.Equal(t, "# report body\n", string(data))
	})

	t.Run("fault reported as value", func(t *testing.T) {
		baseDir := t.TempDir()
		blocker := filepath.Join(baseDir, "blocker")
		require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o400))

		// the destination parent is a regular file, the write must fail
		svc := New(WithBaseURL(filepath.Join(blocker, "nested")))
		result := svc.Save(ctx, "content", "zava_concept_rejection", "Concept Rejection")
		assert.Contains(t, strings.ToLower(result), "error")
		assert.Contains(t, result, "Concept Rejection")
	})
}

func TestSaveActionMethod(t *testing.T) {
	withFixedClock(t, time.Date(2026, time.March, 14, 15, 9, 26, 0, time.Local))
	baseDir := t.TempDir()
	svc := New(WithBaseURL(baseDir))

	exec, err := svc.Method("save")
	require.NoError(t, err)
	out := &SaveOutput{}
	require.NoError(t, exec(context.Background(), &SaveInput{
		Content: "letter body",
		Prefix:  "zava_concept_rejection",
		Kind:    "Concept Rejection",
	}, out))
	assert.True(t, strings.HasSuffix(out.Location, "zava_concept_rejection_20260314_150926.md"))

	_, err = svc.Method("unknown")
	assert.Error(t, err)
}
