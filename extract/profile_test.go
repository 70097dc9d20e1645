package extract_test

import (
	"testing"

	"github.com/fwojciec/pdfoutline"
	"github.com/fwojciec/pdfoutline/extract"
	"github.com/stretchr/testify/assert"
)

func TestProfileStyles(t *testing.T) {
	t.Parallel()

	t.Run("picks the most frequent size above six points", func(t *testing.T) {
		t.Parallel()

		profile := extract.ProfileStyles(docWithSizes(10, 10, 10, 10, 14, 14, 30))

		assert.Equal(t, 10.0, profile.DominantSize)
	})

	t.Run("skips furniture sizes for dominance", func(t *testing.T) {
		t.Parallel()

		profile := extract.ProfileStyles(docWithSizes(5.5, 5.5, 5.5, 5.5, 5.5, 9, 9, 9))

		assert.Equal(t, 9.0, profile.DominantSize)
	})

	t.Run("falls back to the most frequent size overall", func(t *testing.T) {
		t.Parallel()

		profile := extract.ProfileStyles(docWithSizes(5, 5, 5, 5, 6, 6))

		assert.Equal(t, 5.0, profile.DominantSize)
	})

	t.Run("breaks frequency ties by first appearance", func(t *testing.T) {
		t.Parallel()

		first := extract.ProfileStyles(docWithSizes(12, 12, 12, 10, 10, 10))
		second := extract.ProfileStyles(docWithSizes(10, 10, 10, 12, 12, 12))

		assert.Equal(t, 12.0, first.DominantSize)
		assert.Equal(t, 10.0, second.DominantSize)
	})

	t.Run("orders the ladder by size descending", func(t *testing.T) {
		t.Parallel()

		profile := extract.ProfileStyles(docWithSizes(10, 30, 14, 10))

		assert.Equal(t, []float64{30, 14, 10}, profile.Ladder)
	})

	t.Run("rounds sizes before counting", func(t *testing.T) {
		t.Parallel()

		profile := extract.ProfileStyles(docWithSizes(10.04, 9.96))

		assert.Equal(t, []float64{10}, profile.Ladder)
		assert.Equal(t, 10.0, profile.DominantSize)
	})

	t.Run("returns a zero profile for empty documents", func(t *testing.T) {
		t.Parallel()

		profile := extract.ProfileStyles(&pdfoutline.Document{})

		assert.Zero(t, profile.DominantSize)
		assert.Empty(t, profile.Ladder)
	})
}

func docWithSizes(sizes ...float64) *pdfoutline.Document {
	spans := make([]pdfoutline.Span, 0, len(sizes))
	for _, size := range sizes {
		spans = append(spans, pdfoutline.Span{Text: "x", Size: size})
	}
	return singlePage(spanLine(100, spans...))
}
