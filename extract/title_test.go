package extract_test

import (
	"testing"

	"github.com/fwojciec/pdfoutline"
	"github.com/stretchr/testify/assert"
)

func TestTitleResolution(t *testing.T) {
	t.Parallel()

	t.Run("reconstructs the title from configured fragments", func(t *testing.T) {
		t.Parallel()

		cfg := pdfoutline.DefaultConfig()
		cfg.Title.Fragments = []string{"Grant Application", "Community Library Fund"}
		cfg.Title.Repairs = nil
		doc := singlePage(append([]pdfoutline.Line{
			textLine(100, "Grant Application 2024", 24, false),
			textLine(130, "for the Community Library Fund", 24, false),
		}, bodyLines(170, 8)...)...)

		outline := extractOutline(t, cfg, doc)

		assert.Equal(t, "Grant Application 2024 for the Community Library Fund", outline.Title)
	})

	t.Run("joins fragments in configuration order", func(t *testing.T) {
		t.Parallel()

		cfg := pdfoutline.DefaultConfig()
		cfg.Title.Fragments = []string{"Alpha Part", "Beta Part"}
		cfg.Title.Repairs = nil
		doc := singlePage(append([]pdfoutline.Line{
			textLine(100, "Beta Part", 24, false),
			textLine(130, "Alpha Part", 24, false),
		}, bodyLines(170, 8)...)...)

		outline := extractOutline(t, cfg, doc)

		assert.Equal(t, "Alpha Part Beta Part", outline.Title)
	})

	t.Run("requires every fragment before assembling", func(t *testing.T) {
		t.Parallel()

		cfg := pdfoutline.DefaultConfig()
		cfg.Title.Fragments = []string{"Alpha Part", "Missing Piece"}
		doc := singlePage(append([]pdfoutline.Line{
			textLine(100, "Fund Drive Keepsake", 40, false),
			textLine(130, "Alpha Part", 10, false),
		}, bodyLines(170, 8)...)...)

		outline := extractOutline(t, cfg, doc)

		assert.Equal(t, "Fund Drive Keepsake", outline.Title)
	})

	t.Run("ignores fragment lines in the lower half", func(t *testing.T) {
		t.Parallel()

		cfg := pdfoutline.DefaultConfig()
		cfg.Title.Fragments = []string{"Alpha Part", "Beta Part"}
		doc := singlePage(append([]pdfoutline.Line{
			textLine(100, "Fund Drive Keepsake", 40, false),
			textLine(130, "Alpha Part", 10, false),
			textLine(500, "Beta Part", 10, false),
		}, bodyLines(170, 8)...)...)

		outline := extractOutline(t, cfg, doc)

		assert.Equal(t, "Fund Drive Keepsake", outline.Title)
	})

	t.Run("applies literal repairs", func(t *testing.T) {
		t.Parallel()

		cfg := pdfoutline.DefaultConfig()
		cfg.Title.Fragments = []string{"Budgett"}
		cfg.Title.Repairs = []pdfoutline.TitleRepair{{From: "Budgett", To: "Budget"}}
		doc := singlePage(append([]pdfoutline.Line{
			textLine(100, "City Budgett Plan", 24, false),
		}, bodyLines(140, 8)...)...)

		outline := extractOutline(t, cfg, doc)

		assert.Equal(t, "City Budget Plan", outline.Title)
	})

	t.Run("collapses stuttered words", func(t *testing.T) {
		t.Parallel()

		cfg := pdfoutline.DefaultConfig()
		cfg.Title.Fragments = []string{"Library Fund"}
		cfg.Title.Repairs = nil
		doc := singlePage(append([]pdfoutline.Line{
			textLine(100, "Library Library Fund Fund Drive", 24, false),
		}, bodyLines(140, 8)...)...)

		outline := extractOutline(t, cfg, doc)

		assert.Equal(t, "Library Fund Drive", outline.Title)
	})

	t.Run("collapses stuttered word pairs", func(t *testing.T) {
		t.Parallel()

		cfg := pdfoutline.DefaultConfig()
		cfg.Title.Fragments = []string{"Spring Gala"}
		cfg.Title.Repairs = nil
		doc := singlePage(append([]pdfoutline.Line{
			textLine(100, "Spring Gala Spring Gala Evening", 24, false),
		}, bodyLines(140, 8)...)...)

		outline := extractOutline(t, cfg, doc)

		assert.Equal(t, "Spring Gala Evening", outline.Title)
	})

	t.Run("falls back to the largest spans longest first", func(t *testing.T) {
		t.Parallel()

		cfg := pdfoutline.DefaultConfig()
		cfg.Title.Fragments = nil
		doc := singlePage(append([]pdfoutline.Line{
			textLine(100, "Heritage", 40, false),
			textLine(130, "Collection", 40, false),
		}, bodyLines(170, 8)...)...)

		outline := extractOutline(t, cfg, doc)

		assert.Equal(t, "Collection Heritage", outline.Title)
	})

	t.Run("deduplicates repeated fallback spans", func(t *testing.T) {
		t.Parallel()

		cfg := pdfoutline.DefaultConfig()
		cfg.Title.Fragments = nil
		doc := singlePage(append([]pdfoutline.Line{
			textLine(100, "Gala Evening", 40, false),
			textLine(130, "Gala Evening", 40, false),
		}, bodyLines(170, 8)...)...)

		outline := extractOutline(t, cfg, doc)

		assert.Equal(t, "Gala Evening", outline.Title)
	})

	t.Run("ignores empty spans in the fallback", func(t *testing.T) {
		t.Parallel()

		cfg := pdfoutline.DefaultConfig()
		cfg.Title.Fragments = nil
		doc := singlePage(append([]pdfoutline.Line{
			spanLine(100,
				pdfoutline.Span{Text: "   ", Size: 40},
				pdfoutline.Span{Text: "Gala Evening", Size: 40},
			),
		}, bodyLines(140, 8)...)...)

		outline := extractOutline(t, cfg, doc)

		assert.Equal(t, "Gala Evening", outline.Title)
	})

	t.Run("rejects short fallback titles", func(t *testing.T) {
		t.Parallel()

		cfg := pdfoutline.DefaultConfig()
		cfg.Title.Fragments = nil
		doc := singlePage(append([]pdfoutline.Line{
			textLine(100, "Memos", 40, false),
		}, bodyLines(140, 8)...)...)

		outline := extractOutline(t, cfg, doc)

		assert.Equal(t, "", outline.Title)
	})

	t.Run("rejects noise fallback titles", func(t *testing.T) {
		t.Parallel()

		cfg := pdfoutline.DefaultConfig()
		cfg.Title.Fragments = nil
		doc := singlePage(append([]pdfoutline.Line{
			textLine(100, "Page 1 of 9", 40, false),
		}, bodyLines(140, 8)...)...)

		outline := extractOutline(t, cfg, doc)

		assert.Equal(t, "", outline.Title)
	})

	t.Run("clears fallback titles containing banner phrases", func(t *testing.T) {
		t.Parallel()

		doc := singlePage(append([]pdfoutline.Line{
			textLine(100, "YOU'RE INVITED TO THE SPRING OPENING", 40, false),
		}, bodyLines(140, 8)...)...)

		outline := extractOutline(t, nil, doc)

		assert.Equal(t, "", outline.Title)
		assert.Contains(t, headingTexts(outline.Headings), "YOU'RE INVITED TO THE SPRING OPENING")
	})

	t.Run("clears fragment titles containing banner phrases", func(t *testing.T) {
		t.Parallel()

		cfg := pdfoutline.DefaultConfig()
		cfg.Title.Fragments = []string{"TRAMPOLINE"}
		doc := singlePage(append([]pdfoutline.Line{
			textLine(100, "TRAMPOLINE PARK RULES", 24, false),
		}, bodyLines(140, 8)...)...)

		outline := extractOutline(t, cfg, doc)

		assert.Equal(t, "", outline.Title)
	})
}
