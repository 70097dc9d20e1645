package pdfoutline_test

import (
	"testing"

	"github.com/fwojciec/pdfoutline"
	"github.com/stretchr/testify/assert"
)

func TestFormatOutline(t *testing.T) {
	t.Parallel()

	t.Run("renders title and indented headings", func(t *testing.T) {
		t.Parallel()

		o := &pdfoutline.Outline{
			Title: "Request for Proposal",
			Headings: []pdfoutline.Heading{
				{Level: pdfoutline.Level1, Text: "Ontario’s Digital Library", Page: 1},
				{Level: pdfoutline.Level2, Text: "Summary", Page: 2},
				{Level: pdfoutline.Level3, Text: "Milestones", Page: 3},
			},
		}

		out := pdfoutline.FormatOutline(o)

		assert.Contains(t, out, "Title: Request for Proposal")
		assert.Contains(t, out, "H1")
		assert.Contains(t, out, "Ontario’s Digital Library")
		assert.Contains(t, out, "  Summary")
		assert.Contains(t, out, "    Milestones")
	})

	t.Run("empty outline", func(t *testing.T) {
		t.Parallel()

		out := pdfoutline.FormatOutline(&pdfoutline.Outline{})

		assert.Contains(t, out, "Title: (untitled)")
		assert.Contains(t, out, "No headings detected.")
	})

	t.Run("includes error line for failed documents", func(t *testing.T) {
		t.Parallel()

		out := pdfoutline.FormatOutline(&pdfoutline.Outline{Err: "not a PDF"})

		assert.Contains(t, out, "Error: not a PDF")
	})
}
