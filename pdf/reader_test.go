package pdf_test

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fwojciec/pdfoutline"
	"github.com/fwojciec/pdfoutline/pdf"
)

func TestReader_ReadDocument(t *testing.T) {
	t.Parallel()

	t.Run("reads lines with position and style", func(t *testing.T) {
		t.Parallel()

		path := singlePagePDF(t,
			pdfText{font: "F2", size: 24, x: 72, y: 700, s: "Annual Report"},
			pdfText{font: "F1", size: 10, x: 72, y: 660, s: "The figures improved."},
		)

		doc, err := pdf.NewReader().ReadDocument(context.Background(), path)

		require.NoError(t, err)
		require.Len(t, doc.Pages, 1)
		page := doc.Pages[0]
		assert.Equal(t, 0, page.Number)
		assert.Equal(t, 612.0, page.Width)
		assert.Equal(t, 792.0, page.Height)
		require.Len(t, page.Lines, 2)

		heading := page.Lines[0]
		assert.Equal(t, "Annual Report", heading.Text())
		require.NotEmpty(t, heading.Spans)
		assert.Equal(t, 24.0, heading.Spans[0].Size)
		assert.True(t, heading.Spans[0].Bold)
		assert.InDelta(t, 68.0, heading.BBox.Y0, 0.1)
		assert.InDelta(t, 92.0, heading.BBox.Y1, 0.1)

		body := page.Lines[1]
		assert.Equal(t, "The figures improved.", body.Text())
		require.NotEmpty(t, body.Spans)
		assert.Equal(t, 10.0, body.Spans[0].Size)
		assert.False(t, body.Spans[0].Bold)
	})

	t.Run("merges runs on one baseline into a single line", func(t *testing.T) {
		t.Parallel()

		path := singlePagePDF(t,
			pdfText{font: "F2", size: 11, x: 72, y: 700, s: "3.1"},
			pdfText{font: "F1", size: 11, x: 200, y: 700, s: "Lending policies"},
		)

		doc, err := pdf.NewReader().ReadDocument(context.Background(), path)

		require.NoError(t, err)
		require.Len(t, doc.Pages, 1)
		require.Len(t, doc.Pages[0].Lines, 1)

		line := doc.Pages[0].Lines[0]
		assert.Equal(t, "3.1 Lending policies", line.Text())
		require.Len(t, line.Spans, 2)
		assert.Equal(t, "3.1", strings.TrimSpace(line.Spans[0].Text))
		assert.True(t, line.Spans[0].Bold)
		assert.Equal(t, "Lending policies", strings.TrimSpace(line.Spans[1].Text))
		assert.False(t, line.Spans[1].Bold)
	})

	t.Run("keeps reading order top to bottom", func(t *testing.T) {
		t.Parallel()

		// The content stream draws the bottom line first.
		path := singlePagePDF(t,
			pdfText{font: "F1", size: 10, x: 72, y: 100, s: "Closing remarks"},
			pdfText{font: "F1", size: 10, x: 72, y: 700, s: "Opening remarks"},
		)

		doc, err := pdf.NewReader().ReadDocument(context.Background(), path)

		require.NoError(t, err)
		require.Len(t, doc.Pages, 1)
		require.Len(t, doc.Pages[0].Lines, 2)
		assert.Equal(t, "Opening remarks", doc.Pages[0].Lines[0].Text())
		assert.Equal(t, "Closing remarks", doc.Pages[0].Lines[1].Text())
		assert.Less(t, doc.Pages[0].Lines[0].BBox.Y0, doc.Pages[0].Lines[1].BBox.Y0)
	})

	t.Run("multiple pages keep physical numbering", func(t *testing.T) {
		t.Parallel()

		pageObj := func(contents int) string {
			return fmt.Sprintf("<< /Type /Page /Parent 2 0 R /Resources << /Font << /F1 6 0 R >> >> /Contents %d 0 R >>", contents)
		}
		path := writePDF(t,
			"<< /Type /Catalog /Pages 2 0 R >>",
			"<< /Type /Pages /Kids [3 0 R 4 0 R 5 0 R] /Count 3 /MediaBox [0 0 612 792] >>",
			pageObj(7),
			pageObj(8),
			pageObj(9),
			helvetica,
			streamObj("BT /F1 12 Tf 1 0 0 1 72 700 Tm (First things) Tj ET\n"),
			streamObj("BT /F1 12 Tf 1 0 0 1 72 700 Tm (Second things) Tj ET\n"),
			streamObj("BT /F1 12 Tf 1 0 0 1 72 700 Tm (Third things) Tj ET\n"),
		)

		doc, err := pdf.NewReader().ReadDocument(context.Background(), path)

		require.NoError(t, err)
		require.Len(t, doc.Pages, 3)
		want := []string{"First things", "Second things", "Third things"}
		for i, page := range doc.Pages {
			assert.Equal(t, i, page.Number)
			assert.Equal(t, 612.0, page.Width)
			assert.Equal(t, 792.0, page.Height)
			require.Len(t, page.Lines, 1)
			assert.Equal(t, want[i], page.Lines[0].Text())
		}
	})

	t.Run("inherits media box from the page tree", func(t *testing.T) {
		t.Parallel()

		path := writePDF(t,
			"<< /Type /Catalog /Pages 2 0 R >>",
			"<< /Type /Pages /Kids [3 0 R] /Count 1 /MediaBox [0 0 400 500] >>",
			"<< /Type /Page /Parent 2 0 R /Resources << /Font << /F1 4 0 R >> >> /Contents 5 0 R >>",
			helvetica,
			streamObj("BT /F1 12 Tf 1 0 0 1 72 450 Tm (Pocket guide) Tj ET\n"),
		)

		doc, err := pdf.NewReader().ReadDocument(context.Background(), path)

		require.NoError(t, err)
		require.Len(t, doc.Pages, 1)
		assert.Equal(t, 400.0, doc.Pages[0].Width)
		assert.Equal(t, 500.0, doc.Pages[0].Height)
		require.Len(t, doc.Pages[0].Lines, 1)
		assert.InDelta(t, 38.0, doc.Pages[0].Lines[0].BBox.Y0, 0.1)
	})

	t.Run("malformed media box falls back to letter", func(t *testing.T) {
		t.Parallel()

		path := writePDF(t,
			"<< /Type /Catalog /Pages 2 0 R >>",
			"<< /Type /Pages /Kids [3 0 R] /Count 1 >>",
			"<< /Type /Page /Parent 2 0 R /MediaBox [0 0 612] /Resources << /Font << /F1 4 0 R >> >> /Contents 5 0 R >>",
			helvetica,
			streamObj("BT /F1 12 Tf 1 0 0 1 72 700 Tm (Untitled draft) Tj ET\n"),
		)

		doc, err := pdf.NewReader().ReadDocument(context.Background(), path)

		require.NoError(t, err)
		require.Len(t, doc.Pages, 1)
		assert.Equal(t, 612.0, doc.Pages[0].Width)
		assert.Equal(t, 792.0, doc.Pages[0].Height)
	})

	t.Run("page without text yields empty lines", func(t *testing.T) {
		t.Parallel()

		path := singlePagePDF(t)

		doc, err := pdf.NewReader().ReadDocument(context.Background(), path)

		require.NoError(t, err)
		require.Len(t, doc.Pages, 1)
		assert.Empty(t, doc.Pages[0].Lines)
	})

	t.Run("missing file returns not found", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "missing.pdf")

		_, err := pdf.NewReader().ReadDocument(context.Background(), path)

		require.Error(t, err)
		assert.Equal(t, pdfoutline.ENOTFOUND, pdfoutline.ErrorCode(err))
	})

	t.Run("unparseable file returns invalid", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "broken.pdf")
		require.NoError(t, os.WriteFile(path, []byte("this is not a pdf"), 0o644))

		_, err := pdf.NewReader().ReadDocument(context.Background(), path)

		require.Error(t, err)
		assert.Equal(t, pdfoutline.EINVALID, pdfoutline.ErrorCode(err))
	})

	t.Run("cancelled context stops reading", func(t *testing.T) {
		t.Parallel()

		path := singlePagePDF(t,
			pdfText{font: "F1", size: 12, x: 72, y: 700, s: "Steering committee"},
		)
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := pdf.NewReader().ReadDocument(ctx, path)

		require.ErrorIs(t, err, context.Canceled)
	})
}

const (
	helvetica     = "<< /Type /Font /Subtype /Type1 /BaseFont /Helvetica >>"
	helveticaBold = "<< /Type /Font /Subtype /Type1 /BaseFont /Helvetica-Bold >>"
)

// pdfText is one text-showing statement in a test document's content
// stream. The font names F1 (regular) and F2 (bold) are fixed by
// singlePagePDF's resource dictionary.
type pdfText struct {
	font string
	size float64
	x, y float64
	s    string
}

// singlePagePDF writes a one-page letter-sized PDF that draws each given
// text at its position and returns the file path.
func singlePagePDF(t *testing.T, texts ...pdfText) string {
	t.Helper()

	var content strings.Builder
	for _, tx := range texts {
		fmt.Fprintf(&content, "BT /%s %g Tf 1 0 0 1 %g %g Tm (%s) Tj ET\n", tx.font, tx.size, tx.x, tx.y, tx.s)
	}
	return writePDF(t,
		"<< /Type /Catalog /Pages 2 0 R >>",
		"<< /Type /Pages /Kids [3 0 R] /Count 1 >>",
		"<< /Type /Page /Parent 2 0 R /MediaBox [0 0 612 792] /Resources << /Font << /F1 4 0 R /F2 5 0 R >> >> /Contents 6 0 R >>",
		helvetica,
		helveticaBold,
		streamObj(content.String()),
	)
}

// writePDF lays the given objects out as a minimal PDF file and returns
// its path. Objects are numbered from 1 in the order given and the first
// must be the document catalog; offsets in the cross-reference table are
// computed while writing so the file is consistent by construction.
func writePDF(t *testing.T, objects ...string) string {
	t.Helper()

	var buf bytes.Buffer
	buf.WriteString("%PDF-1.4\n")
	offsets := make([]int, 0, len(objects))
	for i, obj := range objects {
		offsets = append(offsets, buf.Len())
		fmt.Fprintf(&buf, "%d 0 obj\n%s\nendobj\n", i+1, obj)
	}
	start := buf.Len()
	fmt.Fprintf(&buf, "xref\n0 %d\n", len(objects)+1)
	buf.WriteString("0000000000 65535 f \n")
	for _, off := range offsets {
		fmt.Fprintf(&buf, "%010d 00000 n \n", off)
	}
	fmt.Fprintf(&buf, "trailer\n<< /Size %d /Root 1 0 R >>\nstartxref\n%d\n%%%%EOF\n", len(objects)+1, start)

	path := filepath.Join(t.TempDir(), "doc.pdf")
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0o644))
	return path
}

// streamObj wraps a content stream body in a stream object carrying its
// length.
func streamObj(body string) string {
	return fmt.Sprintf("<< /Length %d >>\nstream\n%s\nendstream", len(body), body)
}
