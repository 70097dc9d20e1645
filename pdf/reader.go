// Package pdf reads PDF files into position- and style-annotated documents
// using github.com/ledongthuc/pdf.
package pdf

import (
	"context"
	"os"
	"sort"
	"strings"

	pdflib "github.com/ledongthuc/pdf"

	"github.com/fwojciec/pdfoutline"
)

// Fallback page dimensions (US Letter, in points) for pages without a
// usable MediaBox.
const (
	letterWidth  = 612.0
	letterHeight = 792.0
)

// rowTolerance is the maximum baseline distance, in points, between text
// runs that still share a line.
const rowTolerance = 3.0

// wordGapRatio is the fraction of the font size beyond which a horizontal
// gap between runs is read as a word boundary.
const wordGapRatio = 0.3

// Compile-time interface verification.
var _ pdfoutline.DocumentReader = (*Reader)(nil)

// Reader implements pdfoutline.DocumentReader for PDF files on disk.
type Reader struct{}

// NewReader creates a new Reader.
func NewReader() *Reader {
	return &Reader{}
}

// ReadDocument parses the PDF at path into a Document. Pages keep their
// physical order; text runs are regrouped into top-to-bottom lines with
// style information derived from font names. Pages without extractable
// text come back empty rather than failing the document.
func (r *Reader) ReadDocument(ctx context.Context, path string) (*pdfoutline.Document, error) {
	f, reader, err := pdflib.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, pdfoutline.Errorf(pdfoutline.ENOTFOUND, "pdf file not found: %s", path)
		}
		return nil, pdfoutline.Errorf(pdfoutline.EINVALID, "cannot read pdf %s: %v", path, err)
	}
	defer f.Close()

	doc := &pdfoutline.Document{Path: path}
	numPages := reader.NumPage()
	for i := 1; i <= numPages; i++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		page := reader.Page(i)
		p := pdfoutline.Page{Number: i - 1}
		p.Width, p.Height = pageSize(page)
		if !page.V.IsNull() {
			p.Lines = buildLines(pageTexts(page), p.Height)
		}
		doc.Pages = append(doc.Pages, p)
	}
	return doc, nil
}

// pageTexts returns the positioned text runs of a page. The underlying
// library panics on some malformed content streams; such pages are treated
// as having no text.
func pageTexts(page pdflib.Page) (texts []pdflib.Text) {
	defer func() {
		if recover() != nil {
			texts = nil
		}
	}()
	return page.Content().Text
}

// pageSize returns the page dimensions in points. The MediaBox may live on
// the page itself or on an ancestor in the page tree; a missing or
// malformed box falls back to US Letter.
func pageSize(page pdflib.Page) (width, height float64) {
	box := findMediaBox(page.V)
	if box.Kind() != pdflib.Array || box.Len() != 4 {
		return letterWidth, letterHeight
	}

	coords := make([]float64, 4)
	for i := range coords {
		v, ok := numericValue(box.Index(i))
		if !ok {
			return letterWidth, letterHeight
		}
		coords[i] = v
	}

	width = coords[2] - coords[0]
	height = coords[3] - coords[1]
	if width <= 0 || height <= 0 {
		return letterWidth, letterHeight
	}
	return width, height
}

// findMediaBox walks from a page dictionary up the page tree until it finds
// a MediaBox entry. The depth limit guards against cyclic Parent chains.
func findMediaBox(v pdflib.Value) pdflib.Value {
	for depth := 0; depth < 32 && !v.IsNull(); depth++ {
		if box := v.Key("MediaBox"); !box.IsNull() {
			return box
		}
		v = v.Key("Parent")
	}
	return pdflib.Value{}
}

func numericValue(v pdflib.Value) (float64, bool) {
	switch v.Kind() {
	case pdflib.Integer:
		return float64(v.Int64()), true
	case pdflib.Real:
		return v.Float64(), true
	}
	return 0, false
}

// buildLines regroups raw text runs into lines ordered top to bottom. Runs
// whose baselines fall within rowTolerance of each other share a line; Y
// coordinates flip from the PDF's bottom-origin space to top-origin page
// coordinates.
func buildLines(texts []pdflib.Text, pageHeight float64) []pdfoutline.Line {
	rows := groupRows(texts)

	lines := make([]pdfoutline.Line, 0, len(rows))
	for _, row := range rows {
		spans := rowSpans(row, pageHeight)
		if len(spans) == 0 {
			continue
		}
		line := pdfoutline.Line{Spans: spans, BBox: spans[0].BBox}
		for _, span := range spans[1:] {
			line.BBox = line.BBox.Union(span.BBox)
		}
		lines = append(lines, line)
	}
	return lines
}

// groupRows buckets text runs by baseline. A run joins a bucket when its Y
// falls within rowTolerance of the bucket's range; buckets are then ordered
// top of page first. Higher Y means higher on the page in PDF user space.
func groupRows(texts []pdflib.Text) [][]pdflib.Text {
	if len(texts) == 0 {
		return nil
	}

	type bucket struct {
		yMin, yMax float64
		texts      []pdflib.Text
	}

	var buckets []bucket
	for _, t := range texts {
		if t.S == "" {
			continue
		}
		placed := false
		for i := range buckets {
			if t.Y >= buckets[i].yMin-rowTolerance && t.Y <= buckets[i].yMax+rowTolerance {
				buckets[i].texts = append(buckets[i].texts, t)
				if t.Y < buckets[i].yMin {
					buckets[i].yMin = t.Y
				}
				if t.Y > buckets[i].yMax {
					buckets[i].yMax = t.Y
				}
				placed = true
				break
			}
		}
		if !placed {
			buckets = append(buckets, bucket{yMin: t.Y, yMax: t.Y, texts: []pdflib.Text{t}})
		}
	}

	sort.SliceStable(buckets, func(i, j int) bool {
		return buckets[i].yMax > buckets[j].yMax
	})

	rows := make([][]pdflib.Text, len(buckets))
	for i, b := range buckets {
		rows[i] = b.texts
	}
	return rows
}

// rowSpans orders a row's runs left to right and merges them into spans of
// uniform style. A horizontal gap wider than wordGapRatio of the font size
// becomes a space, so words split across runs reassemble with their
// separators intact.
func rowSpans(row []pdflib.Text, pageHeight float64) []pdfoutline.Span {
	sort.SliceStable(row, func(i, j int) bool {
		return row[i].X < row[j].X
	})

	var spans []pdfoutline.Span
	var text strings.Builder
	var style pdflib.Text
	var x0, x1 float64
	open := false

	flush := func() {
		if !open {
			return
		}
		spans = append(spans, pdfoutline.Span{
			Text:   text.String(),
			Size:   pdfoutline.RoundSize(style.FontSize),
			Bold:   pdfoutline.IsBoldFont(style.Font),
			Italic: pdfoutline.IsItalicFont(style.Font),
			BBox: pdfoutline.BBox{
				X0: x0,
				Y0: pageHeight - style.Y - style.FontSize,
				X1: x1,
				Y1: pageHeight - style.Y,
			},
		})
		text.Reset()
		open = false
	}

	for _, t := range row {
		gap := t.X - x1
		if open && t.Font == style.Font && t.FontSize == style.FontSize {
			if gap > wordGapRatio*t.FontSize {
				text.WriteByte(' ')
			}
			text.WriteString(t.S)
			if t.X+t.W > x1 {
				x1 = t.X + t.W
			}
			continue
		}

		if open && gap > wordGapRatio*style.FontSize {
			text.WriteByte(' ')
		}
		flush()
		style = t
		x0 = t.X
		x1 = t.X + t.W
		open = true
		text.WriteString(t.S)
	}
	flush()
	return spans
}
