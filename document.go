package pdfoutline

import (
	"context"
	"math"
	"strings"
)

// BBox is an axis-aligned bounding box in page coordinates. The origin is
// the top-left corner of the page: Y0 is the top edge and Y1 the bottom
// edge, so a smaller Y0 means higher on the page. Readers normalize
// whatever coordinate system their PDF library uses into this convention.
type BBox struct {
	X0 float64 `json:"x0"`
	Y0 float64 `json:"y0"`
	X1 float64 `json:"x1"`
	Y1 float64 `json:"y1"`
}

// Union returns the smallest box containing both b and other.
func (b BBox) Union(other BBox) BBox {
	if other.X0 < b.X0 {
		b.X0 = other.X0
	}
	if other.Y0 < b.Y0 {
		b.Y0 = other.Y0
	}
	if other.X1 > b.X1 {
		b.X1 = other.X1
	}
	if other.Y1 > b.Y1 {
		b.Y1 = other.Y1
	}
	return b
}

// Span is a run of text with uniform style.
type Span struct {
	Text   string  `json:"text"`
	Size   float64 `json:"size"` // font size in points, rounded to one decimal
	Bold   bool    `json:"bold"`
	Italic bool    `json:"italic"`
	BBox   BBox    `json:"bbox"`
}

// Line is an ordered sequence of spans sharing a baseline. The first span
// carries the style used for heading classification.
type Line struct {
	Spans []Span `json:"spans"`
	BBox  BBox   `json:"bbox"`
}

// Text returns the trimmed concatenation of the line's span texts.
func (l Line) Text() string {
	var b strings.Builder
	for _, span := range l.Spans {
		b.WriteString(span.Text)
	}
	return strings.TrimSpace(b.String())
}

// Page is one page of a document. Number is the 0-based physical index;
// logical page numbering is the extractor's concern.
type Page struct {
	Number int     `json:"number"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
	Lines  []Line  `json:"lines"`
}

// Document is the position- and style-annotated text of a PDF.
type Document struct {
	Path  string `json:"path"`
	Pages []Page `json:"pages"`
}

// DocumentReader parses a PDF file into a Document.
type DocumentReader interface {
	// ReadDocument parses the PDF at path. A file with no extractable
	// text yields a document with empty pages, not an error.
	ReadDocument(ctx context.Context, path string) (*Document, error)
}

// RoundSize normalizes a font size to one decimal place. All size
// comparisons in the module operate on rounded sizes so that spans set in
// the same nominal size compare equal.
func RoundSize(size float64) float64 {
	return math.Round(size*10) / 10
}

// IsBoldFont reports whether a font name denotes a bold face.
func IsBoldFont(name string) bool {
	lower := strings.ToLower(name)
	return strings.Contains(lower, "bold") ||
		strings.Contains(lower, "black") ||
		strings.Contains(lower, "heavy")
}

// IsItalicFont reports whether a font name denotes an italic face.
func IsItalicFont(name string) bool {
	lower := strings.ToLower(name)
	return strings.Contains(lower, "italic") || strings.Contains(lower, "oblique")
}
