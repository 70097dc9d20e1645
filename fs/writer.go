// Package fs provides file-based storage for extraction results.
package fs

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/fwojciec/pdfoutline"
)

// OutlineFileName derives the output file name for a source document.
// Example: /input/report.pdf → report.json
func OutlineFileName(sourcePath string) string {
	base := filepath.Base(sourcePath)
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	return stem + ".json"
}

// EncodeOutline renders an outline as indented JSON. A nil Headings slice
// encodes as an empty array so the output always carries an "outline" key.
func EncodeOutline(outline *pdfoutline.Outline) ([]byte, error) {
	if outline == nil {
		return nil, pdfoutline.Errorf(pdfoutline.EINVALID, "outline is required")
	}

	o := *outline
	if o.Headings == nil {
		o.Headings = []pdfoutline.Heading{}
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "    ")
	if err := enc.Encode(&o); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Ensure Writer implements pdfoutline.OutlineWriter at compile time.
var _ pdfoutline.OutlineWriter = (*Writer)(nil)

// Writer writes outlines as JSON files to a directory.
type Writer struct {
	baseDir string
}

// NewWriter creates a new Writer that writes to the given base directory.
func NewWriter(baseDir string) *Writer {
	return &Writer{baseDir: baseDir}
}

// WriteOutline writes an outline to disk, named after the source document.
func (w *Writer) WriteOutline(ctx context.Context, sourcePath string, outline *pdfoutline.Outline) error {
	data, err := EncodeOutline(outline)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(w.baseDir, 0755); err != nil {
		return err
	}

	fullPath := filepath.Join(w.baseDir, OutlineFileName(sourcePath))
	return os.WriteFile(fullPath, data, 0644)
}
