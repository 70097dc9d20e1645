// Package extract implements the outline inference engine. It profiles a
// document's font styles, classifies lines as heading candidates, assigns
// heading levels, and curates the result into an Outline.
package extract

import (
	"context"
	"path/filepath"

	"github.com/fwojciec/pdfoutline"
)

// Extractor infers structured outlines from parsed documents.
type Extractor struct {
	reader pdfoutline.DocumentReader
	cfg    *pdfoutline.Config
	rules  *ruleSet
}

var _ pdfoutline.Extractor = (*Extractor)(nil)

// NewExtractor returns an Extractor that reads documents with reader and
// applies cfg. A nil cfg uses DefaultConfig. Every pattern in cfg is
// compiled once here so later extractions reuse the compiled form.
func NewExtractor(reader pdfoutline.DocumentReader, cfg *pdfoutline.Config) (*Extractor, error) {
	if cfg == nil {
		cfg = pdfoutline.DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	rules, err := compileRules(cfg)
	if err != nil {
		return nil, err
	}
	return &Extractor{reader: reader, cfg: cfg, rules: rules}, nil
}

// ExtractOutline reads the document at path and infers its outline.
func (e *Extractor) ExtractOutline(ctx context.Context, path string) (*pdfoutline.Outline, error) {
	doc, err := e.reader.ReadDocument(ctx, path)
	if err != nil {
		return nil, err
	}
	return e.ExtractDocument(ctx, doc)
}

// ExtractDocument infers an outline from an already parsed document.
// Headings are reported in reading order with 1-based logical page
// numbers. A heading repeated on the same page is emitted once.
func (e *Extractor) ExtractDocument(ctx context.Context, doc *pdfoutline.Document) (*pdfoutline.Outline, error) {
	dc := &docContext{
		profile: ProfileStyles(doc),
		offset:  e.pageOffset(doc.Path),
		seen:    make(map[headingKey]struct{}),
	}
	dc.title = e.resolveTitle(doc)

	outline := &pdfoutline.Outline{
		Title:    dc.title,
		Headings: []pdfoutline.Heading{},
	}

	for i := range doc.Pages {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		page := &doc.Pages[i]
		logical := page.Number + 1 + dc.offset
		if logical < 1 {
			continue
		}
		candidates := e.scanPage(page, logical, dc)
		outline.Headings = append(outline.Headings, e.curatePage(page, logical, candidates, dc)...)
	}

	return outline, nil
}

// docContext carries the per-document state threaded through the stages.
type docContext struct {
	profile *StyleProfile
	title   string
	offset  int
	seen    map[headingKey]struct{}
}

// headingKey identifies a heading for document-wide deduplication.
type headingKey struct {
	text  string
	level pdfoutline.Level
	page  int
}

// candidate is a classified line that has not yet passed curation.
type candidate struct {
	level pdfoutline.Level
	text  string
	page  int
	y     float64
}

// scanPage classifies every line on a page and returns the surviving
// candidates in reading order. Candidates are registered for
// deduplication as soon as they are found, so a heading dropped later by
// the per-page cap still suppresses its duplicates.
func (e *Extractor) scanPage(page *pdfoutline.Page, logical int, dc *docContext) []candidate {
	var candidates []candidate
	var prev *pdfoutline.BBox

	for i := range page.Lines {
		line := &page.Lines[i]
		bbox := line.BBox
		text := line.Text()

		skip := text == "" ||
			e.rules.isNoise(text) ||
			wordCount(text) > e.cfg.Thresholds.MaxBoldWords*2

		if !skip && len(line.Spans) > 0 {
			size := pdfoutline.RoundSize(line.Spans[0].Size)
			bold := line.Spans[0].Bold
			if e.isLikelyHeading(text, size, bold, bbox, prev, dc.profile) {
				// The document title repeats in running heads past the
				// first page. Excluded phrases are body text that the
				// style rules would otherwise pick up.
				repeatedTitle := dc.title != "" && text == dc.title && page.Number > 0
				if !repeatedTitle && !e.rules.isExcluded(text) {
					level := e.assignLevel(size, text, dc.profile)
					key := headingKey{text: text, level: level, page: logical}
					if _, seen := dc.seen[key]; !seen {
						dc.seen[key] = struct{}{}
						candidates = append(candidates, candidate{
							level: level,
							text:  text,
							page:  logical,
							y:     bbox.Y0,
						})
					}
				}
			}
		}

		prev = &bbox
	}

	return candidates
}

// pageOffset returns the shift applied to physical page numbers.
// Documents whose base name matches a cover page glob number their
// content from the second physical page.
func (e *Extractor) pageOffset(path string) int {
	base := filepath.Base(path)
	for _, glob := range e.rules.coverGlobs {
		if ok, _ := filepath.Match(glob, base); ok {
			return -1
		}
	}
	return 0
}
