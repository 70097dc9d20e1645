package extract

import (
	"math"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/fwojciec/pdfoutline"
)

// curatePage orders a page's candidates by level rank and vertical
// position, applies the per-page cap, and falls back to the single most
// prominent line when the page produced no candidates at all. Fallback
// headings are not registered for deduplication and may repeat across
// pages.
func (e *Extractor) curatePage(page *pdfoutline.Page, logical int, candidates []candidate, dc *docContext) []pdfoutline.Heading {
	if len(candidates) == 0 {
		if text, ok := e.firstProminentText(page, dc); ok {
			return []pdfoutline.Heading{{Level: pdfoutline.Level1, Text: text, Page: logical}}
		}
		return nil
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		ri, rj := candidates[i].level.Rank(), candidates[j].level.Rank()
		if ri != rj {
			return ri < rj
		}
		return candidates[i].y < candidates[j].y
	})

	if len(candidates) > e.cfg.MaxHeadingsPerPage {
		candidates = candidates[:e.cfg.MaxHeadingsPerPage]
	}

	headings := make([]pdfoutline.Heading, 0, len(candidates))
	for _, c := range candidates {
		headings = append(headings, pdfoutline.Heading{Level: c.level, Text: c.text, Page: c.page})
	}
	return headings
}

// firstProminentText scans a page for the topmost span that is large or
// bold enough to stand in for a heading, skipping page furniture and the
// document title. Single short or purely numeric spans are ignored.
func (e *Extractor) firstProminentText(page *pdfoutline.Page, dc *docContext) (string, bool) {
	dominant := dc.profile.DominantSize
	best := ""
	bestY := math.MaxFloat64
	found := false

	for i := range page.Lines {
		line := &page.Lines[i]
		for j := range line.Spans {
			span := &line.Spans[j]
			text := strings.TrimSpace(span.Text)
			if text == "" {
				continue
			}
			if e.rules.isNoise(text) || (dc.title != "" && text == dc.title) {
				continue
			}
			size := pdfoutline.RoundSize(span.Size)
			if size < dominant-0.5 && !span.Bold {
				continue
			}
			if wordCount(text) <= 1 && (utf8.RuneCountInString(text) <= 3 || isAllDigits(text)) {
				continue
			}
			if line.BBox.Y0 < bestY {
				bestY = line.BBox.Y0
				best = text
				found = true
			}
		}
	}

	return best, found
}
