package extract

import (
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/fwojciec/pdfoutline"
)

// resolveTitle reconstructs the document title from the first page.
// Configured fragment sets are tried first, then the most prominent text
// on the page. A resolved title containing a banner phrase marks a
// decorative cover with no real title.
func (e *Extractor) resolveTitle(doc *pdfoutline.Document) string {
	if len(doc.Pages) == 0 {
		return ""
	}
	page := &doc.Pages[0]

	title := e.assembleFragments(page)
	if title == "" {
		title = e.prominentTitle(page)
	}
	if title == "" {
		return ""
	}
	for _, banner := range e.cfg.Title.BannerPhrases {
		if strings.Contains(title, banner) {
			return ""
		}
	}
	return title
}

// assembleFragments joins lines from the upper half of the page that
// contain the configured title fragments, one line per fragment in
// fragment order. When a fragment matches several lines the last one
// wins; a line is claimed by the first fragment it contains. All
// fragments must match or the assembly is abandoned.
func (e *Extractor) assembleFragments(page *pdfoutline.Page) string {
	fragments := e.cfg.Title.Fragments
	if len(fragments) == 0 {
		return ""
	}

	matched := make([]string, len(fragments))
	half := page.Height / 2
	for i := range page.Lines {
		line := &page.Lines[i]
		text := line.Text()
		for j, fragment := range fragments {
			if strings.Contains(text, fragment) && line.BBox.Y0 < half {
				matched[j] = text
				break
			}
		}
	}
	for _, m := range matched {
		if m == "" {
			return ""
		}
	}

	title := strings.Join(matched, " ")
	title = strings.TrimSpace(strings.ReplaceAll(title, "\n", " "))
	return e.repairTitle(title)
}

// repairTitle applies the configured literal substitutions in order, then
// collapses stuttered words left behind by broken span extraction.
func (e *Extractor) repairTitle(title string) string {
	for _, r := range e.cfg.Title.Repairs {
		title = strings.ReplaceAll(title, r.From, r.To)
	}
	return collapseStutter(title)
}

// collapseStutter removes immediately repeated words and word pairs, as
// in "Proposal Proposal" or "for the for the". A string without
// repetition is returned unchanged.
func collapseStutter(s string) string {
	words := strings.Fields(s)
	out := make([]string, 0, len(words))
	changed := false

	for i := 0; i < len(words); {
		if len(out) >= 2 && i+1 < len(words) &&
			words[i] == out[len(out)-2] && words[i+1] == out[len(out)-1] {
			i += 2
			changed = true
			continue
		}
		if len(out) >= 1 && words[i] == out[len(out)-1] {
			i++
			changed = true
			continue
		}
		out = append(out, words[i])
		i++
	}

	if !changed {
		return s
	}
	return strings.Join(out, " ")
}

// prominentTitle falls back to the spans set in the page's largest font.
// Their texts are deduplicated preserving first appearance, ordered
// longest first, and joined. Short or noise-like results are rejected.
func (e *Extractor) prominentTitle(page *pdfoutline.Page) string {
	var texts []string
	maxSize := 0.0

	for i := range page.Lines {
		line := &page.Lines[i]
		for j := range line.Spans {
			span := &line.Spans[j]
			text := strings.TrimSpace(span.Text)
			if text == "" {
				continue
			}
			size := pdfoutline.RoundSize(span.Size)
			if size > maxSize {
				maxSize = size
				texts = append(texts[:0], text)
			} else if size == maxSize {
				texts = append(texts, text)
			}
		}
	}
	if len(texts) == 0 {
		return ""
	}

	seen := make(map[string]struct{}, len(texts))
	uniq := make([]string, 0, len(texts))
	for _, t := range texts {
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		uniq = append(uniq, t)
	}
	sort.SliceStable(uniq, func(i, j int) bool {
		return utf8.RuneCountInString(uniq[i]) > utf8.RuneCountInString(uniq[j])
	})

	title := strings.TrimSpace(strings.Join(uniq, " "))
	if utf8.RuneCountInString(title) <= e.cfg.Title.MinLength {
		return ""
	}
	if e.rules.isNoise(title) {
		return ""
	}
	return title
}
