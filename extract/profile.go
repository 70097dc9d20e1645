package extract

import (
	"sort"

	"github.com/fwojciec/pdfoutline"
)

// StyleProfile summarizes the font styles of a document.
type StyleProfile struct {
	// DominantSize is the assumed body text size, the most frequent
	// span size above 6pt.
	DominantSize float64

	// Ladder lists the distinct rounded span sizes by prominence,
	// largest first. Sizes that appear equal are ordered by how often
	// they carry bold text.
	Ladder []float64

	index map[float64]int
}

// ladderIndex returns the position of size in the prominence ladder.
func (p *StyleProfile) ladderIndex(size float64) (int, bool) {
	idx, ok := p.index[size]
	return idx, ok
}

// ProfileStyles scans every span in the document and builds its style
// profile. Sizes at or below 6pt are assumed to be page furniture and are
// skipped when picking the dominant size; if nothing larger exists, the
// most frequent size overall wins. Frequency ties keep the size seen
// first.
func ProfileStyles(doc *pdfoutline.Document) *StyleProfile {
	counts := make(map[float64]int)
	boldCounts := make(map[float64]int)
	var order []float64

	for i := range doc.Pages {
		page := &doc.Pages[i]
		for j := range page.Lines {
			line := &page.Lines[j]
			for k := range line.Spans {
				span := &line.Spans[k]
				size := pdfoutline.RoundSize(span.Size)
				if _, ok := counts[size]; !ok {
					order = append(order, size)
				}
				counts[size]++
				if span.Bold {
					boldCounts[size]++
				}
			}
		}
	}

	profile := &StyleProfile{index: make(map[float64]int)}
	if len(order) == 0 {
		return profile
	}

	profile.DominantSize = dominantSize(order, counts)

	ladder := make([]float64, len(order))
	copy(ladder, order)
	sort.SliceStable(ladder, func(i, j int) bool {
		if ladder[i] != ladder[j] {
			return ladder[i] > ladder[j]
		}
		return boldCounts[ladder[i]] > boldCounts[ladder[j]]
	})
	profile.Ladder = ladder
	for i, size := range ladder {
		profile.index[size] = i
	}

	return profile
}

func dominantSize(order []float64, counts map[float64]int) float64 {
	best, bestCount := 0.0, 0
	for _, size := range order {
		if size > 6 && counts[size] > bestCount {
			best, bestCount = size, counts[size]
		}
	}
	if bestCount > 0 {
		return best
	}
	for _, size := range order {
		if counts[size] > bestCount {
			best, bestCount = size, counts[size]
		}
	}
	return best
}
