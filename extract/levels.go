package extract

import (
	"strings"

	"github.com/fwojciec/pdfoutline"
)

// assignLevel maps a classified heading to its level. Explicit numbering
// wins, then the configured overrides in order, then the document's font
// size ladder. A size absent from the ladder yields LevelUnknown.
func (e *Extractor) assignLevel(size float64, text string, profile *StyleProfile) pdfoutline.Level {
	if level, ok := numberingLevel(text); ok {
		return level
	}

	for i := range e.rules.levels {
		o := &e.rules.levels[i]
		if !matchPhrase(o.PhraseMatch, o.re, text) {
			continue
		}
		if o.GateBySize && size <= profile.DominantSize+o.SizeDelta {
			continue
		}
		return o.Level
	}

	if idx, ok := profile.ladderIndex(size); ok {
		level := idx + 1
		if level > int(pdfoutline.Level4) {
			level = int(pdfoutline.Level4)
		}
		return pdfoutline.Level(level)
	}

	return pdfoutline.LevelUnknown
}

// numberingLevel reads the depth of a dotted section number: "3." opens a
// top-level section, "3.1" a subsection, and so on. A bare number with no
// dot is not treated as numbering. Numbering deeper than four groups maps
// to no known level.
func numberingLevel(text string) (pdfoutline.Level, bool) {
	fields := strings.Fields(text)
	if len(fields) < 2 {
		return pdfoutline.LevelUnknown, false
	}
	token := fields[0]
	if !strings.Contains(token, ".") || !numberTokenRe.MatchString(token) {
		return pdfoutline.LevelUnknown, false
	}

	depth := 0
	for _, part := range strings.Split(token, ".") {
		if part != "" {
			depth++
		}
	}
	switch depth {
	case 1:
		return pdfoutline.Level1, true
	case 2:
		return pdfoutline.Level2, true
	case 3:
		return pdfoutline.Level3, true
	case 4:
		return pdfoutline.Level4, true
	}
	return pdfoutline.LevelUnknown, true
}
