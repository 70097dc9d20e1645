package extract

import (
	"strings"
	"unicode"

	"github.com/fwojciec/pdfoutline"
)

// isLikelyHeading decides whether a line reads as a heading. The line is
// judged by its first span: mixed-style lines take their identity from
// how they open. Rules are tried in order of confidence and any single
// match wins.
func (e *Extractor) isLikelyHeading(text string, size float64, bold bool, bbox pdfoutline.BBox, prev *pdfoutline.BBox, profile *StyleProfile) bool {
	th := e.cfg.Thresholds
	dominant := profile.DominantSize

	// Clearly larger than body text.
	if size > dominant+th.SizeDelta {
		return true
	}

	// Bold at roughly body size. The word cap keeps inline emphasis out
	// of the outline, with an escape for all-caps banners.
	if bold && size >= dominant*th.BoldSizeRatio {
		if wordCount(text) < th.MaxBoldWords || isAllUpper(text) {
			return true
		}
	}

	// Numbered section openers tolerate slightly smaller type.
	if numberedLineRe.MatchString(text) && (size >= dominant-1.0 || bold) {
		return true
	}

	// Structural keywords need prominence or a trailing colon, as in
	// "Timeline:".
	if e.rules.hasKeyword(text) {
		if (bold && size >= dominant-0.5) ||
			size >= dominant+0.5 ||
			(strings.HasSuffix(text, ":") && size >= dominant-1.0) {
			return true
		}
	}

	// Short all-caps lines read as section banners.
	if isAllUpper(text) && wordCount(text) < th.MaxCapsWords && size >= dominant-1.0 {
		return true
	}

	// A wide gap above the line suggests a fresh section, unless the
	// line ends like a sentence.
	if prev != nil && bbox.Y0-prev.Y1 > dominant*1.5 {
		if size >= dominant-0.5 && !strings.HasSuffix(text, ".") {
			return true
		}
	}

	for i := range e.rules.overrides {
		if e.rules.overrides[i].matches(text, size, bold, dominant) {
			return true
		}
	}

	return false
}

// matches applies a configured override rule. Bold weight short-circuits
// the size gate when AllowBold is set; RequireBold rejects regular weight
// outright and then still applies the size gate.
func (o *classifierOverride) matches(text string, size float64, bold bool, dominant float64) bool {
	if !matchPhrase(o.PhraseMatch, o.re, text) {
		return false
	}
	if o.MaxWords > 0 && wordCount(text) >= o.MaxWords {
		return false
	}
	if o.RequireBold && !bold {
		return false
	}
	if o.AllowBold && bold {
		return true
	}
	if o.StrictSize {
		return size > dominant+o.SizeDelta
	}
	return size >= dominant+o.SizeDelta
}

// wordCount counts whitespace-delimited words.
func wordCount(s string) int {
	return len(strings.Fields(s))
}

// isAllUpper reports whether s contains at least one cased letter and
// none in lowercase or titlecase.
func isAllUpper(s string) bool {
	cased := false
	for _, r := range s {
		if unicode.IsLower(r) || unicode.IsTitle(r) {
			return false
		}
		if unicode.IsUpper(r) {
			cased = true
		}
	}
	return cased
}

// isAllDigits reports whether s is entirely decimal digits.
func isAllDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}
