package extract

import (
	"regexp"
	"strings"

	"github.com/fwojciec/pdfoutline"
)

// numberedLineRe matches lines that open with a dotted section number
// followed by a title, e.g. "2.1 Intended Audience".
var numberedLineRe = regexp.MustCompile(`^\d+(\.\d+)*\s+`)

// numberTokenRe matches a complete numbering token such as "2.", "2.1"
// or "2.1.3.".
var numberTokenRe = regexp.MustCompile(`^\d+(\.\d+)*\.?$`)

// ruleSet is the compiled form of a Config.
type ruleSet struct {
	noise      []*regexp.Regexp
	keywords   []string
	overrides  []classifierOverride
	levels     []levelOverride
	excluded   []string
	coverGlobs []string
}

// classifierOverride pairs a ClassifierOverride with its compiled pattern.
type classifierOverride struct {
	pdfoutline.ClassifierOverride
	re *regexp.Regexp
}

// levelOverride pairs a LevelOverride with its compiled pattern.
type levelOverride struct {
	pdfoutline.LevelOverride
	re *regexp.Regexp
}

// compileRules compiles every pattern in cfg once. cfg is assumed to have
// passed Validate; compile errors are still reported rather than ignored.
func compileRules(cfg *pdfoutline.Config) (*ruleSet, error) {
	rs := &ruleSet{
		excluded:   cfg.ExcludedPhrases,
		coverGlobs: cfg.CoverPages,
	}

	for _, pattern := range cfg.NoisePatterns {
		re, err := regexp.Compile("(?i:" + pattern + ")")
		if err != nil {
			return nil, pdfoutline.Errorf(pdfoutline.EINVALID, "invalid noise pattern %q: %v", pattern, err)
		}
		rs.noise = append(rs.noise, re)
	}

	for _, keyword := range cfg.HeadingKeywords {
		rs.keywords = append(rs.keywords, strings.ToLower(keyword))
	}

	for _, o := range cfg.ClassifierOverrides {
		re, err := compilePhrase(o.PhraseMatch)
		if err != nil {
			return nil, err
		}
		rs.overrides = append(rs.overrides, classifierOverride{ClassifierOverride: o, re: re})
	}

	for _, o := range cfg.LevelOverrides {
		re, err := compilePhrase(o.PhraseMatch)
		if err != nil {
			return nil, err
		}
		rs.levels = append(rs.levels, levelOverride{LevelOverride: o, re: re})
	}

	return rs, nil
}

func compilePhrase(m pdfoutline.PhraseMatch) (*regexp.Regexp, error) {
	if m.Pattern == "" {
		return nil, nil
	}
	re, err := regexp.Compile(m.Pattern)
	if err != nil {
		return nil, pdfoutline.Errorf(pdfoutline.EINVALID, "invalid phrase pattern %q: %v", m.Pattern, err)
	}
	return re, nil
}

// matchPhrase reports whether text satisfies every condition the matcher
// sets. Exact and Prefixes match when any of their entries do.
func matchPhrase(m pdfoutline.PhraseMatch, re *regexp.Regexp, text string) bool {
	if len(m.Exact) > 0 && !matchAnyExact(m.Exact, text) {
		return false
	}
	if len(m.Prefixes) > 0 && !matchAnyPrefix(m.Prefixes, text) {
		return false
	}
	if m.Suffix != "" && !strings.HasSuffix(text, m.Suffix) {
		return false
	}
	if m.Contains != "" && !strings.Contains(text, m.Contains) {
		return false
	}
	if re != nil && !re.MatchString(text) {
		return false
	}
	return true
}

func matchAnyExact(exact []string, text string) bool {
	for _, s := range exact {
		if text == s {
			return true
		}
	}
	return false
}

func matchAnyPrefix(prefixes []string, text string) bool {
	for _, p := range prefixes {
		if strings.HasPrefix(text, p) {
			return true
		}
	}
	return false
}

// isNoise reports whether text matches a header, footer or other page
// furniture pattern.
func (r *ruleSet) isNoise(text string) bool {
	for _, re := range r.noise {
		if re.MatchString(text) {
			return true
		}
	}
	return false
}

// isExcluded reports whether text contains a phrase configured as body
// text.
func (r *ruleSet) isExcluded(text string) bool {
	for _, phrase := range r.excluded {
		if strings.Contains(text, phrase) {
			return true
		}
	}
	return false
}

// hasKeyword reports whether text contains one of the structural heading
// keywords, case-insensitively.
func (r *ruleSet) hasKeyword(text string) bool {
	lower := strings.ToLower(text)
	for _, keyword := range r.keywords {
		if strings.Contains(lower, keyword) {
			return true
		}
	}
	return false
}
