package pdfoutline

import (
	"path/filepath"
	"regexp"
)

// Thresholds tune the style-based heading rules.
type Thresholds struct {
	// SizeDelta is how many points larger than the dominant size a span
	// must be to qualify as a heading on size alone.
	SizeDelta float64 `json:"font_size_difference_from_dominant" mapstructure:"font_size_difference_from_dominant"`

	// BoldSizeRatio is the minimum size, as a fraction of the dominant
	// size, for a bold span to qualify.
	BoldSizeRatio float64 `json:"bold_font_size_min_ratio_to_dominant" mapstructure:"bold_font_size_min_ratio_to_dominant"`

	// MaxBoldWords caps the word count of bold heading candidates. Lines
	// longer than twice this cap are skipped as body text before any rule
	// runs.
	MaxBoldWords int `json:"max_words_for_bold_heading" mapstructure:"max_words_for_bold_heading"`

	// MaxCapsWords caps the word count of all-caps heading candidates.
	MaxCapsWords int `json:"max_words_for_all_caps_heading" mapstructure:"max_words_for_all_caps_heading"`
}

// PhraseMatch selects heading texts for override rules. Every specified
// matcher must hold; zero-valued matchers are ignored. An override with no
// matcher at all is invalid.
type PhraseMatch struct {
	// Exact matches when the text equals any listed string.
	Exact []string `json:"exact,omitempty" mapstructure:"exact"`

	// Prefixes matches when the text starts with any listed string.
	Prefixes []string `json:"prefixes,omitempty" mapstructure:"prefixes"`

	// Suffix matches when the text ends with the string.
	Suffix string `json:"suffix,omitempty" mapstructure:"suffix"`

	// Contains matches when the text contains the string.
	Contains string `json:"contains,omitempty" mapstructure:"contains"`

	// Pattern matches when the Go regular expression matches the text.
	Pattern string `json:"pattern,omitempty" mapstructure:"pattern"`
}

// Empty reports whether no matcher is specified.
func (m PhraseMatch) Empty() bool {
	return len(m.Exact) == 0 && len(m.Prefixes) == 0 &&
		m.Suffix == "" && m.Contains == "" && m.Pattern == ""
}

// ClassifierOverride admits texts matching a phrase pattern as heading
// candidates when its prominence gate holds. The gate passes when the span
// is bold (if AllowBold), or when the span size clears dominant + SizeDelta
// (strictly if StrictSize). RequireBold additionally demands a bold span
// regardless of size, and MaxWords, when positive, requires fewer than
// MaxWords words.
type ClassifierOverride struct {
	PhraseMatch `mapstructure:",squash"`

	RequireBold bool    `json:"require_bold,omitempty" mapstructure:"require_bold"`
	AllowBold   bool    `json:"allow_bold,omitempty" mapstructure:"allow_bold"`
	SizeDelta   float64 `json:"size_delta" mapstructure:"size_delta"`
	StrictSize  bool    `json:"strict_size,omitempty" mapstructure:"strict_size"`
	MaxWords    int     `json:"max_words,omitempty" mapstructure:"max_words"`
}

// LevelOverride forces a level for texts matching a phrase pattern.
// When GateBySize is set the override fires only for spans strictly larger
// than dominant + SizeDelta.
type LevelOverride struct {
	PhraseMatch `mapstructure:",squash"`

	Level      Level   `json:"level" mapstructure:"level"`
	GateBySize bool    `json:"gate_by_size,omitempty" mapstructure:"gate_by_size"`
	SizeDelta  float64 `json:"size_delta,omitempty" mapstructure:"size_delta"`
}

// TitleRepair is a literal substitution applied to reconstructed titles.
type TitleRepair struct {
	From string `json:"from" mapstructure:"from"`
	To   string `json:"to" mapstructure:"to"`
}

// TitleConfig drives title reconstruction on the first page.
type TitleConfig struct {
	// Fragments are substrings located in the upper half of the first
	// page and joined in order. The title is reconstructed this way only
	// when every fragment is found.
	Fragments []string `json:"fragments" mapstructure:"fragments"`

	// Repairs are literal substitutions applied in order to the joined
	// title, before the general stutter cleanup.
	Repairs []TitleRepair `json:"repairs" mapstructure:"repairs"`

	// BannerPhrases clear the resolved title entirely; they mark
	// promotional banners mistaken for titles.
	BannerPhrases []string `json:"banner_phrases" mapstructure:"banner_phrases"`

	// MinLength rejects fallback titles of MinLength characters or fewer.
	MinLength int `json:"min_length" mapstructure:"min_length"`
}

// Config holds all tunable parameters of the outline engine.
type Config struct {
	Thresholds Thresholds `json:"heading_detection_thresholds" mapstructure:"heading_detection_thresholds"`

	// HeadingKeywords admit lines containing common section words,
	// matched case-insensitively and gated by prominence.
	HeadingKeywords []string `json:"common_heading_keywords" mapstructure:"common_heading_keywords"`

	// NoisePatterns are regular expressions for repeating header and
	// footer furniture. They are applied case-insensitively and searched
	// anywhere in the text; matching lines are never headings or titles.
	NoisePatterns []string `json:"common_footer_header_patterns" mapstructure:"common_footer_header_patterns"`

	// MaxHeadingsPerPage caps curated headings per page.
	MaxHeadingsPerPage int `json:"max_headings_per_page" mapstructure:"max_headings_per_page"`

	Title TitleConfig `json:"title" mapstructure:"title"`

	ClassifierOverrides []ClassifierOverride `json:"classifier_overrides" mapstructure:"classifier_overrides"`
	LevelOverrides      []LevelOverride      `json:"level_overrides" mapstructure:"level_overrides"`

	// ExcludedPhrases drop classified candidates containing specific body
	// sentences that would otherwise pass the prominence rules.
	ExcludedPhrases []string `json:"excluded_phrases" mapstructure:"excluded_phrases"`

	// CoverPages are glob patterns on the base file name. Matching
	// documents treat their first physical page as an unnumbered cover,
	// shifting logical page numbers down by one.
	CoverPages []string `json:"cover_pages" mapstructure:"cover_pages"`
}

// sectionHeadings are unnumbered section titles known to be H2 headings.
var sectionHeadings = []string{
	"Summary",
	"Background",
	"The Business Plan to be Developed",
	"Approach and Specific Proposal Requirements",
	"Evaluation and Awarding of Contract",
}

// topicPrefixes start colon-terminated subsection labels known to be H3.
var topicPrefixes = []string{
	"Equitable", "Shared", "Local", "Access",
	"Guidance", "Training", "Provincial", "Technological",
}

const appendixPattern = `^Appendix [A-Z]:\s+`

// DefaultConfig returns the built-in configuration. The override tables
// carry the document-specific rules the engine was calibrated on; settings
// files loaded on top of the defaults replace only the keys they name.
func DefaultConfig() *Config {
	return &Config{
		Thresholds: Thresholds{
			SizeDelta:     1.0,
			BoldSizeRatio: 0.95,
			MaxBoldWords:  10,
			MaxCapsWords:  10,
		},
		HeadingKeywords: []string{
			"introduction", "overview", "summary", "background",
			"conclusion", "references", "acknowledgements", "appendix",
			"contents", "abstract", "timeline", "milestones", "chapter",
			"evaluation",
		},
		NoisePatterns: []string{
			`^page \d+( of \d+)?$`,
			`^\d+ of \d+$`,
			`^(january|february|march|april|may|june|july|august|september|october|november|december) \d{1,2}, \d{4}$`,
			`^version \d+(\.\d+)*$`,
			`copyright`,
			`all rights reserved`,
			`^confidential$`,
			`^draft$`,
		},
		MaxHeadingsPerPage: 4,
		Title: TitleConfig{
			Fragments: []string{
				"RFP: Request for Proposal",
				"To Present a Proposal for Developing the Business Plan for the Ontario Digital Library",
			},
			Repairs: []TitleRepair{
				{From: "Reeeequest f quest foooor Pr r Proposal quest f oposal", To: "Request for Proposal"},
				{From: "Pr r", To: "Pr"},
			},
			BannerPhrases: []string{"TOPJUMP", "TRAMPOLINE PARK", "YOU'RE INVITED"},
			MinLength:     5,
		},
		ClassifierOverrides: []ClassifierOverride{
			{
				PhraseMatch: PhraseMatch{Exact: sectionHeadings},
				AllowBold:   true,
				SizeDelta:   0.5,
			},
			{
				PhraseMatch: PhraseMatch{Pattern: appendixPattern},
				AllowBold:   true,
				StrictSize:  true,
			},
			{
				PhraseMatch: PhraseMatch{Prefixes: topicPrefixes, Suffix: ":"},
				RequireBold: true,
				SizeDelta:   -0.5,
				MaxWords:    10,
			},
			{
				PhraseMatch: PhraseMatch{Prefixes: []string{"What could the"}, Contains: "?"},
				AllowBold:   true,
			},
			{
				PhraseMatch: PhraseMatch{Prefixes: []string{"For each Ontario"}, Suffix: "mean:"},
				AllowBold:   true,
				SizeDelta:   -1.0,
			},
		},
		LevelOverrides: []LevelOverride{
			{PhraseMatch: PhraseMatch{Exact: sectionHeadings}, Level: Level2},
			{PhraseMatch: PhraseMatch{Exact: []string{"Milestones"}}, Level: Level3},
			{PhraseMatch: PhraseMatch{Pattern: appendixPattern}, Level: Level2},
			{PhraseMatch: PhraseMatch{Prefixes: topicPrefixes, Suffix: ":"}, Level: Level3},
			{PhraseMatch: PhraseMatch{Prefixes: []string{"What could the"}, Contains: "?"}, Level: Level3},
			{PhraseMatch: PhraseMatch{Prefixes: []string{"For each Ontario"}, Suffix: "mean:"}, Level: Level4},
			{
				PhraseMatch: PhraseMatch{Contains: "Ontario’s Digital Library"},
				Level:       Level1,
				GateBySize:  true,
				SizeDelta:   1.0,
			},
			{
				PhraseMatch: PhraseMatch{Contains: "A Critical Component for Implementing Ontario’s Road Map to Prosperity Strategy"},
				Level:       Level1,
				GateBySize:  true,
				SizeDelta:   0.5,
			},
		},
		ExcludedPhrases: []string{
			"The Ontario Digital Library will make Ontario a better place",
		},
		CoverPages: []string{"file03.pdf"},
	}
}

// Validate returns an error if the configuration contains invalid fields.
func (c *Config) Validate() error {
	if c.Thresholds.BoldSizeRatio <= 0 {
		return Errorf(EINVALID, "bold font size ratio must be positive")
	}
	if c.Thresholds.MaxBoldWords <= 0 {
		return Errorf(EINVALID, "max words for bold heading must be positive")
	}
	if c.Thresholds.MaxCapsWords <= 0 {
		return Errorf(EINVALID, "max words for all caps heading must be positive")
	}
	if c.MaxHeadingsPerPage <= 0 {
		return Errorf(EINVALID, "max headings per page must be positive")
	}
	for _, pattern := range c.NoisePatterns {
		if _, err := regexp.Compile(`(?i:` + pattern + `)`); err != nil {
			return Errorf(EINVALID, "invalid noise pattern %q: %v", pattern, err)
		}
	}
	for i, o := range c.ClassifierOverrides {
		if o.Empty() {
			return Errorf(EINVALID, "classifier override %d matches everything", i)
		}
		if o.Pattern != "" {
			if _, err := regexp.Compile(o.Pattern); err != nil {
				return Errorf(EINVALID, "invalid classifier override pattern %q: %v", o.Pattern, err)
			}
		}
	}
	for i, o := range c.LevelOverrides {
		if o.Empty() {
			return Errorf(EINVALID, "level override %d matches everything", i)
		}
		if !o.Level.Valid() {
			return Errorf(EINVALID, "level override %d has unknown level", i)
		}
		if o.Pattern != "" {
			if _, err := regexp.Compile(o.Pattern); err != nil {
				return Errorf(EINVALID, "invalid level override pattern %q: %v", o.Pattern, err)
			}
		}
	}
	for _, pattern := range c.CoverPages {
		if _, err := filepath.Match(pattern, "probe.pdf"); err != nil {
			return Errorf(EINVALID, "invalid cover page pattern %q: %v", pattern, err)
		}
	}
	return nil
}
