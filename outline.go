package pdfoutline

import (
	"context"
	"encoding/json"
)

// Level identifies the depth of an outline heading.
type Level int

// Heading levels, most prominent first. LevelUnknown marks candidates whose
// depth could not be determined; they still appear in the outline.
const (
	LevelUnknown Level = iota
	Level1
	Level2
	Level3
	Level4
)

// String returns the wire representation of the level.
func (l Level) String() string {
	switch l {
	case Level1:
		return "H1"
	case Level2:
		return "H2"
	case Level3:
		return "H3"
	case Level4:
		return "H4"
	}
	return "H_UNKNOWN"
}

// Valid reports whether the level is one of the defined constants.
func (l Level) Valid() bool {
	return l >= LevelUnknown && l <= Level4
}

// Rank orders levels for curation and display: H1 sorts first, H_UNKNOWN
// last.
func (l Level) Rank() int {
	if l == LevelUnknown {
		return int(Level4) + 1
	}
	return int(l)
}

// ParseLevel converts a wire representation back into a Level.
// Returns EINVALID for unrecognized strings.
func ParseLevel(s string) (Level, error) {
	switch s {
	case "H1":
		return Level1, nil
	case "H2":
		return Level2, nil
	case "H3":
		return Level3, nil
	case "H4":
		return Level4, nil
	case "H_UNKNOWN":
		return LevelUnknown, nil
	}
	return LevelUnknown, Errorf(EINVALID, "unknown heading level %q", s)
}

// MarshalJSON encodes the level as its wire string.
func (l Level) MarshalJSON() ([]byte, error) {
	return json.Marshal(l.String())
}

// UnmarshalJSON decodes a wire string into a level.
func (l *Level) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseLevel(s)
	if err != nil {
		return err
	}
	*l = parsed
	return nil
}

// Heading is a single outline entry. Page is the 1-based logical page
// number, which differs from the physical index for cover-page documents.
type Heading struct {
	Level Level  `json:"level"`
	Text  string `json:"text"`
	Page  int    `json:"page"`
}

// Outline is the inferred structure of a document. Headings marshals under
// the "outline" key and is never nil, so an empty outline encodes as [].
// Err carries the failure message for documents that could not be read.
type Outline struct {
	Title    string    `json:"title"`
	Headings []Heading `json:"outline"`
	Err      string    `json:"error,omitempty"`
}

// Extractor infers an outline from a PDF file.
type Extractor interface {
	// ExtractOutline reads and analyzes the document at path. Read
	// failures abort the extraction; no partial outline is returned.
	ExtractOutline(ctx context.Context, path string) (*Outline, error)
}

// OutlineWriter persists an outline derived from a source document.
type OutlineWriter interface {
	WriteOutline(ctx context.Context, sourcePath string, outline *Outline) error
}
