package pdfoutline

import (
	"context"
	"time"
)

// Extraction records one outline-extraction run against a document.
type Extraction struct {
	ID          string    `json:"id"`
	SourcePath  string    `json:"sourcePath"`
	Title       string    `json:"title"`
	Err         string    `json:"error,omitempty"`
	OutlineHash string    `json:"outlineHash"`
	CreatedAt   time.Time `json:"createdAt"`

	// HeadingCount is populated on list queries, which do not load the
	// headings themselves.
	HeadingCount int `json:"headingCount"`

	// Headings is populated by FindExtractionByID.
	Headings []Heading `json:"headings,omitempty"`
}

// Validate returns an error if the extraction contains invalid fields.
func (e *Extraction) Validate() error {
	if e.SourcePath == "" {
		return Errorf(EINVALID, "extraction source path required")
	}
	return nil
}

// Outline converts the extraction back into wire form.
func (e *Extraction) Outline() *Outline {
	headings := e.Headings
	if headings == nil {
		headings = []Heading{}
	}
	return &Outline{Title: e.Title, Headings: headings, Err: e.Err}
}

// ExtractionService represents a service for managing extraction records.
type ExtractionService interface {
	// CreateExtraction stores a new extraction with its headings.
	CreateExtraction(ctx context.Context, extraction *Extraction) error

	// FindExtractionByID retrieves an extraction with its headings.
	// Returns ENOTFOUND if extraction does not exist.
	FindExtractionByID(ctx context.Context, id string) (*Extraction, error)

	// FindExtractions retrieves extraction summaries matching the filter,
	// newest first. Headings are not loaded; HeadingCount is.
	FindExtractions(ctx context.Context, filter ExtractionFilter) ([]*Extraction, error)

	// DeleteExtraction permanently removes an extraction and its headings.
	// Returns ENOTFOUND if extraction does not exist.
	DeleteExtraction(ctx context.Context, id string) error
}

// ExtractionFilter represents a filter for FindExtractions.
type ExtractionFilter struct {
	ID         *string `json:"id"`
	SourcePath *string `json:"sourcePath"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}
