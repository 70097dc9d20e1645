package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/pdfoutline"
)

// Ensure LoggingExtractor implements pdfoutline.Extractor.
var _ pdfoutline.Extractor = (*LoggingExtractor)(nil)

// LoggingExtractor wraps an Extractor with debug logging.
type LoggingExtractor struct {
	next   pdfoutline.Extractor
	logger *slog.Logger
}

// NewLoggingExtractor creates a new LoggingExtractor.
func NewLoggingExtractor(next pdfoutline.Extractor, logger *slog.Logger) *LoggingExtractor {
	return &LoggingExtractor{next: next, logger: logger}
}

// ExtractOutline delegates to the wrapped extractor and logs the operation.
func (e *LoggingExtractor) ExtractOutline(ctx context.Context, path string) (outline *pdfoutline.Outline, err error) {
	defer func(begin time.Time) {
		headings := 0
		if outline != nil {
			headings = len(outline.Headings)
		}
		e.logger.Info("outline extraction",
			"path", path,
			"headings", headings,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return e.next.ExtractOutline(ctx, path)
}
