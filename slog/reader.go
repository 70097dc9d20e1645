package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/pdfoutline"
)

// Ensure LoggingReader implements pdfoutline.DocumentReader.
var _ pdfoutline.DocumentReader = (*LoggingReader)(nil)

// LoggingReader wraps a DocumentReader with debug logging.
type LoggingReader struct {
	next   pdfoutline.DocumentReader
	logger *slog.Logger
}

// NewLoggingReader creates a new LoggingReader.
func NewLoggingReader(next pdfoutline.DocumentReader, logger *slog.Logger) *LoggingReader {
	return &LoggingReader{next: next, logger: logger}
}

// ReadDocument delegates to the wrapped reader and logs the operation.
func (r *LoggingReader) ReadDocument(ctx context.Context, path string) (doc *pdfoutline.Document, err error) {
	defer func(begin time.Time) {
		pages := 0
		if doc != nil {
			pages = len(doc.Pages)
		}
		r.logger.Info("document read",
			"path", path,
			"pages", pages,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return r.next.ReadDocument(ctx, path)
}
