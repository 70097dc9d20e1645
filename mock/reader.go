package mock

import (
	"context"

	"github.com/fwojciec/pdfoutline"
)

var _ pdfoutline.DocumentReader = (*DocumentReader)(nil)

// DocumentReader is a mock implementation of pdfoutline.DocumentReader.
type DocumentReader struct {
	ReadDocumentFn func(ctx context.Context, path string) (*pdfoutline.Document, error)
}

func (r *DocumentReader) ReadDocument(ctx context.Context, path string) (*pdfoutline.Document, error) {
	return r.ReadDocumentFn(ctx, path)
}
