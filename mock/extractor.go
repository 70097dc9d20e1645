package mock

import (
	"context"

	"github.com/fwojciec/pdfoutline"
)

var _ pdfoutline.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of pdfoutline.Extractor.
type Extractor struct {
	ExtractOutlineFn func(ctx context.Context, path string) (*pdfoutline.Outline, error)
}

func (e *Extractor) ExtractOutline(ctx context.Context, path string) (*pdfoutline.Outline, error) {
	return e.ExtractOutlineFn(ctx, path)
}
