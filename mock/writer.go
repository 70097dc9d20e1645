package mock

import (
	"context"

	"github.com/fwojciec/pdfoutline"
)

var _ pdfoutline.OutlineWriter = (*OutlineWriter)(nil)

// OutlineWriter is a mock implementation of pdfoutline.OutlineWriter.
type OutlineWriter struct {
	WriteOutlineFn func(ctx context.Context, sourcePath string, outline *pdfoutline.Outline) error
}

func (w *OutlineWriter) WriteOutline(ctx context.Context, sourcePath string, outline *pdfoutline.Outline) error {
	return w.WriteOutlineFn(ctx, sourcePath, outline)
}
