package mock

import (
	"context"

	"github.com/fwojciec/pdfoutline"
)

var _ pdfoutline.ExtractionService = (*ExtractionService)(nil)

// ExtractionService is a mock implementation of pdfoutline.ExtractionService.
type ExtractionService struct {
	CreateExtractionFn   func(ctx context.Context, extraction *pdfoutline.Extraction) error
	FindExtractionByIDFn func(ctx context.Context, id string) (*pdfoutline.Extraction, error)
	FindExtractionsFn    func(ctx context.Context, filter pdfoutline.ExtractionFilter) ([]*pdfoutline.Extraction, error)
	DeleteExtractionFn   func(ctx context.Context, id string) error
}

func (s *ExtractionService) CreateExtraction(ctx context.Context, extraction *pdfoutline.Extraction) error {
	return s.CreateExtractionFn(ctx, extraction)
}

func (s *ExtractionService) FindExtractionByID(ctx context.Context, id string) (*pdfoutline.Extraction, error) {
	return s.FindExtractionByIDFn(ctx, id)
}

func (s *ExtractionService) FindExtractions(ctx context.Context, filter pdfoutline.ExtractionFilter) ([]*pdfoutline.Extraction, error) {
	return s.FindExtractionsFn(ctx, filter)
}

func (s *ExtractionService) DeleteExtraction(ctx context.Context, id string) error {
	return s.DeleteExtractionFn(ctx, id)
}
