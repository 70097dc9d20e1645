// Package batch provides batch extraction orchestration. It runs the
// outline extractor over every PDF file in a directory, writes one JSON
// result per input, and records each run in the extraction store.
package batch

import (
	"context"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"github.com/fwojciec/pdfoutline"
)

// Processor orchestrates outline extraction over a directory of PDFs.
type Processor struct {
	Extractor   pdfoutline.Extractor
	Writer      pdfoutline.OutlineWriter
	Extractions pdfoutline.ExtractionService
	Concurrency int
}

// Result holds the outcome of a batch run.
type Result struct {
	Processed int
	Failed    int
	Headings  int
}

// ProgressEvent reports progress during a batch run.
type ProgressEvent struct {
	Type      ProgressType
	Completed int
	Total     int
	Path      string
	Error     error
}

// ProgressType indicates the type of progress event.
type ProgressType int

const (
	ProgressStarted ProgressType = iota
	ProgressCompleted
	ProgressFailed
	ProgressFinished
)

// ProgressFunc is a callback for reporting batch progress.
type ProgressFunc func(event ProgressEvent)

// fileResult holds the outcome of extracting a single file.
type fileResult struct {
	position int
	path     string
	outline  *pdfoutline.Outline
	err      error
}

// ProcessDirectory extracts outlines for every PDF file in inputDir.
// Failures are per-file: a document that cannot be read still yields an
// outline carrying its error message, which is written and recorded like
// any other. The progress callback, if provided, receives events as the
// batch proceeds.
func (p *Processor) ProcessDirectory(ctx context.Context, inputDir string, progress ProgressFunc) (*Result, error) {
	files, err := ListPDFFiles(inputDir)
	if err != nil {
		return nil, err
	}

	if len(files) == 0 {
		return &Result{}, nil
	}

	concurrency := p.Concurrency
	if concurrency <= 0 {
		concurrency = 4
	}

	// Channel for collecting results
	resultCh := make(chan fileResult, len(files))

	// Progress tracking
	var completed atomic.Int64
	total := len(files)

	if progress != nil {
		progress(ProgressEvent{
			Type:  ProgressStarted,
			Total: total,
		})
	}

	// Start workers
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	go func() {
		for i, path := range files {
			i, path := i, path
			g.Go(func() error {
				result := p.processFile(gctx, i, path)
				resultCh <- result
				return nil
			})
		}
		_ = g.Wait()
		close(resultCh)
	}()

	// Collect results in order
	results := make([]fileResult, len(files))
	for result := range resultCh {
		completed.Add(1)
		results[result.position] = result

		if progress == nil {
			continue
		}
		if result.err != nil {
			progress(ProgressEvent{
				Type:      ProgressFailed,
				Completed: int(completed.Load()),
				Total:     total,
				Path:      result.path,
				Error:     result.err,
			})
		} else {
			progress(ProgressEvent{
				Type:      ProgressCompleted,
				Completed: int(completed.Load()),
				Total:     total,
				Path:      result.path,
			})
		}
	}

	// A cancelled batch aborts without writing partial results.
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// Write and record results in input order
	var res Result
	for _, result := range results {
		if err := p.saveResult(ctx, result); err != nil {
			res.Failed++
			continue
		}

		if result.err != nil {
			res.Failed++
			continue
		}
		res.Processed++
		res.Headings += len(result.outline.Headings)
	}

	if progress != nil {
		progress(ProgressEvent{
			Type:      ProgressFinished,
			Completed: total,
			Total:     total,
		})
	}

	return &res, nil
}

// processFile extracts the outline of a single file. A failed extraction
// produces an outline carrying the error message instead of headings.
func (p *Processor) processFile(ctx context.Context, position int, path string) fileResult {
	result := fileResult{
		position: position,
		path:     path,
	}

	outline, err := p.Extractor.ExtractOutline(ctx, path)
	if err != nil {
		result.err = err
		result.outline = &pdfoutline.Outline{
			Headings: []pdfoutline.Heading{},
			Err:      pdfoutline.ErrorMessage(err),
		}
		return result
	}

	result.outline = outline
	return result
}

// saveResult writes the outline file and records the run in the store.
func (p *Processor) saveResult(ctx context.Context, result fileResult) error {
	if err := p.Writer.WriteOutline(ctx, result.path, result.outline); err != nil {
		return err
	}

	if p.Extractions == nil {
		return nil
	}
	extraction := &pdfoutline.Extraction{
		SourcePath: result.path,
		Title:      result.outline.Title,
		Err:        result.outline.Err,
		Headings:   result.outline.Headings,
	}
	return p.Extractions.CreateExtraction(ctx, extraction)
}

// ListPDFFiles returns the PDF files directly under dir, sorted by name
// case-insensitively. The extension match ignores case too, so DOC.PDF is
// picked up alongside doc.pdf.
func ListPDFFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var files []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if strings.EqualFold(filepath.Ext(entry.Name()), ".pdf") {
			files = append(files, filepath.Join(dir, entry.Name()))
		}
	}

	sort.Slice(files, func(i, j int) bool {
		return strings.ToLower(files[i]) < strings.ToLower(files[j])
	})
	return files, nil
}

// TruncatePath shortens a path for display, keeping the end which is more
// informative.
func TruncatePath(path string, maxLen int) string {
	if maxLen <= 0 {
		return ""
	}
	if maxLen < 4 {
		return path[:min(len(path), maxLen)]
	}
	if len(path) <= maxLen {
		return path
	}
	return "..." + path[len(path)-maxLen+3:]
}
