package main

import (
	"fmt"

	"github.com/fwojciec/pdfoutline"
	"github.com/fwojciec/pdfoutline/batch"
	"github.com/fwojciec/pdfoutline/fs"
)

// Run executes the batch command.
func (c *BatchCmd) Run(deps *Dependencies) error {
	processor := &batch.Processor{
		Extractor:   deps.Extractor,
		Writer:      fs.NewWriter(c.OutputDir),
		Extractions: deps.Extractions,
		Concurrency: c.Concurrency,
	}

	progress := func(event batch.ProgressEvent) {
		switch event.Type {
		case batch.ProgressStarted:
			fmt.Fprintf(deps.Stdout, "  Found %d PDF files\n", event.Total)
		case batch.ProgressFailed:
			fmt.Fprintf(deps.Stderr, "  skip %s: %v\n", batch.TruncatePath(event.Path, 60), event.Error)
		case batch.ProgressFinished:
			// Summary printed after the batch completes
		}
	}

	result, err := processor.ProcessDirectory(deps.Ctx, c.InputDir, progress)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", pdfoutline.ErrorMessage(err))
		return err
	}

	if result.Processed == 0 && result.Failed == 0 {
		fmt.Fprintf(deps.Stdout, "No PDF files found in %s\n", c.InputDir)
		return nil
	}

	fmt.Fprintf(deps.Stdout, "  Saved %d outlines (%d headings, %d failed)\n",
		result.Processed, result.Headings, result.Failed)

	return nil
}
