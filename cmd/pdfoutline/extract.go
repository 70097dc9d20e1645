package main

import (
	"fmt"

	"github.com/fwojciec/pdfoutline"
	"github.com/fwojciec/pdfoutline/fs"
)

// Run executes the extract command.
func (c *ExtractCmd) Run(deps *Dependencies) error {
	outline, err := deps.Extractor.ExtractOutline(deps.Ctx, c.Path)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", pdfoutline.ErrorMessage(err))
		return err
	}

	// Record the run so it shows up in 'pdfoutline runs'
	if deps.Extractions != nil {
		extraction := &pdfoutline.Extraction{
			SourcePath: c.Path,
			Title:      outline.Title,
			Headings:   outline.Headings,
		}
		if err := deps.Extractions.CreateExtraction(deps.Ctx, extraction); err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", pdfoutline.ErrorMessage(err))
			return err
		}
	}

	if c.Text {
		fmt.Fprint(deps.Stdout, pdfoutline.FormatOutline(outline))
		return nil
	}

	data, err := fs.EncodeOutline(outline)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", pdfoutline.ErrorMessage(err))
		return err
	}
	fmt.Fprint(deps.Stdout, string(data))

	return nil
}
