package main

import (
	"fmt"
	"time"

	"github.com/fwojciec/pdfoutline"
	"github.com/fwojciec/pdfoutline/fs"
)

// Run executes the show command.
func (c *ShowCmd) Run(deps *Dependencies) error {
	extraction, err := deps.Extractions.FindExtractionByID(deps.Ctx, c.ID)
	if err != nil {
		if pdfoutline.ErrorCode(err) == pdfoutline.ENOTFOUND {
			fmt.Fprintf(deps.Stderr, "error: run %q not found. Use 'pdfoutline runs' to see recorded runs.\n", c.ID)
			return err
		}
		fmt.Fprintf(deps.Stderr, "error: %s\n", pdfoutline.ErrorMessage(err))
		return err
	}

	if c.JSON {
		data, err := fs.EncodeOutline(extraction.Outline())
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", pdfoutline.ErrorMessage(err))
			return err
		}
		fmt.Fprint(deps.Stdout, string(data))
		return nil
	}

	fmt.Fprintf(deps.Stdout, "Run %s\nSource: %s\nCreated: %s\n\n",
		extraction.ID, extraction.SourcePath, extraction.CreatedAt.Format(time.RFC3339))
	fmt.Fprint(deps.Stdout, pdfoutline.FormatOutline(extraction.Outline()))

	return nil
}
