package main

import (
	"fmt"

	"github.com/fwojciec/pdfoutline"
)

// Run executes the runs command.
func (c *RunsCmd) Run(deps *Dependencies) error {
	filter := pdfoutline.ExtractionFilter{
		Offset: c.Offset,
		Limit:  c.Limit,
	}
	if c.Source != "" {
		filter.SourcePath = &c.Source
	}

	extractions, err := deps.Extractions.FindExtractions(deps.Ctx, filter)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", pdfoutline.ErrorMessage(err))
		return err
	}

	if len(extractions) == 0 {
		fmt.Fprintln(deps.Stdout, "No extraction runs recorded. Use 'pdfoutline extract' or 'pdfoutline batch' to create one.")
		return nil
	}

	for _, e := range extractions {
		status := fmt.Sprintf("%d headings", e.HeadingCount)
		if e.Err != "" {
			status = "failed"
		}
		fmt.Fprintf(deps.Stdout, "%s  %s  %-12s  %s\n",
			e.ID, e.CreatedAt.Format("2006-01-02 15:04"), status, e.SourcePath)
	}

	return nil
}
