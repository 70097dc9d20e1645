package main

import (
	"fmt"

	"github.com/fwojciec/pdfoutline"
)

// Run executes the delete command.
func (c *DeleteCmd) Run(deps *Dependencies) error {
	if !c.Force {
		fmt.Fprintf(deps.Stderr, "error: use --force to confirm deletion\n")
		return pdfoutline.Errorf(pdfoutline.EINVALID, "use --force to confirm deletion")
	}

	if err := deps.Extractions.DeleteExtraction(deps.Ctx, c.ID); err != nil {
		if pdfoutline.ErrorCode(err) == pdfoutline.ENOTFOUND {
			fmt.Fprintf(deps.Stderr, "error: run %q not found. Use 'pdfoutline runs' to see recorded runs.\n", c.ID)
			return err
		}
		fmt.Fprintf(deps.Stderr, "error: %s\n", pdfoutline.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Deleted run %q\n", c.ID)
	return nil
}
