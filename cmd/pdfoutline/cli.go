package main

import (
	"context"
	"io"

	"github.com/fwojciec/pdfoutline"
	"github.com/fwojciec/pdfoutline/sqlite"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx         context.Context
	Stdout      io.Writer
	Stderr      io.Writer
	DB          *sqlite.DB
	Config      *pdfoutline.Config
	Extractor   pdfoutline.Extractor
	Extractions pdfoutline.ExtractionService
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Config  string `help:"Path to a settings file (JSON or YAML)"`
	Verbose bool   `short:"v" help:"Enable structured logging"`

	Extract ExtractCmd `cmd:"" help:"Infer the outline of a single PDF"`
	Batch   BatchCmd   `cmd:"" help:"Extract outlines for every PDF in a directory"`
	Runs    RunsCmd    `cmd:"" help:"List recorded extraction runs"`
	Show    ShowCmd    `cmd:"" help:"Show a recorded extraction run"`
	Delete  DeleteCmd  `cmd:"" help:"Delete a recorded extraction run"`
}

// ExtractCmd is the "extract" subcommand.
type ExtractCmd struct {
	Path string `arg:"" help:"PDF file to analyze"`
	Text bool   `short:"t" help:"Print a human-readable outline instead of JSON"`
}

// BatchCmd is the "batch" subcommand.
type BatchCmd struct {
	InputDir    string `arg:"" help:"Directory containing PDF files"`
	OutputDir   string `arg:"" help:"Directory for the JSON outlines"`
	Concurrency int    `short:"c" default:"4" help:"Concurrent extraction limit"`
}

// RunsCmd is the "runs" subcommand.
type RunsCmd struct {
	Source string `short:"s" help:"Filter runs by source path"`
	Limit  int    `default:"20" help:"Maximum number of runs to show"`
	Offset int    `help:"Number of runs to skip"`
}

// ShowCmd is the "show" subcommand.
type ShowCmd struct {
	ID   string `arg:"" help:"Extraction run ID"`
	JSON bool   `help:"Print the stored outline as JSON"`
}

// DeleteCmd is the "delete" subcommand.
type DeleteCmd struct {
	ID    string `arg:"" help:"Extraction run ID"`
	Force bool   `help:"Confirm deletion"`
}
