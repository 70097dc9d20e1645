package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/pdfoutline"
	"github.com/fwojciec/pdfoutline/extract"
	"github.com/fwojciec/pdfoutline/pdf"
	pdfslog "github.com/fwojciec/pdfoutline/slog"
	"github.com/fwojciec/pdfoutline/sqlite"
	"github.com/fwojciec/pdfoutline/viper"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Database path. Set before calling Run().
	DBPath string

	// SQLite database used by SQLite service implementations.
	DB *sqlite.DB

	// Service for end-to-end testing.
	ExtractionService pdfoutline.ExtractionService
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		DBPath: defaultDBPath(),
	}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	// Initialize dependencies struct for Kong binding
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	// Create Kong parser with dependency binding
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("pdfoutline"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	// Handle help flags using Kong
	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'pdfoutline --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	// Parse arguments first to know which command and its flags
	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	// Load settings; a malformed file is fatal before any work starts
	config, err := viper.Load(cli.Config)
	if err != nil {
		fmt.Fprintln(stderr, "Hint: settings files are JSON or YAML")
		return err
	}
	deps.Config = config

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	if cli.Verbose {
		logger = slog.New(slog.NewTextHandler(stderr, nil))
	}

	// Open database
	m.DB = sqlite.NewDB(m.DBPath)
	if err := m.DB.Open(); err != nil {
		fmt.Fprintf(stderr, "Hint: Set PDFOUTLINE_DB to use a different database path\n")
		return fmt.Errorf("failed to open database at %q: %w", m.DBPath, err)
	}
	defer m.Close()

	// Wire core services into dependencies
	m.ExtractionService = sqlite.NewExtractionService(m.DB)
	deps.DB = m.DB
	deps.Extractions = m.ExtractionService

	reader := pdfslog.NewLoggingReader(pdf.NewReader(), logger)
	extractor, err := extract.NewExtractor(reader, config)
	if err != nil {
		return err
	}
	deps.Extractor = pdfslog.NewLoggingExtractor(extractor, logger)

	return kongCtx.Run(deps)
}

func defaultDBPath() string {
	if path := os.Getenv("PDFOUTLINE_DB"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "pdfoutline.db"
	}
	dir := filepath.Join(home, ".pdfoutline")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "pdfoutline.db")
}
