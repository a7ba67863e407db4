package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/alexanderramin/tarmac/internal/catalog"
	"github.com/alexanderramin/tarmac/internal/cli"
	"github.com/alexanderramin/tarmac/internal/db"
	"github.com/alexanderramin/tarmac/internal/repository"
	"github.com/alexanderramin/tarmac/internal/service"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Determine DB path: env var or default ~/.tarmac/tarmac.db
	dbPath := os.Getenv("TARMAC_DB")
	if dbPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("finding home directory: %w", err)
		}
		dbPath = filepath.Join(home, ".tarmac", "tarmac.db")
	}

	// Drop ANSI styling when stdout is not a terminal (lipgloss honors
	// NO_COLOR), so piped output stays machine-readable.
	if !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		os.Setenv("NO_COLOR", "1")
	}

	// The catalog is static and validated once; a broken catalog must stop
	// the process before any projection runs.
	cat := catalog.Reference()

	// Open database
	database, err := db.OpenDB(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	// Wire repositories
	turnaroundRepo := repository.NewSQLiteTurnaroundRepo(database)
	completionRepo := repository.NewSQLiteCompletionRepo(database)

	// Service telemetry is opt-in.
	var observer service.UseCaseObserver = service.NoopUseCaseObserver{}
	if os.Getenv("TARMAC_LOG") != "" {
		observer = service.NewLogUseCaseObserver(os.Stderr)
	}

	// Wire services
	turnaroundSvc := service.NewTurnaroundService(turnaroundRepo)
	completionSvc := service.NewCompletionService(completionRepo, turnaroundRepo, cat)
	boardSvc := service.NewBoardService(turnaroundSvc, completionRepo, cat, observer)

	app := &cli.App{
		Turnarounds: turnaroundSvc,
		Completions: completionSvc,
		Board:       boardSvc,
		Catalog:     cat,
	}

	return cli.NewRootCmd(app).Execute()
}
