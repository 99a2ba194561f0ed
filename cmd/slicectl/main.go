package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/mattn/go-isatty"
	"github.com/printforge/slicectl/internal/cli"
	"github.com/printforge/slicectl/internal/db"
	"github.com/printforge/slicectl/internal/repository"
	"github.com/printforge/slicectl/internal/service"
	"github.com/printforge/slicectl/internal/slicer"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg := slicer.LoadConfig()

	var observer slicer.Observer = slicer.NoopObserver{}
	if cfg.LogCalls {
		observer = slicer.NewLogObserver(os.Stderr)
	}
	client := slicer.NewClient(cfg, observer)

	// Job history lives in ~/.slicectl/history.db unless overridden.
	// SLICECTL_DB=off disables it entirely; an unopenable database only
	// costs the history, never the slice.
	var jobRepo repository.JobRepo
	dbPath := os.Getenv("SLICECTL_DB")
	if dbPath != "off" {
		if dbPath == "" {
			home, err := os.UserHomeDir()
			if err != nil {
				return fmt.Errorf("finding home directory: %w", err)
			}
			dbPath = filepath.Join(home, ".slicectl", "history.db")
		}
		database, err := db.OpenDB(dbPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: job history unavailable: %v\n", err)
		} else {
			defer database.Close()
			jobRepo = repository.NewSQLiteJobRepo(database)
		}
	}

	app := &cli.App{
		Config: cfg,
		Client: client,
		Slice:  service.NewSliceService(cfg, client, jobRepo),
	}
	if jobRepo != nil {
		app.Jobs = service.NewJobService(jobRepo)
	}

	// Detect interactive terminal for the preset picker and spinner.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}
