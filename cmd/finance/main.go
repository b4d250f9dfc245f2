// Command finance is the interactive text front end of the tracker.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"finance-tracker/internal/auth"
	"finance-tracker/internal/config"
	"finance-tracker/internal/ledger"
	"finance-tracker/internal/prompt"
	"finance-tracker/internal/storage"
)

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		if err == flag.ErrHelp {
			os.Exit(0)
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("finance", flag.ContinueOnError)
	fs.SetOutput(stderr)

	configFile := fs.String("config", "", "Path to an optional YAML config file")
	dbPath := fs.String("db", "", "Path to database file (overrides config)")

	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, err := config.Load(*configFile)
	if err != nil {
		return err
	}
	if *dbPath != "" {
		cfg.DBPath = *dbPath
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	// Logs go to stderr so they never interleave with the menu.
	logger := cfg.NewLogger(stderr)

	db, err := storage.NewDB(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	a := &app{
		prompt: prompt.New(stdin, stdout),
		out:    stdout,
		auth:   auth.NewService(db, logger),
		ledger: ledger.New(db, logger),
	}
	return a.run(context.Background())
}
