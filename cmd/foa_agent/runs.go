package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/foa-pipeline/internal/db"
)

var runsCmd = &cobra.Command{
	Use:   "runs",
	Short: "List recent ingestion runs from the archive",
	Long:  "Lists the most recent ingestion runs recorded in the PostgreSQL archive, newest first.",
	RunE:  runRuns,
}

var (
	runsDBURL string
	runsLimit int
)

func init() {
	runsCmd.Flags().StringVar(&runsDBURL, "db-url", "", "PostgreSQL connection URL (optional, defaults to DATABASE_URL env var)")
	runsCmd.Flags().IntVarP(&runsLimit, "limit", "n", 20, "Maximum number of runs to list")

	rootCmd.AddCommand(runsCmd)
}

func runRuns(_ *cobra.Command, _ []string) error {
	ctx := context.Background()

	dbURL := runsDBURL
	if dbURL == "" {
		dbURL = os.Getenv("DATABASE_URL")
	}
	if dbURL == "" {
		return fmt.Errorf("DATABASE_URL environment variable or --db-url flag is required")
	}

	database, err := db.Connect(ctx, dbURL)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer database.Close()

	runs, err := database.ListRuns(ctx, runsLimit)
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Fprintln(os.Stdout, "No ingestion runs recorded.")
		return nil
	}

	for _, r := range runs {
		line := fmt.Sprintf("%s  %-9s  %s  %s", r.ID, r.Status, r.CreatedAt.Format("2006-01-02 15:04:05"), r.SourceURL)
		if r.CompletedAt != nil {
			line += fmt.Sprintf("  (finished %s)", r.CompletedAt.Format("2006-01-02 15:04:05"))
		}
		fmt.Fprintln(os.Stdout, line)
	}

	return nil
}
