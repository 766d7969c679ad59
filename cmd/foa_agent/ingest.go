package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/jonathan/foa-pipeline/internal/config"
	"github.com/jonathan/foa-pipeline/internal/fetch"
	"github.com/jonathan/foa-pipeline/internal/pipeline"
)

var ingestCmd = &cobra.Command{
	Use:   "ingest",
	Short: "Ingest a funding opportunity announcement end-to-end",
	Long: `Fetches an announcement page (or reads a saved copy), extracts structured fields, applies semantic tags, and writes JSON and CSV output.

Configuration can be loaded from a JSON file using --config. Command-line arguments override config file values.`,
	RunE: runIngest,
}

var (
	ingestConfigPath string
	ingestURL        string
	ingestFile       string
	ingestOut        string
	ingestDBURL      string
	ingestTimeout    int
	ingestRender     bool
	ingestVerbose    bool
)

func init() {
	// Config file flag (processed first)
	ingestCmd.Flags().StringVar(&ingestConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")

	ingestCmd.Flags().StringVarP(&ingestURL, "url", "u", "", "Announcement URL (required; identifies the source even with --file)")
	ingestCmd.Flags().StringVarP(&ingestFile, "file", "f", "", "Path to a saved copy of the page, read instead of fetching the URL")
	ingestCmd.Flags().StringVarP(&ingestOut, "out", "o", "", "Output directory for JSON and CSV files")
	ingestCmd.Flags().IntVar(&ingestTimeout, "timeout", 0, "HTTP fetch timeout in seconds")
	ingestCmd.Flags().BoolVar(&ingestRender, "render", false, "Use headless browser for script-rendered pages (requires Chrome)")
	ingestCmd.Flags().BoolVarP(&ingestVerbose, "verbose", "v", false, "Print detailed debug information")

	// Database URL for run archiving
	ingestCmd.Flags().StringVar(&ingestDBURL, "db-url", "", "PostgreSQL connection URL (optional, defaults to DATABASE_URL env var)")

	rootCmd.AddCommand(ingestCmd)
}

func runIngest(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()

	// Step 1: Load config file if provided
	var cfg config.Config
	if ingestConfigPath != "" {
		loadedCfg, err := config.LoadConfig(ingestConfigPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		if err := loadedCfg.Validate(); err != nil {
			return err
		}

		cfg = *loadedCfg
		if ingestVerbose {
			_, _ = fmt.Fprintf(os.Stdout, "Loaded config from: %s\n", ingestConfigPath)
		}
	}

	// Step 2: Apply CLI overrides (command-line args take priority)
	// Only override if the flag was explicitly set
	if cmd.Flags().Changed("url") {
		cfg.URL = ingestURL
	}
	if cmd.Flags().Changed("file") {
		cfg.File = ingestFile
	}
	if cmd.Flags().Changed("out") {
		cfg.OutDir = ingestOut
	}
	if cmd.Flags().Changed("timeout") {
		cfg.TimeoutSeconds = ingestTimeout
	}
	if cmd.Flags().Changed("render") {
		cfg.Render = ingestRender
	}
	if cmd.Flags().Changed("verbose") {
		cfg.Verbose = ingestVerbose
	}
	if cmd.Flags().Changed("db-url") {
		cfg.DatabaseURL = ingestDBURL
	}

	// Step 3: Apply defaults for unset values
	defaults := config.Config{
		OutDir:         "./out",
		TimeoutSeconds: int(fetch.DefaultTimeout / time.Second),
	}
	cfg = cfg.MergeWithDefaults(defaults)

	// Step 4: Validate required fields
	if cfg.URL == "" {
		return fmt.Errorf("--url must be provided (via flag or config)")
	}
	if cfg.File != "" {
		if _, err := os.Stat(cfg.File); os.IsNotExist(err) {
			return fmt.Errorf("input file not found: %s", cfg.File)
		}
	}

	// Step 5: Database URL handling (archive is optional)
	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	}

	fetchOpts := fetch.DefaultOptions()
	if cfg.TimeoutSeconds > 0 {
		fetchOpts.Timeout = time.Duration(cfg.TimeoutSeconds) * time.Second
	}

	res, err := pipeline.Run(ctx, pipeline.RunOptions{
		SourceURL:   cfg.URL,
		FilePath:    cfg.File,
		OutDir:      cfg.OutDir,
		DatabaseURL: cfg.DatabaseURL,
		Render:      cfg.Render,
		Verbose:     cfg.Verbose,
		Fetch:       fetchOpts,
	})
	if err != nil {
		return err
	}

	fmt.Fprintf(os.Stdout, "Successfully processed FOA: %s\n", res.Record.FOAID)
	fmt.Fprintf(os.Stdout, "JSON saved to: %s\n", res.Paths.JSON)
	fmt.Fprintf(os.Stdout, "CSV saved to: %s\n", res.Paths.CSV)

	return nil
}
