// Package pipeline provides the high-level orchestration for one ingestion run.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/jonathan/foa-pipeline/internal/db"
	"github.com/jonathan/foa-pipeline/internal/extraction"
	"github.com/jonathan/foa-pipeline/internal/fetch"
	"github.com/jonathan/foa-pipeline/internal/identifier"
	"github.com/jonathan/foa-pipeline/internal/logger"
	"github.com/jonathan/foa-pipeline/internal/observability"
	"github.com/jonathan/foa-pipeline/internal/output"
	"github.com/jonathan/foa-pipeline/internal/profiles"
	"github.com/jonathan/foa-pipeline/internal/schemas"
	"github.com/jonathan/foa-pipeline/internal/tagging"
	"github.com/jonathan/foa-pipeline/internal/types"
)

// RunOptions holds configuration for running one ingestion
type RunOptions struct {
	SourceURL   string
	FilePath    string // Read HTML from a local file instead of fetching SourceURL
	OutDir      string
	DatabaseURL string
	Render      bool
	Verbose     bool
	Fetch       *fetch.Options // Optional, DefaultOptions when nil
}

// Result summarizes a completed ingestion run
type Result struct {
	Record *types.Record
	Paths  output.Paths
	RunID  uuid.UUID // uuid.Nil when archiving is disabled
}

// Run executes the full ingestion pipeline: fetch, extract, tag, validate,
// write. When a database URL is configured the run and its record are
// archived; archive failures degrade to warnings rather than aborting.
func Run(ctx context.Context, opts RunOptions) (*Result, error) {
	log := logger.New(opts.Verbose)
	defer func() { _ = log.Sync() }()

	// Initialize database connection if configured
	var database *db.DB
	var runID uuid.UUID
	if opts.DatabaseURL != "" {
		var err error
		database, err = db.Connect(ctx, opts.DatabaseURL)
		if err != nil {
			fmt.Printf("Warning: Failed to connect to database: %v\n", err)
			fmt.Printf("Continuing without archiving...\n")
			database = nil
		} else {
			defer database.Close()
			if opts.Verbose {
				fmt.Printf("[VERBOSE] Connected to database\n")
			}
			runID, err = database.CreateRun(ctx, opts.SourceURL)
			if err != nil {
				fmt.Printf("Warning: Failed to create archive run: %v\n", err)
				runID = uuid.Nil
			} else if opts.Verbose {
				fmt.Printf("[VERBOSE] Created archive run: %s\n", runID)
			}
		}
	}

	result, err := run(ctx, opts, log)

	if database != nil && runID != uuid.Nil {
		if err != nil {
			_ = database.CompleteRun(ctx, runID, db.RunStatusFailed)
		} else {
			if saveErr := database.SaveRecord(ctx, runID, result.Record); saveErr != nil {
				fmt.Printf("Warning: Failed to archive record: %v\n", saveErr)
			}
			_ = database.CompleteRun(ctx, runID, db.RunStatusCompleted)
			result.RunID = runID
		}
	}

	return result, err
}

// run executes the pipeline stages without archive bookkeeping
func run(ctx context.Context, opts RunOptions, log *zap.Logger) (*Result, error) {
	// Initialize observability printer for verbose output
	printer := observability.NewPrinter(os.Stdout)

	// Step 1: Obtain page HTML (from URL or file)
	var html string
	if opts.FilePath != "" {
		fmt.Printf("Step 1/5: Reading announcement page from file: %s...\n", opts.FilePath)
		data, err := os.ReadFile(opts.FilePath)
		if err != nil {
			return nil, fmt.Errorf("reading input file failed: %w", err)
		}
		html = string(data)
	} else {
		fmt.Printf("Step 1/5: Fetching announcement page: %s...\n", opts.SourceURL)
		fetchOpts := opts.Fetch
		if fetchOpts == nil {
			fetchOpts = fetch.DefaultOptions()
		}
		res, err := fetch.URL(ctx, opts.SourceURL, fetchOpts)
		if err != nil {
			return nil, fmt.Errorf("fetching announcement failed: %w", err)
		}
		html = res.HTML

		if opts.Render {
			if text, terr := extraction.VisibleText(html); terr == nil && fetch.ShouldRender(text) {
				fmt.Printf("Static fetch returned little visible text, rendering with headless browser...\n")
				rendered, rerr := fetch.Render(ctx, opts.SourceURL, fetchOpts.Timeout)
				if rerr != nil {
					// Degrade to the static content rather than failing the run
					fmt.Printf("Warning: Browser rendering failed: %v\n", rerr)
					log.Warn("browser render failed", zap.String("url", opts.SourceURL), zap.Error(rerr))
				} else {
					html = rendered
				}
			}
		}
	}

	// Step 2: Extract structured fields using the source profile
	fmt.Printf("Step 2/5: Extracting structured fields...\n")
	prof := profiles.ForURL(opts.SourceURL)
	if opts.Verbose {
		fmt.Printf("[VERBOSE] Using %s source profile\n", prof.Source)
	}

	rec, err := extraction.New(log).Extract(html, prof, opts.SourceURL)
	if err != nil {
		return nil, fmt.Errorf("extraction failed: %w", err)
	}
	rec.FOAID = identifier.Generate(rec.Title, opts.SourceURL)
	if opts.Verbose {
		printer.PrintRecord(rec)
	}

	// Step 3: Apply semantic tags
	fmt.Printf("Step 3/5: Applying semantic tags...\n")
	tagging.New(log).Apply(rec)
	if opts.Verbose {
		printer.PrintTags(rec.SemanticTags)
	}

	// Step 4: Validate the assembled record
	fmt.Printf("Step 4/5: Validating record...\n")
	if err := rec.Validate(); err != nil {
		return nil, fmt.Errorf("record validation failed: %w", err)
	}

	// Step 5: Write output files
	fmt.Printf("Step 5/5: Writing output files to %s...\n", opts.OutDir)
	paths, err := output.WriteAll(opts.OutDir, rec)
	if err != nil {
		return nil, fmt.Errorf("writing output failed: %w", err)
	}

	// Check the written file against the record schema. Extraction already
	// guarantees the shape, so a mismatch means the schema and the ontology
	// have drifted apart. The check never fails the run.
	if err := schemas.ValidateRecordFile(paths.JSON); err != nil {
		var validationErr *schemas.ValidationError
		if errors.As(err, &validationErr) {
			fmt.Printf("Warning: written record does not match the record schema: %v\n", err)
			log.Warn("record schema mismatch", zap.String("path", paths.JSON), zap.Error(err))
		} else {
			// Schema loading issue (binary running outside the repo) - skip the check
			log.Debug("record schema check skipped", zap.String("path", paths.JSON), zap.Error(err))
		}
	}

	return &Result{Record: rec, Paths: *paths}, nil
}

// ProcessHTML runs the fetch-free core of the pipeline: profile selection,
// field extraction, identifier assignment, and tagging. Callers that already
// hold page HTML can produce a record without network access.
func ProcessHTML(html, sourceURL string, log *zap.Logger) (*types.Record, error) {
	rec, err := extraction.New(log).Extract(html, profiles.ForURL(sourceURL), sourceURL)
	if err != nil {
		return nil, fmt.Errorf("extraction failed: %w", err)
	}
	rec.FOAID = identifier.Generate(rec.Title, sourceURL)
	tagging.New(log).Apply(rec)
	return rec, nil
}
