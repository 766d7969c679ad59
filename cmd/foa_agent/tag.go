package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/jonathan/foa-pipeline/internal/logger"
	"github.com/jonathan/foa-pipeline/internal/output"
	"github.com/jonathan/foa-pipeline/internal/tagging"
)

var tagCmd = &cobra.Command{
	Use:   "tag",
	Short: "Re-apply semantic tags to an existing record",
	Long:  "Reads a previously written record JSON file, re-runs the semantic tagger against its text fields, and rewrites the JSON and CSV output. Useful after ontology changes.",
	RunE:  runTag,
}

var (
	tagIn      string
	tagOut     string
	tagVerbose bool
)

func init() {
	tagCmd.Flags().StringVarP(&tagIn, "in", "i", "", "Path to an existing record JSON file (required)")
	tagCmd.Flags().StringVarP(&tagOut, "out", "o", "", "Output directory (defaults to the input file's directory)")
	tagCmd.Flags().BoolVarP(&tagVerbose, "verbose", "v", false, "Print detailed debug information")

	if err := tagCmd.MarkFlagRequired("in"); err != nil {
		panic(fmt.Sprintf("failed to mark in flag as required: %v", err))
	}

	rootCmd.AddCommand(tagCmd)
}

func runTag(_ *cobra.Command, _ []string) error {
	rec, err := output.ReadJSON(tagIn)
	if err != nil {
		return fmt.Errorf("failed to read record: %w", err)
	}

	log := logger.New(tagVerbose)
	defer func() { _ = log.Sync() }()

	tagging.New(log).Apply(rec)

	if err := rec.Validate(); err != nil {
		return fmt.Errorf("record validation failed: %w", err)
	}

	outDir := tagOut
	if outDir == "" {
		outDir = filepath.Dir(tagIn)
	}

	paths, err := output.WriteAll(outDir, rec)
	if err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	fmt.Fprintf(os.Stdout, "Re-tagged FOA: %s\n", rec.FOAID)
	fmt.Fprintf(os.Stdout, "JSON saved to: %s\n", paths.JSON)
	fmt.Fprintf(os.Stdout, "CSV saved to: %s\n", paths.CSV)

	return nil
}
