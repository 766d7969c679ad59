// Package output serializes tagged records into the JSON and CSV
// artifacts of an ingestion run.
package output

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/jonathan/foa-pipeline/internal/types"
)

// Artifact file names within the output directory.
const (
	JSONFileName = "foa.json"
	CSVFileName  = "foa.csv"
)

// Paths reports where WriteAll put its artifacts.
type Paths struct {
	JSON string
	CSV  string
}

// WriteAll creates outDir if needed and writes both artifacts.
func WriteAll(outDir string, rec *types.Record) (*Paths, error) {
	if err := os.MkdirAll(outDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}

	paths := &Paths{
		JSON: filepath.Join(outDir, JSONFileName),
		CSV:  filepath.Join(outDir, CSVFileName),
	}
	if err := WriteJSON(paths.JSON, rec); err != nil {
		return nil, err
	}
	if err := WriteCSV(paths.CSV, rec); err != nil {
		return nil, err
	}
	return paths, nil
}

// WriteJSON writes the record as indented JSON.
func WriteJSON(path string, rec *types.Record) error {
	data, err := json.MarshalIndent(rec, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal record: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write JSON file: %w", err)
	}
	return nil
}

// ReadJSON loads a previously written record file.
func ReadJSON(path string) (*types.Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read record file: %w", err)
	}
	var rec types.Record
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, fmt.Errorf("failed to parse record file: %w", err)
	}
	return &rec, nil
}

// csvHeader fixes the column order: scalar fields in record order, then
// one column per tag category.
var csvHeader = []string{
	"foa_id", "title", "agency", "open_date", "close_date",
	"eligibility_text", "program_description", "award_range", "source_url",
	"research_domains", "methods", "populations", "sponsor_themes",
}

// WriteCSV writes a single-row CSV flattening of the record. Tag lists
// are joined with "; ".
func WriteCSV(path string, rec *types.Record) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create CSV file: %w", err)
	}
	defer func() { _ = f.Close() }()

	w := csv.NewWriter(f)
	row := []string{
		rec.FOAID, rec.Title, rec.Agency, rec.OpenDate, rec.CloseDate,
		rec.EligibilityText, rec.ProgramDescription, rec.AwardRange, rec.SourceURL,
		joinTags(rec.SemanticTags.ResearchDomains),
		joinTags(rec.SemanticTags.Methods),
		joinTags(rec.SemanticTags.Populations),
		joinTags(rec.SemanticTags.SponsorThemes),
	}
	if err := w.Write(csvHeader); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}
	if err := w.Write(row); err != nil {
		return fmt.Errorf("failed to write CSV row: %w", err)
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("failed to flush CSV: %w", err)
	}
	return nil
}

func joinTags(tags []string) string {
	return strings.Join(tags, "; ")
}
