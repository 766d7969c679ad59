package pipeline

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/jonathan/foa-pipeline/internal/output"
	"github.com/jonathan/foa-pipeline/internal/types"
)

const nsfPageHTML = `<h1>Climate Research Grant</h1><p>Agency: NSF Department of Environment. Due Date: 04/01/2025. Eligibility: open to graduate students. Description: computational climate modeling research.</p>`

// Blank lines between paragraphs keep each labeled section on its own line
// in the extracted text.
const grantsGovPageHTML = `<html><head><title>Grants.gov | Search Results</title></head><body>
<h1>Community Health Research Program</h1>

<p>Agency: Department of Health and Human Services</p>

<p>Open Date: 01/15/2025</p>

<p>Close Date: 06/30/2025</p>

<p>Eligibility: nonprofit organizations and universities studying community health</p>

<p>Description: experimental studies of health outcomes in rural communities</p>

<p>Award: $100,000 to $500,000</p>
</body></html>`

func TestProcessHTML_NSFAnnouncement(t *testing.T) {
	rec, err := ProcessHTML(nsfPageHTML, "https://www.nsf.gov/funding/climate-research-grant", zap.NewNop())
	require.NoError(t, err)

	assert.Equal(t, "Climate Research Grant", rec.Title)
	assert.Equal(t, "National Science Foundation (NSF)", rec.Agency)
	assert.Equal(t, types.NotAvailable, rec.OpenDate)
	assert.Equal(t, "2025-04-01T00:00:00", rec.CloseDate)
	assert.Equal(t, types.NotAvailable, rec.AwardRange)
	assert.Regexp(t, `^FOA-\d+$`, rec.FOAID)

	assert.Equal(t, []string{"science", "education", "environment"}, rec.SemanticTags.ResearchDomains)
	assert.Equal(t, []string{"computational"}, rec.SemanticTags.Methods)
	assert.Equal(t, []string{"students"}, rec.SemanticTags.Populations)
	assert.Equal(t, []string{"basic_research"}, rec.SemanticTags.SponsorThemes)

	assert.NoError(t, rec.Validate())
}

func TestProcessHTML_DeterministicForSameInput(t *testing.T) {
	first, err := ProcessHTML(nsfPageHTML, "https://www.nsf.gov/funding/climate-research-grant", zap.NewNop())
	require.NoError(t, err)
	second, err := ProcessHTML(nsfPageHTML, "https://www.nsf.gov/funding/climate-research-grant", zap.NewNop())
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestRun_FromFile(t *testing.T) {
	dir := t.TempDir()
	pagePath := filepath.Join(dir, "announcement.html")
	require.NoError(t, os.WriteFile(pagePath, []byte(grantsGovPageHTML), 0644))

	outDir := filepath.Join(dir, "out")
	res, err := Run(context.Background(), RunOptions{
		SourceURL: "https://www.grants.gov/search-results-detail/358702",
		FilePath:  pagePath,
		OutDir:    outDir,
	})
	require.NoError(t, err)
	require.NotNil(t, res)

	rec := res.Record
	assert.Equal(t, "FOA-358702", rec.FOAID)
	assert.Equal(t, "Community Health Research Program", rec.Title)
	assert.Equal(t, "Department of Health and Human Services", rec.Agency)
	assert.Equal(t, "2025-01-15T00:00:00", rec.OpenDate)
	assert.Equal(t, "2025-06-30T00:00:00", rec.CloseDate)
	assert.Equal(t, "nonprofit organizations and universities studying community health", rec.EligibilityText)
	assert.Equal(t, "experimental studies of health outcomes in rural communities", rec.ProgramDescription)
	assert.Equal(t, "$100,000 to $500,000", rec.AwardRange)

	assert.Equal(t, []string{"health", "science", "social"}, rec.SemanticTags.ResearchDomains)
	assert.Equal(t, []string{"experimental"}, rec.SemanticTags.Methods)
	assert.Equal(t, []string{"institutions", "communities"}, rec.SemanticTags.Populations)
	assert.Equal(t, []string{"general"}, rec.SemanticTags.SponsorThemes)

	// Archiving was not configured
	assert.Equal(t, uuid.Nil, res.RunID)

	// Both output files land in the requested directory
	assert.Equal(t, filepath.Join(outDir, output.JSONFileName), res.Paths.JSON)
	assert.Equal(t, filepath.Join(outDir, output.CSVFileName), res.Paths.CSV)

	written, err := output.ReadJSON(res.Paths.JSON)
	require.NoError(t, err)
	assert.Equal(t, rec, written)

	_, err = os.Stat(res.Paths.CSV)
	assert.NoError(t, err)
}

func TestRun_FetchesOverHTTP(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte(grantsGovPageHTML))
	}))
	defer server.Close()

	outDir := t.TempDir()
	res, err := Run(context.Background(), RunOptions{
		SourceURL: server.URL + "/search-results-detail/358702",
		OutDir:    outDir,
	})
	require.NoError(t, err)
	require.NotNil(t, res)

	// Unrecognized host falls through to the generic profile
	assert.Equal(t, "FOA-358702", res.Record.FOAID)
	assert.Equal(t, "Community Health Research Program", res.Record.Title)
	assert.Equal(t, "Department of Health and Human Services", res.Record.Agency)
}

func TestRun_FetchFailureAborts(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gone", http.StatusNotFound)
	}))
	defer server.Close()

	_, err := Run(context.Background(), RunOptions{
		SourceURL: server.URL + "/missing",
		OutDir:    t.TempDir(),
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "fetching announcement failed")
}

func TestRun_MissingInputFile(t *testing.T) {
	_, err := Run(context.Background(), RunOptions{
		SourceURL: "https://www.grants.gov/search-results-detail/358702",
		FilePath:  filepath.Join(t.TempDir(), "missing.html"),
		OutDir:    t.TempDir(),
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading input file failed")
}

func TestRun_RejectsRecordWithoutSourceURL(t *testing.T) {
	dir := t.TempDir()
	pagePath := filepath.Join(dir, "announcement.html")
	require.NoError(t, os.WriteFile(pagePath, []byte(grantsGovPageHTML), 0644))

	_, err := Run(context.Background(), RunOptions{
		FilePath: pagePath,
		OutDir:   filepath.Join(dir, "out"),
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "record validation failed")
}

func TestRun_ArchivesToDatabase_Integration(t *testing.T) {
	// Requires a reachable PostgreSQL instance with schema.sql applied.
	databaseURL := os.Getenv("DATABASE_URL")
	if databaseURL == "" {
		t.Skip("Skipping integration test: DATABASE_URL not set")
	}

	dir := t.TempDir()
	pagePath := filepath.Join(dir, "announcement.html")
	require.NoError(t, os.WriteFile(pagePath, []byte(grantsGovPageHTML), 0644))

	res, err := Run(context.Background(), RunOptions{
		SourceURL:   "https://www.grants.gov/search-results-detail/358702",
		FilePath:    pagePath,
		OutDir:      filepath.Join(dir, "out"),
		DatabaseURL: databaseURL,
	})
	require.NoError(t, err)

	if res.RunID == uuid.Nil {
		t.Log("Archive degraded to warnings (schema missing?); record still produced")
	} else {
		t.Logf("Archived run %s", res.RunID)
	}
}
