// Package extraction turns fetched HTML into a Record using the pattern
// tables of a source profile. Extraction is a best-effort cascade: every
// field it cannot resolve gets the sentinel, and nothing here fails for
// data-quality reasons.
package extraction

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"go.uber.org/zap"

	"github.com/jonathan/foa-pipeline/internal/profiles"
	"github.com/jonathan/foa-pipeline/internal/types"
)

// Extractor applies a profile's pattern tables to page text.
type Extractor struct {
	log *zap.Logger
}

// New creates an Extractor. A nil logger disables diagnostics.
func New(log *zap.Logger) *Extractor {
	if log == nil {
		log = zap.NewNop()
	}
	return &Extractor{log: log}
}

// Extract builds a Record from raw HTML. The identifier and semantic tags
// are left at their defaults; those belong to later pipeline stages. The
// only error is a failed HTML parse.
func (e *Extractor) Extract(html string, prof *profiles.Profile, sourceURL string) (*types.Record, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("failed to parse HTML: %w", err)
	}

	rec := types.NewRecord(sourceURL)
	rec.Title = extractTitle(doc)

	text := visibleText(doc)
	rec.Agency = extractAgency(text, prof, sourceURL)
	e.extractDates(text, prof, rec)
	rec.EligibilityText = extractSection(text, prof.EligibilityPatterns)
	rec.ProgramDescription = extractSection(text, prof.DescriptionPatterns)
	rec.AwardRange = extractAward(text, prof.AwardPatterns)

	return rec, nil
}

// VisibleText parses HTML and returns the text a reader would see, with
// script, style and noscript content removed.
func VisibleText(html string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", fmt.Errorf("failed to parse HTML: %w", err)
	}
	return visibleText(doc), nil
}

// visibleText removes non-rendered elements from the document, so callers
// needing element structure must query before calling it.
func visibleText(doc *goquery.Document) string {
	doc.Find("script, style, noscript").Remove()
	return doc.Text()
}

// extractTitle prefers the first heading, then the document title.
func extractTitle(doc *goquery.Document) string {
	if h1 := strings.TrimSpace(doc.Find("h1").First().Text()); h1 != "" {
		return h1
	}
	if title := strings.TrimSpace(doc.Find("title").First().Text()); title != "" {
		return title
	}
	return types.NotAvailable
}

// extractAgency resolves the publishing agency. Profiles with a fixed
// label short-circuit; otherwise the ordered label patterns run against
// the page text and the source host decides as a last resort. The result
// is never the sentinel.
func extractAgency(text string, prof *profiles.Profile, sourceURL string) string {
	if prof.Agency != "" {
		return prof.Agency
	}
	for _, re := range prof.AgencyPatterns {
		m := re.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		if agency := strings.TrimSpace(m[1]); agency != "" {
			return agency
		}
	}
	return profiles.InferAgency(sourceURL)
}

// extractAward returns the whole text of the first monetary pattern that
// matches anywhere. Pattern order is the only precedence.
func extractAward(text string, patterns []*regexp.Regexp) string {
	for _, re := range patterns {
		if m := re.FindString(text); m != "" {
			return m
		}
	}
	return types.NotAvailable
}
