// Package tagging attaches ontology labels to extracted records using
// rule-based keyword matching.
package tagging

import (
	"strings"

	"go.uber.org/zap"

	"github.com/jonathan/foa-pipeline/internal/types"
)

// Tagger applies the ontology to records.
type Tagger struct {
	log *zap.Logger
}

// New creates a Tagger. A nil logger disables diagnostics.
func New(log *zap.Logger) *Tagger {
	if log == nil {
		log = zap.NewNop()
	}
	return &Tagger{log: log}
}

// Apply replaces the record's semantic tags. Tags are a pure function of
// the title, program description, eligibility text and agency, so
// re-applying to an already tagged record yields the same sets.
func (t *Tagger) Apply(rec *types.Record) {
	text := strings.ToLower(rec.Title + " " + rec.ProgramDescription + " " + rec.EligibilityText)

	tags := types.NewSemanticTags()
	tags.ResearchDomains = matchCategory(text, researchDomains)
	tags.Methods = matchCategory(text, methods)
	tags.Populations = matchCategory(text, populations)
	tags.SponsorThemes = append(tags.SponsorThemes, sponsorTheme(rec.Agency))

	t.log.Debug("tagging complete",
		zap.String("foa_id", rec.FOAID),
		zap.Strings("research_domains", tags.ResearchDomains),
		zap.Strings("methods", tags.Methods),
		zap.Strings("populations", tags.Populations),
		zap.Strings("sponsor_themes", tags.SponsorThemes),
	)

	rec.SemanticTags = tags
}

// matchCategory attaches a label when any of its keywords appears in the
// text. Labels are independent; several may match, none is valid too.
func matchCategory(text string, cat Category) []string {
	matched := make([]string, 0)
	for _, label := range cat.Labels {
		if containsAny(text, label.Keywords) {
			matched = append(matched, label.Name)
		}
	}
	return matched
}

func containsAny(text string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(text, kw) {
			return true
		}
	}
	return false
}

// sponsorTheme is the three-way agency rule. It always yields a label, so
// sponsor_themes carries exactly one entry.
func sponsorTheme(agency string) string {
	a := strings.ToLower(agency)
	switch {
	case strings.Contains(a, "nsf"):
		return themeBasicResearch
	case strings.Contains(a, "nih"):
		return themeHealthResearch
	default:
		return themeGeneral
	}
}
