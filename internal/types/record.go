// Package types provides type definitions for structured data used throughout the foa-pipeline system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import (
	"github.com/go-playground/validator/v10"
)

// NotAvailable is the sentinel stored in any record field the extractor
// could not resolve. Extraction never fails on missing data; it fills
// this sentinel instead.
const NotAvailable = "N/A"

// Record represents a single funding opportunity announcement extracted
// from a source page. Dates are ISO 8601 strings ("2006-01-02T15:04:05")
// or NotAvailable.
type Record struct {
	FOAID              string       `json:"foa_id" validate:"required"`
	Title              string       `json:"title" validate:"required"`
	Agency             string       `json:"agency" validate:"required"`
	OpenDate           string       `json:"open_date" validate:"required"`
	CloseDate          string       `json:"close_date" validate:"required"`
	EligibilityText    string       `json:"eligibility_text" validate:"required"`
	ProgramDescription string       `json:"program_description" validate:"required"`
	AwardRange         string       `json:"award_range" validate:"required"`
	SourceURL          string       `json:"source_url" validate:"required,url"`
	SemanticTags       SemanticTags `json:"semantic_tags"`
}

// SemanticTags holds the four tag categories assigned by the rule-based
// tagger. Slices are always initialized so empty categories serialize as
// [] rather than null. SponsorThemes carries exactly one label.
type SemanticTags struct {
	ResearchDomains []string `json:"research_domains"`
	Methods         []string `json:"methods"`
	Populations     []string `json:"populations"`
	SponsorThemes   []string `json:"sponsor_themes"`
}

// NewSemanticTags returns an empty tag set with all categories initialized.
func NewSemanticTags() SemanticTags {
	return SemanticTags{
		ResearchDomains: []string{},
		Methods:         []string{},
		Populations:     []string{},
		SponsorThemes:   []string{},
	}
}

// NewRecord returns a Record for the given source URL with every
// extractable field set to NotAvailable and empty tag sets.
func NewRecord(sourceURL string) *Record {
	return &Record{
		FOAID:              NotAvailable,
		Title:              NotAvailable,
		Agency:             NotAvailable,
		OpenDate:           NotAvailable,
		CloseDate:          NotAvailable,
		EligibilityText:    NotAvailable,
		ProgramDescription: NotAvailable,
		AwardRange:         NotAvailable,
		SourceURL:          sourceURL,
		SemanticTags:       NewSemanticTags(),
	}
}

// Validate checks that every field of the record is present. Extraction
// fills sentinels for anything it cannot resolve, so this only fails on
// records that were not produced by the pipeline.
func (r *Record) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}
