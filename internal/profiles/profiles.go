// Package profiles defines per-source extraction profiles and selects one from the source URL.
package profiles

import (
	"net/url"
	"regexp"
	"strings"
)

// Source identifies a known announcement source.
type Source string

const (
	// SourceNSF is nsf.gov program pages
	SourceNSF Source = "nsf"
	// SourceGrantsGov is the generic profile, used for grants.gov and any
	// unrecognized host
	SourceGrantsGov Source = "grants_gov"
)

// Role says which record field a date pattern feeds.
type Role string

const (
	// RoleOpen feeds open_date
	RoleOpen Role = "open"
	// RoleClose feeds close_date
	RoleClose Role = "close"
)

// DatePattern pairs a labeled date regex with the field it feeds. The
// pairing is explicit per entry; nothing is inferred from the label text.
type DatePattern struct {
	Label string
	Regex *regexp.Regexp
	Role  Role
}

// SectionPattern captures the text block following a section keyword.
type SectionPattern struct {
	Keyword string
	Regex   *regexp.Regexp
}

// Profile bundles the ordered pattern tables for one source. Every table
// is applied first match wins, so slice order is part of the contract.
// Profiles are read-only after package init.
type Profile struct {
	Source Source

	// Agency is a fixed publisher label. When empty, AgencyPatterns and
	// then host inference resolve the agency instead.
	Agency         string
	AgencyPatterns []*regexp.Regexp

	DatePatterns        []DatePattern
	EligibilityPatterns []SectionPattern
	DescriptionPatterns []SectionPattern
	AwardPatterns       []*regexp.Regexp
}

// ForURL selects the extraction profile for a source URL by host
// substring. Unrecognized or unparseable URLs get the generic profile, so
// selection never fails.
func ForURL(rawURL string) *Profile {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return GrantsGov
	}

	host := strings.ToLower(parsed.Host)
	if strings.Contains(host, "nsf.gov") {
		return NSF
	}
	return GrantsGov
}

// InferAgency maps a source host to an agency label, for profiles without
// a fixed Agency whose patterns found nothing on the page.
func InferAgency(rawURL string) string {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return "Unknown Agency"
	}

	host := strings.ToLower(parsed.Host)
	switch {
	case strings.Contains(host, "grants.gov"):
		return "Grants.gov"
	case strings.Contains(host, "nsf.gov"):
		return "National Science Foundation (NSF)"
	case strings.Contains(host, "nih.gov"):
		return "National Institutes of Health (NIH)"
	default:
		return "Unknown Agency"
	}
}
