// Package profiles - patterns.go holds the compiled pattern tables for each source.
package profiles

import "regexp"

// datePattern compiles the shared label-then-date shape: 1-2 digit month
// and day, 2 or 4 digit year, / or - separators.
func datePattern(label string, role Role) DatePattern {
	return DatePattern{
		Label: label,
		Regex: regexp.MustCompile(`(?i)` + label + `[:\s]+(\d{1,2}[/-]\d{1,2}[/-]\d{2,4})`),
		Role:  role,
	}
}

// sectionPatterns compiles keyword capture patterns: the keyword, then the
// rest of its line plus any directly following lines.
func sectionPatterns(keywords ...string) []SectionPattern {
	out := make([]SectionPattern, 0, len(keywords))
	for _, kw := range keywords {
		out = append(out, SectionPattern{
			Keyword: kw,
			Regex:   regexp.MustCompile(`(?i)` + regexp.QuoteMeta(kw) + `[:\s]*([^\n]+(?:\n[^\n]+)*)`),
		})
	}
	return out
}

// awardPatterns is shared by every profile: an explicit range, then an
// "up to" cap, then a single amount with a magnitude suffix.
var awardPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\$[\d,]+(?:\.\d+)?\s*(?:to|-)?\s*\$?[\d,]+(?:\.\d+)?`),
	regexp.MustCompile(`(?i)up to \$[\d,]+(?:\.\d+)?`),
	regexp.MustCompile(`(?i)\$[\d,]+(?:\.\d+)?\s*(?:million|M|thousand|K)`),
}

// GrantsGov is the generic profile: grants.gov pages plus any host no
// dedicated profile claims.
var GrantsGov = &Profile{
	Source: SourceGrantsGov,
	AgencyPatterns: []*regexp.Regexp{
		regexp.MustCompile(`(?i)Agency:\s*([^\n]+)`),
		regexp.MustCompile(`(?i)Funding Agency:\s*([^\n]+)`),
		regexp.MustCompile(`(?i)Department:\s*([^\n]+)`),
	},
	DatePatterns: []DatePattern{
		datePattern("Open Date", RoleOpen),
		datePattern("Post Date", RoleOpen),
		datePattern("Close Date", RoleClose),
		datePattern("Due Date", RoleClose),
	},
	EligibilityPatterns: sectionPatterns("eligibility", "eligible", "qualification"),
	DescriptionPatterns: sectionPatterns("description", "summary", "overview", "purpose"),
	AwardPatterns:       awardPatterns,
}

// NSF covers nsf.gov program pages. The publisher is fixed, and every
// deadline label NSF uses feeds close_date; program pages carry no labeled
// open date.
var NSF = &Profile{
	Source: SourceNSF,
	Agency: "National Science Foundation (NSF)",
	DatePatterns: []DatePattern{
		datePattern("Full Proposal Deadline", RoleClose),
		datePattern("Proposal Deadline", RoleClose),
		datePattern("Deadline", RoleClose),
		datePattern("Due Date", RoleClose),
		datePattern("Due", RoleClose),
	},
	EligibilityPatterns: sectionPatterns("eligibility", "eligible", "who may"),
	DescriptionPatterns: sectionPatterns("description", "summary", "overview", "synopsis"),
	AwardPatterns:       awardPatterns,
}
