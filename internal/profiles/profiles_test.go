package profiles

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestForURL(t *testing.T) {
	tests := []struct {
		name string
		url  string
		want Source
	}{
		{"nsf host", "https://www.nsf.gov/funding/opportunities/some-program", SourceNSF},
		{"nsf subdomain", "https://beta.nsf.gov/funding/opp", SourceNSF},
		{"grants.gov", "https://www.grants.gov/search-results-detail/123456", SourceGrantsGov},
		{"nih falls back to generic", "https://grants.nih.gov/grants/guide/pa-files/PA-25-303.html", SourceGrantsGov},
		{"unknown host", "https://funding.example.org/opportunity/42", SourceGrantsGov},
		{"unparseable url", "http://%zz", SourceGrantsGov},
		{"empty url", "", SourceGrantsGov},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			prof := ForURL(tt.url)
			require.NotNil(t, prof)
			assert.Equal(t, tt.want, prof.Source)
		})
	}
}

func TestInferAgency(t *testing.T) {
	tests := []struct {
		url  string
		want string
	}{
		{"https://www.grants.gov/search-results-detail/123456", "Grants.gov"},
		{"https://www.nsf.gov/funding", "National Science Foundation (NSF)"},
		{"https://grants.nih.gov/guide", "National Institutes of Health (NIH)"},
		{"https://funding.example.org/opportunity", "Unknown Agency"},
		{"http://%zz", "Unknown Agency"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, InferAgency(tt.url))
		})
	}
}

func TestProfileTablesAreOrdered(t *testing.T) {
	// Pattern precedence is positional, so table order is load-bearing.
	labels := make([]string, 0, len(GrantsGov.DatePatterns))
	for _, dp := range GrantsGov.DatePatterns {
		labels = append(labels, dp.Label)
	}
	assert.Equal(t, []string{"Open Date", "Post Date", "Close Date", "Due Date"}, labels)

	nsfLabels := make([]string, 0, len(NSF.DatePatterns))
	for _, dp := range NSF.DatePatterns {
		nsfLabels = append(nsfLabels, dp.Label)
		assert.Equal(t, RoleClose, dp.Role, "every NSF deadline label feeds close_date")
	}
	assert.Equal(t, []string{"Full Proposal Deadline", "Proposal Deadline", "Deadline", "Due Date", "Due"}, nsfLabels)
}

func TestDatePatternCapture(t *testing.T) {
	tests := []struct {
		name    string
		profile *Profile
		text    string
		label   string
		want    string
	}{
		{"due date", GrantsGov, "Applications accepted now.\nDue Date: 03/15/2025\n", "Due Date", "03/15/2025"},
		{"dash separators", GrantsGov, "Open Date: 1-2-25", "Open Date", "1-2-25"},
		{"case insensitive", GrantsGov, "close date: 12/31/2024", "Close Date", "12/31/2024"},
		{"nsf deadline", NSF, "Full Proposal Deadline: 06/01/2025", "Full Proposal Deadline", "06/01/2025"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, dp := range tt.profile.DatePatterns {
				if dp.Label != tt.label {
					continue
				}
				m := dp.Regex.FindStringSubmatch(tt.text)
				require.Len(t, m, 2)
				assert.Equal(t, tt.want, m[1])
				return
			}
			t.Fatalf("no pattern labeled %q", tt.label)
		})
	}
}

func TestAwardPatternPrecedence(t *testing.T) {
	// The range pattern outranks "up to", which outranks magnitude suffixes.
	text := "Awards range from $50,000 to $500,000 per year."
	assert.Equal(t, "$50,000 to $500,000", GrantsGov.AwardPatterns[0].FindString(text))

	capped := "Funding up to $250,000 is available."
	assert.Equal(t, "up to $250,000", GrantsGov.AwardPatterns[1].FindString(capped))

	suffixed := "Total program budget is $2.5 million."
	assert.Equal(t, "$2.5 million", GrantsGov.AwardPatterns[2].FindString(suffixed))
}

func TestFixedAgencyOnlyOnNSF(t *testing.T) {
	assert.Equal(t, "National Science Foundation (NSF)", NSF.Agency)
	assert.Empty(t, NSF.AgencyPatterns)

	assert.Empty(t, GrantsGov.Agency)
	assert.Len(t, GrantsGov.AgencyPatterns, 3)
}
