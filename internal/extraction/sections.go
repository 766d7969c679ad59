// Package extraction - sections.go captures free-text sections by keyword.
package extraction

import (
	"strings"

	"github.com/jonathan/foa-pipeline/internal/profiles"
	"github.com/jonathan/foa-pipeline/internal/types"
)

const (
	// maxSectionLength caps captured section text, counted in runes.
	maxSectionLength = 500
	truncationMarker = "..."
)

// extractSection tries each keyword pattern in order and keeps the first
// capture. The capture runs from the keyword to the next blank line. A
// first match that trims to nothing ends the search.
func extractSection(text string, patterns []profiles.SectionPattern) string {
	for _, sp := range patterns {
		m := sp.Regex.FindStringSubmatch(text)
		if m == nil {
			continue
		}

		section := strings.TrimSpace(m[1])
		if section == "" {
			break
		}
		return truncateSection(section)
	}
	return types.NotAvailable
}

// truncateSection bounds a section at maxSectionLength runes, marking the
// cut with an ellipsis.
func truncateSection(section string) string {
	runes := []rune(section)
	if len(runes) <= maxSectionLength {
		return section
	}
	return string(runes[:maxSectionLength]) + truncationMarker
}
