// Package extraction - dates.go scans labeled date patterns and parses
// their captures into ISO 8601.
package extraction

import (
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/jonathan/foa-pipeline/internal/profiles"
	"github.com/jonathan/foa-pipeline/internal/types"
)

// isoLayout renders parsed dates the way downstream consumers expect,
// date plus a zero time component.
const isoLayout = "2006-01-02T15:04:05"

// dateLayouts covers the month-first numeric shapes the capture pattern
// admits, after separators are normalized to slashes. Two-digit years
// resolve to 1969-2068.
var dateLayouts = []string{
	"1/2/2006",
	"1/2/06",
}

// extractDates runs the profile's date patterns in order. The first value
// that parses for a role keeps it; later matches for the same role are
// ignored. Unparseable captures are discarded with a warning and scanning
// continues.
func (e *Extractor) extractDates(text string, prof *profiles.Profile, rec *types.Record) {
	for _, dp := range prof.DatePatterns {
		m := dp.Regex.FindStringSubmatch(text)
		if m == nil {
			continue
		}

		iso, err := parseDate(m[1])
		if err != nil {
			e.log.Warn("discarding unparseable date",
				zap.String("label", dp.Label),
				zap.String("value", m[1]))
			continue
		}

		switch dp.Role {
		case profiles.RoleOpen:
			if rec.OpenDate == types.NotAvailable {
				rec.OpenDate = iso
			}
		case profiles.RoleClose:
			if rec.CloseDate == types.NotAvailable {
				rec.CloseDate = iso
			}
		}
	}
}

// parseDate converts a captured numeric date to ISO 8601.
func parseDate(raw string) (string, error) {
	normalized := strings.ReplaceAll(raw, "-", "/")
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, normalized); err == nil {
			return t.Format(isoLayout), nil
		}
	}
	return "", fmt.Errorf("no known date layout matches %q", raw)
}
