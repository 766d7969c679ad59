// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/foa-pipeline/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxPreviewLength is how much of a free-text field to show
	maxPreviewLength = 50
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// preview shortens free text for box display
func preview(text string) string {
	if len(text) > maxPreviewLength {
		return text[:maxPreviewLength-3] + "..."
	}
	return text
}

// joinOrNone renders a label set, or a placeholder when empty
func joinOrNone(labels []string) string {
	if len(labels) == 0 {
		return "(none)"
	}
	return strings.Join(labels, ", ")
}

// PrintRecord outputs a human-readable summary of an extracted record.
func (p *Printer) PrintRecord(rec *types.Record) {
	if rec == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("ID:          %s\n", rec.FOAID))
	sb.WriteString(fmt.Sprintf("Title:       %s\n", preview(rec.Title)))
	sb.WriteString(fmt.Sprintf("Agency:      %s\n", preview(rec.Agency)))
	sb.WriteString(fmt.Sprintf("Opens:       %s\n", rec.OpenDate))
	sb.WriteString(fmt.Sprintf("Closes:      %s\n", rec.CloseDate))
	sb.WriteString(fmt.Sprintf("Award:       %s\n", preview(rec.AwardRange)))
	sb.WriteString(fmt.Sprintf("Eligibility: %s\n", preview(rec.EligibilityText)))
	sb.WriteString(fmt.Sprintf("Description: %s", preview(rec.ProgramDescription)))

	p.printBox("EXTRACTED RECORD", sb.String())
}

// PrintTags outputs the semantic tag assignment for a record.
func (p *Printer) PrintTags(tags types.SemanticTags) {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Research domains: %s\n", joinOrNone(tags.ResearchDomains)))
	sb.WriteString(fmt.Sprintf("Methods:          %s\n", joinOrNone(tags.Methods)))
	sb.WriteString(fmt.Sprintf("Populations:      %s\n", joinOrNone(tags.Populations)))
	sb.WriteString(fmt.Sprintf("Sponsor themes:   %s", joinOrNone(tags.SponsorThemes)))

	p.printBox("SEMANTIC TAGS", sb.String())
}
