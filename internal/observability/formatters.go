// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jordan/visibility-scanner/internal/enrich"
	"github.com/jordan/visibility-scanner/internal/scan"
	"github.com/jordan/visibility-scanner/internal/scoring"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
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

// PrintSignals outputs a human-readable summary of the extracted signal record.
func (p *Printer) PrintSignals(signals *scan.SiteSignals) {
	if signals == nil {
		return
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("URL:      %s\n", signals.FinalURL))
	sb.WriteString(fmt.Sprintf("Status:   %s\n", fmtInt(signals.HTTPStatus)))
	sb.WriteString(fmt.Sprintf("Title:    %s\n", fmtStr(signals.Title)))
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("Words:    %s   Headings: %s\n", fmtInt(signals.WordCount), fmtInt(signals.HeadingCount)))
	sb.WriteString(fmt.Sprintf("Links:    %s (%s outbound)\n", fmtInt(signals.TotalLinkCount), fmtInt(signals.OutboundLinkCount)))
	sb.WriteString(fmt.Sprintf("Purpose:  %s\n", fmtStr(signals.PurposeGuess)))

	trust := []string{}
	if signals.HasAboutLink != nil && *signals.HasAboutLink {
		trust = append(trust, "about")
	}
	if signals.HasContactLink != nil && *signals.HasContactLink {
		trust = append(trust, "contact")
	}
	if signals.HasPolicyLinks != nil && *signals.HasPolicyLinks {
		trust = append(trust, "policies")
	}
	if signals.HasAuthorSignal != nil && *signals.HasAuthorSignal {
		trust = append(trust, "author")
	}
	if signals.HasDateSignal != nil && *signals.HasDateSignal {
		trust = append(trust, "date")
	}
	if len(trust) > 0 {
		sb.WriteString(fmt.Sprintf("Trust:    %s\n", strings.Join(trust, ", ")))
	}

	if signals.YMYLRisk != nil && *signals.YMYLRisk != scan.RiskLow {
		sb.WriteString(fmt.Sprintf("YMYL:     %s (%s)\n", *signals.YMYLRisk, strings.Join(signals.YMYLCategories, ", ")))
	}
	if len(signals.SpamPatternsFound) > 0 {
		sb.WriteString(fmt.Sprintf("Spam:     %s\n", strings.Join(signals.SpamPatternsFound, ", ")))
	}

	p.printBox("EXTRACTED SIGNALS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintQualityReport outputs the deterministic quality score with its flags.
func (p *Printer) PrintQualityReport(report scoring.Report) {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Score: %d/100 (%s)\n", report.Score, report.Bucket))

	if len(report.RedFlags) > 0 {
		sb.WriteString("\nRed Flags:\n")
		count := min(len(report.RedFlags), maxItemsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  ⚠ %s\n", report.RedFlags[i]))
		}
		if len(report.RedFlags) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(report.RedFlags)-maxItemsToShow))
		}
	}

	if len(report.Positives) > 0 {
		sb.WriteString("\nPositives:\n")
		count := min(len(report.Positives), maxItemsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  ✓ %s\n", report.Positives[i]))
		}
		if len(report.Positives) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(report.Positives)-maxItemsToShow))
		}
	}

	p.printBox("PAGE QUALITY", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintAnchor outputs the SALT anchor pillars.
func (p *Printer) PrintAnchor(anchor scoring.Anchor) {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Semantic:   %3d\n", anchor.Semantic))
	sb.WriteString(fmt.Sprintf("Authority:  %3d\n", anchor.Authority))
	sb.WriteString(fmt.Sprintf("Location:   %3d\n", anchor.Location))
	sb.WriteString(fmt.Sprintf("Trust:      %3d\n", anchor.Trust))
	sb.WriteString(fmt.Sprintf("Overall:    %3d", anchor.Overall))

	p.printBox("SALT ANCHOR", sb.String())
}

// PrintEnrichment outputs the generative verdict, post-clamp.
func (p *Printer) PrintEnrichment(analysis *enrich.Analysis) {
	if analysis == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(analysis.Summary)
	sb.WriteString("\n")

	if len(analysis.Strengths) > 0 {
		sb.WriteString("\nStrengths:\n")
		count := min(len(analysis.Strengths), maxItemsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  ✓ %s\n", analysis.Strengths[i]))
		}
	}
	if len(analysis.Weaknesses) > 0 {
		sb.WriteString("\nWeaknesses:\n")
		count := min(len(analysis.Weaknesses), maxItemsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  ⚠ %s\n", analysis.Weaknesses[i]))
		}
	}

	sb.WriteString(fmt.Sprintf("\nScores: S%d A%d L%d T%d → %d",
		analysis.Scores.Semantic, analysis.Scores.Authority,
		analysis.Scores.Location, analysis.Scores.Trust, analysis.Scores.Overall))

	p.printBox("GENERATIVE ANALYSIS", sb.String())
}

func fmtInt(v *int) string {
	if v == nil {
		return "?"
	}
	return fmt.Sprintf("%d", *v)
}

func fmtStr(v *string) string {
	if v == nil || *v == "" {
		return "?"
	}
	return *v
}
