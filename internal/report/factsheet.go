// Package report renders scan results into the structured fact block handed
// to the generative analysis step. The block is framed as ground truth: the
// generative pass may enrich it but must not contradict it.
package report

import (
	"fmt"
	"strings"

	"github.com/jordan/visibility-scanner/internal/scan"
	"github.com/jordan/visibility-scanner/internal/scoring"
)

// unmeasured is how absent signal values are labeled in the fact sheet.
const unmeasured = "unknown"

// BuildFactSheet produces a human-readable, labeled dump of every measured
// signal plus the deterministic scores. Unmeasured fields are printed as
// "unknown" so the generative step knows not to invent them.
func BuildFactSheet(s *scan.SiteSignals, r scoring.Report, a scoring.Anchor) string {
	if s == nil {
		s = scan.Placeholder("")
	}

	var sb strings.Builder

	sb.WriteString("MEASURED PAGE FACTS (ground truth, do not contradict):\n")
	writeLine(&sb, "Requested URL", s.RequestedURL)
	writeLine(&sb, "Final URL", s.FinalURL)
	writeLine(&sb, "HTTP status", fmtInt(s.HTTPStatus))
	writeLine(&sb, "Title", fmtStr(s.Title))
	writeLine(&sb, "Meta description", fmtStr(s.MetaDescription))
	writeLine(&sb, "Canonical URL", fmtStr(s.CanonicalURL))
	writeLine(&sb, "Language", fmtStr(s.Language))
	writeLine(&sb, "Main content word count", fmtInt(s.WordCount))
	writeLine(&sb, "Heading count (h1-h3)", fmtInt(s.HeadingCount))
	writeLine(&sb, "Filler phrase hits", fmtInt(s.FillerPhraseHits))
	writeLine(&sb, "Repetition score", fmtFloat(s.RepetitionScore))
	writeLine(&sb, "Author signal", fmtBool(s.HasAuthorSignal))
	writeLine(&sb, "Date signal", fmtBool(s.HasDateSignal))
	writeLine(&sb, "Structured data", fmtBool(s.HasStructuredData))
	writeLine(&sb, "About link", fmtBool(s.HasAboutLink))
	writeLine(&sb, "Contact link", fmtBool(s.HasContactLink))
	writeLine(&sb, "Policy links", fmtBool(s.HasPolicyLinks))
	writeLine(&sb, "Ad hint count", fmtInt(s.AdHintCount))
	writeLine(&sb, "Interstitial hint", fmtBool(s.HasInterstitialHint))
	writeLine(&sb, "Total links", fmtInt(s.TotalLinkCount))
	writeLine(&sb, "Outbound links", fmtInt(s.OutboundLinkCount))
	writeLine(&sb, "Link-to-text ratio", fmtFloat(s.LinkToTextRatio))
	writeLine(&sb, "YMYL risk", fmtRisk(s.YMYLRisk))
	writeLine(&sb, "YMYL categories", fmtList(s.YMYLCategories))
	writeLine(&sb, "Purpose guess", fmtStr(s.PurposeGuess))
	writeLine(&sb, "Spam patterns found", fmtList(s.SpamPatternsFound))

	sb.WriteString("\nDETERMINISTIC PAGE QUALITY:\n")
	writeLine(&sb, "Score", fmt.Sprintf("%d/100 (%s)", r.Score, r.Bucket))
	writeLine(&sb, "Red flags", fmtList(r.RedFlags))
	writeLine(&sb, "Positives", fmtList(r.Positives))

	sb.WriteString("\nSALT ANCHOR (stay within ")
	sb.WriteString(fmt.Sprintf("%d points of each pillar):\n", scoring.AnchorTolerance))
	writeLine(&sb, "Semantic", fmt.Sprintf("%d", a.Semantic))
	writeLine(&sb, "Authority", fmt.Sprintf("%d", a.Authority))
	writeLine(&sb, "Location", fmt.Sprintf("%d", a.Location))
	writeLine(&sb, "Trust", fmt.Sprintf("%d", a.Trust))
	writeLine(&sb, "Overall", fmt.Sprintf("%d", a.Overall))

	if s.Excerpt != "" {
		sb.WriteString("\nMAIN CONTENT EXCERPT:\n")
		sb.WriteString(s.Excerpt)
		sb.WriteString("\n")
	}

	return sb.String()
}

func writeLine(sb *strings.Builder, label, value string) {
	sb.WriteString("- ")
	sb.WriteString(label)
	sb.WriteString(": ")
	sb.WriteString(value)
	sb.WriteString("\n")
}

func fmtInt(v *int) string {
	if v == nil {
		return unmeasured
	}
	return fmt.Sprintf("%d", *v)
}

func fmtFloat(v *float64) string {
	if v == nil {
		return unmeasured
	}
	return fmt.Sprintf("%.3f", *v)
}

func fmtBool(v *bool) string {
	if v == nil {
		return unmeasured
	}
	if *v {
		return "yes"
	}
	return "no"
}

func fmtStr(v *string) string {
	if v == nil {
		return unmeasured
	}
	if *v == "" {
		return "(empty)"
	}
	return *v
}

func fmtRisk(v *scan.RiskLevel) string {
	if v == nil {
		return unmeasured
	}
	return string(*v)
}

func fmtList(items []string) string {
	if len(items) == 0 {
		return "none"
	}
	return strings.Join(items, "; ")
}
