package report

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jordan/visibility-scanner/internal/scan"
	"github.com/jordan/visibility-scanner/internal/scoring"
)

func TestBuildFactSheet_MeasuredSignals(t *testing.T) {
	title := "Acme Industrial Brokerage"
	wordCount := 1500
	hasAuthor := true
	ratio := 0.031

	signals := scan.Placeholder("https://acme.example.com")
	signals.FinalURL = "https://acme.example.com/home"
	signals.Title = &title
	signals.WordCount = &wordCount
	signals.HasAuthorSignal = &hasAuthor
	signals.LinkToTextRatio = &ratio
	signals.SpamPatternsFound = []string{"lorem-ipsum"}
	signals.Excerpt = "Industrial warehouse listings across the midwest."

	report := scoring.Report{Score: 72, Bucket: scoring.BucketHigh, RedFlags: []string{"no contact link"}, Positives: []string{"descriptive title"}}
	anchor := scoring.Anchor{Overall: 63, Semantic: 70, Authority: 55, Location: 50, Trust: 75}

	sheet := BuildFactSheet(signals, report, anchor)

	assert.True(t, strings.HasPrefix(sheet, "MEASURED PAGE FACTS (ground truth, do not contradict):"))
	assert.Contains(t, sheet, "- Title: Acme Industrial Brokerage")
	assert.Contains(t, sheet, "- Main content word count: 1500")
	assert.Contains(t, sheet, "- Author signal: yes")
	assert.Contains(t, sheet, "- Link-to-text ratio: 0.031")
	assert.Contains(t, sheet, "- Spam patterns found: lorem-ipsum")
	assert.Contains(t, sheet, "- Score: 72/100 (High)")
	assert.Contains(t, sheet, "- Red flags: no contact link")
	assert.Contains(t, sheet, "SALT ANCHOR (stay within 15 points of each pillar):")
	assert.Contains(t, sheet, "- Semantic: 70")
	assert.Contains(t, sheet, "- Overall: 63")
	assert.Contains(t, sheet, "MAIN CONTENT EXCERPT:\nIndustrial warehouse listings across the midwest.")
}

func TestBuildFactSheet_UnmeasuredSignalsRenderAsUnknown(t *testing.T) {
	signals := scan.Placeholder("https://example.com")
	sheet := BuildFactSheet(signals, scoring.Report{Bucket: scoring.BucketLowest}, scoring.ComputeAnchor(signals))

	assert.Contains(t, sheet, "- HTTP status: unknown")
	assert.Contains(t, sheet, "- Title: unknown")
	assert.Contains(t, sheet, "- Main content word count: unknown")
	assert.Contains(t, sheet, "- Author signal: unknown")
	assert.Contains(t, sheet, "- YMYL risk: unknown")
	assert.Contains(t, sheet, "- Spam patterns found: none")
	assert.NotContains(t, sheet, "MAIN CONTENT EXCERPT")
}

func TestBuildFactSheet_NilSignals(t *testing.T) {
	sheet := BuildFactSheet(nil, scoring.Report{}, scoring.Anchor{})
	assert.Contains(t, sheet, "- Title: unknown")
}

func TestBuildFactSheet_EmptyMeasuredStringIsDistinctFromUnknown(t *testing.T) {
	empty := ""
	signals := scan.Placeholder("https://example.com")
	signals.Title = &empty

	sheet := BuildFactSheet(signals, scoring.Report{}, scoring.Anchor{})
	assert.Contains(t, sheet, "- Title: (empty)")
}
