package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jordan/visibility-scanner/internal/scan"
)

func intPtr(v int) *int                   { return &v }
func floatPtr(v float64) *float64         { return &v }
func boolPtr(v bool) *bool                { return &v }
func strPtr(v string) *string             { return &v }
func riskPtr(v scan.RiskLevel) *scan.RiskLevel { return &v }

// strongSignals returns the end-to-end scenario: a healthy brokerage page
// with every trust marker present and no risk markers.
func strongSignals() *scan.SiteSignals {
	return &scan.SiteSignals{
		RequestedURL:        "https://acme.example.com",
		FinalURL:            "https://acme.example.com",
		HTTPStatus:          intPtr(200),
		Title:               strPtr("Acme Industrial Brokerage - Warehouse Leasing"),
		MetaDescription:     strPtr("Industrial warehouse leasing and sales across the midwest region."),
		WordCount:           intPtr(1500),
		HeadingCount:        intPtr(8),
		FillerPhraseHits:    intPtr(0),
		RepetitionScore:     floatPtr(0.05),
		HasAuthorSignal:     boolPtr(true),
		HasDateSignal:       boolPtr(true),
		HasStructuredData:   boolPtr(true),
		HasAboutLink:        boolPtr(true),
		HasContactLink:      boolPtr(true),
		HasPolicyLinks:      boolPtr(true),
		AdHintCount:         intPtr(0),
		HasInterstitialHint: boolPtr(false),
		TotalLinkCount:      intPtr(45),
		OutboundLinkCount:   intPtr(3),
		LinkToTextRatio:     floatPtr(0.03),
		YMYLRisk:            riskPtr(scan.RiskLow),
		SpamPatternsFound:   []string{},
	}
}

func TestScorePageQuality_StrongPageScenario(t *testing.T) {
	report := ScorePageQuality(strongSignals())

	assert.GreaterOrEqual(t, report.Score, 75)
	assert.Empty(t, report.RedFlags)
	assert.GreaterOrEqual(t, len(report.Positives), 8)
	assert.Contains(t, []Bucket{BucketHigh, BucketHighest}, report.Bucket)
}

func TestScorePageQuality_ScoreAlwaysInBounds(t *testing.T) {
	worst := &scan.SiteSignals{
		Title:               strPtr(""),
		WordCount:           intPtr(10),
		HeadingCount:        intPtr(0),
		FillerPhraseHits:    intPtr(9),
		RepetitionScore:     floatPtr(0.9),
		HasAuthorSignal:     boolPtr(false),
		HasDateSignal:       boolPtr(false),
		HasStructuredData:   boolPtr(false),
		HasAboutLink:        boolPtr(false),
		HasContactLink:      boolPtr(false),
		HasPolicyLinks:      boolPtr(false),
		AdHintCount:         intPtr(20),
		HasInterstitialHint: boolPtr(true),
		LinkToTextRatio:     floatPtr(3.0),
		YMYLRisk:            riskPtr(scan.RiskHigh),
		SpamPatternsFound:   []string{"lorem-ipsum", "pharma-spam", "gambling-spam"},
	}

	report := ScorePageQuality(worst)
	assert.GreaterOrEqual(t, report.Score, 0)
	assert.LessOrEqual(t, report.Score, 100)
	assert.Equal(t, BucketLowest, report.Bucket)

	best := ScorePageQuality(strongSignals())
	assert.LessOrEqual(t, best.Score, 100)
}

func TestScorePageQuality_ContentFloorCapsFinalScore(t *testing.T) {
	// Every favorable signal present, but almost no content: the cap must
	// win over all other additions.
	signals := strongSignals()
	signals.WordCount = intPtr(50)

	report := ScorePageQuality(signals)
	assert.LessOrEqual(t, report.Score, 25)
	assert.Contains(t, report.RedFlags, "very little usable content, score capped")
}

func TestScorePageQuality_SpamPenaltyZeroesAllowanceButNeverGoesNegative(t *testing.T) {
	// Five distinct patterns: 50 raw penalty points erode the whole 20-point
	// allowance and nothing more.
	withSpam := strongSignals()
	withSpam.SpamPatternsFound = []string{"a", "b", "c", "d", "e"}

	clean := ScorePageQuality(strongSignals())
	spammed := ScorePageQuality(withSpam)

	assert.Equal(t, clean.Score-20, spammed.Score)
	assert.Len(t, spammed.RedFlags, 5)
}

func TestScorePageQuality_ThinRepetitivePenalty(t *testing.T) {
	signals := strongSignals()
	signals.WordCount = intPtr(220)
	signals.RepetitionScore = floatPtr(0.3)

	report := ScorePageQuality(signals)
	assert.Contains(t, report.RedFlags, "thin and repetitive content")
}

func TestScorePageQuality_UnmeasuredFieldsSkipRules(t *testing.T) {
	// A fully unmeasured record neither gains nor loses points anywhere:
	// no flags, score zero.
	report := ScorePageQuality(scan.Placeholder("https://example.com"))

	assert.Equal(t, 0, report.Score)
	assert.Equal(t, BucketLowest, report.Bucket)
	assert.Empty(t, report.RedFlags)
	assert.Empty(t, report.Positives)

	// Missing author must not be flagged when it simply was not measured.
	partial := scan.Placeholder("https://example.com")
	partial.WordCount = intPtr(600)
	partialReport := ScorePageQuality(partial)
	assert.NotContains(t, partialReport.RedFlags, "no author signal")
	assert.Contains(t, partialReport.Positives, "moderate content depth")
}

func TestScorePageQuality_NilSignals(t *testing.T) {
	report := ScorePageQuality(nil)
	assert.Equal(t, 0, report.Score)
	assert.Equal(t, BucketLowest, report.Bucket)
}

func TestScorePageQuality_YMYLMissingAttribution(t *testing.T) {
	signals := strongSignals()
	signals.YMYLRisk = riskPtr(scan.RiskMedium)
	signals.HasAuthorSignal = boolPtr(false)
	signals.HasDateSignal = boolPtr(false)

	report := ScorePageQuality(signals)
	assert.Contains(t, report.RedFlags, "YMYL content missing author")
	assert.Contains(t, report.RedFlags, "YMYL content missing date")
	assert.Contains(t, report.RedFlags, "no author signal")
}

func TestScorePageQuality_Deterministic(t *testing.T) {
	signals := strongSignals()
	first := ScorePageQuality(signals)
	second := ScorePageQuality(signals)
	require.Equal(t, first, second)
}

func TestBucketThresholds(t *testing.T) {
	cases := []struct {
		score int
		want  Bucket
	}{
		{0, BucketLowest}, {19, BucketLowest},
		{20, BucketLow}, {39, BucketLow},
		{40, BucketMedium}, {59, BucketMedium},
		{60, BucketHigh}, {79, BucketHigh},
		{80, BucketHighest}, {100, BucketHighest},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, bucketFor(tc.score), "score %d", tc.score)
	}
}
