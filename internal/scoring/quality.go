// Package scoring turns a SiteSignals record into deterministic scores: a
// human-facing page-quality report and a SALT anchor that bounds the
// downstream generative analysis. Both functions are pure; identical input
// always produces identical output.
package scoring

import (
	"fmt"

	"github.com/jordan/visibility-scanner/internal/scan"
)

// Bucket labels a quality score range.
type Bucket string

// Quality buckets, by score threshold.
const (
	BucketLowest  Bucket = "Lowest"
	BucketLow     Bucket = "Low"
	BucketMedium  Bucket = "Medium"
	BucketHigh    Bucket = "High"
	BucketHighest Bucket = "Highest"
)

// Report is the scorer's output for one scan. Computed once, never merged
// with a prior report: each scan stands alone.
type Report struct {
	Score     int      `json:"score"`
	Bucket    Bucket   `json:"bucket"`
	RedFlags  []string `json:"red_flags"`
	Positives []string `json:"positives"`
}

// Thresholds and point values for the additive quality rules.
const (
	minTitleLength        = 8
	minMetaDescLength     = 40
	deepContentWords      = 1200
	moderateContentWords  = 500
	thinContentWords      = 200
	highLinkRatio         = 0.12
	lowLinkRatio          = 0.04
	highRepetition        = 0.35
	fillerFlagThreshold   = 3
	adAllowance           = 10
	heavyAdHints          = 6
	someAdHints           = 2
	spamAllowance         = 20
	spamPatternPenalty    = 10
	shortRepetitiveWords  = 250
	shortRepetitiveScore  = 0.25
	shortRepetitivePoints = 8
	contentFloorWords     = 80
	contentFloorCap       = 25
)

// ScorePageQuality evaluates the additive rule table over a signal record.
// Unmeasured fields (nil pointers) skip their rules entirely: absence is
// never treated as zero or false. A nil record scores as fully unmeasured.
func ScorePageQuality(s *scan.SiteSignals) Report {
	if s == nil {
		s = scan.Placeholder("")
	}

	score := 0
	redFlags := []string{}
	positives := []string{}

	if s.Title != nil && len(*s.Title) >= minTitleLength {
		score += 5
		positives = append(positives, "descriptive title")
	}
	if s.MetaDescription != nil && len(*s.MetaDescription) >= minMetaDescLength {
		score += 5
		positives = append(positives, "has meta description")
	}

	if s.WordCount != nil {
		switch wc := *s.WordCount; {
		case wc >= deepContentWords:
			score += 12
			positives = append(positives, "substantial content depth")
		case wc >= moderateContentWords:
			score += 8
			positives = append(positives, "moderate content depth")
		case wc >= thinContentWords:
			score += 4
		default:
			redFlags = append(redFlags, "very thin content")
		}
	}

	if s.HeadingCount != nil {
		switch hc := *s.HeadingCount; {
		case hc >= 6:
			score += 6
			positives = append(positives, "good heading structure")
		case hc >= 2:
			score += 3
		}
	}

	if s.LinkToTextRatio != nil {
		if *s.LinkToTextRatio > highLinkRatio {
			score -= 6
			redFlags = append(redFlags, "high link-to-text ratio")
		} else if *s.LinkToTextRatio < lowLinkRatio {
			score += 2
		}
	}

	if s.RepetitionScore != nil && *s.RepetitionScore > highRepetition {
		score -= 8
		redFlags = append(redFlags, "high repetition (templated-content risk)")
	}

	if s.FillerPhraseHits != nil && *s.FillerPhraseHits >= fillerFlagThreshold {
		score -= 4
		redFlags = append(redFlags, "high filler density")
	}

	if s.HasStructuredData != nil && *s.HasStructuredData {
		score += 4
		positives = append(positives, "structured data present")
	}

	if s.HasAuthorSignal != nil {
		if *s.HasAuthorSignal {
			score += 6
			positives = append(positives, "author signal detected")
		} else {
			redFlags = append(redFlags, "no author signal")
		}
	}

	if s.HasDateSignal != nil && *s.HasDateSignal {
		score += 4
		positives = append(positives, "date signal detected")
	}

	// YMYL content is held to a higher evidence bar.
	if s.YMYLRisk != nil && *s.YMYLRisk != scan.RiskLow {
		if s.HasAuthorSignal != nil && !*s.HasAuthorSignal {
			score -= 6
			redFlags = append(redFlags, "YMYL content missing author")
		}
		if s.HasDateSignal != nil && !*s.HasDateSignal {
			score -= 4
			redFlags = append(redFlags, "YMYL content missing date")
		}
	}

	if s.HasAboutLink != nil {
		if *s.HasAboutLink {
			score += 4
			positives = append(positives, "about link detected")
		} else {
			redFlags = append(redFlags, "no about link")
		}
	}
	if s.HasContactLink != nil {
		if *s.HasContactLink {
			score += 6
			positives = append(positives, "contact link detected")
		} else {
			redFlags = append(redFlags, "no contact link")
		}
	}
	if s.HasPolicyLinks != nil && *s.HasPolicyLinks {
		score += 2
		positives = append(positives, "policy links detected")
	}

	// Ads sub-score: a 10-point allowance eroded by ad markers and
	// interstitial hints, floored at zero. Skipped entirely when neither
	// input was measured.
	if s.AdHintCount != nil || s.HasInterstitialHint != nil {
		adScore := adAllowance
		if s.AdHintCount != nil {
			if *s.AdHintCount >= heavyAdHints {
				adScore -= 5
				redFlags = append(redFlags, "heavy advertising markers")
			} else if *s.AdHintCount >= someAdHints {
				adScore -= 2
				redFlags = append(redFlags, "advertising markers present")
			}
		}
		if s.HasInterstitialHint != nil && *s.HasInterstitialHint {
			adScore -= 4
			redFlags = append(redFlags, "interstitial or overlay hint")
		}
		if adScore < 0 {
			adScore = 0
		}
		score += adScore
	}

	// Spam penalty erodes a 20-point allowance down to zero, never below.
	if s.SpamPatternsFound != nil {
		penalty := 0
		for _, pattern := range s.SpamPatternsFound {
			penalty += spamPatternPenalty
			redFlags = append(redFlags, fmt.Sprintf("spam pattern detected: %s", pattern))
		}
		if s.WordCount != nil && s.RepetitionScore != nil &&
			*s.WordCount < shortRepetitiveWords && *s.RepetitionScore > shortRepetitiveScore {
			penalty += shortRepetitivePoints
			redFlags = append(redFlags, "thin and repetitive content")
		}
		if penalty > spamAllowance {
			penalty = spamAllowance
		}
		score += spamAllowance - penalty
	}

	// Content floor: applied last, as a ceiling, after every other rule.
	if s.WordCount != nil && *s.WordCount < contentFloorWords && score > contentFloorCap {
		score = contentFloorCap
		redFlags = append(redFlags, "very little usable content, score capped")
	}

	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}

	return Report{
		Score:     score,
		Bucket:    bucketFor(score),
		RedFlags:  redFlags,
		Positives: positives,
	}
}

func bucketFor(score int) Bucket {
	switch {
	case score < 20:
		return BucketLowest
	case score < 40:
		return BucketLow
	case score < 60:
		return BucketMedium
	case score < 80:
		return BucketHigh
	default:
		return BucketHighest
	}
}
