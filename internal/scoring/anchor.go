package scoring

import (
	"math"

	"github.com/jordan/visibility-scanner/internal/scan"
)

// Anchor is the four-pillar SALT score (Semantic, Authority, Location,
// Trust) computed deterministically from a signal record. It seeds and
// bounds the generative scoring pass: the LLM may adjust each pillar by at
// most AnchorTolerance points in either direction.
type Anchor struct {
	Overall   int `json:"overall"`
	Semantic  int `json:"semantic"`
	Authority int `json:"authority"`
	Location  int `json:"location"`
	Trust     int `json:"trust"`
}

// AnchorTolerance is how far the generative pass may move a pillar from its
// anchor value.
const AnchorTolerance = 15

// Pillar baselines.
const (
	semanticBaseline  = 50
	authorityBaseline = 30
	locationBaseline  = 50
	trustBaseline     = 20
)

// ComputeAnchor derives the SALT anchor from a signal record. When the
// extractor failed upstream and no signals exist at all, the anchor falls
// back to a flat 50 across every pillar; downstream consumers rely on that
// to keep running.
func ComputeAnchor(s *scan.SiteSignals) Anchor {
	if s == nil {
		return Anchor{Overall: 50, Semantic: 50, Authority: 50, Location: 50, Trust: 50}
	}

	semantic := semanticBaseline
	if s.WordCount != nil {
		switch wc := *s.WordCount; {
		case wc >= 1200:
			semantic += 20
		case wc >= 500:
			semantic += 10
		case wc < 200:
			semantic -= 20
		}
	}
	if s.HeadingCount != nil && *s.HeadingCount >= 4 {
		semantic += 10
	}
	if s.RepetitionScore != nil && *s.RepetitionScore > 0.35 {
		semantic -= 15
	}

	authority := authorityBaseline
	if s.HasAuthorSignal != nil && *s.HasAuthorSignal {
		authority += 25
	}
	if s.HasDateSignal != nil && *s.HasDateSignal {
		authority += 20
	}
	if s.HasStructuredData != nil && *s.HasStructuredData {
		authority += 15
	}
	if s.WordCount != nil && *s.WordCount >= 800 {
		authority += 10
	}

	// Location stays at its baseline: geographic inference is left to the
	// generative pass, which sees the content excerpt.
	location := locationBaseline

	trust := trustBaseline
	if s.HasContactLink != nil && *s.HasContactLink {
		trust += 25
	}
	if s.HasAboutLink != nil && *s.HasAboutLink {
		trust += 20
	}
	if s.HasPolicyLinks != nil && *s.HasPolicyLinks {
		trust += 15
	}
	if s.HasStructuredData != nil && *s.HasStructuredData {
		trust += 10
	}
	if s.HasAuthorSignal != nil && *s.HasAuthorSignal {
		trust += 10
	}

	semantic = clampScore(semantic)
	authority = clampScore(authority)
	location = clampScore(location)
	trust = clampScore(trust)

	overall := int(math.Round(float64(semantic+authority+location+trust) / 4))

	return Anchor{
		Overall:   overall,
		Semantic:  semantic,
		Authority: authority,
		Location:  location,
		Trust:     trust,
	}
}

func clampScore(v int) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
