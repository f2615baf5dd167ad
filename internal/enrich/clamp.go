package enrich

import (
	"math"

	"github.com/jordan/visibility-scanner/internal/scoring"
)

// ClampToAnchor enforces the anchor contract on a generative verdict: each
// pillar may deviate from its anchor by at most scoring.AnchorTolerance
// points, and the overall score is recomputed as the rounded mean of the
// clamped pillars. The model's own overall value is discarded.
func ClampToAnchor(a *Analysis, anchor scoring.Anchor) {
	a.Scores.Semantic = clampPillar(a.Scores.Semantic, anchor.Semantic)
	a.Scores.Authority = clampPillar(a.Scores.Authority, anchor.Authority)
	a.Scores.Location = clampPillar(a.Scores.Location, anchor.Location)
	a.Scores.Trust = clampPillar(a.Scores.Trust, anchor.Trust)

	sum := a.Scores.Semantic + a.Scores.Authority + a.Scores.Location + a.Scores.Trust
	a.Scores.Overall = int(math.Round(float64(sum) / 4))
}

func clampPillar(value, anchor int) int {
	low := anchor - scoring.AnchorTolerance
	high := anchor + scoring.AnchorTolerance
	if value < low {
		value = low
	}
	if value > high {
		value = high
	}
	if value < 0 {
		value = 0
	}
	if value > 100 {
		value = 100
	}
	return value
}
