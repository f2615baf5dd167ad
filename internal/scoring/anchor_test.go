package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jordan/visibility-scanner/internal/scan"
)

func TestComputeAnchor_NilSignalsFallsBackToFlat50(t *testing.T) {
	anchor := ComputeAnchor(nil)
	assert.Equal(t, Anchor{Overall: 50, Semantic: 50, Authority: 50, Location: 50, Trust: 50}, anchor)
}

func TestComputeAnchor_StrongPageScenario(t *testing.T) {
	anchor := ComputeAnchor(strongSignals())

	assert.Equal(t, 80, anchor.Semantic)
	assert.Equal(t, 100, anchor.Authority)
	assert.Equal(t, 50, anchor.Location)
	assert.Equal(t, 100, anchor.Trust)
	// Mean of 330/4 rounds half away from zero.
	assert.Equal(t, 83, anchor.Overall)
}

func TestComputeAnchor_UnmeasuredRecordStaysAtBaselines(t *testing.T) {
	anchor := ComputeAnchor(scan.Placeholder("https://example.com"))

	assert.Equal(t, 50, anchor.Semantic)
	assert.Equal(t, 30, anchor.Authority)
	assert.Equal(t, 50, anchor.Location)
	assert.Equal(t, 20, anchor.Trust)
	assert.Equal(t, 38, anchor.Overall)
}

func TestComputeAnchor_ThinRepetitivePageDrops(t *testing.T) {
	signals := scan.Placeholder("https://example.com")
	signals.WordCount = intPtr(150)
	signals.RepetitionScore = floatPtr(0.6)

	anchor := ComputeAnchor(signals)
	assert.Equal(t, 15, anchor.Semantic)
}

func TestComputeAnchor_PillarsNeverLeaveBounds(t *testing.T) {
	anchor := ComputeAnchor(strongSignals())

	for _, pillar := range []int{anchor.Overall, anchor.Semantic, anchor.Authority, anchor.Location, anchor.Trust} {
		assert.GreaterOrEqual(t, pillar, 0)
		assert.LessOrEqual(t, pillar, 100)
	}
}

func TestComputeAnchor_Deterministic(t *testing.T) {
	signals := strongSignals()
	assert.Equal(t, ComputeAnchor(signals), ComputeAnchor(signals))
}
