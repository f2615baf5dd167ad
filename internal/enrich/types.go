// Package enrich runs the generative analysis pass over a completed scan.
// The deterministic fact sheet is the ground truth; the model adds free-text
// findings and its own pillar scores, which are then clamped to the anchor.
package enrich

// PillarScores mirrors the SALT anchor shape for the generative verdict.
type PillarScores struct {
	Overall   int `json:"overall"`
	Semantic  int `json:"semantic"`
	Authority int `json:"authority"`
	Location  int `json:"location"`
	Trust     int `json:"trust"`
}

// Analysis is the parsed, validated, anchor-clamped generative verdict.
type Analysis struct {
	Summary    string       `json:"summary"`
	Strengths  []string     `json:"strengths"`
	Weaknesses []string     `json:"weaknesses"`
	Scores     PillarScores `json:"scores"`
}
