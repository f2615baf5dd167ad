package enrich

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"

	"github.com/jordan/visibility-scanner/internal/llm"
	"github.com/jordan/visibility-scanner/internal/prompts"
	"github.com/jordan/visibility-scanner/internal/report"
	"github.com/jordan/visibility-scanner/internal/scan"
	"github.com/jordan/visibility-scanner/internal/scoring"
)

// analysisSchema validates the shape of the model's verdict before it is
// trusted. Pillar scores outside [0,100] or missing fields reject the whole
// response.
const analysisSchema = `{
	"type": "object",
	"required": ["summary", "strengths", "weaknesses", "scores"],
	"properties": {
		"summary": {"type": "string"},
		"strengths": {"type": "array", "items": {"type": "string"}},
		"weaknesses": {"type": "array", "items": {"type": "string"}},
		"scores": {
			"type": "object",
			"required": ["overall", "semantic", "authority", "location", "trust"],
			"properties": {
				"overall": {"type": "integer", "minimum": 0, "maximum": 100},
				"semantic": {"type": "integer", "minimum": 0, "maximum": 100},
				"authority": {"type": "integer", "minimum": 0, "maximum": 100},
				"location": {"type": "integer", "minimum": 0, "maximum": 100},
				"trust": {"type": "integer", "minimum": 0, "maximum": 100}
			}
		}
	}
}`

// Analyze sends the fact sheet to the generative model and returns its
// verdict, schema-validated and clamped to the anchor. The fact sheet is the
// ground truth the model must not contradict; its pillar scores may deviate
// from the anchor by at most scoring.AnchorTolerance points.
func Analyze(ctx context.Context, signals *scan.SiteSignals, qualityReport scoring.Report, anchor scoring.Anchor, apiKey string) (*Analysis, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("API key required for enrichment")
	}

	client, err := llm.NewClient(ctx, llm.DefaultConfig(), apiKey)
	if err != nil {
		return nil, fmt.Errorf("failed to create LLM client: %w", err)
	}
	defer func() { _ = client.Close() }()

	prompt := buildAnalysisPrompt(signals, qualityReport, anchor)

	jsonResp, err := client.GenerateJSON(ctx, prompt, llm.TierFast)
	if err != nil {
		return nil, fmt.Errorf("LLM generation failed: %w", err)
	}

	analysis, err := parseAnalysisResponse(jsonResp)
	if err != nil {
		return nil, err
	}

	ClampToAnchor(analysis, anchor)
	return analysis, nil
}

func buildAnalysisPrompt(signals *scan.SiteSignals, qualityReport scoring.Report, anchor scoring.Anchor) string {
	var sb strings.Builder
	sb.WriteString(prompts.MustGet("analysis.json", "preamble"))
	sb.WriteString(report.BuildFactSheet(signals, qualityReport, anchor))
	sb.WriteString(prompts.Format(prompts.MustGet("analysis.json", "response_format"), map[string]string{
		"Tolerance": fmt.Sprintf("%d", scoring.AnchorTolerance),
	}))
	return sb.String()
}

func parseAnalysisResponse(jsonResp string) (*Analysis, error) {
	jsonResp = llm.CleanJSONBlock(jsonResp)

	schemaLoader := gojsonschema.NewStringLoader(analysisSchema)
	documentLoader := gojsonschema.NewStringLoader(jsonResp)
	validation, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return nil, fmt.Errorf("failed to validate analysis response: %w", err)
	}
	if !validation.Valid() {
		details := make([]string, 0, len(validation.Errors()))
		for _, desc := range validation.Errors() {
			details = append(details, desc.String())
		}
		return nil, fmt.Errorf("analysis response failed schema validation: %s", strings.Join(details, "; "))
	}

	var analysis Analysis
	if err := json.Unmarshal([]byte(jsonResp), &analysis); err != nil {
		return nil, fmt.Errorf("failed to parse analysis response: %w", err)
	}
	return &analysis, nil
}
