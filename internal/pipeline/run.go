// Package pipeline runs one full scan: fetch and extract signals, compute
// both deterministic scores, and optionally run the generative enrichment
// pass. One run is single-shot and stateless; concurrent runs do not
// interact.
package pipeline

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/jordan/visibility-scanner/internal/enrich"
	"github.com/jordan/visibility-scanner/internal/fetch"
	"github.com/jordan/visibility-scanner/internal/scan"
	"github.com/jordan/visibility-scanner/internal/scoring"
)

// Options configures a pipeline run.
type Options struct {
	UserAgent  string
	Timeout    time.Duration
	UseBrowser bool
	Verbose    bool

	// APIKey enables the generative enrichment pass when set.
	APIKey string

	// AllowDegraded turns extraction failures into a degraded outcome built
	// from a placeholder signal record and the flat-50 anchor, instead of an
	// error. Downstream consumers rely on this to keep running when a site
	// is unreachable.
	AllowDegraded bool
}

// Outcome is the result of one scan run.
type Outcome struct {
	ID         uuid.UUID         `json:"id"`
	Signals    *scan.SiteSignals `json:"signals"`
	Report     scoring.Report    `json:"report"`
	Anchor     scoring.Anchor    `json:"anchor"`
	Enrichment *enrich.Analysis  `json:"enrichment,omitempty"`

	// Degraded marks an outcome produced after the extractor failed; every
	// signal is unmeasured and the anchor is the flat fallback.
	Degraded      bool   `json:"degraded,omitempty"`
	FailureReason string `json:"failure_reason,omitempty"`
}

// Run executes a full scan of one URL.
func Run(ctx context.Context, urlStr string, opts Options) (*Outcome, error) {
	scanOpts := &scan.Options{
		Fetch:      fetchOptions(opts),
		UseBrowser: opts.UseBrowser,
		Verbose:    opts.Verbose,
	}

	signals, err := scan.Extract(ctx, urlStr, scanOpts)
	if err != nil {
		if !opts.AllowDegraded {
			return nil, err
		}
		if opts.Verbose {
			log.Printf("[PIPELINE] extraction failed, degrading: %v", err)
		}
		return &Outcome{
			ID:            uuid.New(),
			Signals:       scan.Placeholder(urlStr),
			Report:        scoring.ScorePageQuality(scan.Placeholder(urlStr)),
			Anchor:        scoring.ComputeAnchor(nil),
			Degraded:      true,
			FailureReason: err.Error(),
		}, nil
	}

	outcome := &Outcome{
		ID:      uuid.New(),
		Signals: signals,
		Report:  scoring.ScorePageQuality(signals),
		Anchor:  scoring.ComputeAnchor(signals),
	}

	if opts.APIKey != "" {
		analysis, err := enrich.Analyze(ctx, signals, outcome.Report, outcome.Anchor, opts.APIKey)
		if err != nil {
			// Enrichment is additive; a failed generative pass never loses
			// the deterministic result.
			if opts.Verbose {
				log.Printf("[PIPELINE] enrichment failed, keeping deterministic result: %v", err)
			}
		} else {
			outcome.Enrichment = analysis
		}
	}

	return outcome, nil
}

func fetchOptions(opts Options) *fetch.Options {
	fo := fetch.DefaultOptions()
	if opts.UserAgent != "" {
		fo.UserAgent = opts.UserAgent
	}
	if opts.Timeout > 0 {
		fo.Timeout = opts.Timeout
	}
	return fo
}
