// Package scan derives structural and content signals from a single web
// page. The output is an immutable SiteSignals record: computed once per
// scan, never mutated, consumed by the scoring package.
package scan

// RiskLevel classifies "Your Money or Your Life" exposure: content where
// inaccuracy carries elevated real-world risk (health, finance, legal).
type RiskLevel string

// Risk levels, lowest to highest.
const (
	RiskLow    RiskLevel = "low"
	RiskMedium RiskLevel = "medium"
	RiskHigh   RiskLevel = "high"
)

// SiteSignals is the extractor's sole output. Nil pointer fields mean "not
// measured": consumers must skip the corresponding rule, never treat absence
// as zero or false.
type SiteSignals struct {
	// Identity
	RequestedURL string `json:"requested_url"`
	FinalURL     string `json:"final_url"`
	HTTPStatus   *int   `json:"http_status,omitempty"`

	// Content metadata
	Title           *string `json:"title,omitempty"`
	MetaDescription *string `json:"meta_description,omitempty"`
	CanonicalURL    *string `json:"canonical_url,omitempty"`
	Language        *string `json:"language,omitempty"`

	// Content depth
	WordCount        *int     `json:"main_content_word_count,omitempty"`
	HeadingCount     *int     `json:"heading_count,omitempty"`
	FillerPhraseHits *int     `json:"filler_phrase_hits,omitempty"`
	RepetitionScore  *float64 `json:"repetition_score,omitempty"`

	// Trust / E-E-A-T
	HasAuthorSignal   *bool `json:"has_author_signal,omitempty"`
	HasDateSignal     *bool `json:"has_date_signal,omitempty"`
	HasStructuredData *bool `json:"has_structured_data,omitempty"`
	HasAboutLink      *bool `json:"has_about_link,omitempty"`
	HasContactLink    *bool `json:"has_contact_link,omitempty"`
	HasPolicyLinks    *bool `json:"has_policy_links,omitempty"`

	// Ads / UX
	AdHintCount         *int  `json:"ad_hint_count,omitempty"`
	HasInterstitialHint *bool `json:"has_interstitial_hint,omitempty"`

	// Link structure
	TotalLinkCount    *int     `json:"total_link_count,omitempty"`
	OutboundLinkCount *int     `json:"outbound_link_count,omitempty"`
	LinkToTextRatio   *float64 `json:"link_to_text_ratio,omitempty"`

	// Risk
	YMYLRisk       *RiskLevel `json:"ymyl_risk,omitempty"`
	YMYLCategories []string   `json:"ymyl_categories,omitempty"`

	// Derived labels
	PurposeGuess      *string  `json:"purpose_guess,omitempty"`
	SpamPatternsFound []string `json:"spam_patterns_found,omitempty"`

	// First 2000 characters of main-content text. Used only to ground the
	// downstream generative analysis; never scored.
	Excerpt string `json:"main_content_excerpt,omitempty"`
}

// Placeholder returns a signal record with every field unmeasured, for
// callers that must keep going after the extractor failed entirely.
func Placeholder(requestedURL string) *SiteSignals {
	return &SiteSignals{RequestedURL: requestedURL}
}

func intPtr(v int) *int             { return &v }
func floatPtr(v float64) *float64   { return &v }
func boolPtr(v bool) *bool          { return &v }
func strPtr(v string) *string       { return &v }
func riskPtr(v RiskLevel) *RiskLevel { return &v }
