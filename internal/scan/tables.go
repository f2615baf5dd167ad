package scan

import "regexp"

// Shared keyword and pattern tables. All package-level values here are
// read-only configuration compiled once at startup; nothing mutates them.

// Link-classification keyword sets. Matching is case-insensitive substring
// containment over href + visible text, intentionally permissive.
var (
	aboutKeywords   = []string{"about", "about-us", "company", "team", "leadership"}
	contactKeywords = []string{"contact", "contact-us", "support", "help", "customer service"}
	policyKeywords  = []string{"privacy", "terms", "refund", "returns", "shipping", "policies"}
)

// adHintKeywords are advertising/tracking markers counted across the raw HTML.
var adHintKeywords = []string{
	"sponsored",
	"advertisement",
	"adserv",
	"doubleclick",
	"googlesyndication",
	"affiliate",
	"utm_",
	"taboola",
	"outbrain",
}

// interstitialPhrases signal overlays, paywalls, and cookie walls.
var interstitialPhrases = []string{
	"accept all cookies",
	"cookie consent",
	"subscribe to continue",
	"sign up to continue",
	"register to read",
	"continue reading with",
	"enable notifications",
	"paywall",
}

// fillerPhrases are low-information connective phrases typical of padded or
// machine-generated copy. Counted in main-content text.
var fillerPhrases = []string{
	"in conclusion",
	"to sum up",
	"we hope this helps",
	"at the end of the day",
	"it is important to note",
	"in today's fast-paced world",
	"without further ado",
}

// spamPattern pairs a stable label with a compiled expression. The label is
// what gets recorded in SiteSignals.SpamPatternsFound.
type spamPattern struct {
	label string
	re    *regexp.Regexp
}

// spamPatterns run against lower-cased raw HTML.
var spamPatterns = []spamPattern{
	{"llm-disclaimer", regexp.MustCompile(`as an ai (language )?model`)},
	{"llm-refusal", regexp.MustCompile(`i (cannot|can't) (fulfill|assist with) (that|this) request`)},
	{"lorem-ipsum", regexp.MustCompile(`lorem ipsum`)},
	{"gambling-spam", regexp.MustCompile(`(online casino bonus|free spins no deposit|best betting odds)`)},
	{"pharma-spam", regexp.MustCompile(`(viagra|cialis|cheap pills online|no prescription needed)`)},
}

// ymylCategory pairs a category name with its keyword list. Hits are counted
// across title plus main content.
type ymylCategory struct {
	name     string
	keywords []string
}

var ymylCategories = []ymylCategory{
	{"health", []string{
		"diagnosis", "treatment", "symptom", "medication", "dosage",
		"side effect", "vaccine", "cancer", "disease", "therapy",
	}},
	{"finance", []string{
		"investment", "mortgage", "loan", "interest rate", "credit score",
		"retirement", "tax", "insurance", "cap rate", "financing",
	}},
	{"legal", []string{
		"lawsuit", "attorney", "legal advice", "regulation", "compliance",
		"zoning", "contract law", "liability", "statute", "litigation",
	}},
}

// YMYL risk tier thresholds over total keyword hits.
const (
	ymylHighThreshold   = 6
	ymylMediumThreshold = 2
)

// Purpose-classification keyword lists, checked in cascade order.
var (
	commerceKeywords = []string{"buy", "pricing", "checkout", "shop", "add to cart", "order now"}
	leadGenKeywords  = []string{"contact", "book", "schedule", "call us", "get a quote", "request a demo"}
	newsKeywords     = []string{"news", "breaking", "report", "press release"}
	infoKeywords     = []string{"how to", "guide", "tutorial", "what is", "explained"}
)
