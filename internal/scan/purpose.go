package scan

import "strings"

// Purpose classification labels.
const (
	PurposeCommerce      = "commerce / transactional"
	PurposeLeadGen       = "lead generation"
	PurposeNews          = "news / current events"
	PurposeInformational = "informational"
	PurposeBlog          = "blog / editorial"
	PurposeMixed         = "mixed / unclear"
)

// purposeRule is one step of the first-match-wins cascade.
type purposeRule struct {
	label string
	match func(text string, urlPath string) bool
}

func containsAny(text string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(text, kw) {
			return true
		}
	}
	return false
}

// purposeRules are evaluated in priority order. Commerce intent beats
// lead-gen beats news beats informational; a "blog" URL path is the last
// resort before giving up.
var purposeRules = []purposeRule{
	{PurposeCommerce, func(text, _ string) bool { return containsAny(text, commerceKeywords) }},
	{PurposeLeadGen, func(text, _ string) bool { return containsAny(text, leadGenKeywords) }},
	{PurposeNews, func(text, _ string) bool { return containsAny(text, newsKeywords) }},
	{PurposeInformational, func(text, _ string) bool { return containsAny(text, infoKeywords) }},
	{PurposeBlog, func(_, urlPath string) bool { return strings.Contains(urlPath, "blog") }},
}

// purposeSampleLength bounds how much main content feeds the classifier.
const purposeSampleLength = 1200

// classifyPurpose guesses the page's primary purpose from its title, the
// first part of its main content, and the URL path. First match wins; the
// cascade order is the priority order, not a scored vote.
func classifyPurpose(title string, mainText string, urlPath string) string {
	sample := mainText
	if len(sample) > purposeSampleLength {
		sample = sample[:purposeSampleLength]
	}
	text := strings.ToLower(title + " " + sample)
	path := strings.ToLower(urlPath)

	for _, rule := range purposeRules {
		if rule.match(text, path) {
			return rule.label
		}
	}
	return PurposeMixed
}
