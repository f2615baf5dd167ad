package scan

import "strings"

// assessYMYL counts risk-category keyword hits across title plus main
// content and tiers the result. Every occurrence counts, not just presence:
// a page that says "mortgage" ten times is riskier than one that says it
// once. Returns the tier and the names of categories with at least one hit.
func assessYMYL(title string, mainText string) (RiskLevel, []string) {
	text := strings.ToLower(title + " " + mainText)

	totalHits := 0
	var hitCategories []string
	for _, cat := range ymylCategories {
		catHits := 0
		for _, kw := range cat.keywords {
			catHits += strings.Count(text, kw)
		}
		if catHits > 0 {
			hitCategories = append(hitCategories, cat.name)
		}
		totalHits += catHits
	}

	switch {
	case totalHits >= ymylHighThreshold:
		return RiskHigh, hitCategories
	case totalHits >= ymylMediumThreshold:
		return RiskMedium, hitCategories
	default:
		return RiskLow, hitCategories
	}
}
