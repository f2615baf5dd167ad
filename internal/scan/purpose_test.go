package scan

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyPurpose_CascadePriority(t *testing.T) {
	cases := []struct {
		name  string
		title string
		text  string
		path  string
		want  string
	}{
		{"commerce", "Shop industrial fixtures", "add to cart today", "/store", PurposeCommerce},
		{"commerce beats lead gen", "Pricing and quotes", "contact us to buy now", "/", PurposeCommerce},
		{"lead gen", "Acme Brokerage", "call us for a walkthrough or request a demo", "/", PurposeLeadGen},
		{"news", "Market update", "breaking development in the industrial sector", "/", PurposeNews},
		{"informational", "Leasing basics", "what is a triple net lease, explained simply", "/", PurposeInformational},
		{"blog path fallback", "Thoughts", "musings on warehouses", "/blog/2024/musings", PurposeBlog},
		{"unclear", "Acme", "industrial musings", "/page", PurposeMixed},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, classifyPurpose(tc.title, tc.text, tc.path))
		})
	}
}

func TestClassifyPurpose_OnlySamplesContentHead(t *testing.T) {
	// A commerce keyword past the sampling window must not influence the
	// classification.
	padding := make([]byte, purposeSampleLength)
	for i := range padding {
		padding[i] = 'x'
	}
	text := string(padding) + " buy now checkout"

	assert.Equal(t, PurposeMixed, classifyPurpose("Untitled", text, "/page"))
}
