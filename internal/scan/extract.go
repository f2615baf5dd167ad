package scan

import (
	"context"
	"log"
	"net/url"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/jordan/visibility-scanner/internal/fetch"
)

// excerptLength is how much main-content text is kept for downstream
// generative grounding.
const excerptLength = 2000

// authorSampleLength bounds the byline search to the top of the content,
// where bylines actually live.
const authorSampleLength = 2000

var (
	whitespaceRe = regexp.MustCompile(`\s+`)

	// "by FirstName LastName", 1 to 4 capitalized words after "by".
	bylineRe = regexp.MustCompile(`\b[Bb]y\s+[A-Z][a-z]+(?:\s+[A-Z][a-z]+){0,3}\b`)

	// YYYY-MM-DD with -, / or . separators.
	isoDateRe = regexp.MustCompile(`\b\d{4}[-/.]\d{1,2}[-/.]\d{1,2}\b`)

	// "Month DD, YYYY" textual dates.
	monthDateRe = regexp.MustCompile(`(?i)\b(january|february|march|april|may|june|july|august|september|october|november|december)\s+\d{1,2},?\s+\d{4}\b`)
)

// Options configures a scan.
type Options struct {
	Fetch      *fetch.Options
	UseBrowser bool
	Verbose    bool
}

// Extract fetches a URL and derives its signal record. Fetch failures return
// a *fetch.Error; unparseable markup returns a *ParseError. A non-2xx status
// is neither: extraction proceeds on whatever body came back and the status
// lands in SiteSignals.HTTPStatus.
func Extract(ctx context.Context, urlStr string, opts *Options) (*SiteSignals, error) {
	if opts == nil {
		opts = &Options{}
	}

	result, err := fetch.Page(ctx, urlStr, opts.Fetch)
	if err != nil {
		return nil, err
	}
	if opts.Verbose {
		log.Printf("[SCAN] %s: status %d, %d bytes", urlStr, result.StatusCode, len(result.HTML))
	}

	html := result.HTML
	if opts.UseBrowser {
		signals, err := FromHTML(result.RequestedURL, result.FinalURL, result.StatusCode, html)
		if err == nil && signals.WordCount != nil && fetch.ShouldUseBrowser(signals.Excerpt) {
			rendered, renderErr := fetch.RenderPageSimple(ctx, urlStr, opts.Verbose)
			if renderErr == nil {
				html = rendered
			} else if opts.Verbose {
				log.Printf("[SCAN] browser fallback failed, keeping HTTP content: %v", renderErr)
			}
		}
	}

	return FromHTML(result.RequestedURL, result.FinalURL, result.StatusCode, html)
}

// FromHTML derives the full signal record from an already-fetched body.
// Pure except for the parse; exposed separately so it can be tested without
// a network.
func FromHTML(requestedURL, finalURL string, httpStatus int, rawHTML string) (*SiteSignals, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		return nil, &ParseError{URL: requestedURL, Message: "failed to parse HTML", Cause: err}
	}

	signals := &SiteSignals{
		RequestedURL: requestedURL,
		FinalURL:     finalURL,
		HTTPStatus:   intPtr(httpStatus),
	}

	lowerRaw := strings.ToLower(rawHTML)

	// Page metadata from the original document.
	title := normalizeWhitespace(doc.Find("title").First().Text())
	signals.Title = strPtr(title)
	if desc, ok := doc.Find(`meta[name='description']`).First().Attr("content"); ok {
		signals.MetaDescription = strPtr(normalizeWhitespace(desc))
	}
	if canonical, ok := doc.Find(`link[rel='canonical']`).First().Attr("href"); ok && canonical != "" {
		signals.CanonicalURL = strPtr(strings.TrimSpace(canonical))
	}
	if lang, ok := doc.Find("html").First().Attr("lang"); ok && lang != "" {
		signals.Language = strPtr(lang)
	}

	// Main content comes from a stripped working copy so scripts, chrome and
	// boilerplate never pollute word counts or the excerpt.
	mainText := extractMainText(rawHTML)
	tokens := tokenize(mainText)
	signals.WordCount = intPtr(len(tokens))

	// Headings are counted on the ORIGINAL document, not the stripped copy:
	// headings outside main content still count toward structural signal.
	signals.HeadingCount = intPtr(doc.Find("h1, h2, h3").Length())

	// Link structure, also from the original document.
	totalLinks, outboundLinks := classifyLinkHosts(doc, finalURL)
	signals.TotalLinkCount = intPtr(totalLinks)
	signals.OutboundLinkCount = intPtr(outboundLinks)

	// max(1, wordCount) guards near-empty pages against divide-by-zero.
	denominator := len(tokens)
	if denominator < 1 {
		denominator = 1
	}
	signals.LinkToTextRatio = floatPtr(float64(totalLinks) / float64(denominator))

	signals.RepetitionScore = floatPtr(repetitionScore(tokens))

	// Trust signals.
	signals.HasAuthorSignal = boolPtr(detectAuthorSignal(doc, mainText))
	signals.HasDateSignal = boolPtr(detectDateSignal(doc, mainText))
	signals.HasStructuredData = boolPtr(detectStructuredData(lowerRaw))

	hasAbout, hasContact, hasPolicy := classifyLinkText(doc)
	signals.HasAboutLink = boolPtr(hasAbout)
	signals.HasContactLink = boolPtr(hasContact)
	signals.HasPolicyLinks = boolPtr(hasPolicy)

	// Ads / UX hints over the raw HTML.
	adHints := 0
	for _, kw := range adHintKeywords {
		adHints += strings.Count(lowerRaw, kw)
	}
	signals.AdHintCount = intPtr(adHints)
	signals.HasInterstitialHint = boolPtr(containsAny(lowerRaw, interstitialPhrases))

	// Spam patterns: record each matched pattern's label once, in table order.
	found := []string{}
	for _, sp := range spamPatterns {
		if sp.re.MatchString(lowerRaw) {
			found = append(found, sp.label)
		}
	}
	signals.SpamPatternsFound = found

	// Filler language in main content.
	lowerMain := strings.ToLower(mainText)
	fillerHits := 0
	for _, phrase := range fillerPhrases {
		fillerHits += strings.Count(lowerMain, phrase)
	}
	signals.FillerPhraseHits = intPtr(fillerHits)

	risk, categories := assessYMYL(title, mainText)
	signals.YMYLRisk = riskPtr(risk)
	signals.YMYLCategories = categories

	signals.PurposeGuess = strPtr(classifyPurpose(title, mainText, urlPath(finalURL)))

	signals.Excerpt = truncate(mainText, excerptLength)

	return signals, nil
}

// extractMainText strips non-content elements from a working copy and pulls
// whitespace-normalized text from the main-content region, with a
// main -> article -> body fallback chain.
func extractMainText(rawHTML string) string {
	working, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		return ""
	}

	working.Find("script, style, noscript, nav, footer, aside").Remove()

	var region *goquery.Selection
	for _, selector := range []string{"main", "article", "body"} {
		if sel := working.Find(selector); sel.Length() > 0 {
			region = sel.First()
			break
		}
	}
	if region == nil {
		return ""
	}

	return normalizeWhitespace(region.Text())
}

// classifyLinkHosts counts anchors and how many resolve to a different
// hostname than the final page's. Malformed hrefs are skipped entirely:
// counted neither outbound nor inbound.
func classifyLinkHosts(doc *goquery.Document, finalURL string) (total int, outbound int) {
	base, baseErr := url.Parse(finalURL)

	doc.Find("a[href]").Each(func(_ int, s *goquery.Selection) {
		total++

		if baseErr != nil || base.Host == "" {
			return
		}
		href, _ := s.Attr("href")
		linkURL, err := url.Parse(strings.TrimSpace(href))
		if err != nil {
			return
		}
		resolved := base.ResolveReference(linkURL)
		if resolved.Host != "" && resolved.Host != base.Host {
			outbound++
		}
	})

	return total, outbound
}

// classifyLinkText matches each anchor's href + visible text against the
// about/contact/policy keyword sets.
func classifyLinkText(doc *goquery.Document) (hasAbout, hasContact, hasPolicy bool) {
	doc.Find("a[href]").Each(func(_ int, s *goquery.Selection) {
		href, _ := s.Attr("href")
		blob := strings.ToLower(href + " " + s.Text())

		if !hasAbout && containsAny(blob, aboutKeywords) {
			hasAbout = true
		}
		if !hasContact && containsAny(blob, contactKeywords) {
			hasContact = true
		}
		if !hasPolicy && containsAny(blob, policyKeywords) {
			hasPolicy = true
		}
	})
	return hasAbout, hasContact, hasPolicy
}

func detectAuthorSignal(doc *goquery.Document, mainText string) bool {
	if doc.Find(`[rel='author'], meta[name='author']`).Length() > 0 {
		return true
	}
	return bylineRe.MatchString(truncate(mainText, authorSampleLength))
}

func detectDateSignal(doc *goquery.Document, mainText string) bool {
	if doc.Find("time").Length() > 0 {
		return true
	}
	return isoDateRe.MatchString(mainText) || monthDateRe.MatchString(mainText)
}

func detectStructuredData(lowerRaw string) bool {
	if strings.Contains(lowerRaw, "schema.org") {
		return true
	}
	return strings.Contains(lowerRaw, `"@type"`) && strings.Contains(lowerRaw, `"@context"`)
}

func normalizeWhitespace(text string) string {
	return strings.TrimSpace(whitespaceRe.ReplaceAllString(text, " "))
}

func truncate(text string, limit int) string {
	if len(text) <= limit {
		return text
	}
	// Back off to a rune boundary so the cut never splits a character.
	cut := limit
	for cut > 0 && (text[cut]&0xC0) == 0x80 {
		cut--
	}
	return text[:cut]
}

func urlPath(urlStr string) string {
	parsed, err := url.Parse(urlStr)
	if err != nil {
		return ""
	}
	return parsed.Path
}
