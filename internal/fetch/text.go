package fetch

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// commonNoise is removed from every page before extraction.
const commonNoise = "nav, footer, header, script, style, noscript, iframe, svg, form, .ad, .ads, .advertisement, .sidebar, .cookie-banner, .cookie-consent, .popup"

// blockElements end a line in the extracted text.
const blockElements = "p, div, li, h1, h2, h3, h4, h5, h6, tr, section, article, ul, ol, dd, dt"

// ExtractMainText parses html, drops noise, and returns the text of the first
// element matching contentSelectors, falling back to body. Block elements
// become line breaks so section headers in the posting stay on their own
// lines.
func ExtractMainText(html string, contentSelectors []string, noiseSelectors ...string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", fmt.Errorf("failed to parse HTML: %w", err)
	}

	doc.Find(commonNoise).Remove()
	if len(noiseSelectors) > 0 {
		doc.Find(strings.Join(noiseSelectors, ", ")).Remove()
	}

	content := doc.Find("body")
	for _, selector := range contentSelectors {
		if s := doc.Find(selector); s.Length() > 0 {
			content = s.First()
			break
		}
	}

	content.Find("br").ReplaceWithHtml("\n")
	content.Find(blockElements).Each(func(_ int, s *goquery.Selection) {
		s.AppendHtml("\n")
	})

	return cleanWhitespace(content.Text()), nil
}

// Title returns the page title, or "" when absent.
func Title(html string) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return ""
	}
	return strings.TrimSpace(doc.Find("title").First().Text())
}

// cleanWhitespace collapses runs of spaces and drops blank lines.
func cleanWhitespace(text string) string {
	var lines []string
	for _, line := range strings.Split(text, "\n") {
		if line = strings.Join(strings.Fields(line), " "); line != "" {
			lines = append(lines, line)
		}
	}
	return strings.Join(lines, "\n")
}
