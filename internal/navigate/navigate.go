// Package navigate discovers a site's legal-disclosure (impressum) page
// from the anchors of its landing page.
package navigate

import (
	"net/url"
	"strings"

	"github.com/jonesrussell/goimpressum/internal/domain"
	"github.com/jonesrussell/goimpressum/internal/page"
)

// impressumKeywords match legal-disclosure links by anchor text or href.
var impressumKeywords = []string{
	"impressum",
	"imprint",
	"legal",
	"kontakt",
	"contact",
	"about",
	"über uns",
}

// FindImpressum scans the page's anchors in document order and returns
// the absolute URL of the first one whose visible text or href contains
// an impressum keyword, case-insensitively. Relative hrefs are resolved
// against baseURL. Returns ok=false when no anchor matches.
func FindImpressum(p *page.Page, baseURL string) (string, bool) {
	candidates := Candidates(p, baseURL)
	if len(candidates) == 0 {
		return "", false
	}

	// First match in document order wins. Relevance is recorded on the
	// candidates but not ranked on.
	return candidates[0].URL, true
}

// Candidates returns every keyword-matching anchor as a link candidate,
// in document order, with a keyword-count relevance indicator.
func Candidates(p *page.Page, baseURL string) []domain.LinkCandidate {
	base, err := url.Parse(baseURL)
	if err != nil {
		return nil
	}

	var candidates []domain.LinkCandidate
	for _, anchor := range p.Anchors() {
		relevance := keywordMatches(anchor)
		if relevance == 0 {
			continue
		}

		ref, parseErr := url.Parse(anchor.Href)
		if parseErr != nil {
			continue
		}

		candidates = append(candidates, domain.LinkCandidate{
			URL:       base.ResolveReference(ref).String(),
			Text:      anchor.Text,
			Relevance: relevance,
		})
	}

	return candidates
}

// keywordMatches counts how many impressum keywords the anchor's
// case-folded text or href contains.
func keywordMatches(anchor page.Anchor) int {
	text := strings.ToLower(anchor.Text)
	href := strings.ToLower(anchor.Href)

	count := 0
	for _, keyword := range impressumKeywords {
		if strings.Contains(text, keyword) || strings.Contains(href, keyword) {
			count++
		}
	}
	return count
}
