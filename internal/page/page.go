// Package page wraps goquery to expose the two document capabilities
// the pipeline needs: anchors with hrefs, and visible text.
package page

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// Anchor is a link element found on a page, in document order.
type Anchor struct {
	// Href is the raw href attribute, possibly relative.
	Href string
	// Text is the anchor's visible text.
	Text string
}

// Page is a parsed HTML document.
type Page struct {
	doc *goquery.Document
}

// Parse parses an HTML body into a queryable page.
func Parse(body string) (*Page, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("parse html: %w", err)
	}
	return &Page{doc: doc}, nil
}

// Anchors returns every anchor with an href, in document order.
func (p *Page) Anchors() []Anchor {
	var anchors []Anchor

	p.doc.Find("a[href]").Each(func(_ int, s *goquery.Selection) {
		href, _ := s.Attr("href")
		anchors = append(anchors, Anchor{
			Href: href,
			Text: strings.TrimSpace(s.Text()),
		})
	})

	return anchors
}

// invisibleElements are skipped when collecting visible text.
var invisibleElements = map[string]struct{}{
	"script":   {},
	"style":    {},
	"noscript": {},
	"template": {},
}

// Text returns the page's visible text with text nodes joined by single
// spaces, the way a reader would see it.
func (p *Page) Text() string {
	var parts []string
	for _, node := range p.doc.Selection.Nodes {
		collectText(node, &parts)
	}
	return strings.Join(parts, " ")
}

// collectText walks the node tree gathering trimmed text nodes.
func collectText(n *html.Node, parts *[]string) {
	if n.Type == html.ElementNode {
		if _, skip := invisibleElements[n.Data]; skip {
			return
		}
	}

	if n.Type == html.TextNode {
		if t := strings.TrimSpace(n.Data); t != "" {
			*parts = append(*parts, t)
		}
	}

	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collectText(c, parts)
	}
}
