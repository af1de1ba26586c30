package scraper

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// maxAnchorTextLength filters out anchors whose visible text is too long to
// be navigation; long texts are usually inlined paragraphs wrapped in links
const maxAnchorTextLength = 100

// linkEntry is one anchor-text to URL pair in document order
type linkEntry struct {
	text string
	url  string
}

// LinkCatalog maps lowercased anchor text to the resolved absolute URL for
// every usable anchor on a page. Entries keep document order; a later anchor
// with identical text overwrites the URL of the earlier one in place. The
// catalog is the sole mechanism used to discover policy, FAQ and about pages
// by keyword.
type LinkCatalog struct {
	entries []linkEntry
	index   map[string]int
}

// BuildLinkCatalog collects all anchors with non-empty visible text under 100
// characters and an href, resolving each href against base.
func BuildLinkCatalog(doc *goquery.Document, base *url.URL) *LinkCatalog {
	catalog := &LinkCatalog{index: make(map[string]int)}

	if doc == nil || base == nil {
		return catalog
	}

	doc.Find("a[href]").Each(func(_ int, sel *goquery.Selection) {
		text := strings.ToLower(strings.TrimSpace(sel.Text()))
		if text == "" || len(text) >= maxAnchorTextLength {
			return
		}

		href, ok := sel.Attr("href")
		if !ok || href == "" {
			return
		}

		ref, err := url.Parse(strings.TrimSpace(href))
		if err != nil {
			return
		}

		catalog.put(text, base.ResolveReference(ref).String())
	})

	return catalog
}

// put inserts or overwrites an entry, preserving first-seen position
func (c *LinkCatalog) put(text, resolved string) {
	if i, ok := c.index[text]; ok {
		c.entries[i].url = resolved
		return
	}

	c.index[text] = len(c.entries)
	c.entries = append(c.entries, linkEntry{text: text, url: resolved})
}

// Find returns the URL of the first entry whose anchor text contains any of
// the given keywords, scanning entries in document order.
func (c *LinkCatalog) Find(keywords ...string) (string, bool) {
	for _, entry := range c.entries {
		for _, keyword := range keywords {
			if strings.Contains(entry.text, keyword) {
				return entry.url, true
			}
		}
	}

	return "", false
}

// FindAll returns the URLs of every entry whose anchor text contains any of
// the given keywords, in document order, deduplicated by URL.
func (c *LinkCatalog) FindAll(keywords ...string) []string {
	var urls []string

	seen := make(map[string]bool)

	for _, entry := range c.entries {
		for _, keyword := range keywords {
			if strings.Contains(entry.text, keyword) {
				if !seen[entry.url] {
					seen[entry.url] = true
					urls = append(urls, entry.url)
				}

				break
			}
		}
	}

	return urls
}

// Len reports the number of distinct anchor texts in the catalog
func (c *LinkCatalog) Len() int {
	return len(c.entries)
}
