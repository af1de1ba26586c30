package scraper

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/publicsuffix"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/ananyagupta2305/deepsolv/internal/insights"
)

// titleCaser capitalizes the hostname fallback brand name
var titleCaser = cases.Title(language.English)

// linkCategory pairs an important-link category with its keyword list
type linkCategory struct {
	name     string
	keywords []string
}

// linkCategories is the fixed ordered table of important-link categories
var linkCategories = []linkCategory{
	{"contact_us", []string{"contact", "contact us", "get in touch"}},
	{"order_tracking", []string{"track", "tracking", "track order", "order status"}},
	{"blog", []string{"blog", "news", "articles"}},
	{"shipping", []string{"shipping", "delivery", "shipping info"}},
	{"size_guide", []string{"size", "sizing", "size guide", "fit guide"}},
}

// ResolveBrandName determines the storefront's brand name, trying in order:
// the document title split at the first "|" or "-", the og:site_name meta
// tag, and finally the registrable first label of the hostname, title-cased.
func ResolveBrandName(doc *goquery.Document, host string) string {
	if doc != nil {
		if name := nameFromTitle(doc); name != "" {
			return name
		}

		if content, ok := doc.Find(`meta[property="og:site_name"]`).Attr("content"); ok {
			if name := strings.TrimSpace(content); name != "" {
				return name
			}
		}
	}

	if label := registrableLabel(host); label != "" {
		return titleCaser.String(label)
	}

	return insights.DefaultBrandName
}

// nameFromTitle takes the document title up to the first separator
func nameFromTitle(doc *goquery.Document) string {
	title := doc.Find("title").First().Text()
	if title == "" {
		return ""
	}

	title, _, _ = strings.Cut(title, "|")
	title, _, _ = strings.Cut(title, "-")

	return strings.TrimSpace(title)
}

// registrableLabel returns the first label of the registrable domain for a
// host, falling back to the host's own first label when the public suffix
// list cannot place it
func registrableLabel(host string) string {
	if host == "" {
		return ""
	}

	domain, err := publicsuffix.EffectiveTLDPlusOne(host)
	if err != nil {
		domain = host
	}

	label, _, _ := strings.Cut(domain, ".")

	return label
}

// CategorizeImportantLinks selects, for each fixed category, the first link
// catalog entry whose anchor text contains any of the category's keywords.
// Categories with no matching link are absent from the result.
func CategorizeImportantLinks(catalog *LinkCatalog) map[string]string {
	links := make(map[string]string)

	for _, category := range linkCategories {
		if url, ok := catalog.Find(category.keywords...); ok {
			links[category.name] = url
		}
	}

	return links
}
