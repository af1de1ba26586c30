// Package competitor resolves a storefront to its known competitors. The
// table is hardcoded for a small set of well-known brands; production use
// would back this with a search API.
package competitor

import "strings"

// competitorTable maps storefront domains to competitor domains
var competitorTable = map[string][]string{
	"colourpop.com":   {"jeffreestarcosmetics.com", "morphebrushes.com"},
	"fashionnova.com": {"prettylittlething.com", "boohoo.com"},
	"gymshark.com":    {"lululemon.com", "nike.com"},
	"cupshe.com":      {"swimoutlet.com", "vikinis.com"},
}

// For returns competitor domains for a website, matching the table by
// substring against the website's host. Unknown sites yield nil.
func For(website string) []string {
	host := hostOf(website)

	for key, competitors := range competitorTable {
		if strings.Contains(host, key) {
			return competitors
		}
	}

	return nil
}

// hostOf extracts the lowercased host portion of a website identifier,
// tolerating bare domains and full URLs alike
func hostOf(website string) string {
	if _, after, found := strings.Cut(website, "//"); found {
		website = after
	}

	host, _, _ := strings.Cut(website, "/")

	return strings.ToLower(host)
}
