package scraper

import (
	"regexp"

	"github.com/PuerkitoBio/goquery"

	"github.com/ananyagupta2305/deepsolv/internal/insights"
)

// socialRule ties a host pattern to its platform name; first match wins
type socialRule struct {
	pattern  *regexp.Regexp
	platform string
}

// socialRules is the fixed ordered set of recognized social platforms
var socialRules = []socialRule{
	{regexp.MustCompile(`(?i)instagram\.com`), "Instagram"},
	{regexp.MustCompile(`(?i)facebook\.com`), "Facebook"},
	{regexp.MustCompile(`(?i)tiktok\.com`), "TikTok"},
	{regexp.MustCompile(`(?i)twitter\.com`), "Twitter"},
	{regexp.MustCompile(`(?i)youtube\.com`), "YouTube"},
	{regexp.MustCompile(`(?i)linkedin\.com`), "LinkedIn"},
	{regexp.MustCompile(`(?i)pinterest\.com`), "Pinterest"},
}

// ExtractSocialHandles scans every anchor on the page for links to the
// recognized social platforms. Each distinct href is recorded once, tagged
// with the first matching platform.
func ExtractSocialHandles(doc *goquery.Document) []insights.SocialHandle {
	if doc == nil {
		return nil
	}

	var handles []insights.SocialHandle

	seen := make(map[string]struct{})

	doc.Find("a[href]").Each(func(_ int, sel *goquery.Selection) {
		href, _ := sel.Attr("href")
		if href == "" {
			return
		}

		if _, dup := seen[href]; dup {
			return
		}

		for _, rule := range socialRules {
			if rule.pattern.MatchString(href) {
				seen[href] = struct{}{}
				handles = append(handles, insights.SocialHandle{
					Platform: rule.platform,
					URL:      href,
				})

				break
			}
		}
	})

	return handles
}
