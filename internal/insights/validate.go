package insights

import (
	"strings"

	"github.com/samber/lo"
)

const (
	// DefaultBrandName is used when no brand name could be resolved
	DefaultBrandName = "Unknown Brand"
	// DefaultAboutText is used when no about text could be extracted
	DefaultAboutText = "Not available."
	// heroBackfillCount is how many leading products stand in for hero
	// products when the homepage matcher found none
	heroBackfillCount = 6
	// maxFAQs caps the FAQ list after deduplication
	maxFAQs = 8
)

// Finalize applies the schema-with-defaults pass to an assembled record:
// every missing field takes its type-appropriate default, FAQs are
// deduplicated by case-insensitive question, malformed social handles are
// dropped, and hero products are backfilled from the catalog when the
// homepage matcher found none. The record is modified in place and returned.
func Finalize(b *BrandInsights) *BrandInsights {
	if b.BrandName == "" {
		b.BrandName = DefaultBrandName
	}

	if b.AboutBrand == "" {
		b.AboutBrand = DefaultAboutText
	}

	if b.Products == nil {
		b.Products = []Product{}
	}

	// Backfill only when the matcher found nothing; homepage-derived hero
	// products always win over the positional fallback.
	if len(b.HeroProducts) == 0 && len(b.Products) > 0 {
		n := min(heroBackfillCount, len(b.Products))
		b.HeroProducts = append([]Product{}, b.Products[:n]...)
	}

	if b.HeroProducts == nil {
		b.HeroProducts = []Product{}
	}

	b.FAQs = dedupeFAQs(b.FAQs)
	if len(b.FAQs) > maxFAQs {
		b.FAQs = b.FAQs[:maxFAQs]
	}

	b.SocialHandles = lo.Filter(b.SocialHandles, func(s SocialHandle, _ int) bool {
		return s.Platform != "" && s.URL != ""
	})
	if b.SocialHandles == nil {
		b.SocialHandles = []SocialHandle{}
	}

	if b.ContactInfo.Emails == nil {
		b.ContactInfo.Emails = []string{}
	}

	if b.ContactInfo.Phones == nil {
		b.ContactInfo.Phones = []string{}
	}

	if b.ImportantLinks == nil {
		b.ImportantLinks = map[string]string{}
	}

	if b.AdditionalInsights == nil {
		b.AdditionalInsights = map[string]bool{}
	}

	return b
}

// dedupeFAQs keeps the first occurrence of each case-insensitive question
func dedupeFAQs(faqs []FAQ) []FAQ {
	seen := make(map[string]struct{}, len(faqs))
	unique := make([]FAQ, 0, len(faqs))

	for _, faq := range faqs {
		key := strings.ToLower(faq.Question)
		if _, dup := seen[key]; dup {
			continue
		}

		seen[key] = struct{}{}
		unique = append(unique, faq)
	}

	return unique
}
