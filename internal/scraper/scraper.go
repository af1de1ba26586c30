// Package scraper implements the storefront page-discovery and heuristic
// extraction pipeline: one sequential, best-effort crawl of the well-known
// page types assembling a single BrandInsights record per site.
package scraper

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/rs/zerolog/log"

	"github.com/ananyagupta2305/deepsolv/internal/fetch"
	"github.com/ananyagupta2305/deepsolv/internal/insights"
	"github.com/ananyagupta2305/deepsolv/internal/textutil"
)

const (
	// minPolicyPageText is the minimum page text length treated as a real
	// policy document rather than an empty shell page
	minPolicyPageText = 200
	// minAboutPageText is the minimum page text length worth summarizing
	minAboutPageText = 200
	// minFAQPageText is the minimum dedicated FAQ page text length
	minFAQPageText = 300
	// minHomepageFAQText is the minimum homepage text length for the FAQ
	// fallback when no dedicated page exists
	minHomepageFAQText = 500
	// productFeedPath is the storefront JSON product feed path
	productFeedPath = "/products.json"
)

// keyword tables for page discovery via the link catalog
var (
	privacyKeywords = []string{"privacy", "privacy policy", "data protection"}
	refundKeywords  = []string{"refund", "return", "returns", "exchange", "refund policy", "return policy"}
	faqKeywords     = []string{"faq", "frequently asked", "questions", "help", "support"}
	aboutKeywords   = []string{"about", "our story", "about us", "who we are", "mission"}
)

// Enhancer is the text-enhancement tier consumed by the pipeline. Every
// operation must absorb its own failures and return a usable default.
type Enhancer interface {
	CleanPolicyText(ctx context.Context, raw string) string
	ExtractFAQs(ctx context.Context, raw string) []insights.FAQ
	SummarizeAbout(ctx context.Context, raw string) string
}

// Scraper runs the extraction pipeline against one storefront at a time
type Scraper struct {
	fetcher  *fetch.Client
	enhancer Enhancer
}

// New creates a Scraper from its collaborators
func New(fetcher *fetch.Client, enhancer Enhancer) *Scraper {
	return &Scraper{fetcher: fetcher, enhancer: enhancer}
}

// Scrape crawls a storefront and assembles its BrandInsights record. Only
// three conditions are terminal: an unreachable site, a non-200 initial
// response, and an unparseable homepage; every other failure degrades the
// affected field to its default. The returned error is always a *ScrapeError.
func (s *Scraper) Scrape(ctx context.Context, rawURL string) (*insights.BrandInsights, error) {
	baseURL := NormalizeSiteURL(rawURL)

	log.Info().Str("website", baseURL).Msg("starting storefront scrape")

	status, err := s.fetcher.Probe(ctx, baseURL)
	if err != nil {
		log.Error().Err(err).Str("website", baseURL).Msg("connection failed")
		return nil, &ScrapeError{
			Message:    fmt.Sprintf("unable to connect: %v", err),
			StatusCode: http.StatusNotFound,
		}
	}

	if status != http.StatusOK {
		return nil, &ScrapeError{
			Message:    fmt.Sprintf("website returned status %d", status),
			StatusCode: status,
		}
	}

	homepage := s.fetcher.HTML(ctx, baseURL)
	if homepage == nil {
		return nil, &ScrapeError{
			Message:    "failed to load homepage",
			StatusCode: http.StatusInternalServerError,
		}
	}

	base, err := url.Parse(baseURL)
	if err != nil {
		return nil, &ScrapeError{
			Message:    fmt.Sprintf("invalid website url: %v", err),
			StatusCode: http.StatusInternalServerError,
		}
	}

	record := &insights.BrandInsights{Website: baseURL}

	var feed productFeed

	s.fetcher.JSON(ctx, baseURL+productFeedPath, &feed)
	record.Products = ParseProductFeed(feed.Products)
	log.Info().Int("count", len(record.Products)).Msg("product feed parsed")

	record.HeroProducts = ExtractHeroProducts(homepage, record.Products)

	catalog := BuildLinkCatalog(homepage, base)
	log.Debug().Int("links", catalog.Len()).Msg("link catalog built")

	record.PrivacyPolicy = s.fetchPolicy(ctx, catalog, privacyKeywords)
	record.ReturnRefundPolicy = s.fetchPolicy(ctx, catalog, refundKeywords)

	record.FAQs = s.fetchFAQs(ctx, catalog, homepage)
	log.Info().Int("count", len(record.FAQs)).Msg("faq extraction complete")

	record.SocialHandles = ExtractSocialHandles(homepage)

	bodyText := textutil.FromDocument(homepage)
	record.ContactInfo = ExtractContactInfo(bodyText)

	record.AboutBrand = s.fetchAbout(ctx, catalog)
	record.ImportantLinks = CategorizeImportantLinks(catalog)
	record.BrandName = ResolveBrandName(homepage, base.Hostname())

	insights.Finalize(record)

	log.Info().
		Str("brand", record.BrandName).
		Int("products", len(record.Products)).
		Int("faqs", len(record.FAQs)).
		Int("socials", len(record.SocialHandles)).
		Msg("storefront scrape complete")

	return record, nil
}

// fetchPolicy discovers policy pages by keyword and uses the first one whose
// text is substantial enough to be a policy, running the enhancement tier over
// it. Returns nil when no candidate passes.
func (s *Scraper) fetchPolicy(ctx context.Context, catalog *LinkCatalog, keywords []string) *insights.Policy {
	for _, pageURL := range catalog.FindAll(keywords...) {
		doc := s.fetcher.HTML(ctx, pageURL)
		if doc == nil {
			continue
		}

		text := textutil.FromDocument(doc)
		if len(text) <= minPolicyPageText {
			continue
		}

		log.Info().Str("url", pageURL).Msg("found policy page")

		return &insights.Policy{
			URL:     pageURL,
			Content: s.enhancer.CleanPolicyText(ctx, text),
		}
	}

	return nil
}

// fetchFAQs prefers a dedicated FAQ page over the homepage, trying each
// keyword-matching candidate in document order; homepage text is only
// consulted when no candidate yields anything.
func (s *Scraper) fetchFAQs(ctx context.Context, catalog *LinkCatalog, homepage *goquery.Document) []insights.FAQ {
	for _, pageURL := range catalog.FindAll(faqKeywords...) {
		doc := s.fetcher.HTML(ctx, pageURL)
		if doc == nil {
			continue
		}

		text := textutil.FromDocument(doc)
		if len(text) <= minFAQPageText {
			continue
		}

		log.Info().Str("url", pageURL).Msg("found faq page")

		if faqs := s.enhancer.ExtractFAQs(ctx, text); len(faqs) > 0 {
			return faqs
		}
	}

	log.Debug().Msg("no dedicated faq page yielded results, trying homepage text")

	text := textutil.FromDocument(homepage)
	if len(text) > minHomepageFAQText {
		return s.enhancer.ExtractFAQs(ctx, text)
	}

	return nil
}

// fetchAbout discovers about pages by keyword and summarizes the first one
// with enough text
func (s *Scraper) fetchAbout(ctx context.Context, catalog *LinkCatalog) string {
	for _, pageURL := range catalog.FindAll(aboutKeywords...) {
		doc := s.fetcher.HTML(ctx, pageURL)
		if doc == nil {
			continue
		}

		text := textutil.FromDocument(doc)
		if len(text) <= minAboutPageText {
			continue
		}

		return s.enhancer.SummarizeAbout(ctx, text)
	}

	return ""
}

// NormalizeSiteURL trims the input, strips any trailing slash and prepends
// the https scheme when absent.
func NormalizeSiteURL(rawURL string) string {
	rawURL = strings.TrimRight(strings.TrimSpace(rawURL), "/")

	if !strings.HasPrefix(rawURL, "http") {
		rawURL = "https://" + rawURL
	}

	return rawURL
}
