package scraper

import (
	"encoding/json"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/rs/zerolog/log"

	"github.com/ananyagupta2305/deepsolv/internal/insights"
)

const (
	// maxProducts caps how many product feed entries are parsed
	maxProducts = 50
	// maxHeroProducts caps how many homepage-linked products are collected
	maxHeroProducts = 10
	// defaultProductTitle stands in for feed entries without a title
	defaultProductTitle = "Unnamed Product"
	// defaultProductPrice stands in for feed entries without a variant price
	defaultProductPrice = "N/A"
	// productPathMarker identifies product detail links on the homepage
	productPathMarker = "/products/"
)

// productFeed is the envelope of a storefront /products.json response.
// Entries stay raw so one malformed product cannot fail the whole feed.
type productFeed struct {
	Products []json.RawMessage `json:"products"`
}

// feedProduct is a single product feed entry
type feedProduct struct {
	Title    string `json:"title"`
	Handle   string `json:"handle"`
	Variants []struct {
		Price string `json:"price"`
	} `json:"variants"`
	Images []struct {
		Src string `json:"src"`
	} `json:"images"`
}

// ParseProductFeed converts raw product feed entries into Products, capping
// at 50 entries and skipping any entry that fails to decode.
func ParseProductFeed(entries []json.RawMessage) []insights.Product {
	if len(entries) > maxProducts {
		entries = entries[:maxProducts]
	}

	products := make([]insights.Product, 0, len(entries))

	for _, raw := range entries {
		var entry feedProduct
		if err := json.Unmarshal(raw, &entry); err != nil {
			log.Warn().Err(err).Msg("skipping malformed product feed entry")
			continue
		}

		product := insights.Product{
			Title:  entry.Title,
			Handle: entry.Handle,
			Price:  defaultProductPrice,
		}

		if product.Title == "" {
			product.Title = defaultProductTitle
		}

		if len(entry.Variants) > 0 && entry.Variants[0].Price != "" {
			product.Price = entry.Variants[0].Price
		}

		if len(entry.Images) > 0 {
			product.Image = entry.Images[0].Src
		}

		products = append(products, product)
	}

	return products
}

// ExtractHeroProducts scans homepage anchors pointing at product detail pages
// and returns the catalog products they reference, in document order, capped
// at 10 unique handles. Only handles present in the parsed catalog count.
func ExtractHeroProducts(doc *goquery.Document, products []insights.Product) []insights.Product {
	if doc == nil || len(products) == 0 {
		return nil
	}

	byHandle := make(map[string]insights.Product, len(products))
	for _, p := range products {
		if p.Handle != "" {
			byHandle[p.Handle] = p
		}
	}

	var hero []insights.Product

	seen := make(map[string]struct{})

	doc.Find("a[href]").EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		href, _ := sel.Attr("href")

		handle := productHandleFromHref(href)
		if handle == "" {
			return true
		}

		if _, dup := seen[handle]; dup {
			return true
		}

		seen[handle] = struct{}{}

		if product, ok := byHandle[handle]; ok {
			hero = append(hero, product)
		}

		return len(hero) < maxHeroProducts
	})

	return hero
}

// productHandleFromHref extracts the product slug from a /products/ link,
// dropping any query string or fragment
func productHandleFromHref(href string) string {
	_, after, found := strings.Cut(href, productPathMarker)
	if !found {
		return ""
	}

	handle := after
	if i := strings.IndexAny(handle, "?#"); i >= 0 {
		handle = handle[:i]
	}

	return strings.Trim(handle, "/")
}
