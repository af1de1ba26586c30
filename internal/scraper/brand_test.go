package scraper

import "testing"

func TestResolveBrandName(t *testing.T) {
	tests := []struct {
		name     string
		html     string
		host     string
		expected string
	}{
		{
			"title with pipe separator",
			`<html><head><title>Acme Store | Quality Anvils</title></head></html>`,
			"acmestore.com",
			"Acme Store",
		},
		{
			"title with dash separator",
			`<html><head><title>Acme Store - Home</title></head></html>`,
			"acmestore.com",
			"Acme Store",
		},
		{
			"og site name fallback",
			`<html><head><meta property="og:site_name" content="Acme Official"/></head></html>`,
			"acmestore.com",
			"Acme Official",
		},
		{
			"hostname fallback",
			`<html><head></head></html>`,
			"shop.acmestore.com",
			"Acmestore",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := ResolveBrandName(docFrom(t, tc.html), tc.host)
			if got != tc.expected {
				t.Errorf("expected %q, got %q", tc.expected, got)
			}
		})
	}
}

func TestResolveBrandName_NilDocument(t *testing.T) {
	if got := ResolveBrandName(nil, "acmestore.com"); got != "Acmestore" {
		t.Errorf("expected hostname fallback for nil document, got %q", got)
	}
}

func TestCategorizeImportantLinks(t *testing.T) {
	doc := docFrom(t, `<html><body>
		<a href="/pages/contact">Contact Us</a>
		<a href="/pages/track">Track Your Order</a>
		<a href="/blogs/news">Blog</a>
		<a href="/pages/shipping">Shipping Policy</a>
		<a href="/pages/size-chart">Size Guide</a>
	</body></html>`)

	links := CategorizeImportantLinks(BuildLinkCatalog(doc, baseFrom(t, "https://store.example")))

	expected := map[string]string{
		"contact_us":     "https://store.example/pages/contact",
		"order_tracking": "https://store.example/pages/track",
		"blog":           "https://store.example/blogs/news",
		"shipping":       "https://store.example/pages/shipping",
		"size_guide":     "https://store.example/pages/size-chart",
	}

	for category, url := range expected {
		if links[category] != url {
			t.Errorf("category %s: expected %q, got %q", category, url, links[category])
		}
	}
}

func TestCategorizeImportantLinks_MissingCategoriesAbsent(t *testing.T) {
	doc := docFrom(t, `<html><body><a href="/pages/contact">Contact</a></body></html>`)

	links := CategorizeImportantLinks(BuildLinkCatalog(doc, baseFrom(t, "https://store.example")))

	if len(links) != 1 {
		t.Fatalf("expected only the contact category, got %v", links)
	}
	if _, ok := links["blog"]; ok {
		t.Error("expected no blog entry when no anchor matches")
	}
}
