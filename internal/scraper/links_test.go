package scraper

import (
	"net/url"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
)

func docFrom(t *testing.T, html string) *goquery.Document {
	t.Helper()

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		t.Fatalf("parsing test html: %v", err)
	}

	return doc
}

func baseFrom(t *testing.T, raw string) *url.URL {
	t.Helper()

	base, err := url.Parse(raw)
	if err != nil {
		t.Fatalf("parsing base url: %v", err)
	}

	return base
}

func TestBuildLinkCatalog(t *testing.T) {
	doc := docFrom(t, `<html><body>
		<a href="/pages/privacy-policy">Privacy Policy</a>
		<a href="/pages/faq">FAQ</a>
		<a href="https://other.example/shipping">Shipping Info</a>
		<a href="/no-text"></a>
		<a>Homeless anchor without href</a>
	</body></html>`)

	catalog := BuildLinkCatalog(doc, baseFrom(t, "https://store.example"))

	if catalog.Len() != 3 {
		t.Fatalf("expected 3 catalog entries, got %d", catalog.Len())
	}

	tests := []struct {
		keyword  string
		expected string
	}{
		{"privacy", "https://store.example/pages/privacy-policy"},
		{"faq", "https://store.example/pages/faq"},
		{"shipping", "https://other.example/shipping"},
	}

	for _, tc := range tests {
		got, ok := catalog.Find(tc.keyword)
		if !ok {
			t.Errorf("expected keyword %q to match", tc.keyword)
			continue
		}
		if got != tc.expected {
			t.Errorf("Find(%q): expected %q, got %q", tc.keyword, tc.expected, got)
		}
	}
}

func TestBuildLinkCatalog_DuplicateTextOverwrites(t *testing.T) {
	doc := docFrom(t, `<html><body>
		<a href="/first">Contact</a>
		<a href="/second">Contact</a>
	</body></html>`)

	catalog := BuildLinkCatalog(doc, baseFrom(t, "https://store.example"))

	got, ok := catalog.Find("contact")
	if !ok {
		t.Fatal("expected contact entry")
	}
	if got != "https://store.example/second" {
		t.Errorf("expected later anchor to overwrite earlier, got %q", got)
	}
}

func TestBuildLinkCatalog_SkipsLongAnchorText(t *testing.T) {
	long := strings.Repeat("very long anchor text ", 10)
	doc := docFrom(t, `<html><body><a href="/x">`+long+`</a></body></html>`)

	catalog := BuildLinkCatalog(doc, baseFrom(t, "https://store.example"))

	if catalog.Len() != 0 {
		t.Errorf("expected long anchor text skipped, got %d entries", catalog.Len())
	}
}

func TestLinkCatalog_FindOrder(t *testing.T) {
	doc := docFrom(t, `<html><body>
		<a href="/support">Support Center</a>
		<a href="/faq">FAQ</a>
	</body></html>`)

	catalog := BuildLinkCatalog(doc, baseFrom(t, "https://store.example"))

	// both anchors match faq keywords; document order decides
	got, ok := catalog.Find("faq", "support")
	if !ok {
		t.Fatal("expected a match")
	}
	if got != "https://store.example/support" {
		t.Errorf("expected first document-order match, got %q", got)
	}
}

func TestLinkCatalog_FindAll(t *testing.T) {
	doc := docFrom(t, `<html><body>
		<a href="/support">Support Center</a>
		<a href="/faq">FAQ</a>
		<a href="/faq">Common Questions</a>
		<a href="/shop">Shop</a>
	</body></html>`)

	catalog := BuildLinkCatalog(doc, baseFrom(t, "https://store.example"))

	got := catalog.FindAll("faq", "support", "questions")
	want := []string{
		"https://store.example/support",
		"https://store.example/faq",
	}

	if len(got) != len(want) {
		t.Fatalf("expected %d urls, got %v", len(want), got)
	}

	for i := range want {
		if got[i] != want[i] {
			t.Errorf("entry %d: expected %q, got %q", i, want[i], got[i])
		}
	}
}

func TestLinkCatalog_FindAllNoMatch(t *testing.T) {
	catalog := BuildLinkCatalog(docFrom(t, `<html><body><a href="/x">Shop</a></body></html>`), baseFrom(t, "https://store.example"))

	if got := catalog.FindAll("privacy"); len(got) != 0 {
		t.Errorf("expected no matches, got %v", got)
	}
}

func TestLinkCatalog_FindNoMatch(t *testing.T) {
	catalog := BuildLinkCatalog(docFrom(t, `<html><body><a href="/x">Shop</a></body></html>`), baseFrom(t, "https://store.example"))

	if _, ok := catalog.Find("privacy"); ok {
		t.Error("expected no match for unrelated keyword")
	}
}
