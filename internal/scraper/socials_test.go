package scraper

import "testing"

func TestExtractSocialHandles(t *testing.T) {
	doc := docFrom(t, `<html><body>
		<a href="https://instagram.com/store">Instagram</a>
		<a href="https://facebook.com/store">Facebook</a>
		<a href="/pages/about">About</a>
	</body></html>`)

	handles := ExtractSocialHandles(doc)

	if len(handles) != 2 {
		t.Fatalf("expected 2 social handles, got %d", len(handles))
	}

	byPlatform := make(map[string]string)
	for _, h := range handles {
		byPlatform[h.Platform] = h.URL
	}

	if byPlatform["Instagram"] != "https://instagram.com/store" {
		t.Errorf("unexpected instagram url: %q", byPlatform["Instagram"])
	}
	if byPlatform["Facebook"] != "https://facebook.com/store" {
		t.Errorf("unexpected facebook url: %q", byPlatform["Facebook"])
	}
}

func TestExtractSocialHandles_DedupesByURL(t *testing.T) {
	doc := docFrom(t, `<html><body>
		<a href="https://instagram.com/store">icon</a>
		<a href="https://instagram.com/store">footer link</a>
		<a href="https://INSTAGRAM.com/other">caps host</a>
	</body></html>`)

	handles := ExtractSocialHandles(doc)

	if len(handles) != 2 {
		t.Fatalf("expected duplicate hrefs recorded once, got %d", len(handles))
	}
	if handles[1].Platform != "Instagram" {
		t.Errorf("expected case-insensitive host match, got %q", handles[1].Platform)
	}
}

func TestExtractSocialHandles_AllPlatforms(t *testing.T) {
	doc := docFrom(t, `<html><body>
		<a href="https://tiktok.com/@s">t</a>
		<a href="https://twitter.com/s">tw</a>
		<a href="https://youtube.com/@s">y</a>
		<a href="https://linkedin.com/company/s">l</a>
		<a href="https://pinterest.com/s">p</a>
	</body></html>`)

	handles := ExtractSocialHandles(doc)

	expected := []string{"TikTok", "Twitter", "YouTube", "LinkedIn", "Pinterest"}
	if len(handles) != len(expected) {
		t.Fatalf("expected %d handles, got %d", len(expected), len(handles))
	}

	for i, platform := range expected {
		if handles[i].Platform != platform {
			t.Errorf("expected platform %q at index %d, got %q", platform, i, handles[i].Platform)
		}
	}
}
