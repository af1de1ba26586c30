package competitor

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFor(t *testing.T) {
	testCases := []struct {
		name     string
		website  string
		expected []string
	}{
		{
			name:     "bare domain",
			website:  "gymshark.com",
			expected: []string{"lululemon.com", "nike.com"},
		},
		{
			name:     "full url",
			website:  "https://colourpop.com/",
			expected: []string{"jeffreestarcosmetics.com", "morphebrushes.com"},
		},
		{
			name:     "url with path",
			website:  "https://www.fashionnova.com/collections/all",
			expected: []string{"prettylittlething.com", "boohoo.com"},
		},
		{
			name:     "mixed case host",
			website:  "https://CUPSHE.com",
			expected: []string{"swimoutlet.com", "vikinis.com"},
		},
		{
			name:    "unknown site",
			website: "https://acmestore.com",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, For(tc.website))
		})
	}
}

func TestHostOf(t *testing.T) {
	testCases := []struct {
		website  string
		expected string
	}{
		{"https://shop.example.com/pages/about", "shop.example.com"},
		{"http://example.com", "example.com"},
		{"example.com/path", "example.com"},
		{"Example.COM", "example.com"},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.expected, hostOf(tc.website))
	}
}
