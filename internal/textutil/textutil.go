// Package textutil extracts and normalizes visible page text ahead of
// heuristic and LLM-backed extraction.
package textutil

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
)

// maxTextLength caps normalized text before it is handed to extractors
const maxTextLength = 8000

// chromeSelectors matches page chrome stripped before text extraction
const chromeSelectors = "script, style, nav, header, footer"

var (
	// excessNewlines matches runs of three or more newlines
	excessNewlines = regexp.MustCompile(`\n{3,}`)
	// excessSpaces matches runs of three or more whitespace characters
	excessSpaces = regexp.MustCompile(`\s{3,}`)
	// whitespaceRuns matches any run of whitespace for single-line collapsing
	whitespaceRuns = regexp.MustCompile(`\s+`)
)

// boilerplatePatterns are storefront phrases removed from extracted text;
// they carry no informational value and pollute LLM prompts
var boilerplatePatterns = compileBoilerplate(
	`Skip to content`,
	`Add to cart`,
	`Quick view`,
	`Search for:`,
	`Copyright[^\n]*\d{4}`,
	`All rights reserved`,
	`Follow us on`,
	`Subscribe to our newsletter`,
)

func compileBoilerplate(patterns ...string) []*regexp.Regexp {
	compiled := make([]*regexp.Regexp, 0, len(patterns))
	for _, p := range patterns {
		compiled = append(compiled, regexp.MustCompile(`(?i)`+p))
	}

	return compiled
}

// FromDocument strips script, style and navigation chrome from the document
// and returns its visible text with whitespace collapsed to single spaces.
// A nil document yields an empty string.
func FromDocument(doc *goquery.Document) string {
	if doc == nil {
		return ""
	}

	// Work on a clone so callers can keep querying the original document
	sel := doc.Selection.Clone()
	sel.Find(chromeSelectors).Remove()

	text := sel.Text()
	text = whitespaceRuns.ReplaceAllString(text, " ")

	return strings.TrimSpace(text)
}

// Normalize collapses whitespace runs, strips boilerplate storefront phrases
// and truncates to the first 8000 characters. The cleanup passes repeat until
// the text stops changing, so normalizing already-normalized text is a no-op.
func Normalize(text string) string {
	for {
		// stripping a phrase can leave a whitespace run, and collapsing a run
		// can expose a phrase; every pass shrinks the text, so this terminates
		cleaned := normalizeOnce(text)
		if cleaned == text {
			return cleaned
		}

		text = cleaned
	}
}

func normalizeOnce(text string) string {
	if text == "" {
		return ""
	}

	text = excessNewlines.ReplaceAllString(text, "\n\n")
	text = excessSpaces.ReplaceAllString(text, " ")

	for _, pattern := range boilerplatePatterns {
		text = pattern.ReplaceAllString(text, "")
	}

	text = strings.TrimSpace(text)
	if len(text) > maxTextLength {
		cut := maxTextLength
		for cut > 0 && !utf8.RuneStart(text[cut]) {
			cut--
		}

		text = strings.TrimSpace(text[:cut])
	}

	return text
}
