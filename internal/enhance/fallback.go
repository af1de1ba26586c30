package enhance

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/rs/zerolog/log"

	"github.com/ananyagupta2305/deepsolv/internal/insights"
	"github.com/ananyagupta2305/deepsolv/internal/textutil"
)

const (
	// maxFallbackFAQs caps FAQs from the fallback path
	maxFallbackFAQs = 6
	// maxFallbackAnswerLength truncates overlong fallback answers
	maxFallbackAnswerLength = 300
	// minFallbackAnswerLength rejects answers too short to be informative
	minFallbackAnswerLength = 20
	// maxRawAnswerLength rejects answers that swallowed too much page text
	maxRawAnswerLength = 500
	// minStarterQuestionLength rejects sentence-heuristic questions too short
	// to be real questions
	minStarterQuestionLength = 15
	// minStarterAnswerLength rejects sentence-heuristic answers too short to
	// be real answers
	minStarterAnswerLength = 30
	// maxMatchesPerStarter caps matches taken per interrogative starter
	maxMatchesPerStarter = 3
)

// faqTextPatterns match explicitly structured FAQ sections; the first
// pattern type that yields any match wins
var faqTextPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?is)\bQ:\s*([^?]+\?)\s*A:\s*([^Q]+)`),
	regexp.MustCompile(`(?is)\bQuestion:\s*([^?]+\?)\s*Answer:\s*([^Q]+)`),
	regexp.MustCompile(`(?s)\d+\.\s*([^?]+\?)\s*([^0-9]+)`),
}

// questionStarters seed the sentence-level heuristic when no structured FAQ
// section exists
var questionStarters = []string{"what", "how", "when", "where", "can", "do you", "is"}

// starterPatterns are precompiled per-starter question/answer matchers
var starterPatterns = buildStarterPatterns()

func buildStarterPatterns() []*regexp.Regexp {
	patterns := make([]*regexp.Regexp, 0, len(questionStarters))
	for _, starter := range questionStarters {
		patterns = append(patterns, regexp.MustCompile(
			`(?i)\b(`+regexp.QuoteMeta(starter)+`[^?]+\?)\s*([^.]+(?:\.[^.]*){1,3})`,
		))
	}

	return patterns
}

// collapseSpaces normalizes whitespace runs inside fallback answers
var collapseSpaces = regexp.MustCompile(`\s+`)

// FallbackFAQs extracts question-answer pairs with pure pattern matching.
// It first looks for explicitly structured sections (Q:/A:, Question:/Answer:,
// numbered lists); when none match it falls back to sentence-level heuristics
// keyed on interrogative starters, capped at 3 matches per starter and
// deduplicated by case-insensitive question.
func FallbackFAQs(raw string) []insights.FAQ {
	log.Debug().Msg("using fallback faq extraction")

	text := textutil.Normalize(raw)

	var faqs []insights.FAQ

	for _, pattern := range faqTextPatterns {
		for _, match := range pattern.FindAllStringSubmatch(text, -1) {
			question := strings.TrimSpace(match[1])
			answer := strings.TrimSpace(match[2])

			if len(question) <= minFieldLength {
				continue
			}

			if len(answer) <= minFallbackAnswerLength || len(answer) >= maxRawAnswerLength {
				continue
			}

			answer = collapseSpaces.ReplaceAllString(answer, " ")
			if len(answer) > maxFallbackAnswerLength {
				answer = truncateAnswer(answer) + "..."
			}

			faqs = append(faqs, insights.FAQ{Question: question, Answer: answer})
		}

		if len(faqs) > 0 {
			break
		}
	}

	if len(faqs) == 0 {
		faqs = starterFAQs(text)
	}

	if len(faqs) > maxFallbackFAQs {
		faqs = faqs[:maxFallbackFAQs]
	}

	return faqs
}

// starterFAQs applies the interrogative-starter heuristic
func starterFAQs(text string) []insights.FAQ {
	var faqs []insights.FAQ

	for _, pattern := range starterPatterns {
		matches := pattern.FindAllStringSubmatch(text, -1)
		if len(matches) > maxMatchesPerStarter {
			matches = matches[:maxMatchesPerStarter]
		}

		for _, match := range matches {
			question := strings.TrimSpace(match[1])
			answer := strings.TrimSpace(match[2])

			if len(question) <= minStarterQuestionLength || len(answer) <= minStarterAnswerLength {
				continue
			}

			if hasQuestion(faqs, question) {
				continue
			}

			faqs = append(faqs, insights.FAQ{Question: question, Answer: answer})
		}
	}

	return faqs
}

// truncateAnswer cuts an answer at the byte cap without splitting a rune
func truncateAnswer(answer string) string {
	cut := maxFallbackAnswerLength
	for cut > 0 && !utf8.RuneStart(answer[cut]) {
		cut--
	}

	return answer[:cut]
}

// hasQuestion reports whether a case-insensitive equal question is present
func hasQuestion(faqs []insights.FAQ, question string) bool {
	for _, faq := range faqs {
		if strings.EqualFold(faq.Question, question) {
			return true
		}
	}

	return false
}
