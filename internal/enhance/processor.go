package enhance

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/ananyagupta2305/deepsolv/internal/insights"
	"github.com/ananyagupta2305/deepsolv/internal/textutil"
)

const (
	// minPolicyInput is the minimum raw text length worth a policy call
	minPolicyInput = 50
	// minFAQInput is the minimum raw text length worth an FAQ call
	minFAQInput = 100
	// minAboutInput is the minimum raw text length worth a summary call
	minAboutInput = 100
	// minUsableOutput is the minimum completion length treated as usable
	minUsableOutput = 50
	// minFieldLength is the minimum length of a validated FAQ question or answer
	minFieldLength = 10
	// maxFAQs caps FAQs from the primary extraction path
	maxFAQs = 8

	// policyTemperature keeps policy cleanup nearly deterministic
	policyTemperature = 0.2
	// faqTemperature keeps FAQ extraction strict
	faqTemperature = 0.1
	// aboutTemperature allows mild variation in brand summaries
	aboutTemperature = 0.4

	// textUnavailable is the canned result for inputs too short to process
	textUnavailable = "Not available."
	// policyExtractionFailed is the canned result for unusable policy output
	policyExtractionFailed = "Policy content could not be properly extracted."
	// policyProcessingError is the canned result for failed policy calls
	policyProcessingError = "Error processing policy text."
	// aboutSummaryFailed is the canned result for unusable summary output
	aboutSummaryFailed = "Brand information could not be properly summarized."
	// aboutProcessingError is the canned result for failed summary calls
	aboutProcessingError = "Error processing brand information."
)

const policyPromptTemplate = `You are a legal document processor. Extract and clean the main content from this privacy/return policy.

Instructions:
1. Remove navigation menus, headers, footers, and repeated phrases
2. Extract only the actual policy content
3. Summarize in clear, professional language
4. Keep important details but make it concise (300-500 words)
5. Structure with clear sections if applicable

Raw text:
"""
%s
"""

Cleaned policy:`

const faqPromptTemplate = `Extract FAQ question-answer pairs from this webpage content.

Rules:
1. Only extract clear, complete question-answer pairs
2. Questions should be customer-focused (shipping, returns, sizing, etc.)
3. Answers should be informative and complete
4. Return ONLY valid JSON array format
5. Maximum 8 FAQs
6. If no clear FAQs exist, return: []

Format: [{"question": "Question here?", "answer": "Complete answer here."}]

Webpage content:
"""
%s
"""

JSON Response:`

const aboutPromptTemplate = `Create a professional brand summary from this about page content.

Focus on:
1. Brand story and mission
2. What makes them unique
3. Key values or specialties
4. Target audience (if mentioned)

Keep it concise (3-5 sentences) and engaging.

About page content:
"""
%s
"""

Brand Summary:`

// faqJSONPatterns extract a JSON array from a completion; raw array first,
// then fenced code block variants. First matching pattern wins.
var faqJSONPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?s)\[.*?\]`),
	regexp.MustCompile("(?s)```json\\s*(\\[.*?\\])\\s*```"),
	regexp.MustCompile("(?s)```\\s*(\\[.*?\\])\\s*```"),
}

// Processor runs the enhancement operations. A nil client degrades every
// operation to its deterministic fallback, so the tier keeps working with
// no credentials configured.
type Processor struct {
	client *Client
}

// NewProcessor creates a Processor backed by the given client, which may be
// nil to run fallback-only.
func NewProcessor(client *Client) *Processor {
	return &Processor{client: client}
}

// CleanPolicyText strips boilerplate from raw policy page text and returns a
// concise summary. Inputs under 50 characters skip the service call entirely;
// unusable or failed completions yield a canned failure string.
func (p *Processor) CleanPolicyText(ctx context.Context, raw string) string {
	if len(strings.TrimSpace(raw)) < minPolicyInput {
		return textUnavailable
	}

	if p.client == nil {
		log.Debug().Msg("no completion client configured, policy text left unprocessed")
		return policyProcessingError
	}

	prompt := fmt.Sprintf(policyPromptTemplate, textutil.Normalize(raw))

	content, err := p.client.Complete(ctx, prompt, policyTemperature)
	if err != nil {
		log.Error().Err(err).Msg("policy text cleanup failed")
		return policyProcessingError
	}

	if len(content) < minUsableOutput {
		log.Warn().Int("length", len(content)).Msg("completion returned very short policy content")
		return policyExtractionFailed
	}

	return content
}

// ExtractFAQs pulls question-answer pairs out of page text. Inputs under 100
// characters yield nothing without a service call. When the completion cannot
// be parsed as a JSON array the regex fallback runs over the same text.
func (p *Processor) ExtractFAQs(ctx context.Context, raw string) []insights.FAQ {
	if len(strings.TrimSpace(raw)) < minFAQInput {
		log.Debug().Msg("text too short for faq extraction")
		return nil
	}

	if p.client == nil {
		log.Debug().Msg("no completion client configured, using fallback faq extraction")
		return FallbackFAQs(raw)
	}

	prompt := fmt.Sprintf(faqPromptTemplate, textutil.Normalize(raw))

	content, err := p.client.Complete(ctx, prompt, faqTemperature)
	if err != nil {
		log.Error().Err(err).Msg("faq extraction call failed")
		return FallbackFAQs(raw)
	}

	jsonStr, ok := findFAQArray(content)
	if !ok {
		log.Warn().Msg("no json array found in faq completion")
		return FallbackFAQs(raw)
	}

	var parsed []insights.FAQ
	if err := json.Unmarshal([]byte(jsonStr), &parsed); err != nil {
		log.Error().Err(err).Msg("faq completion json parsing failed")
		return FallbackFAQs(raw)
	}

	faqs := make([]insights.FAQ, 0, len(parsed))

	for _, faq := range parsed {
		question := strings.TrimSpace(faq.Question)
		answer := strings.TrimSpace(faq.Answer)

		if len(question) < minFieldLength || len(answer) < minFieldLength {
			continue
		}

		faqs = append(faqs, insights.FAQ{Question: question, Answer: answer})

		if len(faqs) == maxFAQs {
			break
		}
	}

	log.Info().Int("count", len(faqs)).Msg("faq extraction complete")

	return faqs
}

// SummarizeAbout condenses about-page text into a short brand summary.
// Inputs under 100 characters yield the canned unavailable string without a
// service call.
func (p *Processor) SummarizeAbout(ctx context.Context, raw string) string {
	if len(strings.TrimSpace(raw)) < minAboutInput {
		return textUnavailable
	}

	if p.client == nil {
		log.Debug().Msg("no completion client configured, about text left unprocessed")
		return aboutProcessingError
	}

	prompt := fmt.Sprintf(aboutPromptTemplate, textutil.Normalize(raw))

	content, err := p.client.Complete(ctx, prompt, aboutTemperature)
	if err != nil {
		log.Error().Err(err).Msg("about text summarization failed")
		return aboutProcessingError
	}

	if len(content) < minUsableOutput {
		log.Warn().Int("length", len(content)).Msg("completion returned very short brand summary")
		return aboutSummaryFailed
	}

	return content
}

// findFAQArray locates the JSON array in a completion, trying each extraction
// pattern in order.
func findFAQArray(content string) (string, bool) {
	for _, pattern := range faqJSONPatterns {
		match := pattern.FindStringSubmatch(content)
		if match == nil {
			continue
		}

		if len(match) > 1 {
			return match[1], true
		}

		return match[0], true
	}

	return "", false
}
