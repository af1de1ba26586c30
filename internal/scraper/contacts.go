package scraper

import (
	"regexp"
	"strings"

	"github.com/ananyagupta2305/deepsolv/internal/insights"
)

var (
	// emailPattern matches standard email addresses in page text
	emailPattern = regexp.MustCompile(`\b[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}\b`)
	// phonePatterns match North-American and general international numbers
	phonePatterns = []*regexp.Regexp{
		regexp.MustCompile(`\+?1?[-.\s]?\(?[0-9]{3}\)?[-.\s]?[0-9]{3}[-.\s]?[0-9]{4}`),
		regexp.MustCompile(`\+?[0-9]{1,3}[-.\s]?[0-9]{3,4}[-.\s]?[0-9]{3,4}[-.\s]?[0-9]{3,4}`),
	}
)

// emailDenylist filters placeholder and machine addresses out of results
var emailDenylist = []string{"example.com", "test@", "noreply@", "no-reply@"}

// ExtractContactInfo finds deduplicated email addresses and phone numbers in
// cleaned page text. Addresses containing a denylisted substring are dropped.
func ExtractContactInfo(text string) insights.ContactInfo {
	info := insights.ContactInfo{}

	seenEmails := make(map[string]struct{})

	for _, email := range emailPattern.FindAllString(text, -1) {
		if _, dup := seenEmails[email]; dup {
			continue
		}

		seenEmails[email] = struct{}{}

		if isDenylisted(email) {
			continue
		}

		info.Emails = append(info.Emails, email)
	}

	seenPhones := make(map[string]struct{})

	for _, pattern := range phonePatterns {
		for _, phone := range pattern.FindAllString(text, -1) {
			if _, dup := seenPhones[phone]; dup {
				continue
			}

			seenPhones[phone] = struct{}{}
			info.Phones = append(info.Phones, phone)
		}
	}

	return info
}

// isDenylisted reports whether an email contains any denylisted substring
func isDenylisted(email string) bool {
	lower := strings.ToLower(email)

	for _, skip := range emailDenylist {
		if strings.Contains(lower, skip) {
			return true
		}
	}

	return false
}
