package scraper

import "fmt"

// ScrapeError is a terminal scrape failure surfaced with the HTTP status the
// request boundary should report: 404 for unreachable sites, the observed
// status for non-200 probes, 500 for unparseable homepages.
type ScrapeError struct {
	Message    string
	StatusCode int
}

// Error implements the error interface
func (e *ScrapeError) Error() string {
	return fmt.Sprintf("%s (status %d)", e.Message, e.StatusCode)
}
