// Package api provides the HTTP endpoints of the deepsolv service: scraping
// a storefront into a brand insight record and querying stored records.
package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/ananyagupta2305/deepsolv/internal/competitor"
	"github.com/ananyagupta2305/deepsolv/internal/insights"
	"github.com/ananyagupta2305/deepsolv/internal/scraper"
	"github.com/ananyagupta2305/deepsolv/internal/store"
)

// Scraper runs the extraction pipeline for one site
type Scraper interface {
	Scrape(ctx context.Context, rawURL string) (*insights.BrandInsights, error)
}

// Recorder persists and queries scraped records
type Recorder interface {
	SaveBrand(ctx context.Context, record *insights.BrandInsights) error
	ListBrands(ctx context.Context) ([]store.BrandRecord, error)
	SaveCompetitor(ctx context.Context, brandWebsite string, record *insights.BrandInsights) error
	ListCompetitors(ctx context.Context, brandWebsite string) ([]store.CompetitorRecord, error)
}

// Handler manages API endpoints
type Handler struct {
	scraper       Scraper
	store         Recorder
	scrapeTimeout time.Duration
}

// HealthResponse is the health check response body
type HealthResponse struct {
	Status    string `json:"status"`
	Service   string `json:"service"`
	Timestamp string `json:"timestamp"`
}

// handleHealth returns service health status
func (h *Handler) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{
		Status:    "healthy",
		Service:   "deepsolv",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}

// InsightsRequest asks for a storefront scrape
type InsightsRequest struct {
	WebsiteURL         string `json:"website_url"`
	IncludeCompetitors bool   `json:"include_competitors"`
}

// InsightsResponse carries the scraped brand record and, when requested,
// the successfully scraped competitor records
type InsightsResponse struct {
	Brand       *insights.BrandInsights   `json:"brand"`
	Competitors []*insights.BrandInsights `json:"competitors,omitempty"`
}

// handleInsights scrapes a storefront, persists the record, and optionally
// repeats the scrape for each known competitor
func (h *Handler) handleInsights(w http.ResponseWriter, r *http.Request) {
	var req InsightsRequest
	if err := decodeJSONBody(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, ErrInvalidRequestBody.Error())
		return
	}

	if req.WebsiteURL == "" {
		respondError(w, http.StatusBadRequest, ErrWebsiteRequired.Error())
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), h.scrapeTimeout)
	defer cancel()

	brand, err := h.scraper.Scrape(ctx, req.WebsiteURL)
	if err != nil {
		respondScrapeError(w, err)
		return
	}

	if err := h.store.SaveBrand(ctx, brand); err != nil {
		log.Error().Err(err).Str("website", brand.Website).Msg("failed to persist brand record")
		respondError(w, http.StatusInternalServerError, ErrPersistenceFailed.Error())

		return
	}

	response := InsightsResponse{Brand: brand}

	if req.IncludeCompetitors {
		response.Competitors = h.scrapeCompetitors(ctx, brand.Website, req.WebsiteURL)
	}

	writeJSON(w, http.StatusOK, response)
}

// scrapeCompetitors runs one full scrape per known competitor, sequentially.
// A failed competitor scrape is logged and skipped, never fatal.
func (h *Handler) scrapeCompetitors(ctx context.Context, brandWebsite, requestURL string) []*insights.BrandInsights {
	var records []*insights.BrandInsights

	for _, domain := range competitor.For(requestURL) {
		record, err := h.scraper.Scrape(ctx, domain)
		if err != nil {
			log.Warn().Err(err).Str("competitor", domain).Msg("competitor scrape failed, skipping")
			continue
		}

		if err := h.store.SaveCompetitor(ctx, brandWebsite, record); err != nil {
			log.Error().Err(err).Str("competitor", record.Website).Msg("failed to persist competitor record")
		}

		records = append(records, record)
	}

	return records
}

// handleBrands returns every stored brand record
func (h *Handler) handleBrands(w http.ResponseWriter, r *http.Request) {
	records, err := h.store.ListBrands(r.Context())
	if err != nil {
		log.Error().Err(err).Msg("failed to list brand records")
		respondError(w, http.StatusInternalServerError, ErrPersistenceFailed.Error())

		return
	}

	writeJSON(w, http.StatusOK, records)
}

// handleCompetitors returns stored competitor records for a brand website
// given via the website query parameter
func (h *Handler) handleCompetitors(w http.ResponseWriter, r *http.Request) {
	website := r.URL.Query().Get("website")
	if website == "" {
		respondError(w, http.StatusBadRequest, ErrWebsiteRequired.Error())
		return
	}

	records, err := h.store.ListCompetitors(r.Context(), website)
	if err != nil {
		log.Error().Err(err).Str("website", website).Msg("failed to list competitor records")
		respondError(w, http.StatusInternalServerError, ErrPersistenceFailed.Error())

		return
	}

	writeJSON(w, http.StatusOK, records)
}

// respondScrapeError maps a pipeline error to its boundary status code;
// terminal scrape failures carry their own status
func respondScrapeError(w http.ResponseWriter, err error) {
	var scrapeErr *scraper.ScrapeError
	if errors.As(err, &scrapeErr) {
		respondError(w, scrapeErr.StatusCode, scrapeErr.Message)
		return
	}

	respondError(w, http.StatusInternalServerError, err.Error())
}
