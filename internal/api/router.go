package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// defaultScrapeTimeout bounds one full scrape (including competitors) at the
// request boundary; the pipeline itself has no internal cancellation
const defaultScrapeTimeout = 120 * time.Second

// RouterConfig carries the collaborators the router needs
type RouterConfig struct {
	Scraper       Scraper
	Store         Recorder
	ScrapeTimeout time.Duration
}

// NewRouter creates a chi router with all endpoints and middleware
func NewRouter(cfg RouterConfig) http.Handler {
	if cfg.ScrapeTimeout <= 0 {
		cfg.ScrapeTimeout = defaultScrapeTimeout
	}

	h := &Handler{
		scraper:       cfg.Scraper,
		store:         cfg.Store,
		scrapeTimeout: cfg.ScrapeTimeout,
	}

	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Compress(5))
	r.Use(middleware.Heartbeat("/ping"))
	r.Use(corsMiddleware)

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", h.handleHealth)
		r.Post("/insights", h.handleInsights)
		r.Get("/brands", h.handleBrands)
		r.Get("/competitors", h.handleCompetitors)
	})

	return r
}

// corsMiddleware allows browser access from any origin
func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Accept, Authorization, Content-Type")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}
