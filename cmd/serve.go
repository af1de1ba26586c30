package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/ananyagupta2305/deepsolv/config"
	"github.com/ananyagupta2305/deepsolv/internal/api"
	"github.com/ananyagupta2305/deepsolv/internal/enhance"
	"github.com/ananyagupta2305/deepsolv/internal/fetch"
	"github.com/ananyagupta2305/deepsolv/internal/scraper"
	"github.com/ananyagupta2305/deepsolv/internal/store"
)

// serveCmd is the cobra command that starts the deepsolv API server
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "start the deepsolv api server",
	Run: func(cmd *cobra.Command, _ []string) {
		err := serve(cmd.Context())
		cobra.CheckErr(err)
	},
}

// init registers the serve command on the root command
func init() {
	rootCmd.AddCommand(serveCmd)
}

// serve initializes dependencies and starts the deepsolv API server
func serve(ctx context.Context) error {
	cfg := config.New()

	db, err := store.Open(cfg.DatabasePath)
	if err != nil {
		return fmt.Errorf("opening store: %w", err)
	}

	defer func() { _ = db.Close() }()

	enhancer := setupEnhancer(cfg)

	fetcher := fetch.New(fetch.WithTimeout(cfg.FetchTimeout))
	pipeline := scraper.New(fetcher, enhancer)

	handler := api.NewRouter(api.RouterConfig{
		Scraper:       pipeline,
		Store:         db,
		ScrapeTimeout: cfg.ScrapeTimeout,
	})

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.Port),
		Handler:      handler,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	go func() {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Error().Err(err).Msg("server shutdown error")
		}
	}()

	log.Info().Str("port", cfg.Port).Msg("starting deepsolv service")

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("listen: %w", err)
	}

	return nil
}

// setupEnhancer initializes the LLM enhancement tier from config; a missing
// API key is not fatal, the tier then runs fallback-only extraction
func setupEnhancer(cfg *config.Config) *enhance.Processor {
	if cfg.GroqAPIKey == "" {
		log.Info().Msg("groq api key not configured, enhancement tier runs fallback-only")
		return enhance.NewProcessor(nil)
	}

	client, err := enhance.New(
		cfg.GroqAPIKey,
		enhance.WithModel(cfg.GroqModel),
		enhance.WithHTTPClient(&http.Client{Timeout: cfg.GroqTimeout}),
	)
	if err != nil {
		log.Warn().Err(err).Msg("failed to initialize groq client, enhancement tier runs fallback-only")
		return enhance.NewProcessor(nil)
	}

	log.Info().Msg("enhancement tier configured")

	return enhance.NewProcessor(client)
}
