// Package store persists scraped brand insight records keyed by website.
// Records are stored as opaque JSON blobs; a second scrape of the same site
// overwrites the previous record.
package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3" // sqlite driver

	"github.com/ananyagupta2305/deepsolv/internal/insights"
)

// schema creates the brand and competitor tables
const schema = `
CREATE TABLE IF NOT EXISTS brand_data (
	website TEXT PRIMARY KEY,
	data    TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS competitor_data (
	id                  INTEGER PRIMARY KEY AUTOINCREMENT,
	brand_website       TEXT NOT NULL,
	competitor_website  TEXT NOT NULL,
	data                TEXT NOT NULL,
	UNIQUE (brand_website, competitor_website)
);

CREATE INDEX IF NOT EXISTS idx_competitor_brand ON competitor_data (brand_website);
`

// BrandRecord is a stored brand insight record
type BrandRecord struct {
	Website string                  `json:"website"`
	Data    *insights.BrandInsights `json:"data"`
}

// CompetitorRecord is a stored competitor insight record
type CompetitorRecord struct {
	BrandWebsite      string                  `json:"brand_website"`
	CompetitorWebsite string                  `json:"competitor_website"`
	Data              *insights.BrandInsights `json:"data"`
}

// Store provides sqlite-backed persistence for insight records
type Store struct {
	db *sqlx.DB
}

// Open opens (or creates) the sqlite database at path and ensures the schema
// exists. Use ":memory:" for an ephemeral store.
func Open(path string) (*Store, error) {
	db, err := sqlx.Connect("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("opening database %s: %w", path, err)
	}

	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return &Store{db: db}, nil
}

// Close releases the underlying database handle
func (s *Store) Close() error {
	return s.db.Close()
}

// SaveBrand upserts a brand record keyed by website
func (s *Store) SaveBrand(ctx context.Context, record *insights.BrandInsights) error {
	blob, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("serializing brand record: %w", err)
	}

	_, err = s.db.ExecContext(ctx,
		`INSERT INTO brand_data (website, data) VALUES (?, ?)
		 ON CONFLICT (website) DO UPDATE SET data = excluded.data`,
		record.Website, string(blob),
	)
	if err != nil {
		return fmt.Errorf("saving brand record: %w", err)
	}

	return nil
}

// GetBrand looks up a brand record by website. Returns ErrNotFound when no
// record exists.
func (s *Store) GetBrand(ctx context.Context, website string) (*BrandRecord, error) {
	var blob string

	err := s.db.GetContext(ctx, &blob,
		`SELECT data FROM brand_data WHERE website = ?`, website)
	if err != nil {
		if isNoRows(err) {
			return nil, ErrNotFound
		}

		return nil, fmt.Errorf("loading brand record: %w", err)
	}

	return decodeBrand(website, blob)
}

// ListBrands returns every stored brand record
func (s *Store) ListBrands(ctx context.Context) ([]BrandRecord, error) {
	type row struct {
		Website string `db:"website"`
		Data    string `db:"data"`
	}

	var rows []row
	if err := s.db.SelectContext(ctx, &rows,
		`SELECT website, data FROM brand_data ORDER BY website`); err != nil {
		return nil, fmt.Errorf("listing brand records: %w", err)
	}

	records := make([]BrandRecord, 0, len(rows))

	for _, r := range rows {
		record, err := decodeBrand(r.Website, r.Data)
		if err != nil {
			return nil, err
		}

		records = append(records, *record)
	}

	return records, nil
}

// SaveCompetitor upserts a competitor record for a brand
func (s *Store) SaveCompetitor(ctx context.Context, brandWebsite string, record *insights.BrandInsights) error {
	blob, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("serializing competitor record: %w", err)
	}

	_, err = s.db.ExecContext(ctx,
		`INSERT INTO competitor_data (brand_website, competitor_website, data) VALUES (?, ?, ?)
		 ON CONFLICT (brand_website, competitor_website) DO UPDATE SET data = excluded.data`,
		brandWebsite, record.Website, string(blob),
	)
	if err != nil {
		return fmt.Errorf("saving competitor record: %w", err)
	}

	return nil
}

// ListCompetitors returns all stored competitor records for a brand website
func (s *Store) ListCompetitors(ctx context.Context, brandWebsite string) ([]CompetitorRecord, error) {
	type row struct {
		CompetitorWebsite string `db:"competitor_website"`
		Data              string `db:"data"`
	}

	var rows []row
	if err := s.db.SelectContext(ctx, &rows,
		`SELECT competitor_website, data FROM competitor_data
		 WHERE brand_website = ? ORDER BY competitor_website`, brandWebsite); err != nil {
		return nil, fmt.Errorf("listing competitor records: %w", err)
	}

	records := make([]CompetitorRecord, 0, len(rows))

	for _, r := range rows {
		var data insights.BrandInsights
		if err := json.Unmarshal([]byte(r.Data), &data); err != nil {
			return nil, fmt.Errorf("decoding competitor record for %s: %w", r.CompetitorWebsite, err)
		}

		records = append(records, CompetitorRecord{
			BrandWebsite:      brandWebsite,
			CompetitorWebsite: r.CompetitorWebsite,
			Data:              &data,
		})
	}

	return records, nil
}

// decodeBrand unmarshals a stored brand blob
func decodeBrand(website, blob string) (*BrandRecord, error) {
	var data insights.BrandInsights
	if err := json.Unmarshal([]byte(blob), &data); err != nil {
		return nil, fmt.Errorf("decoding brand record for %s: %w", website, err)
	}

	return &BrandRecord{Website: website, Data: &data}, nil
}
