package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"murilov3d/internal/domain/entities"
	"murilov3d/internal/usecase/interfaces"
)

// costsDocumentKey is the stable key the whole catalog lives under.
const costsDocumentKey = "costs"

// CatalogSQLiteRepository persists the cost catalog as one JSON document.
//
// The catalog is small and mutated as a unit, so the repository rewrites the
// whole document on every Save instead of tracking per-entry rows.
type CatalogSQLiteRepository struct {
	db *sql.DB
}

var _ interfaces.ICatalogRepository = (*CatalogSQLiteRepository)(nil)

func NewCatalogSQLiteRepository(db *sql.DB) *CatalogSQLiteRepository {
	return &CatalogSQLiteRepository{db: db}
}

func (r *CatalogSQLiteRepository) Load(ctx context.Context) (entities.CostCatalog, bool, error) {
	var doc string
	err := r.db.QueryRowContext(ctx,
		"SELECT document FROM documents WHERE key = ?", costsDocumentKey,
	).Scan(&doc)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.CostCatalog{}, false, nil
	}
	if err != nil {
		return entities.CostCatalog{}, false, fmt.Errorf("failed to load catalog: %w", err)
	}

	var catalog entities.CostCatalog
	if err := json.Unmarshal([]byte(doc), &catalog); err != nil {
		return entities.CostCatalog{}, false, fmt.Errorf("failed to decode catalog: %w", err)
	}
	return catalog, true, nil
}

func (r *CatalogSQLiteRepository) Save(ctx context.Context, catalog entities.CostCatalog) error {
	doc, err := json.Marshal(catalog)
	if err != nil {
		return fmt.Errorf("failed to encode catalog: %w", err)
	}
	_, err = r.db.ExecContext(ctx,
		`INSERT INTO documents (key, document) VALUES (?, ?)
		 ON CONFLICT(key) DO UPDATE SET document = excluded.document`,
		costsDocumentKey, string(doc),
	)
	if err != nil {
		return fmt.Errorf("failed to save catalog: %w", err)
	}
	return nil
}
