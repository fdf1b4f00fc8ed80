package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"murilov3d/internal/usecase/interfaces"
)

const sheetsURLKey = "sheets_url"

// SettingsSQLiteRepository persists small key/value settings.
type SettingsSQLiteRepository struct {
	db *sql.DB
}

var _ interfaces.ISettingsRepository = (*SettingsSQLiteRepository)(nil)

func NewSettingsSQLiteRepository(db *sql.DB) *SettingsSQLiteRepository {
	return &SettingsSQLiteRepository{db: db}
}

// GetSheetsURL returns "" when no endpoint was ever configured.
func (r *SettingsSQLiteRepository) GetSheetsURL(ctx context.Context) (string, error) {
	var v string
	err := r.db.QueryRowContext(ctx,
		"SELECT value FROM settings WHERE key = ?", sheetsURLKey,
	).Scan(&v)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to load sheets url: %w", err)
	}
	return v, nil
}

func (r *SettingsSQLiteRepository) SetSheetsURL(ctx context.Context, url string) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO settings (key, value) VALUES (?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		sheetsURLKey, url,
	)
	if err != nil {
		return fmt.Errorf("failed to save sheets url: %w", err)
	}
	return nil
}
