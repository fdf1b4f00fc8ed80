package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"murilov3d/internal/domain/entities"
	"murilov3d/internal/usecase/interfaces"
)

// QuoteSQLiteRepository persists each quote as a JSON document plus a few
// indexed columns (status, created_at) for filtering and auditing.
//
// Ordering relies on rowid: inserts are newest-last in the table, and List
// reads rowid DESC so the freshest quote always comes first. Replace keeps
// the original rowid, so editing a quote does not move it in the history.
type QuoteSQLiteRepository struct {
	db *sql.DB
}

var _ interfaces.IQuoteRepository = (*QuoteSQLiteRepository)(nil)

func NewQuoteSQLiteRepository(db *sql.DB) *QuoteSQLiteRepository {
	return &QuoteSQLiteRepository{db: db}
}

func (r *QuoteSQLiteRepository) Create(ctx context.Context, q entities.QuoteRecord) (entities.QuoteRecord, error) {
	doc, err := json.Marshal(q)
	if err != nil {
		return entities.QuoteRecord{}, fmt.Errorf("failed to encode quote: %w", err)
	}
	_, err = r.db.ExecContext(ctx,
		"INSERT INTO quotes (id, status, created_at, document) VALUES (?, ?, ?, ?)",
		q.ID, string(q.Status), q.CreatedAt.Format(time.RFC3339Nano), string(doc),
	)
	if err != nil {
		return entities.QuoteRecord{}, fmt.Errorf("failed to create quote: %w", err)
	}
	return q, nil
}

func (r *QuoteSQLiteRepository) Replace(ctx context.Context, q entities.QuoteRecord) (entities.QuoteRecord, error) {
	doc, err := json.Marshal(q)
	if err != nil {
		return entities.QuoteRecord{}, fmt.Errorf("failed to encode quote: %w", err)
	}
	res, err := r.db.ExecContext(ctx,
		"UPDATE quotes SET status = ?, created_at = ?, document = ? WHERE id = ?",
		string(q.Status), q.CreatedAt.Format(time.RFC3339Nano), string(doc), q.ID,
	)
	if err != nil {
		return entities.QuoteRecord{}, fmt.Errorf("failed to replace quote: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return entities.QuoteRecord{}, fmt.Errorf("failed to replace quote: %w", err)
	}
	if affected == 0 {
		return entities.QuoteRecord{}, nil
	}
	return q, nil
}

func (r *QuoteSQLiteRepository) GetByID(ctx context.Context, id string) (entities.QuoteRecord, error) {
	var doc string
	err := r.db.QueryRowContext(ctx,
		"SELECT document FROM quotes WHERE id = ?", id,
	).Scan(&doc)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.QuoteRecord{}, nil
	}
	if err != nil {
		return entities.QuoteRecord{}, fmt.Errorf("failed to load quote: %w", err)
	}
	return decodeQuote(doc)
}

func (r *QuoteSQLiteRepository) List(ctx context.Context) ([]entities.QuoteRecord, error) {
	rows, err := r.db.QueryContext(ctx, "SELECT document FROM quotes ORDER BY rowid DESC")
	if err != nil {
		return nil, fmt.Errorf("failed to list quotes: %w", err)
	}
	defer rows.Close()

	var history []entities.QuoteRecord
	for rows.Next() {
		var doc string
		if err := rows.Scan(&doc); err != nil {
			return nil, fmt.Errorf("failed to list quotes: %w", err)
		}
		q, err := decodeQuote(doc)
		if err != nil {
			return nil, err
		}
		history = append(history, q)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list quotes: %w", err)
	}
	return history, nil
}

func (r *QuoteSQLiteRepository) UpdateStatus(ctx context.Context, id string, status entities.QuoteStatus) (entities.QuoteRecord, error) {
	q, err := r.GetByID(ctx, id)
	if err != nil || q.ID == "" {
		return entities.QuoteRecord{}, err
	}
	q.Status = status
	return r.Replace(ctx, q)
}

func (r *QuoteSQLiteRepository) Delete(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, "DELETE FROM quotes WHERE id = ?", id); err != nil {
		return fmt.Errorf("failed to delete quote: %w", err)
	}
	return nil
}

// ReplaceAll swaps the full history in one transaction. The incoming slice is
// most-recent-first, so rows are inserted back-to-front to keep rowid order
// consistent with Create.
func (r *QuoteSQLiteRepository) ReplaceAll(ctx context.Context, history []entities.QuoteRecord) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to replace history: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, "DELETE FROM quotes"); err != nil {
		return fmt.Errorf("failed to replace history: %w", err)
	}
	for i := len(history) - 1; i >= 0; i-- {
		q := history[i]
		doc, err := json.Marshal(q)
		if err != nil {
			return fmt.Errorf("failed to encode quote: %w", err)
		}
		_, err = tx.ExecContext(ctx,
			"INSERT INTO quotes (id, status, created_at, document) VALUES (?, ?, ?, ?)",
			q.ID, string(q.Status), q.CreatedAt.Format(time.RFC3339Nano), string(doc),
		)
		if err != nil {
			return fmt.Errorf("failed to replace history: %w", err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to replace history: %w", err)
	}
	return nil
}

func decodeQuote(doc string) (entities.QuoteRecord, error) {
	var q entities.QuoteRecord
	if err := json.Unmarshal([]byte(doc), &q); err != nil {
		return entities.QuoteRecord{}, fmt.Errorf("failed to decode quote: %w", err)
	}
	return q, nil
}
