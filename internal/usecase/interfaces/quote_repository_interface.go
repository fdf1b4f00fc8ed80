package interfaces

import (
	"context"

	"murilov3d/internal/domain/entities"
)

// IQuoteRepository abstracts persistence for saved quotes.
//
// Contract notes:
//   - List returns quotes most-recent-first.
//   - GetByID / Replace / UpdateStatus return a zero-ID record when the id
//     does not exist; the use case decides whether that is an error.
//   - Delete on a missing id is a no-op.
//   - ReplaceAll swaps the entire history (destructive mirror pull).
type IQuoteRepository interface {
	Create(ctx context.Context, q entities.QuoteRecord) (entities.QuoteRecord, error)
	Replace(ctx context.Context, q entities.QuoteRecord) (entities.QuoteRecord, error)
	GetByID(ctx context.Context, id string) (entities.QuoteRecord, error)
	List(ctx context.Context) ([]entities.QuoteRecord, error)
	UpdateStatus(ctx context.Context, id string, status entities.QuoteStatus) (entities.QuoteRecord, error)
	Delete(ctx context.Context, id string) error
	ReplaceAll(ctx context.Context, history []entities.QuoteRecord) error
}
