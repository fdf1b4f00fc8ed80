package interfaces

import (
	"context"

	"murilov3d/internal/domain/entities"
)

// ISheetsClient talks the action-based protocol of the spreadsheet mirror
// endpoint. The endpoint URL is passed per call because it can be
// reconfigured at runtime.
//
// Any response missing ok:true, and any transport failure, surfaces as an
// error; callers treat every error as a sync error and never retry.
type ISheetsClient interface {
	Ping(ctx context.Context, endpoint string) (string, error)
	GetHistory(ctx context.Context, endpoint string) ([]entities.QuoteRecord, error)
	GetCosts(ctx context.Context, endpoint string) (entities.CostCatalog, error)
	SaveHistory(ctx context.Context, endpoint string, history []entities.QuoteRecord) error
	SaveCosts(ctx context.Context, endpoint string, costs entities.CostCatalog) error
}

// IMirrorPusher triggers a best-effort background push of the full local
// state to the mirror. Implementations must never block the caller.
type IMirrorPusher interface {
	PushAsync()
}
