package interfaces

import (
	"context"

	"murilov3d/internal/domain/entities"
)

// ICatalogRepository abstracts persistence for the cost catalog.
//
// The catalog is one document rewritten whole on every mutation; there is no
// per-entry persistence. Load reports found=false on first run so the use
// case can seed the default catalog.
type ICatalogRepository interface {
	Load(ctx context.Context) (entities.CostCatalog, bool, error)
	Save(ctx context.Context, catalog entities.CostCatalog) error
}
