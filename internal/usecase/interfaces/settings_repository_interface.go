package interfaces

import "context"

// ISettingsRepository persists small process-wide settings, currently only
// the Sheets mirror endpoint URL. An unconfigured setting reads as "".
type ISettingsRepository interface {
	GetSheetsURL(ctx context.Context) (string, error)
	SetSheetsURL(ctx context.Context, url string) error
}
