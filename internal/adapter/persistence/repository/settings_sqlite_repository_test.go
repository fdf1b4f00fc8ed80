package repository

import (
	"context"
	"testing"
)

func TestSettingsSQLiteRepository_GetSheetsURLEmpty(t *testing.T) {
	repo := NewSettingsSQLiteRepository(testDB(t))

	got, err := repo.GetSheetsURL(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "" {
		t.Fatalf("expected empty url on fresh database, got %q", got)
	}
}

func TestSettingsSQLiteRepository_SetAndGetSheetsURL(t *testing.T) {
	repo := NewSettingsSQLiteRepository(testDB(t))
	ctx := context.Background()

	if err := repo.SetSheetsURL(ctx, "https://script.google.com/macros/s/abc/exec"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got, err := repo.GetSheetsURL(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "https://script.google.com/macros/s/abc/exec" {
		t.Fatalf("unexpected url: %q", got)
	}

	// Overwrite, including clearing the endpoint.
	if err := repo.SetSheetsURL(ctx, ""); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got, err = repo.GetSheetsURL(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "" {
		t.Fatalf("expected cleared url, got %q", got)
	}
}
