package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"murilov3d/internal/infrastructure/metrics"
	"murilov3d/internal/usecase/interfaces"
)

var (
	ErrSyncNotConfigured = errors.New("sheets endpoint not configured")
	ErrSyncFailed        = errors.New("sheets sync failed")
)

// SyncStatus is the advisory indicator shown to the user. It never blocks
// local operations.
type SyncStatus string

const (
	SyncStatusOK           SyncStatus = "ok"
	SyncStatusSyncing      SyncStatus = "syncing"
	SyncStatusError        SyncStatus = "error"
	SyncStatusUnconfigured SyncStatus = "unconfigured"
)

// pushTimeout bounds one background mirror round-trip.
const pushTimeout = 30 * time.Second

// ISyncUseCase mirrors local state to the spreadsheet endpoint, best effort.
type ISyncUseCase interface {
	interfaces.IMirrorPusher
	Status() SyncStatus
	Endpoint(ctx context.Context) (string, error)
	SetEndpoint(ctx context.Context, url string) error
	TestConnection(ctx context.Context) (string, error)
	Push(ctx context.Context) error
	Pull(ctx context.Context) error
}

// SyncUseCase implements last-write-wins replication in both directions:
// push overwrites the remote with local state, pull overwrites local state
// with the remote. There is no merge and no automatic retry; concurrent
// syncs may race and the later completion wins.
type SyncUseCase struct {
	catalogRepo  interfaces.ICatalogRepository
	quoteRepo    interfaces.IQuoteRepository
	settingsRepo interfaces.ISettingsRepository
	client       interfaces.ISheetsClient

	mu     sync.Mutex
	status SyncStatus
}

var _ ISyncUseCase = (*SyncUseCase)(nil)

func NewSyncUseCase(
	catalogRepo interfaces.ICatalogRepository,
	quoteRepo interfaces.IQuoteRepository,
	settingsRepo interfaces.ISettingsRepository,
	client interfaces.ISheetsClient,
) *SyncUseCase {
	return &SyncUseCase{
		catalogRepo:  catalogRepo,
		quoteRepo:    quoteRepo,
		settingsRepo: settingsRepo,
		client:       client,
		status:       SyncStatusUnconfigured,
	}
}

func (s *SyncUseCase) Status() SyncStatus {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.status
}

func (s *SyncUseCase) setStatus(st SyncStatus) {
	s.mu.Lock()
	s.status = st
	s.mu.Unlock()
}

func (s *SyncUseCase) Endpoint(ctx context.Context) (string, error) {
	return s.settingsRepo.GetSheetsURL(ctx)
}

// SetEndpoint stores the mirror URL. An empty URL disables sync. The status
// resets until the next sync attempt reports a result.
func (s *SyncUseCase) SetEndpoint(ctx context.Context, url string) error {
	if err := s.settingsRepo.SetSheetsURL(ctx, strings.TrimSpace(url)); err != nil {
		return err
	}
	s.setStatus(SyncStatusUnconfigured)
	return nil
}

// TestConnection pings the configured endpoint and returns its greeting.
func (s *SyncUseCase) TestConnection(ctx context.Context) (string, error) {
	endpoint, err := s.Endpoint(ctx)
	if err != nil {
		return "", err
	}
	if endpoint == "" {
		return "", ErrSyncNotConfigured
	}
	msg, err := s.client.Ping(ctx, endpoint)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrSyncFailed, err)
	}
	return msg, nil
}

// PushAsync fires a background push and returns immediately. Failures only
// move the status indicator.
func (s *SyncUseCase) PushAsync() {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), pushTimeout)
		defer cancel()
		if err := s.Push(ctx); err != nil && !errors.Is(err, ErrSyncNotConfigured) {
			slog.Warn("background mirror push failed", "err", err)
		}
	}()
}

// Push overwrites the remote with the full local catalog and history.
func (s *SyncUseCase) Push(ctx context.Context) error {
	endpoint, err := s.Endpoint(ctx)
	if err != nil {
		return err
	}
	if endpoint == "" {
		metrics.SyncPushes.WithLabelValues("skipped").Inc()
		s.setStatus(SyncStatusUnconfigured)
		return ErrSyncNotConfigured
	}
	s.setStatus(SyncStatusSyncing)

	catalog, found, err := s.catalogRepo.Load(ctx)
	if err != nil {
		s.setStatus(SyncStatusError)
		return err
	}
	if !found {
		catalog = defaultCatalog()
	}
	history, err := s.quoteRepo.List(ctx)
	if err != nil {
		s.setStatus(SyncStatusError)
		return err
	}

	var failed bool
	if err := s.client.SaveHistory(ctx, endpoint, history); err != nil {
		slog.Warn("mirror push: saveHistory failed", "err", err)
		failed = true
	}
	if err := s.client.SaveCosts(ctx, endpoint, catalog); err != nil {
		slog.Warn("mirror push: saveCosts failed", "err", err)
		failed = true
	}

	if failed {
		metrics.SyncPushes.WithLabelValues("error").Inc()
		s.setStatus(SyncStatusError)
		return ErrSyncFailed
	}
	metrics.SyncPushes.WithLabelValues("ok").Inc()
	s.setStatus(SyncStatusOK)
	return nil
}

// Pull overwrites local state with whatever the remote holds. There is no
// merge. A collection that fails to fetch leaves its local copy untouched
// and marks the sync as failed.
func (s *SyncUseCase) Pull(ctx context.Context) error {
	endpoint, err := s.Endpoint(ctx)
	if err != nil {
		return err
	}
	if endpoint == "" {
		metrics.SyncPulls.WithLabelValues("skipped").Inc()
		s.setStatus(SyncStatusUnconfigured)
		return ErrSyncNotConfigured
	}
	s.setStatus(SyncStatusSyncing)

	var failed bool

	history, err := s.client.GetHistory(ctx, endpoint)
	if err != nil {
		slog.Warn("mirror pull: getHistory failed", "err", err)
		failed = true
	} else if err := s.quoteRepo.ReplaceAll(ctx, history); err != nil {
		s.setStatus(SyncStatusError)
		return err
	}

	costs, err := s.client.GetCosts(ctx, endpoint)
	if err != nil {
		slog.Warn("mirror pull: getCosts failed", "err", err)
		failed = true
	} else if err := s.catalogRepo.Save(ctx, costs); err != nil {
		s.setStatus(SyncStatusError)
		return err
	}

	if failed {
		metrics.SyncPulls.WithLabelValues("error").Inc()
		s.setStatus(SyncStatusError)
		return ErrSyncFailed
	}
	metrics.SyncPulls.WithLabelValues("ok").Inc()
	s.setStatus(SyncStatusOK)
	return nil
}
