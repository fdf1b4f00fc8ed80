// Package metrics registers the service's prometheus collectors.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// QuotesSaved counts quote records written to the history (creates and
	// edit replacements).
	QuotesSaved = promauto.NewCounter(prometheus.CounterOpts{
		Name: "murilov3d_quotes_saved_total",
		Help: "Number of quote records saved to the history.",
	})

	// SyncPushes counts mirror pushes by result (ok, error, skipped).
	SyncPushes = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "murilov3d_sync_pushes_total",
		Help: "Number of mirror pushes by result.",
	}, []string{"result"})

	// SyncPulls counts mirror pulls by result (ok, error, skipped).
	SyncPulls = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "murilov3d_sync_pulls_total",
		Help: "Number of mirror pulls by result.",
	}, []string{"result"})
)
