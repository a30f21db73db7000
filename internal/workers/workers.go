package workers

import (
	"context"

	"github.com/MKhiriev/help-me-shop/internal/config"
	"github.com/MKhiriev/help-me-shop/internal/logger"
)

type Workers struct {
	workers []Worker
}

// NewWorkers builds the background workers of the server: a health probe
// that reports to status. Only db decides the status; a cache outage
// degrades reads to misses, so cache failures are just logged. status may
// be nil when no gRPC health service is enabled; probe results are then
// only logged.
func NewWorkers(db, cache Pinger, status StatusSetter, cfg config.Workers, logger *logger.Logger) *Workers {
	probe := NewHealthProbe(status, cfg.HealthInterval, logger).
		WithTarget("database", db).
		WithOptionalTarget("cache", cache)

	return &Workers{workers: []Worker{probe}}
}

func (w *Workers) Run(ctx context.Context) {
	for _, worker := range w.workers {
		worker.Run(ctx)
	}
}
