package jobs

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/robfig/cron/v3"

	"pizzeria/internal/adapters/out/prom"
)

// MetricsRefreshJob periodically recomputes the Prometheus gauges from
// a record-store scan. The scrape endpoint then serves the latest
// snapshot without touching the store on every scrape.
type MetricsRefreshJob struct {
	refresher *prom.Refresher
	interval  int
	cron      *cron.Cron
	logger    *slog.Logger
}

// NewMetricsRefreshJob creates a job refreshing metrics every
// intervalSeconds seconds.
func NewMetricsRefreshJob(refresher *prom.Refresher, intervalSeconds int, logger *slog.Logger) *MetricsRefreshJob {
	return &MetricsRefreshJob{
		refresher: refresher,
		interval:  intervalSeconds,
		cron:      cron.New(cron.WithSeconds()),
		logger:    logger.With("component", "metrics_refresh_job"),
	}
}

// Start begins the periodic refresh.
func (j *MetricsRefreshJob) Start() error {
	_, err := j.cron.AddFunc(fmt.Sprintf("@every %ds", j.interval), func() {
		ctx := context.Background()
		if err := j.refresher.Refresh(ctx); err != nil {
			j.logger.ErrorContext(ctx, "Metrics refresh job failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(),
		"Metrics refresh job started", "interval_seconds", j.interval)
	return nil
}

// Stop stops the refresh job.
func (j *MetricsRefreshJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Metrics refresh job stopped")
}
