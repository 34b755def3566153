package jobs

import (
	"fmt"
	"log/slog"

	"pizzeria/internal/adapters/out/prom"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	metricsRefreshJob *MetricsRefreshJob
}

// NewJobManager creates a job manager with all required jobs.
func NewJobManager(
	refresher *prom.Refresher,
	metricsIntervalSeconds int,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		metricsRefreshJob: NewMetricsRefreshJob(refresher, metricsIntervalSeconds, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.metricsRefreshJob.Start(); err != nil {
		return fmt.Errorf("failed to start metrics refresh job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.metricsRefreshJob.Stop()
}
