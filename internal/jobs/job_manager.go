package jobs

import (
	"fmt"
	"log/slog"
	"time"

	"tableside/internal/core/application/usecases/queries"
	"tableside/internal/core/domain/services"
	"tableside/internal/core/ports"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	delayedOrderJob *DelayedOrderJob
}

// NewJobManager creates a new job manager with all required jobs.
// Takes the query handler and publishing dependencies to wire up job execution.
func NewJobManager(
	listDelayedOrdersHandler queries.ListDelayedOrdersQueryHandler,
	router services.NotificationRouter,
	publisher ports.EventPublisher,
	delayedThreshold time.Duration,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		delayedOrderJob: NewDelayedOrderJob(
			listDelayedOrdersHandler, router, publisher, delayedThreshold, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.delayedOrderJob.Start(); err != nil {
		return fmt.Errorf("failed to start delayed order job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.delayedOrderJob.Stop()
}
