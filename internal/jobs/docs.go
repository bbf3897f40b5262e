// Package jobs provides scheduled background tasks for the ordering system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for the service.
//
// # Available Jobs
//
// 1. DelayedOrderJob - Runs every 30 seconds to escalate orders stuck in
// preparing past the configured threshold, publishing orderDelayed events
// on the staff channel (at most once per order).
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(listDelayedOrdersHandler, router, publisher, threshold, logger)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
//
// # Error Handling
//
// - Query failures are logged and the tick is skipped; the next tick retries
// - Failed job starts will stop any already running jobs
package jobs
