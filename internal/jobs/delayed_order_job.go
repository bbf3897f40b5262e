package jobs

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"tableside/internal/core/application/usecases/queries"
	"tableside/internal/core/domain/model/kernel"
	"tableside/internal/core/domain/services"
	"tableside/internal/core/ports"

	"github.com/robfig/cron/v3"
)

// DelayedOrderJob watches for orders stuck in preparing past the configured
// threshold and escalates them to staff as orderDelayed events.
// Runs every 30 seconds; each stuck order is escalated at most once.
type DelayedOrderJob struct {
	handler   queries.ListDelayedOrdersQueryHandler
	router    services.NotificationRouter
	publisher ports.EventPublisher
	threshold time.Duration
	cron      *cron.Cron
	logger    *slog.Logger

	mu       sync.Mutex
	notified map[kernel.UUID]bool
}

// NewDelayedOrderJob creates a job that escalates stuck orders.
func NewDelayedOrderJob(
	handler queries.ListDelayedOrdersQueryHandler,
	router services.NotificationRouter,
	publisher ports.EventPublisher,
	threshold time.Duration,
	logger *slog.Logger,
) *DelayedOrderJob {
	return &DelayedOrderJob{
		handler:   handler,
		router:    router,
		publisher: publisher,
		threshold: threshold,
		cron:      cron.New(cron.WithSeconds()),
		logger:    logger.With("component", "delayed_order_job"),
		notified:  make(map[kernel.UUID]bool),
	}
}

// Start begins the delayed order job to run every 30 seconds.
func (j *DelayedOrderJob) Start() error {
	_, err := j.cron.AddFunc("*/30 * * * * *", j.run)
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Delayed order job started (running every 30 seconds)",
		"threshold", j.threshold)
	return nil
}

// Stop stops the delayed order job.
func (j *DelayedOrderJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Delayed order job stopped")
}

func (j *DelayedOrderJob) run() {
	ctx := context.Background()

	query, err := queries.NewListDelayedOrdersQuery(j.threshold)
	if err != nil {
		j.logger.ErrorContext(ctx, "Delayed order job misconfigured", "error", err)
		return
	}

	delayed, err := j.handler.Handle(ctx, query)
	if err != nil {
		j.logger.ErrorContext(ctx, "Delayed order job failed", "error", err)
		return
	}

	j.mu.Lock()
	defer j.mu.Unlock()

	now := time.Now()
	for _, o := range delayed {
		if j.notified[o.ID()] {
			continue
		}
		j.notified[o.ID()] = true

		for _, n := range j.router.RouteDelayed(o) {
			j.publisher.Publish(n.Channel, ports.Event{
				Name:       n.Name,
				Order:      n.Order,
				OccurredAt: now,
			})
		}

		j.logger.InfoContext(ctx, "Order escalated as delayed",
			"order_id", o.ID().String(), "table", o.TableNumber())
	}
}
