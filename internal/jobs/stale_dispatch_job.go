package jobs

import (
	"context"
	"log/slog"
	"time"

	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/ports"

	"github.com/robfig/cron/v3"
)

// StaleDispatchReminderJob periodically scans for orders stuck in transit past
// a configured age and republishes their dispatch_started notification as a
// reminder. Purely observational: it never changes order state.
type StaleDispatchReminderJob struct {
	uowFactory commands.OrderUoWFactory
	notifier   ports.Notifier
	staleAfter time.Duration
	cron       *cron.Cron
	logger     *slog.Logger
}

// NewStaleDispatchReminderJob creates the reminder job. staleAfter is how long
// an order may stay in transit before reminders start.
func NewStaleDispatchReminderJob(
	uowFactory commands.OrderUoWFactory,
	notifier ports.Notifier,
	staleAfter time.Duration,
	logger *slog.Logger,
) *StaleDispatchReminderJob {
	return &StaleDispatchReminderJob{
		uowFactory: uowFactory,
		notifier:   notifier,
		staleAfter: staleAfter,
		cron:       cron.New(cron.WithSeconds()),
		logger:     logger.With("component", "stale_dispatch_reminder_job"),
	}
}

// Start begins the reminder job, running once a minute.
func (j *StaleDispatchReminderJob) Start() error {
	_, err := j.cron.AddFunc("0 * * * * *", func() {
		ctx := context.Background()
		if err := j.run(ctx); err != nil {
			j.logger.ErrorContext(ctx, "Stale dispatch scan failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Stale dispatch reminder job started (running every minute)",
		"stale_after", j.staleAfter.String())
	return nil
}

// Stop stops the reminder job.
func (j *StaleDispatchReminderJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Stale dispatch reminder job stopped")
}

func (j *StaleDispatchReminderJob) run(ctx context.Context) error {
	bound := kernel.Timestamp(time.Now().UTC().Add(-j.staleAfter).Format(kernel.TimestampLayout))

	uow := j.uowFactory.Create()
	stale, err := uow.OrderRepository().GetAllInTransitStartedBefore(ctx, bound)
	if err != nil {
		return err
	}

	for _, aggregate := range stale {
		j.notifier.Publish(ports.EventDispatchStarted, aggregate.Snapshot())
	}

	if len(stale) > 0 {
		j.logger.InfoContext(ctx, "Republished reminders for stale dispatches", "count", len(stale))
	}

	return nil
}
