package jobs

import (
	"context"
	"log/slog"
	"time"

	"punarvasthra/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// StaleDeliveryJob periodically expires notification attempts that never
// reached an outcome. A pending marker older than the cutoff means the
// process died between committing the marker and recording the result; the
// sweep marks those deliveries failed so they become eligible for resend.
type StaleDeliveryJob struct {
	handler  commands.ExpireStaleDeliveriesCommandHandler
	cron     *cron.Cron
	schedule string
	cutoff   time.Duration
	logger   *slog.Logger
}

// NewStaleDeliveryJob creates the sweep job. The schedule is a standard
// five-field cron expression; cutoff is how old a pending marker must be
// before it is considered abandoned.
func NewStaleDeliveryJob(
	handler commands.ExpireStaleDeliveriesCommandHandler,
	schedule string,
	cutoff time.Duration,
	logger *slog.Logger,
) *StaleDeliveryJob {
	return &StaleDeliveryJob{
		handler:  handler,
		cron:     cron.New(),
		schedule: schedule,
		cutoff:   cutoff,
		logger:   logger.With("component", "stale_delivery_job"),
	}
}

// Start schedules the sweep.
func (j *StaleDeliveryJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		ctx := context.Background()

		cmd, err := commands.NewExpireStaleDeliveriesCommand(j.cutoff)
		if err != nil {
			j.logger.ErrorContext(ctx, "Stale delivery sweep misconfigured", "error", err)
			return
		}

		expired, err := j.handler.Handle(ctx, cmd)
		if err != nil {
			j.logger.ErrorContext(ctx, "Stale delivery sweep failed", "error", err)
			return
		}

		if expired > 0 {
			j.logger.InfoContext(ctx, "Expired stale notification deliveries", "count", expired)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Stale delivery job started", "schedule", j.schedule, "cutoff", j.cutoff.String())
	return nil
}

// Stop stops the sweep job.
func (j *StaleDeliveryJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Stale delivery job stopped")
}
