package jobs

import (
	"context"
	"errors"
	"log/slog"

	"trackledger/internal/core/application/usecases/commands"
	"trackledger/internal/core/domain/model/control"
	"trackledger/internal/core/domain/model/kernel"

	"github.com/robfig/cron/v3"
)

// OverdueWatchJob periodically flags deliveries whose expected arrival has
// passed. Runs every 30 seconds and acts as the configured watch identity,
// which must be in the oracle allowlist for its events to be accepted.
type OverdueWatchJob struct {
	handler       commands.FlagOverdueDeliveriesCommandHandler
	watchIdentity kernel.UUID
	cron          *cron.Cron
	logger        *slog.Logger
}

// NewOverdueWatchJob creates a new job for the overdue sweep.
func NewOverdueWatchJob(
	handler commands.FlagOverdueDeliveriesCommandHandler,
	watchIdentity kernel.UUID,
	logger *slog.Logger,
) *OverdueWatchJob {
	return &OverdueWatchJob{
		handler:       handler,
		watchIdentity: watchIdentity,
		cron:          cron.New(cron.WithSeconds()),
		logger:        logger.With("component", "overdue_watch_job"),
	}
}

// Start begins the overdue watch job to run every 30 seconds.
func (j *OverdueWatchJob) Start() error {
	_, err := j.cron.AddFunc("*/30 * * * * *", func() {
		ctx := context.Background()

		cmd, cmdErr := commands.NewFlagOverdueDeliveriesCommand(j.watchIdentity)
		if cmdErr != nil {
			j.logger.ErrorContext(ctx, "Overdue watch job misconfigured", "error", cmdErr)
			return
		}

		flagged, handleErr := j.handler.Handle(ctx, cmd)
		if handleErr != nil {
			// A paused ledger is an expected state, not a system issue.
			if errors.Is(handleErr, control.ErrLedgerPaused) {
				j.logger.InfoContext(ctx, "Overdue sweep skipped, ledger is paused")
				return
			}
			j.logger.ErrorContext(ctx, "Overdue watch job failed", "error", handleErr)
			return
		}

		if flagged > 0 {
			j.logger.InfoContext(ctx, "Overdue deliveries flagged", "count", flagged)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Overdue watch job started (running every 30 seconds)")
	return nil
}

// Stop stops the overdue watch job.
func (j *OverdueWatchJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Overdue watch job stopped")
}
