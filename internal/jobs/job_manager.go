package jobs

import (
	"fmt"
	"log/slog"

	"trackledger/internal/core/application/usecases/commands"
	"trackledger/internal/core/domain/model/kernel"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	overdueWatchJob *OverdueWatchJob
}

// NewJobManager creates a new job manager with all required jobs.
// Takes command handlers as dependencies to wire up the job execution.
func NewJobManager(
	flagOverdueHandler commands.FlagOverdueDeliveriesCommandHandler,
	watchIdentity kernel.UUID,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		overdueWatchJob: NewOverdueWatchJob(flagOverdueHandler, watchIdentity, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.overdueWatchJob.Start(); err != nil {
		return fmt.Errorf("failed to start overdue watch job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.overdueWatchJob.Stop()
}
