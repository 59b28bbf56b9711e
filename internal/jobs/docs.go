// Package jobs provides scheduled background tasks for the ledger.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required by the delivery ledger.
//
// # Available Jobs
//
// 1. OverdueWatchJob - Runs every 30 seconds to flag uncompleted deliveries
// whose expected arrival has passed by appending a delayed tracking event.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(flagOverdueHandler, watchIdentity, logger)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
//
// # Scheduling
//
// The watch job uses the cron expression "*/30 * * * * *", running twice a
// minute. Overdue flagging is a convergence mechanism, not a real-time one,
// so a coarser cadence keeps lock pressure on the delivery rows low.
//
// # Error Handling
//
// The sweep acts as a regular caller: it is refused while the ledger is
// paused, which the job logs at info level and otherwise ignores. All other
// errors are logged as system issues. Deliveries already marked delayed or
// with a full event log are skipped inside the handler.
package jobs
