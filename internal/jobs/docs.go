// Package jobs provides scheduled background tasks for the dispatch tracker.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3.
//
// # Available Jobs
//
// 1. StaleDispatchReminderJob - Runs every minute to republish notifications
// for orders that have been in transit longer than the configured threshold.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(uowFactory, notifier, staleAfter, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// # Error Handling
//
// The reminder job is observational only; a failed scan is logged and retried
// on the next tick, it never affects order state.
package jobs
