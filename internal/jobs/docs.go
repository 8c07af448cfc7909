// Package jobs provides scheduled background tasks for the dispatch service.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3.
//
// # Available Jobs
//
// AssignmentRunJob runs the assignment engine over all pending orders on a
// six-field cron schedule, every thirty seconds unless configured otherwise.
// Manual runs through the HTTP API and scheduled runs share the same run lock,
// so at most one batch is in flight across all replicas.
//
// # Usage
//
//	jobManager := jobs.NewJobManager(runAssignmentHandler, cfg.AssignmentSchedule, cfg.AssignmentRunTimeout, logger)
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// # Error Handling
//
// A run skipped because the lock is held is logged at info level. Any other
// failure is logged as an error and the next tick tries again.
package jobs
