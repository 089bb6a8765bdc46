// Package jobs provides scheduled background tasks for the marketplace.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for the negotiation workflow.
//
// # Available Jobs
//
// 1. BroadcastExpiryJob - Runs every minute to close pending broadcasts whose
// 24-hour response window has lapsed
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(expireBroadcastsHandler, logger)
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
// The expiry job uses the cron expression "0 * * * * *", running at the top
// of every minute. Expiry timestamps are written when broadcasts are created,
// so a minute of sweep latency only delays the status flip, never the
// deadline itself.
//
// # Error Handling
//
// The expiry sweep logs every error; a sweep that finds nothing to expire is
// a normal outcome, not an error.
package jobs
