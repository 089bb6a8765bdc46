package jobs

import (
	"fmt"
	"log/slog"

	"relomarket/internal/core/application/usecases/commands"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	broadcastExpiryJob *BroadcastExpiryJob
}

// NewJobManager creates a new job manager with all required jobs.
// Takes command handlers as dependencies to wire up the job execution.
func NewJobManager(
	expireBroadcastsHandler commands.ExpireBroadcastsCommandHandler,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		broadcastExpiryJob: NewBroadcastExpiryJob(expireBroadcastsHandler, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.broadcastExpiryJob.Start(); err != nil {
		return fmt.Errorf("failed to start broadcast expiry job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.broadcastExpiryJob.Stop()
}
