package jobs

import (
	"context"
	"log/slog"

	"relomarket/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// BroadcastExpiryJob manages the scheduled expiry of lapsed broadcasts.
// Runs every minute to close pending broadcasts past their response window.
type BroadcastExpiryJob struct {
	handler commands.ExpireBroadcastsCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewBroadcastExpiryJob creates a new job for expiring broadcasts.
// Uses ExpireBroadcastsCommandHandler to run the bulk sweep every minute.
func NewBroadcastExpiryJob(handler commands.ExpireBroadcastsCommandHandler, logger *slog.Logger) *BroadcastExpiryJob {
	return &BroadcastExpiryJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "broadcast_expiry_job"),
	}
}

// Start begins the broadcast expiry job to run at the top of every minute.
func (j *BroadcastExpiryJob) Start() error {
	_, err := j.cron.AddFunc("0 * * * * *", func() {
		ctx := context.Background()
		cmd := commands.NewExpireBroadcastsCommand()

		expired, handleErr := j.handler.Handle(ctx, cmd)
		if handleErr != nil {
			j.logger.ErrorContext(ctx, "Broadcast expiry job failed", "error", handleErr)
			return
		}

		if expired > 0 {
			j.logger.InfoContext(ctx, "Expired lapsed broadcasts", "count", expired)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Broadcast expiry job started (running every minute)")
	return nil
}

// Stop stops the broadcast expiry job.
func (j *BroadcastExpiryJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Broadcast expiry job stopped")
}
