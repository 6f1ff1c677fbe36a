package jobs

import (
	"context"
	"log/slog"

	"marketplace/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// relayHandler publishes one batch of unpublished notifications.
type relayHandler interface {
	Handle(ctx context.Context, cmd commands.RelayNotificationsCommand) (commands.RelayResult, error)
}

// NotificationRelayJob forwards unpublished inbox notifications to the event
// stream on a cron schedule.
type NotificationRelayJob struct {
	handler  relayHandler
	cmd      commands.RelayNotificationsCommand
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewNotificationRelayJob creates a relay job running cmd on schedule, a
// six-field cron expression with seconds.
func NewNotificationRelayJob(
	handler relayHandler,
	cmd commands.RelayNotificationsCommand,
	schedule string,
	logger *slog.Logger,
) *NotificationRelayJob {
	return &NotificationRelayJob{
		handler:  handler,
		cmd:      cmd,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds(), cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger))),
		logger:   logger.With("component", "notification_relay_job"),
	}
}

func (j *NotificationRelayJob) Start() error {
	if _, err := j.cron.AddFunc(j.schedule, j.Run); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Notification relay job started",
		"schedule", j.schedule,
		"topic", j.cmd.Topic(),
		"batch_size", j.cmd.BatchSize(),
	)
	return nil
}

// Run relays one batch. Failed publishes stay unpublished and are retried on the next run.
func (j *NotificationRelayJob) Run() {
	ctx := context.Background()

	result, err := j.handler.Handle(ctx, j.cmd)
	if err != nil {
		j.logger.ErrorContext(ctx, "Notification relay failed",
			"published", result.Published,
			"failed", result.Failed,
			"error", err,
		)
		return
	}

	if result.Published > 0 {
		j.logger.InfoContext(ctx, "Notifications relayed", "published", result.Published)
	}
}

// Stop stops scheduling and waits for a running relay to finish.
func (j *NotificationRelayJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Notification relay job stopped")
}
