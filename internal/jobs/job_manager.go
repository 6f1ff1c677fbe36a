package jobs

import (
	"fmt"
	"log/slog"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	notificationRelayJob *NotificationRelayJob
	logger               *slog.Logger
}

// NewJobManager creates a job manager. A nil relay job is allowed and leaves
// the relay disabled, as when no event stream is configured.
func NewJobManager(notificationRelayJob *NotificationRelayJob, logger *slog.Logger) *JobManager {
	return &JobManager{
		notificationRelayJob: notificationRelayJob,
		logger:               logger.With("component", "job_manager"),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if jm.notificationRelayJob == nil {
		jm.logger.Info("Notification relay disabled")
		return nil
	}

	if err := jm.notificationRelayJob.Start(); err != nil {
		return fmt.Errorf("failed to start notification relay job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	if jm.notificationRelayJob != nil {
		jm.notificationRelayJob.Stop()
	}
}
