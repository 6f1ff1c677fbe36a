// Package jobs provides scheduled background tasks for the order service.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3.
//
// # Available Jobs
//
// NotificationRelayJob runs RelayNotificationsCommand on a schedule. It reads
// the notifications written by status transitions, publishes each one to the
// configured Kafka topic and marks it published. Publishing failures leave the
// notification in place for the next run.
//
// # Usage
//
//	relayCmd, err := commands.NewRelayNotificationsCommand("order.status_changed", 100)
//	if err != nil {
//		log.Fatal(err)
//	}
//	relayJob := jobs.NewNotificationRelayJob(relayHandler, relayCmd, "*/5 * * * * *", logger)
//
//	jobManager := jobs.NewJobManager(relayJob, logger)
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// # Scheduling
//
// Schedules are six-field cron expressions with a leading seconds field.
// Overlapping runs are skipped rather than queued.
package jobs
