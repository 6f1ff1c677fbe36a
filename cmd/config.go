package cmd

type Config struct {
	HTTPPort   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	// KafkaBrokers is a comma-separated broker list. The notification relay is
	// disabled when it is empty.
	KafkaBrokers          string
	KafkaOrderStatusTopic string

	// NotificationRelaySchedule is a six-field cron expression with seconds.
	NotificationRelaySchedule  string
	NotificationRelayBatchSize int
}

const (
	DefaultHTTPPort                   = "8080"
	DefaultKafkaOrderStatusTopic      = "order.status_changed"
	DefaultNotificationRelaySchedule  = "*/5 * * * * *"
	DefaultNotificationRelayBatchSize = 100
)
