package cmd

type Config struct {
	HTTPPort                string
	DBHost                  string
	DBPort                  string
	DBUser                  string
	DBPassword              string
	DBName                  string
	DBSslMode               string
	KafkaHost               string
	KafkaStatusChangedTopic string
	RedisAddr               string
	ApprovalServiceURL      string
	RoutingServiceURL       string
	CancelableStatuses      string
	StatusRefreshCron       string
}
