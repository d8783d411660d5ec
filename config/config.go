package config

import (
	"log"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	HttpServer    HttpServerConfig
	Database      DatabaseConfig
	Redis         RedisConfig
	HttpClient    HttpClientConfig
	MessageStream MessageStreamConfig
	Scheduler     SchedulerConfig
	Payment       PaymentConfig
	Mail          MailConfig
	Booking       BookingConfig
}

type HttpServerConfig struct {
	Port           string `envconfig:"HTTP_SERVER_PORT" default:"8080"`
	MonitoringPort string `envconfig:"HTTP_MONITORING_PORT" default:"8081"`
}

type DatabaseConfig struct {
	Host            string        `envconfig:"DATABASE_HOST" default:"localhost"`
	Port            string        `envconfig:"DATABASE_PORT" default:"5432"`
	Username        string        `envconfig:"DATABASE_USERNAME" default:"postgres"`
	Password        string        `envconfig:"DATABASE_PASSWORD" default:"postgres"`
	Name            string        `envconfig:"DATABASE_NAME" default:"reservation"`
	SSLMode         string        `envconfig:"DATABASE_SSLMODE" default:"disable"`
	MaxOpenConns    int           `envconfig:"DATABASE_MAX_OPEN_CONNS" default:"20"`
	MaxIdleConns    int           `envconfig:"DATABASE_MAX_IDLE_CONNS" default:"5"`
	ConnMaxLifetime time.Duration `envconfig:"DATABASE_CONN_MAX_LIFETIME" default:"30m"`
	RunMigrations   bool          `envconfig:"DATABASE_RUN_MIGRATIONS" default:"true"`
}

type RedisConfig struct {
	Host     string        `envconfig:"REDIS_HOST" default:"localhost"`
	Port     string        `envconfig:"REDIS_PORT" default:"6379"`
	Password string        `envconfig:"REDIS_PASSWORD" default:""`
	DB       int           `envconfig:"REDIS_DB" default:"0"`
	CacheTTL time.Duration `envconfig:"REDIS_CACHE_TTL" default:"5m"`
}

type HttpClientConfig struct {
	// Type selects the breaker: threshold, consecutive or rate.
	Type       string        `envconfig:"HTTP_CLIENT_BREAKER_TYPE" default:"consecutive"`
	Threshold  int64         `envconfig:"HTTP_CLIENT_BREAKER_THRESHOLD" default:"5"`
	Rate       float64       `envconfig:"HTTP_CLIENT_BREAKER_RATE" default:"0.5"`
	MinSamples int64         `envconfig:"HTTP_CLIENT_BREAKER_MIN_SAMPLES" default:"20"`
	Timeout    time.Duration `envconfig:"HTTP_CLIENT_TIMEOUT" default:"10s"`
}

type MessageStreamConfig struct {
	Host        string `envconfig:"MESSAGE_STREAM_HOST" default:"localhost"`
	Port        string `envconfig:"MESSAGE_STREAM_PORT" default:"5672"`
	Username    string `envconfig:"MESSAGE_STREAM_USERNAME" default:"guest"`
	Password    string `envconfig:"MESSAGE_STREAM_PASSWORD" default:"guest"`
	QueueSuffix string `envconfig:"MESSAGE_STREAM_QUEUE_SUFFIX" default:"reservation-service"`
}

type SchedulerConfig struct {
	Concurrency  int           `envconfig:"SCHEDULER_CONCURRENCY" default:"10"`
	NoShowGrace  time.Duration `envconfig:"SCHEDULER_NO_SHOW_GRACE" default:"36h"`
	EnableNoShow bool          `envconfig:"SCHEDULER_ENABLE_NO_SHOW" default:"true"`
}

type PaymentConfig struct {
	StripeSecretKey     string `envconfig:"STRIPE_SECRET_KEY" default:""`
	StripeWebhookSecret string `envconfig:"STRIPE_WEBHOOK_SECRET" default:""`
}

type MailConfig struct {
	Host     string `envconfig:"SMTP_HOST" default:"localhost"`
	Port     int    `envconfig:"SMTP_PORT" default:"587"`
	Username string `envconfig:"SMTP_USERNAME" default:""`
	Password string `envconfig:"SMTP_PASSWORD" default:""`
	From     string `envconfig:"SMTP_FROM" default:"reservations@resort.local"`
	FromName string `envconfig:"SMTP_FROM_NAME" default:"Resort Reservations"`
}

type BookingConfig struct {
	Currency        string        `envconfig:"BOOKING_CURRENCY" default:"INR"`
	ReferencePrefix string        `envconfig:"BOOKING_REFERENCE_PREFIX" default:"RSV"`
	MaxTxRetries    uint64        `envconfig:"BOOKING_MAX_TX_RETRIES" default:"5"`
	CategoryLockTTL time.Duration `envconfig:"BOOKING_CATEGORY_LOCK_TTL" default:"10s"`
}

func InitConfig() *Config {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	return &cfg
}
