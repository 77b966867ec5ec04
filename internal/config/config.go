package config

import (
	"log"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type key string

const (
	KeyUserID  = key("user_id")
	KeyLogger  = key("logger")
	KeyMetrics = key("metrics")
)

type Config struct {
	Service  Service
	Postgres Postgres
	Kafka    Kafka
	Logger   Logger
	Metrics  Metrics
	Platform Platform
	Storage  Storage
	Pipeline Pipeline
}

type Service struct {
	Name   string `env:"SERVICE_NAME" env-default:"chat-api"`
	Port   string `env:"SERVICE_PORT" env-default:"8080"`
	Secret string `env:"SERVICE_JWT_SECRET" env-required:"true"`
}

type Postgres struct {
	User     string `env:"CHAT_API_POSTGRES_USER" env-required:"true"`
	Password string `env:"CHAT_API_POSTGRES_PASSWORD" env-required:"true"`
	Database string `env:"CHAT_API_POSTGRES_DB" env-required:"true"`
	Host     string `env:"CHAT_API_POSTGRES_HOST" env-required:"true"`
	Port     string `env:"CHAT_API_POSTGRES_PORT" env-default:"5432"`
}

type Kafka struct {
	Host            string `env:"KAFKA_HOST" env-required:"true"`
	Port            string `env:"KAFKA_PORT" env-default:"9092"`
	UserTopic       string `env:"KAFKA_USER_TOPIC" env-default:"user_updated"`
	MessageDLQTopic string `env:"KAFKA_MESSAGE_DLQ_TOPIC" env-default:"chat_message_failed"`
}

type Logger struct {
	Host string `env:"LOGGER_HOST" env-default:"localhost"`
	Port string `env:"LOGGER_PORT" env-default:"4222"`
}

type Metrics struct {
	Host string `env:"METRICS_HOST" env-default:"localhost"`
	Port int    `env:"METRICS_PORT" env-default:"8125"`
}

type Platform struct {
	Env string `env:"ENV" env-default:"dev"`
}

type Storage struct {
	DataDirectory string `env:"DATA_DIRECTORY" env-default:"./data"`
}

type Pipeline struct {
	QueueCapacity int           `env:"MESSAGE_QUEUE_CAPACITY" env-default:"32"`
	BatchMaxSize  int           `env:"MESSAGE_BATCH_MAX_SIZE" env-default:"8"`
	BatchTimeout  time.Duration `env:"MESSAGE_BATCH_TIMEOUT" env-default:"1s"`
}

func MustLoad() *Config {
	cfg := &Config{}
	if err := cleanenv.ReadEnv(cfg); err != nil {
		log.Fatalf("failed to read config: %v", err)
	}
	return cfg
}
