package config

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	HttpServer          HttpServerConfig          `envconfig:"HTTP_SERVER"`
	Database            DatabaseConfig            `envconfig:"DATABASE"`
	Redis               RedisConfig               `envconfig:"REDIS"`
	MessageStream       MessageStreamConfig       `envconfig:"MESSAGE_STREAM"`
	HttpClient          HttpClientConfig          `envconfig:"HTTP_CLIENT"`
	AuthService         AuthServiceConfig         `envconfig:"AUTH_SERVICE"`
	NotificationService NotificationServiceConfig `envconfig:"NOTIFICATION_SERVICE"`
	Gateway             GatewayConfig             `envconfig:"GATEWAY"`
}

type HttpServerConfig struct {
	Port string `envconfig:"PORT" default:"3000"`
}

type DatabaseConfig struct {
	Host         string `envconfig:"HOST" default:"localhost"`
	Port         string `envconfig:"PORT" default:"5432"`
	User         string `envconfig:"USER" default:"postgres"`
	Password     string `envconfig:"PASSWORD" default:"postgres"`
	Name         string `envconfig:"NAME" default:"wedding_marketplace"`
	SSLMode      string `envconfig:"SSL_MODE" default:"disable"`
	MaxOpenConns int    `envconfig:"MAX_OPEN_CONNS" default:"25"`
	MaxIdleConns int    `envconfig:"MAX_IDLE_CONNS" default:"5"`
}

type RedisConfig struct {
	Host     string `envconfig:"HOST" default:"localhost"`
	Port     string `envconfig:"PORT" default:"6379"`
	Password string `envconfig:"PASSWORD" default:""`
	DB       int    `envconfig:"DB" default:"0"`
}

type MessageStreamConfig struct {
	Host     string `envconfig:"HOST" default:"localhost"`
	Port     string `envconfig:"PORT" default:"5672"`
	User     string `envconfig:"USER" default:"guest"`
	Password string `envconfig:"PASSWORD" default:"guest"`
}

type HttpClientConfig struct {
	Type                string  `envconfig:"TYPE" default:"threshold"`
	Threshold           int64   `envconfig:"THRESHOLD" default:"10"`
	ConsecutiveFailures int64   `envconfig:"CONSECUTIVE_FAILURES" default:"5"`
	ErrorRate           float64 `envconfig:"ERROR_RATE" default:"0.65"`
	MinSamples          int64   `envconfig:"MIN_SAMPLES" default:"100"`
	TimeoutSeconds      int     `envconfig:"TIMEOUT_SECONDS" default:"10"`
}

type AuthServiceConfig struct {
	Host string `envconfig:"HOST" default:"localhost"`
	Port string `envconfig:"PORT" default:"8081"`
}

type NotificationServiceConfig struct {
	Host string `envconfig:"HOST" default:"localhost"`
	Port string `envconfig:"PORT" default:"8082"`
}

type GatewayConfig struct {
	BaseURL   string `envconfig:"BASE_URL" default:"https://api.paymongo.com/v1"`
	SecretKey string `envconfig:"SECRET_KEY"`
}

func InitConfig() *Config {
	if err := godotenv.Load(); err != nil {
		log.Printf("no .env file found, relying on environment: %v", err)
	}

	var cfg Config
	envconfig.MustProcess("", &cfg)
	return &cfg
}
