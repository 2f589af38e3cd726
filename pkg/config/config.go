package config

import (
	"errors"
	"os"
	"time"

	env "github.com/caarlos0/env/v7"
	"github.com/joho/godotenv"
)

type Config struct {
	HTTPPort         int    `env:"HTTP_PORT"           envDefault:"8080"`
	PostgresDSN      string `env:"POSTGRES_DSN"`
	PostgresMaxConns int32  `env:"POSTGRES_MAX_CONNS"  envDefault:"10"`
	LogLevel         string `env:"LOG_LEVEL"           envDefault:"info"`
	JWT              JWTConfig

	KafkaBrokers []string `env:"KAFKA_BROKERS"            envSeparator:","`
	KafkaTopic   string   `env:"KAFKA_NOTIFICATION_TOPIC"`

	SessionCleanupInterval time.Duration `env:"SESSION_CLEANUP_INTERVAL" envDefault:"1h"`
}

type JWTConfig struct {
	// RSA key pair, base64-encoded PEM.
	PrivateKey  string        `env:"JWT_PRIVATE_KEY"`
	PublicKey   string        `env:"JWT_PUBLIC_KEY"`
	TokenExpiry time.Duration `env:"JWT_TOKEN_EXPIRY" envDefault:"24h"`
}

func New(envPath string) (Config, error) {
	var c Config

	err := godotenv.Load(envPath)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, err
	}

	err = env.Parse(&c)
	if err != nil {
		return Config{}, err
	}

	return c, nil
}
