package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	Environment string `env:"ENVIRONMENT" envDefault:"development"`
	Server      ServerConfig
	Database    DatabaseConfig
	RabbitMQ    RabbitMQConfig
	Contact     ContactConfig
}

type ServerConfig struct {
	Port            string        `env:"PORT" envDefault:"3000"`
	ReadTimeout     time.Duration `env:"SERVER_READ_TIMEOUT" envDefault:"15s"`
	WriteTimeout    time.Duration `env:"SERVER_WRITE_TIMEOUT" envDefault:"15s"`
	IdleTimeout     time.Duration `env:"SERVER_IDLE_TIMEOUT" envDefault:"60s"`
	ShutdownTimeout time.Duration `env:"SERVER_SHUTDOWN_TIMEOUT" envDefault:"10s"`
}

type DatabaseConfig struct {
	Path            string        `env:"DB_PATH" envDefault:"./contacts.db"`
	MaxOpenConns    int           `env:"DB_MAX_OPEN_CONNS" envDefault:"1"`
	MaxIdleConns    int           `env:"DB_MAX_IDLE_CONNS" envDefault:"1"`
	ConnMaxLifetime time.Duration `env:"DB_CONN_MAX_LIFETIME" envDefault:"0s"`
	BusyTimeout     time.Duration `env:"DB_BUSY_TIMEOUT" envDefault:"5s"`
}

// RabbitMQConfig enables contact change events when Host is set.
type RabbitMQConfig struct {
	Host     string `env:"RABBITMQ_HOST"`
	Port     int    `env:"RABBITMQ_PORT" envDefault:"5672"`
	User     string `env:"RABBITMQ_USER" envDefault:"guest"`
	Password string `env:"RABBITMQ_PASSWORD" envDefault:"guest"`
	Exchange string `env:"RABBITMQ_EXCHANGE" envDefault:"contact_events"`
}

type ContactConfig struct {
	MaxListLimit int `env:"LIST_MAX_LIMIT" envDefault:"100"`
}

// Enabled reports whether an AMQP broker is configured.
func (c RabbitMQConfig) Enabled() bool {
	return c.Host != ""
}

// DSN returns the AMQP connection URL.
func (c RabbitMQConfig) DSN() string {
	return fmt.Sprintf("amqp://%s:%s@%s:%d/", c.User, c.Password, c.Host, c.Port)
}

// Parse reads the configuration from the process environment.
func Parse() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// Load reads an optional .env file and then the environment. It panics when
// the environment holds malformed values.
func Load() *Config {
	_ = godotenv.Load()

	cfg, err := Parse()
	if err != nil {
		panic(err)
	}
	return cfg
}
