package config

import (
	"fmt"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

type Config struct {
	App      App
	Server   Server
	Provider Provider
	Postgres Postgres
}

type App struct {
	Name           string `env:"APP_NAME" envDefault:"investintake"`
	Version        string `env:"APP_VERSION" envDefault:"dev"`
	LogBodyLimit   int    `env:"LOG_BODY_LIMIT" envDefault:"4096"`
	ProbeAddress   string `env:"PROBE_LISTEN_ADDRESS" envDefault:":8081"`
	MetricsAddress string `env:"METRICS_LISTEN_ADDRESS" envDefault:":8082"`
}

func Load() (Config, error) {
	_ = godotenv.Load()

	var config Config

	if err := env.Parse(&config); err != nil {
		return Config{}, fmt.Errorf("env.Parse: %w", err)
	}

	return config, nil
}
