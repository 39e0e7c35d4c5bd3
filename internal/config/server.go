package config

import "time"

type Server struct {
	ListenAddress   string        `env:"HTTP_LISTEN_ADDRESS" envDefault:":8080"`
	ShutdownTimeout time.Duration `env:"HTTP_SHUTDOWN_TIMEOUT" envDefault:"10s"`
}
