package main

import (
	"github.com/dmitrymomot/validoc/pkg/docserver"
	"github.com/dmitrymomot/validoc/pkg/validoc"
)

// Config is the environment configuration of the binary. An empty LogFormat
// follows the environment: text in development, JSON in production.
type Config struct {
	Env       string           `env:"VALIDOC_ENV" envDefault:"development"`
	Language  string           `env:"VALIDOC_LANG" envDefault:"en"`
	MaxDepth  int              `env:"VALIDOC_MAX_DEPTH" envDefault:"32"`
	Catalog   string           `env:"VALIDOC_CATALOG"`
	LogLevel  string           `env:"VALIDOC_LOG_LEVEL" envDefault:"info"`
	LogFormat string           `env:"VALIDOC_LOG_FORMAT"`
	HTTP      docserver.Config `envPrefix:"VALIDOC_HTTP_"`
}

func defaultConfig() Config {
	return Config{
		Env:      "development",
		Language: "en",
		MaxDepth: validoc.DefaultMaxDepth,
		LogLevel: "info",
		HTTP:     docserver.DefaultConfig(),
	}
}
