// Package config loads typed configuration from the process environment.
//
// Values come from `env` struct tags parsed by github.com/caarlos0/env/v11.
// Before the first parse the default .env file of the working directory is
// applied through github.com/joho/godotenv if it exists; LoadEnv applies
// additional files explicitly. Each configuration type is parsed once and
// cached by value:
//
//	type Config struct {
//		Language string `env:"VALIDOC_LANGUAGE" envDefault:"en"`
//		MaxDepth int    `env:"VALIDOC_MAX_DEPTH" envDefault:"32"`
//	}
//
//	var cfg Config
//	if err := config.Load(&cfg); err != nil {
//		return err
//	}
//
// ResetCache and ForceReload exist for tests and for commands that change the
// environment after start-up.
package config
