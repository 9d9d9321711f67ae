// Package config resolves the process configuration of the form mailer from
// environment variables.
//
// It wraps `github.com/joho/godotenv` and `github.com/caarlos0/env/v11`:
//
//   - An optional `.env` file is loaded first. Variables already present in
//     the process environment always win over the file.
//   - The environment is parsed into Config using field tags. Every field has
//     a default, so an empty environment still yields a usable value.
//
// # Usage
//
//	cfg, err := config.Load()
//	if err != nil {
//	    log.Fatalf("loading config: %v", err)
//	}
//
//	srv := httpserver.NewFromConfig(cfg.HTTP, httpserver.WithAddr(cfg.Addr()))
//
// Config is resolved once in main and passed by value to the components that
// need it. There is no package-level state.
//
// # Error Handling
//
// Absence of a variable is never an error. Load fails only when a present
// value cannot be converted to the field type (for example SMTP_PORT=abc) or
// when an explicitly requested env file is missing:
//
//   - `ErrParsingConfig` – failed to parse env vars into Config.
//   - `ErrLoadingEnvFile` – an explicitly named .env file could not be read.
package config
