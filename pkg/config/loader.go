package config

import (
	"errors"
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Load resolves Config from the process environment.
//
// When no files are given the default `.env` in the working directory is
// loaded if it exists; a missing default file is ignored. Explicitly named
// files must exist. godotenv never overrides variables that are already set,
// so the real environment takes precedence over any file.
func Load(files ...string) (Config, error) {
	if len(files) == 0 {
		// The .env file is optional
		_ = godotenv.Load()
	} else if err := godotenv.Load(files...); err != nil {
		return Config{}, errors.Join(ErrLoadingEnvFile, err)
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, errors.Join(ErrParsingConfig, err)
	}
	return cfg, nil
}

// MustLoad works like Load but panics if the configuration cannot be parsed.
func MustLoad(files ...string) Config {
	cfg, err := Load(files...)
	if err != nil {
		panic(fmt.Sprintf("Failed to load required configuration: %v", err))
	}
	return cfg
}
