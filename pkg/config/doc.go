// Package config loads typed configuration from environment variables.
//
// It wraps `github.com/joho/godotenv` and `github.com/caarlos0/env/v11`:
// an optional `.env` file is read once, then the process environment is
// parsed into a struct annotated with `env` tags. Each struct type is parsed
// once and cached, so hot paths can call Load freely.
//
// # Usage
//
//	type Config struct {
//	    PauseStream  bool   `env:"SESSION_STRATEGY_PAUSE_STREAM" envDefault:"false"`
//	    UserProperty string `env:"SESSION_STRATEGY_USER_PROPERTY" envDefault:"user"`
//	}
//
//	var cfg Config
//	if err := config.Load(&cfg); err != nil {
//	    log.Fatalf("parsing env: %v", err)
//	}
//
// WithPrefix namespaces the tags (and the cache entry), WithEnvFiles loads
// specific .env files instead of the default one.
//
// # Error Handling
//
// Sentinel errors can be compared with errors.Is:
//
//   - ErrParsingConfig  – env vars could not be parsed into the struct.
//   - ErrLoadingEnvFile – a file passed to WithEnvFiles could not be read.
//   - ErrNilPointer     – nil pointer passed to Load or MustLoad.
//
// # Testing Helpers
//
// Reset clears the cache so tests can change the environment between loads.
package config
