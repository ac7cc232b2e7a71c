package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

const (
	defaultHTTPTimeout = 15 * time.Second
	defaultRateLimit   = 10
	defaultRateBurst   = 20
)

var ErrMissingBaseURL = errors.New("API_BASE_URL is not set")

type Config struct {
	APIBaseURL  string
	AppEnv      string
	HTTPTimeout time.Duration
	RateLimit   float64
	RateBurst   int
}

// LoadConfig reads .env (if present) and the process environment.
func LoadConfig() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		APIBaseURL:  os.Getenv("API_BASE_URL"),
		AppEnv:      os.Getenv("APP_ENV"),
		HTTPTimeout: defaultHTTPTimeout,
		RateLimit:   defaultRateLimit,
		RateBurst:   defaultRateBurst,
	}

	if cfg.APIBaseURL == "" {
		return nil, ErrMissingBaseURL
	}

	if v := os.Getenv("HTTP_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return nil, fmt.Errorf("invalid HTTP_TIMEOUT %q: %w", v, err)
		}
		cfg.HTTPTimeout = d
	}

	if v := os.Getenv("API_RATE_LIMIT"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid API_RATE_LIMIT %q: %w", v, err)
		}
		cfg.RateLimit = f
	}

	if v := os.Getenv("API_RATE_BURST"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("invalid API_RATE_BURST %q: %w", v, err)
		}
		cfg.RateBurst = n
	}

	return cfg, nil
}
