package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

const devSessionSecret = "mkpp-dev-secret"

type Config struct {
	Port           string        `envconfig:"PORT" default:"8080"`
	Env            string        `envconfig:"APP_ENV" default:"development"`
	SessionSecret  string        `envconfig:"SESSION_SECRET"`
	SessionTTL     time.Duration `envconfig:"SESSION_TTL" default:"2h"`
	SessionCookie  string        `envconfig:"SESSION_COOKIE" default:"mkpp_visitor"`
	SweepSchedule  string        `envconfig:"SWEEP_SCHEDULE" default:"@every 10m"`
	SubmitRate     float64       `envconfig:"SUBMIT_RATE" default:"1"`
	SubmitBurst    int           `envconfig:"SUBMIT_BURST" default:"5"`
	Timezone       string        `envconfig:"TIMEZONE" default:"Europe/Moscow"`
	AllowedOrigins []string      `envconfig:"ALLOWED_ORIGINS"`
}

// Load reads an optional .env file and then the process environment.
func Load() (*Config, error) {
	_ = godotenv.Load()
	return FromEnv()
}

func FromEnv() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("read env config: %w", err)
	}
	if cfg.SessionSecret == "" {
		if cfg.IsProduction() {
			return nil, errors.New("SESSION_SECRET not set")
		}
		cfg.SessionSecret = devSessionSecret
	}
	if cfg.SessionTTL <= 0 {
		return nil, fmt.Errorf("SESSION_TTL must be positive, got %s", cfg.SessionTTL)
	}
	if cfg.SubmitRate <= 0 || cfg.SubmitBurst <= 0 {
		return nil, errors.New("SUBMIT_RATE and SUBMIT_BURST must be positive")
	}
	return &cfg, nil
}

func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

// Location resolves the shop's time zone. When TIMEZONE cannot be loaded it
// returns a fixed UTC+3 together with the load error.
func (c *Config) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return time.FixedZone("MSK", 3*60*60), fmt.Errorf("load TIMEZONE %q: %w", c.Timezone, err)
	}
	return loc, nil
}
