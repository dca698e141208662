package config

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/caarlos0/env/v11"

	"github.com/lighty7/taro/internal/domain"
)

type Config struct {
	HTTPAddr       string        `env:"HTTP_ADDR"        envDefault:":8080"`
	LogLevel       slog.Level    `env:"LOG_LEVEL"        envDefault:"info"`
	LogFile        string        `env:"LOG_FILE"`
	SynthesisDelay time.Duration `env:"SYNTHESIS_DELAY"  envDefault:"600ms"`
	DefaultSpread  int           `env:"DEFAULT_SPREAD"   envDefault:"3"`
	RateLimitRPS   float64       `env:"RATE_LIMIT_RPS"   envDefault:"5"`
	RateLimitBurst int           `env:"RATE_LIMIT_BURST" envDefault:"10"`
}

func Load() (Config, error) {
	var c Config
	if err := env.Parse(&c); err != nil {
		return Config{}, fmt.Errorf("parse environment: %w", err)
	}

	if c.SynthesisDelay < 0 {
		return Config{}, fmt.Errorf("invalid SYNTHESIS_DELAY %s: must not be negative", c.SynthesisDelay)
	}
	if !c.Spread().Valid() {
		return Config{}, fmt.Errorf("invalid DEFAULT_SPREAD %d: %w", c.DefaultSpread, domain.ErrInvalidSpreadType)
	}
	if c.RateLimitRPS <= 0 || c.RateLimitBurst <= 0 {
		return Config{}, fmt.Errorf("RATE_LIMIT_RPS and RATE_LIMIT_BURST must be positive")
	}

	return c, nil
}

// Spread returns DefaultSpread as a spread type.
func (c Config) Spread() domain.SpreadType {
	return domain.SpreadType(c.DefaultSpread)
}
