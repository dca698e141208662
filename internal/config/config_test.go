package config_test

import (
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lighty7/taro/internal/config"
	"github.com/lighty7/taro/internal/domain"
)

func TestLoad_Defaults(t *testing.T) {
	c, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, ":8080", c.HTTPAddr)
	assert.Equal(t, slog.LevelInfo, c.LogLevel)
	assert.Equal(t, 600*time.Millisecond, c.SynthesisDelay)
	assert.Equal(t, domain.SpreadThreeCard, c.Spread())
	assert.Equal(t, 5.0, c.RateLimitRPS)
	assert.Equal(t, 10, c.RateLimitBurst)
	assert.Empty(t, c.LogFile)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("HTTP_ADDR", ":9090")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("SYNTHESIS_DELAY", "0s")
	t.Setenv("DEFAULT_SPREAD", "5")
	t.Setenv("LOG_FILE", "/tmp/taro.log")

	c, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, ":9090", c.HTTPAddr)
	assert.Equal(t, slog.LevelDebug, c.LogLevel)
	assert.Zero(t, c.SynthesisDelay)
	assert.Equal(t, domain.SpreadFiveCard, c.Spread())
	assert.Equal(t, "/tmp/taro.log", c.LogFile)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		key, value string
	}{
		{"LOG_LEVEL", "loud"},
		{"SYNTHESIS_DELAY", "soon"},
		{"SYNTHESIS_DELAY", "-1s"},
		{"DEFAULT_SPREAD", "4"},
		{"DEFAULT_SPREAD", "three"},
		{"RATE_LIMIT_RPS", "0"},
		{"RATE_LIMIT_BURST", "-2"},
	}

	for _, tt := range tests {
		t.Run(tt.key+"="+tt.value, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)
			_, err := config.Load()
			assert.Error(t, err)
		})
	}
}
