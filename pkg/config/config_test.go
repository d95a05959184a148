package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8090", cfg.Port)
	assert.Equal(t, "development", cfg.Env)
	assert.Equal(t, 2, cfg.Decision.MinOccurrenceCount)
	assert.InDelta(t, 0.15, cfg.Decision.MinOccurrenceRate, 1e-9)
	assert.Equal(t, "0 0 5 * * *", cfg.Sweep.Schedule)
	assert.Equal(t, 1, cfg.Sweep.HorizonDays)
	assert.Equal(t, 10, cfg.Database.MaxConns)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("PORT", "9999")
	t.Setenv("ENV", "production")
	t.Setenv("DECISION_MIN_OCCURRENCE_COUNT", "3")
	t.Setenv("DECISION_MIN_OCCURRENCE_RATE", "0.25")
	t.Setenv("SWEEP_HORIZON_DAYS", "7")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9999", cfg.Port)
	assert.Equal(t, "production", cfg.Env)
	assert.Equal(t, 3, cfg.Decision.MinOccurrenceCount)
	assert.InDelta(t, 0.25, cfg.Decision.MinOccurrenceRate, 1e-9)
	assert.Equal(t, 7, cfg.Sweep.HorizonDays)
}

func TestLoad_InvalidValuesFallBack(t *testing.T) {
	t.Setenv("DECISION_MIN_OCCURRENCE_COUNT", "not-a-number")
	t.Setenv("DECISION_MIN_OCCURRENCE_RATE", "abc")
	t.Setenv("DB_MAX_CONN_LIFETIME", "garbage")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 2, cfg.Decision.MinOccurrenceCount)
	assert.InDelta(t, 0.15, cfg.Decision.MinOccurrenceRate, 1e-9)
}

func TestLoad_InvalidEnv(t *testing.T) {
	t.Setenv("ENV", "qa")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ENV must be one of")
}
