package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_TracingSampleRatio(t *testing.T) {
	t.Run("defaults to full sampling", func(t *testing.T) {
		require.NoError(t, LoadConfig())
		assert.Equal(t, 1.0, AppConfig.TracingSampleRatio)
	})

	t.Run("accepts a partial ratio", func(t *testing.T) {
		t.Setenv("TRACING_SAMPLE_RATIO", "0.1")
		require.NoError(t, LoadConfig())
		assert.Equal(t, 0.1, AppConfig.TracingSampleRatio)
	})

	t.Run("rejects a non-numeric value", func(t *testing.T) {
		t.Setenv("TRACING_SAMPLE_RATIO", "lots")
		assert.Error(t, LoadConfig())
	})

	t.Run("rejects a ratio above one", func(t *testing.T) {
		t.Setenv("TRACING_SAMPLE_RATIO", "1.5")
		assert.Error(t, LoadConfig())
	})

	t.Run("rejects a negative ratio", func(t *testing.T) {
		t.Setenv("TRACING_SAMPLE_RATIO", "-0.5")
		assert.Error(t, LoadConfig())
	})
}

func TestLoadConfig_DedupRateLimit(t *testing.T) {
	t.Run("rejects zero", func(t *testing.T) {
		t.Setenv("DEDUP_RATE_LIMIT", "0")
		assert.Error(t, LoadConfig())
	})

	t.Run("rejects a negative limit", func(t *testing.T) {
		t.Setenv("DEDUP_RATE_LIMIT", "-5")
		assert.Error(t, LoadConfig())
	})
}
