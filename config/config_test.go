package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "5250", cfg.Server.Port)
	assert.Equal(t, "data/properties.json", cfg.Catalog.SeedPath)
	assert.True(t, cfg.Catalog.WatchSeed)
	assert.Equal(t, "sha256", cfg.Auth.HashAlgorithm)
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("SERVER_PORT", "8080")
	t.Setenv("HASH_ALGORITHM", "bcrypt")
	t.Setenv("CORS_ORIGINS", "http://a.test,http://b.test")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "bcrypt", cfg.Auth.HashAlgorithm)
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.Server.AllowedOrigins)
}
