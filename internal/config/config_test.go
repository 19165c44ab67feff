package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setBaseEnv(t *testing.T) {
	t.Helper()
	t.Setenv("SESSION_SECRET", "test_secret")
	t.Setenv("PORT", "")
	t.Setenv("DATABASE_URL", "")
	t.Setenv("POSTGRES_PORT", "")
	t.Setenv("SESSION_TTL", "")
	t.Setenv("TAX_RATE", "")
	t.Setenv("GO_ENV", "")
	t.Setenv("LOG_LEVEL", "")
	t.Setenv("FE_URL", "")
}

func TestLoad_Defaults(t *testing.T) {
	setBaseEnv(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, ":8080", cfg.Addr())
	assert.Equal(t, 5432, cfg.PostgresPort)
	assert.Equal(t, 2*time.Hour, cfg.SessionTTL)
	assert.Equal(t, "0.08", cfg.TaxRate.String())
	assert.Equal(t, "dev", cfg.GoEnv)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Contains(t, cfg.DSN(), "port=5432")
}

func TestLoad_SessionSecretRequired(t *testing.T) {
	setBaseEnv(t)
	t.Setenv("SESSION_SECRET", "")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "SESSION_SECRET is required")
}

func TestLoad_Overrides(t *testing.T) {
	setBaseEnv(t)
	t.Setenv("PORT", ":9000")
	t.Setenv("DATABASE_URL", "postgres://u:p@db:5432/x")
	t.Setenv("SESSION_TTL", "30m")
	t.Setenv("TAX_RATE", "0.1")
	t.Setenv("GO_ENV", "prod")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":9000", cfg.Addr())
	assert.Equal(t, "postgres://u:p@db:5432/x", cfg.DSN())
	assert.Equal(t, 30*time.Minute, cfg.SessionTTL)
	assert.Equal(t, "0.1", cfg.TaxRate.String())
	assert.Equal(t, "prod", cfg.GoEnv)
}

func TestLoad_InvalidValues(t *testing.T) {
	cases := []struct {
		name string
		key  string
		val  string
	}{
		{"tax rate over one", "TAX_RATE", "1.5"},
		{"tax rate text", "TAX_RATE", "abc"},
		{"port text", "POSTGRES_PORT", "x"},
		{"ttl text", "SESSION_TTL", "soon"},
		{"ttl negative", "SESSION_TTL", "-1m"},
		{"unknown env", "GO_ENV", "staging"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			setBaseEnv(t)
			t.Setenv(tc.key, tc.val)

			_, err := Load()
			assert.Error(t, err)
		})
	}
}
