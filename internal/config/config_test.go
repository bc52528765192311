package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_Defaults(t *testing.T) {
	cfg, err := Parse()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Addr())
	assert.Equal(t, ":9091", cfg.MetricsAddr)
	assert.Equal(t, StoreMemory, cfg.StoreDriver)
	assert.True(t, cfg.OwnerEndpointAnonymousAllowed)
	assert.Zero(t, cfg.RateLimitRPS)
	assert.Equal(t, 20, cfg.RateLimitBurst)
	assert.Empty(t, cfg.AuthJWTSecret)
	assert.Empty(t, cfg.OTelEndpoint)
}

func TestParse_Overrides(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("STORE_DRIVER", "SQLite")
	t.Setenv("SQLITE_PATH", "/tmp/owners.db")
	t.Setenv("OWNER_ENDPOINT_ANONYMOUS_ALLOWED", "false")
	t.Setenv("RATE_LIMIT_RPS", "2.5")

	cfg, err := Parse()
	require.NoError(t, err)

	assert.Equal(t, ":9000", cfg.Addr())
	assert.Equal(t, StoreSQLite, cfg.StoreDriver)
	assert.Equal(t, "/tmp/owners.db", cfg.SQLitePath)
	assert.False(t, cfg.OwnerEndpointAnonymousAllowed)
	assert.Equal(t, 2.5, cfg.RateLimitRPS)
}

func TestParse_PostgresRequiresDSN(t *testing.T) {
	t.Setenv("STORE_DRIVER", "postgres")

	_, err := Parse()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DB_DSN")
}

func TestParse_UnknownDriver(t *testing.T) {
	t.Setenv("STORE_DRIVER", "mongo")

	_, err := Parse()
	require.Error(t, err)
}

func TestParse_InvalidBool(t *testing.T) {
	t.Setenv("OWNER_ENDPOINT_ANONYMOUS_ALLOWED", "maybe")

	_, err := Parse()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse env")
}
