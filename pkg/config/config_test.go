package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	for _, k := range []string{"PORT", "STORE", "ROSTER_CSV", "DATABASE_URL", "SQLITE_PATH", "LOG_LEVEL", "ROSTER_CACHE_SIZE", "MATCH_LIMIT", "MATCH_TEXT_WEIGHT"} {
		t.Setenv(k, "")
	}
	cfg := Load()
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, StoreCSV, cfg.Store)
	assert.Equal(t, "directorio.csv", cfg.RosterCSV)
	assert.Equal(t, "directorio.sqlite", cfg.SQLitePath)
	assert.Equal(t, 8, cfg.RosterCacheSize)
	assert.Equal(t, 15, cfg.MatchLimit)
	assert.InDelta(t, 0.70, cfg.MatchTextWeight, 1e-9)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("STORE", "SQLite")
	assert.Equal(t, StoreSQLite, Load().Store)

	t.Setenv("STORE", "Postgres")
	t.Setenv("MATCH_LIMIT", "5")
	t.Setenv("MATCH_TEXT_WEIGHT", "0.6")
	cfg := Load()
	assert.Equal(t, StorePostgres, cfg.Store)
	assert.Equal(t, 5, cfg.MatchLimit)
	assert.InDelta(t, 0.6, cfg.MatchTextWeight, 1e-9)

	t.Setenv("MATCH_TEXT_WEIGHT", "1.5")
	t.Setenv("MATCH_LIMIT", "many")
	cfg = Load()
	assert.InDelta(t, 0.70, cfg.MatchTextWeight, 1e-9)
	assert.Equal(t, 15, cfg.MatchLimit)

	t.Setenv("MATCH_LIMIT", "-1")
	assert.Equal(t, 15, Load().MatchLimit)
	t.Setenv("MATCH_LIMIT", "0")
	assert.Equal(t, 0, Load().MatchLimit)
}
