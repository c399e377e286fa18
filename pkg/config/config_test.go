package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	assert.NoError(t, err)

	assert.Equal(t, "development", cfg.Environment)
	assert.Equal(t, "synthesis_engine", cfg.Database.Database)
	assert.Equal(t, "config/concept_mappings.json", cfg.Engine.ConceptMappingsPath)
	assert.Equal(t, "config/golden_gradings.json", cfg.Engine.GoldenGradingsPath)
	assert.Equal(t, 5, cfg.Engine.SuggestionLimit)
	assert.Equal(t, 3600, cfg.Engine.ReportCacheTTLSeconds)
	assert.False(t, cfg.Engine.HistoryEnabled)
	assert.False(t, cfg.OTEL.Enabled)
}

func TestLoad_EngineOverrides(t *testing.T) {
	t.Setenv("CONCEPT_MAPPINGS_PATH", "/data/mappings.json")
	t.Setenv("SUGGESTION_LIMIT", "3")
	t.Setenv("HISTORY_ENABLED", "true")

	cfg, err := Load()
	assert.NoError(t, err)

	assert.Equal(t, "/data/mappings.json", cfg.Engine.ConceptMappingsPath)
	assert.Equal(t, 3, cfg.Engine.SuggestionLimit)
	assert.True(t, cfg.Engine.HistoryEnabled)
}

func TestLoad_InvalidIntFallsBack(t *testing.T) {
	t.Setenv("DB_PORT", "not-a-number")

	cfg, err := Load()
	assert.NoError(t, err)
	assert.Equal(t, 5432, cfg.Database.Port)
}

func TestDatabaseDSN(t *testing.T) {
	c := DatabaseConfig{
		Host:     "db.internal",
		Port:     5433,
		User:     "engine",
		Password: "secret",
		Database: "synthesis",
		SSLMode:  "require",
	}
	assert.Equal(t, "host=db.internal port=5433 user=engine password=secret dbname=synthesis sslmode=require", c.DatabaseDSN())
}

func TestRedisAddr(t *testing.T) {
	c := RedisConfig{Host: "cache.internal", Port: 6380}
	assert.Equal(t, "cache.internal:6380", c.RedisAddr())
}
