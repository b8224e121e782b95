package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Chdir(t.TempDir()) // no config file present

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "sqlite", cfg.Store.Driver)
	assert.Equal(t, "resale-intel.db", cfg.Store.SQLitePath)
	assert.Equal(t, 300, cfg.Rules.CacheTTLSecs)
	assert.Equal(t, 4, cfg.Engine.BatchConcurrency)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, 20.0, cfg.Server.RatePerSecond)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("RESALE_STORE_DRIVER", "postgres")
	t.Setenv("RESALE_SERVER_PORT", "9090")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "postgres", cfg.Store.Driver)
	assert.Equal(t, 9090, cfg.Server.Port)
}

func TestValidate_SnapshotsScope(t *testing.T) {
	cfg := &Config{Store: StoreConfig{Driver: "sqlite", SQLitePath: "x.db"}}
	assert.NoError(t, cfg.Validate("snapshots"))

	cfg.Store.SQLitePath = ""
	assert.Error(t, cfg.Validate("snapshots"))

	cfg.Store = StoreConfig{Driver: "postgres"}
	assert.Error(t, cfg.Validate("snapshots"))

	cfg.Store.DatabaseURL = "postgres://localhost/resale"
	assert.NoError(t, cfg.Validate("snapshots"))

	cfg.Store.Driver = "oracle"
	assert.Error(t, cfg.Validate("snapshots"))
}

func TestValidate_NotionScope(t *testing.T) {
	cfg := &Config{}
	assert.Error(t, cfg.Validate("rules-notion"))

	cfg.Notion.Token = "secret"
	assert.Error(t, cfg.Validate("rules-notion"))

	cfg.Notion.DriverDB = "db-id"
	assert.NoError(t, cfg.Validate("rules-notion"))
}

func TestValidate_OfflineScopeRequiresNothing(t *testing.T) {
	cfg := &Config{}
	assert.NoError(t, cfg.Validate("decode"))
}

func TestInitLogger(t *testing.T) {
	require.NoError(t, InitLogger(LogConfig{Level: "debug", Format: "console"}))
	require.NoError(t, InitLogger(LogConfig{Level: "info", Format: "json"}))

	err := InitLogger(LogConfig{Level: "shouting"})
	assert.Error(t, err)
}
