package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_DefaultsWithoutFile(t *testing.T) {
	t.Cleanup(viper.Reset)

	require.NoError(t, Load(t.TempDir()))

	cfg, err := Get()
	require.NoError(t, err)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, ":8080", cfg.Server.Addr())
	assert.Equal(t, 15*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.False(t, cfg.Log.Pretty)
	assert.Equal(t, "sqlite", cfg.Storage.Type)
	assert.Equal(t, "data/airline.db", cfg.Storage.SQLite.Path)
	assert.Equal(t, "data/savegame.json", cfg.Storage.Memory.SavePath)
	assert.Equal(t, 250000.0, cfg.Game.StartingBalance)
	assert.Equal(t, 8, cfg.Game.OfferCount)
	assert.Equal(t, 6, cfg.Game.ListingCount)
	assert.Zero(t, cfg.Game.Seed)
	assert.Zero(t, cfg.Game.EngineWearPerHour)
	assert.Equal(t, "EGLL", cfg.Game.Headquarters)
}

func TestLoad_WithConfigFile(t *testing.T) {
	t.Cleanup(viper.Reset)

	dir := t.TempDir()
	cfg := `{
		"server": { "port": 9090, "writeTimeout": "1m" },
		"log": { "level": "debug", "pretty": true },
		"storage": { "type": "memory", "memory": { "savePath": "/tmp/save.json" } },
		"game": { "startingBalance": 1000, "seed": 42, "headquarters": "KJFK" }
	}`
	require.NoError(t, os.WriteFile(filepath.Join(dir, FileName), []byte(cfg), 0644))

	require.NoError(t, Load(dir))
	got, err := Get()
	require.NoError(t, err)

	assert.Equal(t, 9090, got.Server.Port)
	assert.Equal(t, time.Minute, got.Server.WriteTimeout)
	assert.Equal(t, "debug", got.Log.Level)
	assert.True(t, got.Log.Pretty)
	assert.Equal(t, "memory", got.Storage.Type)
	assert.Equal(t, "/tmp/save.json", got.Storage.Memory.SavePath)
	assert.Equal(t, 1000.0, got.Game.StartingBalance)
	assert.Equal(t, int64(42), got.Game.Seed)
	assert.Equal(t, "KJFK", got.Game.Headquarters)
	// untouched keys keep their defaults
	assert.Equal(t, 8, got.Game.OfferCount)
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Cleanup(viper.Reset)
	t.Setenv("AIRLINE_STORAGE_TYPE", "postgres")
	t.Setenv("AIRLINE_SERVER_PORT", "7000")

	require.NoError(t, Load(t.TempDir()))
	got, err := Get()
	require.NoError(t, err)

	assert.Equal(t, "postgres", got.Storage.Type)
	assert.Equal(t, 7000, got.Server.Port)
}

func TestLoad_InvalidFile(t *testing.T) {
	t.Cleanup(viper.Reset)

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, FileName), []byte(`{nope`), 0644))

	err := Load(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error reading config file")
}
