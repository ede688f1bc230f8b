package main

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ProcedurallyGeneratedGoldblum/virtual-airline-manager-sub000/internal/config"
	"github.com/ProcedurallyGeneratedGoldblum/virtual-airline-manager-sub000/internal/database/memory"
	sqlitestorage "github.com/ProcedurallyGeneratedGoldblum/virtual-airline-manager-sub000/internal/database/sqlite"
)

func TestCreateStore(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	t.Run("sqlite", func(t *testing.T) {
		store, err := createStore(ctx, config.StorageConfig{
			Type:   "sqlite",
			SQLite: config.SQLiteConfig{Path: filepath.Join(dir, "db", "airline.db")},
		}, zerolog.Nop())
		require.NoError(t, err)
		defer store.Close()
		assert.IsType(t, &sqlitestorage.Backend{}, store)
	})

	t.Run("memory", func(t *testing.T) {
		store, err := createStore(ctx, config.StorageConfig{
			Type:   "memory",
			Memory: config.MemoryConfig{SavePath: filepath.Join(dir, "save.json")},
		}, zerolog.Nop())
		require.NoError(t, err)
		defer store.Close()
		assert.IsType(t, &memory.Backend{}, store)
	})

	t.Run("unknown", func(t *testing.T) {
		_, err := createStore(ctx, config.StorageConfig{Type: "mongodb"}, zerolog.Nop())
		assert.Error(t, err)
	})
}
