package main

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/ProcedurallyGeneratedGoldblum/virtual-airline-manager-sub000/internal/config"
	"github.com/ProcedurallyGeneratedGoldblum/virtual-airline-manager-sub000/internal/database"
	"github.com/ProcedurallyGeneratedGoldblum/virtual-airline-manager-sub000/internal/database/memory"
	pgstorage "github.com/ProcedurallyGeneratedGoldblum/virtual-airline-manager-sub000/internal/database/postgres"
	sqlitestorage "github.com/ProcedurallyGeneratedGoldblum/virtual-airline-manager-sub000/internal/database/sqlite"
)

func createStore(ctx context.Context, cfg config.StorageConfig, log zerolog.Logger) (database.Store, error) {
	switch cfg.Type {
	case "postgres":
		repo, err := pgstorage.Connect(ctx, cfg.Postgres.URL, log)
		if err != nil {
			return nil, fmt.Errorf("failed to create Postgres backend: %w", err)
		}
		log.Info().Msg("Postgres storage backend initialized")
		return repo, nil

	case "memory":
		backend, err := memory.New(memory.Config{SavePath: cfg.Memory.SavePath}, log)
		if err != nil {
			return nil, fmt.Errorf("failed to create memory backend: %w", err)
		}
		log.Info().Msg("Memory storage backend initialized")
		return backend, nil

	case "sqlite", "":
		backend, err := sqlitestorage.New(sqlitestorage.Config{Path: cfg.SQLite.Path}, log)
		if err != nil {
			return nil, fmt.Errorf("failed to create SQLite backend: %w", err)
		}
		log.Info().Msg("SQLite storage backend initialized")
		return backend, nil

	default:
		return nil, fmt.Errorf("unknown storage type %q", cfg.Type)
	}
}
