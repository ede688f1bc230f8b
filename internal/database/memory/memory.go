// Package memory keeps the game in process memory, optionally mirrored to a
// JSON save file.
package memory

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/rs/zerolog"

	"github.com/ProcedurallyGeneratedGoldblum/virtual-airline-manager-sub000/internal/database"
)

// Config holds configuration for the memory backend.
type Config struct {
	SavePath string // empty disables the save file
}

// Backend stores records in memory
type Backend struct {
	cfg  Config
	log  zerolog.Logger
	data *snapshot
	mu   sync.RWMutex
}

var _ database.Store = (*Backend)(nil)

// New creates a memory backend, loading the save file when one exists.
func New(cfg Config, log zerolog.Logger) (*Backend, error) {
	b := &Backend{
		cfg:  cfg,
		log:  log.With().Str("storage", "memory").Logger(),
		data: &snapshot{},
	}
	if cfg.SavePath == "" {
		return b, nil
	}

	raw, err := os.ReadFile(cfg.SavePath)
	if errors.Is(err, os.ErrNotExist) {
		b.log.Info().Str("path", cfg.SavePath).Msg("No save file, starting empty")
		return b, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read save file: %w", err)
	}
	if err := json.Unmarshal(raw, b.data); err != nil {
		return nil, fmt.Errorf("failed to decode save file %s: %w", cfg.SavePath, err)
	}
	b.log.Info().Str("path", cfg.SavePath).Int("aircraft", len(b.data.Aircraft)).Msg("Loaded save file")
	return b, nil
}

// Close cleans up resources
func (b *Backend) Close() error {
	return nil
}

// Atomic runs fn against a copy of the data, which replaces the live data
// only when fn succeeds and the save file was written.
func (b *Backend) Atomic(ctx context.Context, fn func(database.Store) error) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	work := b.data.clone()
	if err := fn(&view{data: work}); err != nil {
		return err
	}
	if err := b.save(work); err != nil {
		return err
	}
	b.data = work
	return nil
}

func (b *Backend) read() *view {
	return &view{data: b.data}
}

func (b *Backend) write(ctx context.Context, fn func(*view) error) error {
	return b.Atomic(ctx, func(s database.Store) error {
		return fn(s.(*view))
	})
}

// save writes through a temp file so a crash never leaves a torn save.
func (b *Backend) save(data *snapshot) error {
	if b.cfg.SavePath == "" {
		return nil
	}
	raw, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode save file: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(b.cfg.SavePath), 0o755); err != nil {
		return fmt.Errorf("failed to create save directory: %w", err)
	}
	tmp := b.cfg.SavePath + ".tmp"
	if err := os.WriteFile(tmp, raw, 0o644); err != nil {
		return fmt.Errorf("failed to write save file: %w", err)
	}
	if err := os.Rename(tmp, b.cfg.SavePath); err != nil {
		return fmt.Errorf("failed to replace save file: %w", err)
	}
	return nil
}

func (b *Backend) GetCompany(ctx context.Context) (*database.CompanyRecord, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.read().GetCompany(ctx)
}

func (b *Backend) SaveCompany(ctx context.Context, rec *database.CompanyRecord) error {
	return b.write(ctx, func(v *view) error { return v.SaveCompany(ctx, rec) })
}

func (b *Backend) GetPilot(ctx context.Context) (*database.PilotRecord, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.read().GetPilot(ctx)
}

func (b *Backend) SavePilot(ctx context.Context, rec *database.PilotRecord) error {
	return b.write(ctx, func(v *view) error { return v.SavePilot(ctx, rec) })
}

func (b *Backend) ListAircraft(ctx context.Context) ([]database.AircraftRecord, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.read().ListAircraft(ctx)
}

func (b *Backend) CreateAircraft(ctx context.Context, rec *database.AircraftRecord) error {
	return b.write(ctx, func(v *view) error { return v.CreateAircraft(ctx, rec) })
}

func (b *Backend) UpdateAircraft(ctx context.Context, rec *database.AircraftRecord) error {
	return b.write(ctx, func(v *view) error { return v.UpdateAircraft(ctx, rec) })
}

func (b *Backend) DeleteAircraft(ctx context.Context, id string) error {
	return b.write(ctx, func(v *view) error { return v.DeleteAircraft(ctx, id) })
}

func (b *Backend) ListActiveFlights(ctx context.Context) ([]database.ActiveFlightRecord, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.read().ListActiveFlights(ctx)
}

func (b *Backend) CreateActiveFlight(ctx context.Context, rec *database.ActiveFlightRecord) error {
	return b.write(ctx, func(v *view) error { return v.CreateActiveFlight(ctx, rec) })
}

func (b *Backend) DeleteActiveFlight(ctx context.Context, id string) error {
	return b.write(ctx, func(v *view) error { return v.DeleteActiveFlight(ctx, id) })
}

func (b *Backend) ListCompletedFlights(ctx context.Context) ([]database.CompletedFlightRecord, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.read().ListCompletedFlights(ctx)
}

func (b *Backend) CreateCompletedFlight(ctx context.Context, rec *database.CompletedFlightRecord) error {
	return b.write(ctx, func(v *view) error { return v.CreateCompletedFlight(ctx, rec) })
}
