// Package sqlitestorage implements database.Store with GORM on a local SQLite file.
package sqlitestorage

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/glebarez/sqlite"
	"github.com/rs/zerolog"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/ProcedurallyGeneratedGoldblum/virtual-airline-manager-sub000/internal/database"
)

// Config holds configuration for the SQLite storage backend.
type Config struct {
	Path string // empty uses a shared in-memory database
}

// Backend stores records through GORM
type Backend struct {
	db  *gorm.DB
	log zerolog.Logger
}

var _ database.Store = (*Backend)(nil)

// New opens the database and migrates the schema.
func New(cfg Config, log zerolog.Logger) (*Backend, error) {
	dsn := "file::memory:?cache=shared"
	if cfg.Path != "" {
		if err := os.MkdirAll(filepath.Dir(cfg.Path), 0o755); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
		dsn = cfg.Path
	}

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		PrepareStmt: true,
		Logger:      logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite database: %w", err)
	}

	if err := db.AutoMigrate(database.AllRecords()...); err != nil {
		return nil, fmt.Errorf("failed to migrate schema: %w", err)
	}

	b := &Backend{db: db, log: log.With().Str("storage", "sqlite").Logger()}
	if cfg.Path != "" {
		b.log.Info().Str("path", cfg.Path).Msg("Using local SQLite DB")
	} else {
		b.log.Info().Msg("Using local SQLite DB in memory")
	}
	return b, nil
}

// Close releases the underlying connection pool.
func (b *Backend) Close() error {
	if b.db == nil {
		return nil
	}
	sqlDB, err := b.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// Atomic runs fn inside a database transaction.
func (b *Backend) Atomic(ctx context.Context, fn func(database.Store) error) error {
	return b.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&txBackend{Backend: Backend{db: tx, log: b.log}})
	})
}

// txBackend is handed to Atomic callbacks. Nested Atomic calls join the
// outer transaction and Close is a no-op.
type txBackend struct {
	Backend
}

func (t *txBackend) Atomic(ctx context.Context, fn func(database.Store) error) error {
	return fn(t)
}

func (t *txBackend) Close() error {
	return nil
}

// --- Company / Pilot ---

func (b *Backend) GetCompany(ctx context.Context) (*database.CompanyRecord, error) {
	var rec database.CompanyRecord
	if err := b.db.WithContext(ctx).First(&rec, database.SingletonID).Error; err != nil {
		return nil, notFound(err, "company")
	}
	return &rec, nil
}

func (b *Backend) SaveCompany(ctx context.Context, rec *database.CompanyRecord) error {
	rec.ID = database.SingletonID
	if err := b.db.WithContext(ctx).Save(rec).Error; err != nil {
		return fmt.Errorf("failed to save company: %w", err)
	}
	return nil
}

func (b *Backend) GetPilot(ctx context.Context) (*database.PilotRecord, error) {
	var rec database.PilotRecord
	if err := b.db.WithContext(ctx).First(&rec, database.SingletonID).Error; err != nil {
		return nil, notFound(err, "pilot")
	}
	return &rec, nil
}

func (b *Backend) SavePilot(ctx context.Context, rec *database.PilotRecord) error {
	rec.ID = database.SingletonID
	if err := b.db.WithContext(ctx).Save(rec).Error; err != nil {
		return fmt.Errorf("failed to save pilot: %w", err)
	}
	return nil
}

// --- Fleet ---

func (b *Backend) ListAircraft(ctx context.Context) ([]database.AircraftRecord, error) {
	var recs []database.AircraftRecord
	if err := b.db.WithContext(ctx).Order("rowid").Find(&recs).Error; err != nil {
		return nil, fmt.Errorf("failed to list aircraft: %w", err)
	}
	return recs, nil
}

func (b *Backend) CreateAircraft(ctx context.Context, rec *database.AircraftRecord) error {
	if err := b.db.WithContext(ctx).Create(rec).Error; err != nil {
		return fmt.Errorf("failed to create aircraft %s: %w", rec.ID, err)
	}
	return nil
}

func (b *Backend) UpdateAircraft(ctx context.Context, rec *database.AircraftRecord) error {
	res := b.db.WithContext(ctx).Model(&database.AircraftRecord{}).
		Where("id = ?", rec.ID).
		Select("*").
		Updates(rec)
	if res.Error != nil {
		return fmt.Errorf("failed to update aircraft %s: %w", rec.ID, res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("aircraft %s: %w", rec.ID, database.ErrNotFound)
	}
	return nil
}

func (b *Backend) DeleteAircraft(ctx context.Context, id string) error {
	res := b.db.WithContext(ctx).Delete(&database.AircraftRecord{}, "id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete aircraft %s: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("aircraft %s: %w", id, database.ErrNotFound)
	}
	return nil
}

// --- Flights ---

func (b *Backend) ListActiveFlights(ctx context.Context) ([]database.ActiveFlightRecord, error) {
	var recs []database.ActiveFlightRecord
	if err := b.db.WithContext(ctx).Order("rowid").Find(&recs).Error; err != nil {
		return nil, fmt.Errorf("failed to list active flights: %w", err)
	}
	return recs, nil
}

func (b *Backend) CreateActiveFlight(ctx context.Context, rec *database.ActiveFlightRecord) error {
	if err := b.db.WithContext(ctx).Create(rec).Error; err != nil {
		return fmt.Errorf("failed to create active flight %s: %w", rec.ID, err)
	}
	return nil
}

func (b *Backend) DeleteActiveFlight(ctx context.Context, id string) error {
	res := b.db.WithContext(ctx).Delete(&database.ActiveFlightRecord{}, "id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete active flight %s: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("active flight %s: %w", id, database.ErrNotFound)
	}
	return nil
}

func (b *Backend) ListCompletedFlights(ctx context.Context) ([]database.CompletedFlightRecord, error) {
	var recs []database.CompletedFlightRecord
	if err := b.db.WithContext(ctx).Order("rowid").Find(&recs).Error; err != nil {
		return nil, fmt.Errorf("failed to list completed flights: %w", err)
	}
	return recs, nil
}

func (b *Backend) CreateCompletedFlight(ctx context.Context, rec *database.CompletedFlightRecord) error {
	if err := b.db.WithContext(ctx).Create(rec).Error; err != nil {
		return fmt.Errorf("failed to create completed flight %s: %w", rec.ID, err)
	}
	return nil
}

func notFound(err error, what string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("%s: %w", what, database.ErrNotFound)
	}
	return fmt.Errorf("failed to get %s: %w", what, err)
}
