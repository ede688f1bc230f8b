// Package database defines the storage port of the game and the snake_case
// records that cross it.
package database

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("not found")

// SingletonID is the primary key of the company and pilot rows.
const SingletonID = 1

// Store is implemented by every storage backend
type Store interface {
	// --- Company / Pilot (singletons) ---
	GetCompany(ctx context.Context) (*CompanyRecord, error)
	SaveCompany(ctx context.Context, rec *CompanyRecord) error
	GetPilot(ctx context.Context) (*PilotRecord, error)
	SavePilot(ctx context.Context, rec *PilotRecord) error

	// --- Fleet ---
	ListAircraft(ctx context.Context) ([]AircraftRecord, error)
	CreateAircraft(ctx context.Context, rec *AircraftRecord) error
	UpdateAircraft(ctx context.Context, rec *AircraftRecord) error
	DeleteAircraft(ctx context.Context, id string) error

	// --- Flights ---
	ListActiveFlights(ctx context.Context) ([]ActiveFlightRecord, error)
	CreateActiveFlight(ctx context.Context, rec *ActiveFlightRecord) error
	DeleteActiveFlight(ctx context.Context, id string) error
	ListCompletedFlights(ctx context.Context) ([]CompletedFlightRecord, error)
	CreateCompletedFlight(ctx context.Context, rec *CompletedFlightRecord) error

	// Atomic runs fn against a transactional view of the store. Nothing fn
	// wrote is visible if it returns an error.
	Atomic(ctx context.Context, fn func(Store) error) error

	Close() error
}
