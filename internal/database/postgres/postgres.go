// Package postgres implements database.Store on PostgreSQL through pgx.
package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"github.com/ProcedurallyGeneratedGoldblum/virtual-airline-manager-sub000/internal/database"
)

// querier is satisfied by both the pool and a transaction
type querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Repository handles all database operations
type Repository struct {
	pool *pgxpool.Pool // nil inside a transaction
	q    querier
	log  zerolog.Logger
}

var _ database.Store = (*Repository)(nil)

// Connect opens a pool, checks connectivity and migrates the schema.
func Connect(ctx context.Context, url string, log zerolog.Logger) (*Repository, error) {
	pool, err := pgxpool.New(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("failed to create connection pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	r := NewRepository(pool, log)
	if err := r.Migrate(ctx); err != nil {
		pool.Close()
		return nil, err
	}
	r.log.Info().Msg("Connected to PostgreSQL")
	return r, nil
}

// NewRepository creates a new repository
func NewRepository(pool *pgxpool.Pool, log zerolog.Logger) *Repository {
	return &Repository{
		pool: pool,
		q:    pool,
		log:  log.With().Str("storage", "postgres").Logger(),
	}
}

// Migrate creates the tables when missing.
func (r *Repository) Migrate(ctx context.Context) error {
	if _, err := r.q.Exec(ctx, schema); err != nil {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}
	return nil
}

// Close releases the pool.
func (r *Repository) Close() error {
	if r.pool != nil {
		r.pool.Close()
	}
	return nil
}

// Atomic runs fn inside a transaction. Nested calls join the outer one.
func (r *Repository) Atomic(ctx context.Context, fn func(database.Store) error) error {
	if r.pool == nil {
		return fn(r)
	}

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	if err := fn(&Repository{q: tx, log: r.log}); err != nil {
		return err
	}
	return tx.Commit(ctx)
}

// --- Company / Pilot ---

func (r *Repository) GetCompany(ctx context.Context) (*database.CompanyRecord, error) {
	var c database.CompanyRecord
	err := r.q.QueryRow(ctx, `
		SELECT id, name, callsign, headquarters, focus_area, balance, aircraft,
		       total_flights, total_earnings, flight_hours
		FROM company
		WHERE id = $1
	`, database.SingletonID).Scan(
		&c.ID, &c.Name, &c.Callsign, &c.Headquarters, &c.FocusArea, &c.Balance, &c.Aircraft,
		&c.TotalFlights, &c.TotalEarnings, &c.FlightHours,
	)
	if err != nil {
		return nil, notFound(err, "company")
	}
	return &c, nil
}

func (r *Repository) SaveCompany(ctx context.Context, c *database.CompanyRecord) error {
	c.ID = database.SingletonID
	_, err := r.q.Exec(ctx, `
		INSERT INTO company (id, name, callsign, headquarters, focus_area, balance, aircraft,
		                     total_flights, total_earnings, flight_hours)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		ON CONFLICT (id) DO UPDATE SET
			name = EXCLUDED.name,
			callsign = EXCLUDED.callsign,
			headquarters = EXCLUDED.headquarters,
			focus_area = EXCLUDED.focus_area,
			balance = EXCLUDED.balance,
			aircraft = EXCLUDED.aircraft,
			total_flights = EXCLUDED.total_flights,
			total_earnings = EXCLUDED.total_earnings,
			flight_hours = EXCLUDED.flight_hours
	`, c.ID, c.Name, c.Callsign, c.Headquarters, c.FocusArea, c.Balance, c.Aircraft,
		c.TotalFlights, c.TotalEarnings, c.FlightHours)
	if err != nil {
		return fmt.Errorf("failed to save company: %w", err)
	}
	return nil
}

func (r *Repository) GetPilot(ctx context.Context) (*database.PilotRecord, error) {
	var p database.PilotRecord
	err := r.q.QueryRow(ctx, `
		SELECT id, name, rank, total_flights, total_hours, total_distance, total_earnings,
		       rating, on_time_percentage, on_time_flights, experience, next_rank_xp
		FROM pilot
		WHERE id = $1
	`, database.SingletonID).Scan(
		&p.ID, &p.Name, &p.Rank, &p.TotalFlights, &p.TotalHours, &p.TotalDistance, &p.TotalEarnings,
		&p.Rating, &p.OnTimePercentage, &p.OnTimeFlights, &p.Experience, &p.NextRankXP,
	)
	if err != nil {
		return nil, notFound(err, "pilot")
	}
	return &p, nil
}

func (r *Repository) SavePilot(ctx context.Context, p *database.PilotRecord) error {
	p.ID = database.SingletonID
	_, err := r.q.Exec(ctx, `
		INSERT INTO pilot (id, name, rank, total_flights, total_hours, total_distance, total_earnings,
		                   rating, on_time_percentage, on_time_flights, experience, next_rank_xp)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		ON CONFLICT (id) DO UPDATE SET
			name = EXCLUDED.name,
			rank = EXCLUDED.rank,
			total_flights = EXCLUDED.total_flights,
			total_hours = EXCLUDED.total_hours,
			total_distance = EXCLUDED.total_distance,
			total_earnings = EXCLUDED.total_earnings,
			rating = EXCLUDED.rating,
			on_time_percentage = EXCLUDED.on_time_percentage,
			on_time_flights = EXCLUDED.on_time_flights,
			experience = EXCLUDED.experience,
			next_rank_xp = EXCLUDED.next_rank_xp
	`, p.ID, p.Name, p.Rank, p.TotalFlights, p.TotalHours, p.TotalDistance, p.TotalEarnings,
		p.Rating, p.OnTimePercentage, p.OnTimeFlights, p.Experience, p.NextRankXP)
	if err != nil {
		return fmt.Errorf("failed to save pilot: %w", err)
	}
	return nil
}

// --- Fleet ---

const aircraftColumns = `id, registration, "type", manufacturer, model, "year", status, location,
	total_hours, hours_since_inspection, next_inspection_due, "condition",
	condition_details, mel_list, locked_by, current_flight, price`

func (r *Repository) ListAircraft(ctx context.Context) ([]database.AircraftRecord, error) {
	rows, err := r.q.Query(ctx, `SELECT `+aircraftColumns+` FROM fleet ORDER BY seq`)
	if err != nil {
		return nil, fmt.Errorf("failed to query fleet: %w", err)
	}
	defer rows.Close()

	var fleet []database.AircraftRecord
	for rows.Next() {
		var a database.AircraftRecord
		var details, mel []byte
		err := rows.Scan(
			&a.ID, &a.Registration, &a.Type, &a.Manufacturer, &a.Model, &a.Year, &a.Status, &a.Location,
			&a.TotalHours, &a.HoursSinceInspection, &a.NextInspectionDue, &a.Condition,
			&details, &mel, &a.LockedBy, &a.CurrentFlight, &a.Price,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan aircraft: %w", err)
		}
		a.ConditionDetails = details
		a.MELList = mel
		fleet = append(fleet, a)
	}
	return fleet, rows.Err()
}

func (r *Repository) CreateAircraft(ctx context.Context, a *database.AircraftRecord) error {
	_, err := r.q.Exec(ctx, `
		INSERT INTO fleet (`+aircraftColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)
	`, a.ID, a.Registration, a.Type, a.Manufacturer, a.Model, a.Year, a.Status, a.Location,
		a.TotalHours, a.HoursSinceInspection, a.NextInspectionDue, a.Condition,
		jsonArg(a.ConditionDetails), jsonArg(a.MELList), a.LockedBy, a.CurrentFlight, a.Price)
	if err != nil {
		return fmt.Errorf("failed to create aircraft %s: %w", a.ID, err)
	}
	return nil
}

func (r *Repository) UpdateAircraft(ctx context.Context, a *database.AircraftRecord) error {
	result, err := r.q.Exec(ctx, `
		UPDATE fleet SET
			registration = $2, "type" = $3, manufacturer = $4, model = $5, "year" = $6,
			status = $7, location = $8, total_hours = $9, hours_since_inspection = $10,
			next_inspection_due = $11, "condition" = $12, condition_details = $13,
			mel_list = $14, locked_by = $15, current_flight = $16, price = $17
		WHERE id = $1
	`, a.ID, a.Registration, a.Type, a.Manufacturer, a.Model, a.Year, a.Status, a.Location,
		a.TotalHours, a.HoursSinceInspection, a.NextInspectionDue, a.Condition,
		jsonArg(a.ConditionDetails), jsonArg(a.MELList), a.LockedBy, a.CurrentFlight, a.Price)
	if err != nil {
		return fmt.Errorf("failed to update aircraft %s: %w", a.ID, err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("aircraft %s: %w", a.ID, database.ErrNotFound)
	}
	return nil
}

func (r *Repository) DeleteAircraft(ctx context.Context, id string) error {
	result, err := r.q.Exec(ctx, `DELETE FROM fleet WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete aircraft %s: %w", id, err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("aircraft %s: %w", id, database.ErrNotFound)
	}
	return nil
}

// --- Flights ---

func (r *Repository) ListActiveFlights(ctx context.Context) ([]database.ActiveFlightRecord, error) {
	rows, err := r.q.Query(ctx, `
		SELECT id, from_name, from_code, to_name, to_code, duration, distance, cargo_type,
		       passenger_count, priority, weather, notes, aircraft_id, registration, accepted_at, status
		FROM active_flights
		ORDER BY seq
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query active flights: %w", err)
	}
	defer rows.Close()

	var flights []database.ActiveFlightRecord
	for rows.Next() {
		var f database.ActiveFlightRecord
		err := rows.Scan(
			&f.ID, &f.FromName, &f.FromCode, &f.ToName, &f.ToCode, &f.Duration, &f.Distance, &f.CargoType,
			&f.PassengerCount, &f.Priority, &f.Weather, &f.Notes, &f.AircraftID, &f.Registration,
			&f.AcceptedAt, &f.Status,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan active flight: %w", err)
		}
		flights = append(flights, f)
	}
	return flights, rows.Err()
}

func (r *Repository) CreateActiveFlight(ctx context.Context, f *database.ActiveFlightRecord) error {
	_, err := r.q.Exec(ctx, `
		INSERT INTO active_flights (id, from_name, from_code, to_name, to_code, duration, distance,
		                            cargo_type, passenger_count, priority, weather, notes,
		                            aircraft_id, registration, accepted_at, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
	`, f.ID, f.FromName, f.FromCode, f.ToName, f.ToCode, f.Duration, f.Distance,
		f.CargoType, f.PassengerCount, f.Priority, f.Weather, f.Notes,
		f.AircraftID, f.Registration, f.AcceptedAt, f.Status)
	if err != nil {
		return fmt.Errorf("failed to create active flight %s: %w", f.ID, err)
	}
	return nil
}

func (r *Repository) DeleteActiveFlight(ctx context.Context, id string) error {
	result, err := r.q.Exec(ctx, `DELETE FROM active_flights WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete active flight %s: %w", id, err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("active flight %s: %w", id, database.ErrNotFound)
	}
	return nil
}

func (r *Repository) ListCompletedFlights(ctx context.Context) ([]database.CompletedFlightRecord, error) {
	rows, err := r.q.Query(ctx, `
		SELECT id, flight_id, route, aircraft_id, registration, duration, distance, earnings,
		       briefing, completed_at
		FROM completed_flights
		ORDER BY seq
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query completed flights: %w", err)
	}
	defer rows.Close()

	var flights []database.CompletedFlightRecord
	for rows.Next() {
		var c database.CompletedFlightRecord
		var briefing []byte
		err := rows.Scan(
			&c.ID, &c.FlightID, &c.Route, &c.AircraftID, &c.Registration, &c.Duration, &c.Distance,
			&c.Earnings, &briefing, &c.CompletedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan completed flight: %w", err)
		}
		c.Briefing = briefing
		flights = append(flights, c)
	}
	return flights, rows.Err()
}

func (r *Repository) CreateCompletedFlight(ctx context.Context, c *database.CompletedFlightRecord) error {
	_, err := r.q.Exec(ctx, `
		INSERT INTO completed_flights (id, flight_id, route, aircraft_id, registration, duration,
		                               distance, earnings, briefing, completed_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`, c.ID, c.FlightID, c.Route, c.AircraftID, c.Registration, c.Duration,
		c.Distance, c.Earnings, jsonArg(c.Briefing), c.CompletedAt)
	if err != nil {
		return fmt.Errorf("failed to create completed flight %s: %w", c.ID, err)
	}
	return nil
}

// jsonArg sends JSON as text so pgx does not re-encode it; empty becomes NULL.
func jsonArg(j []byte) *string {
	if len(j) == 0 {
		return nil
	}
	s := string(j)
	return &s
}

func notFound(err error, what string) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("%s: %w", what, database.ErrNotFound)
	}
	return fmt.Errorf("failed to get %s: %w", what, err)
}
