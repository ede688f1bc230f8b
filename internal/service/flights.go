package service

import (
	"context"
	"fmt"
	"math"
	"slices"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/ProcedurallyGeneratedGoldblum/virtual-airline-manager-sub000/internal/condition"
	"github.com/ProcedurallyGeneratedGoldblum/virtual-airline-manager-sub000/internal/database"
	"github.com/ProcedurallyGeneratedGoldblum/virtual-airline-manager-sub000/internal/finance"
	"github.com/ProcedurallyGeneratedGoldblum/virtual-airline-manager-sub000/internal/models"
	"github.com/ProcedurallyGeneratedGoldblum/virtual-airline-manager-sub000/internal/pilot"
	"github.com/ProcedurallyGeneratedGoldblum/virtual-airline-manager-sub000/internal/reference"
)

// CompletionResult is everything a briefing changed
type CompletionResult struct {
	Flight   models.CompletedFlight `json:"flight"`
	Aircraft models.Aircraft        `json:"aircraft"`
	Company  models.Company         `json:"company"`
	Pilot    models.Pilot           `json:"pilot"`
	Finance  *finance.Result        `json:"finance"`
}

func (s *gameServiceImpl) AvailableFlights(ctx context.Context) []models.Flight {
	s.mu.Lock()
	defer s.mu.Unlock()
	return nonNil(slices.Clone(s.state.offers))
}

// RefreshFlights regenerates the dispatch board from the fleet's locations.
// Offers are not persisted so nothing is written to the store.
func (s *gameServiceImpl) RefreshFlights(ctx context.Context) []models.Flight {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state.offers = reference.GenerateFlights(s.rng, s.opts.OfferCount, s.state.fleet.Locations())
	offers := slices.Clone(s.state.offers)
	s.log.Debug().Int("offers", len(offers)).Msg("Dispatch board refreshed")
	s.publish(EventFlightsRefreshed, offers)
	return offers
}

func (s *gameServiceImpl) ActiveFlights(ctx context.Context) []models.ActiveFlight {
	s.mu.Lock()
	defer s.mu.Unlock()
	return nonNil(slices.Clone(s.state.active))
}

func (s *gameServiceImpl) CompletedFlights(ctx context.Context) []models.CompletedFlight {
	s.mu.Lock()
	defer s.mu.Unlock()
	return nonNil(slices.Clone(s.state.completed))
}

// EstimateFlight prices an offer or an active flight for the given aircraft.
func (s *gameServiceImpl) EstimateFlight(ctx context.Context, flightID, aircraftID string) (*finance.Result, error) {
	if aircraftID == "" {
		return nil, ErrAircraftRequired
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	var flight *models.Flight
	if i := s.state.offerIndex(flightID); i >= 0 {
		flight = &s.state.offers[i]
	} else if i := s.state.activeIndex(flightID); i >= 0 {
		flight = &s.state.active[i].Flight
	} else {
		return nil, fmt.Errorf("%w: %s", ErrFlightNotFound, flightID)
	}

	ac, err := s.state.fleet.Get(aircraftID)
	if err != nil {
		return nil, err
	}
	return finance.Calculate(flight, ac), nil
}

// AcceptFlight assigns an available aircraft to an offer and moves the offer
// to the active flights.
func (s *gameServiceImpl) AcceptFlight(ctx context.Context, flightID, aircraftID string) (*models.ActiveFlight, error) {
	logger := s.log.With().Str("flightId", flightID).Str("aircraftId", aircraftID).Logger()

	if aircraftID == "" {
		logger.Warn().Msg("Flight accepted without an aircraft")
		return nil, ErrAircraftRequired
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.state.offerIndex(flightID)
	if idx < 0 {
		return nil, fmt.Errorf("%w: %s", ErrFlightNotFound, flightID)
	}
	current, err := s.state.fleet.Get(aircraftID)
	if err != nil {
		return nil, err
	}
	if current.IsLocked() || current.Status != models.AircraftStatusAvailable {
		logger.Warn().Str("status", string(current.Status)).Msg("Aircraft cannot be assigned")
		return nil, fmt.Errorf("%w: %s is %s", ErrAircraftUnavailable, current.Registration, current.Status)
	}

	next := s.state.clone()
	offer := next.offers[idx]
	ac, err := next.fleet.Lock(aircraftID, offer.ID)
	if err != nil {
		return nil, err
	}
	active := models.ActiveFlight{
		Flight:       offer,
		AircraftID:   ac.ID,
		Registration: ac.Registration,
		AcceptedAt:   s.now().UTC(),
		Status:       models.FlightStatusInProgress,
	}
	next.active = append(next.active, active)
	next.offers = slices.Delete(next.offers, idx, idx+1)

	err = s.commit(ctx, next, func(tx database.Store) error {
		if err := tx.UpdateAircraft(ctx, database.ToAircraftRecord(*ac)); err != nil {
			return err
		}
		return tx.CreateActiveFlight(ctx, database.ToActiveFlightRecord(active))
	})
	if err != nil {
		return nil, err
	}

	logger.Info().Str("registration", active.Registration).Str("route", active.Route()).Msg("Flight accepted")
	s.metrics.flightAccepted(ctx, string(active.Cargo.Type))
	s.publish(EventFlightAccepted, active)
	return &active, nil
}

// PendingBriefing returns the active flight awaiting a briefing.
func (s *gameServiceImpl) PendingBriefing(ctx context.Context) (*models.ActiveFlight, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state.pendingBriefing == nil {
		return nil, ErrNoPendingBriefing
	}
	i := s.state.activeIndex(*s.state.pendingBriefing)
	if i < 0 {
		s.state.pendingBriefing = nil
		return nil, ErrNoPendingBriefing
	}
	out := s.state.active[i]
	return &out, nil
}

// BeginBriefing marks an active flight as the one awaiting a briefing.
func (s *gameServiceImpl) BeginBriefing(ctx context.Context, flightID string) (*models.ActiveFlight, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.state.activeIndex(flightID)
	if i < 0 {
		return nil, fmt.Errorf("%w: %s", ErrFlightNotFound, flightID)
	}
	id := flightID
	s.state.pendingBriefing = &id
	out := s.state.active[i]
	return &out, nil
}

// CancelBriefing drops the pending briefing target.
func (s *gameServiceImpl) CancelBriefing(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.pendingBriefing = nil
}

// CompleteFlight closes an active flight with the pilot's briefing. Every
// referenced record is checked before anything changes and all writes are
// committed together.
func (s *gameServiceImpl) CompleteFlight(ctx context.Context, flightID string, briefing models.Briefing) (*CompletionResult, error) {
	logger := s.log.With().Str("flightId", flightID).Logger()

	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.state.activeIndex(flightID)
	if idx < 0 {
		return nil, fmt.Errorf("%w: %s", ErrFlightNotFound, flightID)
	}
	active := s.state.active[idx]
	current, err := s.state.fleet.Get(active.AircraftID)
	if err != nil {
		logger.Error().Err(err).Str("aircraftId", active.AircraftID).Msg("Active flight references a missing aircraft")
		return nil, err
	}
	if current.LockedBy == nil || *current.LockedBy != active.ID {
		logger.Error().Str("aircraftId", current.ID).Msg("Active flight does not hold its aircraft lock")
		return nil, fmt.Errorf("%w: %s", ErrFlightNotLocked, current.Registration)
	}

	next := s.state.clone()
	ac, _ := next.fleet.Get(active.AircraftID)

	hours := parseNumber(string(briefing.ActualDuration))
	briefingEarnings := parseNumber(string(briefing.Earnings))
	fin := finance.Calculate(&active.Flight, ac)

	if s.opts.EngineWearPerHour > 0 && hours > 0 {
		if err := condition.Wear(ac, models.ComponentEngine, hours*s.opts.EngineWearPerHour); err != nil {
			return nil, err
		}
	}
	if briefing.Severity == models.SeverityMajor {
		condition.Degrade(ac)
	}

	status := models.AircraftStatusAvailable
	if defects := strings.TrimSpace(briefing.Defects); defects != "" {
		status = models.AircraftStatusMaintenance
		severity := models.MELMinor
		if briefing.Severity == models.SeverityMajor {
			severity = models.MELMajor
		}
		ac.MELList = append(ac.MELList, models.MELItem{Item: defects, Type: severity})
	}

	ac.TotalHours += hours
	ac.HoursSinceInspection += hours
	ac.NextInspectionDue -= hours
	if ac.ConditionDetails != nil {
		ac.ConditionDetails.EngineSMOH += hours
	}
	ac.Location = active.ToCode
	if _, err := next.fleet.Unlock(ac.ID, status); err != nil {
		return nil, err
	}

	// The ledger follows the calculator when it can price the flight; the
	// flight record keeps what the pilot entered.
	revenue, profit := briefingEarnings, briefingEarnings
	if fin != nil {
		revenue, profit = fin.Revenue, fin.Profit
	}
	recorded := revenue
	if briefingEarnings > 0 {
		recorded = briefingEarnings
	}

	completed := models.CompletedFlight{
		ID:           uuid.NewString(),
		FlightID:     active.ID,
		Route:        active.Route(),
		AircraftID:   ac.ID,
		Registration: ac.Registration,
		Duration:     hours,
		Distance:     active.Distance,
		Earnings:     recorded,
		Briefing:     briefing,
		CompletedAt:  s.now().UTC(),
	}
	next.completed = append(next.completed, completed)
	next.active = slices.Delete(next.active, idx, idx+1)
	next.pendingBriefing = nil

	next.pilot = pilot.ApplyFlight(next.pilot, pilot.FlightResult{
		Hours:    hours,
		Distance: active.Distance,
		Earnings: recorded,
		Severity: briefing.Severity,
		OnTime:   briefing.WasOnTime(),
	})
	next.company.TotalFlights++
	next.company.TotalEarnings += revenue
	next.company.FlightHours += hours
	next.company.Balance += profit

	aircraft := ac.Clone()
	err = s.commit(ctx, next, func(tx database.Store) error {
		if err := tx.UpdateAircraft(ctx, database.ToAircraftRecord(aircraft)); err != nil {
			return err
		}
		if err := tx.DeleteActiveFlight(ctx, active.ID); err != nil {
			return err
		}
		if err := tx.CreateCompletedFlight(ctx, database.ToCompletedFlightRecord(completed)); err != nil {
			return err
		}
		if err := tx.SaveCompany(ctx, database.ToCompanyRecord(next.company)); err != nil {
			return err
		}
		return tx.SavePilot(ctx, database.ToPilotRecord(next.pilot))
	})
	if err != nil {
		return nil, err
	}

	logger.Info().
		Str("registration", aircraft.Registration).
		Float64("hours", hours).
		Float64("revenue", revenue).
		Float64("profit", profit).
		Str("status", string(aircraft.Status)).
		Msg("Flight completed")
	s.metrics.flightCompleted(ctx, revenue, string(briefing.Severity))

	result := &CompletionResult{
		Flight:   completed,
		Aircraft: aircraft,
		Company:  next.company,
		Pilot:    next.pilot,
		Finance:  fin,
	}
	s.publish(EventFlightCompleted, result)
	return result, nil
}

// parseNumber reads a user-entered number; unparseable or negative input is zero.
func parseNumber(v string) float64 {
	f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
	if err != nil || f < 0 || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return f
}
