package service

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/ProcedurallyGeneratedGoldblum/virtual-airline-manager-sub000/internal/condition"
	"github.com/ProcedurallyGeneratedGoldblum/virtual-airline-manager-sub000/internal/database"
	"github.com/ProcedurallyGeneratedGoldblum/virtual-airline-manager-sub000/internal/finance"
	"github.com/ProcedurallyGeneratedGoldblum/virtual-airline-manager-sub000/internal/fleet"
	"github.com/ProcedurallyGeneratedGoldblum/virtual-airline-manager-sub000/internal/models"
	"github.com/ProcedurallyGeneratedGoldblum/virtual-airline-manager-sub000/internal/pilot"
	"github.com/ProcedurallyGeneratedGoldblum/virtual-airline-manager-sub000/internal/reference"
)

// Event types published to the Notifier.
const (
	EventFlightAccepted     = "flight_accepted"
	EventFlightCompleted    = "flight_completed"
	EventFlightsRefreshed   = "flights_refreshed"
	EventAircraftPurchased  = "aircraft_purchased"
	EventAircraftSold       = "aircraft_sold"
	EventAircraftMaintained = "aircraft_maintained"
)

// GameService defines the game controller interface
type GameService interface {
	State(ctx context.Context) GameState
	Company(ctx context.Context) models.Company
	UpdateCompany(ctx context.Context, profile models.CompanyProfile) (models.Company, error)
	Pilot(ctx context.Context) models.Pilot

	Fleet(ctx context.Context) []models.Aircraft
	AvailableAircraft(ctx context.Context) []models.Aircraft
	GetAircraft(ctx context.Context, aircraftID string) (*models.Aircraft, error)

	AvailableFlights(ctx context.Context) []models.Flight
	RefreshFlights(ctx context.Context) []models.Flight
	ActiveFlights(ctx context.Context) []models.ActiveFlight
	CompletedFlights(ctx context.Context) []models.CompletedFlight
	EstimateFlight(ctx context.Context, flightID, aircraftID string) (*finance.Result, error)
	AcceptFlight(ctx context.Context, flightID, aircraftID string) (*models.ActiveFlight, error)

	PendingBriefing(ctx context.Context) (*models.ActiveFlight, error)
	BeginBriefing(ctx context.Context, flightID string) (*models.ActiveFlight, error)
	CancelBriefing(ctx context.Context)
	CompleteFlight(ctx context.Context, flightID string, briefing models.Briefing) (*CompletionResult, error)

	RepairComponent(ctx context.Context, aircraftID, component string) (*MaintenanceResult, error)
	OverhaulComponent(ctx context.Context, aircraftID, component string) (*MaintenanceResult, error)
	InspectAircraft(ctx context.Context, aircraftID string) (*MaintenanceResult, error)

	MarketListings(ctx context.Context) []models.Listing
	PurchaseAircraft(ctx context.Context, listingID string) (*models.Aircraft, error)
	SellAircraft(ctx context.Context, aircraftID string) (*SaleResult, error)
}

// Notifier receives game events after they are committed
type Notifier interface {
	Publish(eventType string, payload any)
}

// Options tune a new game and the generated boards
type Options struct {
	StartingBalance   float64
	OfferCount        int
	ListingCount      int
	EngineWearPerHour float64
	CompanyName       string
	Callsign          string
	Headquarters      string
	PilotName         string
}

// Dependencies are the collaborators of the service. Rand and Now are
// optional and default to a time-seeded source and time.Now.
type Dependencies struct {
	Store    database.Store
	Notifier Notifier
	Logger   zerolog.Logger
	Options  Options
	Rand     *rand.Rand
	Now      func() time.Time
}

// gameServiceImpl implements GameService
type gameServiceImpl struct {
	store    database.Store
	notifier Notifier
	log      zerolog.Logger
	opts     Options
	rng      *rand.Rand
	now      func() time.Time
	metrics  *metrics

	mu    sync.Mutex
	state *gameState
}

// NewGameService loads the game from the store, seeding a new one when the
// store is empty.
func NewGameService(ctx context.Context, deps Dependencies) (GameService, error) {
	if deps.Store == nil {
		return nil, errors.New("a store is required")
	}
	m, err := newMetrics()
	if err != nil {
		return nil, err
	}

	s := &gameServiceImpl{
		store:    deps.Store,
		notifier: deps.Notifier,
		log:      deps.Logger.With().Str("component", "game").Logger(),
		opts:     withDefaults(deps.Options),
		rng:      deps.Rand,
		now:      deps.Now,
		metrics:  m,
	}
	if s.rng == nil {
		s.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if s.now == nil {
		s.now = time.Now
	}

	if err := s.load(ctx); err != nil {
		return nil, err
	}
	return s, nil
}

func withDefaults(o Options) Options {
	if o.OfferCount <= 0 {
		o.OfferCount = 8
	}
	if o.ListingCount <= 0 {
		o.ListingCount = 6
	}
	if o.Headquarters == "" {
		o.Headquarters = "EGLL"
	}
	if o.PilotName == "" {
		o.PilotName = "Captain"
	}
	return o
}

// load reads every record from the store into memory.
func (s *gameServiceImpl) load(ctx context.Context) error {
	companyRec, err := s.store.GetCompany(ctx)
	if errors.Is(err, database.ErrNotFound) {
		return s.seed(ctx)
	}
	if err != nil {
		return fmt.Errorf("failed to load company: %w", err)
	}

	st := &gameState{company: companyRec.ToModel()}

	pilotRec, err := s.store.GetPilot(ctx)
	switch {
	case errors.Is(err, database.ErrNotFound):
		st.pilot = pilot.New(s.opts.PilotName)
	case err != nil:
		return fmt.Errorf("failed to load pilot: %w", err)
	default:
		st.pilot = pilotRec.ToModel()
	}

	aircraftRecs, err := s.store.ListAircraft(ctx)
	if err != nil {
		return fmt.Errorf("failed to load fleet: %w", err)
	}
	aircraft := make([]models.Aircraft, 0, len(aircraftRecs))
	for i := range aircraftRecs {
		ac, err := aircraftRecs[i].ToModel()
		if err != nil {
			return err
		}
		aircraft = append(aircraft, ac)
	}
	st.fleet = fleet.NewRegistry(aircraft)

	activeRecs, err := s.store.ListActiveFlights(ctx)
	if err != nil {
		return fmt.Errorf("failed to load active flights: %w", err)
	}
	for i := range activeRecs {
		st.active = append(st.active, activeRecs[i].ToModel())
	}

	completedRecs, err := s.store.ListCompletedFlights(ctx)
	if err != nil {
		return fmt.Errorf("failed to load completed flights: %w", err)
	}
	for i := range completedRecs {
		c, err := completedRecs[i].ToModel()
		if err != nil {
			return err
		}
		st.completed = append(st.completed, c)
	}

	for _, f := range st.active {
		ac, err := st.fleet.Get(f.AircraftID)
		if err != nil || ac.LockedBy == nil || *ac.LockedBy != f.ID {
			s.log.Warn().Str("flightId", f.ID).Str("aircraftId", f.AircraftID).
				Msg("Active flight does not hold a lock on its aircraft")
		}
	}

	st.offers = reference.GenerateFlights(s.rng, s.opts.OfferCount, st.fleet.Locations())
	st.listings = reference.GenerateListings(s.rng, s.opts.ListingCount)

	if st.company.Aircraft != st.fleet.Len() {
		s.log.Warn().Int("stored", st.company.Aircraft).Int("fleet", st.fleet.Len()).
			Msg("Company aircraft count out of step with fleet, correcting")
		st.syncAircraftCount()
		if err := s.store.SaveCompany(ctx, database.ToCompanyRecord(st.company)); err != nil {
			return fmt.Errorf("%w: %w", ErrPersistence, err)
		}
	}

	s.state = st
	s.log.Info().
		Str("company", st.company.Name).
		Int("aircraft", st.fleet.Len()).
		Int("activeFlights", len(st.active)).
		Int("completedFlights", len(st.completed)).
		Msg("Game loaded")
	return nil
}

// seed starts a new game with a starter fleet at headquarters.
func (s *gameServiceImpl) seed(ctx context.Context) error {
	st := &gameState{
		company: models.Company{
			Name:         s.opts.CompanyName,
			Callsign:     s.opts.Callsign,
			Headquarters: s.opts.Headquarters,
			Balance:      s.opts.StartingBalance,
		},
		pilot: pilot.New(s.opts.PilotName),
		fleet: fleet.NewRegistry(nil),
	}

	for _, typeID := range []string{"C172", "PA28"} {
		t := reference.AircraftTypeOrGeneric(typeID)
		details := &models.ConditionDetails{Engine: 88, Avionics: 85, Interior: 82, Airframe: 86, EngineSMOH: 650}
		st.fleet.Add(models.Aircraft{
			Registration:      fleet.GenerateRegistration(s.rng, s.opts.Headquarters, st.fleet.Registrations()),
			Type:              t.ID,
			Manufacturer:      t.Manufacturer,
			Model:             t.Model,
			Year:              t.YearMin + (t.YearMax-t.YearMin)/2,
			Status:            models.AircraftStatusAvailable,
			Location:          s.opts.Headquarters,
			TotalHours:        2400,
			NextInspectionDue: 100,
			Condition:         condition.Label(*details),
			ConditionDetails:  details,
			MELList:           []models.MELItem{},
		})
	}
	st.syncAircraftCount()

	err := s.store.Atomic(ctx, func(tx database.Store) error {
		if err := tx.SaveCompany(ctx, database.ToCompanyRecord(st.company)); err != nil {
			return err
		}
		if err := tx.SavePilot(ctx, database.ToPilotRecord(st.pilot)); err != nil {
			return err
		}
		for _, ac := range st.fleet.List() {
			if err := tx.CreateAircraft(ctx, database.ToAircraftRecord(ac)); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to seed new game: %w", err)
	}

	st.offers = reference.GenerateFlights(s.rng, s.opts.OfferCount, st.fleet.Locations())
	st.listings = reference.GenerateListings(s.rng, s.opts.ListingCount)
	s.state = st
	s.log.Info().Str("company", st.company.Name).Int("aircraft", st.fleet.Len()).Msg("Seeded new game")
	return nil
}

// commit persists one user action and then swaps in the new state. On a
// storage failure the live state is left as it was.
func (s *gameServiceImpl) commit(ctx context.Context, next *gameState, writes func(tx database.Store) error) error {
	if err := s.store.Atomic(ctx, writes); err != nil {
		s.log.Error().Err(err).Msg("Failed to persist game state")
		return fmt.Errorf("%w: %w", ErrPersistence, err)
	}
	s.state = next
	return nil
}

func (s *gameServiceImpl) publish(eventType string, payload any) {
	if s.notifier != nil {
		s.notifier.Publish(eventType, payload)
	}
}

func (s *gameServiceImpl) State(ctx context.Context) GameState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.snapshot()
}

func (s *gameServiceImpl) Company(ctx context.Context) models.Company {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.company
}

func (s *gameServiceImpl) UpdateCompany(ctx context.Context, profile models.CompanyProfile) (models.Company, error) {
	if profile.Name == "" {
		return models.Company{}, fmt.Errorf("%w: company name is required", ErrInvalidInput)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.state.clone()
	next.company.Name = profile.Name
	next.company.Callsign = profile.Callsign
	next.company.Headquarters = profile.Headquarters
	next.company.FocusArea = profile.FocusArea

	err := s.commit(ctx, next, func(tx database.Store) error {
		return tx.SaveCompany(ctx, database.ToCompanyRecord(next.company))
	})
	if err != nil {
		return models.Company{}, err
	}
	return next.company, nil
}

func (s *gameServiceImpl) Pilot(ctx context.Context) models.Pilot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.pilot
}

func (s *gameServiceImpl) Fleet(ctx context.Context) []models.Aircraft {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.fleet.List()
}

func (s *gameServiceImpl) AvailableAircraft(ctx context.Context) []models.Aircraft {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.fleet.ListAvailable()
}

func (s *gameServiceImpl) GetAircraft(ctx context.Context, aircraftID string) (*models.Aircraft, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ac, err := s.state.fleet.Get(aircraftID)
	if err != nil {
		return nil, err
	}
	out := ac.Clone()
	return &out, nil
}
