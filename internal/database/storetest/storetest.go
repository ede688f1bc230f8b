// Package storetest holds the behaviour every database.Store must share.
package storetest

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/ProcedurallyGeneratedGoldblum/virtual-airline-manager-sub000/internal/database"
	"github.com/ProcedurallyGeneratedGoldblum/virtual-airline-manager-sub000/internal/models"
)

// StoreSuite runs against a fresh, empty store per test.
type StoreSuite struct {
	suite.Suite
	NewStore func(t *testing.T) database.Store

	store database.Store
	ctx   context.Context
}

// Run executes the suite against stores built by newStore.
func Run(t *testing.T, newStore func(t *testing.T) database.Store) {
	suite.Run(t, &StoreSuite{NewStore: newStore})
}

func (s *StoreSuite) SetupTest() {
	s.ctx = context.Background()
	s.store = s.NewStore(s.T())
}

func (s *StoreSuite) TearDownTest() {
	s.Require().NoError(s.store.Close())
}

func aircraft(id, reg string) *database.AircraftRecord {
	d := &models.ConditionDetails{Engine: 90, Avionics: 80, Interior: 70, Airframe: 85, EngineSMOH: 400}
	return database.ToAircraftRecord(models.Aircraft{
		ID:                id,
		Registration:      reg,
		Type:              "C172",
		Status:            models.AircraftStatusAvailable,
		Location:          "EGLL",
		NextInspectionDue: 100,
		Condition:         models.ConditionGood,
		ConditionDetails:  d,
		MELList:           []models.MELItem{{Item: "Landing light", Type: models.MELMinor}},
		Price:             200000,
	})
}

func (s *StoreSuite) TestSingletonsMissing() {
	_, err := s.store.GetCompany(s.ctx)
	s.ErrorIs(err, database.ErrNotFound)

	_, err = s.store.GetPilot(s.ctx)
	s.ErrorIs(err, database.ErrNotFound)
}

func (s *StoreSuite) TestSaveCompanyUpserts() {
	rec := database.ToCompanyRecord(models.Company{Name: "Skyward", Balance: 1000})
	s.Require().NoError(s.store.SaveCompany(s.ctx, rec))

	rec.Balance = 250.5
	rec.TotalFlights = 2
	s.Require().NoError(s.store.SaveCompany(s.ctx, rec))

	got, err := s.store.GetCompany(s.ctx)
	s.Require().NoError(err)
	s.Equal("Skyward", got.Name)
	s.Equal(250.5, got.Balance)
	s.Equal(2, got.TotalFlights)
}

func (s *StoreSuite) TestSavePilotUpserts() {
	rec := database.ToPilotRecord(models.Pilot{Name: "Amelia", Rank: "Cadet", NextRankXP: 500})
	s.Require().NoError(s.store.SavePilot(s.ctx, rec))

	rec.Experience = 105
	rec.Rating = 13.0 / 3
	rec.OnTimeFlights = 2
	s.Require().NoError(s.store.SavePilot(s.ctx, rec))

	got, err := s.store.GetPilot(s.ctx)
	s.Require().NoError(err)
	s.Equal(105, got.Experience)
	s.InDelta(13.0/3, got.Rating, 1e-9)
	s.Equal(2, got.OnTimeFlights)
	s.Equal(500, got.NextRankXP)
}

func (s *StoreSuite) TestAircraftLifecycle() {
	s.Require().NoError(s.store.CreateAircraft(s.ctx, aircraft("a1", "G-AAAA")))
	s.Require().NoError(s.store.CreateAircraft(s.ctx, aircraft("a2", "G-BBBB")))

	list, err := s.store.ListAircraft(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(list, 2)
	s.Equal("a1", list[0].ID)
	s.Equal("a2", list[1].ID)

	ac, err := list[0].ToModel()
	s.Require().NoError(err)
	s.Require().NotNil(ac.ConditionDetails)
	s.Equal(400.0, ac.ConditionDetails.EngineSMOH)
	s.Len(ac.MELList, 1)

	flight := "F1"
	ac.Status = models.AircraftStatusInFlight
	ac.LockedBy = &flight
	ac.CurrentFlight = &flight
	ac.MELList = nil
	s.Require().NoError(s.store.UpdateAircraft(s.ctx, database.ToAircraftRecord(ac)))

	list, err = s.store.ListAircraft(s.ctx)
	s.Require().NoError(err)
	got, err := list[0].ToModel()
	s.Require().NoError(err)
	s.Equal(models.AircraftStatusInFlight, got.Status)
	s.Require().NotNil(got.LockedBy)
	s.Equal("F1", *got.LockedBy)
	s.Empty(got.MELList)

	// clearing the lock must write NULL back
	got.LockedBy = nil
	got.CurrentFlight = nil
	s.Require().NoError(s.store.UpdateAircraft(s.ctx, database.ToAircraftRecord(got)))
	list, err = s.store.ListAircraft(s.ctx)
	s.Require().NoError(err)
	s.Nil(list[0].LockedBy)

	s.Require().NoError(s.store.DeleteAircraft(s.ctx, "a1"))
	list, err = s.store.ListAircraft(s.ctx)
	s.Require().NoError(err)
	s.Len(list, 1)
	s.Equal("a2", list[0].ID)
}

func (s *StoreSuite) TestAircraftMissing() {
	err := s.store.UpdateAircraft(s.ctx, aircraft("ghost", "G-GHST"))
	s.ErrorIs(err, database.ErrNotFound)

	err = s.store.DeleteAircraft(s.ctx, "ghost")
	s.ErrorIs(err, database.ErrNotFound)
}

func (s *StoreSuite) TestActiveFlights() {
	accepted := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	rec := database.ToActiveFlightRecord(models.ActiveFlight{
		Flight: models.Flight{
			ID: "F1", FromCode: "EGLL", ToCode: "LFPG", Distance: 188,
			Cargo: models.Cargo{Type: models.CargoFreight}, Priority: models.PriorityUrgent,
		},
		AircraftID: "a1",
		AcceptedAt: accepted,
		Status:     models.FlightStatusInProgress,
	})
	s.Require().NoError(s.store.CreateActiveFlight(s.ctx, rec))

	list, err := s.store.ListActiveFlights(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(list, 1)
	got := list[0].ToModel()
	s.Equal("LFPG", got.ToCode)
	s.Equal(models.CargoFreight, got.Cargo.Type)
	s.True(accepted.Equal(got.AcceptedAt))

	s.Require().NoError(s.store.DeleteActiveFlight(s.ctx, "F1"))
	s.ErrorIs(s.store.DeleteActiveFlight(s.ctx, "F1"), database.ErrNotFound)

	list, err = s.store.ListActiveFlights(s.ctx)
	s.Require().NoError(err)
	s.Empty(list)
}

func (s *StoreSuite) TestCompletedFlightsAppend() {
	onTime := false
	for i, id := range []string{"c1", "c2", "c3"} {
		rec := database.ToCompletedFlightRecord(models.CompletedFlight{
			ID:          id,
			FlightID:    "F" + id,
			Route:       "EGLL → LFPG",
			Earnings:    float64(100 * (i + 1)),
			Briefing:    models.Briefing{ActualDuration: "1.5", Severity: models.SeverityMinor, OnTime: &onTime},
			CompletedAt: time.Date(2024, 5, 1, 10+i, 0, 0, 0, time.UTC),
		})
		s.Require().NoError(s.store.CreateCompletedFlight(s.ctx, rec))
	}

	list, err := s.store.ListCompletedFlights(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(list, 3)
	s.Equal("c1", list[0].ID)
	s.Equal("c3", list[2].ID)

	got, err := list[1].ToModel()
	s.Require().NoError(err)
	s.Equal(200.0, got.Earnings)
	s.Equal(models.NumberText("1.5"), got.Briefing.ActualDuration)
	s.Require().NotNil(got.Briefing.OnTime)
	s.False(*got.Briefing.OnTime)
}

func (s *StoreSuite) TestAtomicCommits() {
	err := s.store.Atomic(s.ctx, func(tx database.Store) error {
		if err := tx.SaveCompany(s.ctx, database.ToCompanyRecord(models.Company{Name: "Skyward", Aircraft: 1})); err != nil {
			return err
		}
		return tx.CreateAircraft(s.ctx, aircraft("a1", "G-AAAA"))
	})
	s.Require().NoError(err)

	c, err := s.store.GetCompany(s.ctx)
	s.Require().NoError(err)
	s.Equal(1, c.Aircraft)

	list, err := s.store.ListAircraft(s.ctx)
	s.Require().NoError(err)
	s.Len(list, 1)
}

func (s *StoreSuite) TestAtomicRollsBack() {
	s.Require().NoError(s.store.SaveCompany(s.ctx, database.ToCompanyRecord(models.Company{Name: "Skyward", Balance: 100})))

	boom := errors.New("boom")
	err := s.store.Atomic(s.ctx, func(tx database.Store) error {
		if err := tx.SaveCompany(s.ctx, database.ToCompanyRecord(models.Company{Name: "Skyward", Balance: 5})); err != nil {
			return err
		}
		if err := tx.CreateAircraft(s.ctx, aircraft("a1", "G-AAAA")); err != nil {
			return err
		}
		return boom
	})
	s.ErrorIs(err, boom)

	c, err := s.store.GetCompany(s.ctx)
	s.Require().NoError(err)
	s.Equal(100.0, c.Balance)

	list, err := s.store.ListAircraft(s.ctx)
	s.Require().NoError(err)
	s.Empty(list)
}

func (s *StoreSuite) TestAtomicRollsBackOnMissingRow() {
	err := s.store.Atomic(s.ctx, func(tx database.Store) error {
		if err := tx.CreateAircraft(s.ctx, aircraft("a1", "G-AAAA")); err != nil {
			return err
		}
		return tx.DeleteActiveFlight(s.ctx, "nope")
	})
	s.ErrorIs(err, database.ErrNotFound)

	list, err := s.store.ListAircraft(s.ctx)
	s.Require().NoError(err)
	s.Empty(list)
}
