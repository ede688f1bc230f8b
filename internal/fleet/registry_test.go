package fleet

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/ProcedurallyGeneratedGoldblum/virtual-airline-manager-sub000/internal/models"
)

type RegistrySuite struct {
	suite.Suite
	reg *Registry
}

func (s *RegistrySuite) SetupTest() {
	s.reg = NewRegistry([]models.Aircraft{
		{ID: "a1", Registration: "G-ABCD", Type: "C172", Status: models.AircraftStatusAvailable, Location: "EGLL"},
		{ID: "a2", Registration: "G-EFGH", Type: "PA28", Status: models.AircraftStatusMaintenance, Location: "EGKK"},
		{ID: "a3", Registration: "N12345", Type: "SR22", Status: models.AircraftStatusAvailable, Location: "EGLL"},
	})
}

func TestRegistrySuite(t *testing.T) {
	suite.Run(t, new(RegistrySuite))
}

func (s *RegistrySuite) TestListAvailable() {
	ids := idsOf(s.reg.ListAvailable())
	s.Equal([]string{"a1", "a3"}, ids)
}

func (s *RegistrySuite) TestLockRemovesFromAvailable() {
	ac, err := s.reg.Lock("a1", "F1")
	s.Require().NoError(err)
	s.Equal(models.AircraftStatusInFlight, ac.Status)
	s.Require().NotNil(ac.LockedBy)
	s.Equal("F1", *ac.LockedBy)
	s.Equal("F1", *ac.CurrentFlight)

	s.Equal([]string{"a3"}, idsOf(s.reg.ListAvailable()))
}

func (s *RegistrySuite) TestLockTwiceFails() {
	_, err := s.reg.Lock("a1", "F1")
	s.Require().NoError(err)

	_, err = s.reg.Lock("a1", "F2")
	s.ErrorIs(err, ErrAircraftLocked)

	ac, _ := s.reg.Get("a1")
	s.Equal("F1", *ac.LockedBy)
}

func (s *RegistrySuite) TestLockMissing() {
	_, err := s.reg.Lock("nope", "F1")
	s.ErrorIs(err, ErrAircraftNotFound)
}

func (s *RegistrySuite) TestUnlock() {
	_, err := s.reg.Lock("a3", "F1")
	s.Require().NoError(err)

	ac, err := s.reg.Unlock("a3", models.AircraftStatusMaintenance)
	s.Require().NoError(err)
	s.Nil(ac.LockedBy)
	s.Nil(ac.CurrentFlight)
	s.Equal(models.AircraftStatusMaintenance, ac.Status)
	s.Equal([]string{"a1"}, idsOf(s.reg.ListAvailable()))
}

func (s *RegistrySuite) TestAddAssignsID() {
	added := s.reg.Add(models.Aircraft{Registration: "D-ABCD", Status: models.AircraftStatusAvailable})
	s.NotEmpty(added.ID)
	s.Equal(4, s.reg.Len())

	got, err := s.reg.Get(added.ID)
	s.Require().NoError(err)
	s.Equal("D-ABCD", got.Registration)
}

func (s *RegistrySuite) TestRemove() {
	ac, err := s.reg.Remove("a2")
	s.Require().NoError(err)
	s.Equal("G-EFGH", ac.Registration)
	s.Equal(2, s.reg.Len())
	s.Equal([]string{"a1", "a3"}, idsOf(s.reg.List()))

	_, err = s.reg.Remove("a2")
	s.ErrorIs(err, ErrAircraftNotFound)
}

func (s *RegistrySuite) TestRemoveLocked() {
	_, err := s.reg.Lock("a1", "F1")
	s.Require().NoError(err)

	_, err = s.reg.Remove("a1")
	s.ErrorIs(err, ErrAircraftLocked)
	s.Equal(3, s.reg.Len())
}

func (s *RegistrySuite) TestCloneIsIndependent() {
	clone := s.reg.Clone()
	_, err := clone.Lock("a1", "F1")
	s.Require().NoError(err)

	orig, _ := s.reg.Get("a1")
	s.False(orig.IsLocked())
	s.Equal(models.AircraftStatusAvailable, orig.Status)
}

func (s *RegistrySuite) TestLocations() {
	s.Equal([]string{"EGLL", "EGKK"}, s.reg.Locations())
}

func idsOf(list []models.Aircraft) []string {
	ids := make([]string, 0, len(list))
	for _, ac := range list {
		ids = append(ids, ac.ID)
	}
	return ids
}

func TestSellPrice(t *testing.T) {
	tests := []struct {
		name string
		ac   models.Aircraft
		want float64
	}{
		{
			name: "no price and good label",
			ac:   models.Aircraft{Type: "C172", Condition: models.ConditionGood},
			want: 76800,
		},
		{
			name: "known price with detailed health",
			ac: models.Aircraft{
				Type:             "C172",
				Price:            100000,
				ConditionDetails: &models.ConditionDetails{Engine: 80, Airframe: 60, Avionics: 50, Interior: 10},
			},
			// (40 + 18 + 10) / 100 = 0.68
			want: 54400,
		},
		{
			name: "unknown type falls back to generic base price",
			ac:   models.Aircraft{Type: "ZZZ", Condition: models.ConditionPoor},
			want: 36000,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SellPrice(&tt.ac))
		})
	}
}

func TestConditionFactor_DetailsWinOverLabel(t *testing.T) {
	ac := &models.Aircraft{
		Condition:        models.ConditionMaintenanceRequired,
		ConditionDetails: &models.ConditionDetails{Engine: 100, Airframe: 100, Avionics: 100},
	}
	require.InDelta(t, 1.0, ConditionFactor(ac), 1e-9)
}
