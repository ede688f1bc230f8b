package database

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"

	"github.com/ProcedurallyGeneratedGoldblum/virtual-airline-manager-sub000/internal/models"
)

func ptr[T any](v T) *T { return &v }

func sampleAircraft() models.Aircraft {
	return models.Aircraft{
		ID:                   "ac-1",
		Registration:         "G-ABCD",
		Type:                 "C172",
		Manufacturer:         "Cessna",
		Model:                "172 Skyhawk",
		Year:                 2004,
		Status:               models.AircraftStatusInFlight,
		Location:             "EGLL",
		TotalHours:           4312.5,
		HoursSinceInspection: 42.1,
		NextInspectionDue:    -3.4,
		Condition:            models.ConditionFair,
		ConditionDetails: &models.ConditionDetails{
			Engine: 71, Avionics: 64, Interior: 80, Airframe: 66, EngineSMOH: 1320,
		},
		MELList: []models.MELItem{
			{Item: "Landing light inop", Type: models.MELMinor},
			{Item: "Vacuum pump", Type: models.MELMajor},
		},
		LockedBy:      ptr("flight-9"),
		CurrentFlight: ptr("flight-9"),
		Price:         185000,
	}
}

func sampleBriefing() models.Briefing {
	return models.Briefing{
		LandingQuality: "smooth",
		Weather:        "IFR",
		Defects:        "Vacuum pump",
		Severity:       models.SeverityMajor,
		ActualDuration: "1.4",
		Earnings:       "820",
		OnTime:         ptr(false),
		Notes:          "Diverted around weather",
	}
}

// jsonKeys decodes a record into a generic map to inspect the boundary names.
func jsonKeys(t *testing.T, v any) map[string]any {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	var m map[string]any
	require.NoError(t, json.Unmarshal(b, &m))
	return m
}

func TestCompanyRoundTrip(t *testing.T) {
	c := models.Company{
		Name: "Skyward", Callsign: "SKW", Headquarters: "EGLL", FocusArea: "charter",
		Balance: 12345.67, Aircraft: 3, TotalFlights: 12, TotalEarnings: 9999.5, FlightHours: 33.3,
	}

	rec := ToCompanyRecord(c)
	assert.EqualValues(t, SingletonID, rec.ID)
	assert.Equal(t, c, rec.ToModel())

	keys := jsonKeys(t, rec)
	for _, k := range []string{"focus_area", "total_flights", "total_earnings", "flight_hours"} {
		assert.Contains(t, keys, k)
	}
}

func TestPilotRoundTrip(t *testing.T) {
	p := models.Pilot{
		Name: "Amelia", Rank: "Captain", TotalFlights: 40, TotalHours: 88.8, TotalDistance: 9000,
		TotalEarnings: 42000, Rating: 4.6666666667, OnTimePercentage: 93, Experience: 5400, NextRankXP: 12000,
	}

	rec := ToPilotRecord(p)
	assert.Equal(t, p, rec.ToModel())

	keys := jsonKeys(t, rec)
	for _, k := range []string{"total_hours", "total_distance", "on_time_percentage", "next_rank_xp"} {
		assert.Contains(t, keys, k)
	}
}

func TestAircraftRoundTrip(t *testing.T) {
	a := sampleAircraft()

	rec := ToAircraftRecord(a)
	got, err := rec.ToModel()
	require.NoError(t, err)
	assert.Equal(t, a, got)

	// the record must not share pointers with the model
	*a.LockedBy = "changed"
	assert.Equal(t, "flight-9", *rec.LockedBy)

	keys := jsonKeys(t, rec)
	for _, k := range []string{
		"total_hours", "hours_since_inspection", "next_inspection_due",
		"condition_details", "mel_list", "locked_by", "current_flight",
	} {
		assert.Contains(t, keys, k)
	}
	details := keys["condition_details"].(map[string]any)
	assert.Contains(t, details, "engine_smoh")
}

func TestAircraftRoundTrip_Unlocked(t *testing.T) {
	a := sampleAircraft()
	a.LockedBy = nil
	a.CurrentFlight = nil
	a.ConditionDetails = nil
	a.MELList = []models.MELItem{}

	rec := ToAircraftRecord(a)
	assert.Nil(t, rec.ConditionDetails)
	assert.JSONEq(t, "[]", string(rec.MELList))

	got, err := rec.ToModel()
	require.NoError(t, err)
	assert.Equal(t, a, got)

	keys := jsonKeys(t, rec)
	assert.Nil(t, keys["locked_by"])
	assert.Nil(t, keys["condition_details"])
}

func TestAircraftToModel_NullColumns(t *testing.T) {
	rec := ToAircraftRecord(sampleAircraft())
	rec.ConditionDetails = datatypes.JSON("null")
	rec.MELList = datatypes.JSON("null")

	got, err := rec.ToModel()
	require.NoError(t, err)
	assert.Nil(t, got.ConditionDetails)
	assert.Empty(t, got.MELList)
	assert.NotNil(t, got.MELList)
}

func TestAircraftToModel_CorruptJSON(t *testing.T) {
	rec := ToAircraftRecord(sampleAircraft())
	rec.MELList = datatypes.JSON("{not json")

	_, err := rec.ToModel()
	assert.Error(t, err)
}

func TestActiveFlightRoundTrip(t *testing.T) {
	f := models.ActiveFlight{
		Flight: models.Flight{
			ID: "flight-9", FromName: "London Heathrow", FromCode: "EGLL", ToName: "Paris Charles de Gaulle",
			ToCode: "LFPG", Duration: 1.6, Distance: 188,
			Cargo:    models.Cargo{Type: models.CargoPassengers, Passengers: 3},
			Priority: models.PriorityUrgent, Weather: "MVFR", Notes: "Business charter",
		},
		AircraftID:   "ac-1",
		Registration: "G-ABCD",
		AcceptedAt:   time.Date(2024, 5, 1, 10, 30, 0, 0, time.UTC),
		Status:       models.FlightStatusInProgress,
	}

	rec := ToActiveFlightRecord(f)
	assert.Equal(t, f, rec.ToModel())

	keys := jsonKeys(t, rec)
	for _, k := range []string{"from_code", "to_code", "cargo_type", "passenger_count", "aircraft_id", "accepted_at"} {
		assert.Contains(t, keys, k)
	}
}

func TestCompletedFlightRoundTrip(t *testing.T) {
	c := models.CompletedFlight{
		ID:           "cf-1",
		FlightID:     "flight-9",
		Route:        "EGLL → LFPG",
		AircraftID:   "ac-1",
		Registration: "G-ABCD",
		Duration:     1.4,
		Distance:     188,
		Earnings:     820,
		Briefing:     sampleBriefing(),
		CompletedAt:  time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC),
	}

	rec := ToCompletedFlightRecord(c)
	got, err := rec.ToModel()
	require.NoError(t, err)
	assert.Equal(t, c, got)

	keys := jsonKeys(t, rec)
	assert.Contains(t, keys, "flight_id")
	assert.Contains(t, keys, "completed_at")
	briefing := keys["briefing"].(map[string]any)
	for _, k := range []string{"landing_quality", "actual_duration", "on_time"} {
		assert.Contains(t, briefing, k)
	}
}

func TestCompletedFlightRoundTrip_OnTimeOmitted(t *testing.T) {
	c := models.CompletedFlight{ID: "cf-2", Briefing: models.Briefing{ActualDuration: "abc"}}

	got, err := ToCompletedFlightRecord(c).ToModel()
	require.NoError(t, err)
	assert.Nil(t, got.Briefing.OnTime)
	assert.True(t, got.Briefing.WasOnTime())
}
