package database

import (
	"encoding/json"
	"fmt"

	"gorm.io/datatypes"

	"github.com/ProcedurallyGeneratedGoldblum/virtual-airline-manager-sub000/internal/models"
)

// --- Company ---

func ToCompanyRecord(c models.Company) *CompanyRecord {
	return &CompanyRecord{
		ID:            SingletonID,
		Name:          c.Name,
		Callsign:      c.Callsign,
		Headquarters:  c.Headquarters,
		FocusArea:     c.FocusArea,
		Balance:       c.Balance,
		Aircraft:      c.Aircraft,
		TotalFlights:  c.TotalFlights,
		TotalEarnings: c.TotalEarnings,
		FlightHours:   c.FlightHours,
	}
}

func (r *CompanyRecord) ToModel() models.Company {
	return models.Company{
		Name:          r.Name,
		Callsign:      r.Callsign,
		Headquarters:  r.Headquarters,
		FocusArea:     r.FocusArea,
		Balance:       r.Balance,
		Aircraft:      r.Aircraft,
		TotalFlights:  r.TotalFlights,
		TotalEarnings: r.TotalEarnings,
		FlightHours:   r.FlightHours,
	}
}

// --- Pilot ---

func ToPilotRecord(p models.Pilot) *PilotRecord {
	return &PilotRecord{
		ID:               SingletonID,
		Name:             p.Name,
		Rank:             p.Rank,
		TotalFlights:     p.TotalFlights,
		TotalHours:       p.TotalHours,
		TotalDistance:    p.TotalDistance,
		TotalEarnings:    p.TotalEarnings,
		Rating:           p.Rating,
		OnTimePercentage: p.OnTimePercentage,
		OnTimeFlights:    p.OnTimeFlights,
		Experience:       p.Experience,
		NextRankXP:       p.NextRankXP,
	}
}

func (r *PilotRecord) ToModel() models.Pilot {
	return models.Pilot{
		Name:             r.Name,
		Rank:             r.Rank,
		TotalFlights:     r.TotalFlights,
		TotalHours:       r.TotalHours,
		TotalDistance:    r.TotalDistance,
		TotalEarnings:    r.TotalEarnings,
		Rating:           r.Rating,
		OnTimePercentage: r.OnTimePercentage,
		OnTimeFlights:    r.OnTimeFlights,
		Experience:       r.Experience,
		NextRankXP:       r.NextRankXP,
	}
}

// --- Aircraft ---

func ToAircraftRecord(a models.Aircraft) *AircraftRecord {
	rec := &AircraftRecord{
		ID:                   a.ID,
		Registration:         a.Registration,
		Type:                 a.Type,
		Manufacturer:         a.Manufacturer,
		Model:                a.Model,
		Year:                 a.Year,
		Status:               string(a.Status),
		Location:             a.Location,
		TotalHours:           a.TotalHours,
		HoursSinceInspection: a.HoursSinceInspection,
		NextInspectionDue:    a.NextInspectionDue,
		Condition:            string(a.Condition),
		LockedBy:             copyString(a.LockedBy),
		CurrentFlight:        copyString(a.CurrentFlight),
		Price:                a.Price,
	}
	if d := a.ConditionDetails; d != nil {
		rec.ConditionDetails = toJSON(ConditionDetailsRecord{
			Engine:     d.Engine,
			Avionics:   d.Avionics,
			Interior:   d.Interior,
			Airframe:   d.Airframe,
			EngineSMOH: d.EngineSMOH,
		})
	}
	mel := make([]MELItemRecord, 0, len(a.MELList))
	for _, item := range a.MELList {
		mel = append(mel, MELItemRecord{Item: item.Item, Type: string(item.Type)})
	}
	rec.MELList = toJSON(mel)
	return rec
}

func (r *AircraftRecord) ToModel() (models.Aircraft, error) {
	a := models.Aircraft{
		ID:                   r.ID,
		Registration:         r.Registration,
		Type:                 r.Type,
		Manufacturer:         r.Manufacturer,
		Model:                r.Model,
		Year:                 r.Year,
		Status:               models.AircraftStatus(r.Status),
		Location:             r.Location,
		TotalHours:           r.TotalHours,
		HoursSinceInspection: r.HoursSinceInspection,
		NextInspectionDue:    r.NextInspectionDue,
		Condition:            models.ConditionLabel(r.Condition),
		LockedBy:             copyString(r.LockedBy),
		CurrentFlight:        copyString(r.CurrentFlight),
		Price:                r.Price,
		MELList:              []models.MELItem{},
	}

	var details *ConditionDetailsRecord
	if err := fromJSON(r.ConditionDetails, &details); err != nil {
		return models.Aircraft{}, fmt.Errorf("aircraft %s condition_details: %w", r.ID, err)
	}
	if details != nil {
		a.ConditionDetails = &models.ConditionDetails{
			Engine:     details.Engine,
			Avionics:   details.Avionics,
			Interior:   details.Interior,
			Airframe:   details.Airframe,
			EngineSMOH: details.EngineSMOH,
		}
	}

	var mel []MELItemRecord
	if err := fromJSON(r.MELList, &mel); err != nil {
		return models.Aircraft{}, fmt.Errorf("aircraft %s mel_list: %w", r.ID, err)
	}
	for _, item := range mel {
		a.MELList = append(a.MELList, models.MELItem{Item: item.Item, Type: models.MELSeverity(item.Type)})
	}
	return a, nil
}

// --- Active flights ---

func ToActiveFlightRecord(f models.ActiveFlight) *ActiveFlightRecord {
	return &ActiveFlightRecord{
		ID:             f.ID,
		FromName:       f.FromName,
		FromCode:       f.FromCode,
		ToName:         f.ToName,
		ToCode:         f.ToCode,
		Duration:       f.Duration,
		Distance:       f.Distance,
		CargoType:      string(f.Cargo.Type),
		PassengerCount: f.Cargo.Passengers,
		Priority:       string(f.Priority),
		Weather:        f.Weather,
		Notes:          f.Notes,
		AircraftID:     f.AircraftID,
		Registration:   f.Registration,
		AcceptedAt:     f.AcceptedAt,
		Status:         string(f.Status),
	}
}

func (r *ActiveFlightRecord) ToModel() models.ActiveFlight {
	return models.ActiveFlight{
		Flight: models.Flight{
			ID:       r.ID,
			FromName: r.FromName,
			FromCode: r.FromCode,
			ToName:   r.ToName,
			ToCode:   r.ToCode,
			Duration: r.Duration,
			Distance: r.Distance,
			Cargo:    models.Cargo{Type: models.CargoType(r.CargoType), Passengers: r.PassengerCount},
			Priority: models.Priority(r.Priority),
			Weather:  r.Weather,
			Notes:    r.Notes,
		},
		AircraftID:   r.AircraftID,
		Registration: r.Registration,
		AcceptedAt:   r.AcceptedAt,
		Status:       models.FlightStatus(r.Status),
	}
}

// --- Completed flights ---

func ToCompletedFlightRecord(c models.CompletedFlight) *CompletedFlightRecord {
	b := c.Briefing
	return &CompletedFlightRecord{
		ID:           c.ID,
		FlightID:     c.FlightID,
		Route:        c.Route,
		AircraftID:   c.AircraftID,
		Registration: c.Registration,
		Duration:     c.Duration,
		Distance:     c.Distance,
		Earnings:     c.Earnings,
		Briefing: toJSON(BriefingRecord{
			LandingQuality: b.LandingQuality,
			Weather:        b.Weather,
			Defects:        b.Defects,
			Severity:       string(b.Severity),
			ActualDuration: string(b.ActualDuration),
			Earnings:       string(b.Earnings),
			OnTime:         copyBool(b.OnTime),
			Notes:          b.Notes,
		}),
		CompletedAt: c.CompletedAt,
	}
}

func (r *CompletedFlightRecord) ToModel() (models.CompletedFlight, error) {
	var b BriefingRecord
	if err := fromJSON(r.Briefing, &b); err != nil {
		return models.CompletedFlight{}, fmt.Errorf("completed flight %s briefing: %w", r.ID, err)
	}
	return models.CompletedFlight{
		ID:           r.ID,
		FlightID:     r.FlightID,
		Route:        r.Route,
		AircraftID:   r.AircraftID,
		Registration: r.Registration,
		Duration:     r.Duration,
		Distance:     r.Distance,
		Earnings:     r.Earnings,
		Briefing: models.Briefing{
			LandingQuality: b.LandingQuality,
			Weather:        b.Weather,
			Defects:        b.Defects,
			Severity:       models.Severity(b.Severity),
			ActualDuration: models.NumberText(b.ActualDuration),
			Earnings:       models.NumberText(b.Earnings),
			OnTime:         copyBool(b.OnTime),
			Notes:          b.Notes,
		},
		CompletedAt: r.CompletedAt,
	}, nil
}

// toJSON only sees plain structs and slices, which always marshal.
func toJSON(v any) datatypes.JSON {
	b, _ := json.Marshal(v)
	return datatypes.JSON(b)
}

// fromJSON leaves v untouched for empty or SQL NULL columns.
func fromJSON(j datatypes.JSON, v any) error {
	if len(j) == 0 || string(j) == "null" {
		return nil
	}
	return json.Unmarshal(j, v)
}

func copyString(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}

func copyBool(b *bool) *bool {
	if b == nil {
		return nil
	}
	v := *b
	return &v
}
