package memory

import (
	"context"
	"fmt"

	"gorm.io/datatypes"

	"github.com/ProcedurallyGeneratedGoldblum/virtual-airline-manager-sub000/internal/database"
)

// snapshot is the whole game as stored, and the save file layout.
type snapshot struct {
	Company          *database.CompanyRecord          `json:"company"`
	Pilot            *database.PilotRecord            `json:"pilot"`
	Aircraft         []database.AircraftRecord        `json:"aircraft"`
	ActiveFlights    []database.ActiveFlightRecord    `json:"active_flights"`
	CompletedFlights []database.CompletedFlightRecord `json:"completed_flights"`
}

func (s *snapshot) clone() *snapshot {
	out := &snapshot{
		Aircraft:         make([]database.AircraftRecord, 0, len(s.Aircraft)),
		ActiveFlights:    append([]database.ActiveFlightRecord(nil), s.ActiveFlights...),
		CompletedFlights: make([]database.CompletedFlightRecord, 0, len(s.CompletedFlights)),
	}
	if s.Company != nil {
		c := *s.Company
		out.Company = &c
	}
	if s.Pilot != nil {
		p := *s.Pilot
		out.Pilot = &p
	}
	for _, rec := range s.Aircraft {
		out.Aircraft = append(out.Aircraft, cloneAircraft(rec))
	}
	for _, rec := range s.CompletedFlights {
		rec.Briefing = cloneJSON(rec.Briefing)
		out.CompletedFlights = append(out.CompletedFlights, rec)
	}
	return out
}

func cloneAircraft(rec database.AircraftRecord) database.AircraftRecord {
	rec.ConditionDetails = cloneJSON(rec.ConditionDetails)
	rec.MELList = cloneJSON(rec.MELList)
	if rec.LockedBy != nil {
		v := *rec.LockedBy
		rec.LockedBy = &v
	}
	if rec.CurrentFlight != nil {
		v := *rec.CurrentFlight
		rec.CurrentFlight = &v
	}
	return rec
}

func cloneJSON(j datatypes.JSON) datatypes.JSON {
	if j == nil {
		return nil
	}
	return append(datatypes.JSON(nil), j...)
}

// view implements database.Store directly over a snapshot. The backend
// guards it; a view handed to Atomic callbacks is private to that call.
type view struct {
	data *snapshot
}

var _ database.Store = (*view)(nil)

func (v *view) Atomic(ctx context.Context, fn func(database.Store) error) error {
	return fn(v)
}

func (v *view) Close() error {
	return nil
}

// --- Company / Pilot ---

func (v *view) GetCompany(ctx context.Context) (*database.CompanyRecord, error) {
	if v.data.Company == nil {
		return nil, database.ErrNotFound
	}
	c := *v.data.Company
	return &c, nil
}

func (v *view) SaveCompany(ctx context.Context, rec *database.CompanyRecord) error {
	c := *rec
	c.ID = database.SingletonID
	v.data.Company = &c
	return nil
}

func (v *view) GetPilot(ctx context.Context) (*database.PilotRecord, error) {
	if v.data.Pilot == nil {
		return nil, database.ErrNotFound
	}
	p := *v.data.Pilot
	return &p, nil
}

func (v *view) SavePilot(ctx context.Context, rec *database.PilotRecord) error {
	p := *rec
	p.ID = database.SingletonID
	v.data.Pilot = &p
	return nil
}

// --- Fleet ---

func (v *view) ListAircraft(ctx context.Context) ([]database.AircraftRecord, error) {
	out := make([]database.AircraftRecord, 0, len(v.data.Aircraft))
	for _, rec := range v.data.Aircraft {
		out = append(out, cloneAircraft(rec))
	}
	return out, nil
}

func (v *view) aircraftIndex(id string) int {
	for i := range v.data.Aircraft {
		if v.data.Aircraft[i].ID == id {
			return i
		}
	}
	return -1
}

func (v *view) CreateAircraft(ctx context.Context, rec *database.AircraftRecord) error {
	if v.aircraftIndex(rec.ID) >= 0 {
		return fmt.Errorf("aircraft %s already exists", rec.ID)
	}
	v.data.Aircraft = append(v.data.Aircraft, cloneAircraft(*rec))
	return nil
}

func (v *view) UpdateAircraft(ctx context.Context, rec *database.AircraftRecord) error {
	i := v.aircraftIndex(rec.ID)
	if i < 0 {
		return fmt.Errorf("aircraft %s: %w", rec.ID, database.ErrNotFound)
	}
	v.data.Aircraft[i] = cloneAircraft(*rec)
	return nil
}

func (v *view) DeleteAircraft(ctx context.Context, id string) error {
	i := v.aircraftIndex(id)
	if i < 0 {
		return fmt.Errorf("aircraft %s: %w", id, database.ErrNotFound)
	}
	v.data.Aircraft = append(v.data.Aircraft[:i], v.data.Aircraft[i+1:]...)
	return nil
}

// --- Flights ---

func (v *view) ListActiveFlights(ctx context.Context) ([]database.ActiveFlightRecord, error) {
	return append([]database.ActiveFlightRecord{}, v.data.ActiveFlights...), nil
}

func (v *view) CreateActiveFlight(ctx context.Context, rec *database.ActiveFlightRecord) error {
	for _, f := range v.data.ActiveFlights {
		if f.ID == rec.ID {
			return fmt.Errorf("active flight %s already exists", rec.ID)
		}
	}
	v.data.ActiveFlights = append(v.data.ActiveFlights, *rec)
	return nil
}

func (v *view) DeleteActiveFlight(ctx context.Context, id string) error {
	for i, f := range v.data.ActiveFlights {
		if f.ID == id {
			v.data.ActiveFlights = append(v.data.ActiveFlights[:i], v.data.ActiveFlights[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("active flight %s: %w", id, database.ErrNotFound)
}

func (v *view) ListCompletedFlights(ctx context.Context) ([]database.CompletedFlightRecord, error) {
	out := make([]database.CompletedFlightRecord, 0, len(v.data.CompletedFlights))
	for _, rec := range v.data.CompletedFlights {
		rec.Briefing = cloneJSON(rec.Briefing)
		out = append(out, rec)
	}
	return out, nil
}

func (v *view) CreateCompletedFlight(ctx context.Context, rec *database.CompletedFlightRecord) error {
	c := *rec
	c.Briefing = cloneJSON(rec.Briefing)
	v.data.CompletedFlights = append(v.data.CompletedFlights, c)
	return nil
}
