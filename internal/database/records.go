package database

import (
	"time"

	"gorm.io/datatypes"
)

// CompanyRecord is the stored form of the company
type CompanyRecord struct {
	ID            uint    `json:"id" gorm:"primaryKey;autoIncrement:false"`
	Name          string  `json:"name"`
	Callsign      string  `json:"callsign"`
	Headquarters  string  `json:"headquarters"`
	FocusArea     string  `json:"focus_area"`
	Balance       float64 `json:"balance"`
	Aircraft      int     `json:"aircraft"`
	TotalFlights  int     `json:"total_flights"`
	TotalEarnings float64 `json:"total_earnings"`
	FlightHours   float64 `json:"flight_hours"`
}

func (*CompanyRecord) TableName() string {
	return "company"
}

// PilotRecord is the stored form of the pilot
type PilotRecord struct {
	ID               uint    `json:"id" gorm:"primaryKey;autoIncrement:false"`
	Name             string  `json:"name"`
	Rank             string  `json:"rank"`
	TotalFlights     int     `json:"total_flights"`
	TotalHours       float64 `json:"total_hours"`
	TotalDistance    float64 `json:"total_distance"`
	TotalEarnings    float64 `json:"total_earnings"`
	Rating           float64 `json:"rating"`
	OnTimePercentage int     `json:"on_time_percentage"`
	OnTimeFlights    int     `json:"on_time_flights"`
	Experience       int     `json:"experience"`
	NextRankXP       int     `json:"next_rank_xp" gorm:"column:next_rank_xp"`
}

func (*PilotRecord) TableName() string {
	return "pilot"
}

// AircraftRecord is the stored form of an aircraft
type AircraftRecord struct {
	ID                   string         `json:"id" gorm:"primaryKey;size:64"`
	Registration         string         `json:"registration" gorm:"size:16"`
	Type                 string         `json:"type" gorm:"size:32"`
	Manufacturer         string         `json:"manufacturer"`
	Model                string         `json:"model"`
	Year                 int            `json:"year"`
	Status               string         `json:"status" gorm:"size:32"`
	Location             string         `json:"location"`
	TotalHours           float64        `json:"total_hours"`
	HoursSinceInspection float64        `json:"hours_since_inspection"`
	NextInspectionDue    float64        `json:"next_inspection_due"`
	Condition            string         `json:"condition" gorm:"size:32"`
	ConditionDetails     datatypes.JSON `json:"condition_details"`
	MELList              datatypes.JSON `json:"mel_list" gorm:"column:mel_list"`
	LockedBy             *string        `json:"locked_by"`
	CurrentFlight        *string        `json:"current_flight"`
	Price                float64        `json:"price"`
}

func (*AircraftRecord) TableName() string {
	return "fleet"
}

// ConditionDetailsRecord is the JSON shape of condition_details
type ConditionDetailsRecord struct {
	Engine     float64 `json:"engine"`
	Avionics   float64 `json:"avionics"`
	Interior   float64 `json:"interior"`
	Airframe   float64 `json:"airframe"`
	EngineSMOH float64 `json:"engine_smoh"`
}

// MELItemRecord is the JSON shape of one mel_list entry
type MELItemRecord struct {
	Item string `json:"item"`
	Type string `json:"type"`
}

// ActiveFlightRecord is the stored form of an accepted flight. ID is the offer id.
type ActiveFlightRecord struct {
	ID             string    `json:"id" gorm:"primaryKey;size:64"`
	FromName       string    `json:"from_name"`
	FromCode       string    `json:"from_code" gorm:"size:8"`
	ToName         string    `json:"to_name"`
	ToCode         string    `json:"to_code" gorm:"size:8"`
	Duration       float64   `json:"duration"`
	Distance       float64   `json:"distance"`
	CargoType      string    `json:"cargo_type" gorm:"size:16"`
	PassengerCount int       `json:"passenger_count"`
	Priority       string    `json:"priority" gorm:"size:16"`
	Weather        string    `json:"weather"`
	Notes          string    `json:"notes"`
	AircraftID     string    `json:"aircraft_id" gorm:"size:64;index"`
	Registration   string    `json:"registration"`
	AcceptedAt     time.Time `json:"accepted_at"`
	Status         string    `json:"status" gorm:"size:16"`
}

func (*ActiveFlightRecord) TableName() string {
	return "active_flights"
}

// CompletedFlightRecord is the stored form of a briefed flight
type CompletedFlightRecord struct {
	ID           string         `json:"id" gorm:"primaryKey;size:64"`
	FlightID     string         `json:"flight_id" gorm:"size:64"`
	Route        string         `json:"route"`
	AircraftID   string         `json:"aircraft_id" gorm:"size:64;index"`
	Registration string         `json:"registration"`
	Duration     float64        `json:"duration"`
	Distance     float64        `json:"distance"`
	Earnings     float64        `json:"earnings"`
	Briefing     datatypes.JSON `json:"briefing"`
	CompletedAt  time.Time      `json:"completed_at" gorm:"index"`
}

func (*CompletedFlightRecord) TableName() string {
	return "completed_flights"
}

// BriefingRecord is the JSON shape of the briefing column
type BriefingRecord struct {
	LandingQuality string `json:"landing_quality"`
	Weather        string `json:"weather"`
	Defects        string `json:"defects"`
	Severity       string `json:"severity"`
	ActualDuration string `json:"actual_duration"`
	Earnings       string `json:"earnings"`
	OnTime         *bool  `json:"on_time,omitempty"`
	Notes          string `json:"notes"`
}

// AllRecords lists the record types for schema migration.
func AllRecords() []any {
	return []any{
		&CompanyRecord{},
		&PilotRecord{},
		&AircraftRecord{},
		&ActiveFlightRecord{},
		&CompletedFlightRecord{},
	}
}
