package models

import (
	"bytes"
	"encoding/json"
	"time"
)

// Priority of a flight offer
type Priority string

const (
	PriorityNormal Priority = "normal"
	PriorityUrgent Priority = "urgent"
)

// CargoType describes what a flight carries
type CargoType string

const (
	CargoPassengers CargoType = "passengers"
	CargoFreight    CargoType = "freight"
	CargoFerry      CargoType = "ferry"
)

// Cargo carried by a flight
type Cargo struct {
	Type       CargoType `json:"type"`
	Passengers int       `json:"passengerCount"`
}

// Flight represents an available flight offer
type Flight struct {
	ID       string   `json:"id"`
	FromName string   `json:"fromName"`
	FromCode string   `json:"fromCode"`
	ToName   string   `json:"toName"`
	ToCode   string   `json:"toCode"`
	Duration float64  `json:"duration"`
	Distance float64  `json:"distance"`
	Cargo    Cargo    `json:"cargo"`
	Priority Priority `json:"priority"`
	Weather  string   `json:"weather"`
	Notes    string   `json:"notes"`
}

// Route renders the flight's route as "FROM → TO".
func (f Flight) Route() string {
	return f.FromCode + " → " + f.ToCode
}

// FlightStatus of an accepted flight
type FlightStatus string

const (
	FlightStatusInProgress FlightStatus = "in-progress"
)

// ActiveFlight is an accepted flight that has not been briefed yet
type ActiveFlight struct {
	Flight
	AircraftID   string       `json:"aircraftId"`
	Registration string       `json:"registration"`
	AcceptedAt   time.Time    `json:"acceptedAt"`
	Status       FlightStatus `json:"status"`
}

// Severity of defects reported in a briefing
type Severity string

const (
	SeverityNone  Severity = ""
	SeverityMinor Severity = "minor"
	SeverityMajor Severity = "major"
)

// Briefing is the post-flight report submitted by the pilot
type Briefing struct {
	LandingQuality string     `json:"landingQuality"`
	Weather        string     `json:"weather"`
	Defects        string     `json:"defects"`
	Severity       Severity   `json:"severity"`
	ActualDuration NumberText `json:"actualDuration"`
	Earnings       NumberText `json:"earnings"`
	OnTime         *bool      `json:"onTime,omitempty"`
	Notes          string     `json:"notes"`
}

// NumberText is a number typed by the pilot. It decodes from a JSON string or
// a JSON number and is parsed only when the flight is completed.
type NumberText string

func (n *NumberText) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*n = NumberText(s)
		return nil
	}
	// numbers keep their literal; anything else later parses as zero
	*n = NumberText(bytes.TrimSpace(data))
	return nil
}

// WasOnTime defaults to true unless the briefing explicitly says otherwise.
func (b Briefing) WasOnTime() bool {
	return b.OnTime == nil || *b.OnTime
}

// CompletedFlight is the append-only record of a briefed flight
type CompletedFlight struct {
	ID           string    `json:"id"`
	FlightID     string    `json:"flightId"`
	Route        string    `json:"route"`
	AircraftID   string    `json:"aircraftId"`
	Registration string    `json:"registration"`
	Duration     float64   `json:"duration"`
	Distance     float64   `json:"distance"`
	Earnings     float64   `json:"earnings"`
	Briefing     Briefing  `json:"briefing"`
	CompletedAt  time.Time `json:"completedAt"`
}
