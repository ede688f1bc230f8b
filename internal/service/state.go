package service

import (
	"slices"

	"github.com/ProcedurallyGeneratedGoldblum/virtual-airline-manager-sub000/internal/fleet"
	"github.com/ProcedurallyGeneratedGoldblum/virtual-airline-manager-sub000/internal/models"
)

// GameState is the full snapshot handed to the UI
type GameState struct {
	Company          models.Company           `json:"company"`
	Pilot            models.Pilot             `json:"pilot"`
	Fleet            []models.Aircraft        `json:"fleet"`
	AvailableFlights []models.Flight          `json:"availableFlights"`
	ActiveFlights    []models.ActiveFlight    `json:"activeFlights"`
	CompletedFlights []models.CompletedFlight `json:"completedFlights"`
	Market           []models.Listing         `json:"market"`
	PendingBriefing  *string                  `json:"pendingBriefing"`
}

// gameState is owned by the service. Mutations happen on a clone that only
// replaces the live state once the store has committed.
type gameState struct {
	company         models.Company
	pilot           models.Pilot
	fleet           *fleet.Registry
	offers          []models.Flight
	active          []models.ActiveFlight
	completed       []models.CompletedFlight
	listings        []models.Listing
	pendingBriefing *string
}

func (s *gameState) clone() *gameState {
	out := &gameState{
		company:   s.company,
		pilot:     s.pilot,
		fleet:     s.fleet.Clone(),
		offers:    slices.Clone(s.offers),
		active:    slices.Clone(s.active),
		completed: slices.Clone(s.completed),
		listings:  slices.Clone(s.listings),
	}
	if s.pendingBriefing != nil {
		v := *s.pendingBriefing
		out.pendingBriefing = &v
	}
	return out
}

func (s *gameState) snapshot() GameState {
	out := GameState{
		Company:          s.company,
		Pilot:            s.pilot,
		Fleet:            s.fleet.List(),
		AvailableFlights: nonNil(slices.Clone(s.offers)),
		ActiveFlights:    nonNil(slices.Clone(s.active)),
		CompletedFlights: nonNil(slices.Clone(s.completed)),
		Market:           nonNil(slices.Clone(s.listings)),
	}
	if s.pendingBriefing != nil {
		v := *s.pendingBriefing
		out.PendingBriefing = &v
	}
	return out
}

func (s *gameState) offerIndex(id string) int {
	return slices.IndexFunc(s.offers, func(f models.Flight) bool { return f.ID == id })
}

func (s *gameState) activeIndex(id string) int {
	return slices.IndexFunc(s.active, func(f models.ActiveFlight) bool { return f.ID == id })
}

func (s *gameState) listingIndex(id string) int {
	return slices.IndexFunc(s.listings, func(l models.Listing) bool { return l.ID == id })
}

// syncAircraftCount keeps the company counter equal to the fleet size.
func (s *gameState) syncAircraftCount() {
	s.company.Aircraft = s.fleet.Len()
}

// nonNil makes empty collections encode as [] rather than null.
func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
