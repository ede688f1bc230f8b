package service

import (
	"errors"

	"github.com/ProcedurallyGeneratedGoldblum/virtual-airline-manager-sub000/internal/condition"
	"github.com/ProcedurallyGeneratedGoldblum/virtual-airline-manager-sub000/internal/fleet"
)

var (
	ErrFlightNotFound      = errors.New("flight not found")
	ErrAircraftRequired    = errors.New("an aircraft must be selected")
	ErrAircraftUnavailable = errors.New("aircraft is not available")
	ErrListingNotFound     = errors.New("listing not found")
	ErrNoPendingBriefing   = errors.New("no flight is awaiting a briefing")
	ErrInvalidInput        = errors.New("invalid input")
	ErrPersistence         = errors.New("failed to persist game state")
	ErrFlightNotLocked     = errors.New("aircraft is not locked to this flight")

	// re-exported so callers need only this package
	ErrAircraftNotFound  = fleet.ErrAircraftNotFound
	ErrAircraftLocked    = fleet.ErrAircraftLocked
	ErrInsufficientFunds = condition.ErrInsufficientFunds
	ErrUnknownComponent  = condition.ErrUnknownComponent
)
