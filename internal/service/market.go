package service

import (
	"context"
	"fmt"
	"slices"

	"github.com/ProcedurallyGeneratedGoldblum/virtual-airline-manager-sub000/internal/condition"
	"github.com/ProcedurallyGeneratedGoldblum/virtual-airline-manager-sub000/internal/database"
	"github.com/ProcedurallyGeneratedGoldblum/virtual-airline-manager-sub000/internal/fleet"
	"github.com/ProcedurallyGeneratedGoldblum/virtual-airline-manager-sub000/internal/models"
	"github.com/ProcedurallyGeneratedGoldblum/virtual-airline-manager-sub000/internal/reference"
)

// SaleResult describes an aircraft sold to the dealer
type SaleResult struct {
	Aircraft models.Aircraft `json:"aircraft"`
	Price    float64         `json:"price"`
	Balance  float64         `json:"balance"`
}

func (s *gameServiceImpl) MarketListings(ctx context.Context) []models.Listing {
	s.mu.Lock()
	defer s.mu.Unlock()
	return nonNil(slices.Clone(s.state.listings))
}

// PurchaseAircraft buys a listing and adds it to the fleet with a fresh
// registration for its location.
func (s *gameServiceImpl) PurchaseAircraft(ctx context.Context, listingID string) (*models.Aircraft, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.state.listingIndex(listingID)
	if idx < 0 {
		return nil, fmt.Errorf("%w: %s", ErrListingNotFound, listingID)
	}
	listing := s.state.listings[idx]
	if s.state.company.Balance < listing.Price {
		s.log.Warn().Str("listingId", listingID).Float64("price", listing.Price).
			Float64("balance", s.state.company.Balance).Msg("Purchase refused")
		return nil, fmt.Errorf("purchase needs %.2f: %w", listing.Price, ErrInsufficientFunds)
	}

	next := s.state.clone()
	details := listing.ConditionDetails
	ac := next.fleet.Add(models.Aircraft{
		Registration:      fleet.GenerateRegistration(s.rng, listing.Location, next.fleet.Registrations()),
		Type:              listing.Type,
		Manufacturer:      listing.Manufacturer,
		Model:             listing.Model,
		Year:              listing.Year,
		Status:            models.AircraftStatusAvailable,
		Location:          listing.Location,
		TotalHours:        listing.TotalHours,
		NextInspectionDue: InspectionInterval,
		Condition:         condition.Label(details),
		ConditionDetails:  &details,
		MELList:           []models.MELItem{},
		Price:             listing.Price,
	})
	next.company.Balance -= listing.Price
	next.syncAircraftCount()
	next.listings = slices.Delete(next.listings, idx, idx+1)
	if len(next.listings) == 0 {
		next.listings = reference.GenerateListings(s.rng, s.opts.ListingCount)
	}

	aircraft := ac.Clone()
	err := s.commit(ctx, next, func(tx database.Store) error {
		if err := tx.CreateAircraft(ctx, database.ToAircraftRecord(aircraft)); err != nil {
			return err
		}
		return tx.SaveCompany(ctx, database.ToCompanyRecord(next.company))
	})
	if err != nil {
		return nil, err
	}

	s.log.Info().
		Str("aircraftId", aircraft.ID).
		Str("registration", aircraft.Registration).
		Str("type", aircraft.Type).
		Float64("price", listing.Price).
		Msg("Aircraft purchased")
	s.publish(EventAircraftPurchased, aircraft)
	return &aircraft, nil
}

// SellAircraft sells an unlocked aircraft to the dealer at its depreciated value.
func (s *gameServiceImpl) SellAircraft(ctx context.Context, aircraftID string) (*SaleResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.checkUnlocked(aircraftID); err != nil {
		return nil, err
	}

	next := s.state.clone()
	ac, _ := next.fleet.Get(aircraftID)
	price := fleet.SellPrice(ac)
	sold, err := next.fleet.Remove(aircraftID)
	if err != nil {
		return nil, err
	}
	next.company.Balance += price
	next.syncAircraftCount()

	err = s.commit(ctx, next, func(tx database.Store) error {
		if err := tx.DeleteAircraft(ctx, aircraftID); err != nil {
			return err
		}
		return tx.SaveCompany(ctx, database.ToCompanyRecord(next.company))
	})
	if err != nil {
		return nil, err
	}

	s.log.Info().
		Str("aircraftId", sold.ID).
		Str("registration", sold.Registration).
		Float64("price", price).
		Msg("Aircraft sold")
	s.metrics.sold(ctx)

	result := &SaleResult{Aircraft: sold, Price: price, Balance: next.company.Balance}
	s.publish(EventAircraftSold, result)
	return result, nil
}
