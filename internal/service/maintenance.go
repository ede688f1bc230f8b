package service

import (
	"context"
	"fmt"

	"github.com/ProcedurallyGeneratedGoldblum/virtual-airline-manager-sub000/internal/condition"
	"github.com/ProcedurallyGeneratedGoldblum/virtual-airline-manager-sub000/internal/database"
	"github.com/ProcedurallyGeneratedGoldblum/virtual-airline-manager-sub000/internal/models"
)

const (
	InspectionBaseCost   = 1500.0
	InspectionCostPerMEL = 500.0
	InspectionInterval   = 100.0
)

// Maintenance actions reported in results and metrics.
const (
	ActionRepair   = "repair"
	ActionOverhaul = "overhaul"
	ActionInspect  = "inspect"
)

// MaintenanceResult describes a completed maintenance action
type MaintenanceResult struct {
	Action    string          `json:"action"`
	Component string          `json:"component,omitempty"`
	Cost      float64         `json:"cost"`
	Balance   float64         `json:"balance"`
	Aircraft  models.Aircraft `json:"aircraft"`
}

// InspectionCost is the price of an inspection given the outstanding defects.
func InspectionCost(ac *models.Aircraft) float64 {
	return InspectionBaseCost + InspectionCostPerMEL*float64(len(ac.MELList))
}

func (s *gameServiceImpl) RepairComponent(ctx context.Context, aircraftID, component string) (*MaintenanceResult, error) {
	return s.maintainComponent(ctx, aircraftID, component, ActionRepair, condition.Repair)
}

func (s *gameServiceImpl) OverhaulComponent(ctx context.Context, aircraftID, component string) (*MaintenanceResult, error) {
	return s.maintainComponent(ctx, aircraftID, component, ActionOverhaul, condition.Overhaul)
}

type componentAction func(ac *models.Aircraft, component models.Component, funds float64) (float64, error)

func (s *gameServiceImpl) maintainComponent(ctx context.Context, aircraftID, name, action string, apply componentAction) (*MaintenanceResult, error) {
	logger := s.log.With().Str("aircraftId", aircraftID).Str("component", name).Str("action", action).Logger()

	comp, err := condition.ParseComponent(name)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.checkUnlocked(aircraftID); err != nil {
		return nil, err
	}

	next := s.state.clone()
	ac, _ := next.fleet.Get(aircraftID)
	cost, err := apply(ac, comp, next.company.Balance)
	if err != nil {
		logger.Warn().Err(err).Float64("balance", next.company.Balance).Msg("Maintenance refused")
		return nil, err
	}
	next.company.Balance -= cost

	return s.commitMaintenance(ctx, next, ac, &MaintenanceResult{Action: action, Component: string(comp), Cost: cost})
}

// InspectAircraft signs off the aircraft: the inspection clock restarts and
// outstanding defects are cleared.
func (s *gameServiceImpl) InspectAircraft(ctx context.Context, aircraftID string) (*MaintenanceResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.checkUnlocked(aircraftID); err != nil {
		return nil, err
	}

	next := s.state.clone()
	ac, _ := next.fleet.Get(aircraftID)
	cost := InspectionCost(ac)
	if next.company.Balance < cost {
		s.log.Warn().Str("aircraftId", aircraftID).Float64("cost", cost).Msg("Inspection refused")
		return nil, fmt.Errorf("inspection needs %.2f: %w", cost, ErrInsufficientFunds)
	}

	ac.HoursSinceInspection = 0
	ac.NextInspectionDue = InspectionInterval
	ac.MELList = []models.MELItem{}
	if ac.Status == models.AircraftStatusMaintenance {
		ac.Status = models.AircraftStatusAvailable
	}
	next.company.Balance -= cost

	return s.commitMaintenance(ctx, next, ac, &MaintenanceResult{Action: ActionInspect, Cost: cost})
}

func (s *gameServiceImpl) checkUnlocked(aircraftID string) error {
	ac, err := s.state.fleet.Get(aircraftID)
	if err != nil {
		return err
	}
	if ac.IsLocked() {
		return fmt.Errorf("%w: %s", ErrAircraftLocked, ac.Registration)
	}
	return nil
}

func (s *gameServiceImpl) commitMaintenance(ctx context.Context, next *gameState, ac *models.Aircraft, result *MaintenanceResult) (*MaintenanceResult, error) {
	aircraft := ac.Clone()
	err := s.commit(ctx, next, func(tx database.Store) error {
		if err := tx.UpdateAircraft(ctx, database.ToAircraftRecord(aircraft)); err != nil {
			return err
		}
		return tx.SaveCompany(ctx, database.ToCompanyRecord(next.company))
	})
	if err != nil {
		return nil, err
	}

	result.Aircraft = aircraft
	result.Balance = next.company.Balance
	s.log.Info().
		Str("aircraftId", aircraft.ID).
		Str("registration", aircraft.Registration).
		Str("action", result.Action).
		Str("component", result.Component).
		Float64("cost", result.Cost).
		Str("condition", string(aircraft.Condition)).
		Msg("Maintenance completed")
	s.metrics.maintenance(ctx, result.Action, result.Cost)
	s.publish(EventAircraftMaintained, result)
	return result, nil
}
