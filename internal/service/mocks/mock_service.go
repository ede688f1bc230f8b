package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/ProcedurallyGeneratedGoldblum/virtual-airline-manager-sub000/internal/finance"
	"github.com/ProcedurallyGeneratedGoldblum/virtual-airline-manager-sub000/internal/models"
	"github.com/ProcedurallyGeneratedGoldblum/virtual-airline-manager-sub000/internal/service"
)

// MockService is a mock implementation of service.GameService
type MockService struct {
	mock.Mock
}

var _ service.GameService = (*MockService)(nil)

func (m *MockService) State(ctx context.Context) service.GameState {
	args := m.Called(ctx)
	return args.Get(0).(service.GameState)
}

func (m *MockService) Company(ctx context.Context) models.Company {
	args := m.Called(ctx)
	return args.Get(0).(models.Company)
}

func (m *MockService) UpdateCompany(ctx context.Context, profile models.CompanyProfile) (models.Company, error) {
	args := m.Called(ctx, profile)
	return args.Get(0).(models.Company), args.Error(1)
}

func (m *MockService) Pilot(ctx context.Context) models.Pilot {
	args := m.Called(ctx)
	return args.Get(0).(models.Pilot)
}

func (m *MockService) Fleet(ctx context.Context) []models.Aircraft {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]models.Aircraft)
}

func (m *MockService) AvailableAircraft(ctx context.Context) []models.Aircraft {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]models.Aircraft)
}

func (m *MockService) GetAircraft(ctx context.Context, aircraftID string) (*models.Aircraft, error) {
	args := m.Called(ctx, aircraftID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Aircraft), args.Error(1)
}

func (m *MockService) AvailableFlights(ctx context.Context) []models.Flight {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]models.Flight)
}

func (m *MockService) RefreshFlights(ctx context.Context) []models.Flight {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]models.Flight)
}

func (m *MockService) ActiveFlights(ctx context.Context) []models.ActiveFlight {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]models.ActiveFlight)
}

func (m *MockService) CompletedFlights(ctx context.Context) []models.CompletedFlight {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]models.CompletedFlight)
}

func (m *MockService) EstimateFlight(ctx context.Context, flightID, aircraftID string) (*finance.Result, error) {
	args := m.Called(ctx, flightID, aircraftID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*finance.Result), args.Error(1)
}

func (m *MockService) AcceptFlight(ctx context.Context, flightID, aircraftID string) (*models.ActiveFlight, error) {
	args := m.Called(ctx, flightID, aircraftID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ActiveFlight), args.Error(1)
}

func (m *MockService) PendingBriefing(ctx context.Context) (*models.ActiveFlight, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ActiveFlight), args.Error(1)
}

func (m *MockService) BeginBriefing(ctx context.Context, flightID string) (*models.ActiveFlight, error) {
	args := m.Called(ctx, flightID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ActiveFlight), args.Error(1)
}

func (m *MockService) CancelBriefing(ctx context.Context) {
	m.Called(ctx)
}

func (m *MockService) CompleteFlight(ctx context.Context, flightID string, briefing models.Briefing) (*service.CompletionResult, error) {
	args := m.Called(ctx, flightID, briefing)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.CompletionResult), args.Error(1)
}

func (m *MockService) RepairComponent(ctx context.Context, aircraftID, component string) (*service.MaintenanceResult, error) {
	args := m.Called(ctx, aircraftID, component)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.MaintenanceResult), args.Error(1)
}

func (m *MockService) OverhaulComponent(ctx context.Context, aircraftID, component string) (*service.MaintenanceResult, error) {
	args := m.Called(ctx, aircraftID, component)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.MaintenanceResult), args.Error(1)
}

func (m *MockService) InspectAircraft(ctx context.Context, aircraftID string) (*service.MaintenanceResult, error) {
	args := m.Called(ctx, aircraftID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.MaintenanceResult), args.Error(1)
}

func (m *MockService) MarketListings(ctx context.Context) []models.Listing {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]models.Listing)
}

func (m *MockService) PurchaseAircraft(ctx context.Context, listingID string) (*models.Aircraft, error) {
	args := m.Called(ctx, listingID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Aircraft), args.Error(1)
}

func (m *MockService) SellAircraft(ctx context.Context, aircraftID string) (*service.SaleResult, error) {
	args := m.Called(ctx, aircraftID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.SaleResult), args.Error(1)
}
