package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/ProcedurallyGeneratedGoldblum/virtual-airline-manager-sub000/internal/finance"
	"github.com/ProcedurallyGeneratedGoldblum/virtual-airline-manager-sub000/internal/models"
	"github.com/ProcedurallyGeneratedGoldblum/virtual-airline-manager-sub000/internal/service"
	"github.com/ProcedurallyGeneratedGoldblum/virtual-airline-manager-sub000/internal/service/mocks"
)

func setupTestRouter(h *Handler) *mux.Router {
	r := mux.NewRouter()
	api := r.PathPrefix("/api").Subrouter()
	api.HandleFunc("/company", h.UpdateCompany).Methods(http.MethodPut)
	api.HandleFunc("/fleet", h.GetFleet).Methods(http.MethodGet)
	api.HandleFunc("/fleet/{id}", h.GetAircraft).Methods(http.MethodGet)
	api.HandleFunc("/fleet/{id}", h.SellAircraft).Methods(http.MethodDelete)
	api.HandleFunc("/fleet/{id}/repair", h.RepairComponent).Methods(http.MethodPost)
	api.HandleFunc("/market/{id}/purchase", h.PurchaseAircraft).Methods(http.MethodPost)
	api.HandleFunc("/flights/{id}/estimate", h.EstimateFlight).Methods(http.MethodGet)
	api.HandleFunc("/flights/{id}/accept", h.AcceptFlight).Methods(http.MethodPost)
	api.HandleFunc("/flights/{id}/complete", h.CompleteFlight).Methods(http.MethodPost)
	api.HandleFunc("/briefing", h.GetPendingBriefing).Methods(http.MethodGet)
	api.HandleFunc("/briefing", h.CancelBriefing).Methods(http.MethodDelete)
	return r
}

func jsonBody(t *testing.T, v any) *bytes.Buffer {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return bytes.NewBuffer(b)
}

func TestHandler_GetFleet(t *testing.T) {
	mockService := new(mocks.MockService)
	handler := NewHandler(mockService)
	router := setupTestRouter(handler)

	expected := []models.Aircraft{
		{ID: "a1", Registration: "G-ABCD", Type: "C172", Status: models.AircraftStatusAvailable, MELList: []models.MELItem{}},
	}
	mockService.On("Fleet", mock.Anything).Return(expected)

	req := httptest.NewRequest(http.MethodGet, "/api/fleet", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var response []map[string]any
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&response))
	require.Len(t, response, 1)
	assert.Equal(t, "G-ABCD", response[0]["registration"])
	assert.Contains(t, response[0], "totalHours")
	assert.Contains(t, response[0], "melList")

	mockService.AssertExpectations(t)
}

func TestHandler_GetAircraft(t *testing.T) {
	tests := []struct {
		name           string
		aircraftID     string
		mockReturn     *models.Aircraft
		mockError      error
		expectedStatus int
	}{
		{
			name:           "aircraft found",
			aircraftID:     "a1",
			mockReturn:     &models.Aircraft{ID: "a1", Registration: "G-ABCD"},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "aircraft not found",
			aircraftID:     "missing",
			mockError:      fmt.Errorf("%w: missing", service.ErrAircraftNotFound),
			expectedStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(mocks.MockService)
			handler := NewHandler(mockService)
			router := setupTestRouter(handler)

			mockService.On("GetAircraft", mock.Anything, tt.aircraftID).Return(tt.mockReturn, tt.mockError)

			req := httptest.NewRequest(http.MethodGet, "/api/fleet/"+tt.aircraftID, nil)
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			mockService.AssertExpectations(t)
		})
	}
}

func TestHandler_AcceptFlight(t *testing.T) {
	tests := []struct {
		name           string
		body           any
		aircraftID     string
		mockReturn     *models.ActiveFlight
		mockError      error
		callsService   bool
		expectedStatus int
	}{
		{
			name:       "accepted",
			body:       AcceptFlightRequest{AircraftID: "a1"},
			aircraftID: "a1",
			mockReturn: &models.ActiveFlight{
				Flight:     models.Flight{ID: "F1", FromCode: "EGLL", ToCode: "EGBB"},
				AircraftID: "a1",
				Status:     models.FlightStatusInProgress,
			},
			callsService:   true,
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "missing aircraft selection",
			body:           AcceptFlightRequest{},
			mockError:      service.ErrAircraftRequired,
			callsService:   true,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "aircraft locked",
			body:           AcceptFlightRequest{AircraftID: "a1"},
			aircraftID:     "a1",
			mockError:      fmt.Errorf("%w: G-ABCD is in-flight", service.ErrAircraftUnavailable),
			callsService:   true,
			expectedStatus: http.StatusConflict,
		},
		{
			name:           "storage failure",
			body:           AcceptFlightRequest{AircraftID: "a1"},
			aircraftID:     "a1",
			mockError:      fmt.Errorf("%w: %w", service.ErrPersistence, errors.New("disk full")),
			callsService:   true,
			expectedStatus: http.StatusInternalServerError,
		},
		{
			name:           "invalid body",
			body:           "not json",
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(mocks.MockService)
			handler := NewHandler(mockService)
			router := setupTestRouter(handler)

			if tt.callsService {
				mockService.On("AcceptFlight", mock.Anything, "F1", tt.aircraftID).Return(tt.mockReturn, tt.mockError)
			}

			var body *bytes.Buffer
			if s, ok := tt.body.(string); ok {
				body = bytes.NewBufferString(s)
			} else {
				body = jsonBody(t, tt.body)
			}
			req := httptest.NewRequest(http.MethodPost, "/api/flights/F1/accept", body)
			req.Header.Set("Content-Type", "application/json")
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			mockService.AssertExpectations(t)
		})
	}
}

func TestHandler_StorageFailureHidesDetail(t *testing.T) {
	mockService := new(mocks.MockService)
	router := setupTestRouter(NewHandler(mockService))

	mockService.On("SellAircraft", mock.Anything, "a1").
		Return(nil, fmt.Errorf("%w: %w", service.ErrPersistence, errors.New("secret path /var/db")))

	req := httptest.NewRequest(http.MethodDelete, "/api/fleet/a1", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), "secret")
}

func TestHandler_CompleteFlight(t *testing.T) {
	mockService := new(mocks.MockService)
	router := setupTestRouter(NewHandler(mockService))

	onTime := true
	briefing := models.Briefing{
		LandingQuality: "smooth",
		ActualDuration: "1.0",
		Severity:       models.SeverityMinor,
		OnTime:         &onTime,
	}
	result := &service.CompletionResult{
		Flight:  models.CompletedFlight{ID: "c1", FlightID: "F1", Route: "EGLL → EGBB"},
		Company: models.Company{TotalFlights: 1},
		Pilot:   models.Pilot{Experience: 105},
	}
	mockService.On("CompleteFlight", mock.Anything, "F1", briefing).Return(result, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/flights/F1/complete", jsonBody(t, briefing))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var response service.CompletionResult
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&response))
	assert.Equal(t, 105, response.Pilot.Experience)
	assert.Equal(t, "EGLL → EGBB", response.Flight.Route)
	mockService.AssertExpectations(t)
}

func TestHandler_CompleteFlight_NumericFields(t *testing.T) {
	mockService := new(mocks.MockService)
	router := setupTestRouter(NewHandler(mockService))

	briefing := models.Briefing{ActualDuration: "1.0", Earnings: "300"}
	mockService.On("CompleteFlight", mock.Anything, "F1", briefing).Return(&service.CompletionResult{}, nil)

	body := strings.NewReader(`{"actualDuration": 1.0, "earnings": 300}`)
	req := httptest.NewRequest(http.MethodPost, "/api/flights/F1/complete", body)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	mockService.AssertExpectations(t)
}

func TestHandler_CompleteFlight_AircraftNotHeld(t *testing.T) {
	mockService := new(mocks.MockService)
	router := setupTestRouter(NewHandler(mockService))

	mockService.On("CompleteFlight", mock.Anything, "F1", models.Briefing{}).
		Return(nil, fmt.Errorf("%w: G-ABCD", service.ErrFlightNotLocked))

	req := httptest.NewRequest(http.MethodPost, "/api/flights/F1/complete", strings.NewReader(`{}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusConflict, rec.Code)
	mockService.AssertExpectations(t)
}

func TestHandler_CompleteFlight_InvalidSeverity(t *testing.T) {
	mockService := new(mocks.MockService)
	router := setupTestRouter(NewHandler(mockService))

	body := jsonBody(t, map[string]string{"severity": "catastrophic"})
	req := httptest.NewRequest(http.MethodPost, "/api/flights/F1/complete", body)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	mockService.AssertNotCalled(t, "CompleteFlight", mock.Anything, mock.Anything, mock.Anything)
}

func TestHandler_RepairComponent(t *testing.T) {
	tests := []struct {
		name           string
		component      string
		mockReturn     *service.MaintenanceResult
		mockError      error
		expectedStatus int
	}{
		{
			name:           "repaired",
			component:      "engine",
			mockReturn:     &service.MaintenanceResult{Action: "repair", Component: "engine", Cost: 5000},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "insufficient funds",
			component:      "engine",
			mockError:      fmt.Errorf("repair engine needs 5000.00: %w", service.ErrInsufficientFunds),
			expectedStatus: http.StatusConflict,
		},
		{
			name:           "unknown component",
			component:      "propeller",
			mockError:      fmt.Errorf("%w: propeller", service.ErrUnknownComponent),
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(mocks.MockService)
			router := setupTestRouter(NewHandler(mockService))

			mockService.On("RepairComponent", mock.Anything, "a1", tt.component).Return(tt.mockReturn, tt.mockError)

			req := httptest.NewRequest(http.MethodPost, "/api/fleet/a1/repair", jsonBody(t, ComponentRequest{Component: tt.component}))
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			mockService.AssertExpectations(t)
		})
	}
}

func TestHandler_RepairComponent_MissingComponent(t *testing.T) {
	mockService := new(mocks.MockService)
	router := setupTestRouter(NewHandler(mockService))

	req := httptest.NewRequest(http.MethodPost, "/api/fleet/a1/repair", jsonBody(t, ComponentRequest{}))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandler_PurchaseAircraft(t *testing.T) {
	mockService := new(mocks.MockService)
	router := setupTestRouter(NewHandler(mockService))

	mockService.On("PurchaseAircraft", mock.Anything, "l1").Return(&models.Aircraft{ID: "a9", Registration: "D-EFGH"}, nil)
	mockService.On("PurchaseAircraft", mock.Anything, "gone").Return(nil, service.ErrListingNotFound)

	req := httptest.NewRequest(http.MethodPost, "/api/market/l1/purchase", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusCreated, rec.Code)

	req = httptest.NewRequest(http.MethodPost, "/api/market/gone/purchase", nil)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	mockService.AssertExpectations(t)
}

func TestHandler_EstimateFlight(t *testing.T) {
	mockService := new(mocks.MockService)
	router := setupTestRouter(NewHandler(mockService))

	mockService.On("EstimateFlight", mock.Anything, "F1", "a1").Return(&finance.Result{Revenue: 200, Profit: 50}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/flights/F1/estimate?aircraftId=a1", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var response finance.Result
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&response))
	assert.Equal(t, 50.0, response.Profit)

	req = httptest.NewRequest(http.MethodGet, "/api/flights/F1/estimate", nil)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	mockService.AssertExpectations(t)
}

func TestHandler_Briefing(t *testing.T) {
	mockService := new(mocks.MockService)
	router := setupTestRouter(NewHandler(mockService))

	mockService.On("PendingBriefing", mock.Anything).Return(nil, service.ErrNoPendingBriefing)
	mockService.On("CancelBriefing", mock.Anything).Return()

	req := httptest.NewRequest(http.MethodGet, "/api/briefing", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	req = httptest.NewRequest(http.MethodDelete, "/api/briefing", nil)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	mockService.AssertExpectations(t)
}

func TestHandler_UpdateCompany(t *testing.T) {
	mockService := new(mocks.MockService)
	router := setupTestRouter(NewHandler(mockService))

	profile := models.CompanyProfile{Name: "Northern Air", Callsign: "NORTHERN", Headquarters: "EGPH"}
	mockService.On("UpdateCompany", mock.Anything, profile).Return(models.Company{Name: "Northern Air"}, nil)

	req := httptest.NewRequest(http.MethodPut, "/api/company", jsonBody(t, profile))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)

	req = httptest.NewRequest(http.MethodPut, "/api/company", jsonBody(t, models.CompanyProfile{}))
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	mockService.AssertExpectations(t)
}
