package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog/hlog"

	"github.com/ProcedurallyGeneratedGoldblum/virtual-airline-manager-sub000/internal/models"
	"github.com/ProcedurallyGeneratedGoldblum/virtual-airline-manager-sub000/internal/service"
)

// Handler contains HTTP handlers for the API
type Handler struct {
	game service.GameService
}

// NewHandler creates a new Handler instance
func NewHandler(game service.GameService) *Handler {
	return &Handler{
		game: game,
	}
}

// AcceptFlightRequest is the body of POST /api/flights/{id}/accept
type AcceptFlightRequest struct {
	AircraftID string `json:"aircraftId"`
}

// ComponentRequest is the body of the repair and overhaul endpoints
type ComponentRequest struct {
	Component string `json:"component"`
}

// Response helpers
func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		json.NewEncoder(w).Encode(data)
	}
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}

// respondServiceError maps service errors onto HTTP statuses.
func respondServiceError(w http.ResponseWriter, r *http.Request, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, service.ErrFlightNotFound),
		errors.Is(err, service.ErrAircraftNotFound),
		errors.Is(err, service.ErrListingNotFound),
		errors.Is(err, service.ErrNoPendingBriefing):
		status = http.StatusNotFound
	case errors.Is(err, service.ErrAircraftRequired),
		errors.Is(err, service.ErrUnknownComponent),
		errors.Is(err, service.ErrInvalidInput):
		status = http.StatusBadRequest
	case errors.Is(err, service.ErrAircraftLocked),
		errors.Is(err, service.ErrAircraftUnavailable),
		errors.Is(err, service.ErrFlightNotLocked),
		errors.Is(err, service.ErrInsufficientFunds):
		status = http.StatusConflict
	}

	if status == http.StatusInternalServerError {
		hlog.FromRequest(r).Error().Err(err).Msg("Request failed")
		respondError(w, status, "Internal server error")
		return
	}
	respondError(w, status, err.Error())
}

// GetState handles GET /api/state
func (h *Handler) GetState(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.game.State(r.Context()))
}

// GetCompany handles GET /api/company
func (h *Handler) GetCompany(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.game.Company(r.Context()))
}

// UpdateCompany handles PUT /api/company
func (h *Handler) UpdateCompany(w http.ResponseWriter, r *http.Request) {
	var req models.CompanyProfile
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Name == "" {
		respondError(w, http.StatusBadRequest, "Company name is required")
		return
	}

	company, err := h.game.UpdateCompany(r.Context(), req)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, company)
}

// GetPilot handles GET /api/pilot
func (h *Handler) GetPilot(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.game.Pilot(r.Context()))
}

// GetFleet handles GET /api/fleet
func (h *Handler) GetFleet(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.game.Fleet(r.Context()))
}

// GetAvailableAircraft handles GET /api/fleet/available
func (h *Handler) GetAvailableAircraft(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.game.AvailableAircraft(r.Context()))
}

// GetAircraft handles GET /api/fleet/{id}
func (h *Handler) GetAircraft(w http.ResponseWriter, r *http.Request) {
	aircraft, err := h.game.GetAircraft(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, aircraft)
}

// SellAircraft handles DELETE /api/fleet/{id}
func (h *Handler) SellAircraft(w http.ResponseWriter, r *http.Request) {
	result, err := h.game.SellAircraft(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, result)
}

// RepairComponent handles POST /api/fleet/{id}/repair
func (h *Handler) RepairComponent(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeComponent(w, r)
	if !ok {
		return
	}
	result, err := h.game.RepairComponent(r.Context(), mux.Vars(r)["id"], req.Component)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, result)
}

// OverhaulComponent handles POST /api/fleet/{id}/overhaul
func (h *Handler) OverhaulComponent(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeComponent(w, r)
	if !ok {
		return
	}
	result, err := h.game.OverhaulComponent(r.Context(), mux.Vars(r)["id"], req.Component)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, result)
}

func decodeComponent(w http.ResponseWriter, r *http.Request) (ComponentRequest, bool) {
	var req ComponentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return req, false
	}
	if req.Component == "" {
		respondError(w, http.StatusBadRequest, "Component is required")
		return req, false
	}
	return req, true
}

// InspectAircraft handles POST /api/fleet/{id}/inspect
func (h *Handler) InspectAircraft(w http.ResponseWriter, r *http.Request) {
	result, err := h.game.InspectAircraft(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, result)
}

// GetMarket handles GET /api/market
func (h *Handler) GetMarket(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.game.MarketListings(r.Context()))
}

// PurchaseAircraft handles POST /api/market/{id}/purchase
func (h *Handler) PurchaseAircraft(w http.ResponseWriter, r *http.Request) {
	aircraft, err := h.game.PurchaseAircraft(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusCreated, aircraft)
}

// GetAvailableFlights handles GET /api/flights/available
func (h *Handler) GetAvailableFlights(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.game.AvailableFlights(r.Context()))
}

// RefreshFlights handles POST /api/flights/available/refresh
func (h *Handler) RefreshFlights(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.game.RefreshFlights(r.Context()))
}

// GetActiveFlights handles GET /api/flights/active
func (h *Handler) GetActiveFlights(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.game.ActiveFlights(r.Context()))
}

// GetCompletedFlights handles GET /api/flights/completed
func (h *Handler) GetCompletedFlights(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.game.CompletedFlights(r.Context()))
}

// EstimateFlight handles GET /api/flights/{id}/estimate?aircraftId=
func (h *Handler) EstimateFlight(w http.ResponseWriter, r *http.Request) {
	aircraftID := r.URL.Query().Get("aircraftId")
	if aircraftID == "" {
		respondError(w, http.StatusBadRequest, "aircraftId is required")
		return
	}

	result, err := h.game.EstimateFlight(r.Context(), mux.Vars(r)["id"], aircraftID)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, result)
}

// AcceptFlight handles POST /api/flights/{id}/accept
func (h *Handler) AcceptFlight(w http.ResponseWriter, r *http.Request) {
	var req AcceptFlightRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	active, err := h.game.AcceptFlight(r.Context(), mux.Vars(r)["id"], req.AircraftID)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusCreated, active)
}

// GetPendingBriefing handles GET /api/briefing
func (h *Handler) GetPendingBriefing(w http.ResponseWriter, r *http.Request) {
	active, err := h.game.PendingBriefing(r.Context())
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, active)
}

// BeginBriefing handles POST /api/flights/{id}/briefing
func (h *Handler) BeginBriefing(w http.ResponseWriter, r *http.Request) {
	active, err := h.game.BeginBriefing(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, active)
}

// CancelBriefing handles DELETE /api/briefing
func (h *Handler) CancelBriefing(w http.ResponseWriter, r *http.Request) {
	h.game.CancelBriefing(r.Context())
	w.WriteHeader(http.StatusNoContent)
}

// CompleteFlight handles POST /api/flights/{id}/complete
func (h *Handler) CompleteFlight(w http.ResponseWriter, r *http.Request) {
	var req models.Briefing
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	switch req.Severity {
	case models.SeverityNone, models.SeverityMinor, models.SeverityMajor:
	default:
		respondError(w, http.StatusBadRequest, "Severity must be minor or major")
		return
	}

	result, err := h.game.CompleteFlight(r.Context(), mux.Vars(r)["id"], req)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, result)
}
