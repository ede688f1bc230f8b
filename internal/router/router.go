package router

import (
	"net/http"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/gorilla/mux"
	"github.com/rs/zerolog"

	"github.com/ProcedurallyGeneratedGoldblum/virtual-airline-manager-sub000/internal/handlers"
	"github.com/ProcedurallyGeneratedGoldblum/virtual-airline-manager-sub000/internal/logging"
)

// SetupRouter creates and configures the HTTP router. ws serves the event
// stream and may be nil.
func SetupRouter(h *handlers.Handler, ws http.HandlerFunc, log zerolog.Logger) *mux.Router {
	r := mux.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(logging.Middleware(log))
	r.Use(middleware.Recoverer)
	r.Use(corsMiddleware)

	// API routes
	api := r.PathPrefix("/api").Subrouter()

	api.HandleFunc("/state", h.GetState).Methods(http.MethodGet, http.MethodOptions)

	// Company and pilot
	api.HandleFunc("/company", h.GetCompany).Methods(http.MethodGet, http.MethodOptions)
	api.HandleFunc("/company", h.UpdateCompany).Methods(http.MethodPut, http.MethodOptions)
	api.HandleFunc("/pilot", h.GetPilot).Methods(http.MethodGet, http.MethodOptions)

	// Fleet
	api.HandleFunc("/fleet", h.GetFleet).Methods(http.MethodGet, http.MethodOptions)
	api.HandleFunc("/fleet/available", h.GetAvailableAircraft).Methods(http.MethodGet, http.MethodOptions)
	api.HandleFunc("/fleet/{id}", h.GetAircraft).Methods(http.MethodGet, http.MethodOptions)
	api.HandleFunc("/fleet/{id}", h.SellAircraft).Methods(http.MethodDelete, http.MethodOptions)
	api.HandleFunc("/fleet/{id}/repair", h.RepairComponent).Methods(http.MethodPost, http.MethodOptions)
	api.HandleFunc("/fleet/{id}/overhaul", h.OverhaulComponent).Methods(http.MethodPost, http.MethodOptions)
	api.HandleFunc("/fleet/{id}/inspect", h.InspectAircraft).Methods(http.MethodPost, http.MethodOptions)

	// Marketplace
	api.HandleFunc("/market", h.GetMarket).Methods(http.MethodGet, http.MethodOptions)
	api.HandleFunc("/market/{id}/purchase", h.PurchaseAircraft).Methods(http.MethodPost, http.MethodOptions)

	// Flights
	api.HandleFunc("/flights/available", h.GetAvailableFlights).Methods(http.MethodGet, http.MethodOptions)
	api.HandleFunc("/flights/available/refresh", h.RefreshFlights).Methods(http.MethodPost, http.MethodOptions)
	api.HandleFunc("/flights/active", h.GetActiveFlights).Methods(http.MethodGet, http.MethodOptions)
	api.HandleFunc("/flights/completed", h.GetCompletedFlights).Methods(http.MethodGet, http.MethodOptions)
	api.HandleFunc("/flights/{id}/estimate", h.EstimateFlight).Methods(http.MethodGet, http.MethodOptions)
	api.HandleFunc("/flights/{id}/accept", h.AcceptFlight).Methods(http.MethodPost, http.MethodOptions)
	api.HandleFunc("/flights/{id}/briefing", h.BeginBriefing).Methods(http.MethodPost, http.MethodOptions)
	api.HandleFunc("/flights/{id}/complete", h.CompleteFlight).Methods(http.MethodPost, http.MethodOptions)

	// Briefing
	api.HandleFunc("/briefing", h.GetPendingBriefing).Methods(http.MethodGet, http.MethodOptions)
	api.HandleFunc("/briefing", h.CancelBriefing).Methods(http.MethodDelete, http.MethodOptions)

	// WebSocket for real-time updates
	if ws != nil {
		api.HandleFunc("/ws", ws).Methods(http.MethodGet)
	}

	// Health check
	r.HandleFunc("/health", healthCheck).Methods(http.MethodGet)

	return r
}

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func healthCheck(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"healthy"}`))
}
