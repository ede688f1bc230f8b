package service

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const instrumentationName = "github.com/ProcedurallyGeneratedGoldblum/virtual-airline-manager-sub000/internal/service"

type metrics struct {
	flightsAccepted  metric.Int64Counter
	flightsCompleted metric.Int64Counter
	revenue          metric.Float64Counter
	maintenanceSpend metric.Float64Counter
	aircraftSold     metric.Int64Counter
}

// newMetrics uses the global provider, which is a no-op unless one is installed.
func newMetrics() (*metrics, error) {
	m := otel.Meter(instrumentationName)
	var (
		out metrics
		err error
	)

	if out.flightsAccepted, err = m.Int64Counter("airline.flights.accepted",
		metric.WithDescription("Flights accepted from the dispatch board")); err != nil {
		return nil, fmt.Errorf("creating flights accepted counter: %w", err)
	}
	if out.flightsCompleted, err = m.Int64Counter("airline.flights.completed",
		metric.WithDescription("Flights completed with a briefing")); err != nil {
		return nil, fmt.Errorf("creating flights completed counter: %w", err)
	}
	if out.revenue, err = m.Float64Counter("airline.revenue",
		metric.WithDescription("Revenue booked on completed flights")); err != nil {
		return nil, fmt.Errorf("creating revenue counter: %w", err)
	}
	if out.maintenanceSpend, err = m.Float64Counter("airline.maintenance.spend",
		metric.WithDescription("Money spent on repairs, overhauls and inspections")); err != nil {
		return nil, fmt.Errorf("creating maintenance counter: %w", err)
	}
	if out.aircraftSold, err = m.Int64Counter("airline.aircraft.sold",
		metric.WithDescription("Aircraft sold to the dealer")); err != nil {
		return nil, fmt.Errorf("creating aircraft sold counter: %w", err)
	}
	return &out, nil
}

func (m *metrics) flightAccepted(ctx context.Context, cargo string) {
	m.flightsAccepted.Add(ctx, 1, metric.WithAttributes(attribute.String("cargo", cargo)))
}

func (m *metrics) flightCompleted(ctx context.Context, revenue float64, severity string) {
	m.flightsCompleted.Add(ctx, 1, metric.WithAttributes(attribute.String("severity", severity)))
	m.revenue.Add(ctx, revenue)
}

func (m *metrics) maintenance(ctx context.Context, action string, cost float64) {
	m.maintenanceSpend.Add(ctx, cost, metric.WithAttributes(attribute.String("action", action)))
}

func (m *metrics) sold(ctx context.Context) {
	m.aircraftSold.Add(ctx, 1)
}
