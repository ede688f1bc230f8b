package finance

import (
	"math"

	"github.com/ProcedurallyGeneratedGoldblum/virtual-airline-manager-sub000/internal/models"
	"github.com/ProcedurallyGeneratedGoldblum/virtual-airline-manager-sub000/internal/reference"
)

const (
	// TaxiBuffer is added to every airborne estimate to cover taxi, climb and approach.
	TaxiBuffer = 0.3

	FuelPricePerGallon = 6.50
	PilotHourlyRate    = 75.0

	LandingFeeMajor    = 75.0
	LandingFeeStandard = 25.0

	PassengerBaseFare   = 45.0
	PassengerFarePerNM  = 0.35
	FreightRatePerNM    = 2.50
	UrgentFreightPerNM  = 3.75
	UrgentRevenueFactor = 1.25
)

// Expenses is the cost breakdown of a single flight
type Expenses struct {
	Fuel        float64 `json:"fuel"`
	PilotPay    float64 `json:"pilotPay"`
	Maintenance float64 `json:"maintenance"`
	LandingFee  float64 `json:"landingFee"`
}

// Total sums every expense line.
func (e Expenses) Total() float64 {
	return e.Fuel + e.PilotPay + e.Maintenance + e.LandingFee
}

// Result is the economic outcome of flying a flight with a given aircraft
type Result struct {
	Revenue    float64  `json:"revenue"`
	Expenses   Expenses `json:"expenses"`
	TotalCost  float64  `json:"totalCost"`
	Profit     float64  `json:"profit"`
	FlightTime float64  `json:"flightTime"`
}

// Calculate prices a flight for an aircraft. It returns nil when either is
// missing; callers fall back to the earnings entered in the briefing.
func Calculate(flight *models.Flight, aircraft *models.Aircraft) *Result {
	if flight == nil || aircraft == nil {
		return nil
	}
	profile := reference.AircraftTypeOrGeneric(aircraft.Type)

	flightTime := EstimateFlightTime(flight.Distance, profile.CruiseSpeed)
	expenses := Expenses{
		Fuel:        roundCents(flightTime * profile.FuelBurn * FuelPricePerGallon),
		PilotPay:    roundCents(flightTime * PilotHourlyRate),
		Maintenance: roundCents(flightTime * profile.MaintPerHour),
		LandingFee:  LandingFee(flight.ToCode),
	}
	revenue := Revenue(flight)
	total := roundCents(expenses.Total())

	return &Result{
		Revenue:    revenue,
		Expenses:   expenses,
		TotalCost:  total,
		Profit:     roundCents(revenue - total),
		FlightTime: math.Round(flightTime*100) / 100,
	}
}

// EstimateFlightTime returns block hours for a distance at the given cruise speed.
func EstimateFlightTime(distance, cruiseSpeed float64) float64 {
	if cruiseSpeed <= 0 {
		cruiseSpeed = reference.GenericType.CruiseSpeed
	}
	return distance/cruiseSpeed + TaxiBuffer
}

// LandingFee charges more at major airports, identified by a four-letter code.
func LandingFee(code string) float64 {
	if len(code) >= 4 {
		return LandingFeeMajor
	}
	return LandingFeeStandard
}

// Revenue prices the payload of a flight.
func Revenue(flight *models.Flight) float64 {
	urgent := flight.Priority == models.PriorityUrgent

	var revenue float64
	switch flight.Cargo.Type {
	case models.CargoPassengers:
		fare := PassengerBaseFare + PassengerFarePerNM*flight.Distance
		revenue = float64(flight.Cargo.Passengers) * fare
	case models.CargoFreight:
		rate := FreightRatePerNM
		if urgent {
			rate = UrgentFreightPerNM
		}
		revenue = flight.Distance * rate
	}

	if urgent && revenue > 0 {
		revenue *= UrgentRevenueFactor
	}
	return roundCents(revenue)
}

func roundCents(v float64) float64 {
	return math.Round(v*100) / 100
}
