package reference

import (
	"fmt"
	"math"
	"math/rand"
	"strings"

	"github.com/google/uuid"

	"github.com/ProcedurallyGeneratedGoldblum/virtual-airline-manager-sub000/internal/models"
)

// WeatherCategories are the flight-rules categories assigned to offers.
var WeatherCategories = []string{"VFR", "MVFR", "IFR", "LIFR"}

const (
	urgentChance    = 0.2
	offerBlockSpeed = 140.0
	offerTaxiBuffer = 0.3
)

var passengerNotes = []string{
	"Business charter, client prefers a smooth ride",
	"Family trip with light baggage",
	"Photographer on board, scenic routing appreciated",
	"Return leg of a weekend getaway",
}

var freightNotes = []string{
	"Medical supplies, keep the cabin cool",
	"Spare parts for a grounded aircraft",
	"Mail run",
	"Fragile instruments, handle with care",
}

var ferryNotes = []string{
	"Reposition for an upcoming charter",
	"Positioning flight, no payload",
}

// GenerateFlights builds n flight offers departing from the given airport codes.
// When no origin is known, any airport in the table may be used.
func GenerateFlights(rng *rand.Rand, n int, origins []string) []models.Flight {
	pool := make([]models.Airport, 0, len(origins))
	seen := make(map[string]bool)
	for _, code := range origins {
		ap, ok := AirportByCode(code)
		if !ok || seen[ap.Code] {
			continue
		}
		seen[ap.Code] = true
		pool = append(pool, ap)
	}
	if len(pool) == 0 {
		pool = Airports()
	}

	flights := make([]models.Flight, 0, n)
	for i := 0; i < n; i++ {
		from := pool[rng.Intn(len(pool))]
		to := pickDestination(rng, from)
		dist := math.Round(DistanceNM(from, to))

		f := models.Flight{
			ID:       uuid.NewString(),
			FromName: from.Name,
			FromCode: from.Code,
			ToName:   to.Name,
			ToCode:   to.Code,
			Distance: dist,
			Duration: math.Round((dist/offerBlockSpeed+offerTaxiBuffer)*10) / 10,
			Priority: models.PriorityNormal,
			Weather:  WeatherCategories[rng.Intn(len(WeatherCategories))],
		}
		if rng.Float64() < urgentChance {
			f.Priority = models.PriorityUrgent
		}

		switch roll := rng.Float64(); {
		case roll < 0.6:
			f.Cargo = models.Cargo{Type: models.CargoPassengers, Passengers: 1 + rng.Intn(6)}
			f.Notes = passengerNotes[rng.Intn(len(passengerNotes))]
		case roll < 0.85:
			f.Cargo = models.Cargo{Type: models.CargoFreight}
			f.Notes = freightNotes[rng.Intn(len(freightNotes))]
		default:
			f.Cargo = models.Cargo{Type: models.CargoFerry}
			f.Notes = ferryNotes[rng.Intn(len(ferryNotes))]
		}
		flights = append(flights, f)
	}
	return flights
}

func pickDestination(rng *rand.Rand, from models.Airport) models.Airport {
	var regional, others []models.Airport
	for _, ap := range airports {
		if ap.Code == from.Code {
			continue
		}
		if ap.Region == from.Region {
			regional = append(regional, ap)
		} else {
			others = append(others, ap)
		}
	}
	if len(regional) > 0 {
		return regional[rng.Intn(len(regional))]
	}
	return others[rng.Intn(len(others))]
}

// GenerateListings builds n used aircraft offers for the marketplace.
func GenerateListings(rng *rand.Rand, n int) []models.Listing {
	listings := make([]models.Listing, 0, n)
	for i := 0; i < n; i++ {
		t := aircraftTypes[rng.Intn(len(aircraftTypes))]
		year := t.YearMin + rng.Intn(t.YearMax-t.YearMin+1)
		age := t.YearMax - year

		variance := 1 + (rng.Float64()*2-1)*t.PriceVariance
		ageFactor := 1 - math.Min(0.5, float64(age)*0.01)
		hours := float64(age * (150 + rng.Intn(250)))
		ap := airports[rng.Intn(len(airports))]

		listings = append(listings, models.Listing{
			ID:           uuid.NewString(),
			Type:         t.ID,
			Manufacturer: t.Manufacturer,
			Model:        t.Model,
			Year:         year,
			Price:        math.Round(t.BasePrice * variance * ageFactor),
			Location:     ap.Code,
			TotalHours:   hours,
			ConditionDetails: models.ConditionDetails{
				Engine:     componentHealth(rng),
				Avionics:   componentHealth(rng),
				Interior:   componentHealth(rng),
				Airframe:   componentHealth(rng),
				EngineSMOH: math.Mod(hours, 2000),
			},
		})
	}
	return listings
}

func componentHealth(rng *rand.Rand) float64 {
	return math.Round(65 + rng.Float64()*35)
}

// DescribeAirport renders an airport as "Name (CODE)", or the raw code when unknown.
func DescribeAirport(code string) string {
	if ap, ok := AirportByCode(code); ok {
		return fmt.Sprintf("%s (%s)", ap.Name, ap.Code)
	}
	return strings.ToUpper(strings.TrimSpace(code))
}
