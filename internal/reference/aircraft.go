package reference

import (
	"strings"

	"github.com/ProcedurallyGeneratedGoldblum/virtual-airline-manager-sub000/internal/models"
)

// GenericType is used when an aircraft type is not in the catalog.
var GenericType = models.AircraftType{
	ID:            "GENERIC",
	Manufacturer:  "Generic",
	Model:         "Light Single",
	Seats:         3,
	FuelBurn:      10,
	MaintPerHour:  100,
	CruiseSpeed:   120,
	BasePrice:     150_000,
	PriceVariance: 0.15,
	YearMin:       1975,
	YearMax:       2015,
}

var aircraftTypes = []models.AircraftType{
	{ID: "C172", Manufacturer: "Cessna", Model: "172 Skyhawk", Seats: 3, FuelBurn: 8.5, MaintPerHour: 85, CruiseSpeed: 122, BasePrice: 200_000, PriceVariance: 0.15, YearMin: 1980, YearMax: 2022},
	{ID: "PA28", Manufacturer: "Piper", Model: "PA-28 Archer", Seats: 3, FuelBurn: 9, MaintPerHour: 90, CruiseSpeed: 128, BasePrice: 180_000, PriceVariance: 0.2, YearMin: 1975, YearMax: 2020},
	{ID: "SR22", Manufacturer: "Cirrus", Model: "SR22", Seats: 3, FuelBurn: 15, MaintPerHour: 140, CruiseSpeed: 183, BasePrice: 650_000, PriceVariance: 0.12, YearMin: 2005, YearMax: 2023},
	{ID: "BE58", Manufacturer: "Beechcraft", Model: "Baron 58", Seats: 5, FuelBurn: 28, MaintPerHour: 260, CruiseSpeed: 200, BasePrice: 900_000, PriceVariance: 0.18, YearMin: 1985, YearMax: 2022},
	{ID: "C208", Manufacturer: "Cessna", Model: "208B Grand Caravan", Seats: 9, FuelBurn: 52, MaintPerHour: 380, CruiseSpeed: 186, BasePrice: 2_200_000, PriceVariance: 0.12, YearMin: 1995, YearMax: 2023},
	{ID: "PC12", Manufacturer: "Pilatus", Model: "PC-12 NGX", Seats: 9, FuelBurn: 60, MaintPerHour: 420, CruiseSpeed: 285, BasePrice: 4_500_000, PriceVariance: 0.1, YearMin: 2000, YearMax: 2023},
	{ID: "DHC6", Manufacturer: "de Havilland Canada", Model: "DHC-6 Twin Otter", Seats: 19, FuelBurn: 85, MaintPerHour: 600, CruiseSpeed: 170, BasePrice: 3_800_000, PriceVariance: 0.2, YearMin: 1975, YearMax: 2018},
	{ID: "BE20", Manufacturer: "Beechcraft", Model: "King Air 350", Seats: 9, FuelBurn: 100, MaintPerHour: 650, CruiseSpeed: 312, BasePrice: 6_500_000, PriceVariance: 0.1, YearMin: 1995, YearMax: 2023},
}

var typesByID = func() map[string]models.AircraftType {
	m := make(map[string]models.AircraftType, len(aircraftTypes))
	for _, t := range aircraftTypes {
		m[t.ID] = t
	}
	return m
}()

// AircraftTypes returns the aircraft type catalog.
func AircraftTypes() []models.AircraftType {
	out := make([]models.AircraftType, len(aircraftTypes))
	copy(out, aircraftTypes)
	return out
}

// AircraftType looks up a profile by type id.
func AircraftType(id string) (models.AircraftType, bool) {
	t, ok := typesByID[strings.ToUpper(strings.TrimSpace(id))]
	return t, ok
}

// AircraftTypeOrGeneric looks up a profile, falling back to GenericType.
func AircraftTypeOrGeneric(id string) models.AircraftType {
	if t, ok := AircraftType(id); ok {
		return t
	}
	return GenericType
}
