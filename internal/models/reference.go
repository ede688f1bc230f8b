package models

// AircraftType is the static performance profile of an aircraft model
type AircraftType struct {
	ID            string  `json:"id"`
	Manufacturer  string  `json:"manufacturer"`
	Model         string  `json:"model"`
	Seats         int     `json:"seats"`
	FuelBurn      float64 `json:"fuelBurn"`
	MaintPerHour  float64 `json:"maintenanceCostPerHour"`
	CruiseSpeed   float64 `json:"cruiseSpeed"`
	BasePrice     float64 `json:"basePrice"`
	PriceVariance float64 `json:"priceVariance"`
	YearMin       int     `json:"yearMin"`
	YearMax       int     `json:"yearMax"`
}

// Airport is a static location descriptor
type Airport struct {
	Code      string  `json:"code"`
	Name      string  `json:"name"`
	Country   string  `json:"country"`
	Region    string  `json:"region"`
	Latitude  float64 `json:"lat"`
	Longitude float64 `json:"lon"`
}
