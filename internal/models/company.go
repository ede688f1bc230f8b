package models

// Company holds the airline's aggregate counters and identity
type Company struct {
	Name          string  `json:"name"`
	Callsign      string  `json:"callsign"`
	Headquarters  string  `json:"headquarters"`
	FocusArea     string  `json:"focusArea"`
	Balance       float64 `json:"balance"`
	Aircraft      int     `json:"aircraft"`
	TotalFlights  int     `json:"totalFlights"`
	TotalEarnings float64 `json:"totalEarnings"`
	FlightHours   float64 `json:"flightHours"`
}

// CompanyProfile is the editable identity of the company
type CompanyProfile struct {
	Name         string `json:"name"`
	Callsign     string `json:"callsign"`
	Headquarters string `json:"headquarters"`
	FocusArea    string `json:"focusArea"`
}

// Pilot holds the player's aggregate performance
type Pilot struct {
	Name             string  `json:"name"`
	Rank             string  `json:"rank"`
	TotalFlights     int     `json:"totalFlights"`
	TotalHours       float64 `json:"totalHours"`
	TotalDistance    float64 `json:"totalDistance"`
	TotalEarnings    float64 `json:"totalEarnings"`
	Rating           float64 `json:"rating"`
	OnTimePercentage int     `json:"onTimePercentage"`
	OnTimeFlights    int     `json:"onTimeFlights"`
	Experience       int     `json:"experience"`
	NextRankXP       int     `json:"nextRankXP"`
}
