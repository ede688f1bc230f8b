package reference

import (
	"math"
	"strings"

	"github.com/ProcedurallyGeneratedGoldblum/virtual-airline-manager-sub000/internal/models"
)

var airports = []models.Airport{
	{Code: "EGLL", Name: "London Heathrow", Country: "United Kingdom", Region: "Europe", Latitude: 51.4700, Longitude: -0.4543},
	{Code: "EGKB", Name: "London Biggin Hill", Country: "United Kingdom", Region: "Europe", Latitude: 51.3308, Longitude: 0.0325},
	{Code: "EGBB", Name: "Birmingham", Country: "United Kingdom", Region: "Europe", Latitude: 52.4539, Longitude: -1.7480},
	{Code: "EGPH", Name: "Edinburgh", Country: "United Kingdom", Region: "Europe", Latitude: 55.9500, Longitude: -3.3725},
	{Code: "EIDW", Name: "Dublin", Country: "Ireland", Region: "Europe", Latitude: 53.4213, Longitude: -6.2701},
	{Code: "LFPG", Name: "Paris Charles de Gaulle", Country: "France", Region: "Europe", Latitude: 49.0097, Longitude: 2.5479},
	{Code: "LFLY", Name: "Lyon Bron", Country: "France", Region: "Europe", Latitude: 45.7272, Longitude: 4.9444},
	{Code: "EDDF", Name: "Frankfurt", Country: "Germany", Region: "Europe", Latitude: 50.0379, Longitude: 8.5622},
	{Code: "EDDM", Name: "Munich", Country: "Germany", Region: "Europe", Latitude: 48.3538, Longitude: 11.7861},
	{Code: "EHAM", Name: "Amsterdam Schiphol", Country: "Netherlands", Region: "Europe", Latitude: 52.3105, Longitude: 4.7683},
	{Code: "LSZH", Name: "Zurich", Country: "Switzerland", Region: "Europe", Latitude: 47.4582, Longitude: 8.5555},
	{Code: "LEMD", Name: "Madrid Barajas", Country: "Spain", Region: "Europe", Latitude: 40.4983, Longitude: -3.5676},
	{Code: "LIRF", Name: "Rome Fiumicino", Country: "Italy", Region: "Europe", Latitude: 41.8003, Longitude: 12.2389},
	{Code: "KJFK", Name: "New York JFK", Country: "United States", Region: "North America", Latitude: 40.6413, Longitude: -73.7781},
	{Code: "KBOS", Name: "Boston Logan", Country: "United States", Region: "North America", Latitude: 42.3656, Longitude: -71.0096},
	{Code: "KTEB", Name: "Teterboro", Country: "United States", Region: "North America", Latitude: 40.8501, Longitude: -74.0608},
	{Code: "KPHL", Name: "Philadelphia", Country: "United States", Region: "North America", Latitude: 39.8744, Longitude: -75.2424},
	{Code: "CYYZ", Name: "Toronto Pearson", Country: "Canada", Region: "North America", Latitude: 43.6777, Longitude: -79.6248},
	{Code: "CYUL", Name: "Montreal Trudeau", Country: "Canada", Region: "North America", Latitude: 45.4706, Longitude: -73.7408},
	{Code: "YSSY", Name: "Sydney Kingsford Smith", Country: "Australia", Region: "Oceania", Latitude: -33.9399, Longitude: 151.1753},
	{Code: "YMML", Name: "Melbourne", Country: "Australia", Region: "Oceania", Latitude: -37.6690, Longitude: 144.8410},
	{Code: "NZAA", Name: "Auckland", Country: "New Zealand", Region: "Oceania", Latitude: -37.0082, Longitude: 174.7850},
	{Code: "RJTT", Name: "Tokyo Haneda", Country: "Japan", Region: "Asia", Latitude: 35.5494, Longitude: 139.7798},
	{Code: "RJAA", Name: "Tokyo Narita", Country: "Japan", Region: "Asia", Latitude: 35.7720, Longitude: 140.3929},
}

var airportsByCode = func() map[string]models.Airport {
	m := make(map[string]models.Airport, len(airports))
	for _, a := range airports {
		m[a.Code] = a
	}
	return m
}()

// Airports returns the airport table.
func Airports() []models.Airport {
	out := make([]models.Airport, len(airports))
	copy(out, airports)
	return out
}

// AirportByCode returns an airport by its ICAO-like code.
func AirportByCode(code string) (models.Airport, bool) {
	ap, ok := airportsByCode[strings.ToUpper(strings.TrimSpace(code))]
	return ap, ok
}

// CountryForLocation resolves the country of a location string. The string may be an
// airport code or free text mentioning a known country or airport name.
func CountryForLocation(location string) (string, bool) {
	loc := strings.TrimSpace(location)
	if loc == "" {
		return "", false
	}
	if ap, ok := AirportByCode(loc); ok {
		return ap.Country, true
	}
	lower := strings.ToLower(loc)
	for _, ap := range airports {
		if strings.Contains(lower, strings.ToLower(ap.Country)) || strings.Contains(lower, strings.ToLower(ap.Name)) {
			return ap.Country, true
		}
	}
	return "", false
}

// DistanceNM returns the great-circle distance between two airports in nautical miles.
func DistanceNM(a, b models.Airport) float64 {
	return haversine(a.Latitude, a.Longitude, b.Latitude, b.Longitude) / 1.852
}

func haversine(lat1, lon1, lat2, lon2 float64) float64 {
	const R = 6371.0
	dLat := toRad(lat2 - lat1)
	dLon := toRad(lon2 - lon1)
	a := math.Sin(dLat/2)*math.Sin(dLat/2) + math.Cos(toRad(lat1))*math.Cos(toRad(lat2))*math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
	return R * c
}

func toRad(deg float64) float64 {
	return deg * math.Pi / 180
}
