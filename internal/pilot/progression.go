// Package pilot tracks the player's experience, rating and rank.
package pilot

import (
	"math"

	"github.com/ProcedurallyGeneratedGoldblum/virtual-airline-manager-sub000/internal/models"
)

const (
	BaseXP       = 10
	GoodRating   = 5.0
	MajorRating  = 3.0
	StartingRank = "Cadet"
)

// Rank is one rung of the career ladder
type Rank struct {
	Name string `json:"name"`
	XP   int    `json:"xp"`
}

// Ranks is ordered by required experience.
var Ranks = []Rank{
	{Name: StartingRank, XP: 0},
	{Name: "Second Officer", XP: 500},
	{Name: "First Officer", XP: 2000},
	{Name: "Captain", XP: 5000},
	{Name: "Senior Captain", XP: 12000},
	{Name: "Chief Pilot", XP: 25000},
}

// FlightResult is what a completed flight contributes to the pilot record
type FlightResult struct {
	Hours    float64
	Distance float64
	Earnings float64
	Severity models.Severity
	OnTime   bool
}

// New returns a fresh pilot at the bottom of the ladder.
func New(name string) models.Pilot {
	p := models.Pilot{Name: name}
	p.Rank, p.NextRankXP = RankFor(0)
	return p
}

// ExperienceFor is the XP earned by a flight of the given distance.
func ExperienceFor(distance float64) int {
	return BaseXP + int(distance)
}

// FlightRating scores a single flight.
func FlightRating(severity models.Severity) float64 {
	if severity == models.SeverityMajor {
		return MajorRating
	}
	return GoodRating
}

// RankFor returns the rank held at xp and the XP needed for the next one.
// At the top of the ladder the next threshold is the top threshold.
func RankFor(xp int) (string, int) {
	idx := 0
	for i, r := range Ranks {
		if xp >= r.XP {
			idx = i
		}
	}
	next := Ranks[len(Ranks)-1].XP
	if idx+1 < len(Ranks) {
		next = Ranks[idx+1].XP
	}
	return Ranks[idx].Name, next
}

// ApplyFlight returns the pilot record after one more completed flight.
func ApplyFlight(p models.Pilot, f FlightResult) models.Pilot {
	prevFlights := p.TotalFlights
	flights := prevFlights + 1

	r := FlightRating(f.Severity)
	if prevFlights == 0 {
		p.Rating = r
	} else {
		p.Rating = (p.Rating*float64(prevFlights) + r) / float64(flights)
	}

	// Records saved before the count existed only carry the percentage.
	if p.OnTimeFlights == 0 && p.OnTimePercentage > 0 && prevFlights > 0 {
		p.OnTimeFlights = int(math.Round(float64(p.OnTimePercentage) / 100 * float64(prevFlights)))
	}
	if f.OnTime {
		p.OnTimeFlights++
	}
	p.OnTimePercentage = int(math.Round(float64(p.OnTimeFlights) / float64(flights) * 100))

	p.TotalFlights = flights
	p.TotalHours += f.Hours
	p.TotalDistance += f.Distance
	p.TotalEarnings += f.Earnings
	p.Experience += ExperienceFor(f.Distance)
	p.Rank, p.NextRankXP = RankFor(p.Experience)
	return p
}
