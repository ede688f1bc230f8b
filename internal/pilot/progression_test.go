package pilot

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ProcedurallyGeneratedGoldblum/virtual-airline-manager-sub000/internal/models"
)

func TestApplyFlight_RatingRecurrence(t *testing.T) {
	p := New("Test Pilot")

	var ratings []float64
	for _, sev := range []models.Severity{models.SeverityMinor, models.SeverityMinor, models.SeverityMajor} {
		p = ApplyFlight(p, FlightResult{Distance: 50, Severity: sev, OnTime: true})
		ratings = append(ratings, math.Round(p.Rating*10)/10)
	}

	assert.Equal(t, []float64{5.0, 5.0, 4.3}, ratings)
	assert.InDelta(t, 13.0/3, p.Rating, 1e-9)
	assert.Equal(t, 3, p.TotalFlights)
}

func TestApplyFlight_Accumulates(t *testing.T) {
	p := New("Test Pilot")

	p = ApplyFlight(p, FlightResult{Hours: 1.0, Distance: 95, Earnings: 300, OnTime: true})
	assert.Equal(t, 105, p.Experience)
	assert.Equal(t, 1.0, p.TotalHours)
	assert.Equal(t, 95.0, p.TotalDistance)
	assert.Equal(t, 300.0, p.TotalEarnings)

	p = ApplyFlight(p, FlightResult{Hours: 2.5, Distance: 400.7, Earnings: 1200, OnTime: true})
	assert.Equal(t, 105+410, p.Experience)
	assert.Equal(t, 3.5, p.TotalHours)
	assert.Equal(t, 2, p.TotalFlights)
	assert.Equal(t, 1500.0, p.TotalEarnings)
	assert.Equal(t, "Second Officer", p.Rank)
	assert.Equal(t, 2000, p.NextRankXP)
}

func TestApplyFlight_OnTimePercentage(t *testing.T) {
	p := New("Test Pilot")

	p = ApplyFlight(p, FlightResult{OnTime: true})
	assert.Equal(t, 100, p.OnTimePercentage)

	p = ApplyFlight(p, FlightResult{OnTime: false})
	assert.Equal(t, 50, p.OnTimePercentage)

	p = ApplyFlight(p, FlightResult{OnTime: true})
	assert.Equal(t, 67, p.OnTimePercentage)

	p = ApplyFlight(p, FlightResult{OnTime: false})
	assert.Equal(t, 50, p.OnTimePercentage)
	assert.Equal(t, 2, p.OnTimeFlights)
}

func TestApplyFlight_OnTimePercentageLongCareer(t *testing.T) {
	p := New("Test Pilot")

	onTime := 0
	for i := 1; i <= 400; i++ {
		late := i%150 == 0
		if !late {
			onTime++
		}
		p = ApplyFlight(p, FlightResult{OnTime: !late})

		want := int(math.Round(float64(onTime) / float64(i) * 100))
		if !assert.Equal(t, want, p.OnTimePercentage, "flight %d", i) {
			break
		}
	}
	assert.Equal(t, 398, p.OnTimeFlights)
	assert.Equal(t, 100, p.OnTimePercentage)
}

func TestApplyFlight_BackfillsOnTimeCount(t *testing.T) {
	// saved before the count was tracked
	p := New("Test Pilot")
	p.TotalFlights = 4
	p.OnTimePercentage = 75

	p = ApplyFlight(p, FlightResult{OnTime: true})
	assert.Equal(t, 4, p.OnTimeFlights)
	assert.Equal(t, 80, p.OnTimePercentage)
}

func TestRankFor(t *testing.T) {
	tests := []struct {
		xp   int
		rank string
		next int
	}{
		{0, "Cadet", 500},
		{499, "Cadet", 500},
		{500, "Second Officer", 2000},
		{4999, "First Officer", 5000},
		{12000, "Senior Captain", 25000},
		{30000, "Chief Pilot", 25000},
	}

	for _, tt := range tests {
		rank, next := RankFor(tt.xp)
		assert.Equal(t, tt.rank, rank, "xp %d", tt.xp)
		assert.Equal(t, tt.next, next, "xp %d", tt.xp)
	}
}

func TestNew(t *testing.T) {
	p := New("Amelia")
	assert.Equal(t, "Amelia", p.Name)
	assert.Equal(t, StartingRank, p.Rank)
	assert.Equal(t, 500, p.NextRankXP)
	assert.Zero(t, p.TotalFlights)
}
