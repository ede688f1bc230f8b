package fleet

import (
	"math"

	"github.com/ProcedurallyGeneratedGoldblum/virtual-airline-manager-sub000/internal/models"
	"github.com/ProcedurallyGeneratedGoldblum/virtual-airline-manager-sub000/internal/reference"
)

const (
	// UnknownPriceFactor values an aircraft without a purchase price against its type's base price.
	UnknownPriceFactor = 0.6
	DealerMargin       = 0.2
)

var labelFactors = map[models.ConditionLabel]float64{
	models.ConditionExcellent:           0.9,
	models.ConditionGood:                0.8,
	models.ConditionFair:                0.65,
	models.ConditionPoor:                0.5,
	models.ConditionMaintenanceRequired: 0.3,
}

// BaseValue is the purchase price, or a fraction of the type's base price when unknown.
func BaseValue(ac *models.Aircraft) float64 {
	if ac.Price > 0 {
		return ac.Price
	}
	return reference.AircraftTypeOrGeneric(ac.Type).BasePrice * UnknownPriceFactor
}

// ConditionFactor blends engine, airframe and avionics health at 50/30/20.
// Without detailed readings the qualitative label decides.
func ConditionFactor(ac *models.Aircraft) float64 {
	if d := ac.ConditionDetails; d != nil {
		return (0.5*d.Engine + 0.3*d.Airframe + 0.2*d.Avionics) / 100
	}
	if f, ok := labelFactors[ac.Condition]; ok {
		return f
	}
	return labelFactors[models.ConditionFair]
}

// SellPrice is what a dealer pays for the aircraft.
func SellPrice(ac *models.Aircraft) float64 {
	return math.Floor(BaseValue(ac) * ConditionFactor(ac) * (1 - DealerMargin))
}
