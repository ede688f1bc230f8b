// Package condition models per-component aircraft health and the
// maintenance actions that restore it.
package condition

import (
	"errors"
	"fmt"
	"math"

	"github.com/ProcedurallyGeneratedGoldblum/virtual-airline-manager-sub000/internal/models"
)

var (
	ErrInsufficientFunds = errors.New("insufficient funds")
	ErrUnknownComponent  = errors.New("unknown component")
)

const (
	MinHealth    = 0.0
	MaxHealth    = 100.0
	RepairAmount = 20.0
)

// RepairCosts is the flat price of a repair per component.
var RepairCosts = map[models.Component]float64{
	models.ComponentEngine:   5000,
	models.ComponentAvionics: 3000,
	models.ComponentInterior: 1500,
	models.ComponentAirframe: 4000,
}

// OverhaulCosts is the flat price of an overhaul per component.
var OverhaulCosts = map[models.Component]float64{
	models.ComponentEngine:   25000,
	models.ComponentAvionics: 12000,
	models.ComponentInterior: 6000,
	models.ComponentAirframe: 18000,
}

// health assumed for each label when an aircraft has no detailed readings
var labelHealth = map[models.ConditionLabel]float64{
	models.ConditionExcellent:           95,
	models.ConditionGood:                85,
	models.ConditionFair:                70,
	models.ConditionPoor:                50,
	models.ConditionMaintenanceRequired: 30,
}

var stepDown = map[models.ConditionLabel]models.ConditionLabel{
	models.ConditionExcellent: models.ConditionGood,
	models.ConditionGood:      models.ConditionFair,
	models.ConditionFair:      models.ConditionPoor,
}

// Average is the unweighted mean of the four component scores.
func Average(d models.ConditionDetails) float64 {
	return (d.Engine + d.Avionics + d.Interior + d.Airframe) / 4
}

// Label maps component health to a qualitative condition.
func Label(d models.ConditionDetails) models.ConditionLabel {
	switch avg := Average(d); {
	case avg > 90:
		return models.ConditionExcellent
	case avg > 75:
		return models.ConditionGood
	case avg > 60:
		return models.ConditionFair
	case avg > 40:
		return models.ConditionPoor
	default:
		return models.ConditionMaintenanceRequired
	}
}

// RecomputeLabel refreshes the aircraft's label from its component health.
// Aircraft without detailed readings keep their label.
func RecomputeLabel(ac *models.Aircraft) models.ConditionLabel {
	if ac.ConditionDetails != nil {
		ac.Condition = Label(*ac.ConditionDetails)
	}
	return ac.Condition
}

// StepDown returns the label one rung below. Poor and maintenance-required stay put.
func StepDown(label models.ConditionLabel) models.ConditionLabel {
	if next, ok := stepDown[label]; ok {
		return next
	}
	return label
}

// Degrade applies the qualitative hit of a flight with a major defect.
func Degrade(ac *models.Aircraft) {
	ac.Condition = StepDown(ac.Condition)
}

// Wear lowers a component's health by amount and refreshes the label.
func Wear(ac *models.Aircraft, component models.Component, amount float64) error {
	d := EnsureDetails(ac)
	v, err := field(d, component)
	if err != nil {
		return err
	}
	*v = clamp(*v - amount)
	RecomputeLabel(ac)
	return nil
}

// EnsureDetails seeds detailed readings from the label when none are present.
func EnsureDetails(ac *models.Aircraft) *models.ConditionDetails {
	if ac.ConditionDetails == nil {
		h, ok := labelHealth[ac.Condition]
		if !ok {
			h = labelHealth[models.ConditionGood]
		}
		ac.ConditionDetails = &models.ConditionDetails{Engine: h, Avionics: h, Interior: h, Airframe: h}
	}
	return ac.ConditionDetails
}

// Repair adds a fixed amount of health to the component, capped at 100.
// It returns the cost charged, or ErrInsufficientFunds without touching the aircraft.
func Repair(ac *models.Aircraft, component models.Component, funds float64) (float64, error) {
	cost, ok := RepairCosts[component]
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrUnknownComponent, component)
	}
	if funds < cost {
		return 0, fmt.Errorf("repair %s needs %.2f: %w", component, cost, ErrInsufficientFunds)
	}

	v, _ := field(EnsureDetails(ac), component)
	*v = clamp(*v + RepairAmount)
	RecomputeLabel(ac)
	return cost, nil
}

// Overhaul restores the component to full health. An engine overhaul also
// resets the hours since major overhaul.
func Overhaul(ac *models.Aircraft, component models.Component, funds float64) (float64, error) {
	cost, ok := OverhaulCosts[component]
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrUnknownComponent, component)
	}
	if funds < cost {
		return 0, fmt.Errorf("overhaul %s needs %.2f: %w", component, cost, ErrInsufficientFunds)
	}

	d := EnsureDetails(ac)
	v, _ := field(d, component)
	*v = MaxHealth
	if component == models.ComponentEngine {
		d.EngineSMOH = 0
	}
	RecomputeLabel(ac)
	return cost, nil
}

// ParseComponent validates a component name.
func ParseComponent(name string) (models.Component, error) {
	c := models.Component(name)
	if _, ok := RepairCosts[c]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownComponent, name)
	}
	return c, nil
}

func field(d *models.ConditionDetails, component models.Component) (*float64, error) {
	switch component {
	case models.ComponentEngine:
		return &d.Engine, nil
	case models.ComponentAvionics:
		return &d.Avionics, nil
	case models.ComponentInterior:
		return &d.Interior, nil
	case models.ComponentAirframe:
		return &d.Airframe, nil
	}
	return nil, fmt.Errorf("%w: %s", ErrUnknownComponent, component)
}

func clamp(v float64) float64 {
	return math.Max(MinHealth, math.Min(MaxHealth, v))
}
