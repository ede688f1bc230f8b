package models

// AircraftStatus represents the operational status of an aircraft
type AircraftStatus string

const (
	AircraftStatusAvailable    AircraftStatus = "available"
	AircraftStatusInFlight     AircraftStatus = "in-flight"
	AircraftStatusMaintenance  AircraftStatus = "maintenance"
	AircraftStatusOutOfService AircraftStatus = "out-of-service"
)

// ConditionLabel is the qualitative condition derived from component health
type ConditionLabel string

const (
	ConditionExcellent           ConditionLabel = "excellent"
	ConditionGood                ConditionLabel = "good"
	ConditionFair                ConditionLabel = "fair"
	ConditionPoor                ConditionLabel = "poor"
	ConditionMaintenanceRequired ConditionLabel = "maintenance-required"
)

// Component names one of the tracked aircraft systems
type Component string

const (
	ComponentEngine   Component = "engine"
	ComponentAvionics Component = "avionics"
	ComponentInterior Component = "interior"
	ComponentAirframe Component = "airframe"
)

// Components lists every tracked component in display order.
var Components = []Component{ComponentEngine, ComponentAvionics, ComponentInterior, ComponentAirframe}

// ConditionDetails holds per-component health on a 0-100 scale
type ConditionDetails struct {
	Engine   float64 `json:"engine"`
	Avionics float64 `json:"avionics"`
	Interior float64 `json:"interior"`
	Airframe float64 `json:"airframe"`
	// EngineSMOH is engine hours since major overhaul.
	EngineSMOH float64 `json:"engineSmoh"`
}

// MELSeverity classifies an outstanding defect
type MELSeverity string

const (
	MELMinor MELSeverity = "minor"
	MELMajor MELSeverity = "major"
)

// MELItem is an outstanding defect the aircraft may fly with
type MELItem struct {
	Item string      `json:"item"`
	Type MELSeverity `json:"type"`
}

// Aircraft represents an owned aircraft in the fleet
type Aircraft struct {
	ID                   string            `json:"id"`
	Registration         string            `json:"registration"`
	Type                 string            `json:"type"`
	Manufacturer         string            `json:"manufacturer"`
	Model                string            `json:"model"`
	Year                 int               `json:"year"`
	Status               AircraftStatus    `json:"status"`
	Location             string            `json:"location"`
	TotalHours           float64           `json:"totalHours"`
	HoursSinceInspection float64           `json:"hoursSinceInspection"`
	NextInspectionDue    float64           `json:"nextInspectionDue"`
	Condition            ConditionLabel    `json:"condition"`
	ConditionDetails     *ConditionDetails `json:"conditionDetails,omitempty"`
	MELList              []MELItem         `json:"melList"`
	LockedBy             *string           `json:"lockedBy"`
	CurrentFlight        *string           `json:"currentFlight"`
	Price                float64           `json:"price"`
}

// IsLocked reports whether the aircraft is consumed by a flight.
func (a *Aircraft) IsLocked() bool {
	return a.LockedBy != nil
}

// Clone returns a deep copy of the aircraft.
func (a Aircraft) Clone() Aircraft {
	out := a
	if a.ConditionDetails != nil {
		d := *a.ConditionDetails
		out.ConditionDetails = &d
	}
	if a.MELList != nil {
		out.MELList = append([]MELItem(nil), a.MELList...)
	}
	if a.LockedBy != nil {
		v := *a.LockedBy
		out.LockedBy = &v
	}
	if a.CurrentFlight != nil {
		v := *a.CurrentFlight
		out.CurrentFlight = &v
	}
	return out
}

// Listing is a used aircraft offered on the marketplace
type Listing struct {
	ID               string           `json:"id"`
	Type             string           `json:"type"`
	Manufacturer     string           `json:"manufacturer"`
	Model            string           `json:"model"`
	Year             int              `json:"year"`
	Price            float64          `json:"price"`
	Location         string           `json:"location"`
	TotalHours       float64          `json:"totalHours"`
	ConditionDetails ConditionDetails `json:"conditionDetails"`
}
