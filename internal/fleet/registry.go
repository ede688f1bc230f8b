// Package fleet is the authoritative collection of owned aircraft.
package fleet

import (
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/ProcedurallyGeneratedGoldblum/virtual-airline-manager-sub000/internal/models"
)

var (
	ErrAircraftNotFound = errors.New("aircraft not found")
	ErrAircraftLocked   = errors.New("aircraft is locked to a flight")
)

// Registry holds the fleet in insertion order.
// It is not safe for concurrent use; callers serialize access.
type Registry struct {
	aircraft map[string]*models.Aircraft
	order    []string
}

// NewRegistry builds a registry from existing aircraft.
func NewRegistry(aircraft []models.Aircraft) *Registry {
	r := &Registry{aircraft: make(map[string]*models.Aircraft, len(aircraft))}
	for _, ac := range aircraft {
		ac := ac.Clone()
		r.aircraft[ac.ID] = &ac
		r.order = append(r.order, ac.ID)
	}
	return r
}

// Clone returns a deep copy of the registry.
func (r *Registry) Clone() *Registry {
	return NewRegistry(r.List())
}

// Len returns the fleet size.
func (r *Registry) Len() int {
	return len(r.order)
}

// Get returns the live aircraft for in-place mutation.
func (r *Registry) Get(id string) (*models.Aircraft, error) {
	ac, ok := r.aircraft[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrAircraftNotFound, id)
	}
	return ac, nil
}

// List returns copies of every aircraft in insertion order.
func (r *Registry) List() []models.Aircraft {
	out := make([]models.Aircraft, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.aircraft[id].Clone())
	}
	return out
}

// ListAvailable returns the aircraft that can be assigned to a new flight.
func (r *Registry) ListAvailable() []models.Aircraft {
	out := make([]models.Aircraft, 0, len(r.order))
	for _, id := range r.order {
		ac := r.aircraft[id]
		if ac.Status == models.AircraftStatusAvailable && !ac.IsLocked() {
			out = append(out, ac.Clone())
		}
	}
	return out
}

// Locations returns the distinct current locations of the fleet.
func (r *Registry) Locations() []string {
	seen := make(map[string]bool)
	var out []string
	for _, id := range r.order {
		loc := r.aircraft[id].Location
		if loc == "" || seen[loc] {
			continue
		}
		seen[loc] = true
		out = append(out, loc)
	}
	return out
}

// Lock assigns the aircraft to a flight.
func (r *Registry) Lock(id, flightID string) (*models.Aircraft, error) {
	ac, err := r.Get(id)
	if err != nil {
		return nil, err
	}
	if ac.IsLocked() {
		return nil, fmt.Errorf("%w: %s held by %s", ErrAircraftLocked, ac.Registration, *ac.LockedBy)
	}
	ac.Status = models.AircraftStatusInFlight
	ac.LockedBy = &flightID
	current := flightID
	ac.CurrentFlight = &current
	return ac, nil
}

// Unlock releases the aircraft with the status the flight's outcome dictates.
func (r *Registry) Unlock(id string, status models.AircraftStatus) (*models.Aircraft, error) {
	ac, err := r.Get(id)
	if err != nil {
		return nil, err
	}
	ac.LockedBy = nil
	ac.CurrentFlight = nil
	ac.Status = status
	return ac, nil
}

// Add puts an aircraft into the fleet, assigning an id when missing.
func (r *Registry) Add(ac models.Aircraft) *models.Aircraft {
	if ac.ID == "" {
		ac.ID = uuid.NewString()
	}
	ac = ac.Clone()
	if _, exists := r.aircraft[ac.ID]; !exists {
		r.order = append(r.order, ac.ID)
	}
	r.aircraft[ac.ID] = &ac
	return &ac
}

// Remove takes an unlocked aircraft out of the fleet and returns it.
func (r *Registry) Remove(id string) (models.Aircraft, error) {
	ac, err := r.Get(id)
	if err != nil {
		return models.Aircraft{}, err
	}
	if ac.IsLocked() {
		return models.Aircraft{}, fmt.Errorf("%w: %s", ErrAircraftLocked, ac.Registration)
	}
	delete(r.aircraft, id)
	for i, v := range r.order {
		if v == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return *ac, nil
}

// Registrations returns the registrations in use.
func (r *Registry) Registrations() map[string]bool {
	out := make(map[string]bool, len(r.aircraft))
	for _, ac := range r.aircraft {
		out[ac.Registration] = true
	}
	return out
}
