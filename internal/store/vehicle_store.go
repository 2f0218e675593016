package store

import (
	"sync"
	"time"

	"github.com/iliyamo/parking-admin/internal/model"
)

// VehicleStore owns the tracked-vehicle collection.
type VehicleStore struct {
	mu       sync.RWMutex
	vehicles []model.Vehicle
	now      func() time.Time
}

// NewVehicleStore returns a store seeded with the given vehicles.
func NewVehicleStore(seed []model.Vehicle) *VehicleStore {
	s := &VehicleStore{vehicles: make([]model.Vehicle, len(seed)), now: time.Now}
	copy(s.vehicles, seed)
	return s
}

// List returns a copy of all vehicles.
func (s *VehicleStore) List() []model.Vehicle {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.Vehicle, len(s.vehicles))
	copy(out, s.vehicles)
	return out
}

// Add appends a vehicle.  The id is derived from the wall clock in
// milliseconds, which is unique enough within a single running
// instance.  EntryTime defaults to now when the caller leaves it
// zero.
func (s *VehicleStore) Add(v model.Vehicle) model.Vehicle {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := s.now()
	v.ID = uint64(now.UnixMilli())
	if v.EntryTime.IsZero() {
		v.EntryTime = now
	}
	s.vehicles = append(s.vehicles, v)
	return v
}

// Remove deletes a vehicle by id.  Payments referencing the vehicle
// are left in place; there is no referential integrity between the
// two collections.
func (s *VehicleStore) Remove(id uint64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, v := range s.vehicles {
		if v.ID == id {
			s.vehicles = append(s.vehicles[:i], s.vehicles[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

// Count returns the number of tracked vehicles.
func (s *VehicleStore) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.vehicles)
}
