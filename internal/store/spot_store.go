package store

import (
	"sync"

	"github.com/iliyamo/parking-admin/internal/model"
)

// SpotStore owns the parking-spot collection.
type SpotStore struct {
	mu    sync.RWMutex
	spots []model.ParkingSpot
}

// NewSpotStore returns a store seeded with the given spots.
func NewSpotStore(seed []model.ParkingSpot) *SpotStore {
	s := &SpotStore{spots: make([]model.ParkingSpot, len(seed))}
	copy(s.spots, seed)
	return s
}

// List returns a copy of all spots.
func (s *SpotStore) List() []model.ParkingSpot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.ParkingSpot, len(s.spots))
	copy(out, s.spots)
	return out
}

// Add creates a new spot with the next id (highest existing id plus
// one).  Status always initializes to available regardless of what
// the caller sends.
func (s *SpotStore) Add(spotNumber string, floor int, typ model.SpotType) model.ParkingSpot {
	s.mu.Lock()
	defer s.mu.Unlock()
	var max uint64
	for _, sp := range s.spots {
		if sp.ID > max {
			max = sp.ID
		}
	}
	spot := model.ParkingSpot{
		ID:         max + 1,
		SpotNumber: spotNumber,
		Floor:      floor,
		Type:       typ,
		Status:     model.SpotAvailable,
	}
	s.spots = append(s.spots, spot)
	return spot
}

// Remove deletes a spot by id.  There is no cascade: vehicles and
// payments referencing the spot are left untouched.
func (s *SpotStore) Remove(id uint64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, sp := range s.spots {
		if sp.ID == id {
			s.spots = append(s.spots[:i], s.spots[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

// Reserve marks the spot occupied and attaches the reserving user.
// The spot's current status is not checked first: reserving an
// already occupied spot silently re-occupies it.  Known latent
// quirk, kept until product says otherwise.
func (s *SpotStore) Reserve(id, userID uint64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.spots {
		if s.spots[i].ID == id {
			uid := userID
			s.spots[i].Status = model.SpotOccupied
			s.spots[i].UserID = &uid
			return nil
		}
	}
	return ErrNotFound
}

// Release marks the spot available and clears the occupying user.
// Like Reserve it does not check the prior status, which makes the
// operation idempotent: releasing twice ends in the same state.
func (s *SpotStore) Release(id uint64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.spots {
		if s.spots[i].ID == id {
			s.spots[i].Status = model.SpotAvailable
			s.spots[i].UserID = nil
			return nil
		}
	}
	return ErrNotFound
}

// CountByStatus tallies spots per status for the dashboard view.
func (s *SpotStore) CountByStatus() map[model.SpotStatus]int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	counts := make(map[model.SpotStatus]int, 3)
	for _, sp := range s.spots {
		counts[sp.Status]++
	}
	return counts
}
