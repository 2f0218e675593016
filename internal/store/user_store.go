package store

import (
	"sync"

	"github.com/iliyamo/parking-admin/internal/model"
)

// defaultVehicleType is assigned when a new user is created without
// a vehicle descriptor.
const defaultVehicleType = "Voiture"

// UserStore owns the user collection.  Accounts are only ever added,
// never deleted.  All methods are safe for concurrent use; each
// mutation applies fully or not at all.
type UserStore struct {
	mu    sync.RWMutex
	users []model.User
}

// NewUserStore returns a store seeded with the given users.  The
// slice is copied so the caller keeps no aliasing handle into the
// store's state.
func NewUserStore(seed []model.User) *UserStore {
	s := &UserStore{users: make([]model.User, len(seed))}
	copy(s.users, seed)
	return s
}

// List returns a copy of all users.
func (s *UserStore) List() []model.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.User, len(s.users))
	copy(out, s.users)
	return out
}

// Login performs the credential check: a linear search for an exact,
// case-sensitive match on both email and password.  On success the
// matched user is returned; otherwise ErrInvalidCredentials.
func (s *UserStore) Login(email, password string) (model.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, u := range s.users {
		if u.Email == email && u.Password == password {
			return u, nil
		}
	}
	return model.User{}, ErrInvalidCredentials
}

// GetByID fetches a user by id.
func (s *UserStore) GetByID(id uint64) (model.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, u := range s.users {
		if u.ID == id {
			return u, nil
		}
	}
	return model.User{}, ErrNotFound
}

// Add appends a new user.  The id is allocated as the highest
// existing id plus one (or 1 on an empty store).  When the vehicle
// descriptor is empty it defaults to an empty plate with the
// default vehicle type, matching what account-creation forms send.
func (s *UserStore) Add(u model.User) model.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	var max uint64
	for _, existing := range s.users {
		if existing.ID > max {
			max = existing.ID
		}
	}
	u.ID = max + 1
	if u.Vehicle == (model.VehicleInfo{}) {
		u.Vehicle = model.VehicleInfo{Plate: "", Type: defaultVehicleType}
	}
	s.users = append(s.users, u)
	return u
}

// CountByRole tallies users per role for the user-listing view.
func (s *UserStore) CountByRole() map[model.Role]int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	counts := make(map[model.Role]int, 3)
	for _, u := range s.users {
		counts[u.Role]++
	}
	return counts
}
