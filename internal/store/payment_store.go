package store

import (
	"sync"
	"time"

	"github.com/iliyamo/parking-admin/internal/model"
	"github.com/iliyamo/parking-admin/internal/pricing"
)

// PaymentStore owns the payment ledger.  Payments are append-only:
// once created a record never changes and is never deleted.
type PaymentStore struct {
	mu       sync.RWMutex
	payments []model.Payment
	now      func() time.Time
}

// NewPaymentStore returns a store seeded with the given payments.
func NewPaymentStore(seed []model.Payment) *PaymentStore {
	s := &PaymentStore{payments: make([]model.Payment, len(seed)), now: time.Now}
	copy(s.payments, seed)
	return s
}

// List returns a copy of all payments.
func (s *PaymentStore) List() []model.Payment {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.Payment, len(s.payments))
	copy(out, s.payments)
	return out
}

// Add records a payment for a vehicle.  The amount is always
// computed by the pricing engine from the duration; any amount the
// caller may have computed is ignored.  The record is stamped with
// the current time and the fixed "paid" status, appended, and
// returned.
func (s *PaymentStore) Add(vehicleID uint64, method model.PaymentMethod, duration float64) model.Payment {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := s.now()
	p := model.Payment{
		ID:        uint64(now.UnixMilli()),
		VehicleID: vehicleID,
		Amount:    pricing.Price(duration),
		Method:    method,
		Duration:  duration,
		Date:      now,
		Status:    model.PaymentPaid,
	}
	s.payments = append(s.payments, p)
	return p
}

// HistoryFor returns the payments recorded for one vehicle id.
func (s *PaymentStore) HistoryFor(vehicleID uint64) []model.Payment {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []model.Payment
	for _, p := range s.payments {
		if p.VehicleID == vehicleID {
			out = append(out, p)
		}
	}
	return out
}

// TotalRevenue sums all recorded payment amounts.
func (s *PaymentStore) TotalRevenue() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var total uint64
	for _, p := range s.payments {
		total += uint64(p.Amount)
	}
	return total
}

// CountByMethod tallies payments per method for the statistics view.
func (s *PaymentStore) CountByMethod() map[model.PaymentMethod]int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	counts := make(map[model.PaymentMethod]int, 2)
	for _, p := range s.payments {
		counts[p.Method]++
	}
	return counts
}
