package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/parking-admin/internal/model"
)

func TestVehicleAddStampsClock(t *testing.T) {
	s := NewVehicleStore(nil)
	fixed := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return fixed }

	v := s.Add(model.Vehicle{Plate: "ZZZ111", Owner: "Someone", Type: "Voiture"})

	assert.Equal(t, uint64(fixed.UnixMilli()), v.ID)
	assert.Equal(t, fixed, v.EntryTime)
}

func TestVehicleAddKeepsSuppliedEntryTime(t *testing.T) {
	s := NewVehicleStore(nil)
	entered := time.Now().Add(-3 * time.Hour)

	v := s.Add(model.Vehicle{Plate: "ZZZ111", Owner: "Someone", Type: "Moto", EntryTime: entered})

	assert.Equal(t, entered, v.EntryTime)
}

func TestVehicleRemove(t *testing.T) {
	s := NewVehicleStore(SeedVehicles())

	require.NoError(t, s.Remove(1))
	assert.Equal(t, 1, s.Count())

	assert.ErrorIs(t, s.Remove(1), ErrNotFound)
}

func TestVehicleRemovalDoesNotCascadeToPayments(t *testing.T) {
	vehicles := NewVehicleStore(SeedVehicles())
	payments := NewPaymentStore(SeedPayments())

	require.NoError(t, vehicles.Remove(1))

	// The ledger keeps its records for the removed vehicle.
	assert.Len(t, payments.HistoryFor(1), 1)
}

func TestVehicleOwnerIsFreeText(t *testing.T) {
	s := NewVehicleStore(nil)
	v := s.Add(model.Vehicle{Plate: "AAA000", Owner: "not a user id", Type: "Voiture"})
	assert.Equal(t, "not a user id", v.Owner)
}
