package store

import (
	"time"

	"github.com/iliyamo/parking-admin/internal/model"
)

// Seed data for a fresh instance.  These mirror the demo dataset
// the dashboard ships with: three accounts (one per role), two
// floors of spots, two vehicles already inside and their prior
// payments.

// SeedUsers returns the built-in demo accounts.  Passwords are
// plain text by design of the mock.
func SeedUsers() []model.User {
	return []model.User{
		{
			ID:       1,
			Email:    "admin@parking.com",
			Password: "admin123",
			Name:     "Admin User",
			Role:     model.RoleAdmin,
			Phone:    "06 12 34 56 78",
			Vehicle:  model.VehicleInfo{Plate: "ABC123", Type: "Voiture"},
		},
		{
			ID:       2,
			Email:    "employee@parking.com",
			Password: "emp123",
			Name:     "Employee User",
			Role:     model.RoleEmployee,
			Phone:    "06 98 76 54 32",
			Vehicle:  model.VehicleInfo{Plate: "DEF456", Type: "Moto"},
		},
		{
			ID:       3,
			Email:    "user@parking.com",
			Password: "user123",
			Name:     "Regular User",
			Role:     model.RoleUser,
			Phone:    "06 55 55 55 55",
			Vehicle:  model.VehicleInfo{Plate: "GHI789", Type: "Voiture"},
		},
	}
}

// SeedSpots returns the demo spot layout: floors 1 and 2, four
// spots each, a few already occupied.
func SeedSpots() []model.ParkingSpot {
	return []model.ParkingSpot{
		{ID: 1, SpotNumber: "A1", Floor: 1, Type: model.SpotTypeStandard, Status: model.SpotAvailable},
		{ID: 2, SpotNumber: "A2", Floor: 1, Type: model.SpotTypeStandard, Status: model.SpotOccupied},
		{ID: 3, SpotNumber: "A3", Floor: 1, Type: model.SpotTypeStandard, Status: model.SpotAvailable},
		{ID: 4, SpotNumber: "A4", Floor: 1, Type: model.SpotTypeHandicap, Status: model.SpotAvailable},
		{ID: 5, SpotNumber: "B1", Floor: 2, Type: model.SpotTypeStandard, Status: model.SpotOccupied},
		{ID: 6, SpotNumber: "B2", Floor: 2, Type: model.SpotTypeStandard, Status: model.SpotAvailable},
		{ID: 7, SpotNumber: "B3", Floor: 2, Type: model.SpotTypeReserved, Status: model.SpotAvailable},
		{ID: 8, SpotNumber: "B4", Floor: 2, Type: model.SpotTypeStandard, Status: model.SpotOccupied},
	}
}

// SeedVehicles returns the demo vehicles, parked in the occupied
// seed spots with entry times relative to startup.
func SeedVehicles() []model.Vehicle {
	spotA2, spotB1 := uint64(2), uint64(5)
	return []model.Vehicle{
		{ID: 1, Plate: "ABC123", Owner: "Admin User", Type: "Voiture", EntryTime: time.Now().Add(-2 * time.Hour), SpotID: &spotA2},
		{ID: 2, Plate: "DEF456", Owner: "Employee User", Type: "Moto", EntryTime: time.Now().Add(-1 * time.Hour), SpotID: &spotB1},
	}
}

// SeedPayments returns two prior payments for the demo vehicles.
// Amounts are kept as recorded, not recomputed through the pricing
// engine: the ledger is historical data.
func SeedPayments() []model.Payment {
	return []model.Payment{
		{ID: 1, VehicleID: 1, Amount: 15, Method: model.PaymentCard, Duration: 2, Date: time.Now().Add(-5 * 24 * time.Hour), Status: model.PaymentPaid},
		{ID: 2, VehicleID: 2, Amount: 8, Method: model.PaymentCash, Duration: 1, Date: time.Now().Add(-2 * 24 * time.Hour), Status: model.PaymentPaid},
	}
}
