package model

// SpotStatus enumerates the occupancy states of a parking spot.
// Status is independent of the spot's physical type: a handicap
// spot can be available or occupied like any other.
type SpotStatus string

const (
    SpotAvailable SpotStatus = "available"
    SpotOccupied  SpotStatus = "occupied"
    SpotReserved  SpotStatus = "reserved"
)

// SpotType enumerates the physical categories of a parking spot.
// Note that "reserved" appears both as a type (a spot permanently
// set aside) and as a status; the two are unrelated.
type SpotType string

const (
    SpotTypeStandard SpotType = "standard"
    SpotTypeHandicap SpotType = "handicap"
    SpotTypeReserved SpotType = "reserved"
)

// ValidSpotType reports whether s names a known spot type.
func ValidSpotType(s string) bool {
    switch SpotType(s) {
    case SpotTypeStandard, SpotTypeHandicap, SpotTypeReserved:
        return true
    }
    return false
}

// ParkingSpot describes a single spot in the facility.
//
// Fields:
//  ID         – numeric identifier, allocated as max existing id + 1.
//  SpotNumber – human label such as "A1" or "B3".
//  Floor      – floor number the spot is on.
//  Type       – physical category (standard, handicap, reserved).
//  Status     – occupancy state (available, occupied, reserved).
//  UserID     – id of the occupying user, nil when nobody holds it.
type ParkingSpot struct {
    ID         uint64     `json:"id"`
    SpotNumber string     `json:"spot_number"`
    Floor      int        `json:"floor"`
    Type       SpotType   `json:"type"`
    Status     SpotStatus `json:"status"`
    UserID     *uint64    `json:"user_id,omitempty"`
}
