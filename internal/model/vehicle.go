package model

import "time"

// Vehicle is a vehicle currently tracked inside the facility.
// Owner is a free-text display name, not a reference into the user
// store; the two identity spaces are intentionally decoupled.
// Plates are not enforced unique.
//
// Fields:
//  ID        – identifier derived from the entry clock (unix
//              milliseconds), unique enough for a single session.
//  Plate     – license plate string.
//  Owner     – owner display name, free text.
//  Type      – vehicle category label, e.g. "Voiture" or "Moto".
//  EntryTime – when the vehicle entered the facility.
//  SpotID    – id of the assigned parking spot, nil when unassigned.
type Vehicle struct {
    ID        uint64    `json:"id"`
    Plate     string    `json:"plate"`
    Owner     string    `json:"owner"`
    Type      string    `json:"type"`
    EntryTime time.Time `json:"entry_time"`
    SpotID    *uint64   `json:"spot_id,omitempty"`
}
