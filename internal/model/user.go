package model

// VehicleInfo is the small vehicle descriptor attached to a user
// account.  It is display data, not a reference into the vehicle
// store; the two are deliberately independent.
//
// Fields:
//  Plate – license plate string (may be empty).
//  Type  – vehicle category label, e.g. "Voiture" or "Moto".
type VehicleInfo struct {
    Plate string `json:"plate"`
    Type  string `json:"type"`
}

// User represents an account record held by the user store.  The
// password is kept in plain text: this system is an administrative
// mock and credential security is explicitly out of scope.  Handlers
// must call Redacted before returning a user to a client.
//
// Fields:
//  ID       – numeric identifier, allocated as max existing id + 1.
//  Email    – login key, matched case-sensitively.
//  Password – plain-text password, matched case-sensitively.
//  Name     – display name.
//  Role     – account role (admin, employee, user).
//  Phone    – contact phone, free text.
//  Vehicle  – associated vehicle descriptor.
type User struct {
    ID       uint64      `json:"id"`
    Email    string      `json:"email"`
    Password string      `json:"password,omitempty"`
    Name     string      `json:"name"`
    Role     Role        `json:"role"`
    Phone    string      `json:"phone"`
    Vehicle  VehicleInfo `json:"vehicle"`
}

// Redacted returns a copy of the user with the password cleared.
func (u User) Redacted() User {
    u.Password = ""
    return u
}
