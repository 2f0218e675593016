package model

// Role enumerates the three account roles understood by the system.
// Role is a closed enum rather than a free-form string so that an
// unknown role is an explicit, checkable case everywhere it is
// consumed.  Permission decisions for each role live in the access
// package; this type only defines the value space.
type Role string

const (
    RoleAdmin    Role = "admin"    // full administrative access
    RoleEmployee Role = "employee" // facility staff
    RoleUser     Role = "user"     // regular customer account
)

// ParseRole converts a raw string into a Role.  The boolean reports
// whether the input named a known role.  Callers must treat a false
// result as "no role at all": every permission check fails closed on
// it.
func ParseRole(s string) (Role, bool) {
    switch Role(s) {
    case RoleAdmin, RoleEmployee, RoleUser:
        return Role(s), true
    }
    return "", false
}

// Valid reports whether r is one of the three known roles.
func (r Role) Valid() bool {
    _, ok := ParseRole(string(r))
    return ok
}
