// Package access decides which operations each role may perform.
// It is a pure decision table: no I/O, no state, no side effects.
// Every permission check in the service goes through Allowed so that
// the role/capability mapping lives in exactly one place instead of
// being re-derived from role lists at each call site.
package access

import "github.com/iliyamo/parking-admin/internal/model"

// Capability names a single permitted-or-denied action.  Handlers
// and middleware gate on capabilities, never on raw role names.
type Capability string

const (
    CapViewDashboard Capability = "view_dashboard" // dashboard, profile, spots, payments pages
    CapViewVehicles  Capability = "view_vehicles"
    CapViewUsers     Capability = "view_users"
    CapAddUser       Capability = "add_user"
    CapAddSpot       Capability = "add_spot"
    CapRemoveSpot    Capability = "remove_spot"
    CapReleaseSpot   Capability = "release_spot"
    CapReserveSpot   Capability = "reserve_spot"
    CapAddVehicle    Capability = "add_vehicle"
    CapRemoveVehicle Capability = "remove_vehicle"
    CapMakePayment   Capability = "make_payment"
    CapViewPayStats  Capability = "view_payment_stats" // statistics and per-vehicle history
)

// grants is the full capability table.  A capability missing from
// the table, or a role missing from a capability's set, denies.
var grants = map[Capability]map[model.Role]bool{
    CapViewDashboard: {model.RoleAdmin: true, model.RoleEmployee: true, model.RoleUser: true},
    CapViewVehicles:  {model.RoleAdmin: true, model.RoleEmployee: true, model.RoleUser: true},
    CapViewUsers:     {model.RoleAdmin: true, model.RoleEmployee: true},
    CapAddUser:       {model.RoleAdmin: true},
    CapAddSpot:       {model.RoleAdmin: true, model.RoleEmployee: true},
    CapRemoveSpot:    {model.RoleAdmin: true, model.RoleEmployee: true},
    CapReleaseSpot:   {model.RoleAdmin: true, model.RoleEmployee: true},
    CapReserveSpot:   {model.RoleAdmin: true, model.RoleEmployee: true, model.RoleUser: true},
    CapAddVehicle:    {model.RoleAdmin: true, model.RoleEmployee: true, model.RoleUser: true},
    CapRemoveVehicle: {model.RoleAdmin: true, model.RoleEmployee: true},
    CapMakePayment:   {model.RoleAdmin: true, model.RoleEmployee: true, model.RoleUser: true},
    CapViewPayStats:  {model.RoleAdmin: true, model.RoleEmployee: true},
}

// Allowed reports whether the given role may perform the given
// capability.  Unknown roles and unknown capabilities both deny:
// the table fails closed.
func Allowed(role model.Role, cap Capability) bool {
    if !role.Valid() {
        return false
    }
    return grants[cap][role]
}

// Capabilities returns every capability the role is granted, in no
// particular order.  Useful for clients that want to hide controls
// the user cannot operate.
func Capabilities(role model.Role) []Capability {
    var out []Capability
    for cap, roles := range grants {
        if roles[role] {
            out = append(out, cap)
        }
    }
    return out
}
