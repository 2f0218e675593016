package access

import "github.com/iliyamo/parking-admin/internal/model"

// MenuItem is one navigation entry offered to a role.
type MenuItem struct {
    Path  string `json:"path"`
    Label string `json:"label"`
}

// DefaultRoute is where navigation falls back when a role asks for
// a route it has no menu entry for.
const DefaultRoute = "/dashboard"

// menus lists the navigation entries per role.  Admin and employee
// share the full menu; regular users do not see vehicles or users.
var menus = map[model.Role][]MenuItem{
    model.RoleAdmin: {
        {Path: "/dashboard", Label: "Tableau de bord"},
        {Path: "/profile", Label: "Profil"},
        {Path: "/parking-spots", Label: "Places de parking"},
        {Path: "/vehicles", Label: "Véhicules"},
        {Path: "/payment", Label: "Paiements"},
        {Path: "/users", Label: "Utilisateurs"},
    },
    model.RoleEmployee: {
        {Path: "/dashboard", Label: "Tableau de bord"},
        {Path: "/profile", Label: "Profil"},
        {Path: "/parking-spots", Label: "Places de parking"},
        {Path: "/vehicles", Label: "Véhicules"},
        {Path: "/payment", Label: "Paiements"},
        {Path: "/users", Label: "Utilisateurs"},
    },
    model.RoleUser: {
        {Path: "/dashboard", Label: "Tableau de bord"},
        {Path: "/profile", Label: "Profil"},
        {Path: "/parking-spots", Label: "Places de parking"},
        {Path: "/payment", Label: "Paiements"},
    },
}

// MenuFor returns the navigation menu for a role.  Unknown roles
// get an empty menu, which in turn makes every route resolve to the
// default view.
func MenuFor(role model.Role) []MenuItem {
    return menus[role]
}

// ResolveRoute maps a requested route to the route the role should
// actually see.  A route present in the role's menu resolves to
// itself; anything else falls back to DefaultRoute instead of
// erroring.
func ResolveRoute(role model.Role, path string) string {
    for _, item := range menus[role] {
        if item.Path == path {
            return path
        }
    }
    return DefaultRoute
}
