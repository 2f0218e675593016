package handler

import (
	"net/http" // HTTP status codes

	"github.com/labstack/echo/v4" // Echo web framework

	"github.com/iliyamo/parking-admin/internal/access" // menus and capability table
)

// Menu handles GET /v1/menu.  It returns the navigation entries for
// the caller's role together with the role's granted capabilities
// and the default route, so a client can render exactly the
// controls the user may operate.  An unknown role yields an empty
// menu, which steers every route to the default view.
func Menu(c echo.Context) error {
	role, _ := getRole(c)
	menu := access.MenuFor(role)
	if menu == nil {
		menu = []access.MenuItem{}
	}
	caps := access.Capabilities(role)
	if caps == nil {
		caps = []access.Capability{}
	}
	return c.JSON(http.StatusOK, echo.Map{
		"menu":          menu,
		"capabilities":  caps,
		"default_route": access.DefaultRoute,
	})
}

// ResolveRoute handles GET /v1/menu/resolve?path=/users.  A route
// the caller's role has no menu entry for resolves to the default
// view instead of erroring.
func ResolveRoute(c echo.Context) error {
	role, _ := getRole(c)
	path := c.QueryParam("path")
	if path == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "path required"})
	}
	return c.JSON(http.StatusOK, echo.Map{"path": access.ResolveRoute(role, path)})
}
