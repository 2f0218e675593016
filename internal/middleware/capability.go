package middleware // middleware provides shared request processing for handlers

import (
    "net/http" // http package defines standard HTTP status codes

    "github.com/labstack/echo/v4" // echo provides middleware chaining and context

    "github.com/iliyamo/parking-admin/internal/access" // capability decision table
    "github.com/iliyamo/parking-admin/internal/model"  // role enum and parsing
)

// RequireCapability returns a middleware function that enforces that
// the authenticated user's role grants the named capability.  The
// role is read from the context, where JWTAuth stored it as the
// "role" claim.  A missing role, an unknown role string, or a role
// the capability table does not grant all result in a 403 Forbidden
// response and the wrapped handler never runs, so the attempted
// mutation is not performed.
func RequireCapability(cap access.Capability) echo.MiddlewareFunc {
    return func(next echo.HandlerFunc) echo.HandlerFunc {
        return func(c echo.Context) error {
            // Retrieve the role from context.  It should have been
            // stored by JWTAuth middleware as a string.  If not
            // present or of wrong type, treat as missing: the
            // capability table fails closed.
            v := c.Get("role")
            raw, ok := v.(string)
            if !ok {
                return c.JSON(http.StatusForbidden, echo.Map{"error": "forbidden"})
            }
            role, ok := model.ParseRole(raw)
            if !ok || !access.Allowed(role, cap) {
                return c.JSON(http.StatusForbidden, echo.Map{"error": "forbidden"})
            }
            // Otherwise call the next handler in the chain
            return next(c)
        }
    }
}
