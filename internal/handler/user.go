package handler

import (
	"net/http" // HTTP status codes

	"github.com/labstack/echo/v4" // Echo web framework

	"github.com/iliyamo/parking-admin/internal/model" // user types and roles
	"github.com/iliyamo/parking-admin/internal/store" // user store
)

// UserHandler exposes account listing and creation.  Listing is
// available to staff; creation is admin only.  Both gates are
// applied in middleware.
type UserHandler struct {
	Users *store.UserStore
}

func NewUserHandler(users *store.UserStore) *UserHandler {
	if users == nil {
		panic("nil store passed to NewUserHandler")
	}
	return &UserHandler{Users: users}
}

type createUserReq struct {
	Email    string             `json:"email"`
	Password string             `json:"password"`
	Name     string             `json:"name"`
	Role     string             `json:"role"`
	Phone    string             `json:"phone"`
	Vehicle  *model.VehicleInfo `json:"vehicle"`
}

// List handles GET /v1/users: all accounts with passwords redacted,
// plus per-role counts for the listing view.
func (h *UserHandler) List(c echo.Context) error {
	users := h.Users.List()
	out := make([]model.User, 0, len(users))
	for _, u := range users {
		out = append(out, u.Redacted())
	}
	counts := h.Users.CountByRole()
	return c.JSON(http.StatusOK, echo.Map{
		"users": out,
		"counts": echo.Map{
			"admin":    counts[model.RoleAdmin],
			"employee": counts[model.RoleEmployee],
			"user":     counts[model.RoleUser],
		},
	})
}

// Create handles POST /v1/users.  The id is allocated as the
// highest existing id plus one; a missing vehicle descriptor
// defaults to an empty plate of the default type.  No record is
// created when a required field is missing.
func (h *UserHandler) Create(c echo.Context) error {
	var req createUserReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if req.Email == "" || req.Password == "" || req.Name == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "email/password/name required"})
	}
	role, ok := model.ParseRole(req.Role)
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid role"})
	}
	u := model.User{
		Email:    req.Email,
		Password: req.Password,
		Name:     req.Name,
		Role:     role,
		Phone:    req.Phone,
	}
	if req.Vehicle != nil {
		u.Vehicle = *req.Vehicle
	}
	created := h.Users.Add(u)
	return c.JSON(http.StatusCreated, created.Redacted())
}
