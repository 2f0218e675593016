package handler

import (
	"net/http" // HTTP status codes and primitives
	"time"     // token expiry in responses

	"github.com/labstack/echo/v4" // Echo framework for HTTP routing

	"github.com/iliyamo/parking-admin/internal/config"  // app configuration
	"github.com/iliyamo/parking-admin/internal/model"   // domain types
	"github.com/iliyamo/parking-admin/internal/session" // active session slot
	"github.com/iliyamo/parking-admin/internal/store"   // user store
	"github.com/iliyamo/parking-admin/internal/utils"   // token issuing
)

// AuthHandler bundles dependencies for auth and profile endpoints.
type AuthHandler struct {
	Cfg     config.Config
	Users   *store.UserStore
	Session *session.Store
}

func NewAuthHandler(cfg config.Config, users *store.UserStore, sess *session.Store) *AuthHandler {
	if users == nil || sess == nil {
		panic("nil dependency passed to NewAuthHandler")
	}
	return &AuthHandler{Cfg: cfg, Users: users, Session: sess}
}

// ----- DTOs -----

type loginReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type profileReq struct {
	Name    string             `json:"name"`
	Email   string             `json:"email"`
	Phone   string             `json:"phone"`
	Vehicle *model.VehicleInfo `json:"vehicle"`
}

type tokenPart struct {
	Token   string    `json:"token"`
	Expires time.Time `json:"expires"`
}
type authResp struct {
	User   model.User `json:"user"`
	Access tokenPart  `json:"access"`
}

// Login verifies credentials and establishes the active session.
// Matching is an exact case-sensitive comparison on both email and
// password; emails are deliberately not normalized.  On success the
// user becomes the single active session (replacing any previous
// one), the session is mirrored to the persistence slot, and an
// access token is returned for the HTTP surface.
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if req.Email == "" || req.Password == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "email/password required"})
	}

	u, err := h.Users.Login(req.Email, req.Password)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid credentials"})
	}

	h.Session.Set(c.Request().Context(), u)

	access, err := utils.NewAccessToken(h.Cfg.JWTSecret, u.ID, string(u.Role), h.Cfg.AccessTTLMin)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "issue access failed"})
	}

	return c.JSON(http.StatusOK, authResp{
		User:   u.Redacted(),
		Access: tokenPart{Token: access.Token, Expires: access.Exp},
	})
}

// Logout clears the active session and its persisted mirror.  It
// does not require authentication: clearing an already empty
// session is harmless, so any caller gets a 204.
func (h *AuthHandler) Logout(c echo.Context) error {
	h.Session.Clear(c.Request().Context())
	return c.NoContent(http.StatusNoContent)
}

// Me returns the currently authenticated session user with the
// password redacted.  A valid token with no active session means
// the session was cleared out from under the caller; report 401.
func (h *AuthHandler) Me(c echo.Context) error {
	u, ok := h.Session.Current()
	if !ok {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "no active session"})
	}
	return c.JSON(http.StatusOK, u.Redacted())
}

// UpdateProfile shallow-merges the supplied fields into the active
// session user and persists the result to the session slot.  Only
// name, email, phone and vehicle can be changed; empty fields are
// left as they were.  The backing user collection is not touched:
// profile edits live on the session, matching the original
// behavior.
func (h *AuthHandler) UpdateProfile(c echo.Context) error {
	u, ok := h.Session.Current()
	if !ok {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "no active session"})
	}
	var req profileReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if req.Name != "" {
		u.Name = req.Name
	}
	if req.Email != "" {
		u.Email = req.Email
	}
	if req.Phone != "" {
		u.Phone = req.Phone
	}
	if req.Vehicle != nil {
		u.Vehicle = *req.Vehicle
	}
	h.Session.Set(c.Request().Context(), u)
	return c.JSON(http.StatusOK, u.Redacted())
}
