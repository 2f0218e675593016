package handler

import (
	"net/http" // HTTP status codes
	"strconv"  // parsing path parameters

	"github.com/labstack/echo/v4" // Echo web framework

	"github.com/iliyamo/parking-admin/internal/model" // spot types and enums
	"github.com/iliyamo/parking-admin/internal/store" // spot store
)

// SpotHandler exposes the parking-spot operations.  Capability
// enforcement happens in middleware before any method here runs;
// handlers only validate input and map store errors to statuses.
type SpotHandler struct {
	Spots *store.SpotStore
}

func NewSpotHandler(spots *store.SpotStore) *SpotHandler {
	if spots == nil {
		panic("nil store passed to NewSpotHandler")
	}
	return &SpotHandler{Spots: spots}
}

type createSpotReq struct {
	SpotNumber string `json:"spot_number"`
	Floor      int    `json:"floor"`
	Type       string `json:"type"`
}

// List handles GET /v1/spots.
func (h *SpotHandler) List(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{"spots": h.Spots.List()})
}

// Create handles POST /v1/spots.  The new spot's id is the highest
// existing id plus one and its status always starts available, no
// matter what the client sends.
func (h *SpotHandler) Create(c echo.Context) error {
	var req createSpotReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if req.SpotNumber == "" || req.Floor == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "spot_number/floor required"})
	}
	if !model.ValidSpotType(req.Type) {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid spot type"})
	}
	spot := h.Spots.Add(req.SpotNumber, req.Floor, model.SpotType(req.Type))
	return c.JSON(http.StatusCreated, spot)
}

// Delete handles DELETE /v1/spots/:id.  There is no cascade to
// vehicles or payments referencing the spot.
func (h *SpotHandler) Delete(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid spot id"})
	}
	if err := h.Spots.Remove(id); err != nil {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "spot not found"})
	}
	return c.NoContent(http.StatusNoContent)
}

// Reserve handles POST /v1/spots/:id/reserve.  The reserving user
// is the authenticated caller.
func (h *SpotHandler) Reserve(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid spot id"})
	}
	if err := h.Spots.Reserve(id, userID); err != nil {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "spot not found"})
	}
	return c.JSON(http.StatusOK, echo.Map{"status": "occupied"})
}

// Release handles POST /v1/spots/:id/release.
func (h *SpotHandler) Release(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid spot id"})
	}
	if err := h.Spots.Release(id); err != nil {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "spot not found"})
	}
	return c.JSON(http.StatusOK, echo.Map{"status": "available"})
}
