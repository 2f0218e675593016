package handler

import (
	"net/http" // HTTP status codes
	"strconv"  // parsing path parameters

	"github.com/labstack/echo/v4" // Echo web framework

	"github.com/iliyamo/parking-admin/internal/model" // vehicle type
	"github.com/iliyamo/parking-admin/internal/store" // vehicle store
)

// VehicleHandler exposes the tracked-vehicle operations.
type VehicleHandler struct {
	Vehicles *store.VehicleStore
}

func NewVehicleHandler(vehicles *store.VehicleStore) *VehicleHandler {
	if vehicles == nil {
		panic("nil store passed to NewVehicleHandler")
	}
	return &VehicleHandler{Vehicles: vehicles}
}

type createVehicleReq struct {
	Plate  string  `json:"plate"`
	Owner  string  `json:"owner"`
	Type   string  `json:"type"`
	SpotID *uint64 `json:"spot_id"`
}

// List handles GET /v1/vehicles.
func (h *VehicleHandler) List(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{"vehicles": h.Vehicles.List()})
}

// Create handles POST /v1/vehicles.  Owner is a display name, not
// a user reference.  The entry time is stamped now and the id is
// derived from the clock.
func (h *VehicleHandler) Create(c echo.Context) error {
	var req createVehicleReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if req.Plate == "" || req.Owner == "" || req.Type == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "plate/owner/type required"})
	}
	v := h.Vehicles.Add(model.Vehicle{
		Plate:  req.Plate,
		Owner:  req.Owner,
		Type:   req.Type,
		SpotID: req.SpotID,
	})
	return c.JSON(http.StatusCreated, v)
}

// Delete handles DELETE /v1/vehicles/:id.  Payments for the vehicle
// are not touched; the ledger keeps its informal reference.
func (h *VehicleHandler) Delete(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid vehicle id"})
	}
	if err := h.Vehicles.Remove(id); err != nil {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "vehicle not found"})
	}
	return c.NoContent(http.StatusNoContent)
}
