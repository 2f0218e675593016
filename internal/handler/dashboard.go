package handler

import (
	"net/http" // HTTP status codes

	"github.com/labstack/echo/v4" // Echo web framework

	"github.com/iliyamo/parking-admin/internal/model" // status enums
	"github.com/iliyamo/parking-admin/internal/store" // stores for the overview
)

// DashboardHandler aggregates the overview numbers shown on the
// landing view: spot occupancy, tracked vehicles and total revenue.
type DashboardHandler struct {
	Spots    *store.SpotStore
	Vehicles *store.VehicleStore
	Payments *store.PaymentStore
}

func NewDashboardHandler(spots *store.SpotStore, vehicles *store.VehicleStore, payments *store.PaymentStore) *DashboardHandler {
	if spots == nil || vehicles == nil || payments == nil {
		panic("nil store passed to NewDashboardHandler")
	}
	return &DashboardHandler{Spots: spots, Vehicles: vehicles, Payments: payments}
}

// Stats handles GET /v1/dashboard.
func (h *DashboardHandler) Stats(c echo.Context) error {
	counts := h.Spots.CountByStatus()
	total := counts[model.SpotAvailable] + counts[model.SpotOccupied] + counts[model.SpotReserved]
	var occupancy float64
	if total > 0 {
		occupancy = float64(counts[model.SpotOccupied]) / float64(total)
	}
	return c.JSON(http.StatusOK, echo.Map{
		"spots": echo.Map{
			"total":     total,
			"available": counts[model.SpotAvailable],
			"occupied":  counts[model.SpotOccupied],
			"reserved":  counts[model.SpotReserved],
		},
		"occupancy_rate": occupancy,
		"vehicles":       h.Vehicles.Count(),
		"total_revenue":  h.Payments.TotalRevenue(),
	})
}
