package handler

import (
	"context"  // background context for the event publish
	"net/http" // HTTP status codes
	"strconv"  // parsing query parameters
	"time"     // publish timeout and event timestamps

	"github.com/labstack/echo/v4" // Echo web framework

	"github.com/iliyamo/parking-admin/internal/model"   // payment types
	"github.com/iliyamo/parking-admin/internal/pricing" // fee preview
	"github.com/iliyamo/parking-admin/internal/queue"   // event payloads
	queue_publisher "github.com/iliyamo/parking-admin/internal/service"
	"github.com/iliyamo/parking-admin/internal/store" // payment store
)

// PaymentHandler exposes the payment ledger: recording payments,
// listing them, per-vehicle history and revenue statistics.
type PaymentHandler struct {
	Payments *store.PaymentStore
}

func NewPaymentHandler(payments *store.PaymentStore) *PaymentHandler {
	if payments == nil {
		panic("nil store passed to NewPaymentHandler")
	}
	return &PaymentHandler{Payments: payments}
}

type createPaymentReq struct {
	VehicleID uint64  `json:"vehicle_id"`
	Method    string  `json:"method"`
	Duration  float64 `json:"duration"`
	// Amount is accepted in the body but ignored: the fee is always
	// computed by the pricing engine from the duration.
	Amount uint32 `json:"amount,omitempty"`
}

// List handles GET /v1/payments.
func (h *PaymentHandler) List(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{"payments": h.Payments.List()})
}

// Create handles POST /v1/payments.  The amount is derived from the
// duration through the tier table, the record is stamped with the
// current time and the fixed "paid" status, and a payment.recorded
// event is published best-effort to the broker.  The vehicle id is
// not validated against the vehicle store; the reference is
// informal by design.
func (h *PaymentHandler) Create(c echo.Context) error {
	var req createPaymentReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if req.VehicleID == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "vehicle_id required"})
	}
	if req.Duration <= 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "duration must be positive"})
	}
	if !model.ValidPaymentMethod(req.Method) {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid payment method"})
	}

	p := h.Payments.Add(req.VehicleID, model.PaymentMethod(req.Method), req.Duration)

	// Publish off the request path so an unreachable broker cannot
	// slow the response down; failures are logged by the publisher
	// and otherwise ignored.
	go func(ev queue.PaymentRecordedEvent) {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = queue_publisher.PublishPaymentRecorded(ctx, ev)
	}(queue.PaymentRecordedEvent{
		PaymentID:     p.ID,
		VehicleID:     p.VehicleID,
		Amount:        p.Amount,
		Method:        string(p.Method),
		DurationHours: p.Duration,
		PaidAt:        p.Date.UTC().Format(time.RFC3339),
	})

	return c.JSON(http.StatusCreated, p)
}

// History handles GET /v1/payments/history?vehicle_id=N.
func (h *PaymentHandler) History(c echo.Context) error {
	vehicleID, err := strconv.ParseUint(c.QueryParam("vehicle_id"), 10, 64)
	if err != nil || vehicleID == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "vehicle_id required"})
	}
	history := h.Payments.HistoryFor(vehicleID)
	if history == nil {
		history = []model.Payment{}
	}
	return c.JSON(http.StatusOK, echo.Map{"vehicle_id": vehicleID, "payments": history})
}

// Stats handles GET /v1/payments/stats: total revenue, payment
// count and per-method tallies.
func (h *PaymentHandler) Stats(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{
		"total_revenue": h.Payments.TotalRevenue(),
		"count":         len(h.Payments.List()),
		"by_method":     h.Payments.CountByMethod(),
	})
}

// Quote handles GET /v1/payments/quote?duration=H: a read-only fee
// preview through the same tier table used when recording, so
// clients can show the price before the payer commits.
func (h *PaymentHandler) Quote(c echo.Context) error {
	duration, err := strconv.ParseFloat(c.QueryParam("duration"), 64)
	if err != nil || duration <= 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "duration must be positive"})
	}
	return c.JSON(http.StatusOK, echo.Map{"duration": duration, "amount": pricing.Price(duration)})
}
