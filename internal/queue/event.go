// Package queue defines message payloads exchanged over the message broker.
package queue

// PaymentRecordedEvent is published when a parking payment is
// recorded.  It carries enough information for downstream consumers
// to log, notify, or feed revenue analytics without querying the
// service.
type PaymentRecordedEvent struct {
    PaymentID     uint64  `json:"payment_id"`
    VehicleID     uint64  `json:"vehicle_id"`
    Amount        uint32  `json:"amount"`
    Method        string  `json:"method"`
    DurationHours float64 `json:"duration_hours"`
    PaidAt        string  `json:"paid_at"`
}
