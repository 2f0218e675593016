package model

import "time"

// PaymentMethod enumerates how a payment was made.
type PaymentMethod string

const (
    PaymentCard PaymentMethod = "card"
    PaymentCash PaymentMethod = "cash"
)

// ValidPaymentMethod reports whether s names a known payment method.
func ValidPaymentMethod(s string) bool {
    switch PaymentMethod(s) {
    case PaymentCard, PaymentCash:
        return true
    }
    return false
}

// PaymentPaid is the only payment status the system models; there
// are no pending or failed states.
const PaymentPaid = "paid"

// Payment is an immutable record of a completed parking payment.
// The amount is never user-supplied: it is always computed by the
// pricing engine from the duration.  VehicleID is an informal
// reference; removing a vehicle does not cascade to its payments.
//
// Fields:
//  ID        – identifier derived from the creation clock (unix
//              milliseconds).
//  VehicleID – id of the vehicle paid for (not validated).
//  Amount    – fee computed by the pricing engine.
//  Method    – payment method (card, cash).
//  Duration  – parking duration in hours, as entered by the payer.
//  Date      – creation timestamp.
//  Status    – always "paid".
type Payment struct {
    ID        uint64        `json:"id"`
    VehicleID uint64        `json:"vehicle_id"`
    Amount    uint32        `json:"amount"`
    Method    PaymentMethod `json:"method"`
    Duration  float64       `json:"duration"`
    Date      time.Time     `json:"date"`
    Status    string        `json:"status"`
}
