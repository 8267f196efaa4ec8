package model

import "time"

// Payment methods accepted when recording a payment.
const (
	PaymentCard   = "Card"
	PaymentCash   = "Cash"
	PaymentOnline = "Online"
)

// Payment states. Payments recorded through the booking flow default
// to Paid; admins may move them to Pending or Failed afterwards.
const (
	PaymentPaid    = "Paid"
	PaymentPending = "Pending"
	PaymentFailed  = "Failed"
)

// Payment is a monetary record attached to exactly one booking. The
// amount is a decimal string (e.g. "20.00").
type Payment struct {
	ID            int64     `json:"id"`            // payments.id
	BookingID     int64     `json:"bookingId"`     // payments.booking_id (unique)
	PaymentDate   time.Time `json:"paymentDate"`   // payments.payment_date
	Amount        string    `json:"amount"`        // payments.amount
	PaymentMethod string    `json:"paymentMethod"` // payments.payment_method
	PaymentStatus string    `json:"paymentStatus"` // payments.payment_status
}

// ValidPaymentMethod reports whether m is a known payment method.
func ValidPaymentMethod(m string) bool {
	return m == PaymentCard || m == PaymentCash || m == PaymentOnline
}

// ValidPaymentStatus reports whether s is a known payment status.
func ValidPaymentStatus(s string) bool {
	return s == PaymentPaid || s == PaymentPending || s == PaymentFailed
}
