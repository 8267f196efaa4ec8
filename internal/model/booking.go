package model

import "time"

// Booking states. Confirmed is the initial state; Cancelled and
// Completed are terminal. Only a cancellation re-opens the slot --
// completing a booking leaves the slot marked Booked.
const (
	BookingConfirmed = "Confirmed"
	BookingCancelled = "Cancelled"
	BookingCompleted = "Completed"
)

// Booking is a user's reservation of a single slot.
type Booking struct {
	ID          int64     `json:"id"`          // bookings.id
	UserID      int64     `json:"userId"`      // bookings.user_id
	SlotID      int64     `json:"slotId"`      // bookings.slot_id
	BookingDate time.Time `json:"bookingDate"` // bookings.booking_date
	Status      string    `json:"status"`      // bookings.status
}

// ValidBookingStatus reports whether s is a known booking status.
func ValidBookingStatus(s string) bool {
	return s == BookingConfirmed || s == BookingCancelled || s == BookingCompleted
}
