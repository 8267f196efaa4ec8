// Package repository defines error types that are reused across multiple
// repositories. These sentinel values allow higher layers such as
// services and handlers to distinguish between failure scenarios
// without inspecting driver errors. For example, ErrSlotUnavailable
// signals that a booking attempt targeted a slot that is not in the
// Available state, while ErrPaymentExists signals a second payment
// for the same booking.
package repository

import "errors"

// Not-found sentinels, one per entity. Handlers translate these into
// HTTP 404 responses.
var (
	ErrGroundNotFound  = errors.New("ground not found")
	ErrSlotNotFound    = errors.New("slot not found")
	ErrUserNotFound    = errors.New("user not found")
	ErrBookingNotFound = errors.New("booking not found")
	ErrPaymentNotFound = errors.New("payment not found")
)

// ErrEmailExists is returned when registration targets an email that
// is already taken.
var ErrEmailExists = errors.New("email already exists")

// ErrSlotUnavailable is returned when a booking targets a slot whose
// availability status is not Available. The slot is left untouched.
var ErrSlotUnavailable = errors.New("slot is not available for booking")

// ErrPaymentExists is returned when a booking already has a payment.
// The reference API reports this as HTTP 400.
var ErrPaymentExists = errors.New("payment already exists for this booking")

// ErrForbidden is returned when the caller attempts an operation on a
// resource they do not own and they are not an admin. Handlers should
// translate this into an HTTP 403 response.
var ErrForbidden = errors.New("forbidden")

// ErrInvalidTransition is returned when a booking status change is
// requested out of a terminal state (Cancelled or Completed), or when
// the requested state equals the current one.
var ErrInvalidTransition = errors.New("invalid status transition")
