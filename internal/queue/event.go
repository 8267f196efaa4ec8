// Package queue defines message payloads exchanged over the message
// broker and the consumer that drains them.
package queue

// BookingConfirmedEvent is published when a slot booking succeeds. It
// carries enough detail for downstream consumers to log or notify
// without querying the primary database. Slot and ground fields may be
// empty when enrichment failed at publish time.
type BookingConfirmedEvent struct {
	BookingID    int64  `json:"booking_id"`
	UserID       int64  `json:"user_id"`
	SlotID       int64  `json:"slot_id"`
	GroundID     int64  `json:"ground_id,omitempty"`
	GroundName   string `json:"ground_name,omitempty"`
	Date         string `json:"date,omitempty"`
	StartTime    string `json:"start_time,omitempty"`
	EndTime      string `json:"end_time,omitempty"`
	PricePerSlot string `json:"price_per_slot,omitempty"`
	BookedAt     string `json:"booked_at"`
}
