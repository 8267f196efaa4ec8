package model

// Slot availability states. A slot flips to Booked when an active
// booking references it and back to Available when that booking is
// cancelled.
const (
	SlotAvailable = "Available"
	SlotBooked    = "Booked"
)

// Slot is a bookable time interval on a given date for a specific
// ground. Date is transported as YYYY-MM-DD and times as HH:MM;
// the price is a decimal string (e.g. "20.00").
type Slot struct {
	ID                 int64  `json:"id"`                 // slots.id
	GroundID           int64  `json:"groundId"`           // slots.ground_id
	Date               string `json:"date"`               // slots.date
	StartTime          string `json:"startTime"`          // slots.start_time
	EndTime            string `json:"endTime"`            // slots.end_time
	PricePerSlot       string `json:"pricePerSlot"`       // slots.price_per_slot
	AvailabilityStatus string `json:"availabilityStatus"` // slots.availability_status
}
