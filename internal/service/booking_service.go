package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/iliyamo/sports-ground-booking/internal/metrics"
	"github.com/iliyamo/sports-ground-booking/internal/model"
	"github.com/iliyamo/sports-ground-booking/internal/queue"
	"github.com/iliyamo/sports-ground-booking/internal/repository"
)

// BookingStore is the persistence surface of the booking workflow.
// Create and UpdateStatus are transactional: booking status and slot
// availability change in the same commit.
type BookingStore interface {
	Create(ctx context.Context, userID, slotID int64) (*model.Booking, error)
	GetByID(ctx context.Context, id int64) (*model.Booking, error)
	UpdateStatus(ctx context.Context, b *model.Booking, status string) (*model.Booking, error)
	List(ctx context.Context) ([]*model.Booking, error)
	ListByUser(ctx context.Context, userID int64) ([]*model.Booking, error)
	ListByGround(ctx context.Context, groundID int64) ([]*model.Booking, error)
}

// SlotGetter resolves slots, used to enrich booking events.
type SlotGetter interface {
	GetByID(ctx context.Context, id int64) (*model.Slot, error)
}

// GroundGetter resolves grounds.
type GroundGetter interface {
	GetByID(ctx context.Context, id int64) (*model.Ground, error)
}

// EventPublisher pushes booking events to the message broker.
type EventPublisher interface {
	PublishBookingConfirmed(ctx context.Context, ev queue.BookingConfirmedEvent) error
}

// BookingService implements the slot-booking state machine: a slot is
// booked by inserting a Confirmed booking and flipping the slot to
// Booked; cancellation reverses the slot, completion does not.
type BookingService struct {
	store   BookingStore
	slots   SlotGetter
	grounds GroundGetter
	events  EventPublisher
	logger  *zerolog.Logger
}

// NewBookingService constructs a BookingService. events may be nil
// when no broker is configured.
func NewBookingService(store BookingStore, slots SlotGetter, grounds GroundGetter, events EventPublisher, logger *zerolog.Logger) *BookingService {
	return &BookingService{store: store, slots: slots, grounds: grounds, events: events, logger: logger}
}

// Create books the slot for the calling user. The store rejects slots
// that are missing (repository.ErrSlotNotFound) or not Available
// (repository.ErrSlotUnavailable) without any partial mutation.
func (s *BookingService) Create(ctx context.Context, ident Identity, slotID int64) (*model.Booking, error) {
	b, err := s.store.Create(ctx, ident.UserID, slotID)
	if err != nil {
		return nil, err
	}
	metrics.IncBookingCreated()
	s.logger.Info().Int64("booking_id", b.ID).Int64("user_id", ident.UserID).
		Int64("slot_id", slotID).Msg("booking created")
	s.publishConfirmed(ctx, b)
	return b, nil
}

// UpdateStatus applies one of the allowed transitions:
// Confirmed->Cancelled by the owner or an admin (re-opens the slot),
// Confirmed->Completed by an admin (slot stays Booked). Cancelled and
// Completed are terminal.
func (s *BookingService) UpdateStatus(ctx context.Context, ident Identity, bookingID int64, status string) (*model.Booking, error) {
	b, err := s.store.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	switch status {
	case model.BookingCancelled:
		if !canActOnOwned(ident, b.UserID) {
			return nil, repository.ErrForbidden
		}
	case model.BookingCompleted:
		if !adminOnly(ident) {
			return nil, repository.ErrForbidden
		}
	default:
		return nil, repository.ErrInvalidTransition
	}
	if b.Status != model.BookingConfirmed {
		return nil, repository.ErrInvalidTransition
	}
	updated, err := s.store.UpdateStatus(ctx, b, status)
	if err != nil {
		return nil, err
	}
	if status == model.BookingCancelled {
		metrics.IncBookingCancelled()
	}
	s.logger.Info().Int64("booking_id", bookingID).Str("status", status).Msg("booking status updated")
	return updated, nil
}

// Get returns one booking, visible to its owner and admins.
func (s *BookingService) Get(ctx context.Context, ident Identity, bookingID int64) (*model.Booking, error) {
	b, err := s.store.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if !canActOnOwned(ident, b.UserID) {
		return nil, repository.ErrForbidden
	}
	return b, nil
}

// List returns all bookings (admin only).
func (s *BookingService) List(ctx context.Context, ident Identity) ([]*model.Booking, error) {
	if !adminOnly(ident) {
		return nil, repository.ErrForbidden
	}
	return s.store.List(ctx)
}

// ListByUser returns one user's bookings, visible to that user and admins.
func (s *BookingService) ListByUser(ctx context.Context, ident Identity, userID int64) ([]*model.Booking, error) {
	if !canActOnOwned(ident, userID) {
		return nil, repository.ErrForbidden
	}
	return s.store.ListByUser(ctx, userID)
}

// ListByGround returns all bookings on a ground (admin only).
func (s *BookingService) ListByGround(ctx context.Context, ident Identity, groundID int64) ([]*model.Booking, error) {
	if !adminOnly(ident) {
		return nil, repository.ErrForbidden
	}
	return s.store.ListByGround(ctx, groundID)
}

// publishConfirmed emits a booking.confirmed event, best effort. A
// broker failure never fails the booking.
func (s *BookingService) publishConfirmed(ctx context.Context, b *model.Booking) {
	if s.events == nil {
		return
	}
	ev := queue.BookingConfirmedEvent{
		BookingID: b.ID,
		UserID:    b.UserID,
		SlotID:    b.SlotID,
		BookedAt:  b.BookingDate.UTC().Format(time.RFC3339),
	}
	if slot, err := s.slots.GetByID(ctx, b.SlotID); err == nil {
		ev.GroundID = slot.GroundID
		ev.Date = slot.Date
		ev.StartTime = slot.StartTime
		ev.EndTime = slot.EndTime
		ev.PricePerSlot = slot.PricePerSlot
		if ground, err := s.grounds.GetByID(ctx, slot.GroundID); err == nil {
			ev.GroundName = ground.Name
		}
	}
	if err := s.events.PublishBookingConfirmed(ctx, ev); err != nil {
		s.logger.Warn().Err(err).Int64("booking_id", b.ID).Msg("booking event publish failed")
	}
}
