package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/iliyamo/sports-ground-booking/internal/metrics"
	"github.com/iliyamo/sports-ground-booking/internal/model"
	"github.com/iliyamo/sports-ground-booking/internal/repository"
)

// PaymentStore is the persistence surface of the payment workflow.
type PaymentStore interface {
	Create(ctx context.Context, bookingID int64, amount, method, status string) (*model.Payment, error)
	GetByID(ctx context.Context, id int64) (*model.Payment, error)
	GetByBooking(ctx context.Context, bookingID int64) (*model.Payment, error)
	List(ctx context.Context) ([]*model.Payment, error)
	UpdateStatus(ctx context.Context, id int64, status string) (*model.Payment, error)
}

// BookingGetter resolves bookings for ownership checks.
type BookingGetter interface {
	GetByID(ctx context.Context, id int64) (*model.Booking, error)
}

// PaymentService records payments against bookings, enforcing
// at-most-one payment per booking.
type PaymentService struct {
	payments PaymentStore
	bookings BookingGetter
	logger   *zerolog.Logger
}

// NewPaymentService constructs a PaymentService.
func NewPaymentService(payments PaymentStore, bookings BookingGetter, logger *zerolog.Logger) *PaymentService {
	return &PaymentService{payments: payments, bookings: bookings, logger: logger}
}

// Create records a payment for a booking on behalf of its owner or an
// admin. Payments recorded through this flow are Paid immediately; a
// duplicate surfaces as repository.ErrPaymentExists and leaves the
// first payment untouched.
func (s *PaymentService) Create(ctx context.Context, ident Identity, bookingID int64, amount, method string) (*model.Payment, error) {
	b, err := s.bookings.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if !canActOnOwned(ident, b.UserID) {
		return nil, repository.ErrForbidden
	}
	p, err := s.payments.Create(ctx, bookingID, amount, method, model.PaymentPaid)
	if err != nil {
		return nil, err
	}
	metrics.IncPaymentRecorded()
	s.logger.Info().Int64("payment_id", p.ID).Int64("booking_id", bookingID).
		Str("amount", amount).Str("method", method).Msg("payment recorded")
	return p, nil
}

// UpdateStatus sets a payment's status (admin only); no side effect on
// the booking or slot.
func (s *PaymentService) UpdateStatus(ctx context.Context, ident Identity, paymentID int64, status string) (*model.Payment, error) {
	if !adminOnly(ident) {
		return nil, repository.ErrForbidden
	}
	p, err := s.payments.UpdateStatus(ctx, paymentID, status)
	if err != nil {
		return nil, err
	}
	s.logger.Info().Int64("payment_id", paymentID).Str("status", status).Msg("payment status updated")
	return p, nil
}

// Get returns one payment, visible to the owner of its booking and admins.
func (s *PaymentService) Get(ctx context.Context, ident Identity, paymentID int64) (*model.Payment, error) {
	p, err := s.payments.GetByID(ctx, paymentID)
	if err != nil {
		return nil, err
	}
	if err := s.authorizeForBooking(ctx, ident, p.BookingID); err != nil {
		return nil, err
	}
	return p, nil
}

// GetByBooking returns the payment attached to a booking, visible to
// the booking owner and admins.
func (s *PaymentService) GetByBooking(ctx context.Context, ident Identity, bookingID int64) (*model.Payment, error) {
	if err := s.authorizeForBooking(ctx, ident, bookingID); err != nil {
		return nil, err
	}
	return s.payments.GetByBooking(ctx, bookingID)
}

// List returns all payments (admin only).
func (s *PaymentService) List(ctx context.Context, ident Identity) ([]*model.Payment, error) {
	if !adminOnly(ident) {
		return nil, repository.ErrForbidden
	}
	return s.payments.List(ctx)
}

func (s *PaymentService) authorizeForBooking(ctx context.Context, ident Identity, bookingID int64) error {
	b, err := s.bookings.GetByID(ctx, bookingID)
	if err != nil {
		return err
	}
	if !canActOnOwned(ident, b.UserID) {
		return repository.ErrForbidden
	}
	return nil
}
