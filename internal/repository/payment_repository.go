package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/iliyamo/sports-ground-booking/internal/model"
)

// PaymentRepo encapsulates database operations for payments. The
// at-most-one-payment-per-booking rule is backed by a unique index on
// payments.booking_id, so a duplicate insert surfaces as
// ErrPaymentExists even under concurrent requests.
type PaymentRepo struct {
	db *sql.DB
}

// NewPaymentRepo constructs a PaymentRepo bound to the given database.
func NewPaymentRepo(db *sql.DB) *PaymentRepo { return &PaymentRepo{db: db} }

const paymentColumns = `id, booking_id, payment_date, CAST(amount AS CHAR), payment_method, payment_status`

func scanPayment(row interface{ Scan(...any) error }) (*model.Payment, error) {
	var p model.Payment
	err := row.Scan(&p.ID, &p.BookingID, &p.PaymentDate, &p.Amount, &p.PaymentMethod, &p.PaymentStatus)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// List returns all payments ordered by id.
func (r *PaymentRepo) List(ctx context.Context) ([]*model.Payment, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+paymentColumns+` FROM payments ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := make([]*model.Payment, 0)
	for rows.Next() {
		p, err := scanPayment(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

// GetByID fetches a payment by id, returning ErrPaymentNotFound when absent.
func (r *PaymentRepo) GetByID(ctx context.Context, id int64) (*model.Payment, error) {
	p, err := scanPayment(r.db.QueryRowContext(ctx,
		`SELECT `+paymentColumns+` FROM payments WHERE id = ? LIMIT 1`, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrPaymentNotFound
		}
		return nil, err
	}
	return p, nil
}

// GetByBooking fetches the payment attached to one booking.
func (r *PaymentRepo) GetByBooking(ctx context.Context, bookingID int64) (*model.Payment, error) {
	p, err := scanPayment(r.db.QueryRowContext(ctx,
		`SELECT `+paymentColumns+` FROM payments WHERE booking_id = ? LIMIT 1`, bookingID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrPaymentNotFound
		}
		return nil, err
	}
	return p, nil
}

// Create records a payment against a booking and returns the stored
// row. A second payment for the same booking violates the unique
// index and is reported as ErrPaymentExists.
func (r *PaymentRepo) Create(ctx context.Context, bookingID int64, amount, method, status string) (*model.Payment, error) {
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO payments (booking_id, amount, payment_method, payment_status) VALUES (?,?,?,?)`,
		bookingID, amount, method, status)
	if err != nil {
		if strings.Contains(strings.ToLower(err.Error()), "1062") {
			return nil, ErrPaymentExists
		}
		return nil, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, err
	}
	return r.GetByID(ctx, id)
}

// UpdateStatus sets the payment status with no side effects on the
// booking or slot.
func (r *PaymentRepo) UpdateStatus(ctx context.Context, id int64, status string) (*model.Payment, error) {
	p, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if _, err := r.db.ExecContext(ctx,
		`UPDATE payments SET payment_status = ? WHERE id = ?`, status, id); err != nil {
		return nil, err
	}
	p.PaymentStatus = status
	return p, nil
}
