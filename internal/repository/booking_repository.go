package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/iliyamo/sports-ground-booking/internal/model"
)

// BookingRepo encapsulates database operations for bookings. The two
// state-changing operations (Create and UpdateStatus) run inside a
// transaction because they touch both the bookings and slots tables:
// a booking is only Confirmed once its slot has flipped to Booked, and
// a cancellation re-opens the slot in the same commit.
type BookingRepo struct {
	db *sql.DB
}

// NewBookingRepo constructs a BookingRepo bound to the given database.
func NewBookingRepo(db *sql.DB) *BookingRepo { return &BookingRepo{db: db} }

const bookingColumns = `id, user_id, slot_id, booking_date, status`

func scanBooking(row interface{ Scan(...any) error }) (*model.Booking, error) {
	var b model.Booking
	err := row.Scan(&b.ID, &b.UserID, &b.SlotID, &b.BookingDate, &b.Status)
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *BookingRepo) queryMany(ctx context.Context, q string, args ...any) ([]*model.Booking, error) {
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := make([]*model.Booking, 0)
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, rows.Err()
}

// List returns all bookings ordered by id.
func (r *BookingRepo) List(ctx context.Context) ([]*model.Booking, error) {
	return r.queryMany(ctx, `SELECT `+bookingColumns+` FROM bookings ORDER BY id`)
}

// GetByID fetches a booking by id, returning ErrBookingNotFound when absent.
func (r *BookingRepo) GetByID(ctx context.Context, id int64) (*model.Booking, error) {
	b, err := scanBooking(r.db.QueryRowContext(ctx,
		`SELECT `+bookingColumns+` FROM bookings WHERE id = ? LIMIT 1`, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}
	return b, nil
}

// ListByUser returns all bookings created by one user.
func (r *BookingRepo) ListByUser(ctx context.Context, userID int64) ([]*model.Booking, error) {
	return r.queryMany(ctx,
		`SELECT `+bookingColumns+` FROM bookings WHERE user_id = ? ORDER BY id`, userID)
}

// ListByGround returns all bookings whose slot belongs to one ground.
func (r *BookingRepo) ListByGround(ctx context.Context, groundID int64) ([]*model.Booking, error) {
	return r.queryMany(ctx,
		`SELECT b.id, b.user_id, b.slot_id, b.booking_date, b.status
		 FROM bookings b JOIN slots s ON s.id = b.slot_id
		 WHERE s.ground_id = ? ORDER BY b.id`, groundID)
}

// Create books a slot for a user. The slot row is locked with
// SELECT ... FOR UPDATE so two concurrent requests cannot both pass
// the availability check; the loser observes Booked and fails with
// ErrSlotUnavailable. On success the new Confirmed booking is
// returned with its server-assigned booking date.
func (r *BookingRepo) Create(ctx context.Context, userID, slotID int64) (*model.Booking, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()

	var status string
	err = tx.QueryRowContext(ctx,
		`SELECT availability_status FROM slots WHERE id = ? FOR UPDATE`, slotID).Scan(&status)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrSlotNotFound
		}
		return nil, err
	}
	if status != model.SlotAvailable {
		return nil, ErrSlotUnavailable
	}

	res, err := tx.ExecContext(ctx,
		`INSERT INTO bookings (user_id, slot_id, status) VALUES (?,?,?)`,
		userID, slotID, model.BookingConfirmed)
	if err != nil {
		return nil, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, err
	}

	if _, err := tx.ExecContext(ctx,
		`UPDATE slots SET availability_status = ? WHERE id = ?`,
		model.SlotBooked, slotID); err != nil {
		return nil, err
	}

	// Query back inside the transaction to pick up the DB-assigned
	// booking_date.
	b, err := scanBooking(tx.QueryRowContext(ctx,
		`SELECT `+bookingColumns+` FROM bookings WHERE id = ?`, id))
	if err != nil {
		return nil, err
	}
	if err := tx.Commit(); err != nil {
		return nil, err
	}
	committed = true
	return b, nil
}

// UpdateStatus moves a Confirmed booking to the given status. A move
// to Cancelled re-opens the slot in the same transaction; a move to
// Completed leaves the slot Booked. The update is guarded on the
// current status so two concurrent transitions cannot both apply: the
// loser matches zero rows and gets ErrInvalidTransition. Policy checks
// are the caller's responsibility.
func (r *BookingRepo) UpdateStatus(ctx context.Context, b *model.Booking, status string) (*model.Booking, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()

	res, err := tx.ExecContext(ctx,
		`UPDATE bookings SET status = ? WHERE id = ? AND status = ?`,
		status, b.ID, model.BookingConfirmed)
	if err != nil {
		return nil, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return nil, err
	}
	if n == 0 {
		return nil, ErrInvalidTransition
	}

	if status == model.BookingCancelled {
		if _, err := tx.ExecContext(ctx,
			`UPDATE slots SET availability_status = ? WHERE id = ?`,
			model.SlotAvailable, b.SlotID); err != nil {
			return nil, err
		}
	}

	updated, err := scanBooking(tx.QueryRowContext(ctx,
		`SELECT `+bookingColumns+` FROM bookings WHERE id = ?`, b.ID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}
	if err := tx.Commit(); err != nil {
		return nil, err
	}
	committed = true
	return updated, nil
}
