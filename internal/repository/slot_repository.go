package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/iliyamo/sports-ground-booking/internal/model"
)

// SlotRepo encapsulates database operations for slots. Dates and times
// are selected pre-formatted (YYYY-MM-DD / HH:MM) so the model carries
// the wire representation directly.
type SlotRepo struct {
	db *sql.DB
}

// NewSlotRepo constructs a SlotRepo bound to the given database.
func NewSlotRepo(db *sql.DB) *SlotRepo { return &SlotRepo{db: db} }

const slotColumns = `id, ground_id, DATE_FORMAT(date, '%Y-%m-%d'), TIME_FORMAT(start_time, '%H:%i'),
	TIME_FORMAT(end_time, '%H:%i'), CAST(price_per_slot AS CHAR), availability_status`

func scanSlot(row interface{ Scan(...any) error }) (*model.Slot, error) {
	var s model.Slot
	err := row.Scan(&s.ID, &s.GroundID, &s.Date, &s.StartTime, &s.EndTime, &s.PricePerSlot, &s.AvailabilityStatus)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *SlotRepo) queryMany(ctx context.Context, q string, args ...any) ([]*model.Slot, error) {
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := make([]*model.Slot, 0)
	for rows.Next() {
		s, err := scanSlot(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

// List returns all slots ordered by id.
func (r *SlotRepo) List(ctx context.Context) ([]*model.Slot, error) {
	return r.queryMany(ctx, `SELECT `+slotColumns+` FROM slots ORDER BY id`)
}

// GetByID fetches a slot by id, returning ErrSlotNotFound when absent.
func (r *SlotRepo) GetByID(ctx context.Context, id int64) (*model.Slot, error) {
	s, err := scanSlot(r.db.QueryRowContext(ctx,
		`SELECT `+slotColumns+` FROM slots WHERE id = ? LIMIT 1`, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrSlotNotFound
		}
		return nil, err
	}
	return s, nil
}

// ListByGround returns all slots of one ground.
func (r *SlotRepo) ListByGround(ctx context.Context, groundID int64) ([]*model.Slot, error) {
	return r.queryMany(ctx,
		`SELECT `+slotColumns+` FROM slots WHERE ground_id = ? ORDER BY date, start_time`, groundID)
}

// ListAvailableByGroundAndDate returns the Available slots of one
// ground on the given date (YYYY-MM-DD).
func (r *SlotRepo) ListAvailableByGroundAndDate(ctx context.Context, groundID int64, date string) ([]*model.Slot, error) {
	return r.queryMany(ctx,
		`SELECT `+slotColumns+` FROM slots
		 WHERE ground_id = ? AND date = ? AND availability_status = ? ORDER BY start_time`,
		groundID, date, model.SlotAvailable)
}

// Create inserts a slot and populates its generated id. New slots
// default to Available unless the caller says otherwise.
func (r *SlotRepo) Create(ctx context.Context, s *model.Slot) error {
	if s.AvailabilityStatus == "" {
		s.AvailabilityStatus = model.SlotAvailable
	}
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO slots (ground_id, date, start_time, end_time, price_per_slot, availability_status) VALUES (?,?,?,?,?,?)`,
		s.GroundID, s.Date, s.StartTime, s.EndTime, s.PricePerSlot, s.AvailabilityStatus)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	s.ID = id
	return nil
}

// Update rewrites all mutable columns of a slot.
func (r *SlotRepo) Update(ctx context.Context, s *model.Slot) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE slots SET ground_id=?, date=?, start_time=?, end_time=?, price_per_slot=?, availability_status=? WHERE id=?`,
		s.GroundID, s.Date, s.StartTime, s.EndTime, s.PricePerSlot, s.AvailabilityStatus, s.ID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		if _, err := r.GetByID(ctx, s.ID); err != nil {
			return err
		}
	}
	return nil
}

// Delete removes a slot, returning ErrSlotNotFound when absent.
func (r *SlotRepo) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM slots WHERE id = ?`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrSlotNotFound
	}
	return nil
}
