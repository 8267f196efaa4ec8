package repository

import (
	"context"
	"database/sql"
)

// ReportRepo aggregates revenue, occupancy and export data across the
// booking, payment and slot tables.
type ReportRepo struct {
	db *sql.DB
}

// NewReportRepo constructs a ReportRepo bound to the given database.
func NewReportRepo(db *sql.DB) *ReportRepo { return &ReportRepo{db: db} }

// GroundRevenue sums the amounts of Paid payments whose booking's slot
// belongs to the given ground. Ground existence is checked by the
// service layer.
func (r *ReportRepo) GroundRevenue(ctx context.Context, groundID int64) (float64, error) {
	var total float64
	err := r.db.QueryRowContext(ctx,
		`SELECT COALESCE(SUM(p.amount), 0)
		 FROM payments p
		 JOIN bookings b ON b.id = p.booking_id
		 JOIN slots s ON s.id = b.slot_id
		 WHERE s.ground_id = ? AND p.payment_status = 'Paid'`,
		groundID).Scan(&total)
	return total, err
}

// GroundOccupancy counts booked and total slots for the given ground.
func (r *ReportRepo) GroundOccupancy(ctx context.Context, groundID int64) (booked, total int64, err error) {
	err = r.db.QueryRowContext(ctx,
		`SELECT COALESCE(SUM(availability_status = 'Booked'), 0), COUNT(*)
		 FROM slots WHERE ground_id = ?`,
		groundID).Scan(&booked, &total)
	return booked, total, err
}

// BookingExportRow is one line of the admin bookings export. Payment
// columns are nullable because a booking may have no payment yet.
type BookingExportRow struct {
	BookingID     int64
	GroundName    string
	SlotDate      string
	StartTime     string
	EndTime       string
	UserEmail     string
	BookingStatus string
	Amount        *string
	PaymentStatus *string
}

// BookingExportRows loads every booking joined with its slot, ground,
// user and optional payment, ordered by booking id.
func (r *ReportRepo) BookingExportRows(ctx context.Context) ([]BookingExportRow, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT b.id, g.name, DATE_FORMAT(s.date, '%Y-%m-%d'),
			TIME_FORMAT(s.start_time, '%H:%i'), TIME_FORMAT(s.end_time, '%H:%i'),
			u.email, b.status, CAST(p.amount AS CHAR), p.payment_status
		 FROM bookings b
		 JOIN slots s ON s.id = b.slot_id
		 JOIN grounds g ON g.id = s.ground_id
		 JOIN users u ON u.id = b.user_id
		 LEFT JOIN payments p ON p.booking_id = b.id
		 ORDER BY b.id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := make([]BookingExportRow, 0)
	for rows.Next() {
		var row BookingExportRow
		var amount, status sql.NullString
		if err := rows.Scan(&row.BookingID, &row.GroundName, &row.SlotDate, &row.StartTime,
			&row.EndTime, &row.UserEmail, &row.BookingStatus, &amount, &status); err != nil {
			return nil, err
		}
		if amount.Valid {
			row.Amount = &amount.String
		}
		if status.Valid {
			row.PaymentStatus = &status.String
		}
		out = append(out, row)
	}
	return out, rows.Err()
}
