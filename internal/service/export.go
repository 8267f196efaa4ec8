package service

import (
	"bytes"
	"context"
	"fmt"

	"github.com/xuri/excelize/v2"
)

// exportHeaders are the columns of the bookings export sheet.
var exportHeaders = []string{
	"Booking ID", "Ground", "Date", "Start", "End",
	"User", "Booking Status", "Amount", "Payment Status",
}

// ExportBookings renders every booking with its slot, ground, user and
// optional payment into an .xlsx workbook and returns the file bytes.
func (s *ReportService) ExportBookings(ctx context.Context) ([]byte, error) {
	rows, err := s.store.BookingExportRows(ctx)
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Bookings"
	index, err := f.NewSheet(sheet)
	if err != nil {
		return nil, fmt.Errorf("create sheet: %w", err)
	}
	f.SetActiveSheet(index)

	for i, h := range exportHeaders {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}
	style, _ := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	_ = f.SetCellStyle(sheet, "A1", "I1", style)

	for i, row := range rows {
		values := []any{
			row.BookingID, row.GroundName, row.SlotDate, row.StartTime, row.EndTime,
			row.UserEmail, row.BookingStatus, deref(row.Amount), deref(row.PaymentStatus),
		}
		for j, v := range values {
			cell, _ := excelize.CoordinatesToCellName(j+1, i+2)
			_ = f.SetCellValue(sheet, cell, v)
		}
	}
	_ = f.SetColWidth(sheet, "A", "I", 18)
	_ = f.DeleteSheet("Sheet1")

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	s.logger.Info().Int("rows", len(rows)).Msg("bookings export generated")
	return buf.Bytes(), nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
