package service

import (
	"context"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/iliyamo/sports-ground-booking/internal/repository"
)

// ReportStore is the aggregation surface of the reporting module.
type ReportStore interface {
	GroundRevenue(ctx context.Context, groundID int64) (float64, error)
	GroundOccupancy(ctx context.Context, groundID int64) (booked, total int64, err error)
	BookingExportRows(ctx context.Context) ([]repository.BookingExportRow, error)
}

// RevenueReport is the revenue response for one ground. The total is
// a decimal string like all monetary values on the wire.
type RevenueReport struct {
	GroundName   string `json:"groundName"`
	TotalRevenue string `json:"totalRevenue"`
}

// OccupancyReport is the occupancy response for one ground.
type OccupancyReport struct {
	GroundName    string  `json:"groundName"`
	OccupancyRate float64 `json:"occupancyRate"`
}

// ReportService aggregates revenue and occupancy per ground.
type ReportService struct {
	store   ReportStore
	grounds GroundGetter
	logger  *zerolog.Logger
}

// NewReportService constructs a ReportService.
func NewReportService(store ReportStore, grounds GroundGetter, logger *zerolog.Logger) *ReportService {
	return &ReportService{store: store, grounds: grounds, logger: logger}
}

// GroundRevenue sums the Paid payment amounts over all bookings whose
// slot belongs to the ground. Pending and Failed payments do not count.
func (s *ReportService) GroundRevenue(ctx context.Context, groundID int64) (*RevenueReport, error) {
	g, err := s.grounds.GetByID(ctx, groundID)
	if err != nil {
		return nil, err
	}
	total, err := s.store.GroundRevenue(ctx, groundID)
	if err != nil {
		return nil, err
	}
	return &RevenueReport{
		GroundName:   g.Name,
		TotalRevenue: strconv.FormatFloat(total, 'f', 2, 64),
	}, nil
}

// GroundOccupancy reports booked/total*100 for the ground's slots, and
// 0 when the ground has no slots.
func (s *ReportService) GroundOccupancy(ctx context.Context, groundID int64) (*OccupancyReport, error) {
	g, err := s.grounds.GetByID(ctx, groundID)
	if err != nil {
		return nil, err
	}
	booked, total, err := s.store.GroundOccupancy(ctx, groundID)
	if err != nil {
		return nil, err
	}
	rate := 0.0
	if total > 0 {
		rate = float64(booked) / float64(total) * 100
	}
	return &OccupancyReport{GroundName: g.Name, OccupancyRate: rate}, nil
}
