package handler

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/sports-ground-booking/internal/repository"
	"github.com/iliyamo/sports-ground-booking/internal/service"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ReportHandler serves admin reporting endpoints.
type ReportHandler struct {
	reports *service.ReportService
}

func NewReportHandler(reports *service.ReportService) *ReportHandler {
	return &ReportHandler{reports: reports}
}

func (h *ReportHandler) GroundRevenue(c echo.Context) error {
	id, ok := paramID(c, "groundId")
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "Invalid ground id"})
	}
	rep, err := h.reports.GroundRevenue(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrGroundNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"message": "Ground not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Server error"})
	}
	return c.JSON(http.StatusOK, rep)
}

func (h *ReportHandler) GroundOccupancy(c echo.Context) error {
	id, ok := paramID(c, "groundId")
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "Invalid ground id"})
	}
	rep, err := h.reports.GroundOccupancy(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrGroundNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"message": "Ground not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Server error"})
	}
	return c.JSON(http.StatusOK, rep)
}

// ExportBookings streams an xlsx workbook with every booking and its
// payment details.
func (h *ReportHandler) ExportBookings(c echo.Context) error {
	data, err := h.reports.ExportBookings(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Server error"})
	}
	filename := fmt.Sprintf("bookings-%s.xlsx", time.Now().UTC().Format("2006-01-02"))
	c.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf(`attachment; filename=%q`, filename))
	return c.Blob(http.StatusOK, xlsxContentType, data)
}
