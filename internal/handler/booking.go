package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/sports-ground-booking/internal/model"
	"github.com/iliyamo/sports-ground-booking/internal/repository"
	"github.com/iliyamo/sports-ground-booking/internal/service"
)

// BookingHandler serves booking endpoints on top of the booking
// service, which enforces ownership and status transition rules.
type BookingHandler struct {
	bookings *service.BookingService
}

func NewBookingHandler(bookings *service.BookingService) *BookingHandler {
	return &BookingHandler{bookings: bookings}
}

type createBookingRequest struct {
	SlotID int64 `json:"slotId" validate:"required,gt=0"`
}

type bookingStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

func (h *BookingHandler) Create(c echo.Context) error {
	var req createBookingRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "Invalid input"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "Invalid input"})
	}

	b, err := h.bookings.Create(c.Request().Context(), identityFrom(c), req.SlotID)
	if err != nil {
		// A missing slot and an already booked slot are reported the
		// same way to the caller.
		if errors.Is(err, repository.ErrSlotNotFound) || errors.Is(err, repository.ErrSlotUnavailable) {
			return c.JSON(http.StatusBadRequest, echo.Map{"message": "Slot is not available for booking"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Server error"})
	}
	return c.JSON(http.StatusCreated, b)
}

func (h *BookingHandler) UpdateStatus(c echo.Context) error {
	id, ok := paramID(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "Invalid booking id"})
	}
	var req bookingStatusRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "Invalid input"})
	}
	if err := c.Validate(&req); err != nil || !model.ValidBookingStatus(req.Status) {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "Invalid status"})
	}

	b, err := h.bookings.UpdateStatus(c.Request().Context(), identityFrom(c), id, req.Status)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrBookingNotFound):
			return c.JSON(http.StatusNotFound, echo.Map{"message": "Booking not found"})
		case errors.Is(err, repository.ErrForbidden):
			return c.JSON(http.StatusForbidden, echo.Map{"message": "Forbidden"})
		case errors.Is(err, repository.ErrInvalidTransition):
			return c.JSON(http.StatusBadRequest, echo.Map{"message": "Invalid status transition"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Server error"})
	}
	return c.JSON(http.StatusOK, b)
}

func (h *BookingHandler) Get(c echo.Context) error {
	id, ok := paramID(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "Invalid booking id"})
	}
	b, err := h.bookings.Get(c.Request().Context(), identityFrom(c), id)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrBookingNotFound):
			return c.JSON(http.StatusNotFound, echo.Map{"message": "Booking not found"})
		case errors.Is(err, repository.ErrForbidden):
			return c.JSON(http.StatusForbidden, echo.Map{"message": "Forbidden"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Server error"})
	}
	return c.JSON(http.StatusOK, b)
}

func (h *BookingHandler) List(c echo.Context) error {
	bookings, err := h.bookings.List(c.Request().Context(), identityFrom(c))
	if err != nil {
		if errors.Is(err, repository.ErrForbidden) {
			return c.JSON(http.StatusForbidden, echo.Map{"message": "Forbidden"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Server error"})
	}
	return c.JSON(http.StatusOK, bookings)
}

func (h *BookingHandler) ListByUser(c echo.Context) error {
	userID, ok := paramID(c, "userId")
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "Invalid user id"})
	}
	bookings, err := h.bookings.ListByUser(c.Request().Context(), identityFrom(c), userID)
	if err != nil {
		if errors.Is(err, repository.ErrForbidden) {
			return c.JSON(http.StatusForbidden, echo.Map{"message": "Forbidden"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Server error"})
	}
	return c.JSON(http.StatusOK, bookings)
}

func (h *BookingHandler) ListByGround(c echo.Context) error {
	groundID, ok := paramID(c, "groundId")
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "Invalid ground id"})
	}
	bookings, err := h.bookings.ListByGround(c.Request().Context(), identityFrom(c), groundID)
	if err != nil {
		if errors.Is(err, repository.ErrForbidden) {
			return c.JSON(http.StatusForbidden, echo.Map{"message": "Forbidden"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Server error"})
	}
	return c.JSON(http.StatusOK, bookings)
}
