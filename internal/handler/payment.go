package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/sports-ground-booking/internal/model"
	"github.com/iliyamo/sports-ground-booking/internal/repository"
	"github.com/iliyamo/sports-ground-booking/internal/service"
)

// PaymentHandler serves payment endpoints on top of the payment
// service.
type PaymentHandler struct {
	payments *service.PaymentService
}

func NewPaymentHandler(payments *service.PaymentService) *PaymentHandler {
	return &PaymentHandler{payments: payments}
}

type createPaymentRequest struct {
	BookingID     int64  `json:"bookingId" validate:"required,gt=0"`
	Amount        string `json:"amount" validate:"required"`
	PaymentMethod string `json:"paymentMethod" validate:"required"`
}

type paymentStatusRequest struct {
	PaymentStatus string `json:"paymentStatus" validate:"required"`
}

func (h *PaymentHandler) Create(c echo.Context) error {
	var req createPaymentRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "Invalid input"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "Invalid input"})
	}
	if !amountRe.MatchString(req.Amount) {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "Invalid amount"})
	}
	if !model.ValidPaymentMethod(req.PaymentMethod) {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "Invalid payment method"})
	}

	p, err := h.payments.Create(c.Request().Context(), identityFrom(c), req.BookingID, req.Amount, req.PaymentMethod)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrBookingNotFound):
			return c.JSON(http.StatusNotFound, echo.Map{"message": "Booking not found"})
		case errors.Is(err, repository.ErrPaymentExists):
			return c.JSON(http.StatusBadRequest, echo.Map{"message": "Payment already exists for this booking"})
		case errors.Is(err, repository.ErrForbidden):
			return c.JSON(http.StatusForbidden, echo.Map{"message": "Forbidden"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Server error"})
	}
	return c.JSON(http.StatusCreated, p)
}

func (h *PaymentHandler) UpdateStatus(c echo.Context) error {
	id, ok := paramID(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "Invalid payment id"})
	}
	var req paymentStatusRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "Invalid input"})
	}
	if err := c.Validate(&req); err != nil || !model.ValidPaymentStatus(req.PaymentStatus) {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "Invalid payment status"})
	}

	p, err := h.payments.UpdateStatus(c.Request().Context(), identityFrom(c), id, req.PaymentStatus)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrPaymentNotFound):
			return c.JSON(http.StatusNotFound, echo.Map{"message": "Payment not found"})
		case errors.Is(err, repository.ErrForbidden):
			return c.JSON(http.StatusForbidden, echo.Map{"message": "Forbidden"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Server error"})
	}
	return c.JSON(http.StatusOK, p)
}

func (h *PaymentHandler) Get(c echo.Context) error {
	id, ok := paramID(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "Invalid payment id"})
	}
	p, err := h.payments.Get(c.Request().Context(), identityFrom(c), id)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrPaymentNotFound):
			return c.JSON(http.StatusNotFound, echo.Map{"message": "Payment not found"})
		case errors.Is(err, repository.ErrBookingNotFound):
			return c.JSON(http.StatusNotFound, echo.Map{"message": "Booking not found"})
		case errors.Is(err, repository.ErrForbidden):
			return c.JSON(http.StatusForbidden, echo.Map{"message": "Forbidden"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Server error"})
	}
	return c.JSON(http.StatusOK, p)
}

func (h *PaymentHandler) GetByBooking(c echo.Context) error {
	bookingID, ok := paramID(c, "bookingId")
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "Invalid booking id"})
	}
	p, err := h.payments.GetByBooking(c.Request().Context(), identityFrom(c), bookingID)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrPaymentNotFound):
			return c.JSON(http.StatusNotFound, echo.Map{"message": "Payment not found for this booking"})
		case errors.Is(err, repository.ErrBookingNotFound):
			return c.JSON(http.StatusNotFound, echo.Map{"message": "Booking not found"})
		case errors.Is(err, repository.ErrForbidden):
			return c.JSON(http.StatusForbidden, echo.Map{"message": "Forbidden"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Server error"})
	}
	return c.JSON(http.StatusOK, p)
}

func (h *PaymentHandler) List(c echo.Context) error {
	payments, err := h.payments.List(c.Request().Context(), identityFrom(c))
	if err != nil {
		if errors.Is(err, repository.ErrForbidden) {
			return c.JSON(http.StatusForbidden, echo.Map{"message": "Forbidden"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Server error"})
	}
	return c.JSON(http.StatusOK, payments)
}
