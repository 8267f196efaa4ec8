package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/sports-ground-booking/internal/model"
	"github.com/iliyamo/sports-ground-booking/internal/repository"
)

// SlotHandler serves slot endpoints. Reads are public; writes require
// an admin session.
type SlotHandler struct {
	slots   *repository.SlotRepo
	grounds *repository.GroundRepo
}

func NewSlotHandler(slots *repository.SlotRepo, grounds *repository.GroundRepo) *SlotHandler {
	return &SlotHandler{slots: slots, grounds: grounds}
}

type slotRequest struct {
	GroundID     int64  `json:"groundId" validate:"required,gt=0"`
	Date         string `json:"date" validate:"required"`
	StartTime    string `json:"startTime" validate:"required"`
	EndTime      string `json:"endTime" validate:"required"`
	PricePerSlot string `json:"pricePerSlot" validate:"required"`
}

type slotPatch struct {
	Date               *string `json:"date"`
	StartTime          *string `json:"startTime"`
	EndTime            *string `json:"endTime"`
	PricePerSlot       *string `json:"pricePerSlot"`
	AvailabilityStatus *string `json:"availabilityStatus"`
}

func (h *SlotHandler) List(c echo.Context) error {
	slots, err := h.slots.List(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Server error"})
	}
	return c.JSON(http.StatusOK, slots)
}

func (h *SlotHandler) Get(c echo.Context) error {
	id, ok := paramID(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "Invalid slot id"})
	}
	s, err := h.slots.GetByID(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrSlotNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"message": "Slot not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Server error"})
	}
	return c.JSON(http.StatusOK, s)
}

func (h *SlotHandler) ListByGround(c echo.Context) error {
	groundID, ok := paramID(c, "groundId")
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "Invalid ground id"})
	}
	slots, err := h.slots.ListByGround(c.Request().Context(), groundID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Server error"})
	}
	return c.JSON(http.StatusOK, slots)
}

// ListAvailable returns the open slots of a ground on a given date.
func (h *SlotHandler) ListAvailable(c echo.Context) error {
	groundID, ok := paramID(c, "groundId")
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "Invalid ground id"})
	}
	date := c.QueryParam("date")
	if !dateRe.MatchString(date) {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "Invalid date format. Use YYYY-MM-DD"})
	}
	slots, err := h.slots.ListAvailableByGroundAndDate(c.Request().Context(), groundID, date)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Server error"})
	}
	return c.JSON(http.StatusOK, slots)
}

func (h *SlotHandler) Create(c echo.Context) error {
	var req slotRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "Invalid input"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "Invalid input"})
	}
	if !dateRe.MatchString(req.Date) {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "Invalid date format. Use YYYY-MM-DD"})
	}
	if !timeRe.MatchString(req.StartTime) || !timeRe.MatchString(req.EndTime) {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "Invalid time format. Use HH:MM"})
	}
	if !amountRe.MatchString(req.PricePerSlot) {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "Invalid price"})
	}

	ctx := c.Request().Context()
	if _, err := h.grounds.GetByID(ctx, req.GroundID); err != nil {
		if errors.Is(err, repository.ErrGroundNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"message": "Ground not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Server error"})
	}

	s := &model.Slot{
		GroundID:     req.GroundID,
		Date:         req.Date,
		StartTime:    req.StartTime,
		EndTime:      req.EndTime,
		PricePerSlot: req.PricePerSlot,
	}
	if err := h.slots.Create(ctx, s); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Server error"})
	}
	return c.JSON(http.StatusCreated, s)
}

func (h *SlotHandler) Update(c echo.Context) error {
	id, ok := paramID(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "Invalid slot id"})
	}
	var patch slotPatch
	if err := c.Bind(&patch); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "Invalid input"})
	}

	ctx := c.Request().Context()
	s, err := h.slots.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrSlotNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"message": "Slot not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Server error"})
	}

	if patch.Date != nil {
		if !dateRe.MatchString(*patch.Date) {
			return c.JSON(http.StatusBadRequest, echo.Map{"message": "Invalid date format. Use YYYY-MM-DD"})
		}
		s.Date = *patch.Date
	}
	if patch.StartTime != nil {
		if !timeRe.MatchString(*patch.StartTime) {
			return c.JSON(http.StatusBadRequest, echo.Map{"message": "Invalid time format. Use HH:MM"})
		}
		s.StartTime = *patch.StartTime
	}
	if patch.EndTime != nil {
		if !timeRe.MatchString(*patch.EndTime) {
			return c.JSON(http.StatusBadRequest, echo.Map{"message": "Invalid time format. Use HH:MM"})
		}
		s.EndTime = *patch.EndTime
	}
	if patch.PricePerSlot != nil {
		if !amountRe.MatchString(*patch.PricePerSlot) {
			return c.JSON(http.StatusBadRequest, echo.Map{"message": "Invalid price"})
		}
		s.PricePerSlot = *patch.PricePerSlot
	}
	if patch.AvailabilityStatus != nil {
		if *patch.AvailabilityStatus != model.SlotAvailable && *patch.AvailabilityStatus != model.SlotBooked {
			return c.JSON(http.StatusBadRequest, echo.Map{"message": "Invalid availability status"})
		}
		s.AvailabilityStatus = *patch.AvailabilityStatus
	}

	if err := h.slots.Update(ctx, s); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Server error"})
	}
	return c.JSON(http.StatusOK, s)
}

func (h *SlotHandler) Delete(c echo.Context) error {
	id, ok := paramID(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "Invalid slot id"})
	}
	if err := h.slots.Delete(c.Request().Context(), id); err != nil {
		if errors.Is(err, repository.ErrSlotNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"message": "Slot not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Server error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "Slot deleted successfully"})
}
