package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/sports-ground-booking/internal/model"
	"github.com/iliyamo/sports-ground-booking/internal/repository"
)

// GroundHandler serves ground catalogue endpoints. Reads are public;
// writes require an admin session.
type GroundHandler struct {
	grounds *repository.GroundRepo
}

func NewGroundHandler(grounds *repository.GroundRepo) *GroundHandler {
	return &GroundHandler{grounds: grounds}
}

type groundRequest struct {
	Name        string  `json:"name" validate:"required,min=3,max=100"`
	Location    string  `json:"location" validate:"required,min=3,max=200"`
	SportType   string  `json:"sportType" validate:"required"`
	Rating      string  `json:"rating"`
	Description *string `json:"description"`
	ImageURL    *string `json:"imageUrl"`
}

// groundPatch carries a partial update; nil fields are left unchanged.
type groundPatch struct {
	Name        *string `json:"name"`
	Location    *string `json:"location"`
	SportType   *string `json:"sportType"`
	Rating      *string `json:"rating"`
	Description *string `json:"description"`
	ImageURL    *string `json:"imageUrl"`
}

func (h *GroundHandler) List(c echo.Context) error {
	grounds, err := h.grounds.List(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Server error"})
	}
	return c.JSON(http.StatusOK, grounds)
}

func (h *GroundHandler) Get(c echo.Context) error {
	id, ok := paramID(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "Invalid ground id"})
	}
	g, err := h.grounds.GetByID(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrGroundNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"message": "Ground not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Server error"})
	}
	return c.JSON(http.StatusOK, g)
}

func (h *GroundHandler) Create(c echo.Context) error {
	var req groundRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "Invalid input"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "Invalid input"})
	}
	if !model.ValidSportType(req.SportType) {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "Invalid sport type"})
	}
	if req.Rating == "" {
		req.Rating = "0.00"
	} else if !amountRe.MatchString(req.Rating) {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "Invalid rating"})
	}

	g := &model.Ground{
		Name:        req.Name,
		Location:    req.Location,
		SportType:   req.SportType,
		Rating:      req.Rating,
		Description: req.Description,
		ImageURL:    req.ImageURL,
	}
	if err := h.grounds.Create(c.Request().Context(), g); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Server error"})
	}
	return c.JSON(http.StatusCreated, g)
}

func (h *GroundHandler) Update(c echo.Context) error {
	id, ok := paramID(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "Invalid ground id"})
	}
	var patch groundPatch
	if err := c.Bind(&patch); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "Invalid input"})
	}

	ctx := c.Request().Context()
	g, err := h.grounds.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrGroundNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"message": "Ground not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Server error"})
	}

	if patch.Name != nil {
		g.Name = *patch.Name
	}
	if patch.Location != nil {
		g.Location = *patch.Location
	}
	if patch.SportType != nil {
		if !model.ValidSportType(*patch.SportType) {
			return c.JSON(http.StatusBadRequest, echo.Map{"message": "Invalid sport type"})
		}
		g.SportType = *patch.SportType
	}
	if patch.Rating != nil {
		if !amountRe.MatchString(*patch.Rating) {
			return c.JSON(http.StatusBadRequest, echo.Map{"message": "Invalid rating"})
		}
		g.Rating = *patch.Rating
	}
	if patch.Description != nil {
		g.Description = patch.Description
	}
	if patch.ImageURL != nil {
		g.ImageURL = patch.ImageURL
	}

	if err := h.grounds.Update(ctx, g); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Server error"})
	}
	return c.JSON(http.StatusOK, g)
}

func (h *GroundHandler) Delete(c echo.Context) error {
	id, ok := paramID(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "Invalid ground id"})
	}
	if err := h.grounds.Delete(c.Request().Context(), id); err != nil {
		if errors.Is(err, repository.ErrGroundNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"message": "Ground not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Server error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "Ground deleted successfully"})
}
