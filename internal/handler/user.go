package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"golang.org/x/crypto/bcrypt"

	"github.com/iliyamo/sports-ground-booking/internal/repository"
)

// UserHandler serves user account endpoints. Listing is admin only;
// reading and updating a profile is allowed for the owner or an admin.
type UserHandler struct {
	users *repository.UserRepo
	cost  int
}

func NewUserHandler(users *repository.UserRepo, bcryptCost int) *UserHandler {
	return &UserHandler{users: users, cost: bcryptCost}
}

type userPatch struct {
	FirstName   *string `json:"firstName"`
	LastName    *string `json:"lastName"`
	Password    *string `json:"password"`
	PhoneNumber *string `json:"phoneNumber"`
	Address     *string `json:"address"`
}

func (h *UserHandler) List(c echo.Context) error {
	users, err := h.users.List(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Server error"})
	}
	return c.JSON(http.StatusOK, users)
}

func (h *UserHandler) Get(c echo.Context) error {
	id, ok := paramID(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "Invalid user id"})
	}
	ident := identityFrom(c)
	if !ident.IsAdmin && ident.UserID != id {
		return c.JSON(http.StatusForbidden, echo.Map{"message": "Forbidden"})
	}
	u, err := h.users.GetByID(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"message": "User not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Server error"})
	}
	return c.JSON(http.StatusOK, u)
}

func (h *UserHandler) Update(c echo.Context) error {
	id, ok := paramID(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "Invalid user id"})
	}
	ident := identityFrom(c)
	if !ident.IsAdmin && ident.UserID != id {
		return c.JSON(http.StatusForbidden, echo.Map{"message": "Forbidden"})
	}

	var patch userPatch
	if err := c.Bind(&patch); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "Invalid input"})
	}

	ctx := c.Request().Context()
	u, err := h.users.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"message": "User not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Server error"})
	}

	if patch.FirstName != nil {
		u.FirstName = *patch.FirstName
	}
	if patch.LastName != nil {
		u.LastName = *patch.LastName
	}
	if patch.PhoneNumber != nil {
		u.PhoneNumber = *patch.PhoneNumber
	}
	if patch.Address != nil {
		u.Address = *patch.Address
	}
	if patch.Password != nil {
		if len(*patch.Password) < 6 {
			return c.JSON(http.StatusBadRequest, echo.Map{"message": "Password must be at least 6 characters"})
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(*patch.Password), h.cost)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Server error"})
		}
		u.PasswordHash = string(hash)
	}

	if err := h.users.Update(ctx, u); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Server error"})
	}
	return c.JSON(http.StatusOK, u)
}
