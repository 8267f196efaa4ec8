package handler

import (
	"regexp"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/sports-ground-booking/internal/service"
)

// Wire formats for the date, time and money fields carried as strings.
var (
	dateRe   = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	timeRe   = regexp.MustCompile(`^\d{2}:\d{2}$`)
	amountRe = regexp.MustCompile(`^\d+(\.\d{1,2})?$`)
)

// identityFrom reads the caller identity placed in the context by the
// session middleware. Outside an authenticated route it yields the
// zero identity.
func identityFrom(c echo.Context) service.Identity {
	userID, _ := c.Get("user_id").(int64)
	isAdmin, _ := c.Get("is_admin").(bool)
	return service.Identity{UserID: userID, IsAdmin: isAdmin}
}

// paramID parses a positive integer path parameter.
func paramID(c echo.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}
