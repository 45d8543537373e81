package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/pulsegym/gym-system/internal/api/middleware"
	"github.com/pulsegym/gym-system/internal/core/domain"
)

// ctxAccount returns the account authenticated by middleware.Auth.
func ctxAccount(c echo.Context) (*domain.UserAccount, error) {
	return middleware.Account(c)
}

// pathID parses the :id route parameter.
func pathID(c echo.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "id must be a positive integer")
	}
	return id, nil
}
