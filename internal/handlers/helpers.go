package handlers

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/socialweb-app/backend/internal/middleware"
	"github.com/socialweb-app/backend/internal/models"
	"github.com/socialweb-app/backend/internal/services"
)

// currentUser returns the acting user resolved by the session middleware.
func currentUser(c echo.Context) *models.User {
	if user, ok := c.Get(middleware.ContextUserKey).(*models.User); ok {
		return user
	}
	return nil
}

// httpError maps the service error taxonomy onto HTTP statuses.
func httpError(err error) error {
	var verr *services.ValidationError
	switch {
	case errors.Is(err, services.ErrNotFound):
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, services.ErrInvalidOperation):
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, services.ErrUnauthorized):
		return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
	case errors.As(err, &verr):
		return echo.NewHTTPError(http.StatusBadRequest, verr.Msg)
	default:
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
}
