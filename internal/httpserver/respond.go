package httpserver

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/LeducSama/congo-marketplace-backend/internal/service"
)

func errorJSON(c echo.Context, code int, msg string) error {
	return c.JSON(code, echo.Map{"error": msg})
}

// respondError maps the service failure taxonomy onto HTTP statuses. Store
// errors surface as a generic 500 without leaking internals.
func respondError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, service.ErrValidation):
		return errorJSON(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrUnauthorized):
		return errorJSON(c, http.StatusUnauthorized, err.Error())
	case errors.Is(err, service.ErrForbidden):
		return errorJSON(c, http.StatusForbidden, err.Error())
	case errors.Is(err, service.ErrNotFound):
		return errorJSON(c, http.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrConflict):
		return errorJSON(c, http.StatusBadRequest, err.Error())
	default:
		return errorJSON(c, http.StatusInternalServerError, "internal server error")
	}
}

func userID(c echo.Context) (uint, error) {
	v := c.Get("user_id")
	id, ok := v.(uint)
	if !ok || id == 0 {
		return 0, errors.New("unauthorized")
	}
	return id, nil
}
