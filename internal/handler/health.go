package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// Health returns a liveness handler that names the service so load balancers
// and humans can tell the three services apart.
func Health(service string) echo.HandlerFunc {
	return func(c echo.Context) error {
		return c.JSON(http.StatusOK, echo.Map{"status": "ok", "service": service})
	}
}
