package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// Health reports service liveness for load balancers and the mobile client's
// connectivity check. The environment is echoed back so a scanner pointed at
// the wrong deployment is easy to spot.
func Health(env string) echo.HandlerFunc {
	return func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{
			"status":      "healthy",
			"environment": env,
		})
	}
}
