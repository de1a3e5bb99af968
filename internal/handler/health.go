package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// Health answers load-balancer probes.  It reports "ok" as long as
// the process is serving; catalog reads keep working in demo mode
// even without a database, so no dependency checks belong here.
func Health(c echo.Context) error {
	return c.String(http.StatusOK, "ok")
}
