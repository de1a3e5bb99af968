package middleware

import (
	"time"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"

	"github.com/iliyamo/travel-reservation/internal/logger"
)

// RequestLogger emits one structured log line per request after the
// handler completes.  4xx/5xx responses go to the error logger so
// failures show up in logs/error.log.
func RequestLogger() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			err := next(c)
			if err != nil {
				c.Error(err)
			}

			fields := logrus.Fields{
				"method":    c.Request().Method,
				"path":      c.Request().URL.Path,
				"status":    c.Response().Status,
				"duration":  time.Since(start).String(),
				"client_ip": c.RealIP(),
			}
			if c.Response().Status >= 400 {
				logger.ErrorLogger.WithFields(fields).Error("request failed")
			} else {
				logger.InfoLogger.WithFields(fields).Info("request processed")
			}
			return err
		}
	}
}
