package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/brand-catalog-api/internal/infrastructure/metrics"
	"github.com/jhoicas/brand-catalog-api/pkg/logger"
)

// RequestObserver registra cada petición en el log y en Prometheus (m puede ser nil).
// Los errores de la cadena se resuelven aquí con el ErrorHandler de la app para conocer
// el status final.
func RequestObserver(log *logger.Logger, m *metrics.Metrics) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		if chainErr := c.Next(); chainErr != nil {
			if err := c.App().ErrorHandler(c, chainErr); err != nil {
				_ = c.SendStatus(fiber.StatusInternalServerError)
			}
		}
		elapsed := time.Since(start)
		status := c.Response().StatusCode()
		route := c.Route().Path

		m.ObserveRequest(c.Method(), route, status, elapsed)

		evt := log.Debug()
		if status >= fiber.StatusInternalServerError {
			evt = log.Error()
		}
		evt.Str("method", c.Method()).
			Str("path", c.Path()).
			Str("route", route).
			Int("status", status).
			Dur("elapsed", elapsed).
			Msg("petición HTTP")
		return nil
	}
}
