package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/Agslz/inventory-control-api-rest/pkg/logger"
)

// AccessLog devuelve un middleware que registra cada petición atendida.
func AccessLog(log *logger.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		log.Info().
			Str("method", c.Method()).
			Str("path", c.Path()).
			Int("status", c.Response().StatusCode()).
			Dur("elapsed", time.Since(start)).
			Str("request_id", c.GetRespHeader(fiber.HeaderXRequestID)).
			Msg("petición atendida")

		return err
	}
}
