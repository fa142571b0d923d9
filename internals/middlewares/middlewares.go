package middlewares

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/etag"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/utils"
	"github.com/rs/zerolog/log"
)

// SetupMiddlewares installs the shared stack: panic recovery, CORS,
// gzip, etag, and request-id + timing logging.
func SetupMiddlewares(app *fiber.App) {
	app.Use(recover.New())
	app.Use(cors.New())
	app.Use(compress.New(compress.Config{Level: compress.LevelDefault}))
	app.Use(etag.New())
	app.Use(requestLogger())
}

// requestLogger tags each request with an id and logs method, path,
// status and duration on completion.
func requestLogger() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Get("X-Request-ID")
		if id == "" {
			id = utils.UUID()
		}
		c.Set("X-Request-ID", id)
		c.Locals("reqid", id)

		start := time.Now()
		err := c.Next()

		log.Info().
			Str("reqid", id).
			Str("method", c.Method()).
			Str("path", c.OriginalURL()).
			Int("status", c.Response().StatusCode()).
			Dur("dur", time.Since(start)).
			Msg("request")
		return err
	}
}
