package middlewares

import (
	"github.com/gofiber/fiber/v3"
	"github.com/rs/xid"
)

const RequestIDHeader = "X-Request-ID"

// RequestID tags every request with a correlation id, minting one when the
// caller did not send its own.
func RequestID() fiber.Handler {
	return func(c fiber.Ctx) error {
		id := c.Get(RequestIDHeader)
		if id == "" {
			id = xid.New().String()
		}

		c.Locals("request_id", id)
		c.Set(RequestIDHeader, id)

		return c.Next()
	}
}
