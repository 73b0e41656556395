// Package middleware holds fiber middleware shared by every route.
package middleware

import (
	"github.com/gofiber/fiber/v2"

	"github.com/wichananm65/user-registry/pkg/logger"
)

// HeaderRequestID carries the request id in both directions.
const HeaderRequestID = fiber.HeaderXRequestID

// NewRequestContext attaches base and a request id to the request's user context.
// An incoming X-Request-ID is reused; otherwise a new one is generated.
func NewRequestContext(base *logger.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx := logger.NewRequestIDContext(c.UserContext(), c.Get(HeaderRequestID))
		if base != nil {
			ctx = logger.NewContext(ctx, base)
		}
		c.SetUserContext(ctx)

		if id, ok := logger.GetRequestID(ctx); ok {
			c.Set(HeaderRequestID, id)
		}
		return c.Next()
	}
}
