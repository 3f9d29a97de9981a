package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// RayID assigns a unique ray_id to every request and echoes it back in the
// X-Ray-Id response header so deliveries can be correlated with log entries.
func RayID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		rid := c.Get("X-Ray-Id")
		if rid == "" {
			rid = uuid.NewString()
		}
		c.Locals("ray_id", rid)
		c.Set("X-Ray-Id", rid)
		return c.Next()
	}
}
