package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

const (
	allowHeaders = "Content-Type, Authorization"
	allowMethods = "GET, POST, DELETE, PUT, PATCH, OPTIONS"
)

func CORS(allowOrigins string) fiber.Handler {
	return cors.New(cors.Config{
		AllowOrigins: allowOrigins,
		AllowHeaders: allowHeaders,
		AllowMethods: allowMethods,
		MaxAge:       86400,
	})
}

// AccessControlHeaders stamps the allowed headers and methods on every
// response, including errors.
func AccessControlHeaders() fiber.Handler {
	return func(c *fiber.Ctx) error {
		err := c.Next()
		c.Set(fiber.HeaderAccessControlAllowHeaders, allowHeaders)
		c.Set(fiber.HeaderAccessControlAllowMethods, allowMethods)
		return err
	}
}
