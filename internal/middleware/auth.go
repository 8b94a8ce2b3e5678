package middleware

import (
	jwtware "github.com/gofiber/contrib/jwt"
	"github.com/gofiber/fiber/v2"
	"github.com/jobboard/jobboard-api/internal/config"
	"github.com/jobboard/jobboard-api/internal/dto"
)

// JWTProtected verifies the identity provider's bearer token and stores the
// parsed *jwt.Token under the "user" local.
func JWTProtected(cfg *config.Config) fiber.Handler {
	return jwtware.New(jwtware.Config{
		SigningKey: jwtware.SigningKey{Key: []byte(cfg.AuthJWTSecret)},
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.Response{
				Success: false,
				Message: "Not Authorized. Login Again",
			})
		},
	})
}
