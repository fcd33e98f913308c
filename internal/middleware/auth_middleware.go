package middleware

import (
	"errors"
	"strings"

	"cookbook/internal/models"
	"cookbook/internal/services"

	"github.com/gofiber/fiber/v2"
)

// UserKey is the Locals key the authenticated *models.User is stored under.
const UserKey = "user"

// TokenKey is the Locals key holding the raw bearer token.
const TokenKey = "token"

func bearerToken(c *fiber.Ctx) string {
	authHeader := c.Get("Authorization")
	if authHeader == "" {
		return ""
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || parts[0] != "Bearer" {
		return ""
	}
	return parts[1]
}

// AuthRequired rejects requests without a valid live bearer token and
// stores the resolved account in the request context.
func AuthRequired(authService *services.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := bearerToken(c)
		if token == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": "Authorization header format must be 'Bearer <token>'",
			})
		}
		user, err := authService.Authenticate(token)
		if err != nil {
			if errors.Is(err, services.ErrBlocked) {
				return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
					"errors": "user is blocked",
				})
			}
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": "Invalid or expired token",
			})
		}
		c.Locals(UserKey, user)
		c.Locals(TokenKey, token)
		return c.Next()
	}
}

// AuthOptional resolves the bearer token when present but lets anonymous
// requests through. An invalid token is treated as anonymous.
func AuthOptional(authService *services.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if token := bearerToken(c); token != "" {
			if user, err := authService.Authenticate(token); err == nil {
				c.Locals(UserKey, user)
				c.Locals(TokenKey, token)
			}
		}
		return c.Next()
	}
}

// CurrentUser returns the authenticated user stored by the middleware, or
// nil for anonymous requests.
func CurrentUser(c *fiber.Ctx) *models.User {
	user, _ := c.Locals(UserKey).(*models.User)
	return user
}
