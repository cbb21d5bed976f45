package middleware

import (
	"log"

	"tomato/internal/services"

	"github.com/gofiber/fiber/v2"
)

// AccessTokenCookie is the cookie carrying the signed JWT.
const AccessTokenCookie = "tomato_access_token"

// AuthRequired is a Fiber middleware that rejects requests without a valid
// token in the access token cookie. Decoded claims are stored in the request
// locals for subsequent handlers.
func AuthRequired(authService *services.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenString := c.Cookies(AccessTokenCookie)
		if tokenString == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": "Unauthorized access.",
			})
		}

		claims, err := authService.ValidateToken(tokenString)
		if err != nil {
			log.Printf("JWT validation failed: %v", err)
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": "Unauthorized access.",
			})
		}

		c.Locals("claims", claims)
		c.Locals("email", claims["email"])

		return c.Next()
	}
}

// AdminRequired is a Fiber middleware that only lets through authenticated
// users whose stored role is exactly "Admin". The role is looked up from the
// users store on every request; missing users, malformed claims and lookup
// failures are all rejected the same way.
func AdminRequired(authService *services.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		email, ok := c.Locals("email").(string)
		if !ok || email == "" {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"message": "Forbidden access",
			})
		}

		admin, err := authService.IsAdmin(email)
		if err != nil {
			log.Printf("Admin lookup failed for %s: %v", email, err)
		}
		if err != nil || !admin {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"message": "Forbidden access",
			})
		}

		return c.Next()
	}
}
