package handlers

import (
	"log"
	"time"

	"tomato/internal/middleware"
	"tomato/internal/services"

	"github.com/gofiber/fiber/v2"
)

// AuthHandler handles HTTP requests for token issuance.
type AuthHandler struct {
	authService  *services.AuthService
	cookieSecure bool
}

// NewAuthHandler creates a new AuthHandler. cookieSecure controls the Secure
// flag on the issued access token cookie.
func NewAuthHandler(authService *services.AuthService, cookieSecure bool) *AuthHandler {
	return &AuthHandler{
		authService:  authService,
		cookieSecure: cookieSecure,
	}
}

// RegisterRoutes registers the token issuance route with the Fiber app.
func (h *AuthHandler) RegisterRoutes(router fiber.Router) {
	router.Post("/jwt", h.HandleIssueToken)
}

// HandleIssueToken signs the request body as JWT claims and delivers the
// token in an HttpOnly cookie. The response body only acknowledges success;
// the cookie is the token transport.
func (h *AuthHandler) HandleIssueToken(c *fiber.Ctx) error {
	claims := map[string]interface{}{}
	if err := c.BodyParser(&claims); err != nil {
		log.Printf("Error parsing jwt request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	token, err := h.authService.IssueToken(claims)
	if err != nil {
		log.Printf("Error issuing token: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not issue token",
		})
	}

	c.Cookie(&fiber.Cookie{
		Name:     middleware.AccessTokenCookie,
		Value:    token,
		Expires:  time.Now().Add(time.Hour),
		HTTPOnly: true,
		Secure:   h.cookieSecure,
		SameSite: "Lax",
	})

	return c.JSON(fiber.Map{"success": true})
}
