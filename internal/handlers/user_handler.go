package handlers

import (
	"errors"
	"log"

	"tomato/internal/models"
	"tomato/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// UserHandler handles HTTP requests for users.
type UserHandler struct {
	service  *services.UserService
	validate *validator.Validate
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(service *services.UserService) *UserHandler {
	return &UserHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterUserRequest represents the request body for user registration.
type RegisterUserRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Name     string `json:"name" validate:"omitempty,max=100"`
	Role     string `json:"role" validate:"omitempty,max=50"`
	Password string `json:"password" validate:"omitempty,min=6"`
}

// RegisterRoutes registers the user routes with the Fiber app. Listing users
// exposes every account including roles, so it requires an authenticated
// admin; registration is public.
func (h *UserHandler) RegisterRoutes(router fiber.Router, authRequired, adminRequired fiber.Handler) {
	userRoutes := router.Group("/users")
	userRoutes.Get("/", authRequired, adminRequired, h.HandleGetUsers)
	userRoutes.Post("/", h.HandleRegisterUser)
}

// HandleGetUsers retrieves all users.
func (h *UserHandler) HandleGetUsers(c *fiber.Ctx) error {
	users, err := h.service.GetAllUsers()
	if err != nil {
		log.Printf("Error getting all users: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve users",
		})
	}
	return c.JSON(users)
}

// HandleRegisterUser registers a new user. An email already registered is
// rejected with a conflict.
func (h *UserHandler) HandleRegisterUser(c *fiber.Ctx) error {
	var req RegisterUserRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing user request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	if err := h.validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Validation failed",
			"errors":  validationMessages(err),
		})
	}

	user := models.User{
		Email:    req.Email,
		Name:     req.Name,
		Role:     req.Role,
		Password: req.Password,
	}
	if err := h.service.RegisterUser(&user); err != nil {
		if errors.Is(err, services.ErrDuplicateEmail) {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{
				"message": "User already exists.",
			})
		}
		log.Printf("Error registering user: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not register user",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"acknowledged": true,
		"insertedId":   user.ID,
	})
}
