package handlers

import (
	"errors"
	"log"

	"tomato/internal/models"
	"tomato/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// CartHandler handles HTTP requests for cart items.
type CartHandler struct {
	service  *services.CartService
	validate *validator.Validate
}

// NewCartHandler creates a new CartHandler.
func NewCartHandler(service *services.CartService) *CartHandler {
	return &CartHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the cart routes with the Fiber app.
func (h *CartHandler) RegisterRoutes(router fiber.Router) {
	cartRoutes := router.Group("/carts")
	cartRoutes.Get("/", h.HandleGetCartItems)
	cartRoutes.Post("/", h.HandleAddCartItem)
	cartRoutes.Delete("/:id", h.HandleRemoveCartItem)
}

// HandleGetCartItems retrieves the cart items belonging to the email given
// in the query string. A missing email is a validation error, not an
// unscoped scan.
func (h *CartHandler) HandleGetCartItems(c *fiber.Ctx) error {
	email := c.Query("email")
	if email == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Query parameter 'email' is required",
		})
	}

	items, err := h.service.GetCartItems(email)
	if err != nil {
		log.Printf("Error getting cart items for %s: %v", email, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve cart items",
		})
	}
	return c.JSON(items)
}

// HandleAddCartItem adds a dish to a cart. A dish already present in a cart
// is rejected with a conflict.
func (h *CartHandler) HandleAddCartItem(c *fiber.Ctx) error {
	var item models.CartItem
	if err := c.BodyParser(&item); err != nil {
		log.Printf("Error parsing cart request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	if err := h.validate.Struct(item); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Validation failed",
			"errors":  validationMessages(err),
		})
	}

	if err := h.service.AddCartItem(&item); err != nil {
		if errors.Is(err, services.ErrDuplicateDish) {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{
				"message": "Dish item already added.",
			})
		}
		log.Printf("Error adding cart item: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not add cart item",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"acknowledged": true,
		"insertedId":   item.ID,
	})
}

// HandleRemoveCartItem removes a cart item by its ID. Removing an absent id
// is a zero-effect success.
func (h *CartHandler) HandleRemoveCartItem(c *fiber.Ctx) error {
	itemID := c.Params("id")
	count, err := h.service.RemoveCartItem(itemID)
	if err != nil {
		log.Printf("Error removing cart item %s: %v", itemID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not remove cart item",
		})
	}
	return c.JSON(fiber.Map{
		"acknowledged": true,
		"deletedCount": count,
	})
}
