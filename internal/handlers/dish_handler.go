package handlers

import (
	"fmt"
	"log"

	"tomato/internal/models"
	"tomato/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// DishHandler handles HTTP requests for dishes.
type DishHandler struct {
	service  *services.DishService
	validate *validator.Validate
}

// NewDishHandler creates a new DishHandler.
func NewDishHandler(service *services.DishService) *DishHandler {
	return &DishHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the dish routes with the Fiber app. Reads are
// public; mutations require an authenticated admin.
func (h *DishHandler) RegisterRoutes(router fiber.Router, authRequired, adminRequired fiber.Handler) {
	dishRoutes := router.Group("/dishes")
	dishRoutes.Get("/", h.HandleGetDishes)
	dishRoutes.Get("/:id", h.HandleGetDishByID)
	dishRoutes.Post("/", authRequired, adminRequired, h.HandleCreateDish)
	dishRoutes.Put("/:id", authRequired, adminRequired, h.HandleUpsertDish)
	dishRoutes.Delete("/:id", authRequired, adminRequired, h.HandleDeleteDish)
}

// HandleGetDishes retrieves all dishes.
func (h *DishHandler) HandleGetDishes(c *fiber.Ctx) error {
	dishes, err := h.service.GetAllDishes()
	if err != nil {
		log.Printf("Error getting all dishes: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve dishes",
		})
	}
	return c.JSON(dishes)
}

// HandleGetDishByID retrieves a single dish. A lookup on an absent id
// responds with a null body rather than an error.
func (h *DishHandler) HandleGetDishByID(c *fiber.Ctx) error {
	dishID := c.Params("id")
	dish, err := h.service.GetDishByID(dishID)
	if err != nil {
		log.Printf("Error getting dish by ID %s: %v", dishID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve dish",
		})
	}
	if dish == nil {
		return c.JSON(nil)
	}
	return c.JSON(dish)
}

// HandleCreateDish creates a new dish.
func (h *DishHandler) HandleCreateDish(c *fiber.Ctx) error {
	var dish models.Dish
	if err := c.BodyParser(&dish); err != nil {
		log.Printf("Error parsing dish request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	if err := h.validate.Struct(dish); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Validation failed",
			"errors":  validationMessages(err),
		})
	}

	if err := h.service.CreateDish(&dish); err != nil {
		log.Printf("Error creating dish: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not create dish",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"acknowledged": true,
		"insertedId":   dish.ID,
	})
}

// HandleUpsertDish replaces the dish stored under the path id, creating it
// when absent.
func (h *DishHandler) HandleUpsertDish(c *fiber.Ctx) error {
	dishID := c.Params("id")
	var dish models.Dish
	if err := c.BodyParser(&dish); err != nil {
		log.Printf("Error parsing dish request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	if err := h.validate.Struct(dish); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Validation failed",
			"errors":  validationMessages(err),
		})
	}

	if err := h.service.UpsertDish(dishID, &dish); err != nil {
		log.Printf("Error upserting dish %s: %v", dishID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not update dish",
		})
	}

	return c.JSON(fiber.Map{
		"acknowledged": true,
		"upsertedId":   dishID,
	})
}

// HandleDeleteDish deletes a dish by its ID. Deleting an absent id is a
// zero-effect success.
func (h *DishHandler) HandleDeleteDish(c *fiber.Ctx) error {
	dishID := c.Params("id")
	count, err := h.service.DeleteDish(dishID)
	if err != nil {
		log.Printf("Error deleting dish %s: %v", dishID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not delete dish",
		})
	}
	return c.JSON(fiber.Map{
		"acknowledged": true,
		"deletedCount": count,
	})
}

// validationMessages flattens validator errors into a field → message map.
func validationMessages(err error) map[string]string {
	messages := make(map[string]string)
	if validationErrors, ok := err.(validator.ValidationErrors); ok {
		for _, e := range validationErrors {
			messages[e.Field()] = fmt.Sprintf("Field '%s' failed on the '%s' tag", e.Field(), e.Tag())
		}
	}
	return messages
}
