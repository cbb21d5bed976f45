package services_test

import (
	"testing"

	"tomato/internal/models"
	"tomato/internal/repositories"
	"tomato/internal/services"

	"github.com/stretchr/testify/assert"
)

func TestDishService_UpsertDish(t *testing.T) {
	dishRepo := repositories.NewMockDishRepository()
	dishService := services.NewDishService(dishRepo)

	// Upsert on a nonexistent id creates the dish under that id.
	dish := &models.Dish{Name: "Lasagna Rolls", Price: 14, Category: "Rolls"}
	err := dishService.UpsertDish("dish-42", dish)
	assert.NoError(t, err)

	stored, err := dishService.GetDishByID("dish-42")
	assert.NoError(t, err)
	assert.NotNil(t, stored)
	assert.Equal(t, "Lasagna Rolls", stored.Name)

	// Upsert on an existing id replaces the document.
	replacement := &models.Dish{Name: "Veg Rolls", Price: 9, Category: "Rolls"}
	err = dishService.UpsertDish("dish-42", replacement)
	assert.NoError(t, err)

	stored, err = dishService.GetDishByID("dish-42")
	assert.NoError(t, err)
	assert.NotNil(t, stored)
	assert.Equal(t, "Veg Rolls", stored.Name)
	assert.Equal(t, 9.0, stored.Price)
}

func TestDishService_GetDishByID_Absent(t *testing.T) {
	dishRepo := repositories.NewMockDishRepository()
	dishService := services.NewDishService(dishRepo)

	dish, err := dishService.GetDishByID("missing")
	assert.NoError(t, err)
	assert.Nil(t, dish)
}

func TestDishService_DeleteDish(t *testing.T) {
	dishRepo := repositories.NewMockDishRepository()
	dishService := services.NewDishService(dishRepo)

	dish := &models.Dish{Name: "Clover Salad", Price: 16, Category: "Salad"}
	assert.NoError(t, dishService.CreateDish(dish))

	count, err := dishService.DeleteDish(dish.ID)
	assert.NoError(t, err)
	assert.Equal(t, int64(1), count)

	// Deleting an absent id is a zero-effect success.
	count, err = dishService.DeleteDish(dish.ID)
	assert.NoError(t, err)
	assert.Equal(t, int64(0), count)
}
