package services_test

import (
	"testing"

	"tomato/internal/models"
	"tomato/internal/repositories"
	"tomato/internal/services"

	"github.com/stretchr/testify/assert"
)

func TestCartService_AddCartItem(t *testing.T) {
	cartRepo := repositories.NewMockCartRepository()
	cartService := services.NewCartService(cartRepo, nil)

	item := &models.CartItem{DishID: "dish-1", Email: "a@x.com", Name: "Greek Salad", Price: 12}
	err := cartService.AddCartItem(item)
	assert.NoError(t, err)
	assert.NotEmpty(t, item.ID)

	// Same dish again, even for a different user: conflict.
	err = cartService.AddCartItem(&models.CartItem{DishID: "dish-1", Email: "b@x.com"})
	assert.ErrorIs(t, err, services.ErrDuplicateDish)

	// A distinct dish succeeds.
	err = cartService.AddCartItem(&models.CartItem{DishID: "dish-2", Email: "a@x.com"})
	assert.NoError(t, err)

	items, err := cartService.GetCartItems("a@x.com")
	assert.NoError(t, err)
	assert.Len(t, items, 2)
}

func TestCartService_GetCartItems_FilteredByEmail(t *testing.T) {
	cartRepo := repositories.NewMockCartRepository()
	cartService := services.NewCartService(cartRepo, nil)

	assert.NoError(t, cartService.AddCartItem(&models.CartItem{DishID: "dish-1", Email: "a@x.com"}))
	assert.NoError(t, cartService.AddCartItem(&models.CartItem{DishID: "dish-2", Email: "b@x.com"}))

	items, err := cartService.GetCartItems("a@x.com")
	assert.NoError(t, err)
	assert.Len(t, items, 1)
	assert.Equal(t, "dish-1", items[0].DishID)

	items, err = cartService.GetCartItems("nobody@x.com")
	assert.NoError(t, err)
	assert.Empty(t, items)
}

func TestCartService_RemoveCartItem(t *testing.T) {
	cartRepo := repositories.NewMockCartRepository()
	cartService := services.NewCartService(cartRepo, nil)

	item := &models.CartItem{DishID: "dish-1", Email: "a@x.com"}
	assert.NoError(t, cartService.AddCartItem(item))

	count, err := cartService.RemoveCartItem(item.ID)
	assert.NoError(t, err)
	assert.Equal(t, int64(1), count)

	// Removing an absent id is a zero-effect success, not an error.
	count, err = cartService.RemoveCartItem(item.ID)
	assert.NoError(t, err)
	assert.Equal(t, int64(0), count)

	// The dish can be added again after removal.
	assert.NoError(t, cartService.AddCartItem(&models.CartItem{DishID: "dish-1", Email: "a@x.com"}))
}
