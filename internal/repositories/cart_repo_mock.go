package repositories

import (
	"sync"
	"tomato/internal/models"

	"github.com/google/uuid"
)

// MockCartRepository is an in-memory implementation of CartRepository.
type MockCartRepository struct {
	items map[string]models.CartItem
	mu    sync.RWMutex
}

// NewMockCartRepository creates a new instance of MockCartRepository.
func NewMockCartRepository() *MockCartRepository {
	return &MockCartRepository{
		items: make(map[string]models.CartItem),
	}
}

// GetByEmail returns all cart items belonging to the given email.
func (r *MockCartRepository) GetByEmail(email string) ([]models.CartItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	itemList := make([]models.CartItem, 0)
	for _, item := range r.items {
		if item.Email == email {
			itemList = append(itemList, item)
		}
	}
	return itemList, nil
}

// GetByDishID returns the cart item referencing the given dish, or (nil, nil).
func (r *MockCartRepository) GetByDishID(dishID string) (*models.CartItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, item := range r.items {
		if item.DishID == dishID {
			found := item
			return &found, nil
		}
	}
	return nil, nil
}

// Create adds a new cart item, enforcing the unique DishID rule the way the
// database unique index does.
func (r *MockCartRepository) Create(item *models.CartItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.items {
		if existing.DishID == item.DishID {
			return ErrDuplicateKey
		}
	}
	if item.ID == "" {
		item.ID = uuid.New().String()
	}
	r.items[item.ID] = *item
	return nil
}

// Delete removes a cart item by its ID and reports how many entries were removed.
func (r *MockCartRepository) Delete(id string) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[id]; !ok {
		return 0, nil
	}
	delete(r.items, id)
	return 1, nil
}
