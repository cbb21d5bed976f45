package repositories

import (
	"sync"
	"tomato/internal/models"

	"github.com/google/uuid"
)

// MockDishRepository is an in-memory implementation of DishRepository.
type MockDishRepository struct {
	dishes map[string]models.Dish
	mu     sync.RWMutex
}

// NewMockDishRepository creates a new instance of MockDishRepository.
func NewMockDishRepository() *MockDishRepository {
	return &MockDishRepository{
		dishes: make(map[string]models.Dish),
	}
}

// GetAll returns all dishes.
func (r *MockDishRepository) GetAll() ([]models.Dish, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	dishList := make([]models.Dish, 0, len(r.dishes))
	for _, d := range r.dishes {
		dishList = append(dishList, d)
	}
	return dishList, nil
}

// GetByID returns a dish by its ID, or (nil, nil) when absent.
func (r *MockDishRepository) GetByID(id string) (*models.Dish, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	dish, ok := r.dishes[id]
	if !ok {
		return nil, nil
	}
	return &dish, nil
}

// Create adds a new dish.
func (r *MockDishRepository) Create(dish *models.Dish) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if dish.ID == "" {
		dish.ID = uuid.New().String()
	}
	if _, ok := r.dishes[dish.ID]; ok {
		return ErrDuplicateKey
	}
	r.dishes[dish.ID] = *dish
	return nil
}

// Upsert replaces a dish by ID, inserting it when absent.
func (r *MockDishRepository) Upsert(dish *models.Dish) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if dish.ID == "" {
		dish.ID = uuid.New().String()
	}
	r.dishes[dish.ID] = *dish
	return nil
}

// Delete removes a dish by its ID and reports how many entries were removed.
func (r *MockDishRepository) Delete(id string) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.dishes[id]; !ok {
		return 0, nil
	}
	delete(r.dishes, id)
	return 1, nil
}
