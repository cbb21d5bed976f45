package services

import (
	"tomato/internal/models"
	"tomato/internal/repositories"
)

// DishService handles business logic related to dishes.
type DishService struct {
	repo repositories.DishRepository
}

// NewDishService creates a new DishService.
func NewDishService(repo repositories.DishRepository) *DishService {
	return &DishService{
		repo: repo,
	}
}

// GetAllDishes retrieves all dishes.
func (s *DishService) GetAllDishes() ([]models.Dish, error) {
	return s.repo.GetAll()
}

// GetDishByID retrieves a single dish by its ID, or (nil, nil) when absent.
func (s *DishService) GetDishByID(id string) (*models.Dish, error) {
	return s.repo.GetByID(id)
}

// CreateDish creates a new dish.
func (s *DishService) CreateDish(dish *models.Dish) error {
	return s.repo.Create(dish)
}

// UpsertDish replaces the dish stored under id, creating it when absent.
func (s *DishService) UpsertDish(id string, dish *models.Dish) error {
	dish.ID = id
	return s.repo.Upsert(dish)
}

// DeleteDish deletes a dish by its ID, reporting the number of removed rows.
func (s *DishService) DeleteDish(id string) (int64, error) {
	return s.repo.Delete(id)
}
