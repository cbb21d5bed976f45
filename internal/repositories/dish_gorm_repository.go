package repositories

import (
	"errors"
	"fmt"
	"tomato/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GORMDishRepository is a GORM implementation of DishRepository.
type GORMDishRepository struct {
	db *gorm.DB
}

// NewGORMDishRepository creates a new instance of GORMDishRepository.
func NewGORMDishRepository(db *gorm.DB) *GORMDishRepository {
	return &GORMDishRepository{
		db: db,
	}
}

// GetAll retrieves all dishes from the database.
func (r *GORMDishRepository) GetAll() ([]models.Dish, error) {
	var dishes []models.Dish
	if err := r.db.Find(&dishes).Error; err != nil {
		return nil, fmt.Errorf("failed to get all dishes: %w", err)
	}
	return dishes, nil
}

// GetByID retrieves a single dish by its ID, or (nil, nil) when absent.
func (r *GORMDishRepository) GetByID(id string) (*models.Dish, error) {
	var dish models.Dish
	if err := r.db.First(&dish, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get dish by ID %s: %w", id, err)
	}
	return &dish, nil
}

// Create creates a new dish in the database.
func (r *GORMDishRepository) Create(dish *models.Dish) error {
	if dish.ID == "" {
		dish.ID = uuid.New().String()
	}
	if err := r.db.Create(dish).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrDuplicateKey
		}
		return fmt.Errorf("failed to create dish: %w", err)
	}
	return nil
}

// Upsert replaces the dish with the given ID, inserting it when absent.
func (r *GORMDishRepository) Upsert(dish *models.Dish) error {
	if dish.ID == "" {
		dish.ID = uuid.New().String()
	}
	err := r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		UpdateAll: true,
	}).Create(dish).Error
	if err != nil {
		return fmt.Errorf("failed to upsert dish %s: %w", dish.ID, err)
	}
	return nil
}

// Delete removes a dish by its ID and reports how many rows were removed.
func (r *GORMDishRepository) Delete(id string) (int64, error) {
	res := r.db.Delete(&models.Dish{}, "id = ?", id)
	if res.Error != nil {
		return 0, fmt.Errorf("failed to delete dish %s: %w", id, res.Error)
	}
	return res.RowsAffected, nil
}
