package repositories

import (
	"errors"
	"fmt"
	"tomato/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMCartRepository is a GORM implementation of CartRepository.
type GORMCartRepository struct {
	db *gorm.DB
}

// NewGORMCartRepository creates a new instance of GORMCartRepository.
func NewGORMCartRepository(db *gorm.DB) *GORMCartRepository {
	return &GORMCartRepository{
		db: db,
	}
}

// GetByEmail retrieves all cart items belonging to the given email.
func (r *GORMCartRepository) GetByEmail(email string) ([]models.CartItem, error) {
	var items []models.CartItem
	if err := r.db.Find(&items, "email = ?", email).Error; err != nil {
		return nil, fmt.Errorf("failed to get cart items for %s: %w", email, err)
	}
	return items, nil
}

// GetByDishID retrieves the cart item referencing the given dish, or
// (nil, nil) when absent.
func (r *GORMCartRepository) GetByDishID(dishID string) (*models.CartItem, error) {
	var item models.CartItem
	if err := r.db.First(&item, "dish_id = ?", dishID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get cart item by dish ID %s: %w", dishID, err)
	}
	return &item, nil
}

// Create creates a new cart item in the database.
func (r *GORMCartRepository) Create(item *models.CartItem) error {
	if item.ID == "" {
		item.ID = uuid.New().String()
	}
	if err := r.db.Create(item).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrDuplicateKey
		}
		return fmt.Errorf("failed to create cart item: %w", err)
	}
	return nil
}

// Delete removes a cart item by its ID and reports how many rows were removed.
func (r *GORMCartRepository) Delete(id string) (int64, error) {
	res := r.db.Delete(&models.CartItem{}, "id = ?", id)
	if res.Error != nil {
		return 0, fmt.Errorf("failed to delete cart item %s: %w", id, res.Error)
	}
	return res.RowsAffected, nil
}
