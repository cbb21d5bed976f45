package services

import (
	"errors"
	"fmt"
	"log"

	"tomato/internal/models"
	"tomato/internal/repositories"
	"tomato/pkg/rabbitmq"
)

// ErrDuplicateDish is returned when the dish is already present in a cart.
var ErrDuplicateDish = errors.New("dish item already added")

// CartService handles business logic related to cart items.
type CartService struct {
	cartRepo repositories.CartRepository
	mqClient *rabbitmq.Client
}

// NewCartService creates a new CartService. mqClient may be nil when event
// publishing is disabled.
func NewCartService(cartRepo repositories.CartRepository, mqClient *rabbitmq.Client) *CartService {
	return &CartService{
		cartRepo: cartRepo,
		mqClient: mqClient,
	}
}

// GetCartItems retrieves all cart items belonging to the given email.
func (s *CartService) GetCartItems(email string) ([]models.CartItem, error) {
	return s.cartRepo.GetByEmail(email)
}

// AddCartItem adds a dish to a cart. At most one cart item may reference a
// given dish at a time; the pre-check plus the unique index on dishId both
// report ErrDuplicateDish.
func (s *CartService) AddCartItem(item *models.CartItem) error {
	if existing, err := s.cartRepo.GetByDishID(item.DishID); err == nil && existing != nil {
		return ErrDuplicateDish
	}

	if err := s.cartRepo.Create(item); err != nil {
		if errors.Is(err, repositories.ErrDuplicateKey) {
			return ErrDuplicateDish
		}
		return fmt.Errorf("failed to add cart item: %w", err)
	}

	s.publishEvent("cart_item_added", item.ID, item.DishID, item.Email)
	return nil
}

// RemoveCartItem removes a cart item by its ID, reporting the number of
// removed rows. Removing an absent id is a zero-effect success.
func (s *CartService) RemoveCartItem(id string) (int64, error) {
	count, err := s.cartRepo.Delete(id)
	if err != nil {
		return 0, err
	}
	if count > 0 {
		s.publishEvent("cart_item_removed", id, "", "")
	}
	return count, nil
}

func (s *CartService) publishEvent(kind, id, dishID, email string) {
	if s.mqClient == nil {
		return
	}
	payload := map[string]interface{}{"id": id}
	if dishID != "" {
		payload["dishId"] = dishID
	}
	if email != "" {
		payload["email"] = email
	}
	if err := s.mqClient.PublishEvent(kind, payload); err != nil {
		// Event publishing is best-effort and never fails the request.
		log.Printf("Failed to publish %s event: %v", kind, err)
	}
}
