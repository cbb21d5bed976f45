package services

import (
	"errors"
	"fmt"
	"log"

	"tomato/internal/models"
	"tomato/internal/repositories"
	"tomato/pkg/rabbitmq"

	"golang.org/x/crypto/bcrypt"
)

// ErrDuplicateEmail is returned when a registration reuses an existing email.
var ErrDuplicateEmail = errors.New("user already exists")

// UserService handles business logic related to users.
type UserService struct {
	userRepo repositories.UserRepository
	mqClient *rabbitmq.Client
}

// NewUserService creates a new UserService. mqClient may be nil when event
// publishing is disabled.
func NewUserService(userRepo repositories.UserRepository, mqClient *rabbitmq.Client) *UserService {
	return &UserService{
		userRepo: userRepo,
		mqClient: mqClient,
	}
}

// GetAllUsers retrieves all users.
func (s *UserService) GetAllUsers() ([]models.User, error) {
	return s.userRepo.GetAll()
}

// RegisterUser registers a new user, rejecting duplicate emails. A supplied
// password is bcrypt-hashed before storage. The duplicate check is not atomic
// with the insert; the unique index on email backstops it, and its rejection
// is reported as the same ErrDuplicateEmail.
func (s *UserService) RegisterUser(user *models.User) error {
	if existing, err := s.userRepo.GetByEmail(user.Email); err == nil && existing != nil {
		return ErrDuplicateEmail
	}

	if user.Password != "" {
		hashedPassword, err := bcrypt.GenerateFromPassword([]byte(user.Password), bcrypt.DefaultCost)
		if err != nil {
			return fmt.Errorf("failed to hash password: %w", err)
		}
		user.Password = string(hashedPassword)
	}

	if err := s.userRepo.Create(user); err != nil {
		if errors.Is(err, repositories.ErrDuplicateKey) {
			return ErrDuplicateEmail
		}
		return fmt.Errorf("failed to register user: %w", err)
	}

	if s.mqClient != nil {
		if err := s.mqClient.PublishEvent("user_registered", map[string]interface{}{
			"email": user.Email,
			"role":  user.Role,
		}); err != nil {
			// Event publishing is best-effort and never fails the request.
			log.Printf("Failed to publish user_registered event: %v", err)
		}
	}
	return nil
}
