package services_test

import (
	"testing"

	"tomato/internal/models"
	"tomato/internal/repositories"
	"tomato/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
)

func TestUserService_RegisterUser(t *testing.T) {
	mockRepo := new(MockUserRepository)
	userService := services.NewUserService(mockRepo, nil)

	// Successful registration hashes the supplied password.
	user := &models.User{
		Email:    "a@x.com",
		Name:     "Ann",
		Role:     "Admin",
		Password: "password123",
	}
	mockRepo.On("GetByEmail", user.Email).Return(nil, nil).Once()
	mockRepo.On("Create", mock.AnythingOfType("*models.User")).Return(nil).Once()

	err := userService.RegisterUser(user)
	assert.NoError(t, err)
	assert.NotEqual(t, "password123", user.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("password123")))
	mockRepo.AssertExpectations(t)
}

func TestUserService_RegisterUser_DuplicateEmail(t *testing.T) {
	mockRepo := new(MockUserRepository)
	userService := services.NewUserService(mockRepo, nil)

	user := &models.User{Email: "a@x.com"}

	// Pre-check finds an existing user.
	mockRepo.On("GetByEmail", user.Email).Return(&models.User{ID: "1", Email: user.Email}, nil).Once()
	err := userService.RegisterUser(user)
	assert.ErrorIs(t, err, services.ErrDuplicateEmail)

	// Pre-check misses but the unique index rejects the insert: the race
	// loser still sees the same conflict.
	mockRepo.On("GetByEmail", user.Email).Return(nil, nil).Once()
	mockRepo.On("Create", mock.AnythingOfType("*models.User")).Return(repositories.ErrDuplicateKey).Once()
	err = userService.RegisterUser(user)
	assert.ErrorIs(t, err, services.ErrDuplicateEmail)

	mockRepo.AssertExpectations(t)
}

func TestUserService_RegisterUser_NoPassword(t *testing.T) {
	mockRepo := new(MockUserRepository)
	userService := services.NewUserService(mockRepo, nil)

	user := &models.User{Email: "b@x.com"}
	mockRepo.On("GetByEmail", user.Email).Return(nil, nil).Once()
	mockRepo.On("Create", mock.AnythingOfType("*models.User")).Return(nil).Once()

	err := userService.RegisterUser(user)
	assert.NoError(t, err)
	assert.Empty(t, user.Password)
	mockRepo.AssertExpectations(t)
}
