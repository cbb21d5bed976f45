package services

import (
	"errors"
	"fmt"
	"time"

	"tomato/internal/repositories"

	"github.com/dgrijalva/jwt-go"
)

// Token verification failures, distinguished so callers can tell a stale
// token from a tampered or malformed one.
var (
	ErrTokenInvalid = errors.New("invalid token")
	ErrTokenExpired = errors.New("token expired")
)

// AuthService issues and verifies JWT tokens and answers role questions
// against the users store.
type AuthService struct {
	userRepo   repositories.UserRepository
	jwtSecret  []byte
	tokenDurat time.Duration // Duration for which JWT is valid
}

// NewAuthService creates a new AuthService.
func NewAuthService(userRepo repositories.UserRepository, jwtSecret string) *AuthService {
	return &AuthService{
		userRepo:   userRepo,
		jwtSecret:  []byte(jwtSecret),
		tokenDurat: time.Hour,
	}
}

// IssueToken signs the caller-supplied claims with the service secret,
// embedding an expiry one hour from now. The shape of the claims is not
// validated; downstream admin checks expect an "email" claim.
func (s *AuthService) IssueToken(claims map[string]interface{}) (string, error) {
	tokenClaims := jwt.MapClaims{}
	for k, v := range claims {
		tokenClaims[k] = v
	}
	tokenClaims["exp"] = time.Now().Add(s.tokenDurat).Unix()
	tokenClaims["iat"] = time.Now().Unix()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, tokenClaims)
	tokenString, err := token.SignedString(s.jwtSecret)
	if err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}
	return tokenString, nil
}

// ValidateToken parses and validates a JWT token, returning the claims if
// valid. Expired tokens fail with ErrTokenExpired; everything else fails
// with ErrTokenInvalid.
func (s *AuthService) ValidateToken(tokenString string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		// Validate the alg is what we expect:
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.jwtSecret, nil
	})
	if err != nil {
		var ve *jwt.ValidationError
		if errors.As(err, &ve) && ve.Errors&jwt.ValidationErrorExpired != 0 {
			return nil, ErrTokenExpired
		}
		return nil, ErrTokenInvalid
	}

	if claims, ok := token.Claims.(jwt.MapClaims); ok && token.Valid {
		return claims, nil
	}
	return nil, ErrTokenInvalid
}

// IsAdmin reports whether the user registered under the given email carries
// the Admin role. The role is looked up from the store at call time, never
// taken from token claims. Unknown users and lookup failures both report
// false.
func (s *AuthService) IsAdmin(email string) (bool, error) {
	user, err := s.userRepo.GetByEmail(email)
	if err != nil {
		return false, fmt.Errorf("failed to look up role for %s: %w", email, err)
	}
	if user == nil {
		return false, nil
	}
	return user.IsAdmin(), nil
}
