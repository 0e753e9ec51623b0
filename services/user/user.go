package user

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"

	userRepo "marketplace/database/repository/user"
	"marketplace/models"
)

// AuthResponse carries the user record and the session token just issued.
type AuthResponse struct {
	User  *models.User
	Token string
}

// UserService defines business logic for identity and session operations.
type UserService interface {
	// Signup creates an account and returns an immediately valid session token.
	Signup(in SignupInput) (*AuthResponse, error)
	// Login verifies credentials and appends a new session token; existing
	// sessions stay valid.
	Login(email, password string) (*AuthResponse, error)
	// Authenticate resolves a bearer token to its user.
	Authenticate(token string) (*models.User, error)
	// Logout revokes one of the actor's session tokens.
	Logout(actor *models.User, token string) error
	// SetProviderMode flips the actor's own provider capability flag.
	SetProviderMode(actor *models.User, enabled bool) error
	// GetByID retrieves a user by its hex ID.
	GetByID(userID string) (*models.User, error)
}

// SignupInput carries validated signup fields into the service.
type SignupInput struct {
	Name     string
	Email    string
	Password string
	Country  string
	Province string
}

// TokenCache is the subset of redis operations the token-hash cache needs.
// *redis.Client satisfies it.
type TokenCache interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
	Expire(ctx context.Context, key string, expiration time.Duration) *redis.BoolCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
}

// DefaultUserService is the production implementation.
type DefaultUserService struct {
	Repo userRepo.UserRepository
	// AuthCache holds token-hash lookups; nil disables caching.
	AuthCache TokenCache
}
