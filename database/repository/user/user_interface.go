package userRepo

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"marketplace/models"
)

// UserRepository defines methods for user data access. Lookup methods return
// (nil, nil) when no document matches; callers decide which error kind a miss
// maps to.
type UserRepository interface {
	// Create inserts a new user record. A duplicate email surfaces as a
	// ConflictError sourced from the unique index, never from a pre-check.
	Create(user *models.User) error
	// GetByID retrieves a user by its hex document ID.
	GetByID(id string) (*models.User, error)
	// GetByEmail retrieves a user by its normalized email address.
	GetByEmail(email string) (*models.User, error)
	// GetByTokenHash retrieves the user holding an unrevoked session token
	// with the given hash.
	GetByTokenHash(hash string) (*models.User, error)
	// AppendToken atomically appends a session token record to the user's
	// token set.
	AppendToken(id primitive.ObjectID, token models.SessionToken) error
	// RevokeToken stamps the matching token record as revoked.
	RevokeToken(id primitive.ObjectID, tokenHash string, at time.Time) error
	// SetProviderMode flips the user's provider capability flag.
	SetProviderMode(id primitive.ObjectID, enabled bool) error
}
