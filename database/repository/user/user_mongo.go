package userRepo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"marketplace/models"
	"marketplace/utils"
)

// MongoUserRepo implements UserRepository using MongoDB.
type MongoUserRepo struct {
	coll *mongo.Collection
}

// NewMongoUserRepo creates a new instance of UserRepository using MongoDB.
func NewMongoUserRepo(db *mongo.Database) UserRepository {
	repo := &MongoUserRepo{coll: db.Collection("users")}
	if err := repo.ensureIndexes(); err != nil {
		utils.GetLogger().Warn("failed to create user indexes: " + err.Error())
	}
	return repo
}

// newContext creates a context with the given timeout.
func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

// ensureIndexes creates indexes for fields frequently used in queries. The
// unique email index is what makes concurrent signups with the same address
// safe: the insert loses, not the check.
func (r *MongoUserRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "tokens.hash", Value: 1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// Create inserts a new user document.
func (r *MongoUserRepo) Create(user *models.User) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now()
	user.CreatedAt = now
	user.UpdatedAt = now

	res, err := r.coll.InsertOne(ctx, user)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return utils.ConflictError{Message: "email already registered"}
		}
		return fmt.Errorf("failed to create user: %w", err)
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		user.ID = oid
	}
	return nil
}

func (r *MongoUserRepo) findOne(filter bson.M) (*models.User, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var user models.User
	if err := r.coll.FindOne(ctx, filter).Decode(&user); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch user: %w", err)
	}
	return &user, nil
}

// GetByID retrieves a user by its hex document ID.
func (r *MongoUserRepo) GetByID(id string) (*models.User, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, utils.ValidationError{Message: "invalid id format"}
	}
	return r.findOne(bson.M{"_id": oid})
}

// GetByEmail retrieves a user by its email address.
func (r *MongoUserRepo) GetByEmail(email string) (*models.User, error) {
	return r.findOne(bson.M{"email": email})
}

// GetByTokenHash retrieves the user holding an unrevoked token with the
// given hash.
func (r *MongoUserRepo) GetByTokenHash(hash string) (*models.User, error) {
	return r.findOne(bson.M{
		"tokens": bson.M{"$elemMatch": bson.M{
			"hash":       hash,
			"revoked_at": bson.M{"$exists": false},
		}},
	})
}

// AppendToken pushes a session token record onto the user's token set. The
// $push is atomic so a concurrently issued token is never lost.
func (r *MongoUserRepo) AppendToken(id primitive.ObjectID, token models.SessionToken) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	res, err := r.coll.UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{
			"$push": bson.M{"tokens": token},
			"$set":  bson.M{"updated_at": time.Now()},
		},
	)
	if err != nil {
		return fmt.Errorf("failed to append token for user %s: %w", id.Hex(), err)
	}
	if res.MatchedCount == 0 {
		return utils.NotFoundError{Message: "user not found"}
	}
	return nil
}

// RevokeToken stamps the matching token record as revoked.
func (r *MongoUserRepo) RevokeToken(id primitive.ObjectID, tokenHash string, at time.Time) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	res, err := r.coll.UpdateOne(ctx,
		bson.M{"_id": id, "tokens.hash": tokenHash},
		bson.M{"$set": bson.M{
			"tokens.$.revoked_at": at,
			"updated_at":          time.Now(),
		}},
	)
	if err != nil {
		return fmt.Errorf("failed to revoke token for user %s: %w", id.Hex(), err)
	}
	if res.MatchedCount == 0 {
		return utils.NotFoundError{Message: "token not found"}
	}
	return nil
}

// SetProviderMode flips the user's provider capability flag.
func (r *MongoUserRepo) SetProviderMode(id primitive.ObjectID, enabled bool) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	res, err := r.coll.UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{
			"provider_mode": enabled,
			"updated_at":    time.Now(),
		}},
	)
	if err != nil {
		return fmt.Errorf("failed to set provider mode for user %s: %w", id.Hex(), err)
	}
	if res.MatchedCount == 0 {
		return utils.NotFoundError{Message: "user not found"}
	}
	return nil
}
