package serviceRepo

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

// MongoServiceRepo implements ServiceRepository using MongoDB.
type MongoServiceRepo struct {
	coll *mongo.Collection
}

// NewMongoServiceRepo creates a new instance of ServiceRepository using MongoDB.
func NewMongoServiceRepo(db *mongo.Database) ServiceRepository {
	repo := &MongoServiceRepo{coll: db.Collection("services")}
	if err := repo.ensureIndexes(); err != nil {
		utils.GetLogger().Warn("failed to create service indexes: " + err.Error())
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

// ensureIndexes creates indexes for fields frequently used in queries.
func (r *MongoServiceRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "provider_id", Value: 1}}},
		{Keys: bson.D{{Key: "category", Value: 1}}},
		{Keys: bson.D{{Key: "country", Value: 1}, {Key: "province", Value: 1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// Create inserts a new service document.
func (r *MongoServiceRepo) Create(service *models.Service) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now()
	service.CreatedAt = now
	service.UpdatedAt = now

	res, err := r.coll.InsertOne(ctx, service)
	if err != nil {
		return fmt.Errorf("failed to create service: %w", err)
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		service.ID = oid
	}
	return nil
}

// GetByID retrieves a service by its hex document ID.
func (r *MongoServiceRepo) GetByID(id string) (*models.Service, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, utils.ValidationError{Message: "invalid id format"}
	}

	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var service models.Service
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&service); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch service %s: %w", id, err)
	}
	return &service, nil
}

// Search returns active listings matching the criteria. Listings with
// is_active explicitly false are excluded; absent counts as active.
func (r *MongoServiceRepo) Search(criteria SearchCriteria) ([]models.Service, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	filter := bson.M{"is_active": bson.M{"$ne": false}}
	if criteria.Country != "" {
		filter["country"] = criteria.Country
	}
	if criteria.Province != "" {
		filter["province"] = criteria.Province
	}
	if criteria.Category != "" {
		filter["category"] = criteria.Category
	}
	if criteria.ProviderID != "" {
		filter["provider_id"] = criteria.ProviderID
	}
	if criteria.Query != "" {
		filter["$or"] = bson.A{
			bson.M{"name": bson.M{"$regex": criteria.Query, "$options": "i"}},
			bson.M{"description": bson.M{"$regex": criteria.Query, "$options": "i"}},
		}
	}

	opts := options.Find().SetLimit(criteria.Limit)
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to search services: %w", err)
	}
	defer cursor.Close(ctx)

	var services []models.Service
	if err := cursor.All(ctx, &services); err != nil {
		return nil, fmt.Errorf("failed to decode services: %w", err)
	}
	return services, nil
}

// UpdateFields applies a partial $set and returns the updated document.
func (r *MongoServiceRepo) UpdateFields(id primitive.ObjectID, fields bson.M) (*models.Service, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var updated models.Service
	err := r.coll.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": fields}, opts).Decode(&updated)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, utils.NotFoundError{Message: "service not found"}
		}
		return nil, fmt.Errorf("failed to update service %s: %w", id.Hex(), err)
	}
	return &updated, nil
}

// Delete removes a service document by its ID.
func (r *MongoServiceRepo) Delete(id primitive.ObjectID) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("failed to delete service %s: %w", id.Hex(), err)
	}
	if res.DeletedCount == 0 {
		return utils.NotFoundError{Message: "service not found"}
	}
	return nil
}
