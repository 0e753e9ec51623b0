package serviceRepo

import (
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"marketplace/models"
)

// SearchCriteria holds the public listing filters. Query matches name or
// description case-insensitively.
type SearchCriteria struct {
	Query      string
	Country    string
	Province   string
	Category   string
	ProviderID string
	Limit      int64
}

// ServiceRepository defines methods for service listing data access.
type ServiceRepository interface {
	// Create inserts a new service record.
	Create(service *models.Service) error
	// GetByID retrieves a service by its hex document ID, (nil, nil) on miss.
	GetByID(id string) (*models.Service, error)
	// Search returns active listings matching the criteria.
	Search(criteria SearchCriteria) ([]models.Service, error)
	// UpdateFields applies a partial $set and returns the updated document.
	UpdateFields(id primitive.ObjectID, fields bson.M) (*models.Service, error)
	// Delete removes a service record.
	Delete(id primitive.ObjectID) error
}
