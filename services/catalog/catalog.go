package catalog

import (
	serviceRepo "marketplace/database/repository/service"
	"marketplace/models"
)

// CatalogService defines business logic for service listings.
type CatalogService interface {
	// Create publishes a new listing owned by the actor. Requires provider
	// mode.
	Create(actor *models.User, req models.ServiceCreateRequest) (*models.Service, error)
	// Get retrieves a listing by ID, active or not.
	Get(id string) (*models.Service, error)
	// List returns active listings matching the public search filters.
	List(criteria serviceRepo.SearchCriteria) ([]models.Service, error)
	// Update applies a partial update. Owner only; existence is checked
	// before ownership.
	Update(actorID, id string, req models.ServiceUpdateRequest) (*models.Service, error)
	// Delete removes a listing. Owner only.
	Delete(actorID, id string) error
}

// DefaultCatalogService is the production implementation.
type DefaultCatalogService struct {
	Repo serviceRepo.ServiceRepository
}

// ListingLimitMax caps how many listings one search returns.
const ListingLimitMax = 100

// ListingLimitDefault applies when the caller gives no limit.
const ListingLimitDefault = 50
