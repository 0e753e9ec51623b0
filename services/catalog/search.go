package catalog

import (
	serviceRepo "marketplace/database/repository/service"
	"marketplace/models"
)

// List returns active listings matching the public search filters. The limit
// is clamped to ListingLimitMax; zero or negative means the default.
func (s *DefaultCatalogService) List(criteria serviceRepo.SearchCriteria) ([]models.Service, error) {
	if criteria.Limit <= 0 {
		criteria.Limit = ListingLimitDefault
	}
	if criteria.Limit > ListingLimitMax {
		criteria.Limit = ListingLimitMax
	}
	return s.Repo.Search(criteria)
}
