package catalog

import (
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"

	"marketplace/models"
	"marketplace/utils"
)

// Create publishes a new listing owned by the actor. The owner reference is
// taken from the authenticated caller and is immutable afterwards.
func (s *DefaultCatalogService) Create(actor *models.User, req models.ServiceCreateRequest) (*models.Service, error) {
	if !actor.ProviderMode {
		return nil, utils.ForbiddenError{Message: "enable provider mode to create services"}
	}
	if req.Price < 0 {
		return nil, utils.ValidationError{Message: "price must not be negative"}
	}

	questions := make([]models.Question, len(req.Questions))
	for i, q := range req.Questions {
		if q.Type == "" {
			q.Type = models.QuestionText
		}
		if !q.Type.Valid() {
			return nil, utils.ValidationError{Message: "unknown question type: " + string(q.Type)}
		}
		if q.ID == "" {
			q.ID = uuid.NewString()
		}
		questions[i] = q
	}

	svc := models.Service{
		ProviderID:   actor.ID.Hex(),
		Name:         req.Name,
		Description:  req.Description,
		Price:        req.Price,
		Category:     req.Category,
		Country:      req.Country,
		Province:     req.Province,
		Photos:       req.Photos,
		Videos:       req.Videos,
		Questions:    questions,
		Availability: req.Availability,
		IsActive:     true,
	}
	if svc.Photos == nil {
		svc.Photos = []string{}
	}
	if svc.Videos == nil {
		svc.Videos = []string{}
	}
	if svc.Availability == nil {
		svc.Availability = []models.AvailabilitySlot{}
	}

	if err := s.Repo.Create(&svc); err != nil {
		return nil, err
	}
	return &svc, nil
}

// Get retrieves a listing by ID.
func (s *DefaultCatalogService) Get(id string) (*models.Service, error) {
	svc, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if svc == nil {
		return nil, utils.NotFoundError{Message: "service not found"}
	}
	return svc, nil
}

// load fetches the listing and verifies ownership, existence first so a
// caller can tell "does not exist" from "not yours".
func (s *DefaultCatalogService) load(actorID, id string) (*models.Service, error) {
	svc, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if svc == nil {
		return nil, utils.NotFoundError{Message: "service not found"}
	}
	if svc.ProviderID != actorID {
		return nil, utils.ForbiddenError{Message: "not your service"}
	}
	return svc, nil
}

// Update applies a partial update to an owned listing.
func (s *DefaultCatalogService) Update(actorID, id string, req models.ServiceUpdateRequest) (*models.Service, error) {
	svc, err := s.load(actorID, id)
	if err != nil {
		return nil, err
	}

	fields := bson.M{"updated_at": time.Now()}
	if req.Name != nil {
		fields["name"] = *req.Name
	}
	if req.Description != nil {
		fields["description"] = *req.Description
	}
	if req.Price != nil {
		if *req.Price < 0 {
			return nil, utils.ValidationError{Message: "price must not be negative"}
		}
		fields["price"] = *req.Price
	}
	if req.Category != nil {
		fields["category"] = *req.Category
	}
	if req.Country != nil {
		fields["country"] = *req.Country
	}
	if req.Province != nil {
		fields["province"] = *req.Province
	}
	if req.Photos != nil {
		fields["photos"] = *req.Photos
	}
	if req.Videos != nil {
		fields["videos"] = *req.Videos
	}
	if req.Questions != nil {
		questions := *req.Questions
		for i, q := range questions {
			if q.Type == "" {
				questions[i].Type = models.QuestionText
			} else if !q.Type.Valid() {
				return nil, utils.ValidationError{Message: "unknown question type: " + string(q.Type)}
			}
			if q.ID == "" {
				questions[i].ID = uuid.NewString()
			}
		}
		fields["questions"] = questions
	}
	if req.Availability != nil {
		fields["availability"] = *req.Availability
	}
	if req.IsActive != nil {
		fields["is_active"] = *req.IsActive
	}

	return s.Repo.UpdateFields(svc.ID, fields)
}

// Delete removes an owned listing.
func (s *DefaultCatalogService) Delete(actorID, id string) error {
	svc, err := s.load(actorID, id)
	if err != nil {
		return err
	}
	return s.Repo.Delete(svc.ID)
}
