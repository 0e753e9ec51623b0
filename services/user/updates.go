package user

import (
	"marketplace/models"
	"marketplace/utils"
)

// SetProviderMode flips the actor's own capability flag. Idempotent, and
// toggling it off never retracts ownership of existing listings.
func (s *DefaultUserService) SetProviderMode(actor *models.User, enabled bool) error {
	return s.Repo.SetProviderMode(actor.ID, enabled)
}

// GetByID retrieves a user by its hex ID.
func (s *DefaultUserService) GetByID(userID string) (*models.User, error) {
	userRec, err := s.Repo.GetByID(userID)
	if err != nil {
		return nil, err
	}
	if userRec == nil {
		return nil, utils.NotFoundError{Message: "user not found"}
	}
	return userRec, nil
}
