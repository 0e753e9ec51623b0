package booking

import (
	"time"

	"marketplace/models"
	"marketplace/utils"
)

// Create submits a booking against an existing service. Answers are checked
// against the service's questionnaire before anything is written.
func (s *DefaultBookingService) Create(customer *models.User, req models.BookingCreateRequest) (*models.Booking, error) {
	svc, err := s.Services.GetByID(req.ServiceID)
	if err != nil {
		return nil, err
	}
	if svc == nil {
		return nil, utils.NotFoundError{Message: "service not found"}
	}

	if err := validateAnswers(svc.Questions, req.Answers); err != nil {
		return nil, err
	}

	answers := req.Answers
	if answers == nil {
		answers = []models.Answer{}
	}
	bk := models.Booking{
		ServiceID:      req.ServiceID,
		ProviderID:     svc.ProviderID,
		CustomerID:     customer.ID.Hex(),
		ScheduledStart: req.ScheduledStart,
		ScheduledEnd:   req.ScheduledEnd,
		Message:        req.Message,
		Answers:        answers,
		Status:         models.BookingPending,
		TotalPrice:     svc.Price,
	}
	if err := s.Repo.Create(&bk); err != nil {
		return nil, err
	}
	return &bk, nil
}

// validateAnswers checks each answer against the service's questionnaire:
// the question must exist, the value kind must fit the question type, and
// required questions must be answered.
func validateAnswers(questions []models.Question, answers []models.Answer) error {
	byID := make(map[string]models.Question, len(questions))
	for _, q := range questions {
		byID[q.ID] = q
	}

	answered := make(map[string]bool, len(answers))
	for _, a := range answers {
		q, ok := byID[a.QuestionID]
		if !ok {
			return utils.ValidationError{Message: "answer references unknown question: " + a.QuestionID}
		}
		if !a.Answer.Compatible(q.Type) {
			return utils.ValidationError{Message: "answer for question " + a.QuestionID + " does not match its type"}
		}
		answered[a.QuestionID] = true
	}

	for _, q := range questions {
		if q.Required && !answered[q.ID] {
			return utils.ValidationError{Message: "required question not answered: " + q.ID}
		}
	}
	return nil
}

// List returns the actor's bookings in the given role, most recent first.
func (s *DefaultBookingService) List(actorID, role string) ([]models.Booking, error) {
	switch role {
	case "", RoleCustomer:
		return s.Repo.ListByCustomer(actorID)
	case RoleProvider:
		return s.Repo.ListByProvider(actorID)
	}
	return nil, utils.ValidationError{Message: "role must be customer or provider"}
}

// UpdateStatus sets a booking's status. Existence is checked before
// ownership; the transition itself is not validated against the current
// status, so a provider can revise an earlier decision.
func (s *DefaultBookingService) UpdateStatus(actorID, bookingID, status string) (*models.Booking, error) {
	target, err := models.ParseStatusUpdate(status)
	if err != nil {
		return nil, err
	}

	bk, err := s.Repo.GetByID(bookingID)
	if err != nil {
		return nil, err
	}
	if bk == nil {
		return nil, utils.NotFoundError{Message: "booking not found"}
	}
	if bk.ProviderID != actorID {
		return nil, utils.ForbiddenError{Message: "only the provider can change status"}
	}

	return s.Repo.SetStatus(bk.ID, target, time.Now())
}
