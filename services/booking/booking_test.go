package booking

import (
	"errors"
	"sort"
	"sync"
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	serviceRepo "marketplace/database/repository/service"
	"marketplace/models"
	"marketplace/utils"
)

// fakeServiceRepo holds listings keyed by hex ID; only the methods the
// booking flow touches carry real behavior.
type fakeServiceRepo struct {
	mu       sync.Mutex
	services map[string]*models.Service
}

func newFakeServiceRepo() *fakeServiceRepo {
	return &fakeServiceRepo{services: make(map[string]*models.Service)}
}

func (r *fakeServiceRepo) add(s *models.Service) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if s.ID.IsZero() {
		s.ID = primitive.NewObjectID()
	}
	r.services[s.ID.Hex()] = s
}

func (r *fakeServiceRepo) Create(s *models.Service) error {
	r.add(s)
	return nil
}

func (r *fakeServiceRepo) GetByID(id string) (*models.Service, error) {
	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		return nil, utils.ValidationError{Message: "invalid id format"}
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if s, ok := r.services[id]; ok {
		copied := *s
		return &copied, nil
	}
	return nil, nil
}

func (r *fakeServiceRepo) Search(serviceRepo.SearchCriteria) ([]models.Service, error) {
	return nil, nil
}

func (r *fakeServiceRepo) UpdateFields(id primitive.ObjectID, fields bson.M) (*models.Service, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.services[id.Hex()]
	if !ok {
		return nil, utils.NotFoundError{Message: "service not found"}
	}
	if price, ok := fields["price"].(float64); ok {
		s.Price = price
	}
	copied := *s
	return &copied, nil
}

func (r *fakeServiceRepo) Delete(id primitive.ObjectID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.services, id.Hex())
	return nil
}

// fakeBookingRepo is an in-memory BookingRepository.
type fakeBookingRepo struct {
	mu       sync.Mutex
	bookings map[string]*models.Booking
	seq      int
}

func newFakeBookingRepo() *fakeBookingRepo {
	return &fakeBookingRepo{bookings: make(map[string]*models.Booking)}
}

func (r *fakeBookingRepo) Create(b *models.Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	b.ID = primitive.NewObjectID()
	r.seq++
	// Distinct creation instants so ordering is observable.
	b.CreatedAt = time.Unix(int64(r.seq), 0)
	b.UpdatedAt = b.CreatedAt
	r.bookings[b.ID.Hex()] = b
	return nil
}

func (r *fakeBookingRepo) GetByID(id string) (*models.Booking, error) {
	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		return nil, utils.ValidationError{Message: "invalid id format"}
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if b, ok := r.bookings[id]; ok {
		copied := *b
		return &copied, nil
	}
	return nil, nil
}

func (r *fakeBookingRepo) list(match func(*models.Booking) bool) ([]models.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Booking
	for _, b := range r.bookings {
		if match(b) {
			out = append(out, *b)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *fakeBookingRepo) ListByCustomer(customerID string) ([]models.Booking, error) {
	return r.list(func(b *models.Booking) bool { return b.CustomerID == customerID })
}

func (r *fakeBookingRepo) ListByProvider(providerID string) ([]models.Booking, error) {
	return r.list(func(b *models.Booking) bool { return b.ProviderID == providerID })
}

func (r *fakeBookingRepo) SetStatus(id primitive.ObjectID, status models.BookingStatus, at time.Time) (*models.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	b, ok := r.bookings[id.Hex()]
	if !ok {
		return nil, utils.NotFoundError{Message: "booking not found"}
	}
	b.Status = status
	b.UpdatedAt = at
	copied := *b
	return &copied, nil
}

func newTestBookingService() (*DefaultBookingService, *fakeServiceRepo) {
	services := newFakeServiceRepo()
	return &DefaultBookingService{Repo: newFakeBookingRepo(), Services: services}, services
}

func customer() *models.User {
	return &models.User{ID: primitive.NewObjectID(), Name: "Cust", Email: "c@x.com"}
}

func listing(providerID string, price float64) *models.Service {
	return &models.Service{
		ProviderID:  providerID,
		Name:        "Deep cleaning",
		Description: "Full apartment cleaning",
		Price:       price,
		Category:    "cleaning",
		IsActive:    true,
	}
}

func TestCreateBookingSnapshotsPrice(t *testing.T) {
	t.Parallel()

	svc, services := newTestBookingService()
	providerID := primitive.NewObjectID().Hex()
	s := listing(providerID, 100)
	services.add(s)

	bk, err := svc.Create(customer(), models.BookingCreateRequest{ServiceID: s.ID.Hex()})
	if err != nil {
		t.Fatalf("create booking: %v", err)
	}
	if bk.Status != models.BookingPending {
		t.Errorf("status = %s, want pending", bk.Status)
	}
	if bk.ProviderID != providerID {
		t.Errorf("provider_id = %s, want %s", bk.ProviderID, providerID)
	}
	if bk.TotalPrice != 100 {
		t.Errorf("total_price = %v, want 100", bk.TotalPrice)
	}

	// Raising the service price later never touches the snapshot.
	if _, err := services.UpdateFields(s.ID, bson.M{"price": 200.0}); err != nil {
		t.Fatalf("reprice: %v", err)
	}
	reread, err := svc.Repo.GetByID(bk.ID.Hex())
	if err != nil {
		t.Fatalf("re-read booking: %v", err)
	}
	if reread.TotalPrice != 100 {
		t.Errorf("total_price after reprice = %v, want 100", reread.TotalPrice)
	}
}

func TestCreateBookingMissingService(t *testing.T) {
	t.Parallel()

	svc, _ := newTestBookingService()
	_, err := svc.Create(customer(), models.BookingCreateRequest{ServiceID: primitive.NewObjectID().Hex()})
	var notFound utils.NotFoundError
	if !errors.As(err, &notFound) {
		t.Errorf("error = %v, want NotFoundError", err)
	}
}

func TestCreateBookingValidatesAnswers(t *testing.T) {
	t.Parallel()

	svc, services := newTestBookingService()
	s := listing(primitive.NewObjectID().Hex(), 50)
	s.Questions = []models.Question{
		{ID: "q1", Text: "Apartment size?", Type: models.QuestionNumber, Required: true},
		{ID: "q2", Text: "Notes", Type: models.QuestionTextarea},
	}
	services.add(s)

	cases := []struct {
		name    string
		answers []models.Answer
	}{
		{"unknown question", []models.Answer{
			{QuestionID: "q1", Answer: models.NumberValue(80)},
			{QuestionID: "zz", Answer: models.TextValue("?")},
		}},
		{"wrong kind", []models.Answer{
			{QuestionID: "q1", Answer: models.TextValue("eighty")},
		}},
		{"required missing", []models.Answer{
			{QuestionID: "q2", Answer: models.TextValue("no elevator")},
		}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Create(customer(), models.BookingCreateRequest{
				ServiceID: s.ID.Hex(),
				Answers:   tc.answers,
			})
			var verr utils.ValidationError
			if !errors.As(err, &verr) {
				t.Errorf("error = %v, want ValidationError", err)
			}
		})
	}

	// A complete, well-typed submission passes.
	_, err := svc.Create(customer(), models.BookingCreateRequest{
		ServiceID: s.ID.Hex(),
		Answers: []models.Answer{
			{QuestionID: "q1", Answer: models.NumberValue(80)},
			{QuestionID: "q2", Answer: models.TextValue("no elevator")},
		},
	})
	if err != nil {
		t.Errorf("valid answers rejected: %v", err)
	}
}

func TestListBookingsByRole(t *testing.T) {
	t.Parallel()

	svc, services := newTestBookingService()
	providerID := primitive.NewObjectID().Hex()
	s := listing(providerID, 10)
	services.add(s)
	other := listing(primitive.NewObjectID().Hex(), 20)
	services.add(other)

	cust := customer()
	first, err := svc.Create(cust, models.BookingCreateRequest{ServiceID: s.ID.Hex()})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	second, err := svc.Create(cust, models.BookingCreateRequest{ServiceID: other.ID.Hex()})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	mine, err := svc.List(cust.ID.Hex(), "customer")
	if err != nil {
		t.Fatalf("list customer: %v", err)
	}
	if len(mine) != 2 {
		t.Fatalf("customer bookings = %d, want 2", len(mine))
	}
	if mine[0].ID != second.ID || mine[1].ID != first.ID {
		t.Error("customer bookings not in most-recent-first order")
	}

	incoming, err := svc.List(providerID, "provider")
	if err != nil {
		t.Fatalf("list provider: %v", err)
	}
	if len(incoming) != 1 || incoming[0].ID != first.ID {
		t.Errorf("provider bookings = %d, want exactly the one against their listing", len(incoming))
	}

	if _, err := svc.List(cust.ID.Hex(), "admin"); err == nil {
		t.Error("invalid role should be rejected")
	}
}

func TestUpdateStatusGuards(t *testing.T) {
	t.Parallel()

	svc, services := newTestBookingService()
	providerID := primitive.NewObjectID().Hex()
	s := listing(providerID, 10)
	services.add(s)

	bk, err := svc.Create(customer(), models.BookingCreateRequest{ServiceID: s.ID.Hex()})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	var verr utils.ValidationError
	if _, err := svc.UpdateStatus(providerID, bk.ID.Hex(), "pending"); !errors.As(err, &verr) {
		t.Errorf("pending target error = %v, want ValidationError", err)
	}

	var notFound utils.NotFoundError
	if _, err := svc.UpdateStatus(providerID, primitive.NewObjectID().Hex(), "accepted"); !errors.As(err, &notFound) {
		t.Errorf("missing booking error = %v, want NotFoundError", err)
	}

	var forbidden utils.ForbiddenError
	if _, err := svc.UpdateStatus(primitive.NewObjectID().Hex(), bk.ID.Hex(), "accepted"); !errors.As(err, &forbidden) {
		t.Errorf("non-owner error = %v, want ForbiddenError", err)
	}
}

func TestUpdateStatusUnconditionalTransitions(t *testing.T) {
	t.Parallel()

	svc, services := newTestBookingService()
	providerID := primitive.NewObjectID().Hex()
	s := listing(providerID, 10)
	services.add(s)

	bk, err := svc.Create(customer(), models.BookingCreateRequest{ServiceID: s.ID.Hex()})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	// The provider may revise a decision any number of times.
	for _, target := range []string{"accepted", "declined", "canceled", "accepted"} {
		updated, err := svc.UpdateStatus(providerID, bk.ID.Hex(), target)
		if err != nil {
			t.Fatalf("transition to %s: %v", target, err)
		}
		if string(updated.Status) != target {
			t.Errorf("status = %s, want %s", updated.Status, target)
		}
	}
}
