package booking

import (
	bookingRepo "marketplace/database/repository/booking"
	serviceRepo "marketplace/database/repository/service"
	"marketplace/models"
)

// Role selects whose bookings a listing query returns.
const (
	RoleCustomer = "customer"
	RoleProvider = "provider"
)

// BookingService defines business logic for bookings.
type BookingService interface {
	// Create submits a booking against an existing service. The provider
	// reference and total price are snapshotted from the service at this
	// moment and never re-derived.
	Create(customer *models.User, req models.BookingCreateRequest) (*models.Booking, error)
	// List returns the actor's bookings in the given role, most recent first.
	List(actorID, role string) ([]models.Booking, error)
	// UpdateStatus sets a booking's status. Only the provider who owns the
	// referenced service may call it, and the transition is unconditional
	// with respect to the current status.
	UpdateStatus(actorID, bookingID, status string) (*models.Booking, error)
}

// DefaultBookingService is the production implementation.
type DefaultBookingService struct {
	Repo     bookingRepo.BookingRepository
	Services serviceRepo.ServiceRepository
}
