package bookingRepo

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"marketplace/models"
)

// BookingRepository defines methods for booking data access.
type BookingRepository interface {
	// Create inserts a new booking record.
	Create(booking *models.Booking) error
	// GetByID retrieves a booking by its hex document ID, (nil, nil) on miss.
	GetByID(id string) (*models.Booking, error)
	// ListByCustomer returns the customer's bookings, most recent first.
	ListByCustomer(customerID string) ([]models.Booking, error)
	// ListByProvider returns the provider's incoming bookings, most recent first.
	ListByProvider(providerID string) ([]models.Booking, error)
	// SetStatus writes the status and update timestamp, returning the
	// updated document.
	SetStatus(id primitive.ObjectID, status models.BookingStatus, at time.Time) (*models.Booking, error)
}
