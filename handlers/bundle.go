package handlers

import (
	"marketplace/services/booking"
	"marketplace/services/catalog"
	"marketplace/services/user"
)

// HandlerBundle groups the endpoint handlers and the services they depend on.
type HandlerBundle struct {
	UserService    user.UserService
	CatalogService catalog.CatalogService
	BookingService booking.BookingService
}

// NewHandlerBundle wires the services into a handler bundle.
func NewHandlerBundle(users user.UserService, listings catalog.CatalogService, bookings booking.BookingService) *HandlerBundle {
	return &HandlerBundle{
		UserService:    users,
		CatalogService: listings,
		BookingService: bookings,
	}
}
