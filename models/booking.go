package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"marketplace/utils"
)

// BookingStatus is the lifecycle state of a booking.
type BookingStatus string

const (
	// BookingPending is assigned at creation and cannot be re-entered.
	BookingPending  BookingStatus = "pending"
	BookingAccepted BookingStatus = "accepted"
	BookingDeclined BookingStatus = "declined"
	BookingCanceled BookingStatus = "canceled"
)

// ParseStatusUpdate validates a requested status transition target. Only
// accepted, declined and canceled are settable; the transition itself is
// unconditional with respect to the booking's current status, which lets a
// provider correct a mistaken decision.
func ParseStatusUpdate(s string) (BookingStatus, error) {
	switch BookingStatus(s) {
	case BookingAccepted, BookingDeclined, BookingCanceled:
		return BookingStatus(s), nil
	}
	return "", utils.ValidationError{Message: "status must be one of accepted, declined, canceled"}
}

// Booking is a customer's request against a service. ProviderID is a copy of
// the referenced service's owner at creation time and TotalPrice a snapshot
// of its price; neither is re-derived if the service later changes.
type Booking struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	ServiceID      string             `bson:"service_id" json:"service_id"`
	ProviderID     string             `bson:"provider_id" json:"provider_id"`
	CustomerID     string             `bson:"customer_id" json:"customer_id"`
	ScheduledStart string             `bson:"scheduled_start,omitempty" json:"scheduled_start,omitempty"`
	ScheduledEnd   string             `bson:"scheduled_end,omitempty" json:"scheduled_end,omitempty"`
	Message        string             `bson:"message,omitempty" json:"message,omitempty"`
	Answers        []Answer           `bson:"answers" json:"answers"`
	Status         BookingStatus      `bson:"status" json:"status"`
	TotalPrice     float64            `bson:"total_price" json:"total_price"`
	CreatedAt      time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt      time.Time          `bson:"updated_at" json:"updated_at"`
}
