package models

// SignupRequest carries the fields needed to create an account.
type SignupRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
	Country  string `json:"country,omitempty"`
	Province string `json:"province,omitempty"`
}

// LoginRequest carries login credentials.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// ProviderModeRequest toggles the caller's provider capability.
type ProviderModeRequest struct {
	Enabled *bool `json:"enabled" binding:"required"`
}

// ServiceCreateRequest carries the fields of a new listing.
type ServiceCreateRequest struct {
	Name         string             `json:"name" binding:"required"`
	Description  string             `json:"description" binding:"required"`
	Price        float64            `json:"price"`
	Category     string             `json:"category" binding:"required"`
	Country      string             `json:"country,omitempty"`
	Province     string             `json:"province,omitempty"`
	Photos       []string           `json:"photos"`
	Videos       []string           `json:"videos"`
	Questions    []Question         `json:"questions"`
	Availability []AvailabilitySlot `json:"availability"`
}

// ServiceUpdateRequest carries a partial update; nil fields are left
// untouched.
type ServiceUpdateRequest struct {
	Name         *string             `json:"name,omitempty"`
	Description  *string             `json:"description,omitempty"`
	Price        *float64            `json:"price,omitempty"`
	Category     *string             `json:"category,omitempty"`
	Country      *string             `json:"country,omitempty"`
	Province     *string             `json:"province,omitempty"`
	Photos       *[]string           `json:"photos,omitempty"`
	Videos       *[]string           `json:"videos,omitempty"`
	Questions    *[]Question         `json:"questions,omitempty"`
	Availability *[]AvailabilitySlot `json:"availability,omitempty"`
	IsActive     *bool               `json:"is_active,omitempty"`
}

// BookingCreateRequest carries a customer's booking submission.
type BookingCreateRequest struct {
	ServiceID      string   `json:"service_id" binding:"required"`
	ScheduledStart string   `json:"scheduled_start,omitempty"`
	ScheduledEnd   string   `json:"scheduled_end,omitempty"`
	Message        string   `json:"message,omitempty"`
	Answers        []Answer `json:"answers"`
}

// BookingStatusUpdateRequest carries the provider's decision.
type BookingStatusUpdateRequest struct {
	Status string `json:"status" binding:"required"`
}
