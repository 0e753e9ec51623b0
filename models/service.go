package models

import (
	"encoding/json"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// QuestionType enumerates the input kinds a provider can ask of customers.
type QuestionType string

const (
	QuestionText     QuestionType = "text"
	QuestionTextarea QuestionType = "textarea"
	QuestionSelect   QuestionType = "select"
	QuestionCheckbox QuestionType = "checkbox"
	QuestionNumber   QuestionType = "number"
	QuestionFile     QuestionType = "file"
)

// Valid reports whether t is one of the supported question types.
func (t QuestionType) Valid() bool {
	switch t {
	case QuestionText, QuestionTextarea, QuestionSelect, QuestionCheckbox, QuestionNumber, QuestionFile:
		return true
	}
	return false
}

// Question is one entry of a service's intake questionnaire. A question is
// required unless the provider says otherwise.
type Question struct {
	ID       string       `bson:"id" json:"id"`
	Text     string       `bson:"text" json:"text"`
	Type     QuestionType `bson:"type" json:"type"`
	Required bool         `bson:"required" json:"required"`
	Options  []string     `bson:"options,omitempty" json:"options,omitempty"`
}

// UnmarshalJSON defaults Required to true when the field is absent, so a
// provider has to opt a question out of being answered.
func (q *Question) UnmarshalJSON(data []byte) error {
	type plain Question
	aux := struct {
		Required *bool `json:"required"`
		*plain
	}{plain: (*plain)(q)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	if aux.Required == nil {
		q.Required = true
	} else {
		q.Required = *aux.Required
	}
	return nil
}

// AvailabilitySlot is an ISO-8601 datetime window the provider offers.
type AvailabilitySlot struct {
	Start string `bson:"start" json:"start"`
	End   string `bson:"end" json:"end"`
}

// Service is a listing owned by exactly one user. ProviderID is set from the
// authenticated creator and never reassigned.
type Service struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	ProviderID   string             `bson:"provider_id" json:"provider_id"`
	Name         string             `bson:"name" json:"name"`
	Description  string             `bson:"description" json:"description"`
	Price        float64            `bson:"price" json:"price"`
	Category     string             `bson:"category" json:"category"`
	Country      string             `bson:"country,omitempty" json:"country,omitempty"`
	Province     string             `bson:"province,omitempty" json:"province,omitempty"`
	Photos       []string           `bson:"photos" json:"photos"`
	Videos       []string           `bson:"videos" json:"videos"`
	Questions    []Question         `bson:"questions" json:"questions"`
	Availability []AvailabilitySlot `bson:"availability" json:"availability"`
	IsActive     bool               `bson:"is_active" json:"is_active"`
	CreatedAt    time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt    time.Time          `bson:"updated_at" json:"updated_at"`
}
