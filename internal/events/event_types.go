package events

import (
	"time"

	"github.com/google/uuid"

	"github.com/motor-mingle/server/internal/domain"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventUserRegistered            EventType = "user_registered"
	EventListingCreated            EventType = "listing_created"
	EventListingSold               EventType = "listing_sold"
	EventSellerVerificationChanged EventType = "seller_verification_changed"
)

// Event represents a domain event emitted by services.
type Event struct {
	ID         string      `json:"id"`
	Type       EventType   `json:"type"`
	SubjectID  string      `json:"subject_id"`
	ActorEmail string      `json:"actor_email,omitempty"`
	Timestamp  time.Time   `json:"timestamp"`
	Payload    interface{} `json:"payload"`
}

// New stamps an event with a fresh id and the current time.
func New(eventType EventType, subjectID, actorEmail string, payload interface{}) Event {
	return Event{
		ID:         uuid.NewString(),
		Type:       eventType,
		SubjectID:  subjectID,
		ActorEmail: actorEmail,
		Timestamp:  time.Now().UTC(),
		Payload:    payload,
	}
}

// UserRegisteredPayload payload.
type UserRegisteredPayload struct {
	Email string `json:"email"`
	Name  string `json:"name"`
}

// ListingCreatedPayload payload.
type ListingCreatedPayload struct {
	SellerEmail string  `json:"seller_email"`
	CarName     string  `json:"car_name"`
	CarBrand    string  `json:"car_brand"`
	Price       float64 `json:"price"`
}

// ListingSoldPayload payload.
type ListingSoldPayload struct {
	SellerEmail string `json:"seller_email"`
	CarName     string `json:"car_name"`
}

// SellerVerificationChangedPayload payload.
type SellerVerificationChangedPayload struct {
	SellerID        string              `json:"seller_id"`
	Status          domain.VerifyStatus `json:"status"`
	ListingsUpdated int64               `json:"listings_updated"`
}
