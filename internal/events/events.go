package events

import (
	"time"

	"github.com/google/uuid"
)

// Topics used by the booking service.
const (
	TopicBookingEvents = "booking.events"
)

// Event types published to TopicBookingEvents.
const (
	BookingRequested = "booking.requested"
	BookingApproved  = "booking.approved"
	BookingRejected  = "booking.rejected"
)

// BookingRequestedEvent is published when a new booking request is created.
type BookingRequestedEvent struct {
	BookingID  uuid.UUID `json:"booking_id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Date       time.Time `json:"date"`
	TimeSlot   string    `json:"time_slot"`
	GroundType string    `json:"ground_type"`
	OccurredAt time.Time `json:"occurred_at"`
}

// BookingApprovedEvent is published on every successful transition into
// approved, carrying the full post-transition booking snapshot. It is the
// sole input to the confirmation mail trigger.
type BookingApprovedEvent struct {
	BookingID  uuid.UUID `json:"booking_id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Phone      string    `json:"phone"`
	Date       time.Time `json:"date"`
	TimeSlot   string    `json:"time_slot"`
	GroundType string    `json:"ground_type"`
	Status     string    `json:"status"`
	OccurredAt time.Time `json:"occurred_at"`
}

// BookingRejectedEvent is published on every successful transition into rejected.
type BookingRejectedEvent struct {
	BookingID  uuid.UUID `json:"booking_id"`
	Email      string    `json:"email"`
	Date       time.Time `json:"date"`
	TimeSlot   string    `json:"time_slot"`
	GroundType string    `json:"ground_type"`
	OccurredAt time.Time `json:"occurred_at"`
}
