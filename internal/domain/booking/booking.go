package booking

import (
	"time"

	"github.com/google/uuid"

	"github.com/turfbook/service-booking/pkg/domain"
)

// Booking is the aggregate root for the ground reservation domain.
type Booking struct {
	id         uuid.UUID
	name       string
	email      string
	phone      string
	date       time.Time
	timeSlot   string
	groundType GroundType
	status     BookingStatus

	version   int64
	createdAt time.Time
	updatedAt time.Time
}

// NewBooking creates a new Booking with status=pending. Field validation runs
// in declaration order and the first failing field wins; nothing is persisted
// until validation passes.
func NewBooking(name, email, phone string, date time.Time, timeSlot string, groundType GroundType) (*Booking, error) {
	if err := ValidateName(name); err != nil {
		return nil, err
	}
	if err := ValidateEmail(email); err != nil {
		return nil, err
	}
	if err := ValidatePhone(phone); err != nil {
		return nil, err
	}
	if date.IsZero() {
		return nil, domain.NewFieldValidationError(domain.CodeEmptyField, "date", "date is required")
	}
	if timeSlot == "" {
		return nil, domain.NewFieldValidationError(domain.CodeEmptyField, "time_slot", "time slot is required")
	}
	if !groundType.IsValid() {
		return nil, domain.NewValidationError("invalid ground type: " + groundType.String())
	}

	now := time.Now().UTC()
	return &Booking{
		id:         uuid.New(),
		name:       name,
		email:      email,
		phone:      phone,
		date:       DateOnly(date),
		timeSlot:   timeSlot,
		groundType: groundType,
		status:     StatusPending,
		version:    1,
		createdAt:  now,
		updatedAt:  now,
	}, nil
}

// ReconstructBooking rebuilds a Booking from persistence data (no validation).
func ReconstructBooking(
	id uuid.UUID,
	name, email, phone string,
	date time.Time,
	timeSlot string,
	groundType GroundType,
	status BookingStatus,
	version int64,
	createdAt, updatedAt time.Time,
) *Booking {
	return &Booking{
		id:         id,
		name:       name,
		email:      email,
		phone:      phone,
		date:       DateOnly(date),
		timeSlot:   timeSlot,
		groundType: groundType,
		status:     status,
		version:    version,
		createdAt:  createdAt,
		updatedAt:  updatedAt,
	}
}

// DateOnly truncates a timestamp to its calendar date at midnight UTC.
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// --- Getters ---

// ID returns the booking's unique identifier.
func (b *Booking) ID() uuid.UUID { return b.id }

// Name returns the requester's name.
func (b *Booking) Name() string { return b.name }

// Email returns the requester's email address.
func (b *Booking) Email() string { return b.email }

// Phone returns the requester's phone number.
func (b *Booking) Phone() string { return b.phone }

// Date returns the requested calendar date, anchored to midnight UTC.
func (b *Booking) Date() time.Time { return b.date }

// TimeSlot returns the requested time slot label.
func (b *Booking) TimeSlot() string { return b.timeSlot }

// GroundType returns the sport category of the reservation.
func (b *Booking) GroundType() GroundType { return b.groundType }

// Status returns the current booking status.
func (b *Booking) Status() BookingStatus { return b.status }

// Version returns the entity version for optimistic locking.
func (b *Booking) Version() int64 { return b.version }

// CreatedAt returns the creation timestamp.
func (b *Booking) CreatedAt() time.Time { return b.createdAt }

// UpdatedAt returns the last-updated timestamp.
func (b *Booking) UpdatedAt() time.Time { return b.updatedAt }

// --- Behavior ---

// Approve transitions the booking from pending to approved. Only the status
// and updatedAt change; all other fields are immutable after creation.
func (b *Booking) Approve() error {
	if !b.status.CanTransitionTo(StatusApproved) {
		return domain.NewInvalidStateError(string(b.status), string(StatusApproved))
	}
	b.status = StatusApproved
	b.updatedAt = time.Now().UTC()
	return nil
}

// Reject transitions the booking from pending to rejected.
func (b *Booking) Reject() error {
	if !b.status.CanTransitionTo(StatusRejected) {
		return domain.NewInvalidStateError(string(b.status), string(StatusRejected))
	}
	b.status = StatusRejected
	b.updatedAt = time.Now().UTC()
	return nil
}

// IncrementVersion bumps the version for optimistic locking.
func (b *Booking) IncrementVersion() {
	b.version++
	b.updatedAt = time.Now().UTC()
}
