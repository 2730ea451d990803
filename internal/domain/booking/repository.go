package booking

import (
	"context"

	"github.com/google/uuid"
)

// BookingRepository defines the persistence contract for booking aggregates.
// There is no delete operation: bookings are never removed, only transitioned
// to a terminal status.
type BookingRepository interface {
	// FindByID retrieves a booking by its unique identifier.
	FindByID(ctx context.Context, id uuid.UUID) (*Booking, error)

	// ListByStatus retrieves bookings matching the status filter with
	// pagination, newest first. StatusFilterAll returns every booking.
	ListByStatus(ctx context.Context, filter StatusFilter, page, limit int) ([]*Booking, int64, error)

	// ListAll retrieves the full booking collection without pagination,
	// as materialized for filtering and report aggregation.
	ListAll(ctx context.Context) ([]*Booking, error)

	// Save persists a new booking.
	Save(ctx context.Context, booking *Booking) error

	// UpdateStatus persists a status transition conditionally: the update
	// only applies if the stored status still equals expectedFrom, so the
	// read-verify and the write are a single atomic statement. A conflict
	// is returned when the stored status changed underneath the caller.
	UpdateStatus(ctx context.Context, booking *Booking, expectedFrom BookingStatus) error
}
