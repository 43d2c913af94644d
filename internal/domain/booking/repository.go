package booking

import (
	"context"

	"github.com/google/uuid"
	"github.com/lendwise/service-lending/internal/domain"
)

// BookingRepository defines the persistence contract for booking aggregates.
type BookingRepository interface {
	// FindByID retrieves a booking by its unique identifier. A missing
	// booking is an UnknownID error.
	FindByID(ctx context.Context, id uuid.UUID) (*Booking, error)

	// FindAll retrieves the bookings matching the specification, in the
	// specification's order. A nil page means no pagination.
	FindAll(ctx context.Context, spec Specification, page *domain.OffsetPage) ([]*Booking, error)

	// FindFirst retrieves the first booking matching the specification, or
	// nil without error when nothing matches.
	FindFirst(ctx context.Context, spec Specification) (*Booking, error)

	// Save persists a new booking.
	Save(ctx context.Context, booking *Booking) error

	// Update persists changes to an existing booking with optimistic
	// locking; a stale version is a Conflict error.
	Update(ctx context.Context, booking *Booking) error
}
