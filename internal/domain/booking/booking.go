package booking

import (
	"time"

	"github.com/google/uuid"
	"github.com/lendwise/service-lending/internal/domain"
)

// Booking is the aggregate root for the booking domain. It references the
// item and the booker by id only; those entities are owned by their own
// services and fetched on demand.
type Booking struct {
	id       uuid.UUID
	start    time.Time
	end      time.Time
	itemID   uuid.UUID
	bookerID uuid.UUID
	status   BookingStatus

	version   int64
	createdAt time.Time
	updatedAt time.Time
}

// NewBooking creates a new Booking with status WAITING. Any caller-supplied
// status is ignored; the window must satisfy start < end.
func NewBooking(bookerID, itemID uuid.UUID, start, end time.Time) (*Booking, error) {
	if bookerID == uuid.Nil {
		return nil, domain.NewValidationError("booker ID is required")
	}
	if itemID == uuid.Nil {
		return nil, domain.NewValidationError("item ID is required")
	}
	if !start.Before(end) {
		return nil, domain.NewEndBeforeStartError("incorrect end date provided")
	}

	now := time.Now().UTC()
	return &Booking{
		id:        uuid.New(),
		start:     start,
		end:       end,
		itemID:    itemID,
		bookerID:  bookerID,
		status:    StatusWaiting,
		version:   1,
		createdAt: now,
		updatedAt: now,
	}, nil
}

// ReconstructBooking rebuilds a Booking from persistence data (no validation).
func ReconstructBooking(
	id uuid.UUID,
	start, end time.Time,
	itemID, bookerID uuid.UUID,
	status BookingStatus,
	version int64,
	createdAt, updatedAt time.Time,
) *Booking {
	return &Booking{
		id:        id,
		start:     start,
		end:       end,
		itemID:    itemID,
		bookerID:  bookerID,
		status:    status,
		version:   version,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

// ID returns the booking's unique identifier.
func (b *Booking) ID() uuid.UUID { return b.id }

// Start returns the beginning of the booked window.
func (b *Booking) Start() time.Time { return b.start }

// End returns the end of the booked window.
func (b *Booking) End() time.Time { return b.end }

// ItemID returns the id of the booked item.
func (b *Booking) ItemID() uuid.UUID { return b.itemID }

// BookerID returns the id of the user who requested the booking.
func (b *Booking) BookerID() uuid.UUID { return b.bookerID }

// Status returns the current approval status.
func (b *Booking) Status() BookingStatus { return b.status }

// Version returns the entity version for optimistic locking.
func (b *Booking) Version() int64 { return b.version }

// CreatedAt returns the creation timestamp.
func (b *Booking) CreatedAt() time.Time { return b.createdAt }

// UpdatedAt returns the last-updated timestamp.
func (b *Booking) UpdatedAt() time.Time { return b.updatedAt }

// Approve sets the status to APPROVED. Approval is not idempotent: a
// booking that is already approved cannot be approved again.
func (b *Booking) Approve() error {
	if !b.status.CanTransitionTo(StatusApproved) {
		return domain.NewUnavailableItemError(domain.ReasonAlreadyApproved, "booking already approved")
	}
	b.status = StatusApproved
	b.updatedAt = time.Now().UTC()
	return nil
}

// Reject sets the status to REJECTED. Rejecting an already rejected or
// approved booking re-applies REJECTED; the transition table allows it from
// every state.
func (b *Booking) Reject() {
	b.status = StatusRejected
	b.updatedAt = time.Now().UTC()
}

// IncrementVersion bumps the version for optimistic locking.
func (b *Booking) IncrementVersion() {
	b.version++
	b.updatedAt = time.Now().UTC()
}
