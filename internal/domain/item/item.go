package item

import (
	"time"

	"github.com/google/uuid"
	"github.com/lendwise/service-lending/internal/domain"
)

// Item is a shareable thing listed by its owner. Bookings reference it by
// id only; the item does not know about its bookings.
type Item struct {
	id          uuid.UUID
	ownerID     uuid.UUID
	requestID   *uuid.UUID
	name        string
	description string
	available   bool

	createdAt time.Time
	updatedAt time.Time
}

// NewItem creates a new Item. Name and description must be non-empty and
// the availability flag must be supplied explicitly.
func NewItem(ownerID uuid.UUID, name, description string, available *bool, requestID *uuid.UUID) (*Item, error) {
	if ownerID == uuid.Nil {
		return nil, domain.NewValidationError("owner ID is required")
	}
	if name == "" {
		return nil, domain.NewValidationError("name field cannot be empty")
	}
	if description == "" {
		return nil, domain.NewValidationError("description field cannot be empty")
	}
	if available == nil {
		return nil, domain.NewValidationError("available field cannot be empty")
	}

	now := time.Now().UTC()
	return &Item{
		id:          uuid.New(),
		ownerID:     ownerID,
		requestID:   requestID,
		name:        name,
		description: description,
		available:   *available,
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

// ReconstructItem rebuilds an Item from persistence data (no validation).
func ReconstructItem(
	id, ownerID uuid.UUID,
	requestID *uuid.UUID,
	name, description string,
	available bool,
	createdAt, updatedAt time.Time,
) *Item {
	return &Item{
		id:          id,
		ownerID:     ownerID,
		requestID:   requestID,
		name:        name,
		description: description,
		available:   available,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}
}

// ID returns the item's unique identifier.
func (i *Item) ID() uuid.UUID { return i.id }

// OwnerID returns the id of the user who listed the item.
func (i *Item) OwnerID() uuid.UUID { return i.ownerID }

// RequestID returns the id of the item request this item answers, or nil.
func (i *Item) RequestID() *uuid.UUID { return i.requestID }

// Name returns the item's display name.
func (i *Item) Name() string { return i.name }

// Description returns the item's description.
func (i *Item) Description() string { return i.description }

// Available reports whether the item can currently be booked.
func (i *Item) Available() bool { return i.available }

// CreatedAt returns the creation timestamp.
func (i *Item) CreatedAt() time.Time { return i.createdAt }

// UpdatedAt returns the last-updated timestamp.
func (i *Item) UpdatedAt() time.Time { return i.updatedAt }

// ApplyPatch overwrites the fields present in the patch; nil fields keep
// their current value.
func (i *Item) ApplyPatch(name, description *string, available *bool) {
	if name != nil {
		i.name = *name
	}
	if description != nil {
		i.description = *description
	}
	if available != nil {
		i.available = *available
	}
	i.updatedAt = time.Now().UTC()
}
