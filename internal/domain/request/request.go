package request

import (
	"time"

	"github.com/google/uuid"
	"github.com/lendwise/service-lending/internal/domain"
)

// ItemRequest is a user's wish for an item nobody has listed yet. Owners
// may answer it by listing an item that references the request.
type ItemRequest struct {
	id          uuid.UUID
	requestorID uuid.UUID
	description string
	created     time.Time
}

// NewItemRequest creates a request with a non-empty description.
func NewItemRequest(requestorID uuid.UUID, description string) (*ItemRequest, error) {
	if description == "" {
		return nil, domain.NewValidationError("description field cannot be empty")
	}
	return &ItemRequest{
		id:          uuid.New(),
		requestorID: requestorID,
		description: description,
		created:     time.Now().UTC(),
	}, nil
}

// ReconstructItemRequest rebuilds an ItemRequest from persistence data.
func ReconstructItemRequest(id, requestorID uuid.UUID, description string, created time.Time) *ItemRequest {
	return &ItemRequest{id: id, requestorID: requestorID, description: description, created: created}
}

// ID returns the request's unique identifier.
func (r *ItemRequest) ID() uuid.UUID { return r.id }

// RequestorID returns the id of the requesting user.
func (r *ItemRequest) RequestorID() uuid.UUID { return r.requestorID }

// Description returns what the requestor is looking for.
func (r *ItemRequest) Description() string { return r.description }

// Created returns the creation timestamp.
func (r *ItemRequest) Created() time.Time { return r.created }
