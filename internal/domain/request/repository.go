package request

import (
	"context"

	"github.com/google/uuid"
	"github.com/lendwise/service-lending/internal/domain"
)

// RequestRepository defines the persistence contract for item requests.
type RequestRepository interface {
	// FindByID retrieves a request by id. A missing request is an UnknownID error.
	FindByID(ctx context.Context, id uuid.UUID) (*ItemRequest, error)

	// FindByRequestorID retrieves a user's own requests, newest first.
	FindByRequestorID(ctx context.Context, requestorID uuid.UUID) ([]*ItemRequest, error)

	// FindAllExcept retrieves other users' requests, newest first, paginated.
	FindAllExcept(ctx context.Context, requestorID uuid.UUID, page *domain.OffsetPage) ([]*ItemRequest, error)

	// Save persists a new request.
	Save(ctx context.Context, req *ItemRequest) error
}
