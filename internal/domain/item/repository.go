package item

import (
	"context"

	"github.com/google/uuid"
	"github.com/lendwise/service-lending/internal/domain"
)

// ItemRepository defines the persistence contract for item aggregates.
type ItemRepository interface {
	// FindByID retrieves an item by id. A missing item is an UnknownID error.
	FindByID(ctx context.Context, id uuid.UUID) (*Item, error)

	// FindByOwnerID retrieves the owner's items, oldest first, paginated.
	FindByOwnerID(ctx context.Context, ownerID uuid.UUID, page *domain.OffsetPage) ([]*Item, error)

	// SearchByKeyword retrieves available items whose name or description
	// contains the keyword, case-insensitively.
	SearchByKeyword(ctx context.Context, keyword string, page *domain.OffsetPage) ([]*Item, error)

	// FindByRequestID retrieves the items answering an item request.
	FindByRequestID(ctx context.Context, requestID uuid.UUID) ([]*Item, error)

	// Save persists a new item.
	Save(ctx context.Context, item *Item) error

	// Update persists changes to an existing item.
	Update(ctx context.Context, item *Item) error
}

// CommentRepository defines the persistence contract for comments.
type CommentRepository interface {
	// FindByItemID retrieves an item's comments, oldest first.
	FindByItemID(ctx context.Context, itemID uuid.UUID) ([]*Comment, error)

	// Save persists a new comment.
	Save(ctx context.Context, comment *Comment) error
}
