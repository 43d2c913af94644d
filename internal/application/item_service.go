package application

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/lendwise/service-lending/internal/domain"
	itemDomain "github.com/lendwise/service-lending/internal/domain/item"
	userDomain "github.com/lendwise/service-lending/internal/domain/user"
	"go.uber.org/zap"
)

// AvailabilityLookup resolves the last/next booking pair rendered on
// owner-facing item views. Implemented by BookingService.
type AvailabilityLookup interface {
	LastBooking(ctx context.Context, itemID uuid.UUID) (*BookingDTO, error)
	NextBooking(ctx context.Context, itemID uuid.UUID) (*BookingDTO, error)
	HasFinishedBooking(ctx context.Context, userID, itemID uuid.UUID) (bool, error)
}

// CreateItemRequest holds the data needed to list a new item. Available is
// a pointer so that an omitted flag is distinguishable from false.
type CreateItemRequest struct {
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Available   *bool      `json:"available"`
	RequestID   *uuid.UUID `json:"request_id"`
}

// UpdateItemRequest is a partial item update; nil fields are left untouched.
type UpdateItemRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Available   *bool   `json:"available"`
}

// CreateCommentRequest holds a renter's comment text.
type CreateCommentRequest struct {
	Text string `json:"text"`
}

// ItemDTO is the response representation of an item. LastBooking and
// NextBooking are attached only on owner-facing reads.
type ItemDTO struct {
	ID          uuid.UUID    `json:"id"`
	OwnerID     uuid.UUID    `json:"owner_id"`
	RequestID   *uuid.UUID   `json:"request_id,omitempty"`
	Name        string       `json:"name"`
	Description string       `json:"description"`
	Available   bool         `json:"available"`
	LastBooking *BookingDTO  `json:"last_booking,omitempty"`
	NextBooking *BookingDTO  `json:"next_booking,omitempty"`
	Comments    []CommentDTO `json:"comments"`
}

// CommentDTO is the response representation of a comment.
type CommentDTO struct {
	ID         uuid.UUID `json:"id"`
	Text       string    `json:"text"`
	AuthorName string    `json:"author_name"`
	Created    time.Time `json:"created"`
}

// ItemService is the application service for item listings and comments.
type ItemService struct {
	items        itemDomain.ItemRepository
	comments     itemDomain.CommentRepository
	users        userDomain.UserRepository
	availability AvailabilityLookup
	logger       *zap.Logger
}

// NewItemService creates a new ItemService.
func NewItemService(
	items itemDomain.ItemRepository,
	comments itemDomain.CommentRepository,
	users userDomain.UserRepository,
	availability AvailabilityLookup,
	logger *zap.Logger,
) *ItemService {
	return &ItemService{
		items:        items,
		comments:     comments,
		users:        users,
		availability: availability,
		logger:       logger,
	}
}

// AddItem lists a new item for the given owner.
func (s *ItemService) AddItem(ctx context.Context, ownerID uuid.UUID, req CreateItemRequest) (*ItemDTO, error) {
	exists, err := s.users.ExistsByID(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, domain.NewUnknownIDError("user", ownerID.String())
	}

	it, err := itemDomain.NewItem(ownerID, req.Name, req.Description, req.Available, req.RequestID)
	if err != nil {
		return nil, err
	}

	if err := s.items.Save(ctx, it); err != nil {
		return nil, fmt.Errorf("failed to save item: %w", err)
	}

	s.logger.Info("item listed",
		zap.String("item_id", it.ID().String()),
		zap.String("owner_id", ownerID.String()),
	)

	dto := s.baseDTO(it)
	return &dto, nil
}

// UpdateItem applies a partial update. Only the owner may update an item.
func (s *ItemService) UpdateItem(ctx context.Context, ownerID, itemID uuid.UUID, req UpdateItemRequest) (*ItemDTO, error) {
	it, err := s.items.FindByID(ctx, itemID)
	if err != nil {
		return nil, err
	}
	if it.OwnerID() != ownerID {
		return nil, domain.NewIllegalUserError("wrong user id provided")
	}

	it.ApplyPatch(req.Name, req.Description, req.Available)
	if err := s.items.Update(ctx, it); err != nil {
		return nil, err
	}

	dto := s.baseDTO(it)
	return &dto, nil
}

// GetItem retrieves one item with its comments. The availability snapshot
// is computed only when the requester is the owner.
func (s *ItemService) GetItem(ctx context.Context, userID, itemID uuid.UUID) (*ItemDTO, error) {
	it, err := s.items.FindByID(ctx, itemID)
	if err != nil {
		return nil, err
	}

	dto := s.baseDTO(it)
	if err := s.attachComments(ctx, &dto); err != nil {
		return nil, err
	}
	if it.OwnerID() == userID {
		if err := s.attachAvailability(ctx, &dto); err != nil {
			return nil, err
		}
	}
	return &dto, nil
}

// GetOwnerItems lists the owner's items, each with its availability snapshot.
func (s *ItemService) GetOwnerItems(ctx context.Context, ownerID uuid.UUID, page domain.OffsetPage) ([]ItemDTO, error) {
	items, err := s.items.FindByOwnerID(ctx, ownerID, &page)
	if err != nil {
		return nil, err
	}

	dtos := make([]ItemDTO, len(items))
	for i, it := range items {
		dtos[i] = s.baseDTO(it)
		if err := s.attachComments(ctx, &dtos[i]); err != nil {
			return nil, err
		}
		if err := s.attachAvailability(ctx, &dtos[i]); err != nil {
			return nil, err
		}
	}
	return dtos, nil
}

// SearchItems finds available items matching the keyword. An empty keyword
// yields an empty result, not an error.
func (s *ItemService) SearchItems(ctx context.Context, keyword string, page domain.OffsetPage) ([]ItemDTO, error) {
	if keyword == "" {
		return []ItemDTO{}, nil
	}

	items, err := s.items.SearchByKeyword(ctx, keyword, &page)
	if err != nil {
		return nil, err
	}

	dtos := make([]ItemDTO, len(items))
	for i, it := range items {
		dtos[i] = s.baseDTO(it)
	}
	return dtos, nil
}

// AddComment records a renter's comment. The author must have an approved
// booking of the item that already started.
func (s *ItemService) AddComment(ctx context.Context, authorID, itemID uuid.UUID, req CreateCommentRequest) (*CommentDTO, error) {
	author, err := s.users.FindByID(ctx, authorID)
	if err != nil {
		return nil, err
	}
	if _, err := s.items.FindByID(ctx, itemID); err != nil {
		return nil, err
	}

	booked, err := s.availability.HasFinishedBooking(ctx, authorID, itemID)
	if err != nil {
		return nil, err
	}
	if !booked {
		return nil, domain.NewUnavailableItemError(domain.ReasonNeverBooked, "you never booked this item")
	}

	comment, err := itemDomain.NewComment(authorID, itemID, req.Text)
	if err != nil {
		return nil, err
	}
	if err := s.comments.Save(ctx, comment); err != nil {
		return nil, fmt.Errorf("failed to save comment: %w", err)
	}

	return &CommentDTO{
		ID:         comment.ID(),
		Text:       comment.Text(),
		AuthorName: author.Name(),
		Created:    comment.Created(),
	}, nil
}

// --- Helpers ---

func (s *ItemService) baseDTO(it *itemDomain.Item) ItemDTO {
	return ItemDTO{
		ID:          it.ID(),
		OwnerID:     it.OwnerID(),
		RequestID:   it.RequestID(),
		Name:        it.Name(),
		Description: it.Description(),
		Available:   it.Available(),
		Comments:    []CommentDTO{},
	}
}

func (s *ItemService) attachComments(ctx context.Context, dto *ItemDTO) error {
	comments, err := s.comments.FindByItemID(ctx, dto.ID)
	if err != nil {
		return err
	}

	authors := make(map[uuid.UUID]*userDomain.User)
	for _, c := range comments {
		author, ok := authors[c.AuthorID()]
		if !ok {
			if author, err = s.users.FindByID(ctx, c.AuthorID()); err != nil {
				return err
			}
			authors[c.AuthorID()] = author
		}
		dto.Comments = append(dto.Comments, CommentDTO{
			ID:         c.ID(),
			Text:       c.Text(),
			AuthorName: author.Name(),
			Created:    c.Created(),
		})
	}
	return nil
}

func (s *ItemService) attachAvailability(ctx context.Context, dto *ItemDTO) error {
	last, err := s.availability.LastBooking(ctx, dto.ID)
	if err != nil {
		return err
	}
	next, err := s.availability.NextBooking(ctx, dto.ID)
	if err != nil {
		return err
	}
	dto.LastBooking = last
	dto.NextBooking = next
	return nil
}
