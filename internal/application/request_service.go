package application

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/lendwise/service-lending/internal/domain"
	itemDomain "github.com/lendwise/service-lending/internal/domain/item"
	requestDomain "github.com/lendwise/service-lending/internal/domain/request"
	userDomain "github.com/lendwise/service-lending/internal/domain/user"
	"go.uber.org/zap"
)

// CreateRequestRequest holds the description of a wished-for item.
type CreateRequestRequest struct {
	Description string `json:"description"`
}

// RequestDTO is the response representation of an item request, including
// the items listed in answer to it.
type RequestDTO struct {
	ID          uuid.UUID `json:"id"`
	Description string    `json:"description"`
	Created     time.Time `json:"created"`
	Items       []ItemDTO `json:"items"`
}

// RequestService is the application service for item requests.
type RequestService struct {
	requests requestDomain.RequestRepository
	items    itemDomain.ItemRepository
	users    userDomain.UserRepository
	logger   *zap.Logger
}

// NewRequestService creates a new RequestService.
func NewRequestService(
	requests requestDomain.RequestRepository,
	items itemDomain.ItemRepository,
	users userDomain.UserRepository,
	logger *zap.Logger,
) *RequestService {
	return &RequestService{requests: requests, items: items, users: users, logger: logger}
}

// AddRequest records a new item request for the given user.
func (s *RequestService) AddRequest(ctx context.Context, userID uuid.UUID, req CreateRequestRequest) (*RequestDTO, error) {
	exists, err := s.users.ExistsByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, domain.NewUnknownIDError("user", userID.String())
	}

	ir, err := requestDomain.NewItemRequest(userID, req.Description)
	if err != nil {
		return nil, err
	}
	if err := s.requests.Save(ctx, ir); err != nil {
		return nil, fmt.Errorf("failed to save item request: %w", err)
	}

	s.logger.Info("item request created",
		zap.String("request_id", ir.ID().String()),
		zap.String("user_id", userID.String()),
	)

	return s.toDTO(ctx, ir)
}

// GetOwnRequests lists the user's own requests, newest first, each with the
// items answering it.
func (s *RequestService) GetOwnRequests(ctx context.Context, userID uuid.UUID) ([]RequestDTO, error) {
	exists, err := s.users.ExistsByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, domain.NewUnknownIDError("user", userID.String())
	}

	requests, err := s.requests.FindByRequestorID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.toDTOs(ctx, requests)
}

// GetAllRequests lists other users' requests, newest first, paginated.
func (s *RequestService) GetAllRequests(ctx context.Context, userID uuid.UUID, page domain.OffsetPage) ([]RequestDTO, error) {
	requests, err := s.requests.FindAllExcept(ctx, userID, &page)
	if err != nil {
		return nil, err
	}
	return s.toDTOs(ctx, requests)
}

// GetRequest retrieves one request with its answering items.
func (s *RequestService) GetRequest(ctx context.Context, userID, requestID uuid.UUID) (*RequestDTO, error) {
	exists, err := s.users.ExistsByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, domain.NewUnknownIDError("user", userID.String())
	}

	ir, err := s.requests.FindByID(ctx, requestID)
	if err != nil {
		return nil, err
	}
	return s.toDTO(ctx, ir)
}

// --- Helpers ---

func (s *RequestService) toDTO(ctx context.Context, ir *requestDomain.ItemRequest) (*RequestDTO, error) {
	dtos, err := s.toDTOs(ctx, []*requestDomain.ItemRequest{ir})
	if err != nil {
		return nil, err
	}
	return &dtos[0], nil
}

func (s *RequestService) toDTOs(ctx context.Context, requests []*requestDomain.ItemRequest) ([]RequestDTO, error) {
	dtos := make([]RequestDTO, len(requests))
	for i, ir := range requests {
		answers, err := s.items.FindByRequestID(ctx, ir.ID())
		if err != nil {
			return nil, err
		}

		items := make([]ItemDTO, len(answers))
		for j, it := range answers {
			items[j] = ItemDTO{
				ID:          it.ID(),
				OwnerID:     it.OwnerID(),
				RequestID:   it.RequestID(),
				Name:        it.Name(),
				Description: it.Description(),
				Available:   it.Available(),
				Comments:    []CommentDTO{},
			}
		}

		dtos[i] = RequestDTO{
			ID:          ir.ID(),
			Description: ir.Description(),
			Created:     ir.Created(),
			Items:       items,
		}
	}
	return dtos, nil
}
