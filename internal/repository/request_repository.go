package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/lendwise/service-lending/internal/domain"
	requestDomain "github.com/lendwise/service-lending/internal/domain/request"
	"gorm.io/gorm"
)

// RequestModel is the GORM model for the item_requests table.
type RequestModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	RequestorID uuid.UUID `gorm:"type:uuid;index;not null"`
	Description string    `gorm:"not null;size:1000"`
	CreatedAt   time.Time `gorm:"not null"`
}

// TableName returns the table name for the GORM model.
func (RequestModel) TableName() string {
	return "item_requests"
}

// GormRequestRepository is the GORM-based implementation of RequestRepository.
type GormRequestRepository struct {
	db *gorm.DB
}

// NewGormRequestRepository creates a new GormRequestRepository.
func NewGormRequestRepository(db *gorm.DB) *GormRequestRepository {
	return &GormRequestRepository{db: db}
}

// FindByID retrieves a request by its unique identifier.
func (r *GormRequestRepository) FindByID(ctx context.Context, id uuid.UUID) (*requestDomain.ItemRequest, error) {
	var model RequestModel
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NewUnknownIDError("item request", id.String())
		}
		return nil, fmt.Errorf("failed to find item request by ID: %w", err)
	}
	return toDomainRequest(&model), nil
}

// FindByRequestorID retrieves a user's own requests, newest first.
func (r *GormRequestRepository) FindByRequestorID(ctx context.Context, requestorID uuid.UUID) ([]*requestDomain.ItemRequest, error) {
	var models []RequestModel
	if err := r.db.WithContext(ctx).
		Where("requestor_id = ?", requestorID).
		Order("created_at DESC").
		Find(&models).Error; err != nil {
		return nil, fmt.Errorf("failed to find item requests: %w", err)
	}
	return toDomainRequests(models), nil
}

// FindAllExcept retrieves other users' requests, newest first, paginated.
func (r *GormRequestRepository) FindAllExcept(ctx context.Context, requestorID uuid.UUID, page *domain.OffsetPage) ([]*requestDomain.ItemRequest, error) {
	q := r.db.WithContext(ctx).
		Where("requestor_id <> ?", requestorID).
		Order("created_at DESC")
	if page != nil {
		q = q.Offset(page.RowOffset()).Limit(page.Limit())
	}

	var models []RequestModel
	if err := q.Find(&models).Error; err != nil {
		return nil, fmt.Errorf("failed to list item requests: %w", err)
	}
	return toDomainRequests(models), nil
}

// Save persists a new request.
func (r *GormRequestRepository) Save(ctx context.Context, req *requestDomain.ItemRequest) error {
	model := &RequestModel{
		ID:          req.ID(),
		RequestorID: req.RequestorID(),
		Description: req.Description(),
		CreatedAt:   req.Created(),
	}
	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to save item request: %w", err)
	}
	return nil
}

// --- Conversion helpers ---

func toDomainRequest(m *RequestModel) *requestDomain.ItemRequest {
	return requestDomain.ReconstructItemRequest(m.ID, m.RequestorID, m.Description, m.CreatedAt)
}

func toDomainRequests(models []RequestModel) []*requestDomain.ItemRequest {
	requests := make([]*requestDomain.ItemRequest, len(models))
	for i, m := range models {
		requests[i] = toDomainRequest(&m)
	}
	return requests
}
