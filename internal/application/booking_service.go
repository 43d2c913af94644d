package application

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/lendwise/service-lending/internal/domain"
	bookingDomain "github.com/lendwise/service-lending/internal/domain/booking"
	itemDomain "github.com/lendwise/service-lending/internal/domain/item"
	userDomain "github.com/lendwise/service-lending/internal/domain/user"
	"go.uber.org/zap"
)

// CreateBookingRequest holds the data needed to create a new booking. A
// caller-supplied status is accepted on the wire and ignored; every new
// booking starts as WAITING.
type CreateBookingRequest struct {
	ItemID uuid.UUID `json:"item_id" binding:"required"`
	Start  time.Time `json:"start" binding:"required"`
	End    time.Time `json:"end" binding:"required"`
	Status string    `json:"status"`
}

// BookingDTO is the response representation of a booking.
type BookingDTO struct {
	ID     uuid.UUID      `json:"id"`
	Start  time.Time      `json:"start"`
	End    time.Time      `json:"end"`
	Status string         `json:"status"`
	Item   BookingItemDTO `json:"item"`
	Booker BookingUserDTO `json:"booker"`
}

// BookingItemDTO is the item summary embedded in a booking response.
type BookingItemDTO struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

// BookingUserDTO is the user summary embedded in a booking response.
type BookingUserDTO struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

// BookingService is the application service owning the booking lifecycle:
// creation guards, the approval state machine and the state-filtered
// queries over the booking collection.
type BookingService struct {
	bookings bookingDomain.BookingRepository
	items    itemDomain.ItemRepository
	users    userDomain.UserRepository
	logger   *zap.Logger
}

// NewBookingService creates a new BookingService.
func NewBookingService(
	bookings bookingDomain.BookingRepository,
	items itemDomain.ItemRepository,
	users userDomain.UserRepository,
	logger *zap.Logger,
) *BookingService {
	return &BookingService{
		bookings: bookings,
		items:    items,
		users:    users,
		logger:   logger,
	}
}

// CreateBooking creates a new WAITING booking for the given booker. The
// item must exist and be available, the window must be sane, and owners
// cannot book their own items; the first failing guard wins.
func (s *BookingService) CreateBooking(ctx context.Context, bookerID uuid.UUID, req CreateBookingRequest) (*BookingDTO, error) {
	exists, err := s.users.ExistsByID(ctx, bookerID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, domain.NewUnknownIDError("user", bookerID.String())
	}

	it, err := s.items.FindByID(ctx, req.ItemID)
	if err != nil {
		return nil, err
	}
	if !it.Available() {
		return nil, domain.NewUnavailableItemError(domain.ReasonItemNotAvailable, "item is not available")
	}

	bk, err := bookingDomain.NewBooking(bookerID, req.ItemID, req.Start, req.End)
	if err != nil {
		return nil, err
	}

	if it.OwnerID() == bookerID {
		return nil, domain.NewBookingByOwnerError("booking by owner attempt")
	}

	if err := s.bookings.Save(ctx, bk); err != nil {
		return nil, fmt.Errorf("failed to save booking: %w", err)
	}

	s.logger.Info("booking created",
		zap.String("booking_id", bk.ID().String()),
		zap.String("item_id", req.ItemID.String()),
		zap.String("booker_id", bookerID.String()),
	)

	return s.toDTO(ctx, bk)
}

// GetBooking retrieves a single booking. Only the booker and the item's
// owner may see it.
func (s *BookingService) GetBooking(ctx context.Context, userID, bookingID uuid.UUID) (*BookingDTO, error) {
	bk, err := s.bookings.FindByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	if userID != bk.BookerID() {
		it, err := s.items.FindByID(ctx, bk.ItemID())
		if err != nil {
			return nil, err
		}
		if userID != it.OwnerID() {
			return nil, domain.NewIllegalUserError("wrong user id provided")
		}
	}

	return s.toDTO(ctx, bk)
}

// SetBookingStatus approves or rejects a booking. Only the item's owner may
// change the status; approving an already approved booking fails, rejecting
// re-applies REJECTED from any state.
func (s *BookingService) SetBookingStatus(ctx context.Context, userID, bookingID uuid.UUID, approved bool) (*BookingDTO, error) {
	bk, err := s.bookings.FindByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	exists, err := s.users.ExistsByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, domain.NewUnknownIDError("user", userID.String())
	}

	it, err := s.items.FindByID(ctx, bk.ItemID())
	if err != nil {
		return nil, err
	}
	if userID != it.OwnerID() {
		return nil, domain.NewIllegalUserError("wrong user id provided")
	}

	if approved {
		if err := bk.Approve(); err != nil {
			return nil, err
		}
	} else {
		bk.Reject()
	}

	bk.IncrementVersion()
	if err := s.bookings.Update(ctx, bk); err != nil {
		// A lost race on the approve path means someone else approved
		// first; surface it the same way as a repeated approval.
		if approved && domain.IsKind(err, domain.KindConflict) {
			return nil, domain.NewUnavailableItemError(domain.ReasonAlreadyApproved, "booking already approved")
		}
		return nil, err
	}

	s.logger.Info("booking status changed",
		zap.String("booking_id", bk.ID().String()),
		zap.String("status", bk.Status().String()),
	)

	return s.toDTO(ctx, bk)
}

// GetBookerBookings lists the user's own bookings filtered by state token,
// paginated.
func (s *BookingService) GetBookerBookings(ctx context.Context, userID uuid.UUID, state string, page domain.OffsetPage) ([]BookingDTO, error) {
	return s.listByState(ctx, userID, state, page, bookingDomain.HasBookerID(userID))
}

// GetOwnerBookings lists the bookings of the user's items filtered by state
// token, paginated.
func (s *BookingService) GetOwnerBookings(ctx context.Context, userID uuid.UUID, state string, page domain.OffsetPage) ([]BookingDTO, error) {
	return s.listByState(ctx, userID, state, page, bookingDomain.HasOwnerID(userID))
}

func (s *BookingService) listByState(ctx context.Context, userID uuid.UUID, state string, page domain.OffsetPage, base bookingDomain.Specification) ([]BookingDTO, error) {
	bookingState, err := bookingDomain.ParseBookingState(state)
	if err != nil {
		return nil, err
	}

	exists, err := s.users.ExistsByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, domain.NewUnknownIDError("user", userID.String())
	}

	bookings, err := s.bookings.FindAll(ctx, stateSpecification(base, bookingState), &page)
	if err != nil {
		return nil, err
	}
	return s.toDTOs(ctx, bookings)
}

// stateSpecification maps a state token to its predicate and ordering.
// WAITING and REJECTED deliberately carry no ordering and come back in
// persistence order.
func stateSpecification(base bookingDomain.Specification, state bookingDomain.BookingState) bookingDomain.Specification {
	switch state {
	case bookingDomain.StateCurrent:
		return bookingDomain.OrderByStartDesc(base.And(bookingDomain.StartBeforeNow()).And(bookingDomain.EndAfterNow()))
	case bookingDomain.StateFuture:
		return bookingDomain.OrderByStartDesc(base.And(bookingDomain.StartAfterNow()))
	case bookingDomain.StatePast:
		return bookingDomain.OrderByStartDesc(base.And(bookingDomain.EndBeforeNow()))
	case bookingDomain.StateWaiting:
		return base.And(bookingDomain.HasStatus(bookingDomain.StatusWaiting))
	case bookingDomain.StateRejected:
		return base.And(bookingDomain.HasStatus(bookingDomain.StatusRejected))
	default: // StateAll
		return bookingDomain.OrderByStartDesc(base)
	}
}

// LastBooking returns the item's most recent booking whose start is in the
// past, or nil if the item was never booked.
func (s *BookingService) LastBooking(ctx context.Context, itemID uuid.UUID) (*BookingDTO, error) {
	bk, err := s.bookings.FindFirst(ctx, bookingDomain.OrderByStartDesc(
		bookingDomain.HasItemID(itemID).And(bookingDomain.StartBeforeNow()),
	))
	if err != nil {
		return nil, err
	}
	if bk == nil {
		return nil, nil
	}
	return s.toDTO(ctx, bk)
}

// NextBooking returns the item's nearest approved booking starting in the
// future, or nil if there is none.
func (s *BookingService) NextBooking(ctx context.Context, itemID uuid.UUID) (*BookingDTO, error) {
	bk, err := s.bookings.FindFirst(ctx, bookingDomain.OrderByStartAsc(
		bookingDomain.HasItemID(itemID).
			And(bookingDomain.StartAfterNow()).
			And(bookingDomain.HasStatus(bookingDomain.StatusApproved)),
	))
	if err != nil {
		return nil, err
	}
	if bk == nil {
		return nil, nil
	}
	return s.toDTO(ctx, bk)
}

// HasFinishedBooking reports whether the user has an approved booking of
// the item that already started. Used as the comment-authorship guard.
func (s *BookingService) HasFinishedBooking(ctx context.Context, userID, itemID uuid.UUID) (bool, error) {
	bk, err := s.bookings.FindFirst(ctx,
		bookingDomain.HasBookerID(userID).
			And(bookingDomain.HasItemID(itemID)).
			And(bookingDomain.HasStatus(bookingDomain.StatusApproved)).
			And(bookingDomain.StartBeforeNow()),
	)
	if err != nil {
		return false, err
	}
	return bk != nil, nil
}

// --- Helpers ---

func (s *BookingService) toDTO(ctx context.Context, bk *bookingDomain.Booking) (*BookingDTO, error) {
	dtos, err := s.toDTOs(ctx, []*bookingDomain.Booking{bk})
	if err != nil {
		return nil, err
	}
	return &dtos[0], nil
}

// toDTOs resolves the referenced items and bookers, deduplicating lookups
// across the batch.
func (s *BookingService) toDTOs(ctx context.Context, bookings []*bookingDomain.Booking) ([]BookingDTO, error) {
	items := make(map[uuid.UUID]*itemDomain.Item)
	users := make(map[uuid.UUID]*userDomain.User)

	dtos := make([]BookingDTO, len(bookings))
	for i, bk := range bookings {
		it, ok := items[bk.ItemID()]
		if !ok {
			var err error
			if it, err = s.items.FindByID(ctx, bk.ItemID()); err != nil {
				return nil, err
			}
			items[bk.ItemID()] = it
		}

		booker, ok := users[bk.BookerID()]
		if !ok {
			var err error
			if booker, err = s.users.FindByID(ctx, bk.BookerID()); err != nil {
				return nil, err
			}
			users[bk.BookerID()] = booker
		}

		dtos[i] = BookingDTO{
			ID:     bk.ID(),
			Start:  bk.Start(),
			End:    bk.End(),
			Status: bk.Status().String(),
			Item:   BookingItemDTO{ID: it.ID(), Name: it.Name()},
			Booker: BookingUserDTO{ID: booker.ID(), Name: booker.Name()},
		}
	}
	return dtos, nil
}
