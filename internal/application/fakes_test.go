package application

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/lendwise/service-lending/internal/domain"
	bookingDomain "github.com/lendwise/service-lending/internal/domain/booking"
	itemDomain "github.com/lendwise/service-lending/internal/domain/item"
	requestDomain "github.com/lendwise/service-lending/internal/domain/request"
	userDomain "github.com/lendwise/service-lending/internal/domain/user"
)

// In-memory repository fakes backing the service tests. The booking fake
// evaluates real specifications against views, so the tests exercise the
// same predicates the SQL rendering is built from.

type fakeUserRepo struct {
	users map[uuid.UUID]*userDomain.User
	order []uuid.UUID
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[uuid.UUID]*userDomain.User)}
}

func (r *fakeUserRepo) FindByID(_ context.Context, id uuid.UUID) (*userDomain.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, domain.NewUnknownIDError("user", id.String())
	}
	return u, nil
}

func (r *fakeUserRepo) ExistsByID(_ context.Context, id uuid.UUID) (bool, error) {
	_, ok := r.users[id]
	return ok, nil
}

func (r *fakeUserRepo) ExistsByEmail(_ context.Context, email string, exceptID uuid.UUID) (bool, error) {
	for id, u := range r.users {
		if id != exceptID && u.Email() == email {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeUserRepo) FindAll(_ context.Context) ([]*userDomain.User, error) {
	users := make([]*userDomain.User, 0, len(r.order))
	for _, id := range r.order {
		users = append(users, r.users[id])
	}
	return users, nil
}

func (r *fakeUserRepo) Save(_ context.Context, u *userDomain.User) error {
	r.users[u.ID()] = u
	r.order = append(r.order, u.ID())
	return nil
}

func (r *fakeUserRepo) Update(_ context.Context, u *userDomain.User) error {
	r.users[u.ID()] = u
	return nil
}

func (r *fakeUserRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.users, id)
	return nil
}

type fakeItemRepo struct {
	items map[uuid.UUID]*itemDomain.Item
	order []uuid.UUID
}

func newFakeItemRepo() *fakeItemRepo {
	return &fakeItemRepo{items: make(map[uuid.UUID]*itemDomain.Item)}
}

func (r *fakeItemRepo) FindByID(_ context.Context, id uuid.UUID) (*itemDomain.Item, error) {
	it, ok := r.items[id]
	if !ok {
		return nil, domain.NewUnknownIDError("item", id.String())
	}
	return it, nil
}

func (r *fakeItemRepo) FindByOwnerID(_ context.Context, ownerID uuid.UUID, page *domain.OffsetPage) ([]*itemDomain.Item, error) {
	var items []*itemDomain.Item
	for _, id := range r.order {
		if it := r.items[id]; it != nil && it.OwnerID() == ownerID {
			items = append(items, it)
		}
	}
	return pageSlice(items, page), nil
}

func (r *fakeItemRepo) SearchByKeyword(_ context.Context, keyword string, page *domain.OffsetPage) ([]*itemDomain.Item, error) {
	kw := strings.ToLower(keyword)
	var items []*itemDomain.Item
	for _, id := range r.order {
		it := r.items[id]
		if it == nil || !it.Available() {
			continue
		}
		if strings.Contains(strings.ToLower(it.Name()), kw) ||
			strings.Contains(strings.ToLower(it.Description()), kw) {
			items = append(items, it)
		}
	}
	return pageSlice(items, page), nil
}

func (r *fakeItemRepo) FindByRequestID(_ context.Context, requestID uuid.UUID) ([]*itemDomain.Item, error) {
	var items []*itemDomain.Item
	for _, id := range r.order {
		it := r.items[id]
		if it != nil && it.RequestID() != nil && *it.RequestID() == requestID {
			items = append(items, it)
		}
	}
	return items, nil
}

func (r *fakeItemRepo) Save(_ context.Context, it *itemDomain.Item) error {
	r.items[it.ID()] = it
	r.order = append(r.order, it.ID())
	return nil
}

func (r *fakeItemRepo) Update(_ context.Context, it *itemDomain.Item) error {
	r.items[it.ID()] = it
	return nil
}

type fakeCommentRepo struct {
	comments []*itemDomain.Comment
}

func (r *fakeCommentRepo) FindByItemID(_ context.Context, itemID uuid.UUID) ([]*itemDomain.Comment, error) {
	var comments []*itemDomain.Comment
	for _, c := range r.comments {
		if c.ItemID() == itemID {
			comments = append(comments, c)
		}
	}
	return comments, nil
}

func (r *fakeCommentRepo) Save(_ context.Context, c *itemDomain.Comment) error {
	r.comments = append(r.comments, c)
	return nil
}

type fakeRequestRepo struct {
	requests []*requestDomain.ItemRequest
}

func (r *fakeRequestRepo) FindByID(_ context.Context, id uuid.UUID) (*requestDomain.ItemRequest, error) {
	for _, ir := range r.requests {
		if ir.ID() == id {
			return ir, nil
		}
	}
	return nil, domain.NewUnknownIDError("item request", id.String())
}

func (r *fakeRequestRepo) FindByRequestorID(_ context.Context, requestorID uuid.UUID) ([]*requestDomain.ItemRequest, error) {
	var requests []*requestDomain.ItemRequest
	for i := len(r.requests) - 1; i >= 0; i-- {
		if r.requests[i].RequestorID() == requestorID {
			requests = append(requests, r.requests[i])
		}
	}
	return requests, nil
}

func (r *fakeRequestRepo) FindAllExcept(_ context.Context, requestorID uuid.UUID, page *domain.OffsetPage) ([]*requestDomain.ItemRequest, error) {
	var requests []*requestDomain.ItemRequest
	for i := len(r.requests) - 1; i >= 0; i-- {
		if r.requests[i].RequestorID() != requestorID {
			requests = append(requests, r.requests[i])
		}
	}
	return pageSlice(requests, page), nil
}

func (r *fakeRequestRepo) Save(_ context.Context, ir *requestDomain.ItemRequest) error {
	r.requests = append(r.requests, ir)
	return nil
}

// fakeBookingRepo resolves item owners through the item fake so that
// owner-scoped specifications can be evaluated in memory. Stored versions
// emulate the optimistic-locking column.
type fakeBookingRepo struct {
	bookings map[uuid.UUID]*bookingDomain.Booking
	order    []uuid.UUID
	versions map[uuid.UUID]int64
	items    *fakeItemRepo
}

func newFakeBookingRepo(items *fakeItemRepo) *fakeBookingRepo {
	return &fakeBookingRepo{
		bookings: make(map[uuid.UUID]*bookingDomain.Booking),
		versions: make(map[uuid.UUID]int64),
		items:    items,
	}
}

func cloneBooking(bk *bookingDomain.Booking) *bookingDomain.Booking {
	return bookingDomain.ReconstructBooking(
		bk.ID(), bk.Start(), bk.End(), bk.ItemID(), bk.BookerID(),
		bk.Status(), bk.Version(), bk.CreatedAt(), bk.UpdatedAt(),
	)
}

func (r *fakeBookingRepo) FindByID(_ context.Context, id uuid.UUID) (*bookingDomain.Booking, error) {
	bk, ok := r.bookings[id]
	if !ok {
		return nil, domain.NewUnknownIDError("booking", id.String())
	}
	return cloneBooking(bk), nil
}

func (r *fakeBookingRepo) FindAll(_ context.Context, spec bookingDomain.Specification, page *domain.OffsetPage) ([]*bookingDomain.Booking, error) {
	views := r.matching(spec)
	spec.Sort(views)

	bookings := make([]*bookingDomain.Booking, len(views))
	for i, v := range views {
		bookings[i] = v.Booking
	}
	return pageSlice(bookings, page), nil
}

func (r *fakeBookingRepo) FindFirst(_ context.Context, spec bookingDomain.Specification) (*bookingDomain.Booking, error) {
	views := r.matching(spec)
	if len(views) == 0 {
		return nil, nil
	}
	spec.Sort(views)
	return views[0].Booking, nil
}

func (r *fakeBookingRepo) Save(_ context.Context, bk *bookingDomain.Booking) error {
	r.bookings[bk.ID()] = cloneBooking(bk)
	r.order = append(r.order, bk.ID())
	r.versions[bk.ID()] = bk.Version()
	return nil
}

func (r *fakeBookingRepo) Update(_ context.Context, bk *bookingDomain.Booking) error {
	stored, ok := r.versions[bk.ID()]
	if !ok {
		return domain.NewUnknownIDError("booking", bk.ID().String())
	}
	if stored != bk.Version()-1 {
		return domain.NewConflictError("booking was modified by another transaction")
	}
	r.bookings[bk.ID()] = cloneBooking(bk)
	r.versions[bk.ID()] = bk.Version()
	return nil
}

func (r *fakeBookingRepo) matching(spec bookingDomain.Specification) []bookingDomain.View {
	var views []bookingDomain.View
	for _, id := range r.order {
		bk, ok := r.bookings[id]
		if !ok {
			continue
		}
		var ownerID uuid.UUID
		if it, ok := r.items.items[bk.ItemID()]; ok {
			ownerID = it.OwnerID()
		}
		v := bookingDomain.View{Booking: cloneBooking(bk), OwnerID: ownerID}
		if spec.Matches(v) {
			views = append(views, v)
		}
	}
	return views
}

func pageSlice[T any](all []T, page *domain.OffsetPage) []T {
	if page == nil {
		return all
	}
	start := page.RowOffset()
	if start >= len(all) {
		return nil
	}
	end := start + page.Limit()
	if end > len(all) {
		end = len(all)
	}
	return all[start:end]
}
