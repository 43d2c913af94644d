package booking

import (
	"sort"
	"time"

	"github.com/google/uuid"
)

// JoinItems is the join a specification needs when it filters on the owning
// item's columns.
const JoinItems = "JOIN items ON items.id = bookings.item_id"

// Condition is a single SQL predicate fragment with its arguments.
type Condition struct {
	Expr string
	Args []any
}

// View is the flattened row a predicate is evaluated against in memory: the
// booking itself plus the owner of its item, resolved by the caller.
type View struct {
	Booking *Booking
	OwnerID uuid.UUID
}

// Ordering is a total order over bookings, applied as a property of the
// query rather than of any predicate.
type Ordering int

const (
	OrderNone Ordering = iota
	OrderStartAsc
	OrderStartDesc
)

// predicate renders to SQL for the repository and evaluates directly for
// in-memory collections. Time-relative predicates receive the instant the
// specification is being evaluated at.
type predicate struct {
	sql   func(now time.Time) Condition
	match func(now time.Time, v View) bool
}

// Specification is a composable filter over the booking collection.
// Predicates compose via And; an Ordering can wrap any specification. The
// zero value matches everything.
type Specification struct {
	now      func() time.Time
	joins    []string
	preds    []predicate
	ordering Ordering
}

func newSpecification(p predicate, joins ...string) Specification {
	return Specification{now: time.Now, joins: joins, preds: []predicate{p}}
}

// HasBookerID matches bookings created by the given user.
func HasBookerID(userID uuid.UUID) Specification {
	return newSpecification(predicate{
		sql: func(time.Time) Condition {
			return Condition{Expr: "bookings.booker_id = ?", Args: []any{userID}}
		},
		match: func(_ time.Time, v View) bool { return v.Booking.BookerID() == userID },
	})
}

// HasItemID matches bookings of the given item.
func HasItemID(itemID uuid.UUID) Specification {
	return newSpecification(predicate{
		sql: func(time.Time) Condition {
			return Condition{Expr: "bookings.item_id = ?", Args: []any{itemID}}
		},
		match: func(_ time.Time, v View) bool { return v.Booking.ItemID() == itemID },
	})
}

// HasOwnerID matches bookings whose item belongs to the given user.
func HasOwnerID(userID uuid.UUID) Specification {
	return newSpecification(predicate{
		sql: func(time.Time) Condition {
			return Condition{Expr: "items.owner_id = ?", Args: []any{userID}}
		},
		match: func(_ time.Time, v View) bool { return v.OwnerID == userID },
	}, JoinItems)
}

// HasStatus matches bookings with the given approval status.
func HasStatus(status BookingStatus) Specification {
	return newSpecification(predicate{
		sql: func(time.Time) Condition {
			return Condition{Expr: "bookings.status = ?", Args: []any{string(status)}}
		},
		match: func(_ time.Time, v View) bool { return v.Booking.Status() == status },
	})
}

// StartAfterNow matches bookings whose window starts strictly after the
// instant the specification is evaluated.
func StartAfterNow() Specification {
	return newSpecification(predicate{
		sql: func(now time.Time) Condition {
			return Condition{Expr: "bookings.start_date > ?", Args: []any{now}}
		},
		match: func(now time.Time, v View) bool { return v.Booking.Start().After(now) },
	})
}

// StartBeforeNow matches bookings whose window started strictly before now.
func StartBeforeNow() Specification {
	return newSpecification(predicate{
		sql: func(now time.Time) Condition {
			return Condition{Expr: "bookings.start_date < ?", Args: []any{now}}
		},
		match: func(now time.Time, v View) bool { return v.Booking.Start().Before(now) },
	})
}

// EndAfterNow matches bookings whose window ends strictly after now.
func EndAfterNow() Specification {
	return newSpecification(predicate{
		sql: func(now time.Time) Condition {
			return Condition{Expr: "bookings.end_date > ?", Args: []any{now}}
		},
		match: func(now time.Time, v View) bool { return v.Booking.End().After(now) },
	})
}

// EndBeforeNow matches bookings whose window ended strictly before now.
func EndBeforeNow() Specification {
	return newSpecification(predicate{
		sql: func(now time.Time) Condition {
			return Condition{Expr: "bookings.end_date < ?", Args: []any{now}}
		},
		match: func(now time.Time, v View) bool { return v.Booking.End().Before(now) },
	})
}

// And returns the conjunction of two specifications. Joins are merged and
// deduplicated; if both sides carry an ordering, the receiver's wins.
func (s Specification) And(other Specification) Specification {
	merged := Specification{
		now:      s.now,
		joins:    append(append([]string(nil), s.joins...), other.joins...),
		preds:    append(append([]predicate(nil), s.preds...), other.preds...),
		ordering: s.ordering,
	}
	if merged.now == nil {
		merged.now = other.now
	}
	if merged.ordering == OrderNone {
		merged.ordering = other.ordering
	}
	return merged
}

// OrderByStartAsc wraps a specification with start-ascending ordering.
func OrderByStartAsc(s Specification) Specification {
	s.ordering = OrderStartAsc
	return s
}

// OrderByStartDesc wraps a specification with start-descending ordering.
func OrderByStartDesc(s Specification) Specification {
	s.ordering = OrderStartDesc
	return s
}

// Joins returns the deduplicated join clauses the conditions depend on.
func (s Specification) Joins() []string {
	seen := make(map[string]bool, len(s.joins))
	var joins []string
	for _, j := range s.joins {
		if !seen[j] {
			seen[j] = true
			joins = append(joins, j)
		}
	}
	return joins
}

// Conditions renders every predicate to SQL. Time-relative predicates read
// the clock here, at evaluation time, not at construction time.
func (s Specification) Conditions() []Condition {
	conds := make([]Condition, 0, len(s.preds))
	for _, p := range s.preds {
		conds = append(conds, p.sql(s.clock()()))
	}
	return conds
}

// Ordering returns the ordering wrapped around this specification, if any.
func (s Specification) Ordering() Ordering {
	return s.ordering
}

// OrderSQL returns the ORDER BY expression, or "" for persistence order.
func (s Specification) OrderSQL() string {
	switch s.ordering {
	case OrderStartAsc:
		return "bookings.start_date ASC"
	case OrderStartDesc:
		return "bookings.start_date DESC"
	default:
		return ""
	}
}

// Matches evaluates the conjunction against a single in-memory row.
func (s Specification) Matches(v View) bool {
	for _, p := range s.preds {
		if !p.match(s.clock()(), v) {
			return false
		}
	}
	return true
}

// Sort orders views in place according to the specification's ordering.
// Without an ordering the input order (persistence order) is preserved.
func (s Specification) Sort(views []View) {
	switch s.ordering {
	case OrderStartAsc:
		sort.SliceStable(views, func(i, j int) bool {
			return views[i].Booking.Start().Before(views[j].Booking.Start())
		})
	case OrderStartDesc:
		sort.SliceStable(views, func(i, j int) bool {
			return views[i].Booking.Start().After(views[j].Booking.Start())
		})
	}
}

func (s Specification) clock() func() time.Time {
	if s.now == nil {
		return time.Now
	}
	return s.now
}
