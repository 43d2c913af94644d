package booking

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSpecification_RendersSQL(t *testing.T) {
	bookerID := uuid.New()
	spec := HasBookerID(bookerID)

	conds := spec.Conditions()
	require.Len(t, conds, 1)
	assert.Equal(t, "bookings.booker_id = ?", conds[0].Expr)
	assert.Equal(t, []any{bookerID}, conds[0].Args)
	assert.Empty(t, spec.Joins())
}

func TestSpecification_OwnerFilterCarriesJoin(t *testing.T) {
	spec := HasOwnerID(uuid.New())

	require.Len(t, spec.Joins(), 1)
	assert.Equal(t, JoinItems, spec.Joins()[0])

	conds := spec.Conditions()
	require.Len(t, conds, 1)
	assert.Equal(t, "items.owner_id = ?", conds[0].Expr)
}

func TestSpecification_AndMergesAndDeduplicatesJoins(t *testing.T) {
	ownerID := uuid.New()
	spec := HasOwnerID(ownerID).And(HasOwnerID(ownerID)).And(StartBeforeNow())

	assert.Len(t, spec.Joins(), 1)
	assert.Len(t, spec.Conditions(), 3)
}

func TestSpecification_TimePredicatesReadClockAtEvaluation(t *testing.T) {
	spec := StartAfterNow()
	spec.now = func() time.Time { return time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC) }

	conds := spec.Conditions()
	require.Len(t, conds, 1)
	assert.Equal(t, "bookings.start_date > ?", conds[0].Expr)
	assert.Equal(t, []any{time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)}, conds[0].Args)
}

func TestSpecification_OrderSQL(t *testing.T) {
	base := HasItemID(uuid.New())

	assert.Equal(t, "", base.OrderSQL())
	assert.Equal(t, "bookings.start_date ASC", OrderByStartAsc(base).OrderSQL())
	assert.Equal(t, "bookings.start_date DESC", OrderByStartDesc(base).OrderSQL())
}

func TestSpecification_OrderingSurvivesAnd(t *testing.T) {
	spec := OrderByStartDesc(HasItemID(uuid.New())).And(StartBeforeNow())
	assert.Equal(t, OrderStartDesc, spec.Ordering())

	// The receiver's ordering wins over the argument's.
	spec = OrderByStartAsc(HasItemID(uuid.New())).And(OrderByStartDesc(StartBeforeNow()))
	assert.Equal(t, OrderStartAsc, spec.Ordering())
}

func TestSpecification_Matches(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	ownerID := uuid.New()
	bookerID := uuid.New()
	itemID := uuid.New()

	current := ReconstructBooking(uuid.New(),
		now.Add(-time.Hour), now.Add(time.Hour),
		itemID, bookerID, StatusApproved, 1, now, now)
	past := ReconstructBooking(uuid.New(),
		now.Add(-3*time.Hour), now.Add(-2*time.Hour),
		itemID, bookerID, StatusApproved, 1, now, now)

	spec := HasOwnerID(ownerID).And(StartBeforeNow()).And(EndAfterNow())
	spec.now = func() time.Time { return now }

	assert.True(t, spec.Matches(View{Booking: current, OwnerID: ownerID}))
	assert.False(t, spec.Matches(View{Booking: past, OwnerID: ownerID}))
	assert.False(t, spec.Matches(View{Booking: current, OwnerID: uuid.New()}))
}

func TestSpecification_Sort(t *testing.T) {
	now := time.Now()
	early := View{Booking: ReconstructBooking(uuid.New(),
		now.Add(time.Hour), now.Add(2*time.Hour),
		uuid.New(), uuid.New(), StatusWaiting, 1, now, now)}
	late := View{Booking: ReconstructBooking(uuid.New(),
		now.Add(3*time.Hour), now.Add(4*time.Hour),
		uuid.New(), uuid.New(), StatusWaiting, 1, now, now)}

	views := []View{early, late}
	OrderByStartDesc(Specification{}).Sort(views)
	assert.Equal(t, late, views[0])

	OrderByStartAsc(Specification{}).Sort(views)
	assert.Equal(t, early, views[0])

	// No ordering preserves input order.
	views = []View{late, early}
	(Specification{}).Sort(views)
	assert.Equal(t, late, views[0])
}
