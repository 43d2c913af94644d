package booking

import "github.com/lendwise/service-lending/internal/domain"

// BookingState is a caller-supplied filter token selecting which bookings a
// list query returns. Tokens are case-sensitive.
type BookingState string

const (
	StateAll      BookingState = "ALL"
	StateCurrent  BookingState = "CURRENT"
	StateFuture   BookingState = "FUTURE"
	StatePast     BookingState = "PAST"
	StateWaiting  BookingState = "WAITING"
	StateRejected BookingState = "REJECTED"
)

// ParseBookingState matches the token against the enumerated set exactly.
// Anything else, including lower-case variants, is a WrongState error
// naming the offending token.
func ParseBookingState(s string) (BookingState, error) {
	switch state := BookingState(s); state {
	case StateAll, StateCurrent, StateFuture, StatePast, StateWaiting, StateRejected:
		return state, nil
	default:
		return "", domain.NewWrongStateError(s)
	}
}
