package booking

import "fmt"

// BookingStatus represents the owner-controlled approval state of a booking.
type BookingStatus string

const (
	StatusWaiting  BookingStatus = "WAITING"
	StatusApproved BookingStatus = "APPROVED"
	StatusRejected BookingStatus = "REJECTED"
)

// validTransitions defines the state machine for booking status changes.
// Rejection is allowed from every state, including REJECTED itself, and a
// rejected booking may still be approved afterwards. The only blocked
// transition is approving a booking that is already approved.
var validTransitions = map[BookingStatus]map[BookingStatus]bool{
	StatusWaiting:  {StatusApproved: true, StatusRejected: true},
	StatusApproved: {StatusApproved: false, StatusRejected: true},
	StatusRejected: {StatusApproved: true, StatusRejected: true},
}

// IsValid returns true if the status is a recognized booking status.
func (s BookingStatus) IsValid() bool {
	_, exists := validTransitions[s]
	return exists
}

// CanTransitionTo returns true if a transition from this status to the target is allowed.
func (s BookingStatus) CanTransitionTo(target BookingStatus) bool {
	allowed, exists := validTransitions[s]
	if !exists {
		return false
	}
	return allowed[target]
}

// String returns the string representation of the status.
func (s BookingStatus) String() string {
	return string(s)
}

// ParseBookingStatus converts a string to a BookingStatus, returning an error if invalid.
func ParseBookingStatus(s string) (BookingStatus, error) {
	status := BookingStatus(s)
	if !status.IsValid() {
		return "", fmt.Errorf("invalid booking status: %s", s)
	}
	return status, nil
}
