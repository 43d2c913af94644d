package domain

import (
	"errors"
	"fmt"
)

// ErrorKind classifies a domain error for transport-level mapping.
type ErrorKind string

const (
	KindUnknownID       ErrorKind = "unknown_id"
	KindIllegalUser     ErrorKind = "illegal_user"
	KindUnavailableItem ErrorKind = "unavailable_item"
	KindEndBeforeStart  ErrorKind = "end_before_start"
	KindBookingByOwner  ErrorKind = "booking_by_owner"
	KindWrongState      ErrorKind = "wrong_state"
	KindValidation      ErrorKind = "validation"
	KindDuplicateEmail  ErrorKind = "duplicate_email"
	KindConflict        ErrorKind = "conflict"
)

// UnavailableReason distinguishes the conditions that share KindUnavailableItem.
type UnavailableReason string

const (
	ReasonItemNotAvailable UnavailableReason = "item_not_available"
	ReasonAlreadyApproved  UnavailableReason = "already_approved"
	ReasonNeverBooked      UnavailableReason = "never_booked"
)

// Error is a tagged domain error. Kind drives the HTTP mapping; Reason is
// set only for KindUnavailableItem.
type Error struct {
	Kind    ErrorKind
	Reason  UnavailableReason
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

// NewUnknownIDError reports that an entity with the given id does not exist.
func NewUnknownIDError(entity, id string) *Error {
	return &Error{Kind: KindUnknownID, Message: fmt.Sprintf("%s with id %s not found", entity, id)}
}

// NewIllegalUserError reports that the requester is not authorized for the entity.
func NewIllegalUserError(message string) *Error {
	return &Error{Kind: KindIllegalUser, Message: message}
}

// NewUnavailableItemError reports an unbookable item, a repeated approval,
// or a missing booking history, distinguished by reason.
func NewUnavailableItemError(reason UnavailableReason, message string) *Error {
	return &Error{Kind: KindUnavailableItem, Reason: reason, Message: message}
}

// NewEndBeforeStartError reports a booking window whose end is not after its start.
func NewEndBeforeStartError(message string) *Error {
	return &Error{Kind: KindEndBeforeStart, Message: message}
}

// NewBookingByOwnerError reports an attempt to book one's own item.
func NewBookingByOwnerError(message string) *Error {
	return &Error{Kind: KindBookingByOwner, Message: message}
}

// NewWrongStateError reports an unrecognized state filter token.
func NewWrongStateError(state string) *Error {
	return &Error{Kind: KindWrongState, Message: "Unknown state: " + state}
}

// NewValidationError reports invalid input data.
func NewValidationError(message string) *Error {
	return &Error{Kind: KindValidation, Message: message}
}

// NewDuplicateEmailError reports that the email is already registered.
func NewDuplicateEmailError(email string) *Error {
	return &Error{Kind: KindDuplicateEmail, Message: fmt.Sprintf("email %s is already in use", email)}
}

// NewConflictError reports a lost optimistic-locking race.
func NewConflictError(message string) *Error {
	return &Error{Kind: KindConflict, Message: message}
}

// IsKind reports whether err is (or wraps) a domain error of the given kind.
func IsKind(err error, kind ErrorKind) bool {
	var de *Error
	return errors.As(err, &de) && de.Kind == kind
}

// ReasonOf returns the unavailable-item reason carried by err, if any.
func ReasonOf(err error) UnavailableReason {
	var de *Error
	if errors.As(err, &de) {
		return de.Reason
	}
	return ""
}
