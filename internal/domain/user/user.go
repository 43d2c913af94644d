package user

import (
	"net/mail"
	"time"

	"github.com/google/uuid"
	"github.com/lendwise/service-lending/internal/domain"
)

// User is a registered participant, acting as item owner, booker or both.
type User struct {
	id    uuid.UUID
	name  string
	email string

	createdAt time.Time
	updatedAt time.Time
}

// NewUser creates a new User with a non-empty name and a syntactically
// valid email. Email uniqueness is checked by the service against the store.
func NewUser(name, email string) (*User, error) {
	if name == "" {
		return nil, domain.NewValidationError("name field cannot be empty")
	}
	if err := validateEmail(email); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	return &User{
		id:        uuid.New(),
		name:      name,
		email:     email,
		createdAt: now,
		updatedAt: now,
	}, nil
}

// ReconstructUser rebuilds a User from persistence data (no validation).
func ReconstructUser(id uuid.UUID, name, email string, createdAt, updatedAt time.Time) *User {
	return &User{id: id, name: name, email: email, createdAt: createdAt, updatedAt: updatedAt}
}

// ID returns the user's unique identifier.
func (u *User) ID() uuid.UUID { return u.id }

// Name returns the user's display name.
func (u *User) Name() string { return u.name }

// Email returns the user's email address.
func (u *User) Email() string { return u.email }

// CreatedAt returns the creation timestamp.
func (u *User) CreatedAt() time.Time { return u.createdAt }

// UpdatedAt returns the last-updated timestamp.
func (u *User) UpdatedAt() time.Time { return u.updatedAt }

// ApplyPatch overwrites the fields present in the patch; nil fields keep
// their current value. A new email is validated syntactically.
func (u *User) ApplyPatch(name, email *string) error {
	if name != nil {
		if *name == "" {
			return domain.NewValidationError("name field cannot be empty")
		}
		u.name = *name
	}
	if email != nil {
		if err := validateEmail(*email); err != nil {
			return err
		}
		u.email = *email
	}
	u.updatedAt = time.Now().UTC()
	return nil
}

func validateEmail(email string) error {
	if email == "" {
		return domain.NewValidationError("email field cannot be empty")
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return domain.NewValidationError("invalid email provided")
	}
	return nil
}
