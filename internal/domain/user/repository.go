package user

import (
	"context"

	"github.com/google/uuid"
)

// UserRepository defines the persistence contract for user aggregates.
type UserRepository interface {
	// FindByID retrieves a user by id. A missing user is an UnknownID error.
	FindByID(ctx context.Context, id uuid.UUID) (*User, error)

	// ExistsByID reports whether a user with the given id exists.
	ExistsByID(ctx context.Context, id uuid.UUID) (bool, error)

	// ExistsByEmail reports whether a user other than exceptID already uses
	// the email. Pass uuid.Nil to check against all users.
	ExistsByEmail(ctx context.Context, email string, exceptID uuid.UUID) (bool, error)

	// FindAll retrieves every user, oldest first.
	FindAll(ctx context.Context) ([]*User, error)

	// Save persists a new user.
	Save(ctx context.Context, user *User) error

	// Update persists changes to an existing user.
	Update(ctx context.Context, user *User) error

	// Delete removes a user by id.
	Delete(ctx context.Context, id uuid.UUID) error
}
