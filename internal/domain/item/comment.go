package item

import (
	"time"

	"github.com/google/uuid"
	"github.com/lendwise/service-lending/internal/domain"
)

// Comment is a renter's note left on an item after use.
type Comment struct {
	id       uuid.UUID
	itemID   uuid.UUID
	authorID uuid.UUID
	text     string
	created  time.Time
}

// NewComment creates a comment with a non-empty text.
func NewComment(authorID, itemID uuid.UUID, text string) (*Comment, error) {
	if text == "" {
		return nil, domain.NewValidationError("text field cannot be empty")
	}
	return &Comment{
		id:       uuid.New(),
		itemID:   itemID,
		authorID: authorID,
		text:     text,
		created:  time.Now().UTC(),
	}, nil
}

// ReconstructComment rebuilds a Comment from persistence data.
func ReconstructComment(id, itemID, authorID uuid.UUID, text string, created time.Time) *Comment {
	return &Comment{id: id, itemID: itemID, authorID: authorID, text: text, created: created}
}

// ID returns the comment's unique identifier.
func (c *Comment) ID() uuid.UUID { return c.id }

// ItemID returns the id of the commented item.
func (c *Comment) ItemID() uuid.UUID { return c.itemID }

// AuthorID returns the id of the comment's author.
func (c *Comment) AuthorID() uuid.UUID { return c.authorID }

// Text returns the comment body.
func (c *Comment) Text() string { return c.text }

// Created returns the creation timestamp.
func (c *Comment) Created() time.Time { return c.created }
