package repository

import (
	"context"

	"github.com/nilsaki/moodquotes-backend/internal/domain/entity"
)

// CommentRepository defines the interface for comment-related database operations.
type CommentRepository interface {
	// Create persists a new comment and fills in the store-assigned fields.
	Create(ctx context.Context, cm *entity.Comment) error
	// ListByQuote returns all comments for the given quote text in insertion order.
	ListByQuote(ctx context.Context, quoteText string) ([]entity.Comment, error)
	// UpdateOwned updates the comment body where both id and owner match.
	// Returns ErrNotFound when zero rows match, whether the id is absent or
	// owned by someone else.
	UpdateOwned(ctx context.Context, id int64, username, comment string) error
	// DeleteOwned removes the row where both id and owner match.
	// Same ErrNotFound contract as UpdateOwned.
	DeleteOwned(ctx context.Context, id int64, username string) error
}
