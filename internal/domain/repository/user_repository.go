package repository

import (
	"context"

	"github.com/nilsaki/moodquotes-backend/internal/domain/entity"
)

// UserRepository defines the interface for user-related database operations.
type UserRepository interface {
	// Create persists a new user and fills in the store-assigned fields.
	// Returns ErrDuplicate when the username is already taken.
	Create(ctx context.Context, u *entity.User) error
	// GetByUsername returns ErrNotFound when no user matches exactly.
	GetByUsername(ctx context.Context, username string) (*entity.User, error)
}
