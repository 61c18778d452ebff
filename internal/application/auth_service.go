package application

import (
	"context"
	"errors"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/nilsaki/moodquotes-backend/internal/domain/entity"
	repo "github.com/nilsaki/moodquotes-backend/internal/domain/repository"
	"github.com/nilsaki/moodquotes-backend/pkg/helpers"
)

var (
	ErrValidation    = errors.New("missing required field")
	ErrUsernameTaken = errors.New("username already exists")
	ErrUserNotFound  = errors.New("user not found")
	ErrWrongPassword = errors.New("incorrect password")
)

// AuthService implements registration and login. Users are never mutated or
// deleted once registered.
type AuthService struct {
	Repo   repo.UserRepository
	Logger *logrus.Logger
}

func NewAuthService(repo repo.UserRepository, logger *logrus.Logger) *AuthService {
	return &AuthService{Repo: repo, Logger: logger}
}

// Identity is the public view of a user returned on login. The password hash
// stays inside the service.
type Identity struct {
	UserID   int64  `json:"userID"`
	Username string `json:"username"`
}

// Register creates a user with a bcrypt hash of the password. The pre-check
// produces the conflict answer in the common case; the unique index on
// users.username settles concurrent registrations.
func (s *AuthService) Register(ctx context.Context, username, password string) error {
	username = strings.TrimSpace(username)
	password = strings.TrimSpace(password)
	if username == "" || password == "" {
		return ErrValidation
	}

	if _, err := s.Repo.GetByUsername(ctx, username); err == nil {
		return ErrUsernameTaken
	} else if !errors.Is(err, repo.ErrNotFound) {
		return err
	}

	hash, err := helpers.HashPassword(password)
	if err != nil {
		return err
	}

	u := &entity.User{Username: username, PasswordHash: hash}
	if err := s.Repo.Create(ctx, u); err != nil {
		if errors.Is(err, repo.ErrDuplicate) {
			return ErrUsernameTaken
		}
		return err
	}

	if s.Logger != nil {
		s.Logger.WithField("username", username).Info("user registered")
	}
	return nil
}

// Login verifies the password against the stored hash and returns the public
// identity. An unknown username and a wrong password are distinct errors even
// though the HTTP layer collapses both to the same status.
func (s *AuthService) Login(ctx context.Context, username, password string) (*Identity, error) {
	username = strings.TrimSpace(username)
	password = strings.TrimSpace(password)
	if username == "" || password == "" {
		return nil, ErrValidation
	}

	u, err := s.Repo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	if !helpers.CompareHashAndPassword(u.PasswordHash, password) {
		return nil, ErrWrongPassword
	}

	if s.Logger != nil {
		s.Logger.WithField("username", u.Username).Info("login ok")
	}
	return &Identity{UserID: u.ID, Username: u.Username}, nil
}
