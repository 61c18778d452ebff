package application

import (
	"context"
	"errors"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/nilsaki/moodquotes-backend/internal/domain/entity"
	repo "github.com/nilsaki/moodquotes-backend/internal/domain/repository"
)

// ErrNotOwner covers both "no such comment" and "owned by someone else"; the
// store cannot tell them apart and neither can callers.
var ErrNotOwner = errors.New("comment not found or not owned by requester")

// CommentService implements CRUD on per-quote comments. Mutations require an
// AuthContext whose username matches the stored owner.
type CommentService struct {
	Repo   repo.CommentRepository
	Logger *logrus.Logger
}

func NewCommentService(repo repo.CommentRepository, logger *logrus.Logger) *CommentService {
	return &CommentService{Repo: repo, Logger: logger}
}

func (s *CommentService) Add(ctx context.Context, quoteText, username, comment string) error {
	quoteText = strings.TrimSpace(quoteText)
	username = strings.TrimSpace(username)
	comment = strings.TrimSpace(comment)
	if quoteText == "" || username == "" || comment == "" {
		return ErrValidation
	}

	cm := &entity.Comment{QuoteText: quoteText, Username: username, Comment: comment}
	return s.Repo.Create(ctx, cm)
}

// ListByQuote returns all comments for a quote in insertion order.
func (s *CommentService) ListByQuote(ctx context.Context, quoteText string) ([]entity.Comment, error) {
	quoteText = strings.TrimSpace(quoteText)
	if quoteText == "" {
		return nil, ErrValidation
	}
	return s.Repo.ListByQuote(ctx, quoteText)
}

func (s *CommentService) Update(ctx context.Context, authz AuthContext, id int64, comment string) error {
	username := strings.TrimSpace(authz.Username())
	comment = strings.TrimSpace(comment)
	if username == "" || comment == "" {
		return ErrValidation
	}

	if err := s.Repo.UpdateOwned(ctx, id, username, comment); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return ErrNotOwner
		}
		return err
	}
	return nil
}

func (s *CommentService) Delete(ctx context.Context, authz AuthContext, id int64) error {
	username := strings.TrimSpace(authz.Username())
	if username == "" {
		return ErrValidation
	}

	if err := s.Repo.DeleteOwned(ctx, id, username); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return ErrNotOwner
		}
		return err
	}
	if s.Logger != nil {
		s.Logger.WithFields(logrus.Fields{"id": id, "username": username}).Info("comment deleted")
	}
	return nil
}
