package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/nilsaki/moodquotes-backend/internal/domain/entity"
	"github.com/nilsaki/moodquotes-backend/internal/domain/repository"
)

type CommentRepository struct {
	pool *pgxpool.Pool
}

func NewCommentRepository(pool *pgxpool.Pool) *CommentRepository {
	return &CommentRepository{pool: pool}
}

func (r *CommentRepository) Create(ctx context.Context, cm *entity.Comment) error {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO comments (quote_text, username, comment)
		VALUES ($1, $2, $3)
		RETURNING id, created_at, updated_at
	`, cm.QuoteText, cm.Username, cm.Comment)

	return row.Scan(&cm.ID, &cm.CreatedAt, &cm.UpdatedAt)
}

// ListByQuote returns the full materialized result set ordered by id, which
// tracks insertion order.
func (r *CommentRepository) ListByQuote(ctx context.Context, quoteText string) ([]entity.Comment, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, quote_text, username, comment, created_at, updated_at
		FROM comments
		WHERE quote_text = $1
		ORDER BY id ASC
	`, quoteText)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]entity.Comment, 0)
	for rows.Next() {
		var cm entity.Comment
		if err := rows.Scan(&cm.ID, &cm.QuoteText, &cm.Username, &cm.Comment,
			&cm.CreatedAt, &cm.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, cm)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// UpdateOwned relies on the compound WHERE predicate for the ownership check.
// A missing id and a foreign owner are indistinguishable here.
func (r *CommentRepository) UpdateOwned(ctx context.Context, id int64, username, comment string) error {
	res, err := r.pool.Exec(ctx, `
		UPDATE comments
		SET comment = $1, updated_at = now()
		WHERE id = $2 AND username = $3
	`, comment, id, username)
	if err != nil {
		return err
	}

	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *CommentRepository) DeleteOwned(ctx context.Context, id int64, username string) error {
	res, err := r.pool.Exec(ctx, `
		DELETE FROM comments
		WHERE id = $1 AND username = $2
	`, id, username)
	if err != nil {
		return err
	}

	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

var _ repository.CommentRepository = (*CommentRepository)(nil)
