package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"contenthub-backend/internal/domains/comment/model"
	usermodel "contenthub-backend/internal/domains/user/model"
	"contenthub-backend/internal/shared"
)

type postgresCommentRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresCommentRepository(pool *pgxpool.Pool) CommentRepository {
	return &postgresCommentRepository{pool: pool}
}

// =====================================================
// ROW SHAPES & MAPPING
// =====================================================

const commentAuthorColumns = `
	c.id, c.content, c.author_id, c.post_id, c.video_id, c.created_at, c.updated_at,
	u.id, u.email, u.name, u.image, u.role, u.created_at, u.updated_at`

const commentColumns = `
	id, content, author_id, post_id, video_id, created_at, updated_at`

type commentAuthorRow struct {
	comment model.Comment

	authorID        *uuid.UUID
	authorEmail     *string
	authorName      *string
	authorImage     *string
	authorRole      *usermodel.Role
	authorCreatedAt *time.Time
	authorUpdatedAt *time.Time
}

func scanCommentAuthorRow(row pgx.Row) (*commentAuthorRow, error) {
	var r commentAuthorRow
	err := row.Scan(
		&r.comment.ID,
		&r.comment.Content,
		&r.comment.AuthorID,
		&r.comment.PostID,
		&r.comment.VideoID,
		&r.comment.CreatedAt,
		&r.comment.UpdatedAt,
		&r.authorID,
		&r.authorEmail,
		&r.authorName,
		&r.authorImage,
		&r.authorRole,
		&r.authorCreatedAt,
		&r.authorUpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &r, nil
}

func (r *commentAuthorRow) toCommentWithAuthor() (model.CommentWithAuthor, error) {
	if r.authorID == nil || r.authorRole == nil || r.authorCreatedAt == nil || r.authorUpdatedAt == nil {
		return model.CommentWithAuthor{}, fmt.Errorf("comment %s: %w", r.comment.ID, model.ErrAuthorMissing)
	}

	return model.CommentWithAuthor{
		Comment: r.comment,
		Author: usermodel.User{
			ID:        *r.authorID,
			Email:     r.authorEmail,
			Name:      r.authorName,
			Image:     r.authorImage,
			Role:      *r.authorRole,
			CreatedAt: *r.authorCreatedAt,
			UpdatedAt: *r.authorUpdatedAt,
		},
	}, nil
}

func scanComment(row pgx.Row) (*model.Comment, error) {
	var c model.Comment
	err := row.Scan(
		&c.ID,
		&c.Content,
		&c.AuthorID,
		&c.PostID,
		&c.VideoID,
		&c.CreatedAt,
		&c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *postgresCommentRepository) listCommentsWithAuthor(ctx context.Context, query string, args ...interface{}) ([]model.CommentWithAuthor, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list comments query failed: %w", err)
	}
	defer rows.Close()

	comments := make([]model.CommentWithAuthor, 0, shared.DefaultLimit)
	for rows.Next() {
		row, err := scanCommentAuthorRow(rows)
		if err != nil {
			return nil, fmt.Errorf("scan comment row: %w", err)
		}

		comment, err := row.toCommentWithAuthor()
		if err != nil {
			return nil, err
		}
		comments = append(comments, comment)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration: %w", err)
	}

	return comments, nil
}

// =====================================================
// READS
// =====================================================

func (r *postgresCommentRepository) ListByPost(ctx context.Context, postID uuid.UUID, page shared.Page) ([]model.CommentWithAuthor, error) {
	page = page.Normalize()

	query := fmt.Sprintf(`
		SELECT %s
		FROM comments c
		LEFT JOIN users u ON c.author_id = u.id
		WHERE c.post_id = $1
		ORDER BY c.created_at DESC
		LIMIT $2 OFFSET $3
	`, commentAuthorColumns)

	return r.listCommentsWithAuthor(ctx, query, postID, page.Limit, page.Offset)
}

func (r *postgresCommentRepository) ListByVideo(ctx context.Context, videoID uuid.UUID, page shared.Page) ([]model.CommentWithAuthor, error) {
	page = page.Normalize()

	query := fmt.Sprintf(`
		SELECT %s
		FROM comments c
		LEFT JOIN users u ON c.author_id = u.id
		WHERE c.video_id = $1
		ORDER BY c.created_at DESC
		LIMIT $2 OFFSET $3
	`, commentAuthorColumns)

	return r.listCommentsWithAuthor(ctx, query, videoID, page.Limit, page.Offset)
}

func (r *postgresCommentRepository) Get(ctx context.Context, id uuid.UUID) (*model.CommentWithAuthor, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM comments c
		LEFT JOIN users u ON c.author_id = u.id
		WHERE c.id = $1
	`, commentAuthorColumns)

	row, err := scanCommentAuthorRow(r.pool.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get comment: %w", err)
	}

	comment, err := row.toCommentWithAuthor()
	if err != nil {
		return nil, err
	}

	return &comment, nil
}

// =====================================================
// WRITES
// =====================================================

func (r *postgresCommentRepository) Create(ctx context.Context, params model.CreateCommentParams) (*model.Comment, error) {
	if params.Parent.IsZero() {
		return nil, model.ErrNoParent
	}
	if params.ID == uuid.Nil {
		params.ID = uuid.New()
	}

	query := fmt.Sprintf(`
		INSERT INTO comments (id, content, author_id, post_id, video_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $6)
		RETURNING %s
	`, commentColumns)

	now := time.Now().UTC()

	comment, err := scanComment(r.pool.QueryRow(ctx, query,
		params.ID,
		params.Content,
		params.AuthorID,
		params.Parent.PostID(),
		params.Parent.VideoID(),
		now,
	))
	if err != nil {
		return nil, fmt.Errorf("failed to insert comment: %w", err)
	}

	return comment, nil
}

// Update only ever touches content. Parents are immutable, so no
// dynamic SET building is needed here.
func (r *postgresCommentRepository) Update(ctx context.Context, id uuid.UUID, params model.UpdateCommentParams) (*model.Comment, error) {
	query := fmt.Sprintf(`
		UPDATE comments
		SET content = COALESCE($2, content), updated_at = $3
		WHERE id = $1
		RETURNING %s
	`, commentColumns)

	comment, err := scanComment(r.pool.QueryRow(ctx, query, id, params.Content, time.Now().UTC()))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update comment: %w", err)
	}

	return comment, nil
}

func (r *postgresCommentRepository) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	result, err := r.pool.Exec(ctx, `DELETE FROM comments WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("failed to delete comment: %w", err)
	}

	return result.RowsAffected() > 0, nil
}
